package profile

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable renders a header and rows as a plain text table for embedding
// in a report section.
func RenderTable(cols []string, rows [][]string) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(cols))
	for i, col := range cols {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	for _, r := range rows {
		row := make(table.Row, len(r))
		for i, cell := range r {
			row[i] = cell
		}
		t.AppendRow(row)
	}

	return strings.TrimRight(t.Render(), "\n")
}
