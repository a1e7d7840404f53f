package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
	"github.com/leapstack-labs/tablecheck/pkg/profile"
)

// maxDuplicateExamples caps how many duplicate rows the report shows.
const maxDuplicateExamples = 5

func init() {
	profile.Register(DuplicateRows)
}

// DuplicateRows counts rows identical to at least one other row (all columns
// equal) and shows up to five examples, sorted by full-row value.
var DuplicateRows = profile.CheckDef{
	ID:          "DP01",
	Name:        "duplicates.rows",
	Group:       "duplicates",
	Section:     7,
	Title:       "Duplicate Row Analysis",
	Description: "Count fully duplicate rows and show examples.",
	Check:       checkDuplicateRows,
}

func rowKey(row []dataset.Value) string {
	keys := make([]string, len(row))
	for i, v := range row {
		keys[i] = v.Key()
	}
	return strings.Join(keys, "\x1f")
}

func checkDuplicateRows(t *dataset.Table) (profile.Finding, error) {
	counts := make(map[string]int)
	for i := 0; i < t.NumRows(); i++ {
		counts[rowKey(t.Row(i))]++
	}

	duplicates := 0
	var members []int // indexes of rows belonging to a duplicate group
	for i := 0; i < t.NumRows(); i++ {
		if counts[rowKey(t.Row(i))] > 1 {
			duplicates++
			members = append(members, i)
		}
	}

	if duplicates == 0 {
		return profile.Finding{Lines: []string{"No fully duplicate rows."}}, nil
	}

	// All instances of each duplicate group, sorted by full-row value.
	sort.SliceStable(members, func(a, b int) bool {
		return rowKey(t.Row(members[a])) < rowKey(t.Row(members[b]))
	})
	if len(members) > maxDuplicateExamples {
		members = members[:maxDuplicateExamples]
	}

	rows := make([][]string, len(members))
	for i, idx := range members {
		row := t.Row(idx)
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = v.String()
		}
		rows[i] = cells
	}

	return profile.Finding{
		Lines: []string{fmt.Sprintf("There are %d duplicate rows. Here are a few examples:", duplicates)},
		Block: profile.RenderTable(t.ColumnNames(), rows),
		Actions: []string{fmt.Sprintf(
			"Remove duplicate rows: consider removing %d duplicate entries.", duplicates)},
	}, nil
}
