package checks

import (
	"strconv"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
	"github.com/leapstack-labs/tablecheck/pkg/profile"
)

func init() {
	profile.Register(SummaryStats)
}

// SummaryStats renders descriptive statistics for every numeric column.
var SummaryStats = profile.CheckDef{
	ID:          "SM01",
	Name:        "stats.summary",
	Group:       "stats",
	Section:     13,
	Title:       "Summary Statistics",
	Description: "Descriptive statistics (count, mean, std, min, quartiles, max) for numeric columns.",
	Check:       checkSummaryStats,
}

var statNames = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

func columnStats(c *dataset.Column) []string {
	var xs []float64
	for _, v := range c.Values {
		if f, ok := v.Numeric(); ok {
			xs = append(xs, f)
		}
	}

	cells := make([]string, 0, len(statNames))
	cells = append(cells, strconv.Itoa(len(xs)))
	if len(xs) == 0 {
		for range statNames[1:] {
			cells = append(cells, "NaN")
		}
		return cells
	}

	cells = append(cells, formatStat(dataset.Mean(xs)))
	if sd, ok := dataset.StdDev(xs); ok {
		cells = append(cells, formatStat(sd))
	} else {
		cells = append(cells, "NaN")
	}
	for _, q := range []float64{0, 0.25, 0.5, 0.75, 1} {
		cells = append(cells, formatStat(dataset.Quantile(xs, q)))
	}
	return cells
}

func formatStat(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

func checkSummaryStats(t *dataset.Table) (profile.Finding, error) {
	var numeric []*dataset.Column
	for _, c := range t.Columns {
		if k := c.InferKind(); k == dataset.KindInt || k == dataset.KindFloat {
			numeric = append(numeric, c)
		}
	}
	if len(numeric) == 0 {
		return profile.Finding{Lines: []string{"No numeric columns found."}}, nil
	}

	header := []string{"Statistic"}
	for _, c := range numeric {
		header = append(header, c.Name)
	}

	rows := make([][]string, len(statNames))
	stats := make([][]string, len(numeric))
	for i, c := range numeric {
		stats[i] = columnStats(c)
	}
	for i, name := range statNames {
		row := []string{name}
		for j := range numeric {
			row = append(row, stats[j][i])
		}
		rows[i] = row
	}

	return profile.Finding{Block: profile.RenderTable(header, rows)}, nil
}
