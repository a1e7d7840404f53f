package checks

import (
	"fmt"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
	"github.com/leapstack-labs/tablecheck/pkg/profile"
)

func init() {
	profile.Register(NullColumns)
}

// NullColumns classifies the table's null distribution into exactly one of
// three mutually exclusive branches: every column fully null, at least one
// column partially null, or no nulls at all.
var NullColumns = profile.CheckDef{
	ID:          "NU01",
	Name:        "nulls.columns",
	Group:       "nulls",
	Section:     6,
	Title:       "Null Column Analysis",
	Description: "Identify fully and partially null columns and the share of missing values.",
	Check:       checkNullColumns,
}

func checkNullColumns(t *dataset.Table) (profile.Finding, error) {
	summary := profile.TypeSummary(t)
	rows := t.NumRows()

	allFull := len(summary) > 0
	anyNull := false
	for _, s := range summary {
		if s.Nulls != rows {
			allFull = false
		}
		if s.Nulls > 0 {
			anyNull = true
		}
	}

	switch {
	case allFull:
		var names []string
		for _, s := range summary {
			names = append(names, s.Column)
		}
		return profile.Finding{
			Lines: []string{fmt.Sprintf("Fully NULL columns: %s.", quoteJoin(names))},
			Actions: []string{fmt.Sprintf(
				"Handle fully NULL columns: remove columns %s that contain only null values.", quoteJoin(names))},
		}, nil

	case anyNull:
		lines := []string{"Partially NULL columns:"}
		for _, s := range summary {
			if s.Nulls == 0 {
				continue
			}
			pct := float64(s.Nulls) / float64(rows) * 100
			lines = append(lines, fmt.Sprintf("%s: %d missing (%.2f%%)", s.Column, s.Nulls, pct))
		}
		return profile.Finding{
			Lines:   lines,
			Actions: []string{"Handle missing data: the columns listed in the null column analysis contain missing values."},
		}, nil
	}

	return profile.Finding{Lines: []string{"No NULL columns detected. All columns are fully populated."}}, nil
}
