package checks

import (
	"strconv"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
	"github.com/leapstack-labs/tablecheck/pkg/profile"
)

func init() {
	profile.Register(TypeOverview)
}

// TypeOverview renders the per-column type/null/distinct summary as a table,
// sorted descending by null count.
var TypeOverview = profile.CheckDef{
	ID:          "TY01",
	Name:        "types.overview",
	Group:       "types",
	Section:     4,
	Title:       "Data Type Overview",
	Description: "Summarize each column's inferred type, null count and distinct values.",
	Check:       checkTypeOverview,
}

func checkTypeOverview(t *dataset.Table) (profile.Finding, error) {
	summary := profile.TypeSummary(t)

	rows := make([][]string, len(summary))
	for i, s := range summary {
		rows[i] = []string{
			s.Column,
			s.Kind.String(),
			strconv.Itoa(s.Nulls),
			strconv.Itoa(s.Distinct),
		}
	}

	return profile.Finding{
		Block: profile.RenderTable([]string{"Column", "Data Type", "Null Values", "Unique Values"}, rows),
	}, nil
}
