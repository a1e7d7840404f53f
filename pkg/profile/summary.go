package profile

import (
	"sort"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
)

// TypeSummaryRow describes one column: inferred kind, null count and
// distinct non-null count.
type TypeSummaryRow struct {
	Column   string
	Kind     dataset.Kind
	Nulls    int
	Distinct int
}

// TypeSummary computes the per-column type/null/distinct summary, sorted
// descending by null count (stable over column order). The computation is
// pure and cheap enough that every check needing null counts recomputes it
// instead of sharing cached state.
func TypeSummary(t *dataset.Table) []TypeSummaryRow {
	rows := make([]TypeSummaryRow, len(t.Columns))
	for i, c := range t.Columns {
		rows[i] = TypeSummaryRow{
			Column:   c.Name,
			Kind:     c.InferKind(),
			Nulls:    c.NullCount(),
			Distinct: c.DistinctNonNull(),
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Nulls > rows[j].Nulls })
	return rows
}
