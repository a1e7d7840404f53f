package checks

import (
	"fmt"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
	"github.com/leapstack-labs/tablecheck/pkg/profile"
)

func init() {
	profile.Register(DuplicateColumns)
}

// DuplicateColumns flags column names appearing more than once, by name
// equality only. Offenders are reported in first-seen order.
var DuplicateColumns = profile.CheckDef{
	ID:          "NM02",
	Name:        "naming.duplicate_columns",
	Group:       "naming",
	Section:     3,
	Title:       "Duplicate Column Check",
	Description: "Flag column names that appear more than once.",
	Check:       checkDuplicateColumns,
}

func checkDuplicateColumns(t *dataset.Table) (profile.Finding, error) {
	counts := make(map[string]int)
	for _, name := range t.ColumnNames() {
		counts[name]++
	}

	var duplicated []string
	seen := make(map[string]bool)
	for _, name := range t.ColumnNames() {
		if counts[name] > 1 && !seen[name] {
			duplicated = append(duplicated, name)
			seen[name] = true
		}
	}

	if len(duplicated) == 0 {
		return profile.Finding{Lines: []string{"No duplicate column names."}}, nil
	}
	return profile.Finding{
		Lines: []string{fmt.Sprintf("Duplicate column names found: %s.", quoteJoin(duplicated))},
		Actions: []string{fmt.Sprintf(
			"Resolve duplicate columns: rename or remove duplicate column names %s to maintain data integrity.",
			quoteJoin(duplicated))},
	}, nil
}
