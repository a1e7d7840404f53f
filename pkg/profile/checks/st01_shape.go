// Package checks registers the built-in data-quality checks.
//
// Each check lives in its own file as a data-driven definition with a stable
// ID and section number, registered in init(). Import this package for side
// effects to make the checks available to a profile.Runner.
package checks

import (
	"fmt"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
	"github.com/leapstack-labs/tablecheck/pkg/profile"
)

func init() {
	profile.Register(Shape)
}

// Shape reports the table's row and column counts.
var Shape = profile.CheckDef{
	ID:          "ST01",
	Name:        "structure.shape",
	Group:       "structure",
	Section:     1,
	Title:       "Basic Table Information",
	Description: "Report the table's row and column counts.",
	Check:       checkShape,
}

func checkShape(t *dataset.Table) (profile.Finding, error) {
	return profile.Finding{
		Lines: []string{fmt.Sprintf("Table has %d rows and %d columns.", t.NumRows(), t.NumCols())},
	}, nil
}
