// Package profile implements the data-quality check pipeline.
//
// Checks are data-driven definitions registered at init time, each owning a
// stable section number in the rendered report. A Runner executes every
// registered check against a table in section order and folds the structured
// findings into a Report with a narrative body and a consolidated list of
// action items.
package profile

import (
	"github.com/leapstack-labs/tablecheck/pkg/dataset"
)

// DateColumns are the column names normalized to UTC timestamps before any
// check runs. The temporal checks operate on these.
var DateColumns = []string{"PURCHASE_DATE", "SCAN_DATE", "CREATED_DATE", "BIRTH_DATE"}

// Finding is the result of one check: narrative lines for the report body
// and zero or more remediation actions. Every check produces exactly one
// finding; a check that detects nothing still reports that as a line.
type Finding struct {
	CheckID string   `json:"check_id"`
	Section int      `json:"section"`
	Title   string   `json:"title"`
	Lines   []string `json:"lines,omitempty"`
	Block   string   `json:"block,omitempty"` // preformatted block, e.g. a rendered table
	Actions []string `json:"actions,omitempty"`
}

// CheckFunc inspects a table and returns a finding. Missing expected columns
// are a "not applicable" finding, never an error; errors abort the whole run.
type CheckFunc func(t *dataset.Table) (Finding, error)

// CheckDef is a data-driven check definition.
// Checks are stateless; all context comes via the Check function parameter.
type CheckDef struct {
	ID          string // Unique identifier, e.g. "NM01"
	Name        string // Human-readable name, e.g. "naming.column_spaces"
	Group       string // Category, e.g. "naming", "dates"
	Section     int    // Stable section number in the rendered report
	Title       string // Section heading in the report body
	Description string // Human-readable description
	Check       CheckFunc
}
