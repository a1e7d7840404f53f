package checks

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
	"github.com/leapstack-labs/tablecheck/pkg/profile"
)

func init() {
	profile.Register(PrimaryKey)
}

// PrimaryKey selects a candidate identifier column by a table-shape
// heuristic and checks it for missing and duplicate values. Independently,
// every column free of non-null duplicates is listed as a potential unique
// identifier, regardless of the heuristic.
var PrimaryKey = profile.CheckDef{
	ID:          "ID01",
	Name:        "identity.primary_key",
	Group:       "identity",
	Section:     5,
	Title:       "Potential Unique Identifiers",
	Description: "Check the table's candidate identifier column for missing and duplicate values.",
	Check:       checkPrimaryKey,
}

// classifyTable applies the identifier heuristic: a BARCODE column without a
// RECEIPT_ID column marks a product table; any RECEIPT_ID column marks a
// transaction table; otherwise an ID column marks a user table.
func classifyTable(t *dataset.Table) (tableKind, identifier string) {
	switch {
	case t.HasColumn("BARCODE") && !t.HasColumn("RECEIPT_ID"):
		return "product", "BARCODE"
	case t.HasColumn("RECEIPT_ID"):
		return "transaction", "RECEIPT_ID"
	case t.HasColumn("ID"):
		return "user", "ID"
	}
	return "", ""
}

func checkPrimaryKey(t *dataset.Table) (profile.Finding, error) {
	tableKind, identifier := classifyTable(t)
	if identifier == "" {
		return profile.Finding{Lines: []string{"No unique identifier columns found in this table."}}, nil
	}

	var issues []string
	col := t.Column(identifier)
	if n := col.NullCount(); n > 0 {
		issues = append(issues, fmt.Sprintf("%s in %s table has %d missing values", identifier, tableKind, n))
	}
	if n := col.DuplicateCount(); n > 0 {
		issues = append(issues, fmt.Sprintf("%s in %s table has %d duplicate values (excluding missing)", identifier, tableKind, n))
	}

	var candidates []string
	for _, c := range t.Columns {
		if c.DuplicateCount() == 0 {
			candidates = append(candidates, c.Name)
		}
	}

	var lines []string
	if len(candidates) > 0 {
		lines = append(lines, fmt.Sprintf("Potential unique identifier(s) in %s table: %s.", tableKind, quoteJoin(candidates)))
	} else {
		lines = append(lines, fmt.Sprintf("No unique and non-null identifier detected in %s table.", tableKind))
	}

	var actions []string
	if len(issues) > 0 {
		lines = append(lines, "Invalid unique identifiers: "+strings.Join(issues, ", ")+".")
		actions = append(actions, "Resolve issues with unique identifiers: "+strings.Join(issues, ", ")+".")
	}

	return profile.Finding{Lines: lines, Actions: actions}, nil
}
