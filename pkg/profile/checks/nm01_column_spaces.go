package checks

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
	"github.com/leapstack-labs/tablecheck/pkg/profile"
)

func init() {
	profile.Register(ColumnSpaces)
}

// ColumnSpaces flags column names containing a space character. Leading,
// trailing and inner spaces are treated alike.
var ColumnSpaces = profile.CheckDef{
	ID:          "NM01",
	Name:        "naming.column_spaces",
	Group:       "naming",
	Section:     2,
	Title:       "Column Name Check",
	Description: "Flag column names that contain spaces.",
	Check:       checkColumnSpaces,
}

func checkColumnSpaces(t *dataset.Table) (profile.Finding, error) {
	var withSpaces []string
	for _, name := range t.ColumnNames() {
		if strings.Contains(name, " ") {
			withSpaces = append(withSpaces, name)
		}
	}

	if len(withSpaces) == 0 {
		return profile.Finding{Lines: []string{"No column names contain spaces."}}, nil
	}
	return profile.Finding{
		Lines: []string{fmt.Sprintf("Columns with spaces: %s.", quoteJoin(withSpaces))},
		Actions: []string{fmt.Sprintf(
			"Column name cleanup: remove leading/trailing spaces or replace inner spaces with underscores (_) in columns %s.",
			quoteJoin(withSpaces))},
	}, nil
}

// quoteJoin renders a name list as 'a', 'b', 'c'.
func quoteJoin(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return strings.Join(quoted, ", ")
}
