package profile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/tablecheck/pkg/profile"
)

func TestReportRender(t *testing.T) {
	report := &profile.Report{
		TableName: "users",
		Findings: []profile.Finding{
			{Section: 1, Title: "Basic Table Information", Lines: []string{"Table has 2 rows and 1 columns."}},
			{Section: 2, Title: "Column Name Check", Lines: []string{"Columns with spaces: 'FIRST NAME'."},
				Actions: []string{"Column name cleanup: fix 'FIRST NAME'."}},
			{Section: 4, Title: "Data Type Overview", Block: "col1\ncol2"},
		},
	}

	out := report.Render()

	assert.Contains(t, out, "Here is the result of the initial data check for table 'users':")
	assert.Contains(t, out, " 1. Basic Table Information:")
	assert.Contains(t, out, "    - Table has 2 rows and 1 columns.")
	assert.Contains(t, out, " 4. Data Type Overview:")
	assert.Contains(t, out, "    col1\n    col2")
	assert.Contains(t, out, "Action required:\n - Column name cleanup: fix 'FIRST NAME'.")

	// Body precedes action items.
	assert.Less(t, strings.Index(out, "Basic Table Information"), strings.Index(out, "Action required:"))
}

func TestReportRenderNoActions(t *testing.T) {
	report := &profile.Report{
		TableName: "clean",
		Findings:  []profile.Finding{{Section: 1, Title: "Basic Table Information", Lines: []string{"ok"}}},
	}

	out := report.Render()
	assert.Contains(t, out, "Action required:\n - No action required.")
	assert.Empty(t, report.ActionItems())
}

func TestReportActionItemsOrder(t *testing.T) {
	report := &profile.Report{
		Findings: []profile.Finding{
			{Section: 1, Actions: []string{"first"}},
			{Section: 2},
			{Section: 3, Actions: []string{"second", "third"}},
		},
	}
	assert.Equal(t, []string{"first", "second", "third"}, report.ActionItems())
}
