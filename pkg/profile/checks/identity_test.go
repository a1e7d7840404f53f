package checks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
	"github.com/leapstack-labs/tablecheck/pkg/profile/checks"
)

func TestPrimaryKeyHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		wantKind string
	}{
		{"barcode marks product", []string{"BARCODE", "NAME"}, "product"},
		{"receipt id marks transaction", []string{"RECEIPT_ID", "BARCODE"}, "transaction"},
		{"receipt id wins over plain id", []string{"RECEIPT_ID", "ID"}, "transaction"},
		{"plain id marks user", []string{"ID", "NAME"}, "user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := checks.PrimaryKey.Check(tableWithColumns(tt.columns...))
			require.NoError(t, err)
			assert.Contains(t, f.Lines[0], tt.wantKind+" table")
		})
	}
}

func TestPrimaryKeyNoIdentifier(t *testing.T) {
	f, err := checks.PrimaryKey.Check(tableWithColumns("NAME", "VALUE"))
	require.NoError(t, err)
	assert.Equal(t, []string{"No unique identifier columns found in this table."}, f.Lines)
	assert.Empty(t, f.Actions)
}

func TestPrimaryKeyMissingAndDuplicates(t *testing.T) {
	tbl := &dataset.Table{
		Name: "users",
		Columns: []*dataset.Column{
			{Name: "ID", Values: []dataset.Value{
				dataset.NewInt(1), dataset.NewInt(1), dataset.NewInt(3), dataset.NewNull(),
			}},
		},
	}

	f, err := checks.PrimaryKey.Check(tbl)
	require.NoError(t, err)
	require.Len(t, f.Actions, 1)
	assert.Contains(t, f.Actions[0], "ID in user table has 1 missing values")
	assert.Contains(t, f.Actions[0], "ID in user table has 1 duplicate values")
}

func TestPrimaryKeyCandidateScanIsIndependent(t *testing.T) {
	// The candidate list covers all duplicate-free columns, not just the
	// heuristic's pick.
	tbl := &dataset.Table{
		Name: "tx",
		Columns: []*dataset.Column{
			{Name: "RECEIPT_ID", Values: []dataset.Value{dataset.NewInt(1), dataset.NewInt(1)}},
			{Name: "ROW_HASH", Values: []dataset.Value{dataset.NewString("a"), dataset.NewString("b")}},
			{Name: "STORE", Values: []dataset.Value{dataset.NewString("x"), dataset.NewString("x")}},
		},
	}

	f, err := checks.PrimaryKey.Check(tbl)
	require.NoError(t, err)
	assert.Contains(t, f.Lines[0], "'ROW_HASH'")
	assert.NotContains(t, f.Lines[0], "'STORE'")
	assert.NotContains(t, f.Lines[0], "'RECEIPT_ID'")
}

func TestPrimaryKeyNullsDoNotCountAsDuplicates(t *testing.T) {
	tbl := &dataset.Table{
		Name: "users",
		Columns: []*dataset.Column{
			{Name: "ID", Values: []dataset.Value{
				dataset.NewInt(1), dataset.NewNull(), dataset.NewNull(),
			}},
		},
	}

	f, err := checks.PrimaryKey.Check(tbl)
	require.NoError(t, err)
	require.Len(t, f.Actions, 1)
	assert.Contains(t, f.Actions[0], "2 missing values")
	assert.NotContains(t, f.Actions[0], "duplicate values")
}
