package source_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tablecheck/internal/source"
	"github.com/leapstack-labs/tablecheck/pkg/dataset"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want dataset.Kind
	}{
		{"", dataset.KindNull},
		{"42", dataset.KindInt},
		{"-7", dataset.KindInt},
		{"3.14", dataset.KindFloat},
		{"true", dataset.KindBool},
		{"FALSE", dataset.KindBool},
		{"2024-01-15", dataset.KindTime},
		{"hello", dataset.KindString},
		{"12abc", dataset.KindString},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, source.ParseValue(tt.in).Kind())
		})
	}
}

func TestParseValueKeepsOriginalText(t *testing.T) {
	v := source.ParseValue("  padded  ")
	require.Equal(t, dataset.KindString, v.Kind())
	assert.Equal(t, "  padded  ", v.Str())
}

func TestCSV(t *testing.T) {
	path := writeFile(t, "users.csv", "ID,FIRST NAME,SCORE\n1,alice,9.5\n2,bob,\n")

	tbl, err := source.CSV(path, "users", ',')
	require.NoError(t, err)

	assert.Equal(t, "users", tbl.Name)
	assert.Equal(t, 2, tbl.NumRows())
	// Header names are preserved verbatim, spaces included.
	assert.Equal(t, []string{"ID", "FIRST NAME", "SCORE"}, tbl.ColumnNames())

	assert.Equal(t, dataset.KindInt, tbl.Column("ID").Values[0].Kind())
	assert.Equal(t, dataset.KindFloat, tbl.Column("SCORE").Values[0].Kind())
	assert.True(t, tbl.Column("SCORE").Values[1].IsNull(), "empty cell is null")
}

func TestCSVCustomDelimiter(t *testing.T) {
	path := writeFile(t, "data.csv", "a;b\n1;2\n")

	tbl, err := source.CSV(path, "data", ';')
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.ColumnNames())
	assert.Equal(t, int64(2), tbl.Column("b").Values[0].Int())
}

func TestCSVErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := source.CSV(filepath.Join(t.TempDir(), "nope.csv"), "t", ',')
		assert.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "empty.csv", "")
		_, err := source.CSV(path, "t", ',')
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no header row")
	})

	t.Run("ragged rows", func(t *testing.T) {
		path := writeFile(t, "ragged.csv", "a,b\n1\n")
		_, err := source.CSV(path, "t", ',')
		assert.Error(t, err)
	})
}

func TestCSVHeaderOnly(t *testing.T) {
	path := writeFile(t, "header.csv", "a,b\n")

	tbl, err := source.CSV(path, "t", ',')
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.NumRows())
	assert.Equal(t, 2, tbl.NumCols())
}
