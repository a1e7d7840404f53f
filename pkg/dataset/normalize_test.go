package dataset_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2024-01-15", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"2024-01-15 10:30:00", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), true},
		{"2024-01-15T10:30:00Z", time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), true},
		{"2024-01-15T10:30:00+02:00", time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC), true},
		{"  2024-01-15  ", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), true},
		{"not a date", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := dataset.ParseTime(tt.in)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
				assert.Equal(t, time.UTC, got.Location())
			}
		})
	}
}

func TestNormalizeDates(t *testing.T) {
	tbl := &dataset.Table{
		Name: "users",
		Columns: []*dataset.Column{
			{Name: "ID", Values: []dataset.Value{dataset.NewInt(1)}},
			{Name: "BIRTH_DATE", Values: []dataset.Value{dataset.NewString("1990-06-01")}},
			{Name: "CREATED_DATE", Values: []dataset.Value{dataset.NewNull()}},
		},
	}

	norm, err := dataset.NormalizeDates(tbl, "BIRTH_DATE", "CREATED_DATE", "PURCHASE_DATE")
	require.NoError(t, err)

	// Named columns are converted, nulls kept, absent columns skipped.
	bd := norm.Column("BIRTH_DATE")
	require.Equal(t, dataset.KindTime, bd.Values[0].Kind())
	assert.Equal(t, time.Date(1990, 6, 1, 0, 0, 0, 0, time.UTC), bd.Values[0].Time())
	assert.True(t, norm.Column("CREATED_DATE").Values[0].IsNull())

	// Untouched columns and the original table are unchanged.
	assert.Equal(t, dataset.KindInt, norm.Column("ID").Values[0].Kind())
	assert.Equal(t, dataset.KindString, tbl.Column("BIRTH_DATE").Values[0].Kind(),
		"normalization must not mutate the input table")
}

func TestNormalizeDatesAlreadyTime(t *testing.T) {
	loc := time.FixedZone("plus2", 2*3600)
	tbl := &dataset.Table{
		Name: "t",
		Columns: []*dataset.Column{
			{Name: "SCAN_DATE", Values: []dataset.Value{dataset.NewTime(time.Date(2024, 1, 1, 12, 0, 0, 0, loc))}},
		},
	}

	norm, err := dataset.NormalizeDates(tbl, "SCAN_DATE")
	require.NoError(t, err)
	got := norm.Column("SCAN_DATE").Values[0].Time()
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 10, got.Hour())
}

func TestNormalizeDatesErrors(t *testing.T) {
	tests := []struct {
		name  string
		value dataset.Value
	}{
		{"unparseable string", dataset.NewString("banana")},
		{"numeric value", dataset.NewInt(42)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := &dataset.Table{
				Name:    "t",
				Columns: []*dataset.Column{{Name: "BIRTH_DATE", Values: []dataset.Value{tt.value}}},
			}
			_, err := dataset.NormalizeDates(tbl, "BIRTH_DATE")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "BIRTH_DATE")
		})
	}
}
