package dataset

import (
	"fmt"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006",
	"01-02-2006",
}

// ParseTime parses a string into a UTC timestamp, trying a fixed set of
// layouts. Layouts without an offset are taken as UTC.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// NormalizeDates returns a copy of the table in which each named column has
// its values converted to UTC timestamps. The input table is not modified.
// Columns not present in the table are skipped. A non-null value that cannot
// be parsed as a timestamp is an error; there is no per-value recovery.
func NormalizeDates(t *Table, names ...string) (*Table, error) {
	out := t.Clone()
	for i, col := range out.Columns {
		if !containsName(names, col.Name) {
			continue
		}
		norm, err := normalizeColumn(col)
		if err != nil {
			return nil, err
		}
		out.Columns[i] = norm
	}
	return out, nil
}

func normalizeColumn(col *Column) (*Column, error) {
	values := make([]Value, len(col.Values))
	for i, v := range col.Values {
		switch v.Kind() {
		case KindNull:
			values[i] = v
		case KindTime:
			values[i] = NewTime(v.Time().UTC())
		case KindString:
			t, ok := ParseTime(v.Str())
			if !ok {
				return nil, fmt.Errorf("column %s: cannot parse %q as a timestamp", col.Name, v.Str())
			}
			values[i] = NewTime(t)
		default:
			return nil, fmt.Errorf("column %s: cannot convert %s value %s to a timestamp", col.Name, v.Kind(), v)
		}
	}
	return &Column{Name: col.Name, Values: values}, nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
