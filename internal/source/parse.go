// Package source loads tables from external inputs (CSV files, SQLite
// databases) into the dataset model. Loading never cleans the data: column
// names and cell values are preserved as found so the profiler can flag
// problems rather than paper over them.
package source

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
)

// ParseValue converts a raw text cell into a typed value. An empty cell is
// null; otherwise integer, float, boolean and timestamp forms are tried
// before falling back to string. The original text, including surrounding
// whitespace, is kept for string values.
func ParseValue(s string) dataset.Value {
	if s == "" {
		return dataset.NewNull()
	}

	trimmed := strings.TrimSpace(s)
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return dataset.NewInt(i)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return dataset.NewFloat(f)
	}
	switch strings.ToLower(trimmed) {
	case "true":
		return dataset.NewBool(true)
	case "false":
		return dataset.NewBool(false)
	}
	if t, ok := dataset.ParseTime(trimmed); ok {
		return dataset.NewTime(t)
	}
	return dataset.NewString(s)
}
