package source

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"
)

// CSV loads a CSV file into a table. The first record is the header; header
// names are not trimmed or deduplicated. A zero delimiter means comma.
func CSV(path, name string, delimiter rune) (*dataset.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	if delimiter != 0 {
		r.Comma = delimiter
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("reading %s: no header row", path)
	}

	header := records[0]
	cols := make([]*dataset.Column, len(header))
	for i, h := range header {
		cols[i] = &dataset.Column{
			Name:   h,
			Values: make([]dataset.Value, 0, len(records)-1),
		}
	}

	for _, record := range records[1:] {
		for i := range cols {
			cols[i].Values = append(cols[i].Values, ParseValue(record[i]))
		}
	}

	return &dataset.Table{Name: name, Columns: cols}, nil
}
