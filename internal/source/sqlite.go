package source

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"github.com/leapstack-labs/tablecheck/pkg/dataset"

	_ "modernc.org/sqlite" // sqlite driver
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_ ]*$`)

// SQLite loads one table from a SQLite database file.
func SQLite(ctx context.Context, dbPath, tableName string) (*dataset.Table, error) {
	if !identPattern.MatchString(tableName) {
		return nil, fmt.Errorf("invalid table name %q", tableName)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", dbPath, err)
	}
	defer func() { _ = db.Close() }()

	return ReadTable(ctx, db, tableName)
}

// ReadTable reads every row of the named table from an open database.
// Column order follows the result set; TEXT cells go through the same typed
// parsing as CSV cells so both sources profile identically.
func ReadTable(ctx context.Context, db *sql.DB, tableName string) (*dataset.Table, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s"`, tableName))
	if err != nil {
		return nil, fmt.Errorf("querying table %s: %w", tableName, err)
	}
	defer func() { _ = rows.Close() }()

	names, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	cols := make([]*dataset.Column, len(names))
	for i, n := range names {
		cols[i] = &dataset.Column{Name: n}
	}

	for rows.Next() {
		values := make([]any, len(names))
		ptrs := make([]any, len(names))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range values {
			cols[i].Values = append(cols[i].Values, sqlValue(v))
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &dataset.Table{Name: tableName, Columns: cols}, nil
}

func sqlValue(v any) dataset.Value {
	switch x := v.(type) {
	case nil:
		return dataset.NewNull()
	case int64:
		return dataset.NewInt(x)
	case float64:
		return dataset.NewFloat(x)
	case bool:
		return dataset.NewBool(x)
	case time.Time:
		return dataset.NewTime(x)
	case []byte:
		return ParseValue(string(x))
	case string:
		return ParseValue(x)
	}
	return dataset.NewString(fmt.Sprintf("%v", v))
}
