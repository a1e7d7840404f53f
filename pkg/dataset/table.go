// Package dataset defines the in-memory table model profiled by tablecheck.
//
// A Table is an ordered list of named columns over heterogeneous typed
// values. Column names are taken as-is from the source: they may repeat and
// may contain whitespace, since detecting both is part of profiling.
package dataset

// Column is a named, ordered list of values.
type Column struct {
	Name   string
	Values []Value
}

// Len returns the number of values, including nulls.
func (c *Column) Len() int { return len(c.Values) }

// NullCount returns the number of null values.
func (c *Column) NullCount() int {
	n := 0
	for _, v := range c.Values {
		if v.IsNull() {
			n++
		}
	}
	return n
}

// NonNull returns the non-null values in order.
func (c *Column) NonNull() []Value {
	out := make([]Value, 0, len(c.Values))
	for _, v := range c.Values {
		if !v.IsNull() {
			out = append(out, v)
		}
	}
	return out
}

// DistinctNonNull returns the number of distinct non-null values.
func (c *Column) DistinctNonNull() int {
	seen := make(map[string]struct{}, len(c.Values))
	for _, v := range c.Values {
		if v.IsNull() {
			continue
		}
		seen[v.Key()] = struct{}{}
	}
	return len(seen)
}

// DuplicateCount returns the number of non-null values that repeat an
// earlier value, i.e. non-null count minus distinct non-null count.
func (c *Column) DuplicateCount() int {
	return len(c.Values) - c.NullCount() - c.DistinctNonNull()
}

// InferKind generalizes the kinds of all non-null values. An empty or
// all-null column infers as KindNull.
func (c *Column) InferKind() Kind {
	kind := KindNull
	for _, v := range c.Values {
		kind = generalizeKind(kind, v.Kind())
	}
	return kind
}

// Table is a named, ordered collection of columns.
type Table struct {
	Name    string
	Columns []*Column
}

// NumRows returns the row count. Columns are assumed rectangular; the first
// column is authoritative.
func (t *Table) NumRows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

// NumCols returns the column count.
func (t *Table) NumCols() int { return len(t.Columns) }

// Column returns the first column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// HasColumn reports whether a column with the given name exists.
func (t *Table) HasColumn(name string) bool { return t.Column(name) != nil }

// ColumnNames returns all column names in order, duplicates included.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Row returns the values of row i across all columns.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.Columns))
	for j, c := range t.Columns {
		row[j] = c.Values[i]
	}
	return row
}

// Clone returns a copy of the table with a fresh column slice. The columns
// themselves are shared; callers replacing a column must swap the pointer,
// not mutate the shared values.
func (t *Table) Clone() *Table {
	cols := make([]*Column, len(t.Columns))
	copy(cols, t.Columns)
	return &Table{Name: t.Name, Columns: cols}
}
