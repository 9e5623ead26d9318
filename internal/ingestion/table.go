package ingestion

import (
	"sort"
)

// Table is an ordered tabular structure built from extracted rows. The
// column set is the union of all row keys, in first-appearance order; a
// missing key in a row is a null cell. Rows keep insertion order until
// explicitly sorted.
type Table struct {
	cols    []string
	colSeen map[string]struct{}
	rows    []map[string]any
}

// NewTable creates an empty table (zero rows, zero columns).
func NewTable() *Table {
	return &Table{colSeen: make(map[string]struct{})}
}

// AddRow appends one row, registering any columns it introduces. Columns
// introduced by the same row are registered in sorted name order so the
// schema is deterministic regardless of map iteration.
func (t *Table) AddRow(row map[string]any) {
	var newCols []string
	for k := range row {
		if _, ok := t.colSeen[k]; !ok {
			newCols = append(newCols, k)
		}
	}
	sort.Strings(newCols)
	for _, k := range newCols {
		t.ensureColumn(k)
	}
	t.rows = append(t.rows, row)
}

// ensureColumn registers a column name if not yet present.
func (t *Table) ensureColumn(name string) {
	if _, ok := t.colSeen[name]; ok {
		return
	}
	t.colSeen[name] = struct{}{}
	t.cols = append(t.cols, name)
}

// EnsureColumn registers a column even when no row carries a value for it
// yet (an all-null column).
func (t *Table) EnsureColumn(name string) {
	t.ensureColumn(name)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns the column names in registration order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

// HasColumn reports whether the column is part of the table's schema.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.colSeen[name]
	return ok
}

// Row returns the i-th row. The returned map is the table's own storage;
// mutations through Set keep the schema consistent.
func (t *Table) Row(i int) map[string]any {
	return t.rows[i]
}

// Value returns the cell at (i, col); ok is false for a null cell.
func (t *Table) Value(i int, col string) (any, bool) {
	v, ok := t.rows[i][col]
	return v, ok
}

// Set assigns a cell value, registering the column if needed. A nil value
// deletes the cell (null), matching the missing-key convention.
func (t *Table) Set(i int, col string, v any) {
	if v == nil {
		delete(t.rows[i], col)
		return
	}
	t.ensureColumn(col)
	t.rows[i][col] = v
}

// SetConstColumn assigns the same value to every row of a column.
func (t *Table) SetConstColumn(col string, v any) {
	t.ensureColumn(col)
	for _, row := range t.rows {
		row[col] = v
	}
}

// Filter keeps only the rows for which keep returns true, preserving order.
// The column set is left untouched.
func (t *Table) Filter(keep func(row map[string]any) bool) {
	filtered := t.rows[:0]
	for _, row := range t.rows {
		if keep(row) {
			filtered = append(filtered, row)
		}
	}
	t.rows = filtered
}

// SortStable sorts rows with a stable sort using the given comparison.
func (t *Table) SortStable(less func(a, b map[string]any) bool) {
	sort.SliceStable(t.rows, func(i, j int) bool {
		return less(t.rows[i], t.rows[j])
	})
}

// Append concatenates another table's rows onto this one. The column set
// becomes the union, keeping this table's column order first.
func (t *Table) Append(other *Table) {
	for _, col := range other.cols {
		t.ensureColumn(col)
	}
	t.rows = append(t.rows, other.rows...)
}
