// Package dataset holds the flat numeric feature table produced by
// feature engineering and consumed by training and inference. A Table
// keeps the (vaga, candidato) key pair per row next to the numeric
// columns, but keys are never part of the model input.
package dataset

import "fmt"

// RowKey identifies one (job opening, candidate) pair.
type RowKey struct {
	VagaID          string
	CodigoCandidato string
}

// Table is a column-named numeric matrix with one RowKey per row.
type Table struct {
	Columns []string
	Keys    []RowKey
	Rows    [][]float64
}

// New returns an empty table with the given column set.
func New(columns []string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.Rows) }

// Append adds one row. The value count must match the column count.
func (t *Table) Append(key RowKey, values []float64) error {
	if len(values) != len(t.Columns) {
		return fmt.Errorf("row has %d values, table has %d columns", len(values), len(t.Columns))
	}
	t.Keys = append(t.Keys, key)
	t.Rows = append(t.Rows, values)
	return nil
}

// ColumnIndex returns the position of name, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns the named column as a slice. An unknown name is an
// error: callers that want the 0-fill leniency use Align.
func (t *Table) Column(name string) ([]float64, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("unknown column %q", name)
	}
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Select returns a copy of the table restricted to the named columns, in
// the given order. Every name must exist.
func (t *Table) Select(names []string) (*Table, error) {
	idx := make([]int, len(names))
	for i, name := range names {
		j := t.ColumnIndex(name)
		if j < 0 {
			return nil, fmt.Errorf("unknown column %q", name)
		}
		idx[i] = j
	}

	out := New(names)
	for r, row := range t.Rows {
		values := make([]float64, len(idx))
		for i, j := range idx {
			values[i] = row[j]
		}
		out.Keys = append(out.Keys, t.Keys[r])
		out.Rows = append(out.Rows, values)
	}
	return out, nil
}

// Drop returns a copy of the table without the named columns. Names not
// present are ignored.
func (t *Table) Drop(names ...string) *Table {
	dropped := make(map[string]bool, len(names))
	for _, n := range names {
		dropped[n] = true
	}

	keep := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if !dropped[c] {
			keep = append(keep, c)
		}
	}

	out, _ := t.Select(keep)
	return out
}

// Align reindexes the table to exactly the given column order. A column
// the table is missing is filled with 0 for every row: a deliberate
// leniency for inference-time drift between engineered features and the
// model's training-time columns.
func (t *Table) Align(names []string) *Table {
	idx := make([]int, len(names))
	for i, name := range names {
		idx[i] = t.ColumnIndex(name)
	}

	out := New(names)
	for r, row := range t.Rows {
		values := make([]float64, len(idx))
		for i, j := range idx {
			if j >= 0 {
				values[i] = row[j]
			}
		}
		out.Keys = append(out.Keys, t.Keys[r])
		out.Rows = append(out.Rows, values)
	}
	return out
}

// FilterRows returns a copy keeping only rows for which pred is true.
func (t *Table) FilterRows(pred func(key RowKey, row []float64) bool) *Table {
	out := New(t.Columns)
	for i, row := range t.Rows {
		if pred(t.Keys[i], row) {
			out.Keys = append(out.Keys, t.Keys[i])
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// Matrix returns the raw row-major value matrix.
func (t *Table) Matrix() [][]float64 { return t.Rows }

// VagaIDs returns the distinct vaga ids in first-seen order.
func (t *Table) VagaIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, k := range t.Keys {
		if !seen[k.VagaID] {
			seen[k.VagaID] = true
			ids = append(ids, k.VagaID)
		}
	}
	return ids
}
