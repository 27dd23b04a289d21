package dataset

import (
	"path/filepath"
	"testing"
)

func sample(t *testing.T) *Table {
	t.Helper()

	tbl := New([]string{"a", "b", "c"})
	rows := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}
	for i, row := range rows {
		key := RowKey{VagaID: "v1", CodigoCandidato: string(rune('x' + i))}
		if err := tbl.Append(key, row); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	return tbl
}

func TestAppendRejectsWrongWidth(t *testing.T) {
	t.Parallel()

	tbl := New([]string{"a", "b"})
	if err := tbl.Append(RowKey{}, []float64{1}); err == nil {
		t.Fatalf("expected error for short row")
	}
}

func TestAlignFillsMissingWithZero(t *testing.T) {
	t.Parallel()

	tbl := New([]string{"c", "a"})
	if err := tbl.Append(RowKey{VagaID: "v1"}, []float64{3, 1}); err != nil {
		t.Fatalf("append: %v", err)
	}

	aligned := tbl.Align([]string{"a", "b", "c"})

	if got := aligned.Columns; len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected aligned columns: %v", got)
	}
	row := aligned.Rows[0]
	if row[0] != 1 || row[1] != 0 || row[2] != 3 {
		t.Fatalf("unexpected aligned row: %v", row)
	}
}

func TestDropAndSelect(t *testing.T) {
	t.Parallel()

	tbl := sample(t)

	dropped := tbl.Drop("b", "nonexistent")
	if len(dropped.Columns) != 2 || dropped.Columns[0] != "a" || dropped.Columns[1] != "c" {
		t.Fatalf("unexpected columns after drop: %v", dropped.Columns)
	}
	if dropped.Rows[1][1] != 6 {
		t.Fatalf("unexpected value after drop: %v", dropped.Rows)
	}

	if _, err := tbl.Select([]string{"a", "zzz"}); err == nil {
		t.Fatalf("expected error selecting unknown column")
	}
}

func TestColumnUnknownName(t *testing.T) {
	t.Parallel()

	tbl := sample(t)
	if _, err := tbl.Column("missing"); err == nil {
		t.Fatalf("expected error for unknown column")
	}
	col, err := tbl.Column("b")
	if err != nil {
		t.Fatalf("column: %v", err)
	}
	if col[0] != 2 || col[1] != 5 {
		t.Fatalf("unexpected column values: %v", col)
	}
}

func TestCSVRoundTrip(t *testing.T) {
	t.Parallel()

	tbl := sample(t)
	path := filepath.Join(t.TempDir(), "clean.csv")

	if err := tbl.WriteCSV(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	if got.Len() != tbl.Len() {
		t.Fatalf("row count %d, want %d", got.Len(), tbl.Len())
	}
	for i := range tbl.Columns {
		if got.Columns[i] != tbl.Columns[i] {
			t.Fatalf("column %d = %q, want %q", i, got.Columns[i], tbl.Columns[i])
		}
	}
	for i := range tbl.Rows {
		if got.Keys[i] != tbl.Keys[i] {
			t.Fatalf("key %d = %+v, want %+v", i, got.Keys[i], tbl.Keys[i])
		}
		for j := range tbl.Rows[i] {
			if got.Rows[i][j] != tbl.Rows[i][j] {
				t.Fatalf("cell (%d,%d) = %v, want %v", i, j, got.Rows[i][j], tbl.Rows[i][j])
			}
		}
	}
}

func TestReadCSVRejectsBadHeader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.csv")
	tbl := New([]string{"a"})
	if err := tbl.WriteCSV(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := ReadCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
