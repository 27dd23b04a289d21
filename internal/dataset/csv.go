package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// key columns leading every CSV written or read by this package.
const (
	colVagaID          = "vaga_id"
	colCodigoCandidato = "codigo_candidato"
)

// WriteCSV writes the table as comma-separated text with a header row:
// vaga_id, codigo_candidato, then every feature column.
func (t *Table) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	header := append([]string{colVagaID, colCodigoCandidato}, t.Columns...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}

	record := make([]string, len(header))
	for i, row := range t.Rows {
		record[0] = t.Keys[i].VagaID
		record[1] = t.Keys[i].CodigoCandidato
		for j, v := range row {
			record[j+2] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing row %d to %s: %w", i, path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}

// ReadCSV loads a table previously written by WriteCSV. The header must
// start with the key columns; a malformed file is a fatal, descriptive
// error, never an empty table.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty file, expected a header row", path)
	}

	header := records[0]
	if len(header) < 2 || header[0] != colVagaID || header[1] != colCodigoCandidato {
		return nil, fmt.Errorf("%s: header must start with %s,%s", path, colVagaID, colCodigoCandidato)
	}

	t := New(header[2:])
	for n, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("%s: row %d has %d fields, expected %d", path, n+1, len(record), len(header))
		}
		values := make([]float64, len(record)-2)
		for j, field := range record[2:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d column %q: %w", path, n+1, header[j+2], err)
			}
			values[j] = v
		}
		t.Keys = append(t.Keys, RowKey{VagaID: record[0], CodigoCandidato: record[1]})
		t.Rows = append(t.Rows, values)
	}

	return t, nil
}
