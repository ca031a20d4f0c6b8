package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bazarstat/bazarstat/internal/model"
)

// WriteDataset writes the canonical dataset to path as UTF-8 CSV with the
// fixed 33-column header. Intermediate directories are created
// automatically.
func WriteDataset(path string, records []model.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: create file %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(model.Columns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for i := range records {
		if err := w.Write(records[i].Fields()); err != nil {
			return fmt.Errorf("csv: write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	return f.Close()
}

// ReadDataset loads a canonical dataset written by WriteDataset. The
// header must be exactly the canonical column set in order.
func ReadDataset(path string) ([]model.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("csv: read header: %w", err)
	}
	if len(header) != len(model.Columns) {
		return nil, fmt.Errorf("csv: %q has %d columns, want %d", path, len(header), len(model.Columns))
	}
	for i, col := range model.Columns {
		if header[i] != col {
			return nil, fmt.Errorf("csv: %q column %d is %q, want %q", path, i, header[i], col)
		}
	}

	var records []model.Record
	for {
		row, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("csv: read row: %w", err)
		}
		var rec model.Record
		for i, col := range model.Columns {
			rec.Set(col, row[i])
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadRawSource loads one collector's raw CSV into header-keyed rows. The
// field vocabulary is the source's own; the mapping registry interprets it.
func ReadRawSource(path string) ([]model.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // collectors occasionally emit ragged rows
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("csv: read header of %q: %w", path, err)
	}

	var rows []model.RawRecord
	for {
		row, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("csv: read row of %q: %w", path, err)
		}
		raw := make(model.RawRecord, len(header))
		for i, col := range header {
			if i < len(row) {
				raw[col] = row[i]
			}
		}
		rows = append(rows, raw)
	}
	return rows, nil
}
