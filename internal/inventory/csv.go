package inventory

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

var ErrMissingItemIDColumn = errors.New("csv has no item_id column")

// ParseCSV reads an uploaded CSV and returns its normalized records.
// Header names are matched case- and space-insensitively. Rows without an
// item_id are dropped silently; ragged rows are tolerated and missing
// cells fall back to their defaults.
func ParseCSV(r io.Reader) ([]PartRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrMissingItemIDColumn
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	cols := make([]string, len(header))
	hasItemID := false
	for i, h := range header {
		cols[i] = normalizeColumn(h)
		if cols[i] == "item_id" {
			hasItemID = true
		}
	}
	if !hasItemID {
		return nil, ErrMissingItemIDColumn
	}

	var records []PartRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}

		raw := make(map[string]string, len(cols))
		for i, col := range cols {
			if i < len(row) {
				raw[col] = row[i]
			}
		}

		if rec, ok := NormalizeRecord(raw); ok {
			records = append(records, rec)
		}
	}

	return records, nil
}
