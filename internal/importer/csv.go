package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Recognized header column names (case-sensitive).
const (
	ColAuthorizedDate   = "Authorized Date"
	ColDescription      = "Description"
	ColAmount           = "Amount"
	ColDetailedCategory = "Detailed Category"
	ColPrimaryCategory  = "Primary Category"
)

// ErrEmptyFile is returned when a file contains no parseable data rows.
var ErrEmptyFile = errors.New("no parseable rows in file")

// ReadRecords reads a header-row CSV and returns its data rows. Columns are
// located by header name; rows shorter than the header are padded with empty
// fields. Returns ErrEmptyFile when the file has no data rows or its header
// carries none of the recognized columns.
func ReadRecords(r io.Reader) ([]RawRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) <= 1 {
		return nil, ErrEmptyFile
	}

	idx := headerIndex(rows[0])
	if len(idx) == 0 {
		return nil, ErrEmptyFile
	}

	records := make([]RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, RawRecord{
			AuthorizedDate:   field(row, idx, ColAuthorizedDate),
			Description:      field(row, idx, ColDescription),
			Amount:           field(row, idx, ColAmount),
			DetailedCategory: field(row, idx, ColDetailedCategory),
			PrimaryCategory:  field(row, idx, ColPrimaryCategory),
		})
	}
	return records, nil
}

func headerIndex(header []string) map[string]int {
	recognized := map[string]bool{
		ColAuthorizedDate:   true,
		ColDescription:      true,
		ColAmount:           true,
		ColDetailedCategory: true,
		ColPrimaryCategory:  true,
	}
	idx := make(map[string]int)
	for i, name := range header {
		if recognized[name] {
			idx[name] = i
		}
	}
	return idx
}

func field(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
