// Package exporter writes the transaction set back to CSV in the exact
// format the importer's re-export detection round-trips.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spendtrack-dev/spendtrack/internal/model"
)

// Header is the CSV header for exported transaction files.
const Header = "Authorized Date,Description,Amount,Detailed Category"

const (
	numFields = 4
	colDate   = 0
	colDesc   = 1
	colAmount = 2
	colCat    = 3
)

// Filename returns the default export file name for a given day, e.g.
// "exported-transactions-2025-08-29.csv". The "exported" prefix is what the
// importer's provenance detection keys on.
func Filename(now time.Time) string {
	return fmt.Sprintf("exported-transactions-%s.csv", now.Format("2006-01-02"))
}

// Write writes all transactions, header included. Amounts carry a leading
// "-" for expenses and no sign for income.
func Write(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txns {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to an export CSV row.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = tx.Date
	row[colDesc] = tx.Description
	row[colAmount] = tx.SignedAmount().StringFixed(2)
	row[colCat] = tx.Category
	return row
}
