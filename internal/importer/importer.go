// Package importer parses bank-exported CSV files into transaction
// candidates ready for classification.
package importer

import (
	"path/filepath"
	"strings"
)

// RawRecord is one data row of an imported CSV, keyed by the recognized
// header columns. Unrecognized columns are dropped; missing columns are
// empty strings.
type RawRecord struct {
	AuthorizedDate   string
	Description      string
	Amount           string
	DetailedCategory string
	PrimaryCategory  string
}

// ExportedFilePrefix marks files produced by this system's own export
// function. Imports of such files are trusted as already categorized.
const ExportedFilePrefix = "exported"

// IsReexport reports whether filename names a file previously produced by the
// exporter, based on its base-name prefix.
func IsReexport(filename string) bool {
	return strings.HasPrefix(filepath.Base(filename), ExportedFilePrefix)
}
