package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendtrack-dev/spendtrack/internal/importer"
	"github.com/spendtrack-dev/spendtrack/internal/model"
)

func TestWrite_Format(t *testing.T) {
	txns := []model.Transaction{
		{ID: "a", Date: "2025-08-01", Description: "Chipotle Mexican Grill", Amount: decimal.RequireFromString("12.5"), Type: model.TypeExpense, Category: "Takeout"},
		{ID: "b", Date: "2025-08-02", Description: "Refund", Amount: decimal.RequireFromString("3"), Type: model.TypeIncome, Category: "Life & Extras"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, txns))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, Header, lines[0])
	assert.Equal(t, "2025-08-01,Chipotle Mexican Grill,-12.50,Takeout", lines[1])
	assert.Equal(t, "2025-08-02,Refund,3.00,Life & Extras", lines[2])
}

func TestWrite_RoundTripsThroughImporter(t *testing.T) {
	txns := []model.Transaction{
		{ID: "a", Date: "2025-08-01", Description: "PAYPAL TRANSFER", Amount: decimal.RequireFromString("40"), Type: model.TypeExpense, Category: "Shopping"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, txns))

	records, err := importer.ReadRecords(&buf)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2025-08-01", records[0].AuthorizedDate)
	assert.Equal(t, "PAYPAL TRANSFER", records[0].Description)
	assert.Equal(t, "-40.00", records[0].Amount)
	assert.Equal(t, "Shopping", records[0].DetailedCategory)
}

func TestFilename(t *testing.T) {
	name := Filename(time.Date(2025, 8, 29, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, "exported-transactions-2025-08-29.csv", name)
	assert.True(t, importer.IsReexport(name))
}
