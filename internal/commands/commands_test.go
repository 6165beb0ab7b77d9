package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDataDir points the store at a throwaway database.
func setupDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("SPENDTRACK_DATABASE_PATH", filepath.Join(dir, "spendtrack.db"))
	return dir
}

func writeStatement(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "statement.csv")
	csv := "Authorized Date,Description,Amount,Detailed Category,Primary Category\n" +
		"2025-08-01,Chipotle Mexican Grill,-12.50,Restaurants,Food and Drink\n" +
		"2025-08-02,PAYPAL TRANSFER,-40.00,Shopping,Transfer\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))
	return path
}

func TestImportReviewFlow(t *testing.T) {
	dir := setupDataDir(t)
	statement := writeStatement(t, dir)

	out, err := runCommand(t, "import", statement)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 transactions")
	assert.Contains(t, out, "1 transactions need review")

	out, err = runCommand(t, "review", "list")
	require.NoError(t, err)
	require.Contains(t, out, "PAYPAL TRANSFER")

	id := strings.Fields(out)[0]
	out, err = runCommand(t, "review", "resolve", id, "Dates")
	require.NoError(t, err)
	assert.Contains(t, out, "Resolved")

	out, err = runCommand(t, "review", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Nothing to review")
}

func TestImportCommand_InvalidAmount(t *testing.T) {
	dir := setupDataDir(t)
	path := filepath.Join(dir, "statement.csv")
	csv := "Authorized Date,Description,Amount,Detailed Category,Primary Category\n" +
		"2025-08-01,BAD ROW,abc,,\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	_, err := runCommand(t, "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid amount")
}

func TestExportCommand(t *testing.T) {
	dir := setupDataDir(t)
	statement := writeStatement(t, dir)

	_, err := runCommand(t, "import", statement)
	require.NoError(t, err)

	exportPath := filepath.Join(dir, "exported-transactions-test.csv")
	out, err := runCommand(t, "export", "-o", exportPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 transactions")

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Authorized Date,Description,Amount,Detailed Category"))
}

func TestBudgetCommands(t *testing.T) {
	setupDataDir(t)

	out, err := runCommand(t, "budget", "set", "Takeout", "150")
	require.NoError(t, err)
	assert.Contains(t, out, "Budget for Takeout set to 150.00")

	_, err = runCommand(t, "budget", "set", "Nonsense", "10")
	require.Error(t, err)

	out, err = runCommand(t, "budget", "income", "4200")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly income set to 4200")

	out, err = runCommand(t, "budget", "show", "--month", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Monthly income: 4200")
	assert.Contains(t, out, "Takeout")
}

func TestSummaryCommand(t *testing.T) {
	dir := setupDataDir(t)
	statement := writeStatement(t, dir)

	_, err := runCommand(t, "import", statement)
	require.NoError(t, err)

	out, err := runCommand(t, "summary", "--month", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "Expense: 52.50")
	assert.Contains(t, out, "Takeout")
}
