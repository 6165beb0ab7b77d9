package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendtrack-dev/spendtrack/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func tx(date, desc, amount, category string, typ model.TxType) model.Transaction {
	return model.Transaction{ID: desc, Date: date, Description: desc, Amount: dec(amount), Category: category, Type: typ}
}

func augustSample() []model.Transaction {
	return []model.Transaction{
		tx("2025-08-01", "Chipotle", "12.50", "Takeout", model.TypeExpense),
		tx("2025-08-05", "Subway", "7.50", "Takeout", model.TypeExpense),
		tx("2025-08-10", "Refund", "5.00", "Takeout", model.TypeIncome),
		tx("2025-08-12", "Rent", "900.00", "Rent & Utilities", model.TypeExpense),
		tx("2025-07-20", "July Chipotle", "10.00", "Takeout", model.TypeExpense),
	}
}

func TestMonthlyTotals(t *testing.T) {
	totals := MonthlyTotals(augustSample(), time.August)

	assert.True(t, totals.Income.Equal(dec("5")), "income %s", totals.Income)
	assert.True(t, totals.Expense.Equal(dec("920")), "expense %s", totals.Expense)

	// Refund nets against the category's spend.
	assert.True(t, totals.ByCategory["Takeout"].Equal(dec("15")))
	assert.True(t, totals.ByCategory["Rent & Utilities"].Equal(dec("900")))
}

func TestMonthlyTotals_SkipsUnparsableDates(t *testing.T) {
	txns := []model.Transaction{
		tx("not-a-date", "Bad", "10.00", "Takeout", model.TypeExpense),
		tx("2025-08-01", "Good", "1.00", "Takeout", model.TypeExpense),
	}
	totals := MonthlyTotals(txns, time.August)
	assert.True(t, totals.Expense.Equal(dec("1")))
}

func TestBudgetOverview(t *testing.T) {
	catalog := []model.Category{{Name: "Takeout"}, {Name: "Rent & Utilities"}, {Name: "Hobbies"}}
	budgets := map[string]decimal.Decimal{
		"Takeout":          dec("10"),
		"Rent & Utilities": dec("1000"),
	}
	totals := MonthlyTotals(augustSample(), time.August)

	lines := BudgetOverview(catalog, budgets, totals)
	require.Len(t, lines, 3)

	assert.Equal(t, "Takeout", lines[0].Category)
	assert.True(t, lines[0].Over, "15 spent against a 10 limit")
	assert.True(t, lines[0].Remaining.IsZero())

	assert.False(t, lines[1].Over)
	assert.True(t, lines[1].Remaining.Equal(dec("100")))

	// Unbudgeted, unspent category.
	assert.True(t, lines[2].Limit.IsZero())
	assert.True(t, lines[2].Spent.IsZero())
}

func TestMonthOverMonth(t *testing.T) {
	cmp := MonthOverMonth(augustSample(), time.August)

	assert.True(t, cmp.Current.Equal(dec("-915")), "current %s", cmp.Current)
	assert.True(t, cmp.Previous.Equal(dec("-10")))
	assert.True(t, cmp.Change.Equal(dec("-905")))
}

func TestMonthOverMonth_January(t *testing.T) {
	cmp := MonthOverMonth([]model.Transaction{
		tx("2025-01-05", "Rent", "900.00", "Rent & Utilities", model.TypeExpense),
	}, time.January)

	assert.True(t, cmp.Previous.IsZero())
	assert.True(t, cmp.Change.Equal(cmp.Current))
}
