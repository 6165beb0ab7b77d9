// Package report aggregates the transaction set into monthly totals and
// budget overviews.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendtrack-dev/spendtrack/internal/model"
)

// Totals summarizes one month of activity. ByCategory nets expenses minus
// income per category, so refunds reduce a category's spend.
type Totals struct {
	Income     decimal.Decimal
	Expense    decimal.Decimal
	ByCategory map[string]decimal.Decimal
}

// MonthlyTotals aggregates transactions whose date falls in the given month
// of the year. Rows with unparsable dates are skipped. Results are rounded to
// two decimals.
func MonthlyTotals(txns []model.Transaction, month time.Month) Totals {
	totals := Totals{ByCategory: make(map[string]decimal.Decimal)}
	for _, tx := range txns {
		date, err := time.Parse("2006-01-02", tx.Date)
		if err != nil || date.Month() != month {
			continue
		}
		switch tx.Type {
		case model.TypeIncome:
			totals.Income = totals.Income.Add(tx.Amount)
			totals.ByCategory[tx.Category] = totals.ByCategory[tx.Category].Sub(tx.Amount)
		case model.TypeExpense:
			totals.Expense = totals.Expense.Add(tx.Amount)
			totals.ByCategory[tx.Category] = totals.ByCategory[tx.Category].Add(tx.Amount)
		}
	}

	totals.Income = totals.Income.Round(2)
	totals.Expense = totals.Expense.Round(2)
	for cat, v := range totals.ByCategory {
		totals.ByCategory[cat] = v.Round(2)
	}
	return totals
}

// BudgetLine is one category's budget status for a month.
type BudgetLine struct {
	Category  string
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal // never negative
	Over      bool
}

// BudgetOverview pairs each catalog category with its monthly limit and the
// month's spend. Catalog order is preserved.
func BudgetOverview(catalog []model.Category, budgets map[string]decimal.Decimal, totals Totals) []BudgetLine {
	lines := make([]BudgetLine, 0, len(catalog))
	for _, cat := range catalog {
		limit := budgets[cat.Name]
		spent := totals.ByCategory[cat.Name]
		remaining := limit.Sub(spent)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		lines = append(lines, BudgetLine{
			Category:  cat.Name,
			Limit:     limit,
			Spent:     spent,
			Remaining: remaining,
			Over:      spent.GreaterThan(limit),
		})
	}
	return lines
}

// Comparison is the month-over-month change in net total (income minus
// expenses).
type Comparison struct {
	Current  decimal.Decimal
	Previous decimal.Decimal
	Change   decimal.Decimal
}

// MonthOverMonth compares the selected month's net total against the
// preceding month's. January has no preceding month; Previous stays zero.
func MonthOverMonth(txns []model.Transaction, month time.Month) Comparison {
	current := MonthlyTotals(txns, month)
	cmp := Comparison{Current: current.Income.Sub(current.Expense)}
	if month > time.January {
		prev := MonthlyTotals(txns, month-1)
		cmp.Previous = prev.Income.Sub(prev.Expense)
	}
	cmp.Change = cmp.Current.Sub(cmp.Previous)
	return cmp
}
