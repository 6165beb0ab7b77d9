package model

import (
	"github.com/shopspring/decimal"
)

// TxType classifies the direction of a transaction. Sign information is
// extracted once at ingestion and never re-derived from the amount.
type TxType string

const (
	TypeIncome  TxType = "income"
	TypeExpense TxType = "expense"
)

// Category sentinels. The catalog never contains these; they are assigned by
// the ingestion pipeline and resolved away by review.
const (
	CategoryUncategorized = "Uncategorized"
	CategoryNeedsReview   = "Needs Review"

	// CategoryWages marks payroll rows that are dropped at ingestion.
	CategoryWages = "Wages"
)

// Transaction is one imported bank transaction.
//
// Amount is always a non-negative magnitude; direction lives solely in Type.
type Transaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"` // ISO 8601 day, e.g. "2025-08-01"
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TxType          `json:"type"`
	Category    string          `json:"category"`
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool { return t.Type == TypeExpense }

// SignedAmount returns the amount with the export sign convention applied:
// negative for expenses, unsigned for income.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
