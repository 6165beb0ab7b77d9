package store

import (
	"github.com/shopspring/decimal"

	"github.com/spendtrack-dev/spendtrack/internal/model"
)

// Transactions loads the main transaction collection.
func (s *Store) Transactions() []model.Transaction {
	var txns []model.Transaction
	load(s, KeyTransactions, &txns)
	return txns
}

// SaveTransactions persists the main transaction collection.
func (s *Store) SaveTransactions(txns []model.Transaction) error {
	if txns == nil {
		txns = []model.Transaction{}
	}
	return s.save(KeyTransactions, txns)
}

// ReviewQueue loads the pending review queue in insertion order.
func (s *Store) ReviewQueue() []model.Transaction {
	var queue []model.Transaction
	load(s, KeyReviewQueue, &queue)
	return queue
}

// SaveReviewQueue persists the review queue.
func (s *Store) SaveReviewQueue(queue []model.Transaction) error {
	if queue == nil {
		queue = []model.Transaction{}
	}
	return s.save(KeyReviewQueue, queue)
}

// Categories loads the persisted category catalog mirror.
func (s *Store) Categories() []model.Category {
	var cats []model.Category
	load(s, KeyCategories, &cats)
	return cats
}

// SaveCategories persists the category catalog mirror.
func (s *Store) SaveCategories(cats []model.Category) error {
	return s.save(KeyCategories, cats)
}

// CategoryBudgets loads the per-category monthly limits.
func (s *Store) CategoryBudgets() map[string]decimal.Decimal {
	budgets := make(map[string]decimal.Decimal)
	load(s, KeyCategoryBudgets, &budgets)
	return budgets
}

// SaveCategoryBudgets persists the per-category monthly limits.
func (s *Store) SaveCategoryBudgets(budgets map[string]decimal.Decimal) error {
	return s.save(KeyCategoryBudgets, budgets)
}

// MonthlyIncome loads the declared monthly income, or "" if unset.
func (s *Store) MonthlyIncome() string {
	var income string
	load(s, KeyMonthlyIncome, &income)
	return income
}

// SaveMonthlyIncome persists the declared monthly income.
func (s *Store) SaveMonthlyIncome(income string) error {
	return s.save(KeyMonthlyIncome, income)
}
