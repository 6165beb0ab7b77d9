// Package review maintains the ordered queue of transactions pending manual
// categorization and keeps it consistent with the main transaction set.
package review

import (
	"fmt"

	"github.com/spendtrack-dev/spendtrack/internal/model"
	"github.com/spendtrack-dev/spendtrack/internal/store"
)

// Manager owns the resolution transition for review entries. Queue membership
// and main-collection categories only change together through Resolve; no
// other code path removes a queue entry.
type Manager struct {
	store *store.Store
}

// NewManager creates a Manager over the shared store.
func NewManager(st *store.Store) *Manager {
	return &Manager{store: st}
}

// Pending returns the queue in insertion order (first flagged, first served).
func (m *Manager) Pending() []model.Transaction {
	return m.store.ReviewQueue()
}

// Enqueue appends a batch of review entries to the queue tail, preserving
// batch-internal order.
func (m *Manager) Enqueue(txns []model.Transaction) error {
	if len(txns) == 0 {
		return nil
	}
	queue := append(m.store.ReviewQueue(), txns...)
	return m.store.SaveReviewQueue(queue)
}

// Resolve assigns a final category to the transaction matching id in the main
// collection and removes the matching queue entry. Resolving an id that is
// not queued is a no-op, so resolving twice has no additional effect.
func (m *Manager) Resolve(id, category string) error {
	queue := m.store.ReviewQueue()

	found := -1
	for i, tx := range queue {
		if tx.ID == id {
			found = i
			break
		}
	}
	if found < 0 {
		return nil
	}

	txns := m.store.Transactions()
	for i := range txns {
		if txns[i].ID == id {
			txns[i].Category = category
		}
	}
	if err := m.store.SaveTransactions(txns); err != nil {
		return fmt.Errorf("finalizing category: %w", err)
	}

	queue = append(queue[:found], queue[found+1:]...)
	if err := m.store.SaveReviewQueue(queue); err != nil {
		return fmt.Errorf("removing queue entry: %w", err)
	}
	return nil
}
