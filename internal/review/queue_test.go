package review

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendtrack-dev/spendtrack/internal/model"
	"github.com/spendtrack-dev/spendtrack/internal/store"
)

func newManager(t *testing.T) (*Manager, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "spendtrack.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewManager(st), st
}

func seed(t *testing.T, st *store.Store) {
	t.Helper()
	amount := decimal.RequireFromString("40.00")
	require.NoError(t, st.SaveTransactions([]model.Transaction{
		{ID: "t1", Description: "PAYPAL TRANSFER", Amount: amount, Type: model.TypeExpense, Category: model.CategoryNeedsReview},
		{ID: "t2", Description: "SAFEWAY", Amount: amount, Type: model.TypeExpense, Category: "Groceries"},
	}))
	require.NoError(t, st.SaveReviewQueue([]model.Transaction{
		{ID: "t1", Description: "PAYPAL TRANSFER", Amount: amount, Type: model.TypeExpense, Category: "Shopping"},
	}))
}

func TestResolve(t *testing.T) {
	m, st := newManager(t)
	seed(t, st)

	require.NoError(t, m.Resolve("t1", "Dates"))

	// Entry gone from the queue, category finalized in the main set.
	assert.Empty(t, m.Pending())
	txns := st.Transactions()
	require.Len(t, txns, 2)
	assert.Equal(t, "Dates", txns[0].Category)
	assert.Equal(t, "Groceries", txns[1].Category, "other transactions untouched")
}

func TestResolve_UnknownIDIsNoop(t *testing.T) {
	m, st := newManager(t)
	seed(t, st)

	require.NoError(t, m.Resolve("missing", "Dates"))

	assert.Len(t, m.Pending(), 1)
	assert.Equal(t, model.CategoryNeedsReview, st.Transactions()[0].Category)
}

func TestResolve_Idempotent(t *testing.T) {
	m, st := newManager(t)
	seed(t, st)

	require.NoError(t, m.Resolve("t1", "Dates"))
	require.NoError(t, m.Resolve("t1", "Hobbies"), "second resolve is a no-op")

	assert.Equal(t, "Dates", st.Transactions()[0].Category)
	assert.Empty(t, m.Pending())
}

func TestEnqueue_PreservesOrder(t *testing.T) {
	m, _ := newManager(t)

	require.NoError(t, m.Enqueue([]model.Transaction{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, m.Enqueue([]model.Transaction{{ID: "c"}}))

	queue := m.Pending()
	require.Len(t, queue, 3)
	assert.Equal(t, "a", queue[0].ID)
	assert.Equal(t, "b", queue[1].ID)
	assert.Equal(t, "c", queue[2].ID)
}
