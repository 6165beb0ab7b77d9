// Package tracker is the collaborator interface the presentation layer calls
// into: importing files, resolving reviews, budgets, and reporting.
package tracker

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/spendtrack-dev/spendtrack/internal/catalog"
	"github.com/spendtrack-dev/spendtrack/internal/exporter"
	"github.com/spendtrack-dev/spendtrack/internal/importer"
	"github.com/spendtrack-dev/spendtrack/internal/model"
	"github.com/spendtrack-dev/spendtrack/internal/pipeline"
	"github.com/spendtrack-dev/spendtrack/internal/report"
	"github.com/spendtrack-dev/spendtrack/internal/review"
	"github.com/spendtrack-dev/spendtrack/internal/rules"
	"github.com/spendtrack-dev/spendtrack/internal/store"
)

// Service wires the store, rule engine, pipeline, and review manager
// together. Imports serialize on an internal mutex: a second import observes
// the first's completed merge, never a partial state.
type Service struct {
	mu      sync.Mutex
	store   *store.Store
	pipe    *pipeline.Pipeline
	reviews *review.Manager
	catalog *catalog.Service
	log     zerolog.Logger
}

// NewService creates a Service and mirrors the category catalog into the
// store.
func NewService(st *store.Store, engine *rules.Engine, cat *catalog.Service, log zerolog.Logger) (*Service, error) {
	if err := st.SaveCategories(cat.All()); err != nil {
		return nil, fmt.Errorf("mirroring catalog: %w", err)
	}
	return &Service{
		store:   st,
		pipe:    pipeline.New(engine),
		reviews: review.NewManager(st),
		catalog: cat,
		log:     log,
	}, nil
}

// ImportSummary reports the outcome of one file import.
type ImportSummary struct {
	Appended         int
	FlaggedForReview int
	Reexport         bool
}

// ImportFile parses and classifies one CSV file and merges the result into
// the transaction set and review queue. The batch is atomic: any invalid
// amount aborts the import with no state change. filenameHint drives
// re-export provenance detection.
func (s *Service) ImportFile(r io.Reader, filenameHint string) (ImportSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := importer.ReadRecords(r)
	if err != nil {
		return ImportSummary{}, err
	}

	reexport := importer.IsReexport(filenameHint)
	res, err := s.pipe.Run(records, pipeline.Options{Reexport: reexport})
	if err != nil {
		return ImportSummary{}, err
	}

	txns := append(s.store.Transactions(), res.Clean...)
	if err := s.store.SaveTransactions(txns); err != nil {
		return ImportSummary{}, fmt.Errorf("merging transactions: %w", err)
	}
	if err := s.reviews.Enqueue(res.NeedsReview); err != nil {
		return ImportSummary{}, fmt.Errorf("queueing reviews: %w", err)
	}

	s.log.Info().
		Str("file", filenameHint).
		Bool("reexport", reexport).
		Int("appended", len(res.Clean)).
		Int("flagged", len(res.NeedsReview)).
		Msg("import complete")

	return ImportSummary{
		Appended:         len(res.Clean),
		FlaggedForReview: len(res.NeedsReview),
		Reexport:         reexport,
	}, nil
}

// ResolveReview assigns a final category to a queued transaction. Unknown or
// already-resolved ids are a no-op.
func (s *Service) ResolveReview(id, category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reviews.Resolve(id, category)
}

// PendingReviews returns the review queue in insertion order.
func (s *Service) PendingReviews() []model.Transaction {
	return s.reviews.Pending()
}

// Transactions returns the full transaction collection.
func (s *Service) Transactions() []model.Transaction {
	return s.store.Transactions()
}

// Export writes the full transaction set in the re-importable CSV format.
func (s *Service) Export(w io.Writer) error {
	return exporter.Write(w, s.store.Transactions())
}

// Categories returns the catalog in order.
func (s *Service) Categories() []model.Category {
	return s.catalog.All()
}

// MonthlyTotals aggregates the stored transactions for a month of the year.
func (s *Service) MonthlyTotals(month time.Month) report.Totals {
	return report.MonthlyTotals(s.store.Transactions(), month)
}

// BudgetOverview returns each category's budget status for a month.
func (s *Service) BudgetOverview(month time.Month) []report.BudgetLine {
	totals := s.MonthlyTotals(month)
	return report.BudgetOverview(s.catalog.All(), s.store.CategoryBudgets(), totals)
}

// MonthOverMonth compares a month's net total against the preceding month.
func (s *Service) MonthOverMonth(month time.Month) report.Comparison {
	return report.MonthOverMonth(s.store.Transactions(), month)
}

// SetBudget sets a category's monthly limit. The category must exist in the
// catalog and the limit must be non-negative.
func (s *Service) SetBudget(category string, limit decimal.Decimal) error {
	if !s.catalog.Exists(category) {
		return fmt.Errorf("unknown category %q", category)
	}
	if limit.IsNegative() {
		return fmt.Errorf("budget for %q must be non-negative", category)
	}
	budgets := s.store.CategoryBudgets()
	budgets[category] = limit
	return s.store.SaveCategoryBudgets(budgets)
}

// Budgets returns the per-category monthly limits.
func (s *Service) Budgets() map[string]decimal.Decimal {
	return s.store.CategoryBudgets()
}

// SetMonthlyIncome records the declared monthly income. The value must parse
// as a non-negative number.
func (s *Service) SetMonthlyIncome(income string) error {
	d, err := decimal.NewFromString(income)
	if err != nil {
		return fmt.Errorf("invalid income %q: %w", income, err)
	}
	if d.IsNegative() {
		return fmt.Errorf("income must be non-negative")
	}
	return s.store.SaveMonthlyIncome(income)
}

// MonthlyIncome returns the declared monthly income, or "" if unset.
func (s *Service) MonthlyIncome() string {
	return s.store.MonthlyIncome()
}

// Clear wipes all persisted state.
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Clear()
}
