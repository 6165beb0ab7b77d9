// Package pipeline implements the transaction ingestion pipeline: normalize,
// filter ignorable rows, classify, and route each transaction to the clean
// set or the review queue.
package pipeline

import (
	"github.com/google/uuid"

	"github.com/spendtrack-dev/spendtrack/internal/importer"
	"github.com/spendtrack-dev/spendtrack/internal/model"
	"github.com/spendtrack-dev/spendtrack/internal/rules"
)

// Options controls a single pipeline run.
type Options struct {
	// Reexport marks the batch as originating from this system's own export.
	// Re-imported data is trusted as already final: the detailed category is
	// taken verbatim and no row enters review.
	Reexport bool
}

// Result is the outcome of one batch run. Clean holds every accepted
// transaction, including review-flagged ones tagged "Needs Review";
// NeedsReview holds the same flagged transactions (matched by ID) with their
// pre-sentinel category, in batch order.
type Result struct {
	Clean       []model.Transaction
	NeedsReview []model.Transaction
}

// Pipeline classifies normalized rows using a rule engine.
type Pipeline struct {
	engine *rules.Engine
}

// New creates a Pipeline around a rule engine.
func New(engine *rules.Engine) *Pipeline {
	return &Pipeline{engine: engine}
}

// Run processes a batch of raw records. The batch is atomic: the first
// invalid amount aborts the whole run and no partial result is returned.
// Ignored rows (wages, transfers) are dropped from both outputs.
func (p *Pipeline) Run(records []importer.RawRecord, opts Options) (Result, error) {
	var res Result
	for _, rec := range records {
		c, err := importer.Normalize(rec)
		if err != nil {
			return Result{}, err
		}
		if p.engine.ShouldIgnore(c.Description, c.DetailedCategory) {
			continue
		}

		keywordCategory := p.engine.Classify(c.Classification)

		category := finalCategory(c, keywordCategory, opts.Reexport)

		tx := model.Transaction{
			ID:          uuid.NewString(),
			Date:        c.Date,
			Description: c.Description,
			Amount:      c.Amount,
			Type:        c.Type,
			Category:    category,
		}

		needsReview := c.Type == model.TypeExpense &&
			p.engine.Ambiguous(c.Classification) &&
			keywordCategory == model.CategoryUncategorized &&
			!opts.Reexport

		if needsReview {
			res.NeedsReview = append(res.NeedsReview, tx)
			tagged := tx
			tagged.Category = model.CategoryNeedsReview
			res.Clean = append(res.Clean, tagged)
		} else {
			res.Clean = append(res.Clean, tx)
		}
	}
	return res, nil
}

// finalCategory decides the stored category for a row. Re-exported data keeps
// its detailed category verbatim; fresh imports prefer the keyword match and
// fall back to the detailed category when classification came up empty.
func finalCategory(c importer.Candidate, keywordCategory string, reexport bool) string {
	if reexport {
		return c.DetailedCategory
	}
	if keywordCategory != model.CategoryUncategorized {
		return keywordCategory
	}
	if c.DetailedCategory != "" {
		return c.DetailedCategory
	}
	return keywordCategory
}
