package importer

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/spendtrack-dev/spendtrack/internal/model"
)

// InvalidAmountError reports a row whose amount field is not a finite number.
// It aborts the entire batch; no rows from the batch are committed.
type InvalidAmountError struct {
	Description string
	Amount      string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q for %q", e.Amount, e.Description)
}

// Candidate is a validated transaction candidate produced from one raw row.
type Candidate struct {
	Date             string
	Description      string
	Amount           decimal.Decimal // absolute magnitude
	Type             model.TxType
	DetailedCategory string

	// Classification is the composite string evaluated by the rule engine.
	// It is never stored.
	Classification string
}

// Normalize validates one raw record and converts it to a Candidate. The
// amount's sign determines the transaction type; the stored amount is the
// absolute value.
func Normalize(rec RawRecord) (Candidate, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(rec.Amount))
	if err != nil {
		return Candidate{}, &InvalidAmountError{Description: rec.Description, Amount: rec.Amount}
	}

	txType := model.TypeIncome
	if amount.IsNegative() {
		txType = model.TypeExpense
	}

	return Candidate{
		Date:             rec.AuthorizedDate,
		Description:      rec.Description,
		Amount:           amount.Abs(),
		Type:             txType,
		DetailedCategory: rec.DetailedCategory,
		Classification:   classificationText(rec),
	}, nil
}

// classificationText joins the trimmed description and category fields,
// space-separated with empty fields omitted.
func classificationText(rec RawRecord) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{rec.Description, rec.DetailedCategory, rec.PrimaryCategory} {
		if t := strings.TrimSpace(p); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
