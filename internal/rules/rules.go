package rules

import (
	"strings"

	"github.com/spendtrack-dev/spendtrack/internal/model"
)

// Rule maps a keyword to a category name. Rules are evaluated in declaration
// order; the first keyword found in the text wins.
type Rule struct {
	Keyword  string `yaml:"keyword"`
	Category string `yaml:"category"`
}

// Engine evaluates keyword tables against a transaction's classification
// string. It is pure and stateless; all matching is case-insensitive
// substring matching.
type Engine struct {
	rules     []Rule
	ambiguous []string
}

// NewEngine builds an Engine from an ordered rule table and a set of
// ambiguous keywords. The rule slice order is preserved as the tie-break
// order for Classify.
func NewEngine(table []Rule, ambiguous []string) *Engine {
	rs := make([]Rule, len(table))
	for i, r := range table {
		rs[i] = Rule{Keyword: strings.ToLower(r.Keyword), Category: r.Category}
	}
	amb := make([]string, len(ambiguous))
	for i, k := range ambiguous {
		amb[i] = strings.ToLower(k)
	}
	return &Engine{rules: rs, ambiguous: amb}
}

// Default returns an Engine with the built-in rule table and ambiguous
// keyword set.
func Default() *Engine {
	return NewEngine(DefaultTable(), DefaultAmbiguous())
}

// Classify returns the category of the first rule whose keyword occurs in
// text, or CategoryUncategorized when no rule matches.
func (e *Engine) Classify(text string) string {
	lower := strings.ToLower(text)
	for _, r := range e.rules {
		if strings.Contains(lower, r.Keyword) {
			return r.Category
		}
	}
	return model.CategoryUncategorized
}

// Ambiguous reports whether text contains any ambiguous keyword. Ambiguity is
// independent of Classify; it only triggers review when classification also
// came up empty.
func (e *Engine) Ambiguous(text string) bool {
	lower := strings.ToLower(text)
	for _, k := range e.ambiguous {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// ShouldIgnore reports whether a row should be dropped from the batch
// entirely: wage deposits and transfers between own accounts.
func (e *Engine) ShouldIgnore(description, category string) bool {
	if category == model.CategoryWages {
		return true
	}
	lower := strings.ToLower(description)
	return strings.Contains(lower, "transfer to") || strings.Contains(lower, "transfer from")
}
