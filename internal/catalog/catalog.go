// Package catalog provides in-memory lookup over the fixed spending-category
// catalog. The core never creates or deletes categories; it only assigns
// transactions to existing names.
package catalog

import (
	"github.com/spendtrack-dev/spendtrack/internal/model"
)

// Service provides name-keyed lookup over the category catalog.
type Service struct {
	categories []model.Category
	byName     map[string]model.Category
}

// NewService creates a Service from a slice of categories, preserving order.
func NewService(categories []model.Category) *Service {
	byName := make(map[string]model.Category, len(categories))
	for _, c := range categories {
		byName[c.Name] = c
	}
	return &Service{categories: categories, byName: byName}
}

// All returns all categories in catalog order.
func (s *Service) All() []model.Category {
	return s.categories
}

// Get returns a category by name.
func (s *Service) Get(name string) (model.Category, bool) {
	c, ok := s.byName[name]
	return c, ok
}

// Exists reports whether a category name is in the catalog.
func (s *Service) Exists(name string) bool {
	_, ok := s.byName[name]
	return ok
}
