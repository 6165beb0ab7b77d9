package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendtrack-dev/spendtrack/internal/model"
)

func TestService_Lookup(t *testing.T) {
	svc := NewService([]model.Category{
		{Name: "Takeout", Color: "#9c755f"},
		{Name: "Groceries", Color: "#e15759"},
	})

	assert.True(t, svc.Exists("Takeout"))
	assert.False(t, svc.Exists("Unknown"))

	c, ok := svc.Get("Groceries")
	require.True(t, ok)
	assert.Equal(t, "#e15759", c.Color)
}

func TestService_PreservesOrder(t *testing.T) {
	cats := Default()
	svc := NewService(cats)
	assert.Equal(t, cats, svc.All())
	assert.Equal(t, "Investments", svc.All()[0].Name)
}

func TestDefault_NoSentinels(t *testing.T) {
	for _, c := range Default() {
		assert.NotEqual(t, model.CategoryUncategorized, c.Name)
		assert.NotEqual(t, model.CategoryNeedsReview, c.Name)
		assert.NotEqual(t, model.CategoryWages, c.Name)
	}
}
