package catalog

import "github.com/spendtrack-dev/spendtrack/internal/model"

// Default returns the built-in category catalog.
func Default() []model.Category {
	return []model.Category{
		{Name: "Investments", Color: "#4e79a7"},
		{Name: "Rent & Utilities", Color: "#f28e2b"},
		{Name: "Groceries", Color: "#e15759"},
		{Name: "Student Loans", Color: "#76b7b2"},
		{Name: "Dates", Color: "#59a14f"},
		{Name: "Family", Color: "#edc948"},
		{Name: "Life & Extras", Color: "#b07aa1"},
		{Name: "Hobbies", Color: "#ff9da7"},
		{Name: "Takeout", Color: "#9c755f"},
		{Name: "Transportation", Color: "#bab0ac"},
		{Name: "Monthly Savings", Color: "#86bcb6"},
		{Name: "House Savings", Color: "#d37295"},
	}
}
