package rules

// DefaultTable returns the built-in keyword table. Declaration order matters:
// Classify takes the first match.
func DefaultTable() []Rule {
	return []Rule{
		{Keyword: "education", Category: "Student Loans"},
		{Keyword: "investment", Category: "Investments"},
		{Keyword: "deposit", Category: "Monthly Savings"},
		{Keyword: "housing", Category: "Rent & Utilities"},
		{Keyword: "nebu", Category: "Takeout"},
		{Keyword: "gas", Category: "Transportation"},
		{Keyword: "uber", Category: "Transportation"},
		{Keyword: "gambling", Category: "Life & Extras"},
		{Keyword: "chipotle", Category: "Takeout"},
		{Keyword: "chick-fil-a", Category: "Takeout"},
		{Keyword: "raising cane's", Category: "Takeout"},
		{Keyword: "subway", Category: "Takeout"},
		{Keyword: "popeye", Category: "Takeout"},
		{Keyword: "mo bettahs", Category: "Takeout"},
		{Keyword: "games", Category: "Hobbies"},
		{Keyword: "books", Category: "Hobbies"},
		{Keyword: "music", Category: "Hobbies"},
	}
}

// DefaultAmbiguous returns the built-in ambiguous keyword set: terms that
// could belong to several categories and warrant review when a transaction is
// otherwise unclassified.
func DefaultAmbiguous() []string {
	return []string{
		"paypal",
		"venmo",
		"cash app",
		"zelle",
		"7-eleven",
		"restaurant",
		"coffee",
		"entertainment",
		"amazon",
	}
}
