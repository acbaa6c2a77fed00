package models

// FallbackCategoryName is the category that absorbs transactions when a
// user-defined category is deleted. It is part of the default seed and must
// always exist.
const FallbackCategoryName = "Food"

// Category represents a named, colored grouping for transactions.
// Default categories are seeded once per user and are immutable.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	IsDefault bool   `json:"isDefault"`
}

// DefaultCategories returns the seed set created for every new identity.
// Ids and colors are fixed so that snapshots from different devices agree.
func DefaultCategories() []Category {
	return []Category{
		{ID: "1", Name: "Food", Color: "#FF6B6B", IsDefault: true},
		{ID: "2", Name: "Travel", Color: "#4ECDC4", IsDefault: true},
		{ID: "3", Name: "Rent", Color: "#45B7D1", IsDefault: true},
		{ID: "4", Name: "Salary", Color: "#96CEB4", IsDefault: true},
		{ID: "5", Name: "Utilities", Color: "#FFEAA7", IsDefault: true},
		{ID: "6", Name: "Entertainment", Color: "#DDA0DD", IsDefault: true},
	}
}
