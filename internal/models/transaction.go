package models

// TransactionType represents the direction of a money movement.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"

	// TransactionTypeAll is only valid inside filter criteria, where it
	// imposes no type constraint. It is never stored on a transaction.
	TransactionTypeAll TransactionType = "all"
)

// Transaction represents a single dated money movement. Category is a name
// reference, not an id reference: deleting a category rewrites this field
// rather than deleting history.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      float64         `json:"amount"`
	Date        Date            `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Type        TransactionType `json:"type"`
}
