package models

// Snapshot is the complete persisted state of one identity's collections:
// the unit the engine restores at sign-in and writes after every mutation.
// Field names match the stored JSON document.
type Snapshot struct {
	Transactions          []Transaction          `json:"transactions"`
	Categories            []Category             `json:"categories"`
	Budgets               map[string]float64     `json:"budgets"`
	SavingsGoals          map[string]SavingsGoal `json:"savingsGoals"`
	RecurringTransactions []RecurringTransaction `json:"recurringTransactions"`
}

// NewSnapshot returns the seed state for a new identity: the default
// categories and otherwise empty collections.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Transactions:          []Transaction{},
		Categories:            DefaultCategories(),
		Budgets:               map[string]float64{},
		SavingsGoals:          map[string]SavingsGoal{},
		RecurringTransactions: []RecurringTransaction{},
	}
}

// Clone returns a deep copy. The engine hands copies to the persistence
// writer so that in-flight writes never observe later mutations.
func (s *Snapshot) Clone() *Snapshot {
	c := &Snapshot{
		Transactions:          make([]Transaction, len(s.Transactions)),
		Categories:            make([]Category, len(s.Categories)),
		Budgets:               make(map[string]float64, len(s.Budgets)),
		SavingsGoals:          make(map[string]SavingsGoal, len(s.SavingsGoals)),
		RecurringTransactions: make([]RecurringTransaction, len(s.RecurringTransactions)),
	}
	copy(c.Transactions, s.Transactions)
	copy(c.Categories, s.Categories)
	copy(c.RecurringTransactions, s.RecurringTransactions)
	for name, limit := range s.Budgets {
		c.Budgets[name] = limit
	}
	for name, goal := range s.SavingsGoals {
		c.SavingsGoals[name] = goal
	}
	return c
}
