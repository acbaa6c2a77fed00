package engine

import (
	"strings"

	"fintrack/internal/models"
)

// FilterOptions narrows the transaction list. Every set field must match
// (conjunctive); zero-valued fields impose no constraint. The type "all"
// also imposes no constraint.
type FilterOptions struct {
	StartDate models.Date
	EndDate   models.Date
	Category  string
	Type      models.TransactionType
	MinAmount *float64
	MaxAmount *float64
	// Notes is matched case-insensitively as a substring of the
	// description.
	Notes string
}

func (f FilterOptions) matches(tx models.Transaction) bool {
	if f.StartDate != "" && tx.Date.Before(f.StartDate) {
		return false
	}
	if f.EndDate != "" && tx.Date.After(f.EndDate) {
		return false
	}
	if f.Category != "" && tx.Category != f.Category {
		return false
	}
	if f.Type != "" && f.Type != models.TransactionTypeAll && tx.Type != f.Type {
		return false
	}
	if f.MinAmount != nil && tx.Amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && tx.Amount > *f.MaxAmount {
		return false
	}
	if f.Notes != "" && !strings.Contains(strings.ToLower(tx.Description), strings.ToLower(f.Notes)) {
		return false
	}
	return true
}

// FilteredTransactions returns the transactions satisfying all set filter
// fields, preserving collection order. The result is a fresh slice; the
// underlying collection is never exposed or mutated.
func (e *Engine) FilteredTransactions(f FilterOptions) []models.Transaction {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := []models.Transaction{}
	if e.state == nil {
		return out
	}
	for _, tx := range e.state.Transactions {
		if f.matches(tx) {
			out = append(out, tx)
		}
	}
	return out
}
