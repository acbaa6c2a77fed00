package engine

import (
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// SetBudget upserts the spending limit for a category name. Budgets are
// keyed by name, so they follow the same reference convention as
// transactions.
func (e *Engine) SetBudget(category string, limit float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireSessionLocked(); err != nil {
		return err
	}
	if category == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if limit < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "budget limit cannot be negative")
	}

	e.state.Budgets[category] = limit
	e.persistLocked()
	e.log.Infow("budget set", "category", category, "limit", limit)
	return nil
}

// Budget returns the limit for a category name and whether one is set.
// Callers must distinguish "no budget" from a zero budget, so absence is
// reported explicitly instead of defaulting to zero.
func (e *Engine) Budget(category string) (float64, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.state == nil {
		return 0, false
	}
	limit, ok := e.state.Budgets[category]
	return limit, ok
}

// Budgets returns a copy of the budget map.
func (e *Engine) Budgets() map[string]float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := map[string]float64{}
	if e.state == nil {
		return out
	}
	for name, limit := range e.state.Budgets {
		out[name] = limit
	}
	return out
}

// CategoryUsage sums the expense transactions for a category name. It is
// recomputed from the live collection on every call; there is no cached
// counter to drift out of date.
func (e *Engine) CategoryUsage(category string) float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.categoryUsageLocked(category)
}

func (e *Engine) categoryUsageLocked(category string) float64 {
	var total float64
	if e.state == nil {
		return total
	}
	for _, tx := range e.state.Transactions {
		if tx.Type == models.TransactionTypeExpense && tx.Category == category {
			total += tx.Amount
		}
	}
	return total
}

// OverBudget reports whether usage exceeds the configured limit. It is
// only meaningful when a budget is set and greater than zero.
func (e *Engine) OverBudget(category string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.state == nil {
		return false
	}
	limit, ok := e.state.Budgets[category]
	if !ok || limit <= 0 {
		return false
	}
	return e.categoryUsageLocked(category) > limit
}
