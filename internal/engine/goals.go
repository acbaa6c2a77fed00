package engine

import (
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// SetGoal creates a savings goal or updates the target of an existing one.
// An existing goal keeps its saved amount.
func (e *Engine) SetGoal(name string, target float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireSessionLocked(); err != nil {
		return err
	}
	if name == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if target < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "goal target cannot be negative")
	}

	goal := e.state.SavingsGoals[name]
	goal.Target = target
	e.state.SavingsGoals[name] = goal
	e.persistLocked()
	e.log.Infow("savings goal set", "name", name, "target", target)
	return nil
}

// Deposit adds to the saved amount of a goal. Depositing into a goal that
// does not exist yet creates it with a zero target; progress stays at zero
// until a target is set.
func (e *Engine) Deposit(name string, amount float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireSessionLocked(); err != nil {
		return err
	}
	if name == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "goal name is required")
	}
	if amount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "deposit amount must be greater than zero")
	}

	goal := e.state.SavingsGoals[name]
	goal.Saved += amount
	e.state.SavingsGoals[name] = goal
	e.persistLocked()
	e.log.Infow("goal deposit", "name", name, "amount", amount, "saved", goal.Saved)
	return nil
}

// GoalProgress returns saved/target clamped to [0, 1]. A missing goal or a
// zero target reports zero progress rather than dividing by zero.
func (e *Engine) GoalProgress(name string) float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.state == nil {
		return 0
	}
	goal, ok := e.state.SavingsGoals[name]
	if !ok || goal.Target <= 0 {
		return 0
	}
	progress := goal.Saved / goal.Target
	if progress > 1 {
		return 1
	}
	if progress < 0 {
		return 0
	}
	return progress
}

// SavingsGoals returns a copy of the goals map.
func (e *Engine) SavingsGoals() map[string]models.SavingsGoal {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := map[string]models.SavingsGoal{}
	if e.state == nil {
		return out
	}
	for name, goal := range e.state.SavingsGoals {
		out[name] = goal
	}
	return out
}
