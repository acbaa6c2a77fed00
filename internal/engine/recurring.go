package engine

import (
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/uuid"
	"fintrack/internal/validator"
)

// RecurringInput carries the caller-supplied fields of a recurring
// transaction template.
type RecurringInput struct {
	Amount      float64                `validate:"required,gt=0"`
	Description string                 `validate:"required"`
	Category    string                 `validate:"required"`
	Type        models.TransactionType `validate:"required,transaction_type"`
	Frequency   models.Frequency       `validate:"required,frequency"`
	NextDate    models.Date            `validate:"required,tx_date"`
}

func (in RecurringInput) recurring(id string) models.RecurringTransaction {
	return models.RecurringTransaction{
		ID:          id,
		Amount:      in.Amount,
		Description: in.Description,
		Category:    in.Category,
		Type:        in.Type,
		Frequency:   in.Frequency,
		NextDate:    in.NextDate,
	}
}

// AddRecurring creates a recurring transaction template.
func (e *Engine) AddRecurring(in RecurringInput) (*models.RecurringTransaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireSessionLocked(); err != nil {
		return nil, err
	}
	if err := validator.Struct(in); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}

	rec := in.recurring(uuid.New())
	e.state.RecurringTransactions = append(e.state.RecurringTransactions, rec)
	e.persistLocked()

	e.log.Infow("recurring transaction added",
		"id", rec.ID, "frequency", rec.Frequency, "next_date", rec.NextDate)
	return &rec, nil
}

// UpdateRecurring replaces all fields except the id. This is the one path
// that may set NextDate directly; the scheduler owns it otherwise.
func (e *Engine) UpdateRecurring(id string, in RecurringInput) (*models.RecurringTransaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireSessionLocked(); err != nil {
		return nil, err
	}
	if err := validator.Struct(in); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}

	for i := range e.state.RecurringTransactions {
		if e.state.RecurringTransactions[i].ID != id {
			continue
		}
		e.state.RecurringTransactions[i] = in.recurring(id)
		e.persistLocked()
		e.log.Infow("recurring transaction updated", "id", id)
		rec := e.state.RecurringTransactions[i]
		return &rec, nil
	}
	return nil, apperrors.ErrRecurringNotFound
}

// DeleteRecurring removes a template. Deleting an absent id is a no-op.
func (e *Engine) DeleteRecurring(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireSessionLocked(); err != nil {
		return err
	}

	for i := range e.state.RecurringTransactions {
		if e.state.RecurringTransactions[i].ID != id {
			continue
		}
		e.state.RecurringTransactions = append(
			e.state.RecurringTransactions[:i], e.state.RecurringTransactions[i+1:]...)
		e.persistLocked()
		e.log.Infow("recurring transaction deleted", "id", id)
		return nil
	}
	return nil
}

// RecurringTransactions returns a copy of the template collection.
func (e *Engine) RecurringTransactions() []models.RecurringTransaction {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.state == nil {
		return []models.RecurringTransaction{}
	}
	out := make([]models.RecurringTransaction, len(e.state.RecurringTransactions))
	copy(out, e.state.RecurringTransactions)
	return out
}

// ProcessRecurring materializes every template whose next date is due on
// or before now, dating each created transaction at the template's due
// date, then advances the template by one period. A template that is more
// than one period behind advances once per pass and catches up on
// subsequent passes. Runs at session start and on the caller's daily
// re-check; returns the number of transactions created.
func (e *Engine) ProcessRecurring(now time.Time) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireSessionLocked(); err != nil {
		return 0, err
	}

	today := models.NewDate(now)
	fired := 0
	for i := range e.state.RecurringTransactions {
		rec := &e.state.RecurringTransactions[i]
		if rec.NextDate.After(today) {
			continue
		}

		tx := rec.Template()
		tx.ID = uuid.New()
		e.state.Transactions = append([]models.Transaction{tx}, e.state.Transactions...)

		previous := rec.NextDate
		rec.NextDate = rec.NextDate.Advance(rec.Frequency)
		fired++

		e.log.Infow("recurring transaction materialized",
			"recurring_id", rec.ID, "date", previous, "next_date", rec.NextDate)
	}

	if fired > 0 {
		e.persistLocked()
	}
	return fired, nil
}
