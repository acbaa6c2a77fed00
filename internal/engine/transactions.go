package engine

import (
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/uuid"
	"fintrack/internal/validator"
)

// TransactionInput carries the caller-supplied fields of a transaction;
// the id is assigned by the engine.
type TransactionInput struct {
	Amount      float64                `validate:"required,gt=0"`
	Date        models.Date            `validate:"required,tx_date"`
	Description string                 `validate:"required"`
	Category    string                 `validate:"required"`
	Type        models.TransactionType `validate:"required,transaction_type"`
}

func (in TransactionInput) transaction(id string) models.Transaction {
	return models.Transaction{
		ID:          id,
		Amount:      in.Amount,
		Date:        in.Date,
		Description: in.Description,
		Category:    in.Category,
		Type:        in.Type,
	}
}

// AddTransaction validates the input, assigns a time-ordered id and
// prepends the transaction to the collection (newest-first is the display
// convention).
func (e *Engine) AddTransaction(in TransactionInput) (*models.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireSessionLocked(); err != nil {
		return nil, err
	}
	if err := validator.Struct(in); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}

	tx := in.transaction(uuid.New())
	e.state.Transactions = append([]models.Transaction{tx}, e.state.Transactions...)
	e.persistLocked()

	e.log.Infow("transaction added",
		"id", tx.ID, "type", tx.Type, "category", tx.Category, "amount", tx.Amount)
	return &tx, nil
}

// UpdateTransaction replaces all fields except the id.
func (e *Engine) UpdateTransaction(id string, in TransactionInput) (*models.Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireSessionLocked(); err != nil {
		return nil, err
	}
	if err := validator.Struct(in); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}

	for i := range e.state.Transactions {
		if e.state.Transactions[i].ID != id {
			continue
		}
		e.state.Transactions[i] = in.transaction(id)
		e.persistLocked()
		e.log.Infow("transaction updated", "id", id)
		tx := e.state.Transactions[i]
		return &tx, nil
	}
	return nil, apperrors.ErrTransactionNotFound
}

// DeleteTransaction removes the transaction with the given id. Deleting an
// absent id is a no-op, not an error, so deletes are idempotent.
func (e *Engine) DeleteTransaction(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireSessionLocked(); err != nil {
		return err
	}

	for i := range e.state.Transactions {
		if e.state.Transactions[i].ID != id {
			continue
		}
		e.state.Transactions = append(e.state.Transactions[:i], e.state.Transactions[i+1:]...)
		e.persistLocked()
		e.log.Infow("transaction deleted", "id", id)
		return nil
	}
	return nil
}

// Transactions returns a copy of the full transaction collection,
// newest-first.
func (e *Engine) Transactions() []models.Transaction {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.state == nil {
		return []models.Transaction{}
	}
	out := make([]models.Transaction, len(e.state.Transactions))
	copy(out, e.state.Transactions)
	return out
}

// TransactionsPage returns one page of the filtered transaction list. Long
// histories are paged by the transactions screen.
func (e *Engine) TransactionsPage(req pagination.PageRequest, f FilterOptions) pagination.PageResponse[models.Transaction] {
	return pagination.Window(e.FilteredTransactions(f), req)
}
