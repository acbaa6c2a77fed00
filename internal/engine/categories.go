package engine

import (
	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/uuid"
	"fintrack/internal/validator"
)

// CategoryInput carries the caller-supplied fields of a category. User
// created categories are never defaults; the seeded defaults are the only
// protected set.
type CategoryInput struct {
	Name  string `validate:"required"`
	Color string `validate:"required,hex_color"`
}

// AddCategory creates a user-defined category. Names are unique across the
// collection because transactions and budgets reference categories by name.
func (e *Engine) AddCategory(in CategoryInput) (*models.Category, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireSessionLocked(); err != nil {
		return nil, err
	}
	if err := validator.Struct(in); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}
	if e.findCategoryByNameLocked(in.Name) != nil {
		return nil, apperrors.ErrDuplicateCategory
	}

	cat := models.Category{
		ID:    uuid.New(),
		Name:  in.Name,
		Color: in.Color,
	}
	e.state.Categories = append(e.state.Categories, cat)
	e.persistLocked()

	e.log.Infow("category added", "id", cat.ID, "name", cat.Name)
	return &cat, nil
}

// UpdateCategory replaces the name and color of a user-defined category.
// Default categories are immutable. Renaming does not rewrite transactions
// or budget entries that reference the old name; they keep the old name
// until reassigned.
func (e *Engine) UpdateCategory(id string, in CategoryInput) (*models.Category, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireSessionLocked(); err != nil {
		return nil, err
	}
	if err := validator.Struct(in); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}

	for i := range e.state.Categories {
		if e.state.Categories[i].ID != id {
			continue
		}
		if e.state.Categories[i].IsDefault {
			return nil, apperrors.ErrProtectedCategory
		}
		if existing := e.findCategoryByNameLocked(in.Name); existing != nil && existing.ID != id {
			return nil, apperrors.ErrDuplicateCategory
		}

		e.state.Categories[i].Name = in.Name
		e.state.Categories[i].Color = in.Color
		e.persistLocked()
		e.log.Infow("category updated", "id", id, "name", in.Name)
		cat := e.state.Categories[i]
		return &cat, nil
	}
	return nil, apperrors.ErrCategoryNotFound
}

// DeleteCategory removes a user-defined category and reassigns every
// transaction referencing it to the fallback category. Removal and
// reassignment happen under one lock hold, so no reader ever observes a
// transaction pointing at a deleted category.
func (e *Engine) DeleteCategory(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.requireSessionLocked(); err != nil {
		return err
	}

	for i := range e.state.Categories {
		if e.state.Categories[i].ID != id {
			continue
		}
		if e.state.Categories[i].IsDefault {
			return apperrors.ErrProtectedCategory
		}

		name := e.state.Categories[i].Name
		e.state.Categories = append(e.state.Categories[:i], e.state.Categories[i+1:]...)

		reassigned := 0
		for j := range e.state.Transactions {
			if e.state.Transactions[j].Category == name {
				e.state.Transactions[j].Category = models.FallbackCategoryName
				reassigned++
			}
		}

		e.persistLocked()
		e.log.Infow("category deleted", "id", id, "name", name, "reassigned", reassigned)
		return nil
	}
	return apperrors.ErrCategoryNotFound
}

// Categories returns a copy of the category collection, seeded defaults
// first.
func (e *Engine) Categories() []models.Category {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.state == nil {
		return []models.Category{}
	}
	out := make([]models.Category, len(e.state.Categories))
	copy(out, e.state.Categories)
	return out
}

// findCategoryByNameLocked returns the category with the given name, or
// nil. Callers must hold the lock.
func (e *Engine) findCategoryByNameLocked(name string) *models.Category {
	for i := range e.state.Categories {
		if e.state.Categories[i].Name == name {
			return &e.state.Categories[i]
		}
	}
	return nil
}
