package testutil

import (
	"testing"

	"fintrack/internal/engine"
	"fintrack/internal/models"
)

// ExpenseInput returns a valid expense input for the given category.
func ExpenseInput(category string, amount float64, date models.Date) engine.TransactionInput {
	return engine.TransactionInput{
		Amount:      amount,
		Date:        date,
		Description: "Test expense",
		Category:    category,
		Type:        models.TransactionTypeExpense,
	}
}

// IncomeInput returns a valid income input.
func IncomeInput(amount float64, date models.Date) engine.TransactionInput {
	return engine.TransactionInput{
		Amount:      amount,
		Date:        date,
		Description: "Test income",
		Category:    "Salary",
		Type:        models.TransactionTypeIncome,
	}
}

// AddExpense adds an expense transaction and fails the test on error.
func AddExpense(t *testing.T, e *engine.Engine, category string, amount float64, date models.Date) *models.Transaction {
	t.Helper()

	tx, err := e.AddTransaction(ExpenseInput(category, amount, date))
	AssertNoError(t, err)
	return tx
}

// AddIncome adds an income transaction and fails the test on error.
func AddIncome(t *testing.T, e *engine.Engine, amount float64, date models.Date) *models.Transaction {
	t.Helper()

	tx, err := e.AddTransaction(IncomeInput(amount, date))
	AssertNoError(t, err)
	return tx
}

// AddCategory creates a user-defined category and fails the test on error.
func AddCategory(t *testing.T, e *engine.Engine, name string) *models.Category {
	t.Helper()

	cat, err := e.AddCategory(engine.CategoryInput{Name: name, Color: "#ABCDEF"})
	AssertNoError(t, err)
	return cat
}
