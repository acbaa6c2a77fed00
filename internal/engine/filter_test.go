package engine_test

import (
	"testing"

	"fintrack/internal/engine"
	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func seedFilterData(t *testing.T) *engine.Engine {
	t.Helper()
	e := testutil.NewTestEngine(t)

	inputs := []engine.TransactionInput{
		{Amount: 3000, Date: "2024-01-15", Description: "Monthly Salary", Category: "Salary", Type: models.TransactionTypeIncome},
		{Amount: 1200, Date: "2024-01-01", Description: "Rent Payment", Category: "Rent", Type: models.TransactionTypeExpense},
		{Amount: 250, Date: "2024-01-10", Description: "Groceries", Category: "Food", Type: models.TransactionTypeExpense},
		{Amount: 150, Date: "2024-01-12", Description: "Electric Bill", Category: "Utilities", Type: models.TransactionTypeExpense},
	}
	for _, in := range inputs {
		_, err := e.AddTransaction(in)
		testutil.AssertNoError(t, err)
	}
	return e
}

func TestFilteredTransactions(t *testing.T) {
	t.Run("no_criteria_returns_all", func(t *testing.T) {
		e := seedFilterData(t)

		got := e.FilteredTransactions(engine.FilterOptions{})
		if len(got) != 4 {
			t.Errorf("expected all 4 transactions, got %d", len(got))
		}
	})

	t.Run("date_bounds_inclusive", func(t *testing.T) {
		e := seedFilterData(t)

		got := e.FilteredTransactions(engine.FilterOptions{
			StartDate: "2024-01-10",
			EndDate:   "2024-01-12",
		})
		if len(got) != 2 {
			t.Fatalf("expected 2 transactions in range, got %d", len(got))
		}
		for _, tx := range got {
			if tx.Date.Before("2024-01-10") || tx.Date.After("2024-01-12") {
				t.Errorf("transaction %s outside range", tx.Date)
			}
		}
	})

	t.Run("category_exact_match", func(t *testing.T) {
		e := seedFilterData(t)

		got := e.FilteredTransactions(engine.FilterOptions{Category: "Food"})
		if len(got) != 1 || got[0].Description != "Groceries" {
			t.Errorf("expected only the Food transaction, got %v", got)
		}
	})

	t.Run("type_all_imposes_no_constraint", func(t *testing.T) {
		e := seedFilterData(t)

		got := e.FilteredTransactions(engine.FilterOptions{Type: models.TransactionTypeAll})
		if len(got) != 4 {
			t.Errorf("expected all 4 transactions for type all, got %d", len(got))
		}
	})

	t.Run("type_expense", func(t *testing.T) {
		e := seedFilterData(t)

		got := e.FilteredTransactions(engine.FilterOptions{Type: models.TransactionTypeExpense})
		if len(got) != 3 {
			t.Errorf("expected 3 expenses, got %d", len(got))
		}
	})

	t.Run("amount_bounds_inclusive", func(t *testing.T) {
		e := seedFilterData(t)

		min, max := 150.0, 1200.0
		got := e.FilteredTransactions(engine.FilterOptions{MinAmount: &min, MaxAmount: &max})
		if len(got) != 3 {
			t.Errorf("expected 3 transactions between 150 and 1200, got %d", len(got))
		}
	})

	t.Run("notes_substring_case_insensitive", func(t *testing.T) {
		e := seedFilterData(t)

		got := e.FilteredTransactions(engine.FilterOptions{Notes: "groc"})
		if len(got) != 1 || got[0].Description != "Groceries" {
			t.Errorf("expected the Groceries transaction, got %v", got)
		}
	})

	t.Run("conjunction", func(t *testing.T) {
		e := seedFilterData(t)

		// Category matches Rent but the type constraint excludes it.
		got := e.FilteredTransactions(engine.FilterOptions{
			Category: "Rent",
			Type:     models.TransactionTypeIncome,
		})
		if len(got) != 0 {
			t.Errorf("expected no matches, got %v", got)
		}
	})

	t.Run("preserves_collection_order", func(t *testing.T) {
		e := seedFilterData(t)

		got := e.FilteredTransactions(engine.FilterOptions{Type: models.TransactionTypeExpense})
		// Newest-first insertion order: Electric Bill, Groceries, Rent Payment.
		want := []string{"Electric Bill", "Groceries", "Rent Payment"}
		for i, desc := range want {
			if got[i].Description != desc {
				t.Errorf("position %d: expected %q, got %q", i, desc, got[i].Description)
			}
		}
	})

	t.Run("does_not_mutate_collection", func(t *testing.T) {
		e := seedFilterData(t)

		got := e.FilteredTransactions(engine.FilterOptions{})
		got[0].Description = "mutated"

		if e.Transactions()[0].Description == "mutated" {
			t.Error("filter result should be a copy, not a view")
		}
	})
}
