package engine_test

import (
	"context"
	"testing"

	"fintrack/internal/engine"
	"fintrack/internal/testutil"
)

func TestSignIn(t *testing.T) {
	t.Run("seeds_new_identity", func(t *testing.T) {
		e := testutil.NewTestEngine(t)

		cats := e.Categories()
		if len(cats) != 6 {
			t.Fatalf("expected 6 default categories, got %d", len(cats))
		}
		names := map[string]bool{}
		for _, cat := range cats {
			if !cat.IsDefault {
				t.Errorf("seeded category %s must be a default", cat.Name)
			}
			names[cat.Name] = true
		}
		for _, want := range []string{"Food", "Travel", "Rent", "Salary", "Utilities", "Entertainment"} {
			if !names[want] {
				t.Errorf("missing default category %s", want)
			}
		}
	})

	t.Run("rejects_second_session", func(t *testing.T) {
		e := testutil.NewTestEngine(t)

		err := e.SignIn(context.Background(), "someone-else")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_empty_identity", func(t *testing.T) {
		e := engine.New(testutil.SetupTestStore(t))
		defer e.Close()

		err := e.SignIn(context.Background(), "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestSignOut(t *testing.T) {
	t.Run("resets_collections", func(t *testing.T) {
		e := testutil.NewTestEngine(t)
		testutil.AddExpense(t, e, "Food", 100, "2024-01-10")

		e.SignOut()

		if len(e.Transactions()) != 0 || len(e.Categories()) != 0 {
			t.Error("expected empty collections after sign-out")
		}
	})

	t.Run("mutations_require_session", func(t *testing.T) {
		e := testutil.NewTestEngine(t)
		e.SignOut()

		_, err := e.AddTransaction(testutil.ExpenseInput("Food", 1, "2024-01-01"))
		testutil.AssertAppError(t, err, "NO_SESSION")
		testutil.AssertAppError(t, e.SetBudget("Food", 10), "NO_SESSION")
		testutil.AssertAppError(t, e.SetGoal("Vacation", 10), "NO_SESSION")
		testutil.AssertAppError(t, e.DeleteCategory("1"), "NO_SESSION")
	})

	t.Run("allows_new_session", func(t *testing.T) {
		e := testutil.NewTestEngine(t)
		e.SignOut()

		testutil.AssertNoError(t, e.SignIn(context.Background(), "another-user"))
		if len(e.Categories()) != 6 {
			t.Error("expected the new identity to be seeded")
		}
	})
}

func TestSummary(t *testing.T) {
	e := testutil.NewTestEngine(t)
	testutil.AddIncome(t, e, 3000, "2024-01-15")
	testutil.AddExpense(t, e, "Rent", 1200, "2024-01-01")
	testutil.AddExpense(t, e, "Food", 250, "2024-01-10")

	got := e.Summary()
	if got.Income != 3000 {
		t.Errorf("expected income 3000, got %v", got.Income)
	}
	if got.Expense != 1450 {
		t.Errorf("expected expense 1450, got %v", got.Expense)
	}
	if got.Balance != 1550 {
		t.Errorf("expected balance 1550, got %v", got.Balance)
	}
}
