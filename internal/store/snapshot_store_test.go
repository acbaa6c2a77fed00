package store_test

import (
	"context"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/store"
	"fintrack/internal/testutil"
)

func TestSnapshotStore(t *testing.T) {
	ctx := context.Background()

	t.Run("load_absent_identity", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		st := store.NewSnapshotStore(db)

		_, err := st.Load(ctx, "nobody")
		testutil.AssertAppError(t, err, "SNAPSHOT_NOT_FOUND")
	})

	t.Run("save_and_load_round_trip", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		st := store.NewSnapshotStore(db)

		snap := models.NewSnapshot()
		snap.Transactions = []models.Transaction{
			{ID: "t1", Amount: 250, Date: "2024-01-10", Description: "Groceries", Category: "Food", Type: models.TransactionTypeExpense},
		}
		snap.Budgets["Food"] = 500
		snap.SavingsGoals["Trip"] = models.SavingsGoal{Target: 1000, Saved: 250}
		snap.RecurringTransactions = []models.RecurringTransaction{
			{ID: "r1", Amount: 100, Description: "Rent", Category: "Rent", Type: models.TransactionTypeExpense, Frequency: models.FrequencyMonthly, NextDate: "2024-02-01"},
		}

		testutil.AssertNoError(t, st.Save(ctx, "user-1", snap))

		got, err := st.Load(ctx, "user-1")
		testutil.AssertNoError(t, err)

		if len(got.Transactions) != 1 || got.Transactions[0].ID != "t1" {
			t.Errorf("unexpected transactions: %+v", got.Transactions)
		}
		if len(got.Categories) != 6 {
			t.Errorf("expected 6 categories, got %d", len(got.Categories))
		}
		if got.Budgets["Food"] != 500 {
			t.Errorf("expected Food budget 500, got %v", got.Budgets["Food"])
		}
		if got.SavingsGoals["Trip"].Saved != 250 {
			t.Errorf("expected Trip saved 250, got %v", got.SavingsGoals["Trip"].Saved)
		}
		if len(got.RecurringTransactions) != 1 || got.RecurringTransactions[0].NextDate != "2024-02-01" {
			t.Errorf("unexpected recurring transactions: %+v", got.RecurringTransactions)
		}
	})

	t.Run("save_upserts", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		st := store.NewSnapshotStore(db)

		first := models.NewSnapshot()
		testutil.AssertNoError(t, st.Save(ctx, "user-1", first))

		second := models.NewSnapshot()
		second.Budgets["Rent"] = 1500
		testutil.AssertNoError(t, st.Save(ctx, "user-1", second))

		got, err := st.Load(ctx, "user-1")
		testutil.AssertNoError(t, err)
		if got.Budgets["Rent"] != 1500 {
			t.Errorf("expected the later snapshot to win, got %v", got.Budgets)
		}
	})

	t.Run("identities_are_isolated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		st := store.NewSnapshotStore(db)

		a := models.NewSnapshot()
		a.Budgets["Food"] = 100
		b := models.NewSnapshot()
		b.Budgets["Food"] = 900

		testutil.AssertNoError(t, st.Save(ctx, "user-a", a))
		testutil.AssertNoError(t, st.Save(ctx, "user-b", b))

		gotA, err := st.Load(ctx, "user-a")
		testutil.AssertNoError(t, err)
		if gotA.Budgets["Food"] != 100 {
			t.Errorf("expected user-a budget 100, got %v", gotA.Budgets["Food"])
		}
	})
}
