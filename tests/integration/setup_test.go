// Package integration exercises full session flows: engine, persistence
// writer and snapshot store working together over one database.
package integration

import (
	"context"
	"testing"

	"fintrack/internal/engine"
	"fintrack/internal/models"
	"fintrack/internal/store"
	"fintrack/internal/testutil"
)

// newSession opens a fresh engine over the shared store and signs in.
func newSession(t *testing.T, st store.SnapshotStore, userID string) *engine.Engine {
	t.Helper()

	e := engine.New(st)
	t.Cleanup(e.Close)
	if err := e.SignIn(context.Background(), userID); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	return e
}

func sharedStore(t *testing.T) store.SnapshotStore {
	t.Helper()
	return testutil.SetupTestStore(t)
}

// testRecurring is a monthly Rent expense template due at the given date.
func testRecurring(nextDate models.Date) engine.RecurringInput {
	return engine.RecurringInput{
		Amount:      100,
		Description: "Monthly Rent",
		Category:    "Rent",
		Type:        models.TransactionTypeExpense,
		Frequency:   models.FrequencyMonthly,
		NextDate:    nextDate,
	}
}
