package testutil

import (
	"errors"
	"testing"

	"fintrack/internal/engine"
	apperrors "fintrack/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertTransactionCount checks the size of the engine's transaction
// collection. Validation tests use it to verify a rejected input left the
// collection untouched.
func AssertTransactionCount(t *testing.T, e *engine.Engine, want int) {
	t.Helper()

	if got := len(e.Transactions()); got != want {
		t.Errorf("expected %d transactions, got %d", want, got)
	}
}
