// Package errors provides the application error taxonomy for the engine.
// All engine operations return AppError values so callers can branch on a
// stable code without matching message strings.
package errors

// AppError represents a structured application error with a stable code,
// a human-readable message, and an optional wrapped internal error.
type AppError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Internal error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is matches any AppError carrying the same code, so sentinel values work
// with errors.Is even after Wrap or WithMessage.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap creates a new AppError with the sentinel's code and message but
// wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{Code: sentinel.Code, Message: sentinel.Message, Internal: internal}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{Code: sentinel.Code, Message: message, Internal: sentinel.Internal}
}

// General errors.
var (
	ErrInvalidInput = &AppError{Code: "INVALID_INPUT", Message: "Invalid input"}
	ErrInternal     = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred"}
	ErrNoSession    = &AppError{Code: "NO_SESSION", Message: "No active session"}
)

// Transaction errors.
var (
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Message: "Transaction not found"}
)

// Category errors.
var (
	ErrCategoryNotFound  = &AppError{Code: "CATEGORY_NOT_FOUND", Message: "Category not found"}
	ErrProtectedCategory = &AppError{Code: "PROTECTED_CATEGORY", Message: "Default categories cannot be modified or deleted"}
	ErrDuplicateCategory = &AppError{Code: "DUPLICATE_CATEGORY", Message: "A category with this name already exists"}
)

// Recurring transaction errors.
var (
	ErrRecurringNotFound = &AppError{Code: "RECURRING_NOT_FOUND", Message: "Recurring transaction not found"}
)

// Persistence errors.
var (
	ErrSnapshotNotFound = &AppError{Code: "SNAPSHOT_NOT_FOUND", Message: "No snapshot stored for this identity"}
)
