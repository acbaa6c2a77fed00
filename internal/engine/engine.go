// Package engine implements the in-memory finance state engine: it owns one
// signed-in user's transactions, categories, budgets, savings goals and
// recurring transactions, answers derived queries from that state, and
// hands snapshots to the persistence writer after every mutation.
//
// All reads are served from memory; the snapshot store is write-behind and
// never sits on the query path.
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/models"
	"fintrack/internal/persist"
	"fintrack/internal/store"
)

// Engine is the finance state engine for a single session at a time.
// Mutations run under the write lock and are atomic with respect to the
// in-memory collections; queries run under the read lock and never block
// on persistence.
type Engine struct {
	mu     sync.RWMutex
	log    *zap.SugaredLogger
	store  store.SnapshotStore
	writer *persist.Writer

	userID string
	state  *models.Snapshot
}

// New creates an Engine backed by the given snapshot store.
func New(st store.SnapshotStore) *Engine {
	return &Engine{
		log:    logger.Get(),
		store:  st,
		writer: persist.NewWriter(st, logger.Get()),
	}
}

// SignIn starts a session for the given identity. The stored snapshot is
// loaded, or a fresh one with the default categories is seeded and
// persisted for a first-time identity. Recurring transactions that have
// come due since the last session are then materialized.
func (e *Engine) SignIn(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "user id is required")
	}

	e.mu.Lock()
	if e.userID != "" {
		e.mu.Unlock()
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "a session is already active")
	}

	snap, err := e.store.Load(ctx, userID)
	switch {
	case errors.Is(err, apperrors.ErrSnapshotNotFound):
		snap = models.NewSnapshot()
		// Seed synchronously so a crash right after first sign-in still
		// leaves the identity with its default categories.
		if saveErr := e.store.Save(ctx, userID, snap); saveErr != nil {
			logger.Session(userID).Errorw("failed to seed snapshot", "error", saveErr)
		}
	case err != nil:
		e.mu.Unlock()
		return err
	}

	e.userID = userID
	e.state = snap
	e.log = logger.Session(userID)
	e.log.Infow("session started",
		"transactions", len(snap.Transactions),
		"categories", len(snap.Categories))
	e.mu.Unlock()

	if _, err := e.ProcessRecurring(time.Now()); err != nil {
		return err
	}
	return nil
}

// SignOut flushes pending snapshot writes and resets the engine to empty
// collections. The engine can then sign in a different identity.
func (e *Engine) SignOut() {
	e.writer.Flush()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.userID == "" {
		return
	}
	e.log.Info("session ended")
	e.userID = ""
	e.state = nil
	e.log = logger.Get()
}

// Close flushes pending writes and stops the persistence writer. The
// engine must not be used afterwards.
func (e *Engine) Close() {
	e.writer.Close()
}

// Totals summarizes the full transaction history for the dashboard.
type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// Summary returns income, expense and balance totals over the entire
// history.
func (e *Engine) Summary() Totals {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var t Totals
	if e.state == nil {
		return t
	}
	for _, tx := range e.state.Transactions {
		switch tx.Type {
		case models.TransactionTypeIncome:
			t.Income += tx.Amount
		case models.TransactionTypeExpense:
			t.Expense += tx.Amount
		}
	}
	t.Balance = t.Income - t.Expense
	return t
}

// requireSessionLocked verifies a session is active. Callers must hold the
// lock (read or write).
func (e *Engine) requireSessionLocked() error {
	if e.userID == "" {
		return apperrors.ErrNoSession
	}
	return nil
}

// persistLocked enqueues a copy of the current state for asynchronous
// persistence. Callers must hold the write lock. The enqueue never blocks
// and a failed remote write never touches in-memory state.
func (e *Engine) persistLocked() {
	e.writer.Enqueue(e.userID, e.state.Clone())
}
