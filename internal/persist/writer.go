// Package persist decouples snapshot writes from the engine's mutation
// path: mutations enqueue the latest state and return immediately, while a
// single goroutine applies writes to the store in order.
package persist

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"fintrack/internal/models"
	"fintrack/internal/store"
)

const saveTimeout = 10 * time.Second

type job struct {
	userID string
	snap   *models.Snapshot
}

// Writer serializes snapshot writes for one session. Because every write
// carries the full snapshot, only the most recent enqueued state matters:
// a newer Enqueue replaces a still-pending older one, and the single
// goroutine guarantees a stale snapshot is never written after a newer one.
type Writer struct {
	store store.SnapshotStore
	log   *zap.SugaredLogger

	mu      sync.Mutex
	cond    *sync.Cond
	pending *job
	writing bool
	closed  bool
	done    chan struct{}
}

// NewWriter creates a Writer and starts its background goroutine.
func NewWriter(st store.SnapshotStore, log *zap.SugaredLogger) *Writer {
	w := &Writer{
		store: st,
		log:   log,
		done:  make(chan struct{}),
	}
	w.cond = sync.NewCond(&w.mu)
	go w.run()
	return w
}

// Enqueue records snap as the next state to persist and returns without
// blocking. The snapshot must be a copy the caller will not mutate.
func (w *Writer) Enqueue(userID string, snap *models.Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		w.log.Warnw("snapshot dropped: writer closed", "user_id", userID)
		return
	}
	w.pending = &job{userID: userID, snap: snap}
	w.cond.Broadcast()
}

// Flush blocks until every enqueued snapshot has been written (or failed
// and been logged). Used at sign-out so the remote record is current.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for w.pending != nil || w.writing {
		w.cond.Wait()
	}
}

// Close flushes pending work and stops the background goroutine. The
// writer accepts no further snapshots afterwards.
func (w *Writer) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		<-w.done
		return
	}
	w.closed = true
	w.cond.Broadcast()
	w.mu.Unlock()
	<-w.done
}

func (w *Writer) run() {
	defer close(w.done)

	w.mu.Lock()
	for {
		for w.pending == nil && !w.closed {
			w.cond.Wait()
		}
		if w.pending == nil {
			break
		}

		j := w.pending
		w.pending = nil
		w.writing = true
		w.mu.Unlock()

		w.save(j)

		w.mu.Lock()
		w.writing = false
		w.cond.Broadcast()
	}
	w.mu.Unlock()
}

// save performs one store write. Failures are logged and dropped: the
// in-memory state stays authoritative and the next mutation enqueues a
// fresh snapshot anyway.
func (w *Writer) save(j *job) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	if err := w.store.Save(ctx, j.userID, j.snap); err != nil {
		w.log.Errorw("snapshot write failed", "user_id", j.userID, "error", err)
		return
	}
	w.log.Debugw("snapshot written", "user_id", j.userID,
		"transactions", len(j.snap.Transactions))
}
