package workers

import (
	"chat-relay/contract"
	"chat-relay/errors"
	"context"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

var _ contract.Worker = (*ValueLogGCWorker)(nil)

// ValueLogGCWorker reclaims the value log space left by deleted connections
// and rewritten groups.
type ValueLogGCWorker struct {
	log          *slog.Logger
	db           *badger.DB
	interval     time.Duration
	discardRatio float64
}

func NewValueLogGCWorker(log *slog.Logger, db *badger.DB, interval time.Duration) *ValueLogGCWorker {
	return &ValueLogGCWorker{log: log, db: db, interval: interval, discardRatio: 0.5}
}

func (w *ValueLogGCWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping value log GC")
			return nil
		case <-ticker.C:
			if done := w.collect(); done {
				return nil
			}
		}
	}
}

// collect runs GC until badger has nothing left to rewrite.
// It returns true when GC can never run on this store.
func (w *ValueLogGCWorker) collect() bool {
	rewrites := 0
	for {
		err := w.db.RunValueLogGC(w.discardRatio)
		switch {
		case err == nil:
			rewrites++
			continue
		case errors.Is(err, badger.ErrGCInMemoryMode):
			w.log.Debug("In-memory store, value log GC disabled")
			return true
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrRejected):
		default:
			w.log.Warn("Value log GC failed", "error", err)
		}
		if rewrites > 0 {
			w.log.Info("Value log GC done", "rewrites", rewrites)
		}
		return false
	}
}
