package internal

import (
	"chat-relay/contract"
	"chat-relay/repositories"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const defaultInspectLimit = 500

var _ contract.Worker = (*DebugServer)(nil)

type RowMapper func(key string, val []byte) repositories.Record
type StatsProvider func() any

type InspectPage struct {
	Prefix    string                `json:"prefix"`
	Items     []repositories.Record `json:"items"`
	Truncated bool                  `json:"truncated"`
}

// DebugServer exposes the store content and the live counters over HTTP.
// It is read-only and meant for local debugging.
type DebugServer struct {
	log           *slog.Logger
	addr          string
	db            *badger.DB
	mapper        RowMapper
	statsProvider StatsProvider
}

func NewDebugServer(log *slog.Logger, addr string, db *badger.DB, mapper RowMapper, statsProvider StatsProvider) *DebugServer {
	if mapper == nil {
		mapper = repositories.DescribeRecord
	}
	return &DebugServer{log: log, addr: addr, db: db, mapper: mapper, statsProvider: statsProvider}
}

func (s *DebugServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /inspect", s.inspect)
	mux.HandleFunc("GET /stats", s.stats)
	return mux
}

func (s *DebugServer) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Debug inspector available", "url", fmt.Sprintf("http://%s/inspect?prefix=conn:", s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("debug server: %w", err)
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// inspect lists the rows under ?prefix=, every row when empty.
func (s *DebugServer) inspect(w http.ResponseWriter, r *http.Request) {
	page := InspectPage{Prefix: r.URL.Query().Get("prefix"), Items: []repositories.Record{}}

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(page.Prefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if len(page.Items) == defaultInspectLimit {
				page.Truncated = true
				return nil
			}
			item := it.Item()
			if err := item.Value(func(val []byte) error {
				page.Items = append(page.Items, s.mapper(string(item.Key()), val))
				return nil
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.log.Error("Inspect failed", "prefix", page.Prefix, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, page)
}

func (s *DebugServer) stats(w http.ResponseWriter, _ *http.Request) {
	if s.statsProvider == nil {
		writeJSON(w, map[string]any{})
		return
	}
	writeJSON(w, s.statsProvider())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
