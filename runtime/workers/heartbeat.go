package workers

import (
	"chat-relay/contract"
	"chat-relay/observability"
	"context"
	"log/slog"
	"time"
)

var _ contract.Worker = (*HeartbeatWorker)(nil)

// HeartbeatWorker logs the monitor snapshot every interval.
type HeartbeatWorker struct {
	log      *slog.Logger
	monitor  *observability.Monitor
	interval time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, monitor *observability.Monitor, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, monitor: monitor, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			stats := w.monitor.Snapshot()
			w.log.Info("Heartbeat",
				"sessions", stats.ActiveSessions,
				"events", stats.Events,
				"delivered", stats.Delivered,
				"gone", stats.Gone,
				"failed", stats.Failed,
				"evicted", stats.Evicted,
				"rss_bytes", stats.RssBytes,
				"cpu_percent", stats.CPUPercent,
				"goroutines", stats.Goroutines)
		}
	}
}
