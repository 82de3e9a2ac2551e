package observability

import (
	"chat-relay/domain"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonitor_Snapshot_Counts_Outcomes(t *testing.T) {
	req := require.New(t)
	monitor := NewMonitor(slog.Default()).WithSessions(func() int { return 2 })

	monitor.RecordOutcome(domain.DeliveryOutcome{ConnectionID: "A", Status: domain.DeliveryDelivered})
	monitor.RecordOutcome(domain.DeliveryOutcome{ConnectionID: "B", Status: domain.DeliveryDelivered})
	monitor.RecordOutcome(domain.DeliveryOutcome{ConnectionID: "C", Status: domain.DeliveryGone})
	monitor.RecordOutcome(domain.DeliveryOutcome{ConnectionID: "D", Status: domain.DeliveryFailed})
	monitor.IncrEvicted()
	monitor.IncrEvents()

	stats := monitor.Snapshot()
	req.Equal(uint64(2), stats.Delivered)
	req.Equal(uint64(1), stats.Gone)
	req.Equal(uint64(1), stats.Failed)
	req.Equal(uint64(1), stats.Evicted)
	req.Equal(uint64(1), stats.Events)
	req.Equal(2, stats.ActiveSessions)
	req.Positive(stats.Goroutines)
}
