package observability

import (
	"chat-relay/domain"
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Stats aggregates delivery counters and process metrics.
type Stats struct {
	Delivered      uint64  `json:"delivered"`
	Gone           uint64  `json:"gone"`
	Failed         uint64  `json:"failed"`
	Evicted        uint64  `json:"evicted"`
	Events         uint64  `json:"events"`
	ActiveSessions int     `json:"active_sessions"`
	Goroutines     int     `json:"goroutines"`
	RssBytes       uint64  `json:"rss_bytes"`
	CPUPercent     float64 `json:"cpu_percent"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
}

// Monitor counts what the router and the event boundary do.
// All counters are updated atomically.
type Monitor struct {
	log       *slog.Logger
	startedAt time.Time
	sessions  func() int

	delivered uint64
	gone      uint64
	failed    uint64
	evicted   uint64
	events    uint64
}

func NewMonitor(log *slog.Logger) *Monitor {
	return &Monitor{log: log, startedAt: time.Now()}
}

// WithSessions plugs the live session counter of the transport.
func (m *Monitor) WithSessions(count func() int) *Monitor {
	m.sessions = count
	return m
}

func (m *Monitor) RecordOutcome(outcome domain.DeliveryOutcome) {
	switch outcome.Status {
	case domain.DeliveryDelivered:
		atomic.AddUint64(&m.delivered, 1)
	case domain.DeliveryGone:
		atomic.AddUint64(&m.gone, 1)
	case domain.DeliveryFailed:
		atomic.AddUint64(&m.failed, 1)
	}
}

func (m *Monitor) IncrEvicted() {
	atomic.AddUint64(&m.evicted, 1)
}

func (m *Monitor) IncrEvents() {
	atomic.AddUint64(&m.events, 1)
}

// Snapshot reads the counters and samples the current process.
// Process metrics are left empty when the OS can't provide them.
func (m *Monitor) Snapshot() Stats {
	stats := Stats{
		Delivered:     atomic.LoadUint64(&m.delivered),
		Gone:          atomic.LoadUint64(&m.gone),
		Failed:        atomic.LoadUint64(&m.failed),
		Evicted:       atomic.LoadUint64(&m.evicted),
		Events:        atomic.LoadUint64(&m.events),
		Goroutines:    runtime.NumGoroutine(),
		UptimeSeconds: time.Since(m.startedAt).Seconds(),
	}
	if m.sessions != nil {
		stats.ActiveSessions = m.sessions()
	}

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		m.log.Debug("Error while retrieving process", "error", err)
		return stats
	}
	if memInfo, err := p.MemoryInfo(); err == nil {
		stats.RssBytes = memInfo.RSS
	}
	if cpu, err := p.CPUPercent(); err == nil {
		stats.CPUPercent = cpu
	}
	return stats
}
