package runtime

import (
	"chat-relay/contract"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Orchestrator owns the lifecycle of every background worker of the relay:
// transport servers, store maintenance and telemetry.
type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	workers    []contract.Worker
	started    bool
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor) *Orchestrator {
	return &Orchestrator{log: log, supervisor: supervisor}
}

// Register adds workers before Start. Workers registered later are ignored.
func (o *Orchestrator) Register(workers ...contract.Worker) *Orchestrator {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.started {
		o.log.Warn("Orchestrator already started, ignoring workers", "count", len(workers))
		return o
	}
	o.workers = append(o.workers, workers...)
	return o
}

// Start hands every registered worker to the supervisor and blocks until they
// all returned.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	if o.started {
		o.mu.Unlock()
		return fmt.Errorf("orchestrator already started")
	}
	o.started = true
	for _, w := range o.workers {
		o.log.Debug("Registering worker", "name", contract.GetWorkerName(w))
		o.supervisor.Add(w)
	}
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers", "workers", len(o.workers))
	o.supervisor.Run(ctx)
	return nil
}

// Stop cancels the supervised context, Start returns once workers drained.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
