// Package runtime holds the live side of the relay: the session table, the
// delivery gateway, the message router and the orchestrator running workers.
// It orchestrates the system without containing storage or transport details.
package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/observability"
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

var _ contract.IMessageRouter = (*MessageRouter)(nil)

// MessageRouter resolves a target into connection ids and fans the payload
// out through the gateway. It holds no state of its own.
//
// Every delivery runs under its own timeout and the router waits for all of
// them before returning. A failed delivery never fails the batch, it is
// reported in the outcome of its target. Targets reported gone are
// unregistered from the connection registry.
type MessageRouter struct {
	log             *slog.Logger
	connections     contract.IConnectionRegistry
	groups          contract.IGroupStore
	gateway         contract.IDeliveryGateway
	monitor         *observability.Monitor
	deliveryTimeout time.Duration
	maxConcurrency  int
}

func NewMessageRouter(log *slog.Logger,
	connections contract.IConnectionRegistry,
	groups contract.IGroupStore,
	gateway contract.IDeliveryGateway,
	monitor *observability.Monitor,
	deliveryTimeout time.Duration,
	maxConcurrency int) *MessageRouter {
	return &MessageRouter{
		log:             log,
		connections:     connections,
		groups:          groups,
		gateway:         gateway,
		monitor:         monitor,
		deliveryTimeout: deliveryTimeout,
		maxConcurrency:  maxConcurrency,
	}
}

// SendDirect delivers to target whatever the registry says about it.
func (r *MessageRouter) SendDirect(ctx context.Context, target domain.ConnectionID, payload []byte) ([]domain.DeliveryOutcome, error) {
	return r.dispatch(ctx, []domain.ConnectionID{target}, payload), nil
}

func (r *MessageRouter) Broadcast(ctx context.Context, payload []byte) ([]domain.DeliveryOutcome, error) {
	targets, err := r.connections.ListAll()
	if err != nil {
		return nil, err
	}
	return r.dispatch(ctx, targets, payload), nil
}

// SendToGroup delivers once per member entry, a member listed twice receives
// the payload twice.
func (r *MessageRouter) SendToGroup(ctx context.Context, name domain.GroupName, payload []byte) ([]domain.DeliveryOutcome, error) {
	members, err := r.groups.MembersOf(name)
	if err != nil {
		return nil, err
	}
	return r.dispatch(ctx, members, payload), nil
}

// dispatch returns the outcomes in the order of targets.
func (r *MessageRouter) dispatch(ctx context.Context, targets []domain.ConnectionID, payload []byte) []domain.DeliveryOutcome {
	outcomes := make([]domain.DeliveryOutcome, len(targets))
	var g errgroup.Group
	if r.maxConcurrency > 0 {
		g.SetLimit(r.maxConcurrency)
	}
	for i, target := range targets {
		g.Go(func() error {
			outcomes[i] = r.deliver(ctx, target, payload)
			return nil
		})
	}
	_ = g.Wait()

	counts := lo.CountValuesBy(outcomes, func(o domain.DeliveryOutcome) domain.DeliveryStatus {
		return o.Status
	})
	r.log.Debug("Payload dispatched",
		"targets", len(targets),
		"delivered", counts[domain.DeliveryDelivered],
		"gone", counts[domain.DeliveryGone],
		"failed", counts[domain.DeliveryFailed])
	return outcomes
}

func (r *MessageRouter) deliver(ctx context.Context, target domain.ConnectionID, payload []byte) domain.DeliveryOutcome {
	deliveryCtx, cancel := context.WithTimeout(ctx, r.deliveryTimeout)
	defer cancel()

	outcome := domain.DeliveryOutcome{ConnectionID: target, Status: domain.DeliveryDelivered}
	err := r.gateway.Push(deliveryCtx, target, payload)
	switch {
	case err == nil:
	case errors.Is(err, errors.ErrConnectionGone):
		outcome.Status = domain.DeliveryGone
		outcome.Error = err.Error()
		r.evict(target)
	default:
		outcome.Status = domain.DeliveryFailed
		outcome.Error = err.Error()
		r.log.Warn("Delivery failed", "connection_id", target, "error", err)
	}
	r.monitor.RecordOutcome(outcome)
	return outcome
}

func (r *MessageRouter) evict(target domain.ConnectionID) {
	if err := r.connections.Unregister(target); err != nil {
		r.log.Warn("Failed to evict gone connection", "connection_id", target, "error", err)
		return
	}
	r.monitor.IncrEvicted()
	r.log.Info("Gone connection evicted", "connection_id", target)
}
