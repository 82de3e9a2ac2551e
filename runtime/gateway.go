package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"fmt"
)

var _ contract.IDeliveryGateway = (*LocalGateway)(nil)

// LocalGateway delivers to the sessions held by this process.
// An id without a live session is reported as gone.
type LocalGateway struct {
	sessions *SessionRegistry
}

func NewLocalGateway(sessions *SessionRegistry) *LocalGateway {
	return &LocalGateway{sessions: sessions}
}

func (g *LocalGateway) Push(ctx context.Context, id domain.ConnectionID, payload []byte) error {
	session, ok := g.sessions.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrConnectionGone, id)
	}
	select {
	case <-session.Done():
		return fmt.Errorf("%w: %s", errors.ErrConnectionGone, id)
	default:
	}
	return session.Deliver(ctx, payload)
}
