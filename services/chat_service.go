package services

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/observability"
	"context"
	"fmt"
	"log/slog"
)

var _ contract.IEventHandler = (*ChatService)(nil)

// ChatService is the event boundary. Each event is classified, its request
// decoded and validated, then exactly one component is called. Every failure
// is converted into a status/body pair here.
type ChatService struct {
	log         *slog.Logger
	connections contract.IConnectionRegistry
	groups      contract.IGroupStore
	router      contract.IMessageRouter
	monitor     *observability.Monitor
}

func NewChatService(log *slog.Logger,
	connections contract.IConnectionRegistry,
	groups contract.IGroupStore,
	router contract.IMessageRouter,
	monitor *observability.Monitor) *ChatService {
	return &ChatService{
		log:         log,
		connections: connections,
		groups:      groups,
		router:      router,
		monitor:     monitor,
	}
}

func (s *ChatService) Handle(ctx context.Context, evt domain.Event) domain.Response {
	s.monitor.IncrEvents()
	log := s.log.With("event", evt.Kind, "connection_id", evt.ConnectionID)

	var (
		deliveries []domain.DeliveryOutcome
		err        error
	)
	switch evt.Kind {
	case domain.EventConnect:
		err = s.connect(evt)
	case domain.EventDisconnect:
		err = s.connections.Unregister(evt.ConnectionID)
	case domain.EventCreateGroup:
		err = s.createGroup(evt)
	case domain.EventJoinGroup:
		err = s.joinGroup(evt)
	case domain.EventSendMessage:
		deliveries, err = s.sendMessage(ctx, evt)
	case domain.EventBroadcastMessage:
		deliveries, err = s.broadcastMessage(ctx, evt)
	case domain.EventSendMessageToGroup:
		deliveries, err = s.sendMessageToGroup(ctx, evt)
	default:
		log.Debug("No handler for event")
		return domain.NoEventFound()
	}

	if err != nil {
		status := errors.StatusCode(err)
		if status >= 500 {
			log.Error("Event failed", "status", status, "error", err)
		} else {
			log.Info("Event rejected", "status", status, "error", err)
		}
		return domain.Failure(status, errors.Body(err))
	}
	log.Debug("Event handled", "deliveries", len(deliveries))
	return domain.Success(deliveries...)
}

func (s *ChatService) connect(evt domain.Event) error {
	if evt.ConnectionID == "" {
		return fmt.Errorf("%w: missing connection id", errors.ErrInvalidRequest)
	}
	return s.connections.Register(evt.ConnectionID)
}

func (s *ChatService) createGroup(evt domain.Event) error {
	req, err := domain.DecodeRequest[domain.CreateGroupRequest](evt.Body)
	if err != nil {
		return err
	}
	return s.groups.Create(domain.GroupName(req.GroupName), evt.ConnectionID)
}

func (s *ChatService) joinGroup(evt domain.Event) error {
	req, err := domain.DecodeRequest[domain.JoinGroupRequest](evt.Body)
	if err != nil {
		return err
	}
	return s.groups.Join(domain.GroupName(req.GroupName), evt.ConnectionID)
}

func (s *ChatService) sendMessage(ctx context.Context, evt domain.Event) ([]domain.DeliveryOutcome, error) {
	req, err := domain.DecodeRequest[domain.SendMessageRequest](evt.Body)
	if err != nil {
		return nil, err
	}
	payload, err := domain.Payload(req.Data)
	if err != nil {
		return nil, err
	}
	return s.router.SendDirect(ctx, domain.ConnectionID(req.ConnectionID), payload)
}

func (s *ChatService) broadcastMessage(ctx context.Context, evt domain.Event) ([]domain.DeliveryOutcome, error) {
	req, err := domain.DecodeRequest[domain.BroadcastRequest](evt.Body)
	if err != nil {
		return nil, err
	}
	payload, err := domain.Payload(req.Data)
	if err != nil {
		return nil, err
	}
	return s.router.Broadcast(ctx, payload)
}

func (s *ChatService) sendMessageToGroup(ctx context.Context, evt domain.Event) ([]domain.DeliveryOutcome, error) {
	req, err := domain.DecodeRequest[domain.SendToGroupRequest](evt.Body)
	if err != nil {
		return nil, err
	}
	payload, err := domain.Payload(req.Data)
	if err != nil {
		return nil, err
	}
	return s.router.SendToGroup(ctx, domain.GroupName(req.GroupName), payload)
}
