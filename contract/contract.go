//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
	"context"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IConnectionRegistry tracks the connections currently considered live.
type IConnectionRegistry interface {
	Register(id domain.ConnectionID) error
	Unregister(id domain.ConnectionID) error
	ListAll() ([]domain.ConnectionID, error)
}

// IGroupStore owns named groups and their member lists.
type IGroupStore interface {
	Create(name domain.GroupName, creator domain.ConnectionID) error
	Join(name domain.GroupName, id domain.ConnectionID) error
	MembersOf(name domain.GroupName) ([]domain.ConnectionID, error)
}

// IDeliveryGateway pushes a payload to one live connection.
// It returns an error wrapping errors.ErrConnectionGone when the target can't
// be reached anymore, any other error is transient.
type IDeliveryGateway interface {
	Push(ctx context.Context, id domain.ConnectionID, payload []byte) error
}

type IMessageRouter interface {
	SendDirect(ctx context.Context, target domain.ConnectionID, payload []byte) ([]domain.DeliveryOutcome, error)
	Broadcast(ctx context.Context, payload []byte) ([]domain.DeliveryOutcome, error)
	SendToGroup(ctx context.Context, name domain.GroupName, payload []byte) ([]domain.DeliveryOutcome, error)
}

// Session is the transport side of a live connection.
type Session interface {
	ID() domain.ConnectionID
	Deliver(ctx context.Context, payload []byte) error
	Done() <-chan struct{}
}

// IEventHandler turns one inbound event into one response.
type IEventHandler interface {
	Handle(ctx context.Context, evt domain.Event) domain.Response
}
