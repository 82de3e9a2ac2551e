package runtime

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/observability"
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type routerFixture struct {
	router      *MessageRouter
	connections *mocks.MockIConnectionRegistry
	groups      *mocks.MockIGroupStore
	gateway     *mocks.MockIDeliveryGateway
	monitor     *observability.Monitor
}

func newRouterFixture(t *testing.T, deliveryTimeout time.Duration) routerFixture {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f := routerFixture{
		connections: mocks.NewMockIConnectionRegistry(ctrl),
		groups:      mocks.NewMockIGroupStore(ctrl),
		gateway:     mocks.NewMockIDeliveryGateway(ctrl),
		monitor:     observability.NewMonitor(log),
	}
	f.router = NewMessageRouter(log, f.connections, f.groups, f.gateway, f.monitor, deliveryTimeout, 4)
	return f
}

func TestMessageRouter_SendDirect_Pushes_Once(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, time.Second)
	payload := []byte("hello")

	// Given the registry is never consulted
	// When a direct message is sent to X
	f.gateway.EXPECT().Push(gomock.Any(), domain.ConnectionID("X"), payload).Return(nil).Times(1)

	outcomes, err := f.router.SendDirect(context.Background(), "X", payload)

	// Then X is the only target
	req.NoError(err)
	req.Equal([]domain.DeliveryOutcome{{ConnectionID: "X", Status: domain.DeliveryDelivered}}, outcomes)
}

func TestMessageRouter_Broadcast_Pushes_Every_Connection(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, time.Second)
	payload := []byte(`{"text":"hi"}`)

	f.connections.EXPECT().ListAll().Return([]domain.ConnectionID{"A", "B", "C"}, nil).Times(1)
	for _, id := range []domain.ConnectionID{"A", "B", "C"} {
		f.gateway.EXPECT().Push(gomock.Any(), id, payload).Return(nil).Times(1)
	}

	outcomes, err := f.router.Broadcast(context.Background(), payload)

	req.NoError(err)
	req.Len(outcomes, 3)
	req.Equal(uint64(3), f.monitor.Snapshot().Delivered)
}

func TestMessageRouter_Broadcast_Storage_Error(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, time.Second)

	f.connections.EXPECT().ListAll().Return(nil, fmt.Errorf("%w: disk", errors.ErrStorage))
	f.gateway.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	outcomes, err := f.router.Broadcast(context.Background(), []byte("x"))

	req.ErrorIs(err, errors.ErrStorage)
	req.Nil(outcomes)
}

func TestMessageRouter_SendToGroup_Keeps_Duplicates(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, time.Second)
	payload := []byte("to the group")

	// Given a group whose member A joined twice
	f.groups.EXPECT().MembersOf(domain.GroupName("lobby")).Return([]domain.ConnectionID{"A", "B", "A"}, nil)
	f.gateway.EXPECT().Push(gomock.Any(), domain.ConnectionID("A"), payload).Return(nil).Times(2)
	f.gateway.EXPECT().Push(gomock.Any(), domain.ConnectionID("B"), payload).Return(nil).Times(1)

	outcomes, err := f.router.SendToGroup(context.Background(), "lobby", payload)

	// Then outcomes follow the member order
	req.NoError(err)
	req.Equal([]domain.DeliveryOutcome{
		{ConnectionID: "A", Status: domain.DeliveryDelivered},
		{ConnectionID: "B", Status: domain.DeliveryDelivered},
		{ConnectionID: "A", Status: domain.DeliveryDelivered},
	}, outcomes)
}

func TestMessageRouter_SendToGroup_Unknown_Group(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, time.Second)

	f.groups.EXPECT().MembersOf(domain.GroupName("ghost")).Return(nil, fmt.Errorf("%w: ghost", errors.ErrGroupNotFound))
	f.gateway.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.router.SendToGroup(context.Background(), "ghost", []byte("x"))

	req.ErrorIs(err, errors.ErrGroupNotFound)
}

func TestMessageRouter_Gone_Target_Is_Evicted(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, time.Second)
	payload := []byte("x")

	// Given B is stale
	f.groups.EXPECT().MembersOf(domain.GroupName("lobby")).Return([]domain.ConnectionID{"A", "B"}, nil)
	f.gateway.EXPECT().Push(gomock.Any(), domain.ConnectionID("A"), payload).Return(nil)
	f.gateway.EXPECT().Push(gomock.Any(), domain.ConnectionID("B"), payload).
		Return(fmt.Errorf("%w: B", errors.ErrConnectionGone))
	// Then B is unregistered, A is left alone
	f.connections.EXPECT().Unregister(domain.ConnectionID("B")).Return(nil).Times(1)

	outcomes, err := f.router.SendToGroup(context.Background(), "lobby", payload)

	req.NoError(err)
	req.Equal(domain.DeliveryDelivered, outcomes[0].Status)
	req.Equal(domain.DeliveryGone, outcomes[1].Status)
	req.NotEmpty(outcomes[1].Error)

	stats := f.monitor.Snapshot()
	req.Equal(uint64(1), stats.Gone)
	req.Equal(uint64(1), stats.Evicted)
}

func TestMessageRouter_Eviction_Failure_Is_Not_Surfaced(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, time.Second)

	f.gateway.EXPECT().Push(gomock.Any(), domain.ConnectionID("B"), gomock.Any()).Return(errors.ErrConnectionGone)
	f.connections.EXPECT().Unregister(domain.ConnectionID("B")).Return(errors.ErrStorage)

	outcomes, err := f.router.SendDirect(context.Background(), "B", []byte("x"))

	req.NoError(err)
	req.Equal(domain.DeliveryGone, outcomes[0].Status)
	req.Zero(f.monitor.Snapshot().Evicted)
}

func TestMessageRouter_Transient_Failure_Keeps_Connection(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, time.Second)

	f.connections.EXPECT().ListAll().Return([]domain.ConnectionID{"A", "B"}, nil)
	f.gateway.EXPECT().Push(gomock.Any(), domain.ConnectionID("A"), gomock.Any()).Return(errors.ErrDeliveryFailed)
	f.gateway.EXPECT().Push(gomock.Any(), domain.ConnectionID("B"), gomock.Any()).Return(nil)
	f.connections.EXPECT().Unregister(gomock.Any()).Times(0)

	outcomes, err := f.router.Broadcast(context.Background(), []byte("x"))

	req.NoError(err)
	req.Equal(domain.DeliveryFailed, outcomes[0].Status)
	req.Equal(domain.DeliveryDelivered, outcomes[1].Status)
}

func TestMessageRouter_Hanging_Delivery_Times_Out(t *testing.T) {
	req := require.New(t)
	f := newRouterFixture(t, 20*time.Millisecond)

	f.connections.EXPECT().ListAll().Return([]domain.ConnectionID{"slow", "fast"}, nil)
	f.gateway.EXPECT().Push(gomock.Any(), domain.ConnectionID("slow"), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ domain.ConnectionID, _ []byte) error {
			<-ctx.Done()     // Waiting for timeout to trigger cancellation
			return ctx.Err() // Sending back "context deadline exceeded"
		})
	f.gateway.EXPECT().Push(gomock.Any(), domain.ConnectionID("fast"), gomock.Any()).Return(nil)

	start := time.Now()
	outcomes, err := f.router.Broadcast(context.Background(), []byte("x"))

	req.NoError(err)
	req.Less(time.Since(start), time.Second)
	req.Equal(domain.DeliveryFailed, outcomes[0].Status)
	req.Contains(outcomes[0].Error, context.DeadlineExceeded.Error())
	req.Equal(domain.DeliveryDelivered, outcomes[1].Status)
}
