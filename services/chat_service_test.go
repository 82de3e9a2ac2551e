package services

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/observability"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceFixture struct {
	service     *ChatService
	connections *mocks.MockIConnectionRegistry
	groups      *mocks.MockIGroupStore
	router      *mocks.MockIMessageRouter
}

// newServiceFixture returns mocks with no expectation: any unexpected call
// fails the test.
func newServiceFixture(t *testing.T) serviceFixture {
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	f := serviceFixture{
		connections: mocks.NewMockIConnectionRegistry(ctrl),
		groups:      mocks.NewMockIGroupStore(ctrl),
		router:      mocks.NewMockIMessageRouter(ctrl),
	}
	f.service = NewChatService(log, f.connections, f.groups, f.router, observability.NewMonitor(log))
	return f
}

func event(kind domain.EventKind, body string) domain.Event {
	return domain.Event{Kind: kind, ConnectionID: "caller", Body: []byte(body)}
}

func TestChatService_Connect_And_Disconnect(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)

	f.connections.EXPECT().Register(domain.ConnectionID("caller")).Return(nil)
	f.connections.EXPECT().Unregister(domain.ConnectionID("caller")).Return(nil)

	req.Equal(domain.Success(), f.service.Handle(context.Background(), event(domain.EventConnect, "")))
	req.Equal(domain.Success(), f.service.Handle(context.Background(), event(domain.EventDisconnect, "")))
}

func TestChatService_Connect_Storage_Failure(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)

	f.connections.EXPECT().Register(gomock.Any()).Return(fmt.Errorf("%w: disk full", errors.ErrStorage))

	resp := f.service.Handle(context.Background(), event(domain.EventConnect, ""))

	req.Equal(http.StatusInternalServerError, resp.StatusCode)
	var body map[string]string
	req.NoError(json.Unmarshal([]byte(resp.Body), &body))
	req.Equal("StorageError", body["kind"])
}

func TestChatService_CreateGroup(t *testing.T) {
	f := newServiceFixture(t)

	t.Run("creator becomes the caller", func(t *testing.T) {
		f.groups.EXPECT().Create(domain.GroupName("lobby"), domain.ConnectionID("caller")).Return(nil)

		resp := f.service.Handle(context.Background(), event(domain.EventCreateGroup, `{"action":"createGroup","groupName":"lobby"}`))
		require.Equal(t, domain.Success(), resp)
	})

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		f.groups.EXPECT().Create(domain.GroupName("lobby"), gomock.Any()).Return(errors.ErrGroupAlreadyExists)

		resp := f.service.Handle(context.Background(), event(domain.EventCreateGroup, `{"groupName":"lobby"}`))
		require.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("missing group name is rejected before the store", func(t *testing.T) {
		resp := f.service.Handle(context.Background(), event(domain.EventCreateGroup, `{"action":"createGroup"}`))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("malformed body is rejected before the store", func(t *testing.T) {
		resp := f.service.Handle(context.Background(), event(domain.EventCreateGroup, `{"groupName":`))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestChatService_JoinGroup_Unknown_Group(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)

	f.groups.EXPECT().Join(domain.GroupName("ghost"), domain.ConnectionID("caller")).
		Return(fmt.Errorf("%w: ghost", errors.ErrGroupNotFound))

	resp := f.service.Handle(context.Background(), event(domain.EventJoinGroup, `{"groupName":"ghost"}`))

	req.Equal(http.StatusNotFound, resp.StatusCode)
	req.Contains(resp.Body, "ghost")
}

func TestChatService_SendMessage(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)
	outcomes := []domain.DeliveryOutcome{{ConnectionID: "X", Status: domain.DeliveryGone}}

	// A JSON string is delivered unquoted
	f.router.EXPECT().SendDirect(gomock.Any(), domain.ConnectionID("X"), []byte("hello")).Return(outcomes, nil)

	resp := f.service.Handle(context.Background(), event(domain.EventSendMessage, `{"connectionId":"X","data":"hello"}`))

	// A gone target doesn't fail the request
	req.Equal(domain.Success(outcomes...), resp)
}

func TestChatService_SendMessage_Object_Payload(t *testing.T) {
	f := newServiceFixture(t)

	f.router.EXPECT().SendDirect(gomock.Any(), domain.ConnectionID("X"), []byte(`{"text":"hi"}`)).Return(nil, nil)

	resp := f.service.Handle(context.Background(), event(domain.EventSendMessage, `{"connectionId":"X","data":{"text":"hi"}}`))
	require.True(t, resp.OK())
}

func TestChatService_SendMessage_Requires_Data(t *testing.T) {
	f := newServiceFixture(t)

	for _, body := range []string{
		`{"connectionId":"X"}`,
		`{"connectionId":"X","data":null}`,
		`{"data":"hello"}`,
		``,
	} {
		resp := f.service.Handle(context.Background(), event(domain.EventSendMessage, body))
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
	}
}

func TestChatService_Broadcast(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)
	outcomes := []domain.DeliveryOutcome{
		{ConnectionID: "A", Status: domain.DeliveryDelivered},
		{ConnectionID: "B", Status: domain.DeliveryDelivered},
	}

	f.router.EXPECT().Broadcast(gomock.Any(), []byte("everyone")).Return(outcomes, nil)

	resp := f.service.Handle(context.Background(), event(domain.EventBroadcastMessage, `{"data":"everyone"}`))

	req.Equal(http.StatusOK, resp.StatusCode)
	req.Equal(domain.SuccessBody, resp.Body)
	req.Equal(outcomes, resp.Deliveries)
}

func TestChatService_SendMessageToGroup(t *testing.T) {
	f := newServiceFixture(t)

	t.Run("delivers to the group", func(t *testing.T) {
		f.router.EXPECT().SendToGroup(gomock.Any(), domain.GroupName("lobby"), []byte("hi all")).Return(nil, nil)

		resp := f.service.Handle(context.Background(), event(domain.EventSendMessageToGroup, `{"groupName":"lobby","data":"hi all"}`))
		require.True(t, resp.OK())
	})

	t.Run("unknown group is not found", func(t *testing.T) {
		f.router.EXPECT().SendToGroup(gomock.Any(), domain.GroupName("ghost"), gomock.Any()).Return(nil, errors.ErrGroupNotFound)

		resp := f.service.Handle(context.Background(), event(domain.EventSendMessageToGroup, `{"groupName":"ghost","data":"x"}`))
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestChatService_Unknown_Event_Touches_Nothing(t *testing.T) {
	req := require.New(t)
	f := newServiceFixture(t)

	// No expectation is set on any mock: a call would fail the test
	resp := f.service.Handle(context.Background(), event(domain.KindFromAction("dance"), `{"data":"x"}`))

	req.Equal(http.StatusNotFound, resp.StatusCode)
	req.Equal(domain.NoEventFoundBody, resp.Body)
}

func TestChatService_Client_Cannot_Forge_Transport_Events(t *testing.T) {
	f := newServiceFixture(t)

	resp := f.service.Handle(context.Background(), event(domain.KindFromAction("$disconnect"), ""))

	require.Equal(t, domain.NoEventFound(), resp)
}
