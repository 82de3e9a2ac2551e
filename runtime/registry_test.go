package runtime

import (
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/mocks"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSessionRegistry_Add_And_Remove(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	registry := NewSessionRegistry()
	id := domain.ConnectionID(uuid.NewString())
	session := mocks.NewMockSession(ctrl)
	session.EXPECT().ID().Return(id).AnyTimes()

	// Given no session is connected
	req.Zero(registry.Len())

	// When a session is added
	registry.Add(session)

	// Then it can be found
	found, ok := registry.Get(id)
	req.True(ok)
	req.Equal(session, found)
	req.Equal([]domain.ConnectionID{id}, registry.IDs())

	// When it is removed
	registry.Remove(id)

	// Then no session is left
	_, ok = registry.Get(id)
	req.False(ok)
	req.Zero(registry.Len())
}

func TestLocalGateway_Push(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := NewSessionRegistry()
	gateway := NewLocalGateway(registry)

	t.Run("unknown connection is gone", func(t *testing.T) {
		err := gateway.Push(context.Background(), "ghost", []byte("x"))
		require.ErrorIs(t, err, errors.ErrConnectionGone)
	})

	t.Run("live session receives the payload", func(t *testing.T) {
		session := mocks.NewMockSession(ctrl)
		session.EXPECT().ID().Return(domain.ConnectionID("A")).AnyTimes()
		session.EXPECT().Done().Return((<-chan struct{})(make(chan struct{}))).AnyTimes()
		session.EXPECT().Deliver(gomock.Any(), []byte("x")).Return(nil).Times(1)
		registry.Add(session)

		require.NoError(t, gateway.Push(context.Background(), "A", []byte("x")))
	})

	t.Run("closed session is gone", func(t *testing.T) {
		done := make(chan struct{})
		close(done)
		session := mocks.NewMockSession(ctrl)
		session.EXPECT().ID().Return(domain.ConnectionID("B")).AnyTimes()
		session.EXPECT().Done().Return((<-chan struct{})(done)).AnyTimes()
		session.EXPECT().Deliver(gomock.Any(), gomock.Any()).Times(0)
		registry.Add(session)

		err := gateway.Push(context.Background(), "B", []byte("x"))
		require.ErrorIs(t, err, errors.ErrConnectionGone)
	})
}
