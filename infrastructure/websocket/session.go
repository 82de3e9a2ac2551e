package websocket

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

var _ contract.Session = (*Session)(nil)

// Session is one upgraded socket. Everything written to the peer goes
// through the send queue, the write pump being the only writer.
type Session struct {
	id        domain.ConnectionID
	conn      *websocket.Conn
	log       *slog.Logger
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newSession(log *slog.Logger, id domain.ConnectionID, conn *websocket.Conn, bufferSize int) *Session {
	return &Session{
		id:   id,
		conn: conn,
		log:  log.With("connection_id", id),
		send: make(chan []byte, bufferSize),
		done: make(chan struct{}),
	}
}

func (s *Session) ID() domain.ConnectionID {
	return s.id
}

func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Deliver enqueues the payload for the write pump.
// It waits for room in the queue until ctx expires.
func (s *Session) Deliver(ctx context.Context, payload []byte) error {
	select {
	case <-s.done:
		return fmt.Errorf("%w: %s", errors.ErrConnectionGone, s.id)
	default:
	}
	select {
	case s.send <- payload:
		return nil
	case <-s.done:
		return fmt.Errorf("%w: %s", errors.ErrConnectionGone, s.id)
	case <-ctx.Done():
		return fmt.Errorf("%w: %s: %w", errors.ErrDeliveryFailed, s.id, ctx.Err())
	}
}

// Close stops the write pump, which sends a close frame and releases the
// socket. Safe to call many times.
func (s *Session) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Session) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.Close()
		_ = s.conn.Close()
	}()

	for {
		select {
		case payload := <-s.send:
			if err := s.write(websocket.TextMessage, payload); err != nil {
				s.log.Debug("Write failed", "error", err)
				return
			}
		case <-ticker.C:
			if err := s.write(websocket.PingMessage, nil); err != nil {
				s.log.Debug("Ping failed", "error", err)
				return
			}
		case <-s.done:
			closing := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = s.write(websocket.CloseMessage, closing)
			return
		}
	}
}

func (s *Session) write(messageType int, data []byte) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return s.conn.WriteMessage(messageType, data)
}

func (s *Session) setupRead(maxMessageSize int64) {
	s.conn.SetReadLimit(maxMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
}
