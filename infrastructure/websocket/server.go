// Package websocket is the client-facing transport. Each upgraded socket
// becomes a connection: its frames are turned into events for the chat
// service and the responses are written back to the sender.
package websocket

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/runtime"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ConnectionIDHeader carries the connection id in the upgrade response.
const ConnectionIDHeader = "X-Connection-Id"

const shutdownTimeout = 5 * time.Second

var _ contract.Worker = (*Server)(nil)

type Config struct {
	Addr           string
	Path           string
	BufferSize     int
	MaxMessageSize int64
	// ReplyTimeout bounds the wait for room in the sender queue, and the
	// $disconnect handling once the socket is gone.
	ReplyTimeout time.Duration
}

type Server struct {
	log      *slog.Logger
	cfg      Config
	handler  contract.IEventHandler
	sessions *runtime.SessionRegistry
	upgrader websocket.Upgrader

	// http.Server.Shutdown doesn't track hijacked connections
	conns    sync.WaitGroup
	draining atomic.Bool
}

func NewServer(log *slog.Logger, cfg Config, handler contract.IEventHandler, sessions *runtime.SessionRegistry) *Server {
	return &Server{
		log:      log,
		cfg:      cfg,
		handler:  handler,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.cfg.Path, s.serveWS)
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("websocket server: %w", err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections until ctx is cancelled. It then closes every live
// session and waits, up to shutdownTimeout, for their $disconnect handling,
// so the store is not closed under them.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{Handler: s.Handler()}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Websocket server listening", "addr", listener.Addr().String(), "path", s.cfg.Path)
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("websocket server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.log.Warn("Websocket server shutdown", "error", err)
	}
	s.draining.Store(true)
	s.closeAll()
	if !s.waitConnections(shutdownCtx) {
		s.log.Warn("Connections still open after shutdown timeout", "sessions", s.sessions.Len())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) waitConnections(ctx context.Context) bool {
	done := make(chan struct{})
	go func() {
		s.conns.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-ctx.Done():
		return false
	}
}

func (s *Server) closeAll() {
	for _, id := range s.sessions.IDs() {
		if session, ok := s.sessions.Get(id); ok {
			if closer, ok := session.(interface{ Close() }); ok {
				closer.Close()
			}
		}
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	s.conns.Add(1)
	defer s.conns.Done()

	id := domain.ConnectionID(uuid.NewString())
	conn, err := s.upgrader.Upgrade(w, r, http.Header{ConnectionIDHeader: {id.String()}})
	if err != nil {
		s.log.Warn("Websocket upgrade failed", "remote_addr", r.RemoteAddr, "error", err)
		return
	}

	ctx := r.Context()
	session := newSession(s.log, id, conn, s.cfg.BufferSize)
	s.sessions.Add(session)
	go session.writePump()
	// Upgraded while Serve was closing sessions
	if s.draining.Load() {
		session.Close()
	}

	if resp := s.handler.Handle(ctx, domain.Event{Kind: domain.EventConnect, ConnectionID: id}); !resp.OK() {
		s.log.Error("Connection refused", "connection_id", id, "status", resp.StatusCode, "body", resp.Body)
		s.sessions.Remove(id)
		session.Close()
		return
	}
	s.log.Debug("Connection opened", "connection_id", id, "remote_addr", r.RemoteAddr)

	defer s.disconnect(ctx, session)
	s.readLoop(ctx, session)
}

func (s *Server) readLoop(ctx context.Context, session *Session) {
	session.setupRead(s.cfg.MaxMessageSize)
	for {
		_, raw, err := session.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn("Websocket read failed", "connection_id", session.id, "error", err)
			}
			return
		}
		s.reply(ctx, session, s.handleFrame(ctx, session.id, raw))
	}
}

func (s *Server) handleFrame(ctx context.Context, id domain.ConnectionID, raw []byte) domain.Response {
	var frame domain.Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		err = fmt.Errorf("%w: frame is not a JSON object: %v", errors.ErrInvalidRequest, err)
		return domain.Failure(errors.StatusCode(err), errors.Body(err))
	}
	return s.handler.Handle(ctx, domain.Event{
		Kind:         domain.KindFromAction(frame.Action),
		ConnectionID: id,
		Body:         raw,
	})
}

func (s *Server) reply(ctx context.Context, session *Session, resp domain.Response) {
	b, err := json.Marshal(resp)
	if err != nil {
		s.log.Error("Unable to encode response", "connection_id", session.id, "error", err)
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ReplyTimeout)
	defer cancel()
	if err := session.Deliver(ctx, b); err != nil {
		s.log.Warn("Unable to reply", "connection_id", session.id, "error", err)
	}
}

// disconnect runs after the socket is gone, so the request context may
// already be cancelled.
func (s *Server) disconnect(ctx context.Context, session *Session) {
	s.sessions.Remove(session.id)
	session.Close()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ReplyTimeout)
	defer cancel()
	if resp := s.handler.Handle(ctx, domain.Event{Kind: domain.EventDisconnect, ConnectionID: session.id}); !resp.OK() {
		s.log.Error("Disconnect failed", "connection_id", session.id, "status", resp.StatusCode, "body", resp.Body)
		return
	}
	s.log.Debug("Connection closed", "connection_id", session.id)
}
