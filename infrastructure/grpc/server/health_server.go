package server

import (
	"chat-relay/contract"
	"chat-relay/errors"
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/dgraph-io/badger/v4"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// StoreService is the health service name tracking the Badger store.
const StoreService = "chat-relay.store"

var _ contract.Worker = (*HealthServer)(nil)

// HealthServer exposes grpc.health.v1.Health. The overall status and
// StoreService follow the store: SERVING while it is open.
type HealthServer struct {
	log           *slog.Logger
	addr          string
	db            *badger.DB
	probeInterval time.Duration
}

func NewHealthServer(log *slog.Logger, addr string, db *badger.DB, probeInterval time.Duration) *HealthServer {
	return &HealthServer{log: log, addr: addr, db: db, probeInterval: probeInterval}
}

func (s *HealthServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve blocks until ctx is cancelled or the gRPC server fails.
func (s *HealthServer) Serve(ctx context.Context, listener net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(s.log)))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthServer)
	s.probe(healthServer)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting gRPC health server", "address", listener.Addr().String())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errCh <- fmt.Errorf("gRPC health server error: %w", err)
		}
	}()

	ticker := time.NewTicker(s.probeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			healthServer.Shutdown()
			srv.GracefulStop()
			return nil
		case err := <-errCh:
			return err
		case <-ticker.C:
			s.probe(healthServer)
		}
	}
}

func (s *HealthServer) probe(healthServer *health.Server) {
	status := healthpb.HealthCheckResponse_SERVING
	if s.db.IsClosed() {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		s.log.Warn("Store is closed, reporting not serving")
	}
	healthServer.SetServingStatus("", status)
	healthServer.SetServingStatus(StoreService, status)
}
