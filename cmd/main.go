package main

import (
	"chat-relay/infrastructure/grpc/server"
	"chat-relay/infrastructure/websocket"
	"chat-relay/internal"
	"chat-relay/observability"
	"chat-relay/repositories"
	"chat-relay/runtime"
	"chat-relay/runtime/workers"
	"chat-relay/services"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Relay terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a fatal error.
// Deferred cleanups run before main exits.
func run() (int, error) {
	// 1. Configuration & Logger
	// A missing .env file is fine, the environment may already be set
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 4. Domain components
	connections := repositories.NewConnectionRepository(db, logger)
	groups := repositories.NewGroupRepository(db, logger)
	defer func() {
		if err := groups.Close(); err != nil {
			logger.Warn("Failed to release member sequence", "error", err)
		}
	}()
	sessions := runtime.NewSessionRegistry()
	monitor := observability.NewMonitor(logger).WithSessions(sessions.Len)
	router := runtime.NewMessageRouter(logger, connections, groups,
		runtime.NewLocalGateway(sessions), monitor,
		config.DeliveryTimeout, config.MaxConcurrentDeliveries)
	chatService := services.NewChatService(logger, connections, groups, router, monitor)

	// 5. Supervised workers
	wsServer := websocket.NewServer(logger, websocket.Config{
		Addr:           config.Addr(),
		Path:           config.WebsocketPath,
		BufferSize:     config.ConnectionBufferSize,
		MaxMessageSize: config.MaxMessageSize,
		ReplyTimeout:   config.DeliveryTimeout,
	}, chatService, sessions)

	sup := workers.NewSupervisor(logger, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(logger, sup).Register(
		wsServer,
		server.NewHealthServer(logger, config.HealthAddr(), db, config.MetricInterval),
		workers.NewValueLogGCWorker(logger, db, config.GCInterval),
		workers.NewHeartbeatWorker(logger, monitor, config.MetricInterval),
	)
	if config.EnableDebugServer {
		orchestrator.Register(internal.NewDebugServer(logger, config.DebugAddr(), db,
			repositories.DescribeRecord,
			func() any { return monitor.Snapshot() }))
	}

	// 6. Run until a signal is received
	done := make(chan error, 1)
	go func() {
		done <- orchestrator.Start(ctx)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-done:
		if err == nil {
			err = fmt.Errorf("workers stopped unexpectedly")
		}
		return exitRuntime, fmt.Errorf("orchestrator error: %w", err)
	}

	// 7. Graceful shutdown: workers drain before the store is closed
	logger.Info("Shutting down gracefully...")
	orchestrator.Stop()
	if err := <-done; err != nil {
		return exitRuntime, err
	}
	logger.Info("Relay stopped cleanly")
	return exitOK, nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if config.BadgerInMemory {
		options = badger.DefaultOptions("").WithInMemory(true)
	}
	// Badger logs go through slog and follow LOG_LEVEL
	return options.WithLogger(runtime.NewStoreLogWriter(logger))
}
