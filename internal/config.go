package internal

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Host                    string        `env:"HOST,default=0.0.0.0"`
	Port                    int           `env:"PORT,default=8080"`
	WebsocketPath           string        `env:"WEBSOCKET_PATH,default=/ws"`
	HealthPort              int           `env:"HEALTH_PORT,default=9090"`
	DebugPort               int           `env:"DEBUG_PORT,default=8081"`
	EnableDebugServer       bool          `env:"ENABLE_DEBUG_SERVER,default=false"`
	BadgerFilepath          string        `env:"BADGER_FILEPATH"`
	BadgerInMemory          bool          `env:"BADGER_IN_MEMORY,default=false"`
	LogLevel                string        `env:"LOG_LEVEL,default=INFO"`
	DeliveryTimeout         time.Duration `env:"DELIVERY_TIMEOUT,default=5s"`
	MaxConcurrentDeliveries int           `env:"MAX_CONCURRENT_DELIVERIES,default=64"`
	ConnectionBufferSize    int           `env:"CONNECTION_BUFFER_SIZE,default=256"`
	MaxMessageSize          int64         `env:"MAX_MESSAGE_SIZE,default=65536"`
	RestartInterval         time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	GCInterval              time.Duration `env:"GC_INTERVAL,default=5m"`
	MetricInterval          time.Duration `env:"METRIC_INTERVAL,default=1m"`
}

// Validate checks what the env tags can't express.
func (c Config) Validate() error {
	var problems []string
	if c.BadgerFilepath == "" && !c.BadgerInMemory {
		problems = append(problems, "BADGER_FILEPATH is required unless BADGER_IN_MEMORY is set")
	}
	if !strings.HasPrefix(c.WebsocketPath, "/") {
		problems = append(problems, fmt.Sprintf("WEBSOCKET_PATH must start with '/', got %q", c.WebsocketPath))
	}
	for name, port := range map[string]int{"PORT": c.Port, "HEALTH_PORT": c.HealthPort, "DEBUG_PORT": c.DebugPort} {
		if port <= 0 || port > 65535 {
			problems = append(problems, fmt.Sprintf("%s out of range: %d", name, port))
		}
	}
	for name, d := range map[string]time.Duration{
		"DELIVERY_TIMEOUT": c.DeliveryTimeout,
		"RESTART_INTERVAL": c.RestartInterval,
		"GC_INTERVAL":      c.GCInterval,
		"METRIC_INTERVAL":  c.MetricInterval,
	} {
		if d <= 0 {
			problems = append(problems, fmt.Sprintf("%s must be positive, got %s", name, d))
		}
	}
	if c.MaxConcurrentDeliveries <= 0 {
		problems = append(problems, "MAX_CONCURRENT_DELIVERIES must be positive")
	}
	if c.ConnectionBufferSize <= 0 {
		problems = append(problems, "CONNECTION_BUFFER_SIZE must be positive")
	}
	if c.MaxMessageSize <= 0 {
		problems = append(problems, "MAX_MESSAGE_SIZE must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c Config) HealthAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.HealthPort))
}

func (c Config) DebugAddr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.DebugPort))
}
