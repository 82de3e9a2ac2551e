package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// RELAY_ADDR is the websocket url of a running relay, e.g. ws://localhost:8080/ws
	RelayAddr  string `envconfig:"RELAY_ADDR"`
	HealthAddr string `envconfig:"HEALTH_ADDR" default:"localhost:9090"`
	// E2E_DEBUG_JSON dumps every frame and gRPC body as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
