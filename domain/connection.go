// Package domain contains core concepts of the chat relay.
// This file defines connections as seen by the registry and the router.
// No runtime, network, or storage logic should be added here.
package domain

import "time"

// ConnectionID is the opaque identifier the transport assigns to a live socket.
type ConnectionID string

func (c ConnectionID) String() string {
	return string(c)
}

// Connection is a registry record.
type Connection struct {
	ID          ConnectionID
	ConnectedAt time.Time
}
