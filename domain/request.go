package domain

import (
	"bytes"
	"chat-relay/errors"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Frame is the part of a client frame used for routing.
type Frame struct {
	Action string `json:"action"`
}

type CreateGroupRequest struct {
	GroupName string `json:"groupName" validate:"required,max=255"`
}

type JoinGroupRequest struct {
	GroupName string `json:"groupName" validate:"required,max=255"`
}

type SendMessageRequest struct {
	ConnectionID string          `json:"connectionId" validate:"required,max=255"`
	Data         json.RawMessage `json:"data" validate:"required"`
}

type BroadcastRequest struct {
	Data json.RawMessage `json:"data" validate:"required"`
}

type SendToGroupRequest struct {
	GroupName string          `json:"groupName" validate:"required,max=255"`
	Data      json.RawMessage `json:"data" validate:"required"`
}

// DecodeRequest parses and validates a typed request envelope.
// Every failure wraps errors.ErrInvalidRequest.
func DecodeRequest[T any](body []byte) (T, error) {
	var req T
	if len(bytes.TrimSpace(body)) == 0 {
		return req, fmt.Errorf("%w: empty body", errors.ErrInvalidRequest)
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	if err := validate.Struct(req); err != nil {
		return req, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	return req, nil
}

// Payload converts the "data" field into the bytes pushed to connections.
// A JSON string is delivered unquoted, any other JSON value as is.
func Payload(data json.RawMessage) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		return nil, fmt.Errorf("%w: data is required", errors.ErrInvalidRequest)
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
		}
		return []byte(s), nil
	default:
		return trimmed, nil
	}
}
