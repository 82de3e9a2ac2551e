package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrStorage            = fmt.Errorf("storage failure")
	ErrGroupNotFound      = fmt.Errorf("group not found")
	ErrGroupAlreadyExists = fmt.Errorf("group already exists")
	ErrInvalidRequest     = fmt.Errorf("invalid request")
	ErrConnectionGone     = fmt.Errorf("connection gone")
	ErrDeliveryFailed     = fmt.Errorf("delivery failed")
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Kind names the sentinel an error wraps, "Internal" when none matches.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return "InvalidRequest"
	case errors.Is(err, ErrGroupNotFound):
		return "NotFound"
	case errors.Is(err, ErrGroupAlreadyExists):
		return "AlreadyExists"
	case errors.Is(err, ErrStorage):
		return "StorageError"
	case errors.Is(err, ErrConnectionGone):
		return "GoneError"
	case errors.Is(err, ErrDeliveryFailed):
		return "TransientError"
	default:
		return "Internal"
	}
}

// StatusCode maps an error to the HTTP-style status returned to the caller.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrGroupNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrGroupAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type body struct {
	Kind  string `json:"kind"`
	Error string `json:"error"`
}

// Body serializes err for a failure response.
func Body(err error) string {
	b, mErr := json.Marshal(body{Kind: Kind(err), Error: err.Error()})
	if mErr != nil {
		return err.Error()
	}
	return string(b)
}
