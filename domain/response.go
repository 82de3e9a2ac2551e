package domain

import "net/http"

const (
	SuccessBody      = "Success"
	NoEventFoundBody = "No event found"
)

type DeliveryStatus string

const (
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryGone      DeliveryStatus = "gone"
	DeliveryFailed    DeliveryStatus = "failed"
)

// DeliveryOutcome is the result of pushing a payload to one target.
type DeliveryOutcome struct {
	ConnectionID ConnectionID   `json:"connectionId"`
	Status       DeliveryStatus `json:"status"`
	Error        string         `json:"error,omitempty"`
}

// Response is what every event handler returns to its caller.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Body       string            `json:"body"`
	Deliveries []DeliveryOutcome `json:"deliveries,omitempty"`
}

func Success(deliveries ...DeliveryOutcome) Response {
	return Response{StatusCode: http.StatusOK, Body: SuccessBody, Deliveries: deliveries}
}

func NoEventFound() Response {
	return Response{StatusCode: http.StatusNotFound, Body: NoEventFoundBody}
}

func Failure(statusCode int, body string) Response {
	return Response{StatusCode: statusCode, Body: body}
}

func (r Response) OK() bool {
	return r.StatusCode == http.StatusOK
}
