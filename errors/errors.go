package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// Client side
	ErrMalformedReply   = fmt.Errorf("malformed reply payload")
	ErrNotReady         = fmt.Errorf("connection is not ready")
	ErrAlreadyConnected = fmt.Errorf("connection already started")
	ErrEmptyMessage     = fmt.Errorf("message is empty")
	ErrSendQueueFull    = fmt.Errorf("pending send queue is full")
	ErrHandshake        = fmt.Errorf("stomp handshake failed")
	ErrSessionClosed    = fmt.Errorf("session closed")

	// Server side
	ErrProtocol        = fmt.Errorf("stomp protocol violation")
	ErrInvalidFlow     = fmt.Errorf("invalid flow definition")
	ErrFlowNotFound    = fmt.Errorf("flow not found")
	ErrNoActiveFlow    = fmt.Errorf("no active flow")
	ErrNotJSON         = fmt.Errorf("content is not JSON")
	ErrMissingFlowName = fmt.Errorf("field meta.name is required in the JSON")
)
