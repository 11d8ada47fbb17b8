package service

import "errors"

// Stable error kinds for the fulfillment pipeline. Handlers match these with
// errors.Is; the underlying cause travels alongside via errors.Join.
var (
	ErrGateway     = errors.New("payment gateway failure")
	ErrPersistence = errors.New("booking store failure")
	ErrDelivery    = errors.New("notification delivery failure")
	ErrRender      = errors.New("receipt rendering failure")
)
