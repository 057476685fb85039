package banter

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrBusy indicates a generation request is already in flight.
	// Callers surface it as a wait notice; the attempt is never queued.
	ErrBusy = errors.New("generation already in flight")

	// ErrNoMessages indicates an imported transcript contained no
	// recognizable messages.
	ErrNoMessages = errors.New("no messages found")

	// ErrSessionNotFound indicates the requested session does not exist.
	ErrSessionNotFound = errors.New("session not found")
)
