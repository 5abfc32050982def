package flows

import "errors"

var (
	// ErrInvalidInput is returned when local validation stops an action
	// before it reaches the API.
	ErrInvalidInput = errors.New("invalid input")
	// ErrRejected is returned when the API answered with success=false.
	ErrRejected = errors.New("rejected by api")
	// ErrUnhandledRole is returned for a successful login whose role has no
	// screen of its own.
	ErrUnhandledRole = errors.New("unhandled role")
)
