package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrOutOfRange indicates a location, range, or line index outside the buffer.
	ErrOutOfRange = errors.New("out of range")

	// ErrReentrantMutation is the panic value raised when a mutator is called
	// from inside an observer notification.
	ErrReentrantMutation = errors.New("model mutated during observer notification")
)
