package lua

import "errors"

// Errors for Lua state and plugin operations.
var (
	// ErrStateClosed is returned when operating on a closed state.
	ErrStateClosed = errors.New("lua state is closed")

	// ErrExecutionTimeout is returned when execution exceeds its deadline.
	ErrExecutionTimeout = errors.New("lua execution timeout")

	// ErrMissingExecute is returned when a script defines no execute function.
	ErrMissingExecute = errors.New("lua plugin defines no execute function")

	// ErrNotBound is returned when editor functions are called outside Execute.
	ErrNotBound = errors.New("lua plugin is not bound to a document")
)
