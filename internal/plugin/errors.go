package plugin

import "errors"

// Plugin system errors.
var (
	// ErrPluginNotFound is returned when a plugin is not registered.
	ErrPluginNotFound = errors.New("plugin not found")

	// ErrAlreadyRegistered is returned when registering a second plugin under a taken name.
	ErrAlreadyRegistered = errors.New("plugin is already registered")

	// ErrInvalidPlugin is returned when plugin validation fails.
	ErrInvalidPlugin = errors.New("invalid plugin")
)

// ExecError wraps a failure raised by a plugin while it ran.
type ExecError struct {
	Plugin string
	Err    error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	return "plugin " + e.Plugin + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExecError) Unwrap() error {
	return e.Err
}
