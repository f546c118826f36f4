package event

import "errors"

// Sentinel errors for observer registries.
var (
	// ErrObserverNotFound is returned when removing an observer that was never added.
	ErrObserverNotFound = errors.New("observer not found")

	// ErrNotComparable is the panic value when adding an observer whose
	// dynamic type cannot be compared with ==.
	ErrNotComparable = errors.New("observer is not comparable")
)
