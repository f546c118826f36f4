package event

import (
	"fmt"
	"reflect"
)

// Registry is an ordered collection of observers.
//
// Insertion order is notification order. The same observer may be added
// more than once and is then notified once per registration. Observer
// values must be comparable; in practice observers are pointers.
//
// Registry is not thread-safe. It belongs to the model that owns it and is
// used from that model's goroutine only.
type Registry[T comparable] struct {
	observers []T
}

// NewRegistry creates an empty registry.
func NewRegistry[T comparable]() *Registry[T] {
	return &Registry[T]{}
}

// Add appends an observer. Nil observers are ignored.
//
// Add panics with an error wrapping ErrNotComparable if the observer's
// dynamic type is not comparable (a func, map, or slice, or a struct
// holding one), since Remove could not find it again.
func (r *Registry[T]) Add(observer T) {
	v := any(observer)
	if v == nil {
		return
	}
	if !reflect.TypeOf(v).Comparable() {
		panic(fmt.Errorf("%T: %w", v, ErrNotComparable))
	}
	r.observers = append(r.observers, observer)
}

// Remove deletes the first registration of observer.
// Returns ErrObserverNotFound if the observer is not registered.
func (r *Registry[T]) Remove(observer T) error {
	for i, o := range r.observers {
		if o == observer {
			r.observers = append(r.observers[:i:i], r.observers[i+1:]...)
			return nil
		}
	}
	return ErrObserverNotFound
}

// Contains reports whether observer is registered at least once.
func (r *Registry[T]) Contains(observer T) bool {
	for _, o := range r.observers {
		if o == observer {
			return true
		}
	}
	return false
}

// Len returns the number of registrations.
func (r *Registry[T]) Len() int {
	return len(r.observers)
}

// Each calls fn for every registration in insertion order.
// Iteration runs over a snapshot, so fn may add or remove observers
// without affecting the current pass.
func (r *Registry[T]) Each(fn func(T)) {
	if len(r.observers) == 0 {
		return
	}
	snapshot := make([]T, len(r.observers))
	copy(snapshot, r.observers)
	for _, o := range snapshot {
		fn(o)
	}
}
