// Package event provides the observer registries used by the editing
// engine to publish state changes.
//
// A Registry holds subscribers of one capability interface, such as a
// cursor observer or a text observer, and notifies them synchronously in
// registration order:
//
//	type TextObserver interface{ TextChanged() }
//
//	reg := event.NewRegistry[TextObserver]()
//	reg.Add(view)
//	reg.Each(func(o TextObserver) { o.TextChanged() })
//
//	if err := reg.Remove(view); errors.Is(err, event.ErrObserverNotFound) {
//	    // registration bug in the caller
//	}
//
// Dispatch is a plain loop over the registered values: there is no topic
// matching, no queue, and no goroutine. A subscriber registered twice is
// notified twice, which lets a helper subscribe a delegate on a caller's
// behalf without coordination.
package event
