// Package engine provides the document model of the editor.
//
// A Model owns a line buffer, a cursor, an optional selection, and a
// clipboard stack. Every public mutator updates that state and then
// notifies the registered observers synchronously, so a presentation layer
// can redraw from current model state.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: Location and LocationRange value types and line helpers
//   - clipboard: the observable clipboard stack
//
// Observer registries come from the event package.
//
// # Basic Usage
//
//	m := engine.New("Ab ovo.\nAd astra.")
//	m.AddTextObserver(view)
//	m.AddCursorObserver(view)
//
//	m.MoveCursorDown()   // cursor (0,1)
//	m.Insert("X")        // "XAd astra.", cursor (1,1)
//	m.SelectRight()      // selection (1,1)-(2,1)
//	m.CutSelection()     // clipboard: ["A"]
//
// # Notifications
//
// Each operation notifies each observer kind at most once, in the order
// text, cursor, selection. Text and selection observers receive no
// arguments and re-read state from the model; cursor observers receive
// the new cursor location.
//
// # Line Iteration
//
// AllLines and LinesRange return single-pass iterators for bulk reads:
//
//	it, err := m.LinesRange(top, bottom)
//	if err != nil {
//	    return err
//	}
//	for it.Next() {
//	    draw(it.Index(), it.Line())
//	}
//
// # Thread Safety
//
// A Model is not thread-safe and holds no locks. It belongs to one editing
// session and is accessed from that session's goroutine. Observers may
// query the model during a notification but must not mutate it; a mutator
// called from inside a notification panics with ErrReentrantMutation.
//
// Locations handed in from outside (DeleteRange, SetSelectionRange,
// TextInRange, LinesRange) are validated and rejected with ErrOutOfRange;
// they are never clamped.
package engine
