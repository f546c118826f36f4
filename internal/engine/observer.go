package engine

import "github.com/dshills/quill/internal/engine/buffer"

// CursorObserver is notified after the cursor location changes.
type CursorObserver interface {
	CursorMoved(loc buffer.Location)
}

// TextObserver is notified after the document content changes.
// Observers re-read whatever state they need from the model.
type TextObserver interface {
	TextChanged()
}

// SelectionObserver is notified after the selection changes.
type SelectionObserver interface {
	SelectionChanged()
}

// change is a set of notification kinds produced by one operation.
type change uint8

const (
	changeText change = 1 << iota
	changeCursor
	changeSelection

	changeAll = changeText | changeCursor | changeSelection
)

// AddCursorObserver registers a cursor observer.
func (m *Model) AddCursorObserver(o CursorObserver) {
	m.cursorObservers.Add(o)
}

// RemoveCursorObserver unregisters a cursor observer.
func (m *Model) RemoveCursorObserver(o CursorObserver) error {
	return m.cursorObservers.Remove(o)
}

// AddTextObserver registers a text observer.
func (m *Model) AddTextObserver(o TextObserver) {
	m.textObservers.Add(o)
}

// RemoveTextObserver unregisters a text observer.
func (m *Model) RemoveTextObserver(o TextObserver) error {
	return m.textObservers.Remove(o)
}

// AddSelectionObserver registers a selection observer.
func (m *Model) AddSelectionObserver(o SelectionObserver) {
	m.selectionObservers.Add(o)
}

// RemoveSelectionObserver unregisters a selection observer.
func (m *Model) RemoveSelectionObserver(o SelectionObserver) error {
	return m.selectionObservers.Remove(o)
}

// publish notifies observers for every kind in c, in the order
// text, cursor, selection. Each kind is dispatched at most once.
func (m *Model) publish(c change) {
	m.guard(func() { m.dispatch(c) })
}

func (m *Model) dispatch(c change) {
	if c&changeText != 0 {
		m.textObservers.Each(func(o TextObserver) {
			o.TextChanged()
		})
	}
	if c&changeCursor != 0 {
		loc := m.cursor
		m.cursorObservers.Each(func(o CursorObserver) {
			o.CursorMoved(loc)
		})
	}
	if c&changeSelection != 0 {
		m.selectionObservers.Each(func(o SelectionObserver) {
			o.SelectionChanged()
		})
	}
}

// mutating guards every mutator against re-entrant calls from observers.
func (m *Model) mutating() {
	if m.dispatching > 0 {
		panic(ErrReentrantMutation)
	}
}

// guard runs fn with mutation blocked, so clipboard observers notified
// from inside a model operation cannot edit the model.
func (m *Model) guard(fn func()) {
	m.dispatching++
	defer func() { m.dispatching-- }()
	fn()
}
