package engine

import "github.com/dshills/quill/internal/engine/buffer"

// SelectionRange returns the active selection, if any.
// The range keeps the direction it was made in; use Normalized for
// ordered endpoints.
func (m *Model) SelectionRange() (buffer.LocationRange, bool) {
	return m.selection, m.selecting
}

// HasSelection reports whether a selection is active.
func (m *Model) HasSelection() bool {
	return m.selecting
}

// SelectedText returns the selected text, or false without a selection.
func (m *Model) SelectedText() (string, bool) {
	if !m.selecting {
		return "", false
	}
	return m.textInRange(m.selection), true
}

// SetSelectionRange makes r the active selection. The cursor is not moved.
// Observers are notified even if r equals the current selection.
// Returns an error wrapping ErrOutOfRange if r is outside the buffer.
func (m *Model) SetSelectionRange(r buffer.LocationRange) error {
	m.mutating()

	if err := m.checkRange(r); err != nil {
		return err
	}
	m.selection = r
	m.selecting = true
	m.publish(changeText | changeSelection)
	return nil
}

// ClearSelection drops the active selection. Observers are notified even
// if there was none.
func (m *Model) ClearSelection() {
	m.mutating()

	m.selecting = false
	m.publish(changeText | changeSelection)
}

// SelectLeft extends the selection one position to the left.
// At the document start nothing changes, but observers are still notified.
func (m *Model) SelectLeft() {
	m.mutating()
	to, ok := m.leftOf(m.cursor)
	m.extend(to, ok)
}

// SelectRight extends the selection one position to the right.
// At the document end nothing changes, but observers are still notified.
func (m *Model) SelectRight() {
	m.mutating()
	to, ok := m.rightOf(m.cursor)
	m.extend(to, ok)
}

// SelectUp extends the selection to the previous line.
// On the first line the selection is anchored at the cursor without moving.
func (m *Model) SelectUp() {
	m.mutating()
	to, _ := m.above(m.cursor)
	m.extend(to, true)
}

// SelectDown extends the selection to the next line.
// On the last line the selection is anchored at the cursor without moving.
func (m *Model) SelectDown() {
	m.mutating()
	to, _ := m.below(m.cursor)
	m.extend(to, true)
}

// extend anchors a selection at the cursor if none exists, moves the
// cursor to target, and keeps the selection end on the cursor.
// When anchor is false the operation only notifies.
func (m *Model) extend(target buffer.Location, anchor bool) {
	if anchor {
		if !m.selecting {
			m.selection = buffer.NewLocationRange(m.cursor, m.cursor)
			m.selecting = true
		}
		m.cursor = target
		m.selection.End = m.cursor
	}
	m.publish(changeAll)
}
