package engine

import "github.com/dshills/quill/internal/engine/buffer"

// MoveCursorLeft moves the cursor one column left, wrapping to the end of
// the previous line at column 0. Any selection is cleared.
// Nothing happens at the document start.
func (m *Model) MoveCursorLeft() {
	m.mutating()
	if to, ok := m.leftOf(m.cursor); ok {
		m.moveTo(to)
	}
}

// MoveCursorRight moves the cursor one column right, wrapping to the start
// of the next line at the end of a line. Any selection is cleared.
// Nothing happens at the document end.
func (m *Model) MoveCursorRight() {
	m.mutating()
	if to, ok := m.rightOf(m.cursor); ok {
		m.moveTo(to)
	}
}

// MoveCursorUp moves the cursor to the previous line, clamping the column
// to that line's length. Any selection is cleared.
func (m *Model) MoveCursorUp() {
	m.mutating()
	if to, ok := m.above(m.cursor); ok {
		m.moveTo(to)
	}
}

// MoveCursorDown moves the cursor to the next line, clamping the column
// to that line's length. Any selection is cleared.
func (m *Model) MoveCursorDown() {
	m.mutating()
	if to, ok := m.below(m.cursor); ok {
		m.moveTo(to)
	}
}

// CursorToStart moves the cursor to (0,0) and clears any selection.
func (m *Model) CursorToStart() {
	m.mutating()
	if m.cursor.IsZero() && !m.selecting {
		return
	}
	m.moveTo(buffer.Location{})
}

// CursorToEnd moves the cursor past the last character of the document and
// clears any selection.
func (m *Model) CursorToEnd() {
	m.mutating()
	end := m.End()
	if m.cursor == end && !m.selecting {
		return
	}
	m.moveTo(end)
}

// moveTo places the cursor at a valid location, dropping the selection.
func (m *Model) moveTo(loc buffer.Location) {
	c := changeCursor
	if m.selecting {
		m.selecting = false
		c |= changeText | changeSelection
	}
	m.cursor = loc
	m.publish(c)
}

func (m *Model) leftOf(loc buffer.Location) (buffer.Location, bool) {
	if loc.X > 0 {
		return buffer.NewLocation(loc.X-1, loc.Y), true
	}
	if loc.Y > 0 {
		return buffer.NewLocation(buffer.RuneLen(m.lines[loc.Y-1]), loc.Y-1), true
	}
	return loc, false
}

func (m *Model) rightOf(loc buffer.Location) (buffer.Location, bool) {
	if loc.X < buffer.RuneLen(m.lines[loc.Y]) {
		return buffer.NewLocation(loc.X+1, loc.Y), true
	}
	if loc.Y < len(m.lines)-1 {
		return buffer.NewLocation(0, loc.Y+1), true
	}
	return loc, false
}

func (m *Model) above(loc buffer.Location) (buffer.Location, bool) {
	if loc.Y == 0 {
		return loc, false
	}
	y := loc.Y - 1
	return buffer.NewLocation(min(loc.X, buffer.RuneLen(m.lines[y])), y), true
}

func (m *Model) below(loc buffer.Location) (buffer.Location, bool) {
	if loc.Y >= len(m.lines)-1 {
		return loc, false
	}
	y := loc.Y + 1
	return buffer.NewLocation(min(loc.X, buffer.RuneLen(m.lines[y])), y), true
}
