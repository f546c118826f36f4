package engine

import (
	"slices"

	"github.com/dshills/quill/internal/engine/buffer"
)

// Insert inserts c at the cursor and advances the cursor past it.
//
// An active selection is deleted first. A lone newline splits the current
// line at the cursor and moves the cursor to column 0 of the new line;
// any other text is spliced into the line. Text containing newlines is
// inserted as InsertText would.
func (m *Model) Insert(c string) {
	m.mutating()

	c = buffer.NormalizeLineEndings(c)
	if c == "" && !m.selecting {
		return
	}
	ch := changeText | changeCursor
	if m.deleteSelection() {
		ch |= changeSelection
	}

	if c == "\n" {
		m.splitLine()
	} else {
		m.insertText(c)
	}
	m.publish(ch)
}

// InsertText inserts possibly multi-line text at the cursor.
//
// The first fragment joins the content before the cursor, middle fragments
// become whole lines, and the last fragment is followed by the content that
// was after the cursor. The cursor ends just past the inserted text.
func (m *Model) InsertText(text string) {
	m.mutating()

	if text == "" && !m.selecting {
		return
	}
	ch := changeText | changeCursor
	if m.deleteSelection() {
		ch |= changeSelection
	}
	m.insertText(buffer.NormalizeLineEndings(text))
	m.publish(ch)
}

// DeleteBefore deletes the selection if there is one, otherwise the
// character before the cursor. At column 0 the current line is joined to
// the end of the previous one. Nothing happens at the document start.
func (m *Model) DeleteBefore() {
	m.mutating()

	if m.deleteSelection() {
		m.publish(changeAll)
		return
	}

	y, x := m.cursor.Y, m.cursor.X
	switch {
	case x > 0:
		line := m.lines[y]
		m.lines[y] = buffer.Slice(line, 0, x-1) + buffer.Slice(line, x, buffer.RuneLen(line))
		m.cursor.X--
	case y > 0:
		prev := y - 1
		m.cursor = buffer.NewLocation(buffer.RuneLen(m.lines[prev]), prev)
		m.lines[prev] += m.lines[y]
		m.lines = slices.Delete(m.lines, y, y+1)
	default:
		return
	}
	m.revision++
	m.publish(changeAll)
}

// DeleteAfter deletes the selection if there is one, otherwise the
// character at the cursor. At the end of a line the next line is joined
// onto the current one. Nothing happens at the document end.
func (m *Model) DeleteAfter() {
	m.mutating()

	if m.deleteSelection() {
		m.publish(changeAll)
		return
	}

	y, x := m.cursor.Y, m.cursor.X
	line := m.lines[y]
	switch n := buffer.RuneLen(line); {
	case x < n:
		m.lines[y] = buffer.Slice(line, 0, x) + buffer.Slice(line, x+1, n)
	case y < len(m.lines)-1:
		m.lines[y] += m.lines[y+1]
		m.lines = slices.Delete(m.lines, y+1, y+2)
	default:
		return
	}
	m.revision++
	m.publish(changeAll)
}

// DeleteRange removes the text covered by r, in either direction.
// The cursor moves to the start of the range and the selection is cleared.
// Returns an error wrapping ErrOutOfRange, without changing anything, if
// either endpoint is outside the buffer.
func (m *Model) DeleteRange(r buffer.LocationRange) error {
	m.mutating()

	if err := m.checkRange(r); err != nil {
		return err
	}
	m.deleteRange(r)
	m.selecting = false
	m.publish(changeAll)
	return nil
}

// DeleteSelection deletes the selected text. It does nothing without a
// selection.
func (m *Model) DeleteSelection() {
	m.mutating()

	if m.deleteSelection() {
		m.publish(changeAll)
	}
}

// TextInRange returns the text covered by r, in either direction.
// Lines are joined with newlines.
func (m *Model) TextInRange(r buffer.LocationRange) (string, error) {
	if err := m.checkRange(r); err != nil {
		return "", err
	}
	return m.textInRange(r), nil
}

// deleteSelection deletes and clears the active selection.
// Reports whether there was one.
func (m *Model) deleteSelection() bool {
	if !m.selecting {
		return false
	}
	m.deleteRange(m.selection)
	m.selecting = false
	return true
}

// deleteRange removes the normalized range and moves the cursor to its
// start. The endpoints must be valid.
func (m *Model) deleteRange(r buffer.LocationRange) {
	start, end := r.Normalized()

	before, _ := buffer.SplitAt(m.lines[start.Y], start.X)
	_, after := buffer.SplitAt(m.lines[end.Y], end.X)

	m.lines[start.Y] = before + after
	m.lines = slices.Delete(m.lines, start.Y+1, end.Y+1)
	m.cursor = start
	if start != end {
		m.revision++
	}
}

// textInRange extracts the normalized range. The endpoints must be valid.
func (m *Model) textInRange(r buffer.LocationRange) string {
	start, end := r.Normalized()

	if start.Y == end.Y {
		return buffer.Slice(m.lines[start.Y], start.X, end.X)
	}

	parts := make([]string, 0, end.Y-start.Y+1)
	_, head := buffer.SplitAt(m.lines[start.Y], start.X)
	parts = append(parts, head)
	parts = append(parts, m.lines[start.Y+1:end.Y]...)
	tail, _ := buffer.SplitAt(m.lines[end.Y], end.X)
	parts = append(parts, tail)
	return buffer.JoinLines(parts)
}

// splitLine breaks the current line at the cursor.
func (m *Model) splitLine() {
	y := m.cursor.Y
	before, after := buffer.SplitAt(m.lines[y], m.cursor.X)
	m.lines[y] = before
	m.lines = slices.Insert(m.lines, y+1, after)
	m.cursor = buffer.NewLocation(0, y+1)
	m.revision++
}

// insertText splices LF-normalized text in at the cursor.
func (m *Model) insertText(text string) {
	if text == "" {
		return
	}
	m.revision++

	y := m.cursor.Y
	before, after := buffer.SplitAt(m.lines[y], m.cursor.X)
	fragments := buffer.SplitLines(text)

	if len(fragments) == 1 {
		m.lines[y] = before + text + after
		m.cursor.X += buffer.RuneLen(text)
		return
	}

	last := len(fragments) - 1
	m.lines[y] = before + fragments[0]

	added := make([]string, 0, last)
	added = append(added, fragments[1:last]...)
	added = append(added, fragments[last]+after)
	m.lines = slices.Insert(m.lines, y+1, added...)

	m.cursor = buffer.NewLocation(buffer.RuneLen(fragments[last]), y+last)
}
