package engine

import (
	"fmt"

	"github.com/dshills/quill/internal/engine/buffer"
	"github.com/dshills/quill/internal/engine/clipboard"
	"github.com/dshills/quill/internal/event"
)

// Model is the document being edited: a line buffer, a cursor, an optional
// selection, and a clipboard stack, plus the observers interested in each.
//
// Invariants maintained by every mutator:
//   - lines is never empty; a cleared document is a single empty line
//   - the cursor addresses an existing line, with a column in [0, len(line)]
//   - a present selection has both endpoints within the same bounds
//
// Model is not thread-safe. It is owned by one editing session and must be
// used from a single goroutine. Observers may query the model while being
// notified but must not mutate it; doing so panics with ErrReentrantMutation.
type Model struct {
	lines     []string
	cursor    buffer.Location
	selection buffer.LocationRange
	selecting bool
	clipboard *clipboard.Stack

	cursorObservers    *event.Registry[CursorObserver]
	textObservers      *event.Registry[TextObserver]
	selectionObservers *event.Registry[SelectionObserver]

	revision    uint64
	dispatching int
}

// New creates a Model holding text, with the cursor at (0,0).
func New(text string, opts ...Option) *Model {
	m := &Model{
		lines:              buffer.SplitLines(text),
		cursorObservers:    event.NewRegistry[CursorObserver](),
		textObservers:      event.NewRegistry[TextObserver](),
		selectionObservers: event.NewRegistry[SelectionObserver](),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.NewStack()
	}
	return m
}

// Text returns the document as newline-joined lines.
func (m *Model) Text() string {
	return buffer.JoinLines(m.lines)
}

// SetText replaces the whole document.
// The selection is cleared and the cursor keeps its position, clamped into
// the new content.
func (m *Model) SetText(text string) {
	m.mutating()

	m.lines = buffer.SplitLines(text)
	m.selecting = false
	m.revision++

	c := changeText | changeSelection
	if clamped := m.clamp(m.cursor); clamped != m.cursor {
		m.cursor = clamped
		c |= changeCursor
	}
	m.publish(c)
}

// Clear resets the document to a single empty line with the cursor at (0,0).
func (m *Model) Clear() {
	m.mutating()

	m.lines = []string{""}
	m.cursor = buffer.Location{}
	m.revision++
	m.selecting = false
	m.publish(changeAll)
}

// Revision returns a counter that advances whenever the document content
// is edited. Cursor and selection changes leave it alone.
func (m *Model) Revision() uint64 {
	return m.revision
}

// LineCount returns the number of lines. It is always at least 1.
func (m *Model) LineCount() int {
	return len(m.lines)
}

// Line returns the content of line i, or "" if i is out of range.
func (m *Model) Line(i int) string {
	if i < 0 || i >= len(m.lines) {
		return ""
	}
	return m.lines[i]
}

// LineLen returns the length of line i in runes, or 0 if i is out of range.
func (m *Model) LineLen(i int) int {
	return buffer.RuneLen(m.Line(i))
}

// Lines returns a copy of all lines.
func (m *Model) Lines() []string {
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out
}

// CursorLocation returns the current cursor location.
func (m *Model) CursorLocation() buffer.Location {
	return m.cursor
}

// Clipboard returns the clipboard stack owned by the model.
func (m *Model) Clipboard() *clipboard.Stack {
	return m.clipboard
}

// End returns the location just past the last character of the document.
func (m *Model) End() buffer.Location {
	last := len(m.lines) - 1
	return buffer.NewLocation(buffer.RuneLen(m.lines[last]), last)
}

// IsValidLocation reports whether loc addresses a position in the buffer.
func (m *Model) IsValidLocation(loc buffer.Location) bool {
	if loc.Y < 0 || loc.Y >= len(m.lines) {
		return false
	}
	return loc.X >= 0 && loc.X <= buffer.RuneLen(m.lines[loc.Y])
}

// checkRange validates both endpoints of r.
func (m *Model) checkRange(r buffer.LocationRange) error {
	if !m.IsValidLocation(r.Start) {
		return fmt.Errorf("range start %s: %w", r.Start, ErrOutOfRange)
	}
	if !m.IsValidLocation(r.End) {
		return fmt.Errorf("range end %s: %w", r.End, ErrOutOfRange)
	}
	return nil
}

// clamp moves loc to the nearest valid location.
func (m *Model) clamp(loc buffer.Location) buffer.Location {
	if loc.Y >= len(m.lines) {
		loc.Y = len(m.lines) - 1
	}
	if loc.Y < 0 {
		loc.Y = 0
	}
	if n := buffer.RuneLen(m.lines[loc.Y]); loc.X > n {
		loc.X = n
	}
	if loc.X < 0 {
		loc.X = 0
	}
	return loc
}
