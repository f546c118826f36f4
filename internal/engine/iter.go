package engine

import "fmt"

// LineIterator walks a run of lines once.
//
// Next must be called before the first Line. Once Next returns false the
// iterator is exhausted and stays so; build a new one to iterate again.
// Mutating the model while iterating is undefined.
type LineIterator struct {
	lines   []string
	next    int
	end     int
	current int
	line    string
}

// AllLines returns an iterator over every line of the document.
func (m *Model) AllLines() *LineIterator {
	return &LineIterator{lines: m.lines, end: len(m.lines), current: -1}
}

// LinesRange returns an iterator over lines [start, end).
// Returns an error wrapping ErrOutOfRange if start > end or either index
// lies outside the buffer; the range is never clamped.
func (m *Model) LinesRange(start, end int) (*LineIterator, error) {
	if start < 0 || end > len(m.lines) || start > end {
		return nil, fmt.Errorf("lines [%d, %d) of %d: %w", start, end, len(m.lines), ErrOutOfRange)
	}
	return &LineIterator{lines: m.lines, next: start, end: end, current: -1}, nil
}

// Next advances to the next line.
// Returns true if there is a line, false if iteration is complete.
func (it *LineIterator) Next() bool {
	if it.next >= it.end {
		it.line = ""
		return false
	}
	it.current = it.next
	it.line = it.lines[it.next]
	it.next++
	return true
}

// Line returns the current line.
func (it *LineIterator) Line() string {
	return it.line
}

// Index returns the document index of the current line, or -1 before the
// first call to Next.
func (it *LineIterator) Index() int {
	return it.current
}

// Remaining returns the number of lines not yet visited.
func (it *LineIterator) Remaining() int {
	return it.end - it.next
}
