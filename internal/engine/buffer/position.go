package buffer

import "fmt"

// Location is a column/line coordinate into a line buffer.
// Both X and Y are 0-indexed. X is measured in runes from the start of
// line Y and may equal the line length (the position just past the last
// character).
//
// Location is a value type: assigning it copies it, so a cursor and a
// selection endpoint never share state.
type Location struct {
	X int // column (rune offset within the line)
	Y int // line index
}

// NewLocation creates a Location from a column and a line index.
func NewLocation(x, y int) Location {
	return Location{X: x, Y: y}
}

// String returns a human-readable representation of the location.
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// Compare orders locations line-major.
// Returns -1 if l < other, 0 if l == other, 1 if l > other.
func (l Location) Compare(other Location) int {
	if l.Y < other.Y {
		return -1
	}
	if l.Y > other.Y {
		return 1
	}
	if l.X < other.X {
		return -1
	}
	if l.X > other.X {
		return 1
	}
	return 0
}

// Before returns true if l comes before other.
func (l Location) Before(other Location) bool {
	return l.Compare(other) < 0
}

// After returns true if l comes after other.
func (l Location) After(other Location) bool {
	return l.Compare(other) > 0
}

// IsZero returns true if this is the document start (0,0).
func (l Location) IsZero() bool {
	return l.X == 0 && l.Y == 0
}
