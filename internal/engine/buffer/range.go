package buffer

import "fmt"

// LocationRange is a pair of locations describing a selection span.
//
// The range is not normalized: Start may come after End when the user
// selects backward. Consumers call Normalized when they need ordered
// endpoints; the stored order is kept so a directional selection can keep
// extending from its anchor.
type LocationRange struct {
	Start Location
	End   Location
}

// NewLocationRange creates a range from start to end.
func NewLocationRange(start, end Location) LocationRange {
	return LocationRange{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r LocationRange) String() string {
	return fmt.Sprintf("[%s-%s]", r.Start, r.End)
}

// Normalized returns the endpoints in line-major order.
// The receiver is not modified.
func (r LocationRange) Normalized() (Location, Location) {
	if r.End.Before(r.Start) {
		return r.End, r.Start
	}
	return r.Start, r.End
}

// IsEmpty returns true if both endpoints are equal.
func (r LocationRange) IsEmpty() bool {
	return r.Start == r.End
}

// IsSingleLine returns true if the range spans only one line.
func (r LocationRange) IsSingleLine() bool {
	return r.Start.Y == r.End.Y
}

// IsBackward returns true if End comes before Start.
func (r LocationRange) IsBackward() bool {
	return r.End.Before(r.Start)
}

// Contains reports whether loc lies within the normalized range,
// start inclusive and end exclusive.
func (r LocationRange) Contains(loc Location) bool {
	start, end := r.Normalized()
	return loc.Compare(start) >= 0 && loc.Before(end)
}
