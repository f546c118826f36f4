package buffer

import "testing"

func TestLocationCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Location
		want int
	}{
		{"equal", NewLocation(3, 1), NewLocation(3, 1), 0},
		{"earlier line wins over column", NewLocation(9, 0), NewLocation(0, 1), -1},
		{"later line", NewLocation(0, 2), NewLocation(5, 1), 1},
		{"same line smaller column", NewLocation(1, 4), NewLocation(2, 4), -1},
		{"same line larger column", NewLocation(7, 4), NewLocation(2, 4), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLocationBeforeAfter(t *testing.T) {
	a := NewLocation(4, 0)
	b := NewLocation(0, 1)

	if !a.Before(b) {
		t.Error("a should be before b")
	}
	if !b.After(a) {
		t.Error("b should be after a")
	}
	if a.Before(a) || a.After(a) {
		t.Error("a location is neither before nor after itself")
	}
}

func TestLocationValueSemantics(t *testing.T) {
	cursor := NewLocation(2, 3)
	r := NewLocationRange(cursor, cursor)

	cursor.X = 10

	if r.Start.X != 2 || r.End.X != 2 {
		t.Errorf("range endpoints must not alias the cursor, got %s", r)
	}
}

func TestLocationString(t *testing.T) {
	if got := NewLocation(1, 2).String(); got != "(1,2)" {
		t.Errorf("expected (1,2), got %q", got)
	}
	if !(Location{}).IsZero() {
		t.Error("zero location should report IsZero")
	}
}
