package engine

import (
	"errors"
	"testing"
)

func TestInsertCharacter(t *testing.T) {
	m := New("ac")
	place(t, m, at(1, 0))
	r := observed(m)

	m.Insert("b")

	assertLines(t, m, "abc")
	assertCursor(t, m, at(2, 0))
	assertEvents(t, r, "text", "cursor")
}

func TestInsertNewlineAtLineStart(t *testing.T) {
	m := New("ab")

	m.Insert("\n")

	assertLines(t, m, "", "ab")
	assertCursor(t, m, at(0, 1))
}

func TestInsertNewlineSplitsLine(t *testing.T) {
	m := New("hello world")
	place(t, m, at(5, 0))

	m.Insert("\n")

	assertLines(t, m, "hello", " world")
	assertCursor(t, m, at(0, 1))
}

func TestInsertCarriageReturnIsNewline(t *testing.T) {
	m := New("ab")
	place(t, m, at(1, 0))

	m.Insert("\r")

	assertLines(t, m, "a", "b")
	assertCursor(t, m, at(0, 1))
}

func TestInsertReplacesSelection(t *testing.T) {
	m := New("hello world")
	if err := m.SetSelectionRange(span(6, 0, 11, 0)); err != nil {
		t.Fatal(err)
	}
	r := observed(m)

	m.Insert("Go")

	assertLines(t, m, "hello Go")
	assertCursor(t, m, at(8, 0))
	if m.HasSelection() {
		t.Error("selection should be cleared after insert")
	}
	assertEvents(t, r, "text", "cursor", "selection")
}

func TestInsertEmptyIsNoop(t *testing.T) {
	m := New("abc")
	r := observed(m)

	m.Insert("")
	m.InsertText("")

	assertLines(t, m, "abc")
	assertEvents(t, r)
}

func TestInsertMultiRune(t *testing.T) {
	m := New("ab")
	place(t, m, at(1, 0))

	m.Insert("čć")

	assertLines(t, m, "ačćb")
	assertCursor(t, m, at(3, 0))
}

func TestInsertText(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		cursor int
		insert string
		want   []string
		wantAt [2]int
	}{
		{"single line", "abcd", 2, "XY", []string{"abXYcd"}, [2]int{4, 0}},
		{"two lines", "abcd", 2, "X\nY", []string{"abX", "Ycd"}, [2]int{1, 1}},
		{"middle lines", "abcd", 2, "X\nmid1\nmid2\nY", []string{"abX", "mid1", "mid2", "Ycd"}, [2]int{1, 3}},
		{"trailing newline", "abcd", 4, "X\n", []string{"abcdX", ""}, [2]int{0, 1}},
		{"lone newline", "abcd", 0, "\n", []string{"", "abcd"}, [2]int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.text)
			place(t, m, at(tt.cursor, 0))
			r := observed(m)

			m.InsertText(tt.insert)

			assertLines(t, m, tt.want...)
			assertCursor(t, m, at(tt.wantAt[0], tt.wantAt[1]))
			assertEvents(t, r, "text", "cursor")
		})
	}
}

func TestInsertThenDeleteBeforeRestores(t *testing.T) {
	for _, c := range []string{"a", " ", "ž", "!"} {
		for _, start := range []int{0, 2, 5} {
			m := New("hello\nworld")
			place(t, m, at(start, 1))
			before := m.Lines()

			m.Insert(c)
			m.DeleteBefore()

			assertLines(t, m, before...)
			assertCursor(t, m, at(start, 1))
		}
	}
}

func TestDeleteBefore(t *testing.T) {
	m := New("abc\ndef")
	place(t, m, at(2, 1))
	r := observed(m)

	m.DeleteBefore()

	assertLines(t, m, "abc", "df")
	assertCursor(t, m, at(1, 1))
	assertEvents(t, r, "text", "cursor", "selection")
}

func TestDeleteBeforeJoinsLines(t *testing.T) {
	m := New("abc\ndef")
	place(t, m, at(0, 1))

	m.DeleteBefore()

	assertLines(t, m, "abcdef")
	assertCursor(t, m, at(3, 0))
}

func TestDeleteBeforeAtDocumentStart(t *testing.T) {
	m := New("abc")
	r := observed(m)

	m.DeleteBefore()

	assertLines(t, m, "abc")
	assertCursor(t, m, at(0, 0))
	assertEvents(t, r)
}

func TestDeleteBeforeWithSelection(t *testing.T) {
	m := New("abcdef")
	place(t, m, at(4, 0))
	m.SelectLeft()
	m.SelectLeft()

	m.DeleteBefore()

	assertLines(t, m, "abef")
	assertCursor(t, m, at(2, 0))
	if m.HasSelection() {
		t.Error("selection should be cleared")
	}
}

func TestDeleteAfter(t *testing.T) {
	m := New("abc")
	place(t, m, at(1, 0))
	r := observed(m)

	m.DeleteAfter()

	assertLines(t, m, "ac")
	assertCursor(t, m, at(1, 0))
	assertEvents(t, r, "text", "cursor", "selection")
}

func TestDeleteAfterJoinsLines(t *testing.T) {
	m := New("abc\ndef")
	place(t, m, at(3, 0))

	m.DeleteAfter()

	assertLines(t, m, "abcdef")
	assertCursor(t, m, at(3, 0))
}

func TestDeleteAfterAtDocumentEnd(t *testing.T) {
	m := New("abc\ndef")
	place(t, m, at(3, 1))
	r := observed(m)

	m.DeleteAfter()

	assertLines(t, m, "abc", "def")
	assertEvents(t, r)
}

func TestDeleteAfterWithSelection(t *testing.T) {
	m := New("abc\ndef")
	place(t, m, at(1, 0))
	m.SelectDown()

	m.DeleteAfter()

	assertLines(t, m, "aef")
	assertCursor(t, m, at(1, 0))
}

func TestDeleteRangeSpanningLines(t *testing.T) {
	m := New("hello\nworld")
	r := observed(m)

	if err := m.DeleteRange(span(2, 0, 3, 1)); err != nil {
		t.Fatal(err)
	}

	assertLines(t, m, "held")
	assertCursor(t, m, at(2, 0))
	assertEvents(t, r, "text", "cursor", "selection")
}

func TestDeleteRange(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		r      [4]int
		want   []string
		cursor [2]int
	}{
		{"same line", "abcdef", [4]int{1, 0, 4, 0}, []string{"aef"}, [2]int{1, 0}},
		{"same line backward", "abcdef", [4]int{4, 0, 1, 0}, []string{"aef"}, [2]int{1, 0}},
		{"backward across lines", "hello\nworld", [4]int{3, 1, 2, 0}, []string{"held"}, [2]int{2, 0}},
		{"drops middle lines", "aa\nbb\ncc\ndd", [4]int{1, 0, 1, 3}, []string{"ad"}, [2]int{1, 0}},
		{"empty range", "abc", [4]int{1, 0, 1, 0}, []string{"abc"}, [2]int{1, 0}},
		{"whole document", "ab\ncd", [4]int{0, 0, 2, 1}, []string{""}, [2]int{0, 0}},
		{"line break only", "ab\ncd", [4]int{2, 0, 0, 1}, []string{"abcd"}, [2]int{2, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.text)
			if err := m.DeleteRange(span(tt.r[0], tt.r[1], tt.r[2], tt.r[3])); err != nil {
				t.Fatal(err)
			}
			assertLines(t, m, tt.want...)
			assertCursor(t, m, at(tt.cursor[0], tt.cursor[1]))
		})
	}
}

func TestDeleteRangeOutOfBounds(t *testing.T) {
	m := New("abc\ndef")
	r := observed(m)

	for _, bad := range []struct{ x1, y1, x2, y2 int }{
		{0, 0, 4, 0},
		{0, 0, 0, 2},
		{-1, 0, 1, 0},
		{0, -1, 1, 0},
	} {
		err := m.DeleteRange(span(bad.x1, bad.y1, bad.x2, bad.y2))
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("DeleteRange(%v): expected ErrOutOfRange, got %v", bad, err)
		}
	}

	assertLines(t, m, "abc", "def")
	assertEvents(t, r)
}

func TestDeleteSelection(t *testing.T) {
	m := New("abc")
	r := observed(m)

	m.DeleteSelection()
	assertEvents(t, r)

	if err := m.SetSelectionRange(span(0, 0, 2, 0)); err != nil {
		t.Fatal(err)
	}
	m.DeleteSelection()

	assertLines(t, m, "c")
	if m.HasSelection() {
		t.Error("selection should be cleared")
	}
}

func TestTextInRange(t *testing.T) {
	m := New("hello\nbig\nworld")

	tests := []struct {
		r    [4]int
		want string
	}{
		{[4]int{1, 0, 4, 0}, "ell"},
		{[4]int{4, 0, 1, 0}, "ell"},
		{[4]int{2, 0, 3, 2}, "llo\nbig\nwor"},
		{[4]int{3, 2, 2, 0}, "llo\nbig\nwor"},
		{[4]int{5, 0, 0, 1}, "\n"},
	}
	for _, tt := range tests {
		got, err := m.TextInRange(span(tt.r[0], tt.r[1], tt.r[2], tt.r[3]))
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("TextInRange(%v) = %q, want %q", tt.r, got, tt.want)
		}
	}

	if _, err := m.TextInRange(span(0, 0, 9, 0)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
}
