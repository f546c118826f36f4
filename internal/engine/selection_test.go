package engine

import (
	"errors"
	"testing"
)

func TestSelectRightAnchorsAtCursor(t *testing.T) {
	m := New("abc")
	place(t, m, at(1, 0))
	r := observed(m)

	m.SelectRight()

	sel, ok := m.SelectionRange()
	if !ok {
		t.Fatal("expected a selection")
	}
	if sel != span(1, 0, 2, 0) {
		t.Errorf("selection = %s", sel)
	}
	assertCursor(t, m, at(2, 0))
	assertEvents(t, r, "text", "cursor", "selection")
}

func TestSelectionKeepsAnchorWhileExtending(t *testing.T) {
	m := New("hello\nworld")
	place(t, m, at(2, 0))

	m.SelectRight()
	m.SelectDown()
	m.SelectLeft()

	sel, _ := m.SelectionRange()
	if sel.Start != at(2, 0) {
		t.Errorf("anchor moved to %s", sel.Start)
	}
	if sel.End != m.CursorLocation() || sel.End != at(2, 1) {
		t.Errorf("selection end %s should track cursor %s", sel.End, m.CursorLocation())
	}
	text, _ := m.SelectedText()
	if text != "llo\nwo" {
		t.Errorf("selected text = %q", text)
	}
}

func TestSelectBackward(t *testing.T) {
	m := New("hello\nworld")
	place(t, m, at(3, 1))

	m.SelectUp()
	m.SelectLeft()

	sel, _ := m.SelectionRange()
	if sel.Start != at(3, 1) || sel.End != at(2, 0) {
		t.Errorf("selection = %s", sel)
	}
	if !sel.IsBackward() {
		t.Error("selection should be backward")
	}
	text, _ := m.SelectedText()
	if text != "llo\nwor" {
		t.Errorf("selected text = %q", text)
	}
}

func TestSelectWrapsLines(t *testing.T) {
	m := New("ab\ncd")
	place(t, m, at(2, 0))

	m.SelectRight()
	assertCursor(t, m, at(0, 1))

	m.SelectLeft()
	m.SelectLeft()
	assertCursor(t, m, at(1, 0))

	sel, _ := m.SelectionRange()
	if sel.Start != at(2, 0) {
		t.Errorf("anchor = %s", sel.Start)
	}
}

func TestSelectLeftAtDocumentStart(t *testing.T) {
	m := New("abc")
	r := observed(m)

	m.SelectLeft()

	if m.HasSelection() {
		t.Error("no selection should be anchored at the document start")
	}
	assertCursor(t, m, at(0, 0))
	assertEvents(t, r, "text", "cursor", "selection")
}

func TestSelectRightAtDocumentEnd(t *testing.T) {
	m := New("abc")
	m.CursorToEnd()
	r := observed(m)

	m.SelectRight()

	if m.HasSelection() {
		t.Error("no selection should be anchored at the document end")
	}
	assertEvents(t, r, "text", "cursor", "selection")
}

func TestSelectUpOnFirstLineAnchors(t *testing.T) {
	m := New("abc\ndef")
	place(t, m, at(1, 0))

	m.SelectUp()

	sel, ok := m.SelectionRange()
	if !ok || !sel.IsEmpty() || sel.Start != at(1, 0) {
		t.Errorf("expected empty selection at (1,0), got %s %v", sel, ok)
	}
}

func TestSelectDownClampsColumn(t *testing.T) {
	m := New("abcdef\nxy")
	place(t, m, at(5, 0))

	m.SelectDown()

	assertCursor(t, m, at(2, 1))
	text, _ := m.SelectedText()
	if text != "f\nxy" {
		t.Errorf("selected text = %q", text)
	}
}

func TestSetSelectionRange(t *testing.T) {
	m := New("abc\ndef")
	r := observed(m)

	if err := m.SetSelectionRange(span(3, 1, 1, 0)); err != nil {
		t.Fatal(err)
	}
	sel, ok := m.SelectionRange()
	if !ok || sel != span(3, 1, 1, 0) {
		t.Errorf("selection = %s, %v", sel, ok)
	}
	assertCursor(t, m, at(0, 0))
	assertEvents(t, r, "text", "selection")

	r.reset()
	if err := m.SetSelectionRange(span(3, 1, 1, 0)); err != nil {
		t.Fatal(err)
	}
	assertEvents(t, r, "text", "selection")

	r.reset()
	m.ClearSelection()
	m.ClearSelection()
	if m.HasSelection() {
		t.Error("selection should be cleared")
	}
	assertEvents(t, r, "text", "selection", "text", "selection")
}

func TestSetSelectionRangeOutOfBounds(t *testing.T) {
	m := New("abc")

	err := m.SetSelectionRange(span(0, 0, 0, 1))
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if m.HasSelection() {
		t.Error("invalid range must not be stored")
	}
}

func TestSelectionDoesNotAliasCursor(t *testing.T) {
	m := New("abcdef")
	m.SelectRight()
	sel, _ := m.SelectionRange()

	m.SelectRight()

	if sel.End != at(1, 0) {
		t.Errorf("returned selection changed after further edits: %s", sel)
	}
	now, _ := m.SelectionRange()
	if now.Start != at(0, 0) || now.End != at(2, 0) {
		t.Errorf("selection = %s", now)
	}
}
