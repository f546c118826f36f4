package clipboard

import (
	"errors"
	"testing"

	"github.com/dshills/quill/internal/event"
)

type countingObserver struct {
	calls int
}

func (c *countingObserver) ClipboardChanged() {
	c.calls++
}

func TestStackEmpty(t *testing.T) {
	s := NewStack()

	if !s.IsEmpty() {
		t.Error("new stack should be empty")
	}
	if text, ok := s.Pop(); ok || text != "" {
		t.Errorf("Pop on empty stack: got (%q, %v)", text, ok)
	}
	if text, ok := s.Peek(); ok || text != "" {
		t.Errorf("Peek on empty stack: got (%q, %v)", text, ok)
	}
}

func TestStackLIFO(t *testing.T) {
	s := NewStack()
	s.Push("first")
	s.Push("second")

	if s.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Len())
	}

	if text, ok := s.Peek(); !ok || text != "second" {
		t.Errorf("Peek: got (%q, %v)", text, ok)
	}
	if s.Len() != 2 {
		t.Error("Peek must not remove the entry")
	}

	if text, _ := s.Pop(); text != "second" {
		t.Errorf("expected second, got %q", text)
	}
	if text, _ := s.Pop(); text != "first" {
		t.Errorf("expected first, got %q", text)
	}
	if !s.IsEmpty() {
		t.Error("stack should be empty after popping everything")
	}
}

func TestStackNotifications(t *testing.T) {
	s := NewStack()
	obs := &countingObserver{}
	s.AddObserver(obs)

	s.Push("a")
	if obs.calls != 1 {
		t.Errorf("push should notify once, got %d", obs.calls)
	}

	s.Peek()
	if obs.calls != 1 {
		t.Errorf("peek must not notify, got %d", obs.calls)
	}

	s.Pop()
	if obs.calls != 2 {
		t.Errorf("successful pop should notify, got %d", obs.calls)
	}

	s.Pop()
	if obs.calls != 2 {
		t.Errorf("pop on empty stack must not notify, got %d", obs.calls)
	}

	s.Clear()
	if obs.calls != 3 {
		t.Errorf("clear should notify, got %d", obs.calls)
	}
}

func TestStackRemoveObserver(t *testing.T) {
	s := NewStack()
	obs := &countingObserver{}
	s.AddObserver(obs)

	if err := s.RemoveObserver(obs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Push("x")
	if obs.calls != 0 {
		t.Error("removed observer should not be notified")
	}

	err := s.RemoveObserver(obs)
	if !errors.Is(err, event.ErrObserverNotFound) {
		t.Errorf("expected ErrObserverNotFound, got %v", err)
	}
}

func TestStackMaxDepth(t *testing.T) {
	s := NewStack(WithMaxDepth(2))
	s.Push("a")
	s.Push("b")
	s.Push("c")

	if s.Len() != 2 {
		t.Fatalf("expected depth 2, got %d", s.Len())
	}
	if text, _ := s.Pop(); text != "c" {
		t.Errorf("expected c, got %q", text)
	}
	if text, _ := s.Pop(); text != "b" {
		t.Errorf("expected b (a evicted), got %q", text)
	}
}

func TestStackUnboundedByDefault(t *testing.T) {
	s := NewStack(WithMaxDepth(0))
	for i := 0; i < 100; i++ {
		s.Push("x")
	}
	if s.Len() != 100 || s.MaxDepth() != 0 {
		t.Errorf("expected unbounded stack, got len %d max %d", s.Len(), s.MaxDepth())
	}
}
