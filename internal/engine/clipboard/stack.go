package clipboard

import (
	"fmt"

	"github.com/dshills/quill/internal/event"
)

// Observer is notified whenever the stack contents change.
type Observer interface {
	ClipboardChanged()
}

// Option configures a Stack during creation.
type Option func(*Stack)

// WithMaxDepth bounds the stack to n entries. When a push would exceed
// the bound, the oldest entry is dropped. n <= 0 means unbounded.
func WithMaxDepth(n int) Option {
	return func(s *Stack) {
		if n > 0 {
			s.maxDepth = n
		}
	}
}

// Stack is an observable LIFO of text snippets.
// It is not thread-safe; it is owned by a single editing session.
type Stack struct {
	texts     []string
	maxDepth  int
	observers *event.Registry[Observer]
}

// NewStack creates an empty clipboard stack.
func NewStack(opts ...Option) *Stack {
	s := &Stack{
		observers: event.NewRegistry[Observer](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Push places text on top of the stack and notifies observers.
func (s *Stack) Push(text string) {
	s.texts = append(s.texts, text)
	if s.maxDepth > 0 && len(s.texts) > s.maxDepth {
		drop := len(s.texts) - s.maxDepth
		s.texts = append(s.texts[:0:0], s.texts[drop:]...)
	}
	s.notify()
}

// Pop removes and returns the top entry.
// Observers are notified only when an entry was removed.
func (s *Stack) Pop() (string, bool) {
	if len(s.texts) == 0 {
		return "", false
	}
	last := len(s.texts) - 1
	text := s.texts[last]
	s.texts = s.texts[:last]
	s.notify()
	return text, true
}

// Peek returns the top entry without removing it.
func (s *Stack) Peek() (string, bool) {
	if len(s.texts) == 0 {
		return "", false
	}
	return s.texts[len(s.texts)-1], true
}

// IsEmpty returns true if the stack holds no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.texts) == 0
}

// Len returns the number of entries.
func (s *Stack) Len() int {
	return len(s.texts)
}

// MaxDepth returns the configured bound, or 0 when unbounded.
func (s *Stack) MaxDepth() int {
	return s.maxDepth
}

// Clear removes every entry and notifies observers.
func (s *Stack) Clear() {
	s.texts = nil
	s.notify()
}

// AddObserver registers an observer.
func (s *Stack) AddObserver(o Observer) {
	s.observers.Add(o)
}

// RemoveObserver unregisters an observer.
// Returns an error wrapping event.ErrObserverNotFound if it was not registered.
func (s *Stack) RemoveObserver(o Observer) error {
	if err := s.observers.Remove(o); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	return nil
}

func (s *Stack) notify() {
	s.observers.Each(func(o Observer) {
		o.ClipboardChanged()
	})
}
