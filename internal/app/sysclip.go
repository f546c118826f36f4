package app

import (
	"github.com/atotto/clipboard"

	clipstack "github.com/dshills/quill/internal/engine/clipboard"
)

// SystemClipboard mirrors the top of the clipboard stack to the system
// clipboard whenever the stack changes.
type SystemClipboard struct {
	stack  *clipstack.Stack
	write  func(string) error
	logger *Logger

	last   string
	failed bool
}

// NewSystemClipboard creates a mirror of stack. A nil write uses the
// system clipboard.
func NewSystemClipboard(stack *clipstack.Stack, write func(string) error, logger *Logger) *SystemClipboard {
	if write == nil {
		write = clipboard.WriteAll
	}
	if logger == nil {
		logger = NullLogger
	}
	return &SystemClipboard{
		stack:  stack,
		write:  write,
		logger: logger.WithComponent("sysclip"),
	}
}

// SystemClipboardAvailable reports whether the system clipboard can be used.
func SystemClipboardAvailable() bool {
	return !clipboard.Unsupported
}

// systemClipboardAvailable is replaced in tests.
var systemClipboardAvailable = SystemClipboardAvailable

// Attach starts mirroring.
func (s *SystemClipboard) Attach() {
	s.stack.AddObserver(s)
}

// Detach stops mirroring.
func (s *SystemClipboard) Detach() {
	_ = s.stack.RemoveObserver(s)
}

// ClipboardChanged implements clipboard.Observer.
func (s *SystemClipboard) ClipboardChanged() {
	top, ok := s.stack.Peek()
	if !ok || top == s.last {
		return
	}
	if err := s.write(top); err != nil {
		// Report the first failure only; a missing clipboard tool fails every time.
		if !s.failed {
			s.logger.Warn("system clipboard write failed: %v", err)
		}
		s.failed = true
		return
	}
	s.last = top
	s.failed = false
}
