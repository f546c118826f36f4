package engine

import "github.com/dshills/quill/internal/engine/clipboard"

// Option configures a Model during creation.
type Option func(*Model)

// WithClipboard sets the clipboard stack owned by the model.
// By default each model creates its own unbounded stack.
func WithClipboard(stack *clipboard.Stack) Option {
	return func(m *Model) {
		if stack != nil {
			m.clipboard = stack
		}
	}
}
