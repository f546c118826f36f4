package plugin

import "github.com/dshills/quill/internal/engine/buffer"

// Document is the view of the edited document available to plugins.
// *engine.Model satisfies it.
type Document interface {
	Text() string
	SetText(text string)
	InsertText(text string)
	CursorLocation() buffer.Location
	LineCount() int
	SelectedText() (string, bool)
}

// Clipboard is the view of the clipboard stack available to plugins.
// *clipboard.Stack satisfies it.
type Clipboard interface {
	Push(text string)
	Pop() (string, bool)
	Peek() (string, bool)
	IsEmpty() bool
}

// Plugin is a named operation that runs against the current document.
//
// Execute returns a short message for the user, which may be empty.
type Plugin interface {
	Name() string
	Description() string
	Execute(doc Document, clip Clipboard) (string, error)
}
