package engine

import "github.com/dshills/quill/internal/engine/buffer"

// CopySelection pushes the selected text onto the clipboard stack.
// It does nothing without a selection.
func (m *Model) CopySelection() {
	m.mutating()

	if text, ok := m.SelectedText(); ok {
		m.guard(func() { m.clipboard.Push(text) })
	}
}

// CutSelection deletes the selected text and pushes it onto the clipboard
// stack. It does nothing without a selection.
func (m *Model) CutSelection() {
	m.mutating()

	text, ok := m.SelectedText()
	if !ok {
		return
	}
	m.deleteSelection()
	m.guard(func() { m.clipboard.Push(text) })
	m.publish(changeAll)
}

// Paste inserts the top of the clipboard stack at the cursor, leaving the
// stack unchanged. It does nothing when the stack is empty.
func (m *Model) Paste() {
	m.mutating()

	if text, ok := m.clipboard.Peek(); ok {
		m.paste(text)
	}
}

// PasteAndRemove pops the top of the clipboard stack and inserts it at the
// cursor. It does nothing when the stack is empty.
func (m *Model) PasteAndRemove() {
	m.mutating()

	var (
		text string
		ok   bool
	)
	m.guard(func() { text, ok = m.clipboard.Pop() })
	if ok {
		m.paste(text)
	}
}

func (m *Model) paste(text string) {
	m.deleteSelection()
	m.insertText(buffer.NormalizeLineEndings(text))
	m.publish(changeAll)
}
