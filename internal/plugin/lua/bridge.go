package lua

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/quill/internal/plugin"
)

// bridge exposes the document and clipboard to Lua while a plugin runs.
type bridge struct {
	doc  plugin.Document
	clip plugin.Clipboard
}

// bind attaches the bridge to a document and clipboard.
func (b *bridge) bind(doc plugin.Document, clip plugin.Clipboard) {
	b.doc = doc
	b.clip = clip
}

// unbind detaches the bridge so stray calls fail.
func (b *bridge) unbind() {
	b.doc = nil
	b.clip = nil
}

// install registers the editor and clipboard tables on the state.
func (b *bridge) install(s *State) {
	s.RegisterModule("editor", map[string]lua.LGFunction{
		"get_text":      b.getText,
		"set_text":      b.setText,
		"insert":        b.insert,
		"cursor":        b.cursor,
		"line_count":    b.lineCount,
		"selected_text": b.selectedText,
	})
	s.RegisterModule("clipboard", map[string]lua.LGFunction{
		"push":     b.push,
		"pop":      b.pop,
		"peek":     b.peek,
		"is_empty": b.isEmpty,
	})
}

func (b *bridge) document(L *lua.LState) plugin.Document {
	if b.doc == nil {
		L.RaiseError("%s", ErrNotBound.Error())
	}
	return b.doc
}

func (b *bridge) clipboard(L *lua.LState) plugin.Clipboard {
	if b.clip == nil {
		L.RaiseError("%s", ErrNotBound.Error())
	}
	return b.clip
}

func (b *bridge) getText(L *lua.LState) int {
	L.Push(lua.LString(b.document(L).Text()))
	return 1
}

func (b *bridge) setText(L *lua.LState) int {
	text := L.CheckString(1)
	b.document(L).SetText(text)
	return 0
}

func (b *bridge) insert(L *lua.LState) int {
	text := L.CheckString(1)
	b.document(L).InsertText(text)
	return 0
}

func (b *bridge) cursor(L *lua.LState) int {
	loc := b.document(L).CursorLocation()
	L.Push(lua.LNumber(loc.X))
	L.Push(lua.LNumber(loc.Y))
	return 2
}

func (b *bridge) lineCount(L *lua.LState) int {
	L.Push(lua.LNumber(b.document(L).LineCount()))
	return 1
}

func (b *bridge) selectedText(L *lua.LState) int {
	s, ok := b.document(L).SelectedText()
	return pushOptional(L, s, ok)
}

func (b *bridge) push(L *lua.LState) int {
	text := L.CheckString(1)
	b.clipboard(L).Push(text)
	return 0
}

func (b *bridge) pop(L *lua.LState) int {
	s, ok := b.clipboard(L).Pop()
	return pushOptional(L, s, ok)
}

func (b *bridge) peek(L *lua.LState) int {
	s, ok := b.clipboard(L).Peek()
	return pushOptional(L, s, ok)
}

func (b *bridge) isEmpty(L *lua.LState) int {
	L.Push(lua.LBool(b.clipboard(L).IsEmpty()))
	return 1
}

// pushOptional pushes s, or nil when ok is false.
func pushOptional(L *lua.LState, s string, ok bool) int {
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(s))
	return 1
}
