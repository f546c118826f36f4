// Package lua runs Quill plugins written in Lua.
//
// A script plugin is a single Lua file that sets a few globals:
//
//	name = "Reverse"
//	description = "Reverses the document."
//
//	function execute()
//	    editor.set_text(editor.get_text():reverse())
//	    return "reversed"
//	end
//
// The name global defaults to the file's base name. The execute function is
// required; a string it returns is shown to the user.
//
// # Sandbox
//
// Only the base, table, string, and math libraries are opened. The
// functions that load code from disk or strings are removed and print
// writes to the state's output writer instead of stdout.
//
// # Editor API
//
// While execute runs, two tables are available:
//
//	editor.get_text()        editor.set_text(s)     editor.insert(s)
//	editor.cursor()          editor.line_count()    editor.selected_text()
//	clipboard.push(s)        clipboard.pop()        clipboard.peek()
//	clipboard.is_empty()
//
// editor.cursor returns the zero-based column and line.
package lua
