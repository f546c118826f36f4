// Package renderer draws the editor on a terminal screen using tcell.
//
// A View observes an engine.Model and its clipboard stack. It shows the
// visible lines with the selection in reverse video, places the terminal
// cursor at the model cursor, and keeps a status line on the last row with
// the file name, the 1-based line and column, the line count, the clipboard
// depth, and the last message.
//
// Display widths come from go-runewidth, so wide runes take two cells and
// tabs expand to the next tab stop.
package renderer
