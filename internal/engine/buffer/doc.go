// Package buffer provides the coordinate types and line helpers shared by
// the editing engine and its adapters.
//
// Position Types:
//
//   - Location: a (column, line) coordinate, 0-indexed, column in runes
//   - LocationRange: a pair of Locations describing a selection; the pair
//     keeps the direction the user selected in and is normalized on read
//
// Both types are immutable value types and safe to copy freely.
//
// Line Helpers:
//
// Lines are stored without their terminator. SplitLines and JoinLines
// convert between a newline-joined document and its lines, and
// NormalizeLineEndings folds CRLF and CR into LF before splitting.
//
//	lines := buffer.SplitLines("Hello\r\nWorld")  // ["Hello", "World"]
//	before, after := buffer.SplitAt(lines[0], 2)  // "He", "llo"
package buffer
