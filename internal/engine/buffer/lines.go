package buffer

import (
	"strings"
	"unicode/utf8"
)

// NormalizeLineEndings converts CRLF and lone CR sequences to LF.
func NormalizeLineEndings(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// SplitLines splits text into lines on LF boundaries.
// The result always holds at least one line; "" yields [""] and a
// trailing newline yields a trailing empty line.
func SplitLines(text string) []string {
	return strings.Split(NormalizeLineEndings(text), "\n")
}

// JoinLines joins lines with LF.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// RuneLen returns the length of a line in runes.
func RuneLen(line string) int {
	return utf8.RuneCountInString(line)
}

// byteIndex converts a rune column into a byte index within line.
// Columns past the end of the line map to len(line).
func byteIndex(line string, col int) int {
	if col <= 0 {
		return 0
	}
	n := 0
	for i := range line {
		if n == col {
			return i
		}
		n++
	}
	return len(line)
}

// SplitAt splits line at the rune column col.
func SplitAt(line string, col int) (before, after string) {
	i := byteIndex(line, col)
	return line[:i], line[i:]
}

// Slice returns the runes of line in the column interval [from, to).
func Slice(line string, from, to int) string {
	i := byteIndex(line, from)
	j := byteIndex(line, to)
	if j < i {
		return ""
	}
	return line[i:j]
}
