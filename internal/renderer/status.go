package renderer

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Status is the document information shown in the status line.
type Status struct {
	Name     string
	Modified bool
	Message  string
}

// statusText builds the left and right halves of the status line.
func (v *View) statusText() (string, string) {
	name := v.status.Name
	if name == "" {
		name = "[scratch]"
	}
	if v.status.Modified {
		name += " [+]"
	}
	left := " " + name
	if v.status.Message != "" {
		left += "  " + v.status.Message
	}

	cursor := v.model.CursorLocation()
	right := fmt.Sprintf("Ln %d, Col %d | %d lines | clip %d ",
		cursor.Y+1, cursor.X+1, v.model.LineCount(), v.model.Clipboard().Len())
	return left, right
}

// drawStatus draws the status line on row y.
func (v *View) drawStatus(y, width int) {
	left, right := v.statusText()
	rw := runewidth.StringWidth(right)
	if rw > width {
		right = runewidth.Truncate(right, width, "")
		rw = runewidth.StringWidth(right)
	}
	left = runewidth.Truncate(left, width-rw, "…")
	lw := runewidth.StringWidth(left)

	line := left + runewidth.FillLeft(right, width-lw)
	x := 0
	for _, r := range line {
		if x >= width {
			break
		}
		v.screen.SetContent(x, y, r, nil, v.styles.Status)
		x += max(runewidth.RuneWidth(r), 1)
	}
	for ; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, v.styles.Status)
	}
}
