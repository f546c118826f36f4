package renderer

import "github.com/mattn/go-runewidth"

// DefaultTabWidth is the distance between tab stops.
const DefaultTabWidth = 4

// cellWidth returns how many cells r occupies when drawn at display column col.
func cellWidth(r rune, col, tabWidth int) int {
	if r == '\t' {
		return tabWidth - col%tabWidth
	}
	w := runewidth.RuneWidth(r)
	if w < 1 {
		// Control and zero-width runes still take a cell so the cursor can land on them.
		return 1
	}
	return w
}

// displayColumn returns the display column of the rune at index x of line.
// x may equal the line length, which is the column after the last rune.
func displayColumn(line string, x, tabWidth int) int {
	col := 0
	i := 0
	for _, r := range line {
		if i >= x {
			break
		}
		col += cellWidth(r, col, tabWidth)
		i++
	}
	return col
}
