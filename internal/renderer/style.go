package renderer

import "github.com/gdamore/tcell/v2"

// Styles holds the styles the view draws with.
type Styles struct {
	Text      tcell.Style
	Selection tcell.Style
	Status    tcell.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Text:      tcell.StyleDefault,
		Selection: tcell.StyleDefault.Reverse(true),
		Status:    tcell.StyleDefault.Reverse(true).Bold(true),
	}
}
