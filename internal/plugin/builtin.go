package plugin

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Builtins returns the plugins that ship with the editor.
func Builtins() []Plugin {
	return []Plugin{
		&Uppercase{},
		&Statistics{},
	}
}

// Uppercase capitalizes the first letter of every word in the document.
type Uppercase struct{}

// Name implements Plugin.
func (*Uppercase) Name() string { return "Uppercase" }

// Description implements Plugin.
func (*Uppercase) Description() string {
	return "Converts the first letter of every word to uppercase."
}

// Execute implements Plugin.
func (*Uppercase) Execute(doc Document, _ Clipboard) (string, error) {
	caser := cases.Title(language.Und, cases.NoLower)
	doc.SetText(caser.String(doc.Text()))
	return "All first letters of words are converted to uppercase.", nil
}

// Stats holds document counts.
type Stats struct {
	Lines      int
	Words      int
	Characters int
}

// Count computes statistics for text.
func Count(text string) Stats {
	return Stats{
		Lines:      strings.Count(text, "\n") + 1,
		Words:      len(strings.Fields(text)),
		Characters: utf8.RuneCountInString(text),
	}
}

// String formats the statistics for display.
func (s Stats) String() string {
	return fmt.Sprintf("Lines: %s, Words: %s, Characters: %s",
		humanize.Comma(int64(s.Lines)),
		humanize.Comma(int64(s.Words)),
		humanize.Comma(int64(s.Characters)))
}

// Statistics reports the number of lines, words, and characters.
type Statistics struct{}

// Name implements Plugin.
func (*Statistics) Name() string { return "Statistics" }

// Description implements Plugin.
func (*Statistics) Description() string {
	return "Counts the lines, words, and characters in the document."
}

// Execute implements Plugin.
func (*Statistics) Execute(doc Document, _ Clipboard) (string, error) {
	return Count(doc.Text()).String(), nil
}
