package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var highlightStyle = lipgloss.NewStyle().Background(lipgloss.Color("205")).Foreground(lipgloss.Color("0"))

// HighlightMatches re-renders text with every match of term (at the byte
// offsets in matches) highlighted. The in-page search runs it over the
// wrapped page text. Offsets that no longer fit the text are skipped
// rather than sliced out of bounds.
func HighlightMatches(text, term string, matches []int) string {
	if term == "" || len(matches) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, at := range matches {
		if at < last || at+len(term) > len(text) {
			continue
		}
		b.WriteString(text[last:at])
		b.WriteString(highlightStyle.Render(text[at : at+len(term)]))
		last = at + len(term)
	}
	b.WriteString(text[last:])
	return b.String()
}

// FindAllMatches returns the byte offsets of every case-insensitive match
// of term in text, non-overlapping, left to right.
func FindAllMatches(text, term string) []int {
	if term == "" {
		return nil
	}
	hay := strings.ToLower(text)
	needle := strings.ToLower(term)

	var at []int
	from := 0
	for {
		i := strings.Index(hay[from:], needle)
		if i < 0 {
			return at
		}
		at = append(at, from+i)
		from += i + len(needle)
	}
}
