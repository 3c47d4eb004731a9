// Package textflow wraps text into lines that fit a maximum width.
//
// Wrapping is greedy and deterministic: the same text and width always produce
// the same lines, which is what page layout relies on.
package textflow

import (
	"strings"
	"unicode/utf8"
)

// WidthFunc measures the rendered width of a string.
type WidthFunc func(s string) float64

// RuneWidth measures a string in character units.
func RuneWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s))
}

// Wrap splits text into lines of at most maxWidth characters.
// It never returns an empty slice: empty text yields a single empty line.
func Wrap(text string, maxWidth int) []string {
	return WrapFunc(text, float64(maxWidth), RuneWidth)
}

// LineCount returns the number of lines Wrap produces.
func LineCount(text string, maxWidth int) int {
	return len(Wrap(text, maxWidth))
}

// WrapFunc splits text into lines whose width, as reported by width, stays
// within maxWidth. Newlines are hard breaks. A single token wider than maxWidth
// is placed alone on its own line.
func WrapFunc(text string, maxWidth float64, width WidthFunc) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, " \t\r\n")
	if text == "" {
		return []string{""}
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, maxWidth, width)...)
	}
	return lines
}

func wrapParagraph(paragraph string, maxWidth float64, width WidthFunc) []string {
	tokens := strings.Fields(paragraph)
	if len(tokens) == 0 {
		return []string{""}
	}

	var lines []string
	current := tokens[0]
	for _, token := range tokens[1:] {
		candidate := current + " " + token
		if width(candidate) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = token
	}
	return append(lines, current)
}
