package layout

import (
	"unicode/utf8"

	"github.com/FabianMondragon08/Checklist/pkg/textflow"
)

// Metrics measures text as it will be set on the page.
type Metrics interface {
	Width(s string, style Style) float64
}

// CharMetrics gives every character the same width regardless of style.
// A zero CharWidth counts characters.
type CharMetrics struct {
	CharWidth float64
}

func (m CharMetrics) Width(s string, _ Style) float64 {
	w := m.CharWidth
	if w == 0 {
		w = 1
	}
	return float64(utf8.RuneCountInString(s)) * w
}

// Wrap breaks text into lines no wider than maxWidth in the given style.
func Wrap(m Metrics, text string, maxWidth float64, style Style) []string {
	return textflow.WrapFunc(text, maxWidth, func(s string) float64 {
		return m.Width(s, style)
	})
}
