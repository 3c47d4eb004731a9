package pdf

import (
	"strings"
	"sync"

	"github.com/jung-kurt/gofpdf"
)

// Measurer reports string widths in millimetres using the metrics of the PDF
// core fonts. It is safe for concurrent use.
type Measurer struct {
	mu        sync.Mutex
	doc       *gofpdf.Fpdf
	translate func(string) string
}

func NewMeasurer() *Measurer {
	doc := gofpdf.New("P", "mm", "A4", "")
	return &Measurer{
		doc:       doc,
		translate: doc.UnicodeTranslatorFromDescriptor(""),
	}
}

// Width measures s set in the given core font.
func (m *Measurer) Width(family, style string, size float64, s string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.doc.SetFont(family, style, size)
	if m.doc.Err() {
		m.doc.ClearError()
		return 0
	}
	return m.doc.GetStringWidth(Encode(family, s, m.translate))
}

// IsSymbolFont reports whether family is a core font with its own glyph
// encoding, which must not be translated.
func IsSymbolFont(family string) bool {
	switch strings.ToLower(family) {
	case "zapfdingbats", "symbol":
		return true
	}
	return false
}

// Encode converts UTF-8 text to the single byte encoding of the core fonts.
func Encode(family, s string, translate func(string) string) string {
	if IsSymbolFont(family) {
		return s
	}
	return translate(s)
}
