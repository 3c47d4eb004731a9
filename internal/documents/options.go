package documents

import (
	"github.com/FabianMondragon08/Checklist/internal/layout"
	"github.com/FabianMondragon08/Checklist/pkg/pdf"
)

// Options configures a layout pass.
type Options struct {
	Geometry         layout.Geometry
	Metrics          layout.Metrics
	ObservationLines int
}

// DefaultOptions lays out A4 pages measured with the core PDF font metrics.
func DefaultOptions() Options {
	return Options{
		Geometry:         layout.A4(),
		Metrics:          NewFontMetrics(),
		ObservationLines: PermitObservationLines,
	}
}

// FontMetrics measures text with the metrics of the PDF core fonts.
type FontMetrics struct {
	measurer *pdf.Measurer
}

func NewFontMetrics() *FontMetrics {
	return &FontMetrics{measurer: pdf.NewMeasurer()}
}

func (m *FontMetrics) Width(s string, style layout.Style) float64 {
	return m.measurer.Width(style.Family, style.Emphasis, style.Size, s)
}
