package documents

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/FabianMondragon08/Checklist/internal/layout"
	"github.com/FabianMondragon08/Checklist/pkg/pdf"
)

// PDFOptions configures serialization of a laid out document.
type PDFOptions struct {
	Author         string       `json:"author"`
	Creator        string       `json:"creator"`
	IncludePageNum bool         `json:"include_page_num"`
	FooterFontSize float64      `json:"footer_font_size"`
	FooterColor    layout.Color `json:"footer_color"`
	// CreationDate is written into the file metadata. It is fixed so that
	// the same document always serializes to the same bytes.
	CreationDate time.Time `json:"creation_date"`
}

// DefaultPDFOptions returns default PDF options
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		Author:         "Data Center Operations",
		Creator:        "checklist",
		IncludePageNum: true,
		FooterFontSize: 8,
		FooterColor:    layout.Color{R: 128, G: 128, B: 128},
		CreationDate:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

const (
	footerDrop       = 10.0
	defaultRuleWidth = 0.2
)

// PDFGenerator turns a layout.Document into PDF bytes.
type PDFGenerator struct {
	options PDFOptions
}

// NewPDFGenerator creates a new PDF generator
func NewPDFGenerator(options PDFOptions) *PDFGenerator {
	return &PDFGenerator{options: options}
}

// Serialize draws every page of doc and returns the encoded file.
func (g *PDFGenerator) Serialize(doc *layout.Document) ([]byte, error) {
	geo := doc.Geometry
	f := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: geo.PageWidth, Ht: geo.PageHeight},
	})
	f.SetMargins(geo.Margin, geo.Top, geo.Margin)
	f.SetAutoPageBreak(false, geo.Margin)
	f.SetTitle(doc.Title, true)
	f.SetAuthor(g.options.Author, true)
	f.SetCreator(g.options.Creator, true)
	f.SetCreationDate(g.options.CreationDate)
	f.SetCatalogSort(true)

	translate := f.UnicodeTranslatorFromDescriptor("")
	pages := doc.Pages()
	for i, page := range pages {
		f.AddPage()
		for _, ins := range page {
			switch v := ins.(type) {
			case layout.Text:
				g.drawText(f, translate, v)
			case layout.Rule:
				g.drawRule(f, v)
			}
		}
		if g.options.IncludePageNum {
			g.drawFooter(f, translate, geo, i, len(pages))
		}
	}

	if err := f.Error(); err != nil {
		return nil, &SerializationError{Artifact: doc.Name, Cause: err}
	}
	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, &SerializationError{Artifact: doc.Name, Cause: err}
	}
	return buf.Bytes(), nil
}

func (g *PDFGenerator) drawText(f *gofpdf.Fpdf, translate func(string) string, t layout.Text) {
	f.SetFont(t.Style.Family, t.Style.Emphasis, t.Style.Size)
	f.SetTextColor(t.Style.Color.R, t.Style.Color.G, t.Style.Color.B)
	content := pdf.Encode(t.Style.Family, t.Content, translate)

	x := t.X
	switch t.Align {
	case layout.AlignCenter:
		x -= f.GetStringWidth(content) / 2
	case layout.AlignRight:
		x -= f.GetStringWidth(content)
	}
	f.Text(x, t.Y, content)
}

func (g *PDFGenerator) drawRule(f *gofpdf.Fpdf, r layout.Rule) {
	width := r.Width
	if width <= 0 {
		width = defaultRuleWidth
	}
	f.SetDrawColor(0, 0, 0)
	f.SetLineWidth(width)
	f.Line(r.X1, r.Y1, r.X2, r.Y2)
}

// drawFooter writes the page number below the printable area.
func (g *PDFGenerator) drawFooter(f *gofpdf.Fpdf, translate func(string) string, geo layout.Geometry, page, total int) {
	c := g.options.FooterColor
	g.drawText(f, translate, layout.Text{
		X:       geo.PageWidth / 2,
		Y:       geo.PageHeight - footerDrop,
		Content: pageLabel(page, total),
		Style:   layout.Style{Family: fontFamily, Size: g.options.FooterFontSize, Color: c},
		Align:   layout.AlignCenter,
	})
}
