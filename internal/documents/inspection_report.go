package documents

import (
	"github.com/FabianMondragon08/Checklist/internal/layout"
)

// Inspection report heading geometry in millimetres.
const (
	titleGap        = 20.0
	metaRowHeight   = 10.0
	metaGap         = 20.0
	separatorGap    = 15.0
	metaRightColumn = 50.0
)

// AssembleInspectionReport validates an inspection and lays out its report:
// title, metadata rows, separator, checklist by category, general
// observations and the two signature lines.
func AssembleInspectionReport(in *Inspection, opts Options) (*layout.Document, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return renderInspectionReport(in, opts)
}

func renderInspectionReport(in *Inspection, opts Options) (*layout.Document, error) {
	g := opts.Geometry
	s := section{metrics: opts.Metrics, geometry: g}
	right := g.PageWidth - g.Margin - metaRightColumn

	head := layout.Block{
		{Height: titleGap, Items: []layout.Instruction{
			layout.Text{X: g.PageWidth / 2, Content: LabelInspectionTitle, Style: titleStyle, Align: layout.AlignCenter, Tag: TagTitle},
		}},
		{Height: metaRowHeight, Items: []layout.Instruction{
			text(g.Margin, "Fecha: "+formatDate(in.Date), bodyStyle, TagMetadata),
			text(right, "Hora: "+in.Time, bodyStyle, TagMetadata),
		}},
		{Height: metaRowHeight, Items: []layout.Instruction{
			text(g.Margin, "Data Center: "+string(in.Datacenter), bodyStyle, TagMetadata),
			text(right, "Turno: "+in.Shift.Label(), bodyStyle, TagMetadata),
		}},
		{Height: metaGap, Items: []layout.Instruction{
			text(g.Margin, "Inspector: "+in.Inspector, bodyStyle, TagMetadata),
		}},
		{Height: separatorGap, Items: []layout.Instruction{
			layout.Rule{X1: g.Margin, X2: g.PageWidth - g.Margin, Tag: TagSeparator},
		}},
	}

	cur := layout.NewCursor(g)
	cur, out := cur.Place(head, nil)

	cur, out, err := s.renderChecklist(cur, out, in.Checklist)
	if err != nil {
		return nil, err
	}
	cur, out = s.renderGeneralObservations(cur, out, in.GeneralObservations)
	_, out = s.renderInspectionSignatures(cur, out)

	return finish(&layout.Document{
		Name:         InspectionFileName(in),
		Title:        LabelInspectionTitle,
		Geometry:     g,
		Instructions: out,
	})
}

func finish(doc *layout.Document) (*layout.Document, error) {
	if err := doc.Check(); err != nil {
		return nil, &RenderFault{Op: doc.Name, Message: "layout out of bounds", Cause: err}
	}
	return doc, nil
}
