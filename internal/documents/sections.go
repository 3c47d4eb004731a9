package documents

import (
	"strings"

	"github.com/FabianMondragon08/Checklist/internal/layout"
)

// Tags identify drawn elements so a pass can be inspected.
const (
	TagTitle              layout.Tag = "title"
	TagMetadata           layout.Tag = "metadata"
	TagSeparator          layout.Tag = "separator"
	TagCategoryHeader     layout.Tag = "category.header"
	TagGlyphDone          layout.Tag = "glyph.done"
	TagGlyphPending       layout.Tag = "glyph.pending"
	TagItemDescription    layout.Tag = "item.description"
	TagItemObservation    layout.Tag = "item.observation"
	TagObservationsHeader layout.Tag = "observations.header"
	TagObservationsText   layout.Tag = "observations.text"
	TagSignatureHeader    layout.Tag = "signature.header"
	TagSignatureLine      layout.Tag = "signature.line"
	TagSignatureCaption   layout.Tag = "signature.caption"
	TagSignatureValue     layout.Tag = "signature.value"
	TagFieldLabel         layout.Tag = "field.label"
	TagFieldLine          layout.Tag = "field.line"
	TagFieldValue         layout.Tag = "field.value"
)

const (
	fontFamily = "Helvetica"
	glyphFont  = "ZapfDingbats"

	// ZapfDingbats code points for a heavy check mark and a heavy ballot X.
	glyphDone    = "4"
	glyphPending = "8"
)

var (
	titleStyle       = layout.Style{Family: fontFamily, Emphasis: "B", Size: 16}
	bodyStyle        = layout.Style{Family: fontFamily, Size: 12}
	headingStyle     = layout.Style{Family: fontFamily, Emphasis: "B", Size: 12}
	observationStyle = layout.Style{Family: fontFamily, Emphasis: "I", Size: 10}
	captionStyle     = layout.Style{Family: fontFamily, Size: 10}
	doneStyle        = layout.Style{Family: glyphFont, Size: 12, Color: layout.Color{G: 128}}
	pendingStyle     = layout.Style{Family: glyphFont, Size: 12, Color: layout.Color{R: 255}}
)

// Checklist geometry in millimetres.
const (
	headerHeight          = 10.0
	categoryGap           = 10.0
	descriptionLineHeight = 5.0
	observationLineHeight = 4.0
	itemGap               = 5.0
	descriptionIndent     = 10.0
	observationIndent     = 15.0

	generalObservationsGap = 20.0

	signatureWidth     = 60.0
	signatureRuleDrop  = 20.0
	signatureCaptionAt = 30.0
	signatureBlockSize = 35.0
)

// section carries what every renderer needs besides the cursor.
type section struct {
	metrics  layout.Metrics
	geometry layout.Geometry
}

func (s section) wrap(text string, maxWidth float64, style layout.Style) []string {
	return layout.Wrap(s.metrics, text, maxWidth, style)
}

func text(x float64, content string, style layout.Style, tag layout.Tag) layout.Text {
	return layout.Text{X: x, Content: content, Style: style, Tag: tag}
}

type categoryGroup struct {
	category Category
	label    string
	items    []ChecklistItem
}

// groupByCategory groups items under the categories in their fixed order,
// keeping submission order within a category. Empty categories are left out.
func groupByCategory(items []ChecklistItem) ([]categoryGroup, error) {
	byCategory := make(map[Category][]ChecklistItem)
	for _, item := range items {
		if _, err := item.Category.Label(); err != nil {
			return nil, err
		}
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	var groups []categoryGroup
	for _, c := range Categories() {
		if len(byCategory[c]) == 0 {
			continue
		}
		label, _ := c.Label()
		groups = append(groups, categoryGroup{category: c, label: label, items: byCategory[c]})
	}
	return groups, nil
}

// itemBlock lays out one checklist item: the status glyph beside the wrapped
// description, then the observation lines at a deeper indent.
func (s section) itemBlock(item ChecklistItem) layout.Block {
	margin := s.geometry.Margin
	descWidth := s.geometry.ContentWidth() - descriptionIndent
	obsWidth := s.geometry.ContentWidth() - observationIndent

	glyph := text(margin, glyphPending, pendingStyle, TagGlyphPending)
	if item.Completed {
		glyph = text(margin, glyphDone, doneStyle, TagGlyphDone)
	}

	var block layout.Block
	for i, line := range s.wrap(item.Description, descWidth, bodyStyle) {
		row := layout.Row{Height: descriptionLineHeight}
		if i == 0 {
			row.Items = append(row.Items, glyph)
		}
		row.Items = append(row.Items, text(margin+descriptionIndent, line, bodyStyle, TagItemDescription))
		block = append(block, row)
	}

	if strings.TrimSpace(item.Observations) == "" {
		return block
	}
	block = append(block, layout.Row{Height: itemGap})
	for _, line := range s.wrap(item.Observations, obsWidth, observationStyle) {
		block = append(block, layout.Row{
			Height: observationLineHeight,
			Items:  []layout.Instruction{text(margin+observationIndent, line, observationStyle, TagItemObservation)},
		})
	}
	return block
}

// renderChecklist draws every item once, grouped under its category heading.
func (s section) renderChecklist(cur layout.Cursor, out []layout.Instruction, items []ChecklistItem) (layout.Cursor, []layout.Instruction, error) {
	groups, err := groupByCategory(items)
	if err != nil {
		return cur, out, &RenderFault{Op: "checklist", Message: "cannot group items", Cause: err}
	}

	for _, g := range groups {
		// The header travels with the first item so it never ends a page.
		header := layout.Row{
			Height: headerHeight,
			Items:  []layout.Instruction{text(s.geometry.Margin, g.label, headingStyle, TagCategoryHeader)},
		}
		for i, item := range g.items {
			block := s.itemBlock(item)
			if i == 0 {
				block = append(layout.Block{header}, block...)
			}
			cur, out = cur.Place(block, out)
			cur = cur.Skip(itemGap)
		}
		cur = cur.Skip(categoryGap)
	}
	return cur, out, nil
}

// renderGeneralObservations draws the closing remarks; blank text draws nothing.
func (s section) renderGeneralObservations(cur layout.Cursor, out []layout.Instruction, observations string) (layout.Cursor, []layout.Instruction) {
	if strings.TrimSpace(observations) == "" {
		return cur, out
	}

	margin := s.geometry.Margin
	block := layout.Block{{
		Height: headerHeight,
		Items:  []layout.Instruction{text(margin, LabelGeneralObservations, headingStyle, TagObservationsHeader)},
	}}
	for _, line := range s.wrap(observations, s.geometry.ContentWidth(), bodyStyle) {
		block = append(block, layout.Row{
			Height: descriptionLineHeight,
			Items:  []layout.Instruction{text(margin, line, bodyStyle, TagObservationsText)},
		})
	}

	cur, out = cur.Reserve(headerHeight+descriptionLineHeight, out)
	cur, out = cur.Place(block, out)
	return cur.Skip(generalObservationsGap), out
}

// renderInspectionSignatures draws the Inspector and Supervisor lines side by
// side as one unit.
func (s section) renderInspectionSignatures(cur layout.Cursor, out []layout.Instruction) (layout.Cursor, []layout.Instruction) {
	margin := s.geometry.Margin
	spacing := (s.geometry.ContentWidth() - 2*signatureWidth) / 3

	items := []layout.Instruction{text(margin, LabelSignatures, headingStyle, TagSignatureHeader)}
	for i, caption := range []string{LabelInspector, LabelSupervisor} {
		left := margin + float64(i)*(signatureWidth+spacing)
		items = append(items,
			layout.Rule{X1: left, Y1: signatureRuleDrop, X2: left + signatureWidth, Y2: signatureRuleDrop, Tag: TagSignatureLine},
			layout.Text{X: left + signatureWidth/2, Y: signatureCaptionAt, Content: caption, Style: captionStyle, Align: layout.AlignCenter, Tag: TagSignatureCaption},
		)
	}
	return cur.Place(layout.Block{{Height: signatureBlockSize, Items: items}}, out)
}
