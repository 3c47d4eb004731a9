package documents

import (
	"strings"

	"github.com/FabianMondragon08/Checklist/internal/layout"
)

// PermitObservationLines is the number of ruled lines the paper form prints
// for observations. Longer text adds lines rather than being cut.
const PermitObservationLines = 10

// Minimum ruled lines for the free-text fields of the paper form.
const (
	accessReasonMinLines = 3
	equipmentMinLines    = 2
)

// Work permit geometry in millimetres.
const (
	annexGap         = 10.0
	permitTitleGap   = 25.0
	fieldHeight      = 15.0
	fieldValueInset  = 5.0
	ruledLabelHeight = 8.0
	ruledLineHeight  = 8.0
	valueLift        = 2.0
	valueInset       = 2.0
	accessReasonGap  = 5.0
	equipmentGap     = 10.0
	entryRowHeight   = 15.0
	exitRowHeight    = 25.0
	secondColumn     = 80.0
	blockLabelHeight = 10.0
	authorizedGap    = 12.0
	observationsGap  = 15.0

	permitSignatureRow       = 25.0
	permitSignatureLineDrop  = 5.0
	permitSignatureValueDrop = 3.0
	permitSignatureLineStart = 40.0
	permitSignatureLineEnd   = 100.0
	permitSignatureValueAt   = 45.0
	permitSignatureBlock     = 60.0
)

// Label widths of the single-line fields, as on the paper form.
const (
	nameLabelWidth           = 25.0
	identificationLabelWidth = 35.0
	companyLabelWidth        = 25.0
)

// AssembleWorkPermit validates a work permit and lays out the annex form.
func AssembleWorkPermit(p *WorkPermit, opts Options) (*layout.Document, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return renderWorkPermit(p, opts)
}

func renderWorkPermit(p *WorkPermit, opts Options) (*layout.Document, error) {
	g := opts.Geometry
	s := section{metrics: opts.Metrics, geometry: g}
	observationLines := opts.ObservationLines
	if observationLines <= 0 {
		observationLines = PermitObservationLines
	}

	title := layout.Block{
		{Height: annexGap, Items: []layout.Instruction{
			layout.Text{X: g.PageWidth / 2, Content: LabelPermitAnnex, Style: titleStyle, Align: layout.AlignCenter, Tag: TagTitle},
		}},
		{Height: permitTitleGap, Items: []layout.Instruction{
			layout.Text{X: g.PageWidth / 2, Content: LabelPermitTitle, Style: titleStyle, Align: layout.AlignCenter, Tag: TagTitle},
		}},
	}

	// The exit pair is filled in only once both halves are known.
	exitDate, exitTime := PlaceholderDate, PlaceholderTime
	if strings.TrimSpace(p.ExitDate) != "" && strings.TrimSpace(p.ExitTime) != "" {
		exitDate, exitTime = formatDate(p.ExitDate), p.ExitTime
	}

	cur := layout.NewCursor(g)
	cur, out := cur.Place(title, nil)

	cur, out = cur.Place(s.labelledField(LabelName, p.Name, nameLabelWidth), out)
	cur, out = cur.Place(s.labelledField(LabelIdentification, p.Identification, identificationLabelWidth), out)
	cur, out = cur.Place(s.labelledField(LabelCompany, p.Company, companyLabelWidth), out)

	cur, out = cur.Place(s.ruledField(LabelAccessReason, p.AccessReason, accessReasonMinLines, ruledLabelHeight), out)
	cur = cur.Skip(accessReasonGap)
	cur, out = cur.Place(s.ruledField(LabelEquipmentTools, p.EquipmentTools, equipmentMinLines, ruledLabelHeight), out)
	cur = cur.Skip(equipmentGap)

	cur, out = cur.Place(s.pairRow(entryRowHeight,
		LabelEntryDate+" "+formatDate(p.EntryDate),
		LabelEntryTime+" "+p.EntryTime), out)
	cur, out = cur.Place(s.pairRow(exitRowHeight,
		LabelExitDate+" "+exitDate,
		LabelExitTime+" "+exitTime), out)

	cur, out = cur.Place(s.ruledField(LabelAuthorizedPerson, p.AuthorizedPerson, 1, blockLabelHeight), out)
	cur = cur.Skip(authorizedGap)
	cur, out = cur.Place(s.ruledField(LabelObservations, p.Observations, observationLines, blockLabelHeight), out)
	cur = cur.Skip(observationsGap)

	_, out = s.renderPermitSignatures(cur, out, p)

	return finish(&layout.Document{
		Name:         WorkPermitFileName(p),
		Title:        LabelPermitTitle,
		Geometry:     g,
		Instructions: out,
	})
}

// labelledField is a label followed by an underline with the value written on it.
func (s section) labelledField(label, value string, labelWidth float64) layout.Block {
	m := s.geometry.Margin
	return layout.Block{{Height: fieldHeight, Items: []layout.Instruction{
		text(m, label, bodyStyle, TagFieldLabel),
		layout.Rule{X1: m + labelWidth, X2: s.geometry.PageWidth - m, Tag: TagFieldLine},
		layout.Text{X: m + labelWidth + fieldValueInset, Y: -valueLift, Content: value, Style: bodyStyle, Tag: TagFieldValue},
	}}}
}

// ruledField is a label over full-width underlines, one per wrapped line of
// value, padded with blank underlines up to minLines.
func (s section) ruledField(label, value string, minLines int, labelHeight float64) layout.Block {
	m := s.geometry.Margin
	right := s.geometry.PageWidth - m

	var lines []string
	if strings.TrimSpace(value) != "" {
		lines = s.wrap(value, s.geometry.ContentWidth()-valueInset, bodyStyle)
	}

	block := layout.Block{{Height: labelHeight, Items: []layout.Instruction{text(m, label, bodyStyle, TagFieldLabel)}}}
	for i := 0; i < max(minLines, len(lines)); i++ {
		row := layout.Row{Height: ruledLineHeight, Items: []layout.Instruction{
			layout.Rule{X1: m, X2: right, Tag: TagFieldLine},
		}}
		if i < len(lines) {
			row.Items = append(row.Items, layout.Text{X: m + valueInset, Y: -valueLift, Content: lines[i], Style: bodyStyle, Tag: TagFieldValue})
		}
		block = append(block, row)
	}
	return block
}

func (s section) pairRow(height float64, left, right string) layout.Block {
	m := s.geometry.Margin
	return layout.Block{{Height: height, Items: []layout.Instruction{
		text(m, left, bodyStyle, TagFieldValue),
		text(m+secondColumn, right, bodyStyle, TagFieldValue),
	}}}
}

// renderPermitSignatures draws the provider, DC manager and collaborator rows
// as one unit. A submitted signature is written above its line.
func (s section) renderPermitSignatures(cur layout.Cursor, out []layout.Instruction, p *WorkPermit) (layout.Cursor, []layout.Instruction) {
	m := s.geometry.Margin
	rows := []struct {
		label, value string
	}{
		{LabelProviderSignature, p.ProviderSignature},
		{LabelDCManagerSignature, p.DCManagerSignature},
		{LabelCollaboratorSignature, p.CollaboratorSignature},
	}

	var items []layout.Instruction
	for i, r := range rows {
		top := float64(i) * permitSignatureRow
		items = append(items,
			layout.Text{X: m, Y: top, Content: r.label, Style: bodyStyle, Tag: TagSignatureCaption},
			layout.Rule{
				X1: m + permitSignatureLineStart, Y1: top + permitSignatureLineDrop,
				X2: m + permitSignatureLineEnd, Y2: top + permitSignatureLineDrop,
				Tag: TagSignatureLine,
			},
		)
		if strings.TrimSpace(r.value) != "" {
			items = append(items, layout.Text{
				X: m + permitSignatureValueAt, Y: top + permitSignatureValueDrop,
				Content: r.value, Style: bodyStyle, Tag: TagSignatureValue,
			})
		}
	}
	return cur.Place(layout.Block{{Height: permitSignatureBlock, Items: items}}, out)
}
