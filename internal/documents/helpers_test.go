package documents

import (
	"github.com/FabianMondragon08/Checklist/internal/layout"
)

// charOptions measures one unit per character so line breaks are exact.
func charOptions() Options {
	return Options{
		Geometry:         layout.A4(),
		Metrics:          layout.CharMetrics{CharWidth: 1},
		ObservationLines: PermitObservationLines,
	}
}

func sampleInspection() *Inspection {
	return &Inspection{
		ID:         "insp-1",
		Datacenter: DatacenterDC1,
		Date:       "2024-03-01",
		Time:       "08:30",
		Shift:      ShiftMorning,
		Checklist:  NewChecklist(),
		Inspector:  "Ana Pérez",
	}
}

func samplePermit() *WorkPermit {
	return &WorkPermit{
		ID:               "P-001",
		Name:             "Carlos Ruiz",
		Identification:   "0912345678",
		Company:          "Climatec S.A.",
		AccessReason:     "Mantenimiento preventivo de unidades de aire acondicionado",
		EquipmentTools:   "Manómetros, escalera",
		EntryDate:        "2024-03-01",
		EntryTime:        "09:15",
		AuthorizedPerson: "María López, Jefa de Infraestructura",
	}
}

func texts(doc *layout.Document, tag layout.Tag) []layout.Text {
	var out []layout.Text
	for _, ins := range doc.Instructions {
		if t, ok := ins.(layout.Text); ok && t.Tag == tag {
			out = append(out, t)
		}
	}
	return out
}

func rules(doc *layout.Document, tag layout.Tag) []layout.Rule {
	var out []layout.Rule
	for _, ins := range doc.Instructions {
		if r, ok := ins.(layout.Rule); ok && r.Tag == tag {
			out = append(out, r)
		}
	}
	return out
}

func contents(ts []layout.Text) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Content
	}
	return out
}

// pageOf returns the page index of every instruction.
func pageOf(doc *layout.Document) []int {
	pages := make([]int, len(doc.Instructions))
	page := 0
	for i, ins := range doc.Instructions {
		if b, ok := ins.(layout.PageBreak); ok {
			page = b.Page
		}
		pages[i] = page
	}
	return pages
}

// tagPages lists the pages on which elements with tag are drawn.
func tagPages(doc *layout.Document, tag layout.Tag) []int {
	pages := pageOf(doc)
	var out []int
	for i, ins := range doc.Instructions {
		switch v := ins.(type) {
		case layout.Text:
			if v.Tag == tag {
				out = append(out, pages[i])
			}
		case layout.Rule:
			if v.Tag == tag {
				out = append(out, pages[i])
			}
		}
	}
	return out
}
