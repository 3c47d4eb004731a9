package layout

import "fmt"

// Document is the finished output of a layout pass, ready to serialize.
type Document struct {
	Name         string
	Title        string
	Geometry     Geometry
	Instructions []Instruction
}

// PageCount is the number of pages the instructions span.
func (d *Document) PageCount() int {
	n := 1
	for _, ins := range d.Instructions {
		if _, ok := ins.(PageBreak); ok {
			n++
		}
	}
	return n
}

// Pages splits the instructions at each PageBreak. Breaks are not included.
func (d *Document) Pages() [][]Instruction {
	pages := [][]Instruction{nil}
	for _, ins := range d.Instructions {
		if _, ok := ins.(PageBreak); ok {
			pages = append(pages, nil)
			continue
		}
		pages[len(pages)-1] = append(pages[len(pages)-1], ins)
	}
	return pages
}

// Check verifies that page breaks are sequential and that nothing is drawn
// outside the page frame.
func (d *Document) Check() error {
	page := 0
	for i, ins := range d.Instructions {
		switch v := ins.(type) {
		case PageBreak:
			if v.Page != page+1 {
				return fmt.Errorf("instruction %d: page break to %d after page %d", i, v.Page, page)
			}
			page = v.Page
		case Text:
			if err := d.checkY(v.Y); err != nil {
				return fmt.Errorf("instruction %d (%s on page %d): %w", i, v.Tag, page, err)
			}
		case Rule:
			if err := d.checkY(v.Y1); err != nil {
				return fmt.Errorf("instruction %d (%s on page %d): %w", i, v.Tag, page, err)
			}
			if err := d.checkY(v.Y2); err != nil {
				return fmt.Errorf("instruction %d (%s on page %d): %w", i, v.Tag, page, err)
			}
		default:
			return fmt.Errorf("instruction %d: unknown type %T", i, ins)
		}
	}
	return nil
}

func (d *Document) checkY(y float64) error {
	if y < 0 || y > d.Geometry.Bottom() {
		return fmt.Errorf("y=%.2f outside printable area [0, %.2f]", y, d.Geometry.Bottom())
	}
	return nil
}
