// Package layout holds the page model of a render pass: geometry, the cursor
// that tracks where the next block goes, and the draw instructions produced.
package layout

// Geometry is the fixed page frame in millimetres.
type Geometry struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64
	Top        float64
}

// A4 is the portrait A4 frame used by every document template.
func A4() Geometry {
	return Geometry{
		PageWidth:  210,
		PageHeight: 297,
		Margin:     20,
		Top:        30,
	}
}

// Bottom is the lowest y a block may reach.
func (g Geometry) Bottom() float64 {
	return g.PageHeight - g.Margin
}

// Printable is the usable height of a fresh page.
func (g Geometry) Printable() float64 {
	return g.Bottom() - g.Top
}

// ContentWidth is the horizontal space between the side margins.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - 2*g.Margin
}

// Cursor tracks the current page and vertical offset of a pass. It is a
// value: every operation returns the moved cursor and leaves the receiver
// untouched.
type Cursor struct {
	Page     int
	Y        float64
	geometry Geometry
}

// NewCursor places a cursor at the top of the first page.
func NewCursor(g Geometry) Cursor {
	return Cursor{Y: g.Top, geometry: g}
}

func (c Cursor) Geometry() Geometry {
	return c.geometry
}

// Fits reports whether a block of height h fits below the cursor.
func (c Cursor) Fits(h float64) bool {
	return c.Y+h <= c.geometry.Bottom()
}

// AtTop reports whether nothing has been placed on the current page yet.
func (c Cursor) AtTop() bool {
	return c.Y <= c.geometry.Top
}

// Reserve makes room for a block of height h without consuming it. When the
// block would cross the bottom margin a PageBreak is appended to out and the
// cursor moves to the top of the next page. A cursor already at the top of a
// page never breaks, so an oversized block cannot produce empty pages.
func (c Cursor) Reserve(h float64, out []Instruction) (Cursor, []Instruction) {
	if c.Fits(h) || c.AtTop() {
		return c, out
	}
	c.Page++
	c.Y = c.geometry.Top
	return c, append(out, PageBreak{Page: c.Page})
}

// Advance reserves h, then moves past it. It returns the y the block
// starts at.
func (c Cursor) Advance(h float64, out []Instruction) (Cursor, float64, []Instruction) {
	c, out = c.Reserve(h, out)
	y := c.Y
	c.Y += h
	return c, y, out
}

// Skip moves down by h without checking the page bottom. The next Reserve or
// Advance takes the break if one is needed.
func (c Cursor) Skip(h float64) Cursor {
	c.Y += h
	return c
}
