package layout

// Row is a horizontal strip of a block. Instruction coordinates are relative
// to the top of the row.
type Row struct {
	Height float64
	Items  []Instruction
}

// Block is a run of rows that should stay on one page.
type Block []Row

// Height is the total height of all rows.
func (b Block) Height() float64 {
	var h float64
	for _, r := range b {
		h += r.Height
	}
	return h
}

// Place lays out b below the cursor. A block that fits on a fresh page is
// kept together, breaking before it when needed. A taller block starts on a
// fresh page and continues row by row; a single row is never split.
func (c Cursor) Place(b Block, out []Instruction) (Cursor, []Instruction) {
	if b.Height() <= c.geometry.Printable() {
		var y float64
		c, y, out = c.Advance(b.Height(), out)
		for _, r := range b {
			out = appendShifted(out, r.Items, y)
			y += r.Height
		}
		return c, out
	}

	c, out = c.Reserve(b.Height(), out)
	for _, r := range b {
		var y float64
		c, y, out = c.Advance(r.Height, out)
		out = appendShifted(out, r.Items, y)
	}
	return c, out
}

func appendShifted(out, items []Instruction, dy float64) []Instruction {
	for _, ins := range items {
		out = append(out, ins.shift(dy))
	}
	return out
}
