package layout

// Instruction is one drawing operation of a layout pass. The set of
// implementations is closed: Text, Rule and PageBreak.
type Instruction interface {
	shift(dy float64) Instruction
}

// Align selects how a Text is anchored on its X coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Color is an RGB colour with 0-255 channels.
type Color struct {
	R, G, B int
}

var Black = Color{}

// Style describes how text is set.
type Style struct {
	Family   string
	Emphasis string // "", "B", "I" or "BI"
	Size     float64
	Color    Color
}

// Tag marks what a drawn element means so a pass can be inspected
// without parsing coordinates.
type Tag string

// Text draws Content with its baseline at Y.
type Text struct {
	X, Y    float64
	Content string
	Style   Style
	Align   Align
	Tag     Tag
}

func (t Text) shift(dy float64) Instruction {
	t.Y += dy
	return t
}

// Rule draws a straight line segment.
type Rule struct {
	X1, Y1 float64
	X2, Y2 float64
	Width  float64
	Tag    Tag
}

func (r Rule) shift(dy float64) Instruction {
	r.Y1 += dy
	r.Y2 += dy
	return r
}

// PageBreak starts page Page (0-based).
type PageBreak struct {
	Page int
}

func (p PageBreak) shift(float64) Instruction { return p }
