package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallPage() Geometry {
	return Geometry{PageWidth: 100, PageHeight: 100, Margin: 10, Top: 10}
}

func countBreaks(out []Instruction) int {
	n := 0
	for _, ins := range out {
		if _, ok := ins.(PageBreak); ok {
			n++
		}
	}
	return n
}

func TestGeometry(t *testing.T) {
	g := A4()
	assert.Equal(t, 277.0, g.Bottom())
	assert.Equal(t, 247.0, g.Printable())
	assert.Equal(t, 170.0, g.ContentWidth())
}

func TestAdvanceWithinPage(t *testing.T) {
	c := NewCursor(smallPage())
	c2, y, out := c.Advance(30, nil)

	assert.Equal(t, 10.0, y)
	assert.Equal(t, 40.0, c2.Y)
	assert.Equal(t, 0, c2.Page)
	assert.Empty(t, out)
	assert.Equal(t, 10.0, c.Y, "receiver must not move")
}

func TestAdvanceBreaksExactlyAtBoundary(t *testing.T) {
	c := NewCursor(smallPage())
	var out []Instruction
	var y float64

	c, _, out = c.Advance(40, out)
	c, y, out = c.Advance(40, out)
	assert.Equal(t, 50.0, y, "ends exactly on the bottom margin, no break")
	assert.Equal(t, 90.0, c.Y)
	assert.Zero(t, countBreaks(out))

	c, y, out = c.Advance(0.5, out)
	require.Equal(t, 1, countBreaks(out))
	assert.Equal(t, PageBreak{Page: 1}, out[0])
	assert.Equal(t, 1, c.Page)
	assert.Equal(t, 10.0, y)
	assert.Equal(t, 10.5, c.Y)
}

func TestReserveDoesNotConsume(t *testing.T) {
	c := NewCursor(smallPage()).Skip(50)

	same, out := c.Reserve(30, nil)
	assert.Equal(t, c, same)
	assert.Empty(t, out)

	moved, out := c.Reserve(31, nil)
	assert.Equal(t, 1, moved.Page)
	assert.Equal(t, 10.0, moved.Y)
	assert.Len(t, out, 1)
}

func TestReserveAtTopNeverBreaks(t *testing.T) {
	c := NewCursor(smallPage())
	c2, out := c.Reserve(500, nil)
	assert.Equal(t, c, c2)
	assert.Empty(t, out)
}

func TestPageIsMonotonic(t *testing.T) {
	c := NewCursor(smallPage())
	var out []Instruction
	last := 0
	for i := 0; i < 50; i++ {
		c, _, out = c.Advance(float64(i%7+1)*3, out)
		assert.GreaterOrEqual(t, c.Page, last)
		last = c.Page
	}
	assert.Equal(t, c.Page, countBreaks(out))
}

func TestPlaceKeepsBlockTogether(t *testing.T) {
	c := NewCursor(smallPage()).Skip(60)
	block := Block{
		{Height: 10, Items: []Instruction{Text{X: 1, Content: "a", Tag: "caption"}}},
		{Height: 15, Items: []Instruction{Rule{X1: 1, X2: 2, Y1: 5, Y2: 5, Tag: "line"}}},
	}

	c, out := c.Place(block, nil)

	require.Len(t, out, 3)
	assert.Equal(t, PageBreak{Page: 1}, out[0])
	assert.Equal(t, 10.0, out[1].(Text).Y)
	assert.Equal(t, 25.0, out[2].(Rule).Y1)
	assert.Equal(t, 35.0, c.Y)
}

func TestPlaceFlowsOversizedBlock(t *testing.T) {
	var block Block
	for i := 0; i < 20; i++ {
		block = append(block, Row{Height: 10, Items: []Instruction{Text{Content: "x"}}})
	}
	c := NewCursor(smallPage()).Skip(20)

	c, out := c.Place(block, nil)

	// Starts on a fresh page, then 8 rows per page.
	assert.Equal(t, 3, countBreaks(out))
	assert.Equal(t, PageBreak{Page: 1}, out[0])
	doc := &Document{Geometry: smallPage(), Instructions: out}
	assert.NoError(t, doc.Check())
	assert.Equal(t, 4, doc.PageCount())
	assert.Empty(t, doc.Pages()[0])
	assert.Len(t, doc.Pages()[1], 8)
	assert.Len(t, doc.Pages()[2], 8)
	assert.Len(t, doc.Pages()[3], 4)
	assert.Equal(t, 3, c.Page)
}

func TestPlaceOversizedBlockAtTopDoesNotBreakFirst(t *testing.T) {
	var block Block
	for i := 0; i < 10; i++ {
		block = append(block, Row{Height: 10, Items: []Instruction{Text{Content: "x"}}})
	}

	_, out := NewCursor(smallPage()).Place(block, nil)

	assert.Equal(t, 1, countBreaks(out))
	assert.Equal(t, 10.0, out[0].(Text).Y)
}

func TestDocumentCheckRejectsOverflow(t *testing.T) {
	doc := &Document{
		Geometry:     smallPage(),
		Instructions: []Instruction{Text{Y: 95, Content: "low"}},
	}
	assert.Error(t, doc.Check())

	doc.Instructions = []Instruction{Text{Y: 20}, PageBreak{Page: 2}}
	assert.Error(t, doc.Check())
}

func TestWrapWithMetrics(t *testing.T) {
	lines := Wrap(CharMetrics{CharWidth: 2}, "uno dos tres", 10, Style{})
	assert.Equal(t, []string{"uno", "dos", "tres"}, lines)
}
