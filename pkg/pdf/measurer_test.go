package pdf

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasurerWidth(t *testing.T) {
	m := NewMeasurer()

	short := m.Width("Helvetica", "", 12, "Turno")
	long := m.Width("Helvetica", "", 12, "Turno Mañana")
	bold := m.Width("Helvetica", "B", 12, "Turno")

	assert.Greater(t, short, 0.0)
	assert.Greater(t, long, short)
	assert.Greater(t, bold, short)
	assert.InDelta(t, 2*m.Width("Helvetica", "", 6, "Turno"), short, 1e-9)
}

func TestMeasurerWidth_UnknownFont(t *testing.T) {
	m := NewMeasurer()

	assert.Zero(t, m.Width("NoSuchFont", "", 12, "abc"))
	assert.Greater(t, m.Width("Helvetica", "", 12, "abc"), 0.0)
}

func TestMeasurerWidth_Concurrent(t *testing.T) {
	m := NewMeasurer()
	want := m.Width("Helvetica", "", 10, "Data Center")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.InDelta(t, want, m.Width("Helvetica", "", 10, "Data Center"), 1e-9)
		}()
	}
	wg.Wait()
}

func TestEncode(t *testing.T) {
	identity := func(s string) string { return "x" + s }

	assert.Equal(t, "4", Encode("ZapfDingbats", "4", identity))
	assert.Equal(t, "xñ", Encode("Helvetica", "ñ", identity))
	assert.True(t, IsSymbolFont("symbol"))
	assert.False(t, IsSymbolFont("Courier"))
}
