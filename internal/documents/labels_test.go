package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileNames(t *testing.T) {
	in := &Inspection{Datacenter: DatacenterDC2, Date: "2024-12-31", Shift: ShiftAfternoon}
	assert.Equal(t, "Inspeccion_DC2_2024-12-31_afternoon.pdf", InspectionFileName(in))

	p := &WorkPermit{ID: "abc-123", EntryDate: "2024-01-05"}
	assert.Equal(t, "Permiso_Trabajo_abc-123_2024-01-05.pdf", WorkPermitFileName(p))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "1/3/2024", formatDate("2024-03-01"))
	assert.Equal(t, "31/12/2024", formatDate("2024-12-31"))
	assert.Equal(t, "ayer", formatDate("ayer"))
}

func TestPageLabel(t *testing.T) {
	assert.Equal(t, "Página 1 de 3", pageLabel(0, 3))
	assert.Equal(t, "Página 3 de 3", pageLabel(2, 3))
}
