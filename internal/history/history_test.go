package history

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/FabianMondragon08/Checklist/internal/documents"
)

func fixedExporter() *Exporter {
	e := NewExporter(DefaultExcelOptions(), DefaultCSVOptions())
	e.now = func() time.Time { return time.Date(2024, time.March, 5, 17, 0, 0, 0, time.UTC) }
	return e
}

func sampleInspections() []documents.Inspection {
	checklist := documents.NewChecklist()
	checklist[0].Completed = true
	checklist[1].Completed = true
	return []documents.Inspection{
		{ID: "a", Datacenter: documents.DatacenterDC1, Date: "2024-03-01", Time: "08:00", Shift: documents.ShiftMorning, Inspector: "Ana", Checklist: checklist},
		{ID: "b", Datacenter: documents.DatacenterDC2, Date: "2024-03-04", Time: "15:00", Shift: documents.ShiftAfternoon, Inspector: "Luis", Checklist: checklist},
		{ID: "c", Datacenter: documents.DatacenterDC1, Date: "2024-03-01", Time: "14:00", Shift: documents.ShiftAfternoon, Inspector: "Eva", Checklist: checklist},
	}
}

func TestFileName(t *testing.T) {
	day := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "inspections_2024-03-05.xlsx", FileName(KindInspections, FormatXLSX, day))
	assert.Equal(t, "permits_2024-03-05.csv", FileName(KindPermits, FormatCSV, day))
}

func TestFilterInspections(t *testing.T) {
	all := FilterInspections(sampleInspections(), "")
	require.Len(t, all, 3)
	assert.Equal(t, "b", all[0].ID)

	day := FilterInspections(sampleInspections(), "2024-03-01")
	require.Len(t, day, 2)
	assert.Equal(t, []string{"a", "c"}, []string{day[0].ID, day[1].ID})
}

func TestFilterPermits(t *testing.T) {
	base := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)
	permits := []documents.WorkPermit{
		{ID: "old", EntryDate: "2024-03-01", CreatedAt: base},
		{ID: "new", EntryDate: "2024-03-01", CreatedAt: base.Add(time.Hour)},
		{ID: "other", EntryDate: "2024-03-02", CreatedAt: base.Add(2 * time.Hour)},
	}

	got := FilterPermits(permits, "2024-03-01")
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "old", got[1].ID)
}

func TestExportInspections(t *testing.T) {
	export, err := fixedExporter().ExportInspections(sampleInspections(), "2024-03-01", FormatXLSX)
	require.NoError(t, err)

	assert.Equal(t, "inspections_2024-03-05.xlsx", export.Name)
	assert.Equal(t, 2, export.Rows)

	f, err := excelize.OpenReader(bytes.NewReader(export.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Historial")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, inspectionColumns, rows[0])
	assert.Equal(t, "a", rows[1][0])
	assert.Equal(t, "Mañana", rows[1][4])
	assert.Equal(t, "2", rows[1][6])
	assert.Equal(t, "15", rows[1][7])
}

func TestExportPermits_Empty(t *testing.T) {
	export, err := fixedExporter().ExportPermits(nil, "", FormatXLSX)
	require.NoError(t, err)

	assert.Equal(t, "permits_2024-03-05.xlsx", export.Name)
	assert.Zero(t, export.Rows)

	f, err := excelize.OpenReader(bytes.NewReader(export.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Historial")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, permitColumns, rows[0])
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	f, err = ParseFormat("CSV")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

func TestExportPermits_CSV(t *testing.T) {
	permits := []documents.WorkPermit{{
		ID:           "P-1",
		Name:         "Ana",
		AccessReason: "Cambio de UPS, rack 4",
		EntryDate:    "2024-03-01",
		CreatedAt:    time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
	}}

	export, err := fixedExporter().ExportPermits(permits, "", FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "permits_2024-03-05.csv", export.Name)
	assert.Equal(t, mimeCSV, export.ContentType)

	records, err := csv.NewReader(bytes.NewReader(export.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, permitColumns, records[0])
	assert.Equal(t, "Cambio de UPS, rack 4", records[1][4])
	assert.Equal(t, "2024-03-01T09:00:00Z", records[1][12])
}

func TestExportInspections_CSVBooleans(t *testing.T) {
	export, err := fixedExporter().ExportInspections(sampleInspections()[:1], "", FormatCSV)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(export.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "No", records[1][8])
}
