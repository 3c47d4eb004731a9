// Package history exports lists of inspections and work permits to
// spreadsheets or CSV files.
package history

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/FabianMondragon08/Checklist/internal/documents"
)

// Kind selects which records an export holds.
type Kind string

const (
	KindInspections Kind = "inspections"
	KindPermits     Kind = "permits"
)

// Format is the file type of an export.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat maps a query value to a Format; empty means xlsx.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatXLSX:
		return FormatXLSX, nil
	case FormatCSV:
		return FormatCSV, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

func (f Format) ContentType() string {
	if f == FormatCSV {
		return mimeCSV
	}
	return mimeWorkbook
}

const (
	isoDate      = "2006-01-02"
	mimeWorkbook = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeCSV      = "text/csv; charset=utf-8"
)

// Export is a finished export file.
type Export struct {
	Name        string
	ContentType string
	Rows        int
	Data        []byte
}

// FileName names an export taken on day.
func FileName(kind Kind, format Format, day time.Time) string {
	return fmt.Sprintf("%s_%s.%s", kind, day.Format(isoDate), format)
}

var inspectionColumns = []string{
	"ID", "Data Center", "Fecha", "Hora", "Turno", "Inspector",
	"Completados", "Pendientes", "Completada", "Observaciones generales",
}

var permitColumns = []string{
	"ID", "Nombre", "Identificación", "Empresa", "Motivo del acceso",
	"Equipos o herramientas", "Fecha de ingreso", "Hora de ingreso",
	"Fecha de salida", "Hora de salida", "Autoriza", "Observaciones", "Creado",
}

// Exporter builds history exports.
type Exporter struct {
	options    ExcelOptions
	csvOptions CSVOptions
	now        func() time.Time
}

func NewExporter(options ExcelOptions, csvOptions CSVOptions) *Exporter {
	return &Exporter{options: options, csvOptions: csvOptions, now: time.Now}
}

// FilterInspections keeps inspections dated day (all when day is empty),
// newest first.
func FilterInspections(list []documents.Inspection, day string) []documents.Inspection {
	out := make([]documents.Inspection, 0, len(list))
	for _, in := range list {
		if day == "" || in.Date == day {
			out = append(out, in)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// FilterPermits keeps permits entering on day (all when day is empty),
// most recently created first.
func FilterPermits(list []documents.WorkPermit, day string) []documents.WorkPermit {
	out := make([]documents.WorkPermit, 0, len(list))
	for _, p := range list {
		if day == "" || p.EntryDate == day {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (e *Exporter) ExportInspections(list []documents.Inspection, day string, format Format) (*Export, error) {
	list = FilterInspections(list, day)
	rows := make([][]any, len(list))
	for i, in := range list {
		done := in.CompletedCount()
		rows[i] = []any{
			in.ID, string(in.Datacenter), in.Date, in.Time, in.Shift.Label(), in.Inspector,
			done, len(in.Checklist) - done, in.Completed, strings.TrimSpace(in.GeneralObservations),
		}
	}
	return e.export(KindInspections, format, inspectionColumns, rows)
}

func (e *Exporter) ExportPermits(list []documents.WorkPermit, day string, format Format) (*Export, error) {
	list = FilterPermits(list, day)
	rows := make([][]any, len(list))
	for i, p := range list {
		rows[i] = []any{
			p.ID, p.Name, p.Identification, p.Company, p.AccessReason,
			p.EquipmentTools, p.EntryDate, p.EntryTime, p.ExitDate, p.ExitTime,
			p.AuthorizedPerson, p.Observations, p.CreatedAt,
		}
	}
	return e.export(KindPermits, format, permitColumns, rows)
}

func (e *Exporter) export(kind Kind, format Format, columns []string, rows [][]any) (*Export, error) {
	var data []byte
	var err error
	if format == FormatCSV {
		data, err = e.csv(columns, rows)
	} else {
		data, err = e.workbook(columns, rows)
	}
	if err != nil {
		return nil, err
	}
	return &Export{
		Name:        FileName(kind, format, e.now()),
		ContentType: format.ContentType(),
		Rows:        len(rows),
		Data:        data,
	}, nil
}

func (e *Exporter) workbook(columns []string, rows [][]any) ([]byte, error) {
	x, err := NewExcelExporter(e.options)
	if err != nil {
		return nil, err
	}
	defer x.Close()

	if err := x.WriteTable(columns, rows); err != nil {
		return nil, err
	}
	return x.Bytes()
}

func (e *Exporter) csv(columns []string, rows [][]any) ([]byte, error) {
	x := NewCSVExporter(e.csvOptions)
	if err := x.WriteTable(columns, rows); err != nil {
		return nil, err
	}
	return x.Bytes()
}
