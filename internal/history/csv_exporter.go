package history

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

// CSVOptions configures CSV export behavior
type CSVOptions struct {
	Delimiter       rune   `json:"delimiter"`
	UseCRLF         bool   `json:"use_crlf"`
	TimestampFormat string `json:"timestamp_format"`
	BoolTrueValue   string `json:"bool_true_value"`
	BoolFalseValue  string `json:"bool_false_value"`
}

// DefaultCSVOptions returns default CSV export options
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Delimiter:       ',',
		UseCRLF:         true,
		TimestampFormat: time.RFC3339,
		BoolTrueValue:   "Sí",
		BoolFalseValue:  "No",
	}
}

// CSVExporter writes one table to an in-memory CSV file.
type CSVExporter struct {
	buf     bytes.Buffer
	writer  *csv.Writer
	options CSVOptions
}

func NewCSVExporter(options CSVOptions) *CSVExporter {
	e := &CSVExporter{options: options}
	e.writer = csv.NewWriter(&e.buf)
	if options.Delimiter != 0 {
		e.writer.Comma = options.Delimiter
	}
	e.writer.UseCRLF = options.UseCRLF
	return e
}

// WriteTable writes a header row followed by rows.
func (e *CSVExporter) WriteTable(columns []string, rows [][]any) error {
	if err := e.writer.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		record := make([]string, len(row))
		for i, val := range row {
			record[i] = e.formatValue(val)
		}
		if err := e.writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	e.writer.Flush()
	return e.writer.Error()
}

func (e *CSVExporter) Bytes() ([]byte, error) {
	e.writer.Flush()
	if err := e.writer.Error(); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

func (e *CSVExporter) formatValue(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case bool:
		if v {
			return e.options.BoolTrueValue
		}
		return e.options.BoolFalseValue
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(e.options.TimestampFormat)
	default:
		return fmt.Sprintf("%v", v)
	}
}
