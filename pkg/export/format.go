// Package export renders the production table for download and for the terminal.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aromadata/aromadata/internal/dataset"
	"github.com/aromadata/aromadata/pkg/constants"
	"github.com/aromadata/aromadata/pkg/validation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Column headers of the downloadable production table, in order.
const (
	HeaderMonth      = "Mes"
	HeaderProduction = "Producción (miles sacos)"
	HeaderExports    = "Exportaciones (miles sacos)"
	HeaderPrice      = "Precio (USD/lb)"
)

// Locale is the single locale used for human-readable output.
var Locale = language.LatinAmericanSpanish

// Row is a production record keyed by its download headers. Field order
// fixes the key order of the JSON export.
type Row struct {
	Month      string  `json:"Mes"`
	Production int     `json:"Producción (miles sacos)"`
	Exports    int     `json:"Exportaciones (miles sacos)"`
	Price      float64 `json:"Precio (USD/lb)"`
}

// Rows converts production records to export rows.
func Rows(records []dataset.MonthlyRecord) []Row {
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, Row{Month: r.Month, Production: r.Production, Exports: r.Exports, Price: r.Price})
	}
	return rows
}

// CsvString renders records as comma-separated lines after a literal header
// line. Lines are joined by "\n" with no trailing newline.
func CsvString(records []dataset.MonthlyRecord) string {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join([]string{HeaderMonth, HeaderProduction, HeaderExports, HeaderPrice}, ","))
	for _, r := range records {
		lines = append(lines, strings.Join([]string{
			r.Month,
			strconv.Itoa(r.Production),
			strconv.Itoa(r.Exports),
			strconv.FormatFloat(r.Price, 'f', -1, 64),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

// JSON renders records as an array of objects indented by two spaces.
func JSON(records []dataset.MonthlyRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Rows(records)); err != nil {
		return nil, fmt.Errorf("failed to encode production table: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// PrettyFormat writes a human-readable table with locale-aware numbers.
func PrettyFormat(w io.Writer, title string, records []dataset.MonthlyRecord) error {
	p := message.NewPrinter(Locale)
	if _, err := fmt.Fprintf(w, "--- %s ---\n", title); err != nil {
		return err
	}
	fmt.Fprintf(w, "%-4s | %12s | %14s | %s\n", HeaderMonth, "Producción", "Exportaciones", HeaderPrice)
	fmt.Fprintf(w, "%-4s | %12s | %14s | %s\n", "____", "__________", "_____________", "_______________")
	for _, r := range records {
		_, _ = p.Fprintf(w, "%-4s | %12d | %14d | %.2f\n", r.Month, r.Production, r.Exports, r.Price)
	}

	if len(records) == 0 {
		return nil
	}
	summary, err := dataset.Summarize(records)
	if err != nil {
		return err
	}
	_, err = p.Fprintf(w, "\nTotal producción: %d | Total exportaciones: %d | Pico: %d | Promedio: %d\n",
		summary.TotalProduction, summary.TotalExports, summary.PeakProduction, summary.AverageProduction)
	return err
}

// Write renders records in format to w.
func Write(w io.Writer, format string, records []dataset.MonthlyRecord) error {
	if err := validation.ValidateExportFormat(format); err != nil {
		return err
	}

	switch format {
	case constants.ExportFormatCSV:
		_, err := io.WriteString(w, CsvString(records))
		return err
	case constants.ExportFormatJSON:
		data, err := JSON(records)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case constants.ExportFormatXLSX:
		return WriteWorkbook(w, Workbook{
			Production:  records,
			Regions:     dataset.Regions(),
			Quality:     dataset.Quality(),
			Projections: dataset.Projections(),
			Risks:       dataset.Risks(),
		})
	default:
		return PrettyFormat(w, dataset.Headlines().ProductionTitle, records)
	}
}

// ContentType returns the MIME type served for a download format.
func ContentType(format string) string {
	switch format {
	case constants.ExportFormatCSV:
		return "text/csv"
	case constants.ExportFormatJSON:
		return "application/json"
	case constants.ExportFormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/plain; charset=utf-8"
}

// FileName returns the download file name for a format.
func FileName(format string) string {
	return constants.ExportBaseName + "." + format
}
