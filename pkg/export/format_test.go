package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aromadata/aromadata/internal/dataset"
	"github.com/xuri/excelize/v2"
)

func TestCsvString(t *testing.T) {
	csv := CsvString(dataset.Production())
	lines := strings.Split(csv, "\n")

	if len(lines) != 9 {
		t.Fatalf("expected 9 lines, got %d", len(lines))
	}
	if lines[0] != "Mes,Producción (miles sacos),Exportaciones (miles sacos),Precio (USD/lb)" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if lines[1] != "Ene,1200,1100,178.5" {
		t.Errorf("unexpected first row: %q", lines[1])
	}
	if lines[8] != "Ago,1280,1220,189.5" {
		t.Errorf("unexpected last row: %q", lines[8])
	}
	if strings.HasSuffix(csv, "\n") {
		t.Error("CSV must not end with a newline")
	}
}

func TestCsvStringEmpty(t *testing.T) {
	if got := CsvString(nil); got != "Mes,Producción (miles sacos),Exportaciones (miles sacos),Precio (USD/lb)" {
		t.Errorf("CsvString(nil) = %q", got)
	}
}

func TestJSON(t *testing.T) {
	data, err := JSON(dataset.Production()[:1])
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	expected := `[
  {
    "Mes": "Ene",
    "Producción (miles sacos)": 1200,
    "Exportaciones (miles sacos)": 1100,
    "Precio (USD/lb)": 178.5
  }
]`
	if string(data) != expected {
		t.Errorf("JSON() = %s, expected %s", data, expected)
	}
}

func TestJSONRoundTripCount(t *testing.T) {
	data, err := JSON(dataset.Production())
	if err != nil {
		t.Fatalf("JSON() error = %v", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(data, &rows); err != nil {
		t.Fatalf("failed to decode export: %v", err)
	}
	if len(rows) != 8 {
		t.Errorf("expected 8 rows, got %d", len(rows))
	}
}

func TestPrettyFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := PrettyFormat(&buf, "Producción Mensual 2024", dataset.Production()); err != nil {
		t.Fatalf("PrettyFormat() error = %v", err)
	}
	output := buf.String()

	if !strings.Contains(output, "--- Producción Mensual 2024 ---") {
		t.Error("PrettyFormat missing title")
	}
	for _, month := range []string{"Ene", "Jul", "Ago"} {
		if !strings.Contains(output, month) {
			t.Errorf("PrettyFormat missing month %s", month)
		}
	}
	if !strings.Contains(output, "Total producción:") {
		t.Error("PrettyFormat missing summary line")
	}
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "xml", dataset.Production()); err == nil {
		t.Fatal("expected error for unknown format")
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an unknown format")
	}
}

func TestWriteFormats(t *testing.T) {
	for _, format := range []string{"csv", "json", "pretty", "xlsx"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, format, dataset.Production()); err != nil {
				t.Fatalf("Write(%s) error = %v", format, err)
			}
			if buf.Len() == 0 {
				t.Errorf("Write(%s) produced no output", format)
			}
		})
	}
}

func TestWriteWorkbook(t *testing.T) {
	var buf bytes.Buffer
	err := WriteWorkbook(&buf, Workbook{
		Production:  dataset.Production(),
		Regions:     dataset.Regions(),
		Quality:     dataset.Quality(),
		Projections: dataset.Projections(),
		Risks:       dataset.Risks(),
	})
	if err != nil {
		t.Fatalf("WriteWorkbook() error = %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("failed to reopen workbook: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	expected := []string{SheetProduction, SheetRegions, SheetQuality, SheetProjections, SheetRisks}
	if len(sheets) != len(expected) {
		t.Fatalf("sheets = %v, expected %v", sheets, expected)
	}
	for i := range expected {
		if sheets[i] != expected[i] {
			t.Errorf("sheet %d = %q, expected %q", i, sheets[i], expected[i])
		}
	}

	rows, err := f.GetRows(SheetProduction)
	if err != nil {
		t.Fatalf("GetRows() error = %v", err)
	}
	if len(rows) != 9 {
		t.Fatalf("expected 9 production rows, got %d", len(rows))
	}
	if rows[0][1] != HeaderProduction {
		t.Errorf("header = %q, expected %q", rows[0][1], HeaderProduction)
	}
	if rows[1][0] != "Ene" || rows[1][1] != "1200" {
		t.Errorf("first data row = %v", rows[1])
	}

	quality, err := f.GetRows(SheetQuality)
	if err != nil {
		t.Fatalf("GetRows(%s) error = %v", SheetQuality, err)
	}
	if got := quality[len(quality)-1]; got[0] != "Otros" || got[3] != "-5" {
		t.Errorf("last quality row = %v, expected Otros with a -5 premium", got)
	}

	risks, err := f.GetRows(SheetRisks)
	if err != nil {
		t.Fatalf("GetRows(%s) error = %v", SheetRisks, err)
	}
	if len(risks) != 6 {
		t.Fatalf("expected header plus 5 risk rows, got %d", len(risks))
	}
	if risks[0][0] != "Factor" || risks[1][0] != "Cambio climático" || risks[1][1] != "Alto" || risks[1][2] != "0.8" {
		t.Errorf("unexpected risk rows %v", risks[:2])
	}
}

func TestContentTypeAndFileName(t *testing.T) {
	if got := ContentType("csv"); got != "text/csv" {
		t.Errorf("ContentType(csv) = %q", got)
	}
	if got := ContentType("json"); got != "application/json" {
		t.Errorf("ContentType(json) = %q", got)
	}
	if got := FileName("csv"); got != "estadisticas_cafe.csv" {
		t.Errorf("FileName(csv) = %q", got)
	}
	if got := FileName("xlsx"); got != "estadisticas_cafe.xlsx" {
		t.Errorf("FileName(xlsx) = %q", got)
	}
}
