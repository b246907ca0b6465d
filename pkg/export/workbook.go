package export

import (
	"fmt"
	"io"

	"github.com/aromadata/aromadata/internal/dataset"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook.
const (
	SheetProduction  = "Producción Mensual"
	SheetRegions     = "Distribución Regional"
	SheetQuality     = "Clasificación Calidad"
	SheetProjections = "Proyecciones 2025"
	SheetRisks       = "Factores de Riesgo"
)

// Workbook groups the tables written to the spreadsheet export.
type Workbook struct {
	Production  []dataset.MonthlyRecord
	Regions     []dataset.RegionShare
	Quality     []dataset.QualityGrade
	Projections []dataset.ProjectionPoint
	Risks       []dataset.Risk
}

// WriteWorkbook writes one sheet per table to w in xlsx format.
func WriteWorkbook(w io.Writer, wb Workbook) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	if err := f.SetSheetName("Sheet1", SheetProduction); err != nil {
		return fmt.Errorf("failed to name production sheet: %w", err)
	}

	productionRows := make([][]interface{}, 0, len(wb.Production))
	for _, r := range wb.Production {
		productionRows = append(productionRows, []interface{}{r.Month, r.Production, r.Exports, r.Price})
	}
	if err := writeSheet(f, SheetProduction,
		[]string{HeaderMonth, HeaderProduction, HeaderExports, HeaderPrice}, productionRows); err != nil {
		return err
	}

	regionRows := make([][]interface{}, 0, len(wb.Regions))
	for _, r := range wb.Regions {
		regionRows = append(regionRows, []interface{}{r.Name, r.Share})
	}
	if err := writeSheet(f, SheetRegions, []string{"Región", "Participación (%)"}, regionRows); err != nil {
		return err
	}

	qualityRows := make([][]interface{}, 0, len(wb.Quality))
	for _, q := range wb.Quality {
		qualityRows = append(qualityRows, []interface{}{q.Category, q.Percentage, q.Bags, q.PricePremium})
	}
	if err := writeSheet(f, SheetQuality,
		[]string{"Categoría", "Porcentaje (%)", "Sacos", "Prima de Precio (%)"}, qualityRows); err != nil {
		return err
	}

	projectionRows := make([][]interface{}, 0, len(wb.Projections))
	for _, p := range wb.Projections {
		projectionRows = append(projectionRows, []interface{}{p.Month, p.Projected, p.Historical})
	}
	if err := writeSheet(f, SheetProjections, []string{HeaderMonth, "Proyectado", "Histórico"}, projectionRows); err != nil {
		return err
	}

	riskRows := make([][]interface{}, 0, len(wb.Risks))
	for _, r := range wb.Risks {
		riskRows = append(riskRows, []interface{}{r.Factor, r.Impact, r.Probability})
	}
	if err := writeSheet(f, SheetRisks, []string{"Factor", "Nivel de Impacto", "Probabilidad"}, riskRows); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header %s: %w", header, err)
		}
		if err := f.SetColWidth(sheet, columnName(i+1), columnName(i+1), 20); err != nil {
			return err
		}
	}

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of %s: %w", r+2, sheet, err)
		}
	}
	return nil
}

func columnName(col int) string {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return "A"
	}
	return name
}
