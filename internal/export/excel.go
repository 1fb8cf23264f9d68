package export

import (
	"fmt"
	"math"

	"github.com/sidingworks/sidingcalc/internal/model"
	"github.com/xuri/excelize/v2"
)

// Workbook sheet names.
const (
	sheetWalls      = "Walls"
	sheetDirections = "Directions"
	sheetOrder      = "Order"
)

// ExportExcel writes the takeoff and its estimate to an Excel workbook with
// three sheets: per-wall detail, per-direction totals, and the material
// order. Suppliers usually want the order sheet; the rest is backup.
func ExportExcel(path string, takeoff model.Takeoff, est *model.SidingEstimate) error {
	if len(takeoff.Walls) == 0 {
		return fmt.Errorf("no walls to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheetWalls)
	if _, err := f.NewSheet(sheetDirections); err != nil {
		return err
	}
	if _, err := f.NewSheet(sheetOrder); err != nil {
		return err
	}

	if err := writeWallsSheet(f, takeoff); err != nil {
		return err
	}
	if err := writeDirectionsSheet(f, est); err != nil {
		return err
	}
	if err := writeOrderSheet(f, takeoff, est); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func writeWallsSheet(f *excelize.File, takeoff model.Takeoff) error {
	if err := setRow(f, sheetWalls, 1, []interface{}{
		"Wall", "Direction", "Sections", "Openings", "Siding Area (sq ft)", "Siding Area (sq in)",
	}); err != nil {
		return err
	}

	row := 2
	for _, wp := range takeoff.Walls {
		area, err := wp.SidingAreaSqIn()
		if err != nil {
			return fmt.Errorf("wall %q: %w", wp.Label, err)
		}
		area = math.Max(0, area)
		ftIn := model.SquareInchesToFeetInches(area)
		if err := setRow(f, sheetWalls, row, []interface{}{
			wp.Label,
			model.NormalizeDirection(wp.Direction),
			len(wp.Sections),
			len(wp.Openings),
			ftIn.SquareFeet,
			ftIn.SquareInches,
		}); err != nil {
			return err
		}
		row++
	}

	return f.SetColWidth(sheetWalls, "A", "B", 18)
}

func writeDirectionsSheet(f *excelize.File, est *model.SidingEstimate) error {
	if err := setRow(f, sheetDirections, 1, []interface{}{
		"Direction", "Walls", "Area (sq ft)", "Area (sq in)", "Panels",
	}); err != nil {
		return err
	}

	row := 2
	for _, dt := range est.Directions {
		if err := setRow(f, sheetDirections, row, []interface{}{
			dt.Direction,
			dt.WallCount,
			dt.AreaFtIn.SquareFeet,
			dt.AreaFtIn.SquareInches,
			dt.Panels,
		}); err != nil {
			return err
		}
		row++
	}

	return f.SetColWidth(sheetDirections, "A", "A", 16)
}

func writeOrderSheet(f *excelize.File, takeoff model.Takeoff, est *model.SidingEstimate) error {
	rows := [][]interface{}{
		{"Product", est.Product.Name},
		{"Material", est.Product.Material},
		{"Coverage per panel (sq ft)", est.Product.PanelSqFt},
		{"Total siding area", est.TotalAreaFtIn.String()},
		{"Panels (exact)", est.PanelsExact},
		{"Panels (minimum)", est.PanelsMin},
		{"Waste allowance", fmt.Sprintf("%.0f%%", takeoff.Settings.WasteFraction*100)},
		{"Panels to order", est.PanelsWithWaste},
		{"Leftover coverage (sq ft)", est.LeftoverSqFt},
		{"Price per panel", est.Product.PricePerPanel},
		{"Estimated cost", est.EstimatedCost},
	}
	if est.Trim != nil {
		rows = append(rows,
			[]interface{}{"Trim linear footage", est.Trim.TotalLinearFt},
			[]interface{}{"Trim to order (ft)", est.Trim.TotalWithWasteFt},
		)
	}
	for _, cb := range est.Courses {
		rows = append(rows, []interface{}{
			fmt.Sprintf("Courses: %s", cb.WallLabel),
			fmt.Sprintf("%d courses, %d pieces", cb.Courses, cb.TotalPieces),
		})
	}
	for _, w := range est.Warnings {
		rows = append(rows, []interface{}{"Warning", w})
	}

	for i, r := range rows {
		if err := setRow(f, sheetOrder, i+1, r); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetOrder, "A", "A", 28)
}
