// Package export writes siding estimates to shareable file formats: an
// elevation PDF, QR-coded wall bundle labels, and an Excel order workbook.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/sidingworks/sidingcalc/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	footerHeight = 18.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// Elevation drawing colors.
var (
	sidingFill  = [3]int{222, 206, 180}
	gableFill   = [3]int{209, 188, 156}
	openingFill = [3]int{255, 255, 255}
)

// ExportPDF generates a PDF of the takeoff: one elevation page per wall with
// its sections and openings drawn to scale, followed by a summary page with
// the per-direction totals and the material order.
func ExportPDF(path string, takeoff model.Takeoff, est *model.SidingEstimate) error {
	if len(takeoff.Walls) == 0 {
		return fmt.Errorf("no walls to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i, wp := range takeoff.Walls {
		pdf.AddPage()
		renderWallPage(pdf, wp, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, takeoff, est)

	return pdf.OutputFileAndClose(path)
}

// wallExtents returns the overall drawing size of a wall plan in inches:
// the widest section and the stacked height of rects plus gables.
func wallExtents(wp model.WallPlan) (width, height float64) {
	for _, sp := range wp.Sections {
		w, h := sectionExtents(sp)
		if w > width {
			width = w
		}
		height += h
	}
	return width, height
}

func sectionExtents(sp model.SectionPlan) (width, height float64) {
	if sp.Shape == model.ShapeGable {
		run := sp.PitchRun
		if run == 0 {
			run = 12
		}
		return sp.BaseIn, (sp.BaseIn / 2.0) * (sp.PitchRise / run)
	}
	return sp.WidthIn, sp.HeightIn
}

// renderWallPage draws one wall elevation on the current PDF page.
func renderWallPage(pdf *fpdf.Fpdf, wp model.WallPlan, pageNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Wall %d: %s", pageNum, wp.Label)
	if wp.Direction != "" {
		title += fmt.Sprintf(" (%s)", model.NormalizeDirection(wp.Direction))
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	area, err := wp.SidingAreaSqIn()
	stats := "Siding area: n/a"
	if err == nil {
		ftIn := model.SquareInchesToFeetInches(math.Max(0, area))
		stats = fmt.Sprintf("Siding area: %s | Sections: %d | Openings: %d",
			ftIn.String(), len(wp.Sections), len(wp.Openings))
	}
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	wallW, wallH := wallExtents(wp)
	if wallW <= 0 || wallH <= 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetXY(marginLeft, drawAreaTop)
		pdf.CellFormat(100, 6, "Nothing to draw", "", 0, "L", false, 0, "")
		return
	}

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - footerHeight
	scale := math.Min(drawWidth/wallW, drawHeight/wallH)

	canvasW := wallW * scale
	canvasH := wallH * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop + (drawHeight - canvasH)

	// Sections stack bottom-up: the first rect is the ground-floor plate,
	// gables go on top. PDF y grows downward, so draw from the bottom edge.
	bottomY := offsetY + canvasH
	var bottomRect *model.SectionPlan
	for i := range wp.Sections {
		sp := wp.Sections[i]
		w, h := sectionExtents(sp)
		sw := w * scale
		sh := h * scale
		sx := offsetX + (canvasW-sw)/2
		sy := bottomY - sh

		pdf.SetDrawColor(70, 70, 70)
		pdf.SetLineWidth(0.4)
		if sp.Shape == model.ShapeGable {
			pdf.SetFillColor(gableFill[0], gableFill[1], gableFill[2])
			pdf.Polygon([]fpdf.PointType{
				{X: sx, Y: bottomY},
				{X: sx + sw, Y: bottomY},
				{X: sx + sw/2, Y: sy},
			}, "FD")
		} else {
			pdf.SetFillColor(sidingFill[0], sidingFill[1], sidingFill[2])
			pdf.Rect(sx, sy, sw, sh, "FD")
			if bottomRect == nil {
				bottomRect = &wp.Sections[i]
			}
		}
		bottomY = sy
	}

	drawOpenings(pdf, wp, bottomRect, scale, offsetX, offsetY, canvasW, canvasH)
	drawDimensionAnnotations(pdf, wallW, wallH, offsetX, offsetY, canvasW, canvasH)
	drawOpeningLegend(pdf, wp, offsetY+canvasH+6)
}

// drawOpenings lays the wall's openings side by side inside the bottom
// rectangular section. The schedule carries no opening positions, so they are
// spaced evenly with a door-height sill.
func drawOpenings(pdf *fpdf.Fpdf, wp model.WallPlan, bottomRect *model.SectionPlan, scale, offsetX, offsetY, canvasW, canvasH float64) {
	if len(wp.Openings) == 0 || bottomRect == nil {
		return
	}

	gap := canvasW / float64(len(wp.Openings)+1)
	x := offsetX + gap
	bottom := offsetY + canvasH

	pdf.SetFillColor(openingFill[0], openingFill[1], openingFill[2])
	pdf.SetDrawColor(40, 40, 40)
	pdf.SetLineWidth(0.3)
	for _, o := range wp.Openings {
		ow := o.WidthIn * scale
		oh := o.HeightIn * scale
		sill := math.Max(0, (bottomRect.HeightIn-o.HeightIn)/3.0) * scale
		pdf.Rect(x-ow/2, bottom-sill-oh, ow, oh, "FD")
		x += gap
	}
}

// drawDimensionAnnotations adds width and height labels outside the wall.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, wallW, wallH, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := model.FeetInches{Feet: int(wallW) / 12, Inches: wallW - float64(int(wallW)/12*12)}.String()
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := model.FeetInches{Feet: int(wallH) / 12, Inches: wallH - float64(int(wallH)/12*12)}.String()
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawOpeningLegend lists the openings under the elevation.
func drawOpeningLegend(pdf *fpdf.Fpdf, wp model.WallPlan, startY float64) {
	if len(wp.Openings) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Openings:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight
	for i, o := range wp.Openings {
		label := fmt.Sprintf("%d: %.4g\" x %.4g\"", i+1, o.WidthIn, o.HeightIn)
		labelW := pdf.GetStringWidth(label) + 6
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}
		pdf.SetXY(xPos, startY)
		pdf.CellFormat(labelW, 4, label, "", 0, "L", false, 0, "")
		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final page with direction totals and the order.
func renderSummaryPage(pdf *fpdf.Fpdf, takeoff model.Takeoff, est *model.SidingEstimate) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Siding Estimate Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Totals", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Walls", fmt.Sprintf("%d", len(takeoff.Walls))},
		{"Siding Area", est.TotalAreaFtIn.String()},
		{"Product", est.Product.Name},
		{"Panels (min)", fmt.Sprintf("%d", est.PanelsMin)},
		{"Panels (with waste)", fmt.Sprintf("%d", est.PanelsWithWaste)},
		{"Estimated Cost", fmt.Sprintf("$%.2f", est.EstimatedCost)},
	}
	if est.Trim != nil {
		summaryItems = append(summaryItems, struct {
			label string
			value string
		}{"Trim (with waste)", fmt.Sprintf("%.0f ft", est.Trim.TotalWithWasteFt)})
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "By Direction", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{50, 25, 60, 30}
	headers := []string{"Direction", "Walls", "Siding Area", "Panels"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, dt := range est.Directions {
		xPos = marginLeft
		rowData := []string{
			dt.Direction,
			fmt.Sprintf("%d", dt.WallCount),
			dt.AreaFtIn.String(),
			fmt.Sprintf("%d", dt.Panels),
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	if len(est.Warnings) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNINGS", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, w := range est.Warnings {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(250, 5, "- "+w, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by SidingCalc - Siding Area Estimator", "", 0, "C", false, 0, "")
}
