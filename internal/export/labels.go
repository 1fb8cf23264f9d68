package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/sidingworks/sidingcalc/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each wall bundle label's QR code.
// Crews sticker the material bundle for each wall so panels land at the right
// elevation on site.
type LabelInfo struct {
	WallLabel string  `json:"label"`
	Direction string  `json:"direction"`
	AreaSqFt  int     `json:"area_sq_ft"`
	AreaSqIn  float64 `json:"area_sq_in"`
	Panels    int     `json:"panels"`
	Product   string  `json:"product"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded bundle labels, one per wall.
// Each label carries the wall name, direction, area, and panel count, plus a
// QR code encoding the same data as JSON. Labels are laid out on a standard
// Avery 5160 sheet (3 columns x 10 rows on US Letter).
func ExportLabels(path string, takeoff model.Takeoff) error {
	labels, err := CollectLabelInfos(takeoff)
	if err != nil {
		return err
	}
	if len(labels) == 0 {
		return fmt.Errorf("no walls to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.WallLabel, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s_%s", info.WallLabel, info.Direction)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	wallLabel := info.WallLabel
	if pdf.GetStringWidth(wallLabel) > textW {
		for len(wallLabel) > 0 && pdf.GetStringWidth(wallLabel+"...") > textW {
			wallLabel = wallLabel[:len(wallLabel)-1]
		}
		wallLabel += "..."
	}
	pdf.CellFormat(textW, 4.5, wallLabel, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%d sq ft - %d panels", info.AreaSqFt, info.Panels), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, info.Product, "", 1, "L", false, 0, "")

	if info.Direction != "" {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, "Facing "+info.Direction, "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}

// CollectLabelInfos builds the per-wall label data for a takeoff.
func CollectLabelInfos(takeoff model.Takeoff) ([]LabelInfo, error) {
	var labels []LabelInfo
	for _, wp := range takeoff.Walls {
		area, err := wp.SidingAreaSqIn()
		if err != nil {
			return nil, fmt.Errorf("wall %q: %w", wp.Label, err)
		}
		area = math.Max(0, area)
		panels, err := model.PanelsNeeded(area, takeoff.Product.PanelSqFt, takeoff.Settings.WasteFraction)
		if err != nil {
			return nil, err
		}
		labels = append(labels, LabelInfo{
			WallLabel: wp.Label,
			Direction: model.NormalizeDirection(wp.Direction),
			AreaSqFt:  model.SquareInchesToFeetInches(area).SquareFeet,
			AreaSqIn:  area,
			Panels:    panels,
			Product:   takeoff.Product.Name,
		})
	}
	return labels, nil
}
