// Package report renders a siding estimate as plain text for printing,
// emailing, or piping from the command line.
package report

import (
	"fmt"
	"strings"

	"github.com/sidingworks/sidingcalc/internal/model"
)

// Generator produces text reports from a takeoff and its estimate.
type Generator struct {
	Settings model.EstimateSettings
}

func New(settings model.EstimateSettings) *Generator {
	return &Generator{Settings: settings}
}

const ruleWidth = 60

// Generate renders the full report: header, per-wall detail, per-direction
// totals, the material order, and any warnings.
func (g *Generator) Generate(takeoff model.Takeoff, est *model.SidingEstimate) string {
	var b strings.Builder

	g.writeHeader(&b, takeoff)
	g.writeWalls(&b, takeoff)
	g.writeDirections(&b, est)
	g.writeOrder(&b, est)
	g.writeWarnings(&b, est)

	return b.String()
}

func (g *Generator) writeHeader(b *strings.Builder, takeoff model.Takeoff) {
	rule(b)
	fmt.Fprintf(b, "SIDING ESTIMATE: %s\n", takeoff.Name)
	rule(b)
	fmt.Fprintf(b, "Walls: %d | Method: %s | Waste: %.0f%%\n",
		len(takeoff.Walls), g.Settings.Method, g.Settings.WasteFraction*100)
	b.WriteString("\n")
}

func (g *Generator) writeWalls(b *strings.Builder, takeoff model.Takeoff) {
	if len(takeoff.Walls) == 0 {
		return
	}
	b.WriteString("WALLS\n")
	for _, wp := range takeoff.Walls {
		area, err := wp.SidingAreaSqIn()
		if err != nil {
			fmt.Fprintf(b, "  %-20s %s\n", wp.Label, "unbuildable: "+err.Error())
			continue
		}
		if area < 0 {
			area = 0
		}
		label := wp.Label
		if wp.Direction != "" {
			label += " (" + model.NormalizeDirection(wp.Direction) + ")"
		}
		fmt.Fprintf(b, "  %-28s %s\n", label, model.SquareInchesToFeetInches(area).String())
		for _, sp := range wp.Sections {
			fmt.Fprintf(b, "      %s\n", sp.Describe())
		}
		for i, o := range wp.Openings {
			fmt.Fprintf(b, "      Opening %d: %.4g\" x %.4g\"\n", i+1, o.WidthIn, o.HeightIn)
		}
	}
	b.WriteString("\n")
}

func (g *Generator) writeDirections(b *strings.Builder, est *model.SidingEstimate) {
	if len(est.Directions) == 0 {
		return
	}
	b.WriteString("BY DIRECTION\n")
	for _, dt := range est.Directions {
		fmt.Fprintf(b, "  %-12s %2d wall(s)  %-22s %d panel(s)\n",
			dt.Direction, dt.WallCount, dt.AreaFtIn.String(), dt.Panels)
	}
	b.WriteString("\n")
}

func (g *Generator) writeOrder(b *strings.Builder, est *model.SidingEstimate) {
	b.WriteString("MATERIAL ORDER\n")
	fmt.Fprintf(b, "  Product:           %s (%s)\n", est.Product.Name, est.Product.Material)
	fmt.Fprintf(b, "  Total siding area: %s\n", est.TotalAreaFtIn.String())
	fmt.Fprintf(b, "  Panels exact:      %.2f\n", est.PanelsExact)
	fmt.Fprintf(b, "  Panels minimum:    %d\n", est.PanelsMin)
	fmt.Fprintf(b, "  Panels to order:   %d\n", est.PanelsWithWaste)
	fmt.Fprintf(b, "  Leftover coverage: %.1f sq ft\n", est.LeftoverSqFt)
	fmt.Fprintf(b, "  Estimated cost:    $%.2f\n", est.EstimatedCost)

	if len(est.Courses) > 0 {
		b.WriteString("\nCOURSES\n")
		for _, cb := range est.Courses {
			fmt.Fprintf(b, "  %-20s %d courses, %d pieces (%.0f linear in)\n",
				cb.WallLabel, cb.Courses, cb.TotalPieces, cb.LinearIn)
		}
	}

	if est.Trim != nil {
		b.WriteString("\nTRIM\n")
		fmt.Fprintf(b, "  Openings wrapped:  %d\n", est.Trim.OpeningCount)
		fmt.Fprintf(b, "  Corner posts:      %d\n", est.Trim.CornerCount)
		fmt.Fprintf(b, "  Linear footage:    %.1f ft\n", est.Trim.TotalLinearFt)
		fmt.Fprintf(b, "  To order:          %.0f ft (%.0f%% waste)\n",
			est.Trim.TotalWithWasteFt, est.Trim.WasteFraction*100)
	}
	b.WriteString("\n")
}

func (g *Generator) writeWarnings(b *strings.Builder, est *model.SidingEstimate) {
	if len(est.Warnings) == 0 {
		return
	}
	b.WriteString("WARNINGS\n")
	for _, w := range est.Warnings {
		fmt.Fprintf(b, "  ! %s\n", w)
	}
	b.WriteString("\n")
}

func rule(b *strings.Builder) {
	b.WriteString(strings.Repeat("=", ruleWidth))
	b.WriteString("\n")
}
