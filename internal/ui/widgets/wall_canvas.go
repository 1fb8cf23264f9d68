package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sidingworks/sidingcalc/internal/model"
)

var (
	sidingColor  = color.NRGBA{R: 210, G: 180, B: 140, A: 255}
	gableColor   = color.NRGBA{R: 222, G: 196, B: 160, A: 255}
	openingColor = color.NRGBA{R: 176, G: 216, B: 240, A: 255}
	outlineColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
)

// WallCanvas renders an elevation view of a single wall plan: rectangular
// sections stacked bottom-up, gables drawn as triangles above them, and
// openings spread across the bottom section.
type WallCanvas struct {
	widget.BaseWidget
	plan      model.WallPlan
	maxWidth  float32
	maxHeight float32
}

func NewWallCanvas(plan model.WallPlan, maxW, maxH float32) *WallCanvas {
	wc := &WallCanvas{
		plan:      plan,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	wc.ExtendBaseWidget(wc)
	return wc
}

func (wc *WallCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newWallCanvasRenderer(wc)
}

// planExtents returns the overall width and height of the elevation in inches.
func planExtents(plan model.WallPlan) (wIn, hIn float64) {
	for _, sp := range plan.Sections {
		switch sp.Shape {
		case model.ShapeGable:
			run := sp.PitchRun
			if run == 0 {
				run = 12
			}
			if sp.BaseIn > wIn {
				wIn = sp.BaseIn
			}
			hIn += (sp.BaseIn / 2) * sp.PitchRise / run
		default:
			if sp.WidthIn > wIn {
				wIn = sp.WidthIn
			}
			hIn += sp.HeightIn
		}
	}
	return wIn, hIn
}

type wallCanvasRenderer struct {
	wc      *WallCanvas
	objects []fyne.CanvasObject
}

func newWallCanvasRenderer(wc *WallCanvas) *wallCanvasRenderer {
	r := &wallCanvasRenderer{wc: wc}
	r.rebuild()
	return r
}

func (r *wallCanvasRenderer) scale() float32 {
	wIn, hIn := planExtents(r.wc.plan)
	if wIn <= 0 || hIn <= 0 {
		return 1
	}
	scale := r.wc.maxWidth / float32(wIn)
	if s := r.wc.maxHeight / float32(hIn); s < scale {
		scale = s
	}
	return scale
}

func (r *wallCanvasRenderer) rebuild() {
	r.objects = nil

	plan := r.wc.plan
	wIn, hIn := planExtents(plan)
	if wIn <= 0 || hIn <= 0 {
		empty := canvas.NewText("(no sections)", outlineColor)
		empty.TextSize = 10
		r.objects = append(r.objects, empty)
		return
	}

	scale := r.scale()
	totalH := float32(hIn) * scale

	// Sections stack bottom-up; screen Y grows downward so the first section
	// sits at the bottom of the canvas.
	y := totalH
	var bottomRect *model.SectionPlan
	var bottomRectTop, bottomRectH, bottomRectW float32

	for i := range plan.Sections {
		sp := plan.Sections[i]
		switch sp.Shape {
		case model.ShapeGable:
			run := sp.PitchRun
			if run == 0 {
				run = 12
			}
			base := float32(sp.BaseIn) * scale
			rise := float32((sp.BaseIn/2)*sp.PitchRise/run) * scale
			left := (float32(wIn)*scale - base) / 2
			y -= rise
			apex := fyne.NewPos(left+base/2, y)
			bl := fyne.NewPos(left, y+rise)
			br := fyne.NewPos(left+base, y+rise)

			fill := canvas.NewRectangle(gableColor)
			fill.Resize(fyne.NewSize(base/2, rise))
			fill.Move(fyne.NewPos(left+base/4, y))
			r.objects = append(r.objects, fill)

			for _, pts := range [][2]fyne.Position{{bl, apex}, {apex, br}, {br, bl}} {
				line := canvas.NewLine(outlineColor)
				line.StrokeWidth = 2
				line.Position1 = pts[0]
				line.Position2 = pts[1]
				r.objects = append(r.objects, line)
			}
		default:
			w := float32(sp.WidthIn) * scale
			h := float32(sp.HeightIn) * scale
			left := (float32(wIn)*scale - w) / 2
			y -= h

			rect := canvas.NewRectangle(sidingColor)
			rect.Resize(fyne.NewSize(w, h))
			rect.Move(fyne.NewPos(left, y))
			r.objects = append(r.objects, rect)

			border := canvas.NewRectangle(color.Transparent)
			border.StrokeColor = outlineColor
			border.StrokeWidth = 2
			border.Resize(fyne.NewSize(w, h))
			border.Move(fyne.NewPos(left, y))
			r.objects = append(r.objects, border)

			if bottomRect == nil {
				bottomRect = &plan.Sections[i]
				bottomRectTop = y
				bottomRectH = h
				bottomRectW = w
			}
		}
	}

	// Openings spread evenly across the bottom rectangular section.
	if bottomRect != nil && len(plan.Openings) > 0 {
		slot := bottomRectW / float32(len(plan.Openings)+1)
		for i, o := range plan.Openings {
			ow := float32(o.WidthIn) * scale
			oh := float32(o.HeightIn) * scale
			cx := slot * float32(i+1)
			sill := (bottomRectH - oh) / 3
			if sill < 0 {
				sill = 0
			}
			ox := cx - ow/2
			oy := bottomRectTop + bottomRectH - sill - oh

			rect := canvas.NewRectangle(openingColor)
			rect.Resize(fyne.NewSize(ow, oh))
			rect.Move(fyne.NewPos(ox, oy))
			r.objects = append(r.objects, rect)

			border := canvas.NewRectangle(color.Transparent)
			border.StrokeColor = outlineColor
			border.StrokeWidth = 1
			border.Resize(fyne.NewSize(ow, oh))
			border.Move(fyne.NewPos(ox, oy))
			r.objects = append(r.objects, border)

			if ow > 30 && oh > 14 {
				label := canvas.NewText(
					fmt.Sprintf("%.0fx%.0f", o.WidthIn, o.HeightIn), color.Black)
				label.TextSize = 9
				label.Move(fyne.NewPos(ox+3, oy+2))
				r.objects = append(r.objects, label)
			}
		}
	}
}

func (r *wallCanvasRenderer) Layout(size fyne.Size)        {}
func (r *wallCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *wallCanvasRenderer) Destroy()                     {}
func (r *wallCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *wallCanvasRenderer) MinSize() fyne.Size {
	wIn, hIn := planExtents(r.wc.plan)
	if wIn <= 0 || hIn <= 0 {
		return fyne.NewSize(120, 20)
	}
	scale := r.scale()
	return fyne.NewSize(float32(wIn)*scale, float32(hIn)*scale)
}

// RenderEstimateResults creates a scrollable container showing the estimate
// summary and an elevation per wall.
func RenderEstimateResults(takeoff model.Takeoff, est *model.SidingEstimate) fyne.CanvasObject {
	if est == nil || len(takeoff.Walls) == 0 {
		return widget.NewLabel("No results yet. Add walls and a product, then click Estimate.")
	}

	var items []fyne.CanvasObject

	for _, wp := range takeoff.Walls {
		title := wp.Label
		if wp.Direction != "" {
			title = fmt.Sprintf("%s (facing %s)", wp.Label, wp.Direction)
		}
		line := title
		if area, err := wp.SidingAreaSqIn(); err == nil {
			line = fmt.Sprintf("%s — %s", title, model.SquareInchesToFeetInches(area).String())
		}
		header := widget.NewLabel(line)
		header.TextStyle = fyne.TextStyle{Bold: true}

		items = append(items, header, NewWallCanvas(wp, 500, 300), widget.NewSeparator())
	}

	for _, w := range est.Warnings {
		warning := widget.NewLabel("WARNING: " + w)
		warning.Importance = widget.DangerImportance
		items = append(items, warning)
	}

	for _, dt := range est.Directions {
		items = append(items, widget.NewLabel(fmt.Sprintf(
			"  %s: %d wall(s), %s, %d panel(s)",
			dt.Direction, dt.WallCount, dt.AreaFtIn.String(), dt.Panels,
		)))
	}

	summaryText := fmt.Sprintf(
		"Total: %s | %d panels (+%.0f%% waste: %d) | Est. cost %.2f",
		est.TotalAreaFtIn.String(), est.PanelsMin,
		takeoff.Settings.WasteFraction*100, est.PanelsWithWaste, est.EstimatedCost,
	)
	if est.Trim != nil {
		summaryText += fmt.Sprintf(" | Trim %.0f ft", est.Trim.TotalWithWasteFt)
	}
	summary := widget.NewLabel(summaryText)
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, summary)

	return container.NewVScroll(container.NewVBox(items...))
}
