package estimate

import (
	"fmt"
	"math"

	"github.com/sidingworks/sidingcalc/internal/model"
)

// Estimator turns a set of walls into a material estimate.
type Estimator struct {
	Settings model.EstimateSettings
}

func New(settings model.EstimateSettings) *Estimator {
	return &Estimator{Settings: settings}
}

// Estimate computes panel counts, cost, and per-direction totals for an
// already-built wall container. Course and trim figures require the wall
// plans and are produced by EstimateTakeoff.
func (e *Estimator) Estimate(container *model.WallContainer, product model.PanelProduct) (*model.SidingEstimate, error) {
	if product.PanelSqFt <= 0 {
		return nil, fmt.Errorf("product %q has coverage %g sq ft: %w",
			product.Name, product.PanelSqFt, model.ErrInvalidArgument)
	}

	est := &model.SidingEstimate{Product: product}
	est.TotalAreaSqIn = container.TotalSidingAreaSqIn()
	est.TotalAreaFtIn = model.SquareInchesToFeetInches(est.TotalAreaSqIn)

	wallCounts := make(map[string]int)
	for _, ow := range container.Walls() {
		wallCounts[ow.Direction]++
	}
	for _, dir := range container.DirectionsInOrder() {
		area := container.TotalSidingAreaSqIn(dir)
		panels, err := model.PanelsNeeded(area, product.PanelSqFt, e.Settings.WasteFraction)
		if err != nil {
			return nil, err
		}
		est.Directions = append(est.Directions, model.DirectionTotal{
			Direction: dir,
			WallCount: wallCounts[dir],
			AreaSqIn:  area,
			AreaFtIn:  model.SquareInchesToFeetInches(area),
			Panels:    panels,
		})
	}

	sqFt := math.Max(0, est.TotalAreaSqIn) / model.SqInPerSqFt
	est.PanelsExact = sqFt / product.PanelSqFt
	est.PanelsMin = int(math.Ceil(est.PanelsExact))

	withWaste, err := model.PanelsNeeded(est.TotalAreaSqIn, product.PanelSqFt, e.Settings.WasteFraction)
	if err != nil {
		return nil, err
	}
	est.PanelsWithWaste = withWaste
	est.LeftoverSqFt = float64(withWaste)*product.PanelSqFt - sqFt
	est.EstimatedCost = float64(withWaste) * product.PricePerPanel
	return est, nil
}

// EstimateTakeoff runs the full pipeline on a takeoff: build the walls, run
// plan diagnostics, and attach course counts and trim when the settings ask
// for them.
func (e *Estimator) EstimateTakeoff(takeoff model.Takeoff) (*model.SidingEstimate, error) {
	container, err := model.BuildContainer(takeoff.Walls)
	if err != nil {
		return nil, err
	}

	est, err := e.Estimate(container, takeoff.Product)
	if err != nil {
		return nil, err
	}

	est.Warnings = CheckPlans(takeoff.Walls)

	if e.Settings.Method == model.MethodCourses {
		if takeoff.Product.IsLap() {
			est.Courses = CourseCounts(takeoff.Walls, takeoff.Product)
		} else {
			est.Warnings = append(est.Warnings, fmt.Sprintf(
				"product %q has no piece length/exposure; course estimate skipped", takeoff.Product.Name))
		}
	}

	if e.Settings.IncludeTrim {
		trim := CalculateTrim(takeoff.Walls, e.Settings.TrimWasteFraction)
		est.Trim = &trim
	}
	return est, nil
}
