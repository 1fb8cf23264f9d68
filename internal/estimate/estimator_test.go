package estimate

import (
	"testing"

	"github.com/sidingworks/sidingcalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTestSettings() model.EstimateSettings {
	s := model.DefaultSettings()
	// Simplify for testing: no trim, panel method
	s.IncludeTrim = false
	s.Method = model.MethodPanels
	return s
}

func sheetProduct() model.PanelProduct {
	return model.PanelProduct{ID: "test", Name: "Test Panel", PanelSqFt: 32, PricePerPanel: 42.50}
}

func lapProduct() model.PanelProduct {
	return model.PanelProduct{
		ID: "lap", Name: "Test Lap",
		PanelSqFt:     144 * 8 / model.SqInPerSqFt,
		PricePerPanel: 10,
		PieceLengthIn: 144,
		ExposureIn:    8,
	}
}

func TestEstimate_SingleWall(t *testing.T) {
	est := New(defaultTestSettings())

	wall := model.NewWall()
	wall.AddSection(model.NewRectSection(144, 96))
	wall.AddOpening(model.NewOpening(35, 59))
	container := model.NewWallContainer()
	container.AddWall(wall, "back")

	result, err := est.Estimate(container, sheetProduct())
	require.NoError(t, err)

	assert.Equal(t, 11759.0, result.TotalAreaSqIn)
	assert.Equal(t, 81, result.TotalAreaFtIn.SquareFeet)
	assert.InDelta(t, 95.0, result.TotalAreaFtIn.SquareInches, 1e-9)

	// 81.66 sq ft / 32 = 2.55 exact, 3 minimum, still 3 with 10% waste.
	assert.InDelta(t, 2.5519, result.PanelsExact, 0.001)
	assert.Equal(t, 3, result.PanelsMin)
	assert.Equal(t, 3, result.PanelsWithWaste)
	assert.InDelta(t, 3*32-11759.0/144.0, result.LeftoverSqFt, 1e-9)
	assert.InDelta(t, 127.50, result.EstimatedCost, 1e-9)
}

func TestEstimate_DirectionTotals(t *testing.T) {
	est := New(defaultTestSettings())

	container := model.NewWallContainer()
	w1 := model.NewWall()
	w1.AddSection(model.NewRectSection(144, 96))
	container.AddWall(w1, "n")
	w2 := model.NewWall()
	w2.AddSection(model.NewRectSection(120, 96))
	container.AddWall(w2, "north")
	w3 := model.NewWall()
	w3.AddSection(model.NewRectSection(96, 96))
	container.AddWall(w3, "east")

	result, err := est.Estimate(container, sheetProduct())
	require.NoError(t, err)

	require.Len(t, result.Directions, 2, "'n' and 'north' should merge into one line")
	north := result.Directions[0]
	assert.Equal(t, "north", north.Direction)
	assert.Equal(t, 2, north.WallCount)
	assert.Equal(t, 144.0*96+120.0*96, north.AreaSqIn)
	assert.Equal(t, "east", result.Directions[1].Direction)
	assert.Equal(t, 1, result.Directions[1].WallCount)
}

func TestEstimate_RejectsZeroCoverageProduct(t *testing.T) {
	est := New(defaultTestSettings())
	container := model.NewWallContainer()

	_, err := est.Estimate(container, model.PanelProduct{Name: "Broken"})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestEstimateTakeoff_FullPipeline(t *testing.T) {
	settings := defaultTestSettings()
	settings.IncludeTrim = true
	est := New(settings)

	wp := model.NewWallPlan("Back", "back")
	wp.Sections = []model.SectionPlan{model.RectPlan(144, 96)}
	wp.Openings = []model.Opening{model.NewOpening(35, 59)}

	takeoff := model.NewTakeoff()
	takeoff.Walls = []model.WallPlan{wp}
	takeoff.Product = sheetProduct()
	takeoff.Settings = settings

	result, err := est.EstimateTakeoff(takeoff)
	require.NoError(t, err)

	assert.Equal(t, 11759.0, result.TotalAreaSqIn)
	require.NotNil(t, result.Trim, "trim should be included")
	assert.Equal(t, 1, result.Trim.OpeningCount)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Courses, "panel method should not produce courses")
}

func TestEstimateTakeoff_CoursesForLapProduct(t *testing.T) {
	settings := defaultTestSettings()
	settings.Method = model.MethodCourses
	est := New(settings)

	wp := model.NewWallPlan("Gable end", "left")
	wp.Sections = []model.SectionPlan{
		model.RectPlan(144, 96),
		model.GablePlan(144, 6, 12),
	}

	takeoff := model.NewTakeoff()
	takeoff.Walls = []model.WallPlan{wp}
	takeoff.Product = lapProduct()

	result, err := est.EstimateTakeoff(takeoff)
	require.NoError(t, err)

	require.Len(t, result.Courses, 1)
	cb := result.Courses[0]
	assert.Equal(t, "Gable end", cb.WallLabel)
	// Rect: 96/8 = 12 courses. Gable: height 36, avg width 72 -> 5 courses.
	assert.Equal(t, 17, cb.Courses)
	assert.Equal(t, 17, cb.TotalPieces)
	assert.InDelta(t, 12*144.0+5*72.0, cb.LinearIn, 1e-9)
}

func TestEstimateTakeoff_CoursesWarnForSheetProduct(t *testing.T) {
	settings := defaultTestSettings()
	settings.Method = model.MethodCourses
	est := New(settings)

	wp := model.NewWallPlan("Front", "front")
	wp.Sections = []model.SectionPlan{model.RectPlan(120, 96)}

	takeoff := model.NewTakeoff()
	takeoff.Walls = []model.WallPlan{wp}
	takeoff.Product = sheetProduct()

	result, err := est.EstimateTakeoff(takeoff)
	require.NoError(t, err)

	assert.Empty(t, result.Courses)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "course estimate skipped")
}

func TestEstimateTakeoff_BadGeometryFails(t *testing.T) {
	est := New(defaultTestSettings())

	wp := model.NewWallPlan("Bad", "front")
	wp.Sections = []model.SectionPlan{model.GablePlan(-10, 6, 12)}

	takeoff := model.NewTakeoff()
	takeoff.Walls = []model.WallPlan{wp}

	_, err := est.EstimateTakeoff(takeoff)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrInvalidGeometry)
}
