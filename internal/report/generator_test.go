package report

import (
	"strings"
	"testing"

	"github.com/sidingworks/sidingcalc/internal/estimate"
	"github.com/sidingworks/sidingcalc/internal/model"
)

func buildReportFixture(t *testing.T) (model.Takeoff, *model.SidingEstimate) {
	t.Helper()

	back := model.NewWallPlan("Back", "back")
	back.Sections = []model.SectionPlan{
		model.RectPlan(144, 96),
		model.GablePlan(144, 6, 12),
	}
	back.Openings = []model.Opening{model.NewOpening(35, 59)}

	takeoff := model.NewTakeoff()
	takeoff.Name = "Garden shed"
	takeoff.Walls = []model.WallPlan{back}

	est, err := estimate.New(takeoff.Settings).EstimateTakeoff(takeoff)
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}
	return takeoff, est
}

func TestGenerate_ContainsAllSections(t *testing.T) {
	takeoff, est := buildReportFixture(t)

	text := New(takeoff.Settings).Generate(takeoff, est)

	for _, want := range []string{
		"SIDING ESTIMATE: Garden shed",
		"WALLS",
		"Back (back)",
		"Gable",
		"Opening 1",
		"BY DIRECTION",
		"MATERIAL ORDER",
		"Panels to order",
		"TRIM",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q\n%s", want, text)
		}
	}
}

func TestGenerate_OmitsTrimWhenDisabled(t *testing.T) {
	takeoff, _ := buildReportFixture(t)
	takeoff.Settings.IncludeTrim = false

	est, err := estimate.New(takeoff.Settings).EstimateTakeoff(takeoff)
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}

	text := New(takeoff.Settings).Generate(takeoff, est)
	if strings.Contains(text, "TRIM") {
		t.Error("report should not contain a trim section")
	}
}

func TestGenerate_ShowsWarnings(t *testing.T) {
	takeoff, _ := buildReportFixture(t)
	empty := model.NewWallPlan("Hollow", "front")
	takeoff.Walls = append(takeoff.Walls, empty)

	est, err := estimate.New(takeoff.Settings).EstimateTakeoff(takeoff)
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}

	text := New(takeoff.Settings).Generate(takeoff, est)
	if !strings.Contains(text, "WARNINGS") || !strings.Contains(text, "no sections") {
		t.Errorf("report should list the empty-wall warning\n%s", text)
	}
}

func TestGenerate_CoursesForLapSiding(t *testing.T) {
	takeoff, _ := buildReportFixture(t)
	takeoff.Settings.Method = model.MethodCourses
	takeoff.Product = model.NewLapProduct("Test Lap", "Vinyl", 144, 8, 9.00)

	est, err := estimate.New(takeoff.Settings).EstimateTakeoff(takeoff)
	if err != nil {
		t.Fatalf("estimate failed: %v", err)
	}

	text := New(takeoff.Settings).Generate(takeoff, est)
	if !strings.Contains(text, "COURSES") {
		t.Errorf("report should contain a courses section\n%s", text)
	}
}
