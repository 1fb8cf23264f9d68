package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sidingworks/sidingcalc/internal/model"
)

func TestCollectLabelInfos(t *testing.T) {
	takeoff := buildTestTakeoff()

	labels, err := CollectLabelInfos(takeoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}

	back := labels[0]
	if back.WallLabel != "Back" || back.Direction != "back" {
		t.Errorf("back label = %+v", back)
	}
	// 144x96 + gable 2592 - 35x59 = 14351 sq in = 99 sq ft remainder.
	if back.AreaSqFt != 99 {
		t.Errorf("back area = %d sq ft, want 99", back.AreaSqFt)
	}
	if back.Panels <= 0 {
		t.Errorf("back panels = %d, want > 0", back.Panels)
	}
	if back.Product != takeoff.Product.Name {
		t.Errorf("product = %q", back.Product)
	}
}

func TestCollectLabelInfos_ClampsNegativeWall(t *testing.T) {
	wp := model.NewWallPlan("Overcut", "front")
	wp.Sections = []model.SectionPlan{model.RectPlan(10, 10)}
	wp.Openings = []model.Opening{model.NewOpening(20, 20)}

	takeoff := model.NewTakeoff()
	takeoff.Walls = []model.WallPlan{wp}

	labels, err := CollectLabelInfos(takeoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if labels[0].AreaSqIn != 0 || labels[0].Panels != 0 {
		t.Errorf("overcut wall should clamp to zero, got %+v", labels[0])
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, buildTestTakeoff()); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file not created: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output file is empty")
	}
}

func TestExportLabels_NoWalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, model.NewTakeoff()); err == nil {
		t.Error("expected an error for a takeoff with no walls")
	}
}
