package importer

import (
	"math"
	"testing"

	"github.com/sidingworks/sidingcalc/internal/model"
)

// ─── Outline Classification Tests ──────────────────────────

func TestClassifyOutline_Rectangle(t *testing.T) {
	o := outline{{0, 0}, {144, 0}, {144, 96}, {0, 96}}
	shape, reason := classifyOutline(o, 1)

	if shape == nil {
		t.Fatalf("rectangle was skipped: %s", reason)
	}
	if !shape.isRect {
		t.Error("expected a rect shape")
	}
	if shape.section.WidthIn != 144 || shape.section.HeightIn != 96 {
		t.Errorf("section = %+v", shape.section)
	}
}

func TestClassifyOutline_Triangle(t *testing.T) {
	// 144 wide, apex 36 high: 6/12 pitch.
	o := outline{{0, 0}, {144, 0}, {72, 36}}
	shape, reason := classifyOutline(o, 1)

	if shape == nil {
		t.Fatalf("triangle was skipped: %s", reason)
	}
	if shape.section.Shape != model.ShapeGable {
		t.Fatalf("expected a gable, got %+v", shape.section)
	}
	if shape.section.BaseIn != 144 {
		t.Errorf("base = %v, want 144", shape.section.BaseIn)
	}
	if math.Abs(shape.section.PitchRise-6) > 1e-9 {
		t.Errorf("rise = %v, want 6", shape.section.PitchRise)
	}
}

func TestClassifyOutline_AppliesScale(t *testing.T) {
	o := outline{{0, 0}, {100, 0}, {100, 50}, {0, 50}}
	shape, _ := classifyOutline(o, model.InchesPerPoint)

	if shape == nil {
		t.Fatal("scaled rectangle was skipped")
	}
	want := 100 * model.InchesPerPoint
	if math.Abs(shape.section.WidthIn-want) > 1e-9 {
		t.Errorf("width = %v, want %v", shape.section.WidthIn, want)
	}
}

func TestClassifyOutline_SkipsOddShapes(t *testing.T) {
	pentagon := outline{{0, 0}, {10, 0}, {12, 5}, {5, 9}, {-2, 5}}
	if shape, _ := classifyOutline(pentagon, 1); shape != nil {
		t.Error("pentagon should be skipped")
	}

	tilted := outline{{0, 0}, {10, 2}, {8, 12}, {-2, 10}}
	if shape, _ := classifyOutline(tilted, 1); shape != nil {
		t.Error("tilted quad should be skipped")
	}
}

func TestIsAxisAligned(t *testing.T) {
	if !isAxisAligned(outline{{0, 0}, {10, 0}, {10, 5}, {0, 5}}) {
		t.Error("axis-aligned rect misclassified")
	}
	if isAxisAligned(outline{{0, 0}, {10, 1}, {10, 5}, {0, 5}}) {
		t.Error("slanted edge missed")
	}
}

// ─── Segment Chaining Tests ────────────────────────────────

func TestChainSegments_ClosedRectangle(t *testing.T) {
	segs := []segment{
		{point{0, 0}, point{144, 0}},
		{point{144, 0}, point{144, 96}},
		{point{144, 96}, point{0, 96}},
		{point{0, 96}, point{0, 0}},
	}

	outlines := chainSegments(segs, 0.01)
	if len(outlines) != 1 {
		t.Fatalf("expected 1 outline, got %d", len(outlines))
	}
	if len(outlines[0]) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(outlines[0]))
	}
}

func TestChainSegments_ReversedSegmentsStillChain(t *testing.T) {
	segs := []segment{
		{point{0, 0}, point{144, 0}},
		{point{144, 96}, point{144, 0}}, // reversed
		{point{144, 96}, point{0, 96}},
		{point{0, 0}, point{0, 96}}, // reversed
	}

	outlines := chainSegments(segs, 0.01)
	if len(outlines) != 1 {
		t.Fatalf("expected 1 outline, got %d", len(outlines))
	}
}

func TestChainSegments_OpenChainDiscarded(t *testing.T) {
	segs := []segment{
		{point{0, 0}, point{144, 0}},
		{point{144, 0}, point{144, 96}},
	}

	if outlines := chainSegments(segs, 0.01); len(outlines) != 0 {
		t.Errorf("open chain should not produce an outline, got %d", len(outlines))
	}
}

// ─── Shape Assembly Tests ──────────────────────────────────

func elevationFixture(t *testing.T) []*elevationShape {
	t.Helper()
	var shapes []*elevationShape
	for _, o := range []outline{
		{{0, 0}, {144, 0}, {144, 96}, {0, 96}},   // wall plate
		{{0, 96}, {144, 96}, {72, 132}},          // gable resting on it
		{{20, 30}, {55, 30}, {55, 89}, {20, 89}}, // window inside the plate
	} {
		shape, reason := classifyOutline(o, 1)
		if shape == nil {
			t.Fatalf("fixture shape skipped: %s", reason)
		}
		shapes = append(shapes, shape)
	}
	return shapes
}

func TestAssembleWalls_GableAndOpeningMerge(t *testing.T) {
	shapes := elevationFixture(t)
	markOpenings(shapes)

	walls := assembleWalls(shapes)
	if len(walls) != 1 {
		t.Fatalf("expected 1 wall, got %d", len(walls))
	}

	wall := walls[0]
	if len(wall.Sections) != 2 {
		t.Fatalf("expected plate + gable sections, got %d", len(wall.Sections))
	}
	if wall.Sections[0].Shape != model.ShapeRect || wall.Sections[1].Shape != model.ShapeGable {
		t.Errorf("sections = %+v", wall.Sections)
	}
	if len(wall.Openings) != 1 {
		t.Fatalf("expected 1 opening, got %d", len(wall.Openings))
	}
	if wall.Openings[0].WidthIn != 35 || wall.Openings[0].HeightIn != 59 {
		t.Errorf("opening = %+v", wall.Openings[0])
	}
}

func TestMarkOpenings_DetachedRectStaysAWall(t *testing.T) {
	var shapes []*elevationShape
	for _, o := range []outline{
		{{0, 0}, {144, 0}, {144, 96}, {0, 96}},
		{{200, 0}, {320, 0}, {320, 96}, {200, 96}}, // beside, not inside
	} {
		shape, _ := classifyOutline(o, 1)
		shapes = append(shapes, shape)
	}
	markOpenings(shapes)

	walls := assembleWalls(shapes)
	if len(walls) != 2 {
		t.Errorf("expected 2 separate walls, got %d", len(walls))
	}
}
