package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sidingworks/sidingcalc/internal/model"
	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Wall,Direction,Width,Height\nBack,back,144,96\nFront,front,144,96\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Wall;Direction;Width;Height\nBack;back;144;96\nFront;front;144;96\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Wall\tDirection\tWidth\tHeight\nBack\tback\t144\t96\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"Wall", "Direction", "Width", "Height", "Pitch", "Shape", "Openings"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 {
		t.Errorf("expected Label at 0, got %d", mapping.Label)
	}
	if mapping.Direction != 1 {
		t.Errorf("expected Direction at 1, got %d", mapping.Direction)
	}
	if mapping.Width != 2 {
		t.Errorf("expected Width at 2, got %d", mapping.Width)
	}
	if mapping.Height != 3 {
		t.Errorf("expected Height at 3, got %d", mapping.Height)
	}
	if mapping.Pitch != 4 {
		t.Errorf("expected Pitch at 4, got %d", mapping.Pitch)
	}
	if mapping.Shape != 5 {
		t.Errorf("expected Shape at 5, got %d", mapping.Shape)
	}
	if mapping.Openings != 6 {
		t.Errorf("expected Openings at 6, got %d", mapping.Openings)
	}
}

func TestDetectColumns_AlternativeNames(t *testing.T) {
	row := []string{"Name", "Side", "Len", "H", "Roof Pitch", "Type", "Windows"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Label != 0 || mapping.Direction != 1 || mapping.Width != 2 ||
		mapping.Height != 3 || mapping.Pitch != 4 || mapping.Shape != 5 || mapping.Openings != 6 {
		t.Errorf("alternative names not mapped: %+v", mapping)
	}
}

func TestDetectColumns_NoHeaderFallsBackToPositional(t *testing.T) {
	row := []string{"Back wall", "back", "144", "96"}
	mapping, isHeader := DetectColumns(row)

	if isHeader {
		t.Error("numeric row should not be detected as a header")
	}
	if mapping.Label != 0 || mapping.Direction != 1 || mapping.Width != 2 || mapping.Height != 3 {
		t.Errorf("positional mapping wrong: %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSV_WallSchedule(t *testing.T) {
	csv := `Wall,Direction,Width,Height,Pitch,Shape,Openings
Back,back,12',8',,rect,35x59
Back,back,12',,6/12,gable,
Right,right,10',8',,,36x80;35x59
`
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Walls) != 2 {
		t.Fatalf("expected 2 walls (Back rows merged), got %d", len(result.Walls))
	}

	back := result.Walls[0]
	if back.Label != "Back" || back.Direction != "back" {
		t.Errorf("back wall = %q facing %q", back.Label, back.Direction)
	}
	if len(back.Sections) != 2 {
		t.Fatalf("back wall should have 2 sections, got %d", len(back.Sections))
	}
	if back.Sections[0].Shape != model.ShapeRect || back.Sections[0].WidthIn != 144 || back.Sections[0].HeightIn != 96 {
		t.Errorf("back plate section = %+v", back.Sections[0])
	}
	if back.Sections[1].Shape != model.ShapeGable || back.Sections[1].BaseIn != 144 ||
		back.Sections[1].PitchRise != 6 || back.Sections[1].PitchRun != 12 {
		t.Errorf("back gable section = %+v", back.Sections[1])
	}
	if len(back.Openings) != 1 || back.Openings[0].WidthIn != 35 || back.Openings[0].HeightIn != 59 {
		t.Errorf("back openings = %+v", back.Openings)
	}

	right := result.Walls[1]
	if len(right.Openings) != 2 {
		t.Errorf("right wall should have 2 openings, got %d", len(right.Openings))
	}
}

func TestImportCSV_DimensionStrings(t *testing.T) {
	csv := "Wall,Direction,Width,Height\nFront,front,8' 6-1/2\",96\"\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Walls) != 1 {
		t.Fatalf("expected 1 wall, got %d", len(result.Walls))
	}
	if got := result.Walls[0].Sections[0].WidthIn; got != 102.5 {
		t.Errorf("width = %v, want 102.5", got)
	}
}

func TestImportCSV_BadRowsBecomeErrors(t *testing.T) {
	csv := `Wall,Direction,Width,Height,Pitch,Shape
Good,front,144,96,,
NoWidth,front,,96,,
BadPitch,left,144,,steep,gable
`
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Walls) != 1 {
		t.Errorf("expected 1 imported wall, got %d", len(result.Walls))
	}
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %v", result.Errors)
	}
	if !strings.Contains(result.Errors[0], "Missing width") {
		t.Errorf("first error = %q", result.Errors[0])
	}
	if !strings.Contains(result.Errors[1], "Invalid pitch") {
		t.Errorf("second error = %q", result.Errors[1])
	}
}

func TestImportCSV_GableNeedsPitch(t *testing.T) {
	csv := "Wall,Direction,Width,Shape,Height\nPeak,left,144,gable,\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "need a pitch") {
		t.Errorf("expected a missing-pitch error, got %v", result.Errors)
	}
}

func TestImportCSV_DirectionConflictWarns(t *testing.T) {
	csv := `Wall,Direction,Width,Height,Pitch,Shape
Back,back,144,96,,
Back,north,144,,6,gable
`
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	if len(result.Walls) != 1 {
		t.Fatalf("rows should merge into 1 wall, got %d", len(result.Walls))
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "already faces") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a direction conflict warning, got %v", result.Warnings)
	}
}

func TestImportCSV_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.csv")
	content := "Wall;Direction;Width;Height\nBack;back;144;96\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	result := ImportCSV(path)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Walls) != 1 {
		t.Fatalf("expected 1 wall, got %d", len(result.Walls))
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a delimiter warning, got %v", result.Warnings)
	}
}

func TestImportCSV_MissingFile(t *testing.T) {
	result := ImportCSV(filepath.Join(t.TempDir(), "nope.csv"))
	if len(result.Errors) == 0 {
		t.Error("expected an error for a missing file")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func TestImportExcel_WallSchedule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Wall", "Direction", "Width", "Height", "Pitch", "Shape", "Openings"},
		{"Back", "back", "144", "96", "", "", "35x59"},
		{"Left", "left", "120", "96", "", "", ""},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	f.Close()

	result := ImportExcel(path)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Walls) != 2 {
		t.Fatalf("expected 2 walls, got %d", len(result.Walls))
	}
	if result.Walls[0].Label != "Back" || len(result.Walls[0].Openings) != 1 {
		t.Errorf("back wall = %+v", result.Walls[0])
	}
}

func TestImportExcel_MissingFile(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "nope.xlsx"))
	if len(result.Errors) == 0 {
		t.Error("expected an error for a missing file")
	}
}
