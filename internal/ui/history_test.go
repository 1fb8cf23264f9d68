package ui

import (
	"testing"

	"github.com/sidingworks/sidingcalc/internal/model"
)

func wallsFixture(labels ...string) []model.WallPlan {
	walls := make([]model.WallPlan, len(labels))
	for i, l := range labels {
		wp := model.NewWallPlan(l, "front")
		wp.Sections = []model.SectionPlan{model.RectPlan(120, 96)}
		walls[i] = wp
	}
	return walls
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory()

	before := MakeSnapshot(wallsFixture("A"), "Add Wall")
	h.Push(before)
	current := MakeSnapshot(wallsFixture("A", "B"), "current")

	if !h.CanUndo() {
		t.Fatal("expected CanUndo after push")
	}

	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("Undo returned false")
	}
	if len(restored.Walls) != 1 || restored.Walls[0].Label != "A" {
		t.Errorf("unexpected undo state: %+v", restored.Walls)
	}

	if !h.CanRedo() {
		t.Fatal("expected CanRedo after undo")
	}
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("Redo returned false")
	}
	if len(redone.Walls) != 2 {
		t.Errorf("expected 2 walls after redo, got %d", len(redone.Walls))
	}
}

func TestHistoryEmptyStacks(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Undo(Snapshot{}); ok {
		t.Error("Undo on empty history should return false")
	}
	if _, ok := h.Redo(Snapshot{}); ok {
		t.Error("Redo on empty history should return false")
	}
}

func TestHistoryPushClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(wallsFixture("A"), "one"))
	h.Undo(MakeSnapshot(wallsFixture("A", "B"), "current"))

	if !h.CanRedo() {
		t.Fatal("expected redo available")
	}
	h.Push(MakeSnapshot(wallsFixture("C"), "new branch"))
	if h.CanRedo() {
		t.Error("Push should clear the redo stack")
	}
}

func TestHistoryMaxDepth(t *testing.T) {
	h := NewHistory()
	for i := 0; i < defaultMaxDepth+10; i++ {
		h.Push(MakeSnapshot(wallsFixture("W"), "push"))
	}
	if len(h.undoStack) != defaultMaxDepth {
		t.Errorf("undo stack should cap at %d, got %d", defaultMaxDepth, len(h.undoStack))
	}
}

func TestMakeSnapshotDeepCopies(t *testing.T) {
	walls := wallsFixture("A")
	walls[0].Openings = []model.Opening{model.NewOpening(36, 80)}

	snap := MakeSnapshot(walls, "copy")
	walls[0].Sections[0].WidthIn = 999
	walls[0].Openings[0].WidthIn = 999

	if snap.Walls[0].Sections[0].WidthIn == 999 {
		t.Error("snapshot sections should not share storage with the source")
	}
	if snap.Walls[0].Openings[0].WidthIn == 999 {
		t.Error("snapshot openings should not share storage with the source")
	}
	if snap.Walls[0].ID != walls[0].ID {
		t.Error("snapshot should preserve wall IDs")
	}
}
