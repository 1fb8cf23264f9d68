package model

import (
	"errors"
	"math"
	"testing"
)

func TestRectSectionArea(t *testing.T) {
	r := NewRectSection(144, 96)
	if r.AreaSqIn() != 144*96 {
		t.Errorf("expected %v, got %v", 144*96, r.AreaSqIn())
	}
}

func TestTriSectionArea(t *testing.T) {
	tri, err := NewTriSection(144, 6, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// height = (base/2) * pitch, area = 0.5 * base * height
	wantHeight := (144.0 / 2.0) * (6.0 / 12.0)
	if tri.HeightIn() != wantHeight {
		t.Errorf("height = %v, want %v", tri.HeightIn(), wantHeight)
	}
	wantArea := 0.5 * 144.0 * wantHeight
	if tri.AreaSqIn() != wantArea {
		t.Errorf("area = %v, want %v", tri.AreaSqIn(), wantArea)
	}
}

func TestNewGableUsesRunOf12(t *testing.T) {
	tri, err := NewGable(96, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tri.PitchRun != 12 {
		t.Errorf("expected run 12, got %v", tri.PitchRun)
	}
	if tri.Pitch() != 8.0/12.0 {
		t.Errorf("expected pitch 8/12, got %v", tri.Pitch())
	}
}

func TestNewTriSectionRejectsNegativeBase(t *testing.T) {
	_, err := NewTriSection(-1, 6, 12)
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestNewTriSectionRejectsBadRun(t *testing.T) {
	for _, run := range []float64{0, -12} {
		_, err := NewTriSection(144, 6, run)
		if !errors.Is(err, ErrInvalidGeometry) {
			t.Errorf("run %v: expected ErrInvalidGeometry, got %v", run, err)
		}
	}
}

func TestEquivalentDifference(t *testing.T) {
	outer, _ := NewTriSection(322.4, 6, 12)
	inner, _ := NewTriSection(213.6, 6, 12)

	net, err := outer.EquivalentDifference(inner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantBase := math.Sqrt(322.4*322.4 - 213.6*213.6)
	if math.Abs(net.BaseIn-wantBase) > 1e-9 {
		t.Errorf("base = %v, want %v", net.BaseIn, wantBase)
	}
	if net.PitchRise != 6 || net.PitchRun != 12 {
		t.Errorf("pitch should pass through from outer, got %v/%v", net.PitchRise, net.PitchRun)
	}

	// The equivalent triangle's area equals the exact area difference.
	wantArea := outer.AreaSqIn() - inner.AreaSqIn()
	if math.Abs(net.AreaSqIn()-wantArea) > 1e-6 {
		t.Errorf("area = %v, want %v", net.AreaSqIn(), wantArea)
	}
}

func TestEquivalentDifferencePitchMismatch(t *testing.T) {
	outer, _ := NewTriSection(322.4, 6, 12)
	inner, _ := NewTriSection(213.6, 6, 10)

	_, err := outer.EquivalentDifference(inner)
	if !errors.Is(err, ErrPitchMismatch) {
		t.Errorf("expected ErrPitchMismatch, got %v", err)
	}
}

func TestEquivalentDifferenceAcceptsEquivalentRatios(t *testing.T) {
	// 6/12 and 3/6 are the same slope; the difference must succeed.
	outer, _ := NewTriSection(322.4, 6, 12)
	inner, _ := NewTriSection(213.6, 3, 6)

	if _, err := outer.EquivalentDifference(inner); err != nil {
		t.Errorf("equal ratios should subtract cleanly, got %v", err)
	}
}

func TestEquivalentDifferenceInnerTooLarge(t *testing.T) {
	outer, _ := NewTriSection(213.6, 6, 12)
	inner, _ := NewTriSection(322.4, 6, 12)

	_, err := outer.EquivalentDifference(inner)
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("expected ErrInvalidGeometry, got %v", err)
	}
}

func TestEquivalentDifferenceEqualBasesGivesZeroArea(t *testing.T) {
	outer, _ := NewTriSection(100, 6, 12)
	inner, _ := NewTriSection(100, 6, 12)

	net, err := outer.EquivalentDifference(inner)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if net.AreaSqIn() != 0 {
		t.Errorf("expected zero area, got %v", net.AreaSqIn())
	}
}
