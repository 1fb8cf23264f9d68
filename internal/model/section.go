package model

import (
	"fmt"
	"math"
)

// Section is a planar wall surface contributing gross siding area. The two
// implementations are flat value types; a Wall sums them without caring
// which shape it holds.
type Section interface {
	AreaSqIn() float64
}

// RectSection is a rectangular wall section.
type RectSection struct {
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
}

func NewRectSection(widthIn, heightIn float64) RectSection {
	return RectSection{WidthIn: widthIn, HeightIn: heightIn}
}

func (r RectSection) AreaSqIn() float64 {
	return r.WidthIn * r.HeightIn
}

// TriSection is an isosceles gable-end triangle. The height is not stored;
// it follows from the roof pitch applied to half the base.
type TriSection struct {
	BaseIn    float64 `json:"base_in"`
	PitchRise float64 `json:"pitch_rise"`
	PitchRun  float64 `json:"pitch_run"`
}

// NewTriSection creates a gable section. Roof pitch is expressed as rise
// over run; the run is conventionally 12 (see NewGable).
func NewTriSection(baseIn, pitchRise, pitchRun float64) (TriSection, error) {
	if baseIn < 0 {
		return TriSection{}, fmt.Errorf("triangle base must be >= 0, got %g: %w", baseIn, ErrInvalidGeometry)
	}
	if pitchRun <= 0 {
		return TriSection{}, fmt.Errorf("pitch run must be > 0, got %g: %w", pitchRun, ErrInvalidGeometry)
	}
	return TriSection{BaseIn: baseIn, PitchRise: pitchRise, PitchRun: pitchRun}, nil
}

// NewGable creates a gable section with the standard run of 12, so the rise
// reads directly as inches per foot of run.
func NewGable(baseIn, pitchRise float64) (TriSection, error) {
	return NewTriSection(baseIn, pitchRise, 12)
}

// Pitch returns the dimensionless slope ratio rise/run.
func (t TriSection) Pitch() float64 {
	return t.PitchRise / t.PitchRun
}

// HeightIn returns the apex height: the pitch applied to the half-base.
func (t TriSection) HeightIn() float64 {
	return (t.BaseIn / 2.0) * t.Pitch()
}

func (t TriSection) AreaSqIn() float64 {
	return 0.5 * t.BaseIn * t.HeightIn()
}

// Pitch equality tolerances for the difference operation.
const (
	pitchRelTol = 1e-9
	pitchAbsTol = 1e-12
)

// EquivalentDifference returns a single triangle whose area equals this
// triangle's area minus the inner triangle's. Both must share the same
// pitch: similar triangles scale area with the square of a linear dimension,
// so the equivalent base is sqrt(outer² − inner²). This trims a gable by a
// smaller intersecting gable of matching pitch (a lower roof meeting a
// taller one) in one step.
func (t TriSection) EquivalentDifference(inner TriSection) (TriSection, error) {
	if !pitchesClose(t.Pitch(), inner.Pitch()) {
		return TriSection{}, fmt.Errorf("pitches %g/%g and %g/%g must match to subtract as a single triangle: %w",
			t.PitchRise, t.PitchRun, inner.PitchRise, inner.PitchRun, ErrPitchMismatch)
	}
	if inner.BaseIn > t.BaseIn {
		return TriSection{}, fmt.Errorf("inner base %g exceeds outer base %g: %w",
			inner.BaseIn, t.BaseIn, ErrInvalidGeometry)
	}

	base := math.Sqrt(t.BaseIn*t.BaseIn - inner.BaseIn*inner.BaseIn)
	return TriSection{BaseIn: base, PitchRise: t.PitchRise, PitchRun: t.PitchRun}, nil
}

// pitchesClose reports whether two slope ratios are equal within a relative
// tolerance of 1e-9, or 1e-12 absolute near zero.
func pitchesClose(a, b float64) bool {
	diff := math.Abs(a - b)
	return diff <= math.Max(pitchRelTol*math.Max(math.Abs(a), math.Abs(b)), pitchAbsTol)
}
