package model

import (
	"fmt"

	"github.com/google/uuid"
)

// SectionShape tags the shape of a SectionPlan.
type SectionShape int

const (
	ShapeRect  SectionShape = iota // rectangular section, WidthIn x HeightIn
	ShapeGable                     // isosceles gable, BaseIn with PitchRise/PitchRun
)

func (s SectionShape) String() string {
	switch s {
	case ShapeGable:
		return "Gable"
	default:
		return "Rectangle"
	}
}

// SectionPlan is the editable description of one wall section used by the
// GUI, the importers, and templates. Rect shapes use WidthIn/HeightIn;
// gables use BaseIn with PitchRise over PitchRun.
type SectionPlan struct {
	Shape     SectionShape `json:"shape"`
	WidthIn   float64      `json:"width_in"`
	HeightIn  float64      `json:"height_in"`
	BaseIn    float64      `json:"base_in"`
	PitchRise float64      `json:"pitch_rise"`
	PitchRun  float64      `json:"pitch_run"`
}

func RectPlan(widthIn, heightIn float64) SectionPlan {
	return SectionPlan{Shape: ShapeRect, WidthIn: widthIn, HeightIn: heightIn}
}

func GablePlan(baseIn, pitchRise, pitchRun float64) SectionPlan {
	return SectionPlan{Shape: ShapeGable, BaseIn: baseIn, PitchRise: pitchRise, PitchRun: pitchRun}
}

// Section compiles the plan into the immutable area primitive. A gable with
// an unset run gets the conventional 12.
func (sp SectionPlan) Section() (Section, error) {
	switch sp.Shape {
	case ShapeGable:
		run := sp.PitchRun
		if run == 0 {
			run = 12
		}
		return NewTriSection(sp.BaseIn, sp.PitchRise, run)
	default:
		return NewRectSection(sp.WidthIn, sp.HeightIn), nil
	}
}

// Describe returns a short human-readable summary for lists and labels.
func (sp SectionPlan) Describe() string {
	if sp.Shape == ShapeGable {
		run := sp.PitchRun
		if run == 0 {
			run = 12
		}
		return fmt.Sprintf("Gable %.4g\" base @ %.4g/%.4g", sp.BaseIn, sp.PitchRise, run)
	}
	return fmt.Sprintf("Rect %.4g\" x %.4g\"", sp.WidthIn, sp.HeightIn)
}

// WallPlan is the editable description of one wall. Build compiles it into
// the immutable core Wall; the plan itself stays editable in the front ends.
type WallPlan struct {
	ID        string        `json:"id"`
	Label     string        `json:"label"`
	Direction string        `json:"direction"`
	Sections  []SectionPlan `json:"sections"`
	Openings  []Opening     `json:"openings"`
}

func NewWallPlan(label, direction string) WallPlan {
	return WallPlan{
		ID:        uuid.New().String()[:8],
		Label:     label,
		Direction: direction,
	}
}

// Build compiles the plan into a Wall.
func (wp WallPlan) Build() (*Wall, error) {
	wall := NewWall()
	for i, sp := range wp.Sections {
		section, err := sp.Section()
		if err != nil {
			return nil, fmt.Errorf("wall %q section %d: %w", wp.Label, i+1, err)
		}
		wall.AddSection(section)
	}
	for _, o := range wp.Openings {
		wall.AddOpening(o)
	}
	return wall, nil
}

// SidingAreaSqIn builds the wall and returns its unclamped net area.
func (wp WallPlan) SidingAreaSqIn() (float64, error) {
	wall, err := wp.Build()
	if err != nil {
		return 0, err
	}
	return wall.SidingAreaSqIn(), nil
}

// Clone returns a deep copy of the plan with a fresh ID.
func (wp WallPlan) Clone() WallPlan {
	out := NewWallPlan(wp.Label, wp.Direction)
	out.Sections = append([]SectionPlan(nil), wp.Sections...)
	out.Openings = append([]Opening(nil), wp.Openings...)
	return out
}

// BuildContainer compiles wall plans into a WallContainer, preserving
// insertion order.
func BuildContainer(plans []WallPlan) (*WallContainer, error) {
	container := NewWallContainer()
	for _, wp := range plans {
		wall, err := wp.Build()
		if err != nil {
			return nil, err
		}
		container.AddWall(wall, wp.Direction)
	}
	return container, nil
}
