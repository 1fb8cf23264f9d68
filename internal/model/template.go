package model

import "github.com/google/uuid"

// StructureTemplate is a reusable set of wall plans for a common building
// shape. Templates are built into the binary; instantiating one copies the
// walls with fresh IDs so edits never touch the template.
type StructureTemplate struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Walls       []WallPlan `json:"walls"`
}

// Instantiate returns independent copies of the template's walls.
func (t StructureTemplate) Instantiate() []WallPlan {
	walls := make([]WallPlan, len(t.Walls))
	for i, wp := range t.Walls {
		walls[i] = wp.Clone()
	}
	return walls
}

// BuiltinTemplates returns the built-in structure templates.
func BuiltinTemplates() []StructureTemplate {
	ranchEaveWall := func(label, direction string, openings ...Opening) WallPlan {
		wp := NewWallPlan(label, direction)
		wp.Sections = []SectionPlan{RectPlan(480, 96)} // 40' x 8'
		wp.Openings = openings
		return wp
	}
	ranchGableWall := func(label, direction string, openings ...Opening) WallPlan {
		wp := NewWallPlan(label, direction)
		wp.Sections = []SectionPlan{
			RectPlan(336, 96),    // 28' x 8'
			GablePlan(336, 6, 12), // 6/12 gable above the plate
		}
		wp.Openings = openings
		return wp
	}

	garageDoorWall := NewWallPlan("Garage front", "front")
	garageDoorWall.Sections = []SectionPlan{RectPlan(288, 96), GablePlan(288, 4, 12)}
	garageDoorWall.Openings = []Opening{NewOpening(192, 84)} // 16' x 7' door

	garageBackWall := NewWallPlan("Garage back", "back")
	garageBackWall.Sections = []SectionPlan{RectPlan(288, 96), GablePlan(288, 4, 12)}
	garageBackWall.Openings = []Opening{NewOpening(35, 23)}

	garageSide := func(label, direction string) WallPlan {
		wp := NewWallPlan(label, direction)
		wp.Sections = []SectionPlan{RectPlan(288, 96)}
		return wp
	}

	shedLongWall := func(label, direction string, openings ...Opening) WallPlan {
		wp := NewWallPlan(label, direction)
		wp.Sections = []SectionPlan{RectPlan(144, 84)} // 12' x 7'
		wp.Openings = openings
		return wp
	}
	shedEndWall := func(label, direction string, openings ...Opening) WallPlan {
		wp := NewWallPlan(label, direction)
		wp.Sections = []SectionPlan{RectPlan(96, 84), GablePlan(96, 8, 12)}
		wp.Openings = openings
		return wp
	}

	return []StructureTemplate{
		{
			ID:          uuid.New().String()[:8],
			Name:        "Gabled Ranch 28x40",
			Description: "Single-story ranch, 8' walls, 6/12 gable ends",
			Walls: []WallPlan{
				ranchEaveWall("Front", "front", NewOpening(36, 80), NewOpening(35, 59), NewOpening(35, 59)),
				ranchEaveWall("Back", "back", NewOpening(72, 80), NewOpening(35, 59)),
				ranchGableWall("Left end", "left", NewOpening(35, 59)),
				ranchGableWall("Right end", "right"),
			},
		},
		{
			ID:          uuid.New().String()[:8],
			Name:        "Two-Car Garage 24x24",
			Description: "Detached garage, 16' door, 4/12 gables front and back",
			Walls: []WallPlan{
				garageDoorWall,
				garageBackWall,
				garageSide("Garage left", "left"),
				garageSide("Garage right", "right"),
			},
		},
		{
			ID:          uuid.New().String()[:8],
			Name:        "Garden Shed 8x12",
			Description: "Small shed, 7' walls, steep 8/12 gable ends",
			Walls: []WallPlan{
				shedLongWall("Shed front", "front", NewOpening(30, 72)),
				shedLongWall("Shed back", "back"),
				shedEndWall("Shed left", "left"),
				shedEndWall("Shed right", "right", NewOpening(24, 24)),
			},
		},
	}
}

// FindTemplate returns a pointer to the first template with the given name,
// or nil.
func FindTemplate(templates []StructureTemplate, name string) *StructureTemplate {
	for i := range templates {
		if templates[i].Name == name {
			return &templates[i]
		}
	}
	return nil
}

// TemplateNames returns template names for UI dropdowns and CLI listings.
func TemplateNames(templates []StructureTemplate) []string {
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	return names
}
