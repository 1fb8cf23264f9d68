package model

// OrientedWall associates a Wall with a canonical direction label. Its
// siding area is clamped to zero so a mis-measured wall can never subtract
// from a direction total.
type OrientedWall struct {
	Wall      *Wall
	Direction string
}

func NewOrientedWall(wall *Wall, direction string) OrientedWall {
	return OrientedWall{Wall: wall, Direction: NormalizeDirection(direction)}
}

// SidingAreaSqIn returns the wall's net siding area clamped to >= 0. The
// unclamped value remains available through ow.Wall.SidingAreaSqIn.
func (ow OrientedWall) SidingAreaSqIn() float64 {
	if area := ow.Wall.SidingAreaSqIn(); area > 0 {
		return area
	}
	return 0
}

func (ow OrientedWall) SidingAreaFeetInches() SquareFeetInches {
	return SquareInchesToFeetInches(ow.SidingAreaSqIn())
}

// WallContainer collects oriented walls and reports totals and per-direction
// breakdowns. The container only grows; walls are never removed or mutated.
type WallContainer struct {
	walls []OrientedWall
}

func NewWallContainer() *WallContainer {
	return &WallContainer{}
}

// AddWall wraps the wall in an OrientedWall with a normalized direction and
// appends it.
func (c *WallContainer) AddWall(wall *Wall, direction string) {
	c.walls = append(c.walls, NewOrientedWall(wall, direction))
}

// Walls returns the oriented walls in insertion order.
func (c *WallContainer) Walls() []OrientedWall { return c.walls }

// TotalSidingAreaSqIn sums clamped siding areas. With no arguments every
// wall is included; otherwise only walls whose direction matches one of the
// given labels (normalized) count. A filter matching nothing yields 0.
func (c *WallContainer) TotalSidingAreaSqIn(directions ...string) float64 {
	var filter map[string]bool
	if len(directions) > 0 {
		filter = make(map[string]bool, len(directions))
		for _, d := range directions {
			filter[NormalizeDirection(d)] = true
		}
	}

	var total float64
	for _, ow := range c.walls {
		if filter == nil || filter[ow.Direction] {
			total += ow.SidingAreaSqIn()
		}
	}
	return total
}

func (c *WallContainer) TotalSidingAreaFeetInches(directions ...string) SquareFeetInches {
	return SquareInchesToFeetInches(c.TotalSidingAreaSqIn(directions...))
}

// BreakdownByDirection returns summed clamped areas keyed by canonical
// direction. Multiple walls sharing a direction accumulate under one key.
func (c *WallContainer) BreakdownByDirection() map[string]float64 {
	out := make(map[string]float64)
	for _, ow := range c.walls {
		out[ow.Direction] += ow.SidingAreaSqIn()
	}
	return out
}

func (c *WallContainer) BreakdownByDirectionFeetInches() map[string]SquareFeetInches {
	out := make(map[string]SquareFeetInches)
	for dir, area := range c.BreakdownByDirection() {
		out[dir] = SquareInchesToFeetInches(area)
	}
	return out
}

// DirectionsInOrder returns the distinct canonical directions in first-
// appearance order, for reports where map iteration order is not acceptable.
func (c *WallContainer) DirectionsInOrder() []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, ow := range c.walls {
		if !seen[ow.Direction] {
			seen[ow.Direction] = true
			dirs = append(dirs, ow.Direction)
		}
	}
	return dirs
}
