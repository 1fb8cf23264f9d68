package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/sidingworks/sidingcalc/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// chainTolerance is the maximum endpoint gap, in drawing units, for two line
// segments to be considered connected.
const chainTolerance = 0.01

// point is a 2D drawing coordinate.
type point struct {
	x, y float64
}

// segment is a line between two points, used for chaining disconnected LINE
// entities into closed outlines.
type segment struct {
	start point
	end   point
}

// outline is a closed polygon in drawing coordinates.
type outline []point

// elevationShape is a classified outline: either a rectangle or a gable
// triangle, with its bounding box kept for containment and stacking tests.
type elevationShape struct {
	section        model.SectionPlan
	minX, minY     float64
	maxX, maxY     float64
	isRect         bool
	usedAsOpening  bool
	mergedIntoWall bool
	stackedGables  []model.SectionPlan
}

// ImportDXF imports wall elevations from a DXF drawing measured in inches.
// Axis-aligned four-vertex outlines become rectangular wall sections,
// three-vertex outlines become gables, and a rectangle drawn inside another
// shape becomes an opening of that wall. A triangle resting on top of a
// rectangle merges into the same wall as its gable.
func ImportDXF(path string) ImportResult {
	return ImportDXFScaled(path, 1)
}

// ImportDXFScaled imports wall elevations applying an inches-per-drawing-unit
// scale, for drawings measured in plan points rather than inches (pass
// model.InchesPerPoint).
func ImportDXFScaled(path string, inchesPerUnit float64) ImportResult {
	result := ImportResult{}

	if inchesPerUnit <= 0 {
		result.Errors = append(result.Errors, fmt.Sprintf("Scale must be positive, got %g", inchesPerUnit))
		return result
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines []outline
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			o := make(outline, 0, len(e.Vertices))
			for _, v := range e.Vertices {
				o = append(o, point{x: v[0], y: v[1]})
			}
			if len(o) >= 3 {
				outlines = append(outlines, o)
			} else {
				result.Warnings = append(result.Warnings,
					"Skipped LWPOLYLINE with fewer than 3 vertices")
			}

		case *entity.Line:
			segments = append(segments, segment{
				start: point{x: e.Start[0], y: e.Start[1]},
				end:   point{x: e.End[0], y: e.End[1]},
			})

		default:
			// Unsupported entity types are silently skipped
		}
	}

	outlines = append(outlines, chainSegments(segments, chainTolerance)...)
	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	var shapes []*elevationShape
	for _, o := range outlines {
		shape, reason := classifyOutline(o, inchesPerUnit)
		if shape == nil {
			result.Warnings = append(result.Warnings, reason)
			continue
		}
		shapes = append(shapes, shape)
	}
	if len(shapes) == 0 {
		result.Errors = append(result.Errors, "No usable wall shapes found in DXF file")
		return result
	}

	// Largest shapes first so openings attach to the innermost enclosing wall
	// after walls are created outer-to-inner.
	sort.Slice(shapes, func(i, j int) bool {
		ai := (shapes[i].maxX - shapes[i].minX) * (shapes[i].maxY - shapes[i].minY)
		aj := (shapes[j].maxX - shapes[j].minX) * (shapes[j].maxY - shapes[j].minY)
		return ai > aj
	})

	markOpenings(shapes)
	result.Walls = assembleWalls(shapes)
	return result
}

// classifyOutline turns a closed outline into a shape, or returns the reason
// it was skipped.
func classifyOutline(o outline, scale float64) (*elevationShape, string) {
	minX, minY := o[0].x, o[0].y
	maxX, maxY := minX, minY
	for _, p := range o[1:] {
		minX = math.Min(minX, p.x)
		minY = math.Min(minY, p.y)
		maxX = math.Max(maxX, p.x)
		maxY = math.Max(maxY, p.y)
	}
	width := (maxX - minX) * scale
	height := (maxY - minY) * scale

	if width < 0.01 || height < 0.01 {
		return nil, fmt.Sprintf("Skipped degenerate shape (%.2f x %.2f in)", width, height)
	}

	shape := &elevationShape{
		minX: minX * scale, minY: minY * scale,
		maxX: maxX * scale, maxY: maxY * scale,
	}

	switch {
	case len(o) == 3:
		// Gable: the apex height over half the base gives the pitch rise per
		// 12 of run.
		rise := 12.0 * height / (width / 2.0)
		shape.section = model.GablePlan(width, rise, 12)
		return shape, ""

	case len(o) == 4 && isAxisAligned(o):
		shape.section = model.RectPlan(width, height)
		shape.isRect = true
		return shape, ""

	default:
		return nil, fmt.Sprintf("Skipped %d-vertex shape; only rectangles and gable triangles import", len(o))
	}
}

// isAxisAligned reports whether every edge of the outline is horizontal or
// vertical within tolerance.
func isAxisAligned(o outline) bool {
	for i := range o {
		a := o[i]
		b := o[(i+1)%len(o)]
		if math.Abs(a.x-b.x) > chainTolerance && math.Abs(a.y-b.y) > chainTolerance {
			return false
		}
	}
	return true
}

// markOpenings flags rectangles drawn strictly inside another shape.
// Shapes must be sorted largest first.
func markOpenings(shapes []*elevationShape) {
	for i, inner := range shapes {
		if !inner.isRect {
			continue
		}
		for _, enclosing := range shapes[:i] {
			if enclosing.usedAsOpening {
				continue
			}
			if inner.minX > enclosing.minX && inner.maxX < enclosing.maxX &&
				inner.minY > enclosing.minY && inner.maxY < enclosing.maxY {
				inner.usedAsOpening = true
				break
			}
		}
	}
}

// assembleWalls builds wall plans from classified shapes: gables stack onto
// the rectangle they rest on, openings attach to their smallest enclosing
// wall shape, and whatever remains becomes its own wall.
func assembleWalls(shapes []*elevationShape) []model.WallPlan {
	// Stack gables onto the rect directly beneath them.
	for _, gable := range shapes {
		if gable.isRect || gable.usedAsOpening {
			continue
		}
		for _, plate := range shapes {
			if !plate.isRect || plate.usedAsOpening {
				continue
			}
			sameSpan := math.Abs(gable.minX-plate.minX) < 1 && math.Abs(gable.maxX-plate.maxX) < 1
			restsOn := math.Abs(gable.minY-plate.maxY) < 1
			if sameSpan && restsOn {
				gable.mergedIntoWall = true
				plate.stackedGables = append(plate.stackedGables, gable.section)
				break
			}
		}
	}

	var walls []model.WallPlan
	wallNum := 0
	for _, shape := range shapes {
		if shape.usedAsOpening || shape.mergedIntoWall {
			continue
		}
		wallNum++
		wp := model.NewWallPlan(fmt.Sprintf("Elevation %d", wallNum), "")
		wp.Sections = append([]model.SectionPlan{shape.section}, shape.stackedGables...)

		// Attach openings whose smallest enclosing shape is this one.
		for _, o := range shapes {
			if !o.usedAsOpening {
				continue
			}
			if smallestEnclosing(shapes, o) == shape {
				wp.Openings = append(wp.Openings, model.NewOpening(o.maxX-o.minX, o.maxY-o.minY))
			}
		}
		walls = append(walls, wp)
	}
	return walls
}

// smallestEnclosing returns the smallest non-opening shape whose bounds
// strictly contain the given opening, or nil.
func smallestEnclosing(shapes []*elevationShape, opening *elevationShape) *elevationShape {
	var best *elevationShape
	bestArea := math.MaxFloat64
	for _, s := range shapes {
		if s == opening || s.usedAsOpening {
			continue
		}
		if opening.minX > s.minX && opening.maxX < s.maxX &&
			opening.minY > s.minY && opening.maxY < s.maxY {
			area := (s.maxX - s.minX) * (s.maxY - s.minY)
			if area < bestArea {
				bestArea = area
				best = s
			}
		}
	}
	return best
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them connected.
func chainSegments(segs []segment, tolerance float64) []outline {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines []outline

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := []point{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		// A closed chain repeats its first point; drop the duplicate.
		if len(chain) >= 4 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			chain = chain[:len(chain)-1]
			if len(chain) >= 3 {
				outlines = append(outlines, outline(chain))
			}
		}
	}

	return outlines
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b point, tolerance float64) bool {
	dx := a.x - b.x
	dy := a.y - b.y
	return math.Sqrt(dx*dx+dy*dy) <= tolerance
}
