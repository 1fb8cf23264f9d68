package estimate

import (
	"math"

	"github.com/sidingworks/sidingcalc/internal/model"
)

// CourseCounts returns per-wall lap-siding requirements. Each wall gets one
// breakdown line aggregating its sections: a rectangle contributes its full
// width per course, a gable contributes its average width (half the base,
// since courses shorten linearly toward the peak).
func CourseCounts(plans []model.WallPlan, product model.PanelProduct) []model.CourseBreakdown {
	if !product.IsLap() {
		return nil
	}

	var out []model.CourseBreakdown
	for _, wp := range plans {
		var courses, pieces int
		var linearIn, maxWidth float64

		for _, sp := range wp.Sections {
			width, height := sectionCourseDims(sp)
			if width <= 0 || height <= 0 {
				continue
			}
			c := int(math.Ceil(height / product.ExposureIn))
			perCourse := int(math.Ceil(width / product.PieceLengthIn))
			courses += c
			pieces += c * perCourse
			linearIn += float64(c) * width
			if width > maxWidth {
				maxWidth = width
			}
		}
		if courses == 0 {
			continue
		}

		out = append(out, model.CourseBreakdown{
			WallLabel:       wp.Label,
			Direction:       model.NormalizeDirection(wp.Direction),
			Courses:         courses,
			PiecesPerCourse: int(math.Ceil(maxWidth / product.PieceLengthIn)),
			TotalPieces:     pieces,
			LinearIn:        linearIn,
		})
	}
	return out
}

// sectionCourseDims returns the effective course width and the height to be
// covered for one section plan.
func sectionCourseDims(sp model.SectionPlan) (width, height float64) {
	if sp.Shape == model.ShapeGable {
		run := sp.PitchRun
		if run == 0 {
			run = 12
		}
		height = (sp.BaseIn / 2.0) * (sp.PitchRise / run)
		width = sp.BaseIn / 2.0
		return width, height
	}
	return sp.WidthIn, sp.HeightIn
}
