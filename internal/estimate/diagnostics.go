package estimate

import (
	"fmt"

	"github.com/sidingworks/sidingcalc/internal/model"
)

// CheckPlans scans wall plans for suspect input and returns human-readable
// warnings. Warnings never block an estimate; geometry that cannot be built
// at all fails earlier in BuildContainer.
func CheckPlans(plans []model.WallPlan) []string {
	var warnings []string

	labels := make(map[string]int)
	for _, wp := range plans {
		labels[wp.Label]++
	}
	for _, wp := range plans {
		if labels[wp.Label] > 1 {
			warnings = append(warnings, fmt.Sprintf("duplicate wall label %q", wp.Label))
			labels[wp.Label] = 0 // warn once per label
		}
	}

	for _, wp := range plans {
		if len(wp.Sections) == 0 {
			warnings = append(warnings, fmt.Sprintf("wall %q has no sections", wp.Label))
			continue
		}

		for _, sp := range wp.Sections {
			if sp.Shape == model.ShapeGable && sp.PitchRise == 0 {
				warnings = append(warnings, fmt.Sprintf("wall %q has a gable with zero pitch", wp.Label))
			}
		}

		for i, o := range wp.Openings {
			if !openingFitsAnySection(o, wp.Sections) {
				warnings = append(warnings, fmt.Sprintf(
					"wall %q opening %d (%g x %g) is larger than every rectangular section",
					wp.Label, i+1, o.WidthIn, o.HeightIn))
			}
		}

		if area, err := wp.SidingAreaSqIn(); err == nil && area < 0 {
			warnings = append(warnings, fmt.Sprintf(
				"wall %q openings exceed its sections by %g sq in; its area counts as zero", wp.Label, -area))
		}
	}
	return warnings
}

// openingFitsAnySection reports whether at least one rectangular section is
// at least as wide and as tall as the opening.
func openingFitsAnySection(o model.Opening, sections []model.SectionPlan) bool {
	for _, sp := range sections {
		if sp.Shape != model.ShapeRect {
			continue
		}
		if o.WidthIn <= sp.WidthIn && o.HeightIn <= sp.HeightIn {
			return true
		}
	}
	return false
}
