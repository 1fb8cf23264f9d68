package estimate

import (
	"math"

	"github.com/sidingworks/sidingcalc/internal/model"
)

// CalculateTrim sums the linear footage of J-channel around openings plus
// two corner posts per wall. Corner posts run the height of the wall's
// tallest rectangular section; gables sit above the corners and need none.
func CalculateTrim(plans []model.WallPlan, wasteFraction float64) model.TrimSummary {
	var summary model.TrimSummary
	summary.WasteFraction = wasteFraction

	for _, wp := range plans {
		for _, o := range wp.Openings {
			summary.TotalLinearIn += 2 * (o.WidthIn + o.HeightIn)
			summary.OpeningCount++
		}

		var tallest float64
		for _, sp := range wp.Sections {
			if sp.Shape == model.ShapeRect && sp.HeightIn > tallest {
				tallest = sp.HeightIn
			}
		}
		if tallest > 0 {
			summary.TotalLinearIn += 2 * tallest
			summary.CornerCount += 2
		}
	}

	summary.TotalLinearFt = summary.TotalLinearIn / 12.0
	summary.TotalWithWasteFt = math.Ceil(summary.TotalLinearFt * (1.0 + wasteFraction))
	return summary
}
