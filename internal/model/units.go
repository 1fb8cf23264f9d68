package model

import (
	"fmt"
	"math"
)

// Unit conversion constants. Plan drawings measure in "points"; the 629/799
// ratio is the calibrated inches-per-point scale of those drawings.
const (
	SqInPerSqFt    = 144.0
	InchesPerPoint = 629.0 / 799.0
	PointsPerInch  = 1.0 / InchesPerPoint
	PointsPerFoot  = 12.0 * PointsPerInch

	// DefaultRoundDenominator rounds display inches to the nearest 1/16.
	DefaultRoundDenominator = 16
)

// FeetInches is a linear measurement split into whole feet and inches.
type FeetInches struct {
	Feet   int     `json:"feet"`
	Inches float64 `json:"inches"`
}

func (fi FeetInches) String() string {
	return fmt.Sprintf("%d' %.4g\"", fi.Feet, fi.Inches)
}

// TotalInches collapses the measurement back to inches.
func (fi FeetInches) TotalInches() float64 {
	return float64(fi.Feet)*12.0 + fi.Inches
}

// SquareFeetInches is an area split into whole square feet and remaining
// square inches.
type SquareFeetInches struct {
	SquareFeet   int     `json:"square_feet"`
	SquareInches float64 `json:"square_inches"`
}

func (s SquareFeetInches) String() string {
	return fmt.Sprintf("%d sq ft %.0f sq in", s.SquareFeet, s.SquareInches)
}

// PointsToFeetInches converts a drawing measurement in points to feet and
// inches. The remainder inches are rounded to the nearest 1/roundDenominator
// (16 for sixteenths); when rounding reaches 12 inches a foot is carried.
// A denominator below 1 falls back to the default.
func PointsToFeetInches(points float64, roundDenominator int) FeetInches {
	if roundDenominator < 1 {
		roundDenominator = DefaultRoundDenominator
	}

	inches := points * InchesPerPoint
	feet := int(math.Floor(inches / 12.0))
	rem := inches - float64(feet)*12.0

	step := 1.0 / float64(roundDenominator)
	rem = math.Round(rem/step) * step
	if rem >= 12 {
		feet++
		rem -= 12
	}
	return FeetInches{Feet: feet, Inches: rem}
}

// FeetInchesToPoints converts a feet-and-inches measurement back to drawing
// points using the reciprocal scale.
func FeetInchesToPoints(feet int, inches float64) float64 {
	return (float64(feet)*12.0 + inches) * PointsPerInch
}

// SquareInchesToFeetInches splits an area in square inches into whole square
// feet and the remaining square inches. Square feet are floored, never
// rounded, so the remainder is always in [0, 144).
func SquareInchesToFeetInches(sqIn float64) SquareFeetInches {
	sqFt := math.Floor(sqIn / SqInPerSqFt)
	rem := sqIn - sqFt*SqInPerSqFt
	return SquareFeetInches{SquareFeet: int(sqFt), SquareInches: rem}
}

// PanelsNeeded returns the whole number of siding panels required to cover
// the given area. Negative areas are clamped to zero before conversion; the
// waste fraction (0.10 for 10%) inflates the area before dividing by panel
// coverage and rounding up.
func PanelsNeeded(totalAreaSqIn, panelSqFt, wasteFraction float64) (int, error) {
	if panelSqFt <= 0 {
		return 0, fmt.Errorf("panel coverage must be > 0 sq ft, got %g: %w", panelSqFt, ErrInvalidArgument)
	}

	sqFt := math.Max(0, totalAreaSqIn) / SqInPerSqFt
	sqFt *= 1.0 + wasteFraction
	return int(math.Ceil(sqFt / panelSqFt)), nil
}
