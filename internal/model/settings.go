package model

// EstimateMethod selects how material quantities are computed.
type EstimateMethod int

const (
	MethodPanels  EstimateMethod = iota // area divided by whole-panel coverage
	MethodCourses                       // lap-siding course counts per wall
)

func (m EstimateMethod) String() string {
	switch m {
	case MethodCourses:
		return "Courses"
	default:
		return "Panels"
	}
}

// EstimateSettings holds estimating configuration.
type EstimateSettings struct {
	Method            EstimateMethod `json:"method"`
	WasteFraction     float64        `json:"waste_fraction"`
	RoundDenominator  int            `json:"round_denominator"`
	IncludeTrim       bool           `json:"include_trim"`
	TrimWasteFraction float64        `json:"trim_waste_fraction"`
}

func DefaultSettings() EstimateSettings {
	return EstimateSettings{
		Method:            MethodPanels,
		WasteFraction:     0.10,
		RoundDenominator:  DefaultRoundDenominator,
		IncludeTrim:       true,
		TrimWasteFraction: 0.05,
	}
}
