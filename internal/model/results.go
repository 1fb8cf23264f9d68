package model

// DirectionTotal is the per-direction line of an estimate.
type DirectionTotal struct {
	Direction string           `json:"direction"`
	WallCount int              `json:"wall_count"`
	AreaSqIn  float64          `json:"area_sq_in"`
	AreaFtIn  SquareFeetInches `json:"area_ft_in"`
	Panels    int              `json:"panels"`
}

// CourseBreakdown is the lap-siding course requirement for one wall section.
type CourseBreakdown struct {
	WallLabel       string  `json:"wall_label"`
	Direction       string  `json:"direction"`
	Courses         int     `json:"courses"`
	PiecesPerCourse int     `json:"pieces_per_course"`
	TotalPieces     int     `json:"total_pieces"`
	LinearIn        float64 `json:"linear_in"`
}

// TrimSummary holds J-channel and corner post linear footage.
type TrimSummary struct {
	TotalLinearIn    float64 `json:"total_linear_in"`
	TotalLinearFt    float64 `json:"total_linear_ft"`
	WasteFraction    float64 `json:"waste_fraction"`
	TotalWithWasteFt float64 `json:"total_with_waste_ft"`
	OpeningCount     int     `json:"opening_count"`
	CornerCount      int     `json:"corner_count"`
}

// SidingEstimate is the full result of an estimate run. Directions are in
// first-appearance order of the walls that produced them.
type SidingEstimate struct {
	Directions []DirectionTotal `json:"directions"`

	TotalAreaSqIn float64          `json:"total_area_sq_in"`
	TotalAreaFtIn SquareFeetInches `json:"total_area_ft_in"`

	PanelsExact     float64 `json:"panels_exact"`
	PanelsMin       int     `json:"panels_min"`
	PanelsWithWaste int     `json:"panels_with_waste"`
	LeftoverSqFt    float64 `json:"leftover_sq_ft"`
	EstimatedCost   float64 `json:"estimated_cost"`

	Product PanelProduct `json:"product"`

	Courses  []CourseBreakdown `json:"courses,omitempty"`
	Trim     *TrimSummary      `json:"trim,omitempty"`
	Warnings []string          `json:"warnings,omitempty"`
}
