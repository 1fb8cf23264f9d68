package model

// Opening is a rectangular void (window or door) subtracted from a wall's
// gross section area. Openings are owned by the wall that holds them.
type Opening struct {
	WidthIn  float64 `json:"width_in"`
	HeightIn float64 `json:"height_in"`
}

func NewOpening(widthIn, heightIn float64) Opening {
	return Opening{WidthIn: widthIn, HeightIn: heightIn}
}

func (o Opening) AreaSqIn() float64 {
	return o.WidthIn * o.HeightIn
}

// Wall aggregates sections and openings. Both lists are append-only and
// duplicate-tolerant; insertion order never affects the totals.
type Wall struct {
	sections []Section
	openings []Opening
}

func NewWall() *Wall {
	return &Wall{}
}

func (w *Wall) AddSection(s Section) {
	w.sections = append(w.sections, s)
}

func (w *Wall) AddOpening(o Opening) {
	w.openings = append(w.openings, o)
}

// Sections returns the wall's sections in insertion order.
func (w *Wall) Sections() []Section { return w.sections }

// Openings returns the wall's openings in insertion order.
func (w *Wall) Openings() []Opening { return w.openings }

// SectionAreaSqIn returns the gross area of all sections.
func (w *Wall) SectionAreaSqIn() float64 {
	var total float64
	for _, s := range w.sections {
		total += s.AreaSqIn()
	}
	return total
}

// OpeningAreaSqIn returns the total area of all openings.
func (w *Wall) OpeningAreaSqIn() float64 {
	var total float64
	for _, o := range w.openings {
		total += o.AreaSqIn()
	}
	return total
}

// SidingAreaSqIn returns section area minus opening area. The result may be
// negative when openings exceed sections; this raw value stays available for
// diagnostics, and OrientedWall provides the clamped form.
func (w *Wall) SidingAreaSqIn() float64 {
	return w.SectionAreaSqIn() - w.OpeningAreaSqIn()
}

func (w *Wall) SidingAreaFeetInches() SquareFeetInches {
	return SquareInchesToFeetInches(w.SidingAreaSqIn())
}

// PanelsNeeded returns the panel count to side this wall.
func (w *Wall) PanelsNeeded(panelSqFt, wasteFraction float64) (int, error) {
	return PanelsNeeded(w.SidingAreaSqIn(), panelSqFt, wasteFraction)
}
