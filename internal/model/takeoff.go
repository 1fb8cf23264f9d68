package model

// Takeoff is the in-memory working set held by the front ends: the wall
// plans being edited plus the product and settings used to estimate them.
// Wall configurations are deliberately never persisted; only preferences
// and the product catalog survive a restart.
type Takeoff struct {
	Name     string
	Walls    []WallPlan
	Settings EstimateSettings
	Product  PanelProduct
}

func NewTakeoff() Takeoff {
	catalog := DefaultCatalog()
	return Takeoff{
		Name:     "Untitled",
		Walls:    []WallPlan{},
		Settings: DefaultSettings(),
		Product:  catalog.Products[0],
	}
}
