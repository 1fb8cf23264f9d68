package model

import "github.com/google/uuid"

// PanelProduct describes a siding product. Sheet goods cover PanelSqFt per
// panel; lap goods are additionally described by piece length and exposure
// so course counts can be estimated.
type PanelProduct struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Material      string  `json:"material"`
	PanelSqFt     float64 `json:"panel_sq_ft"`
	PricePerPanel float64 `json:"price_per_panel"`
	PieceLengthIn float64 `json:"piece_length_in"`
	ExposureIn    float64 `json:"exposure_in"`
}

// NewPanelProduct creates a sheet-goods product with a generated ID.
func NewPanelProduct(name, material string, panelSqFt, pricePerPanel float64) PanelProduct {
	return PanelProduct{
		ID:            uuid.New().String()[:8],
		Name:          name,
		Material:      material,
		PanelSqFt:     panelSqFt,
		PricePerPanel: pricePerPanel,
	}
}

// NewLapProduct creates a lap-siding product. Coverage per piece is derived
// from the exposed face so panel-style estimates still work.
func NewLapProduct(name, material string, pieceLengthIn, exposureIn, pricePerPiece float64) PanelProduct {
	p := NewPanelProduct(name, material, pieceLengthIn*exposureIn/SqInPerSqFt, pricePerPiece)
	p.PieceLengthIn = pieceLengthIn
	p.ExposureIn = exposureIn
	return p
}

// IsLap reports whether the product is estimated by courses rather than by
// whole-panel coverage alone.
func (p PanelProduct) IsLap() bool {
	return p.ExposureIn > 0 && p.PieceLengthIn > 0
}

// Catalog holds the user's saved siding products.
type Catalog struct {
	Products []PanelProduct `json:"products"`
}

// DefaultCatalog returns a catalog populated with common siding products.
func DefaultCatalog() Catalog {
	return Catalog{
		Products: []PanelProduct{
			NewPanelProduct("T1-11 Panel 4x8", "Plywood", 32, 42.50),
			NewPanelProduct("T1-11 Panel 4x9", "Plywood", 36, 48.00),
			NewPanelProduct("LP SmartSide Panel 4x8", "Engineered wood", 32, 39.00),
			NewLapProduct("Fiber Cement Lap 8.25\" x 12'", "Fiber cement", 144, 7, 11.50),
			NewLapProduct("Vinyl Double-4 12'6\"", "Vinyl", 150, 8, 8.25),
			NewLapProduct("Cedar Bevel 6\" x 16'", "Cedar", 192, 4.5, 21.00),
		},
	}
}

// FindByID returns a pointer to the product with the given ID, or nil.
func (c *Catalog) FindByID(id string) *PanelProduct {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first product with the given name, or nil.
func (c *Catalog) FindByName(name string) *PanelProduct {
	for i := range c.Products {
		if c.Products[i].Name == name {
			return &c.Products[i]
		}
	}
	return nil
}

// Names returns a list of product names for UI dropdowns.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Products))
	for i, p := range c.Products {
		names[i] = p.Name
	}
	return names
}
