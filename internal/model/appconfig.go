package model

// AppConfig holds application-wide preferences. Only preferences and the
// product catalog are ever written to disk; wall configurations stay
// in-memory per session.
type AppConfig struct {
	DefaultProductName      string  `json:"default_product_name"`
	DefaultWasteFraction    float64 `json:"default_waste_fraction"`
	DefaultMethod           string  `json:"default_method"`
	DefaultRoundDenominator int     `json:"default_round_denominator"`
	DefaultIncludeTrim      bool    `json:"default_include_trim"`
	Theme                   string  `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with values matching
// DefaultSettings and the first catalog product.
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	catalog := DefaultCatalog()
	return AppConfig{
		DefaultProductName:      catalog.Products[0].Name,
		DefaultWasteFraction:    defaults.WasteFraction,
		DefaultMethod:           defaults.Method.String(),
		DefaultRoundDenominator: defaults.RoundDenominator,
		DefaultIncludeTrim:      defaults.IncludeTrim,
		Theme:                   "system",
	}
}

// ApplyToSettings copies the saved defaults into an EstimateSettings struct.
// Used when starting a new takeoff so it inherits the user's preferences.
func (c AppConfig) ApplyToSettings(s *EstimateSettings) {
	s.WasteFraction = c.DefaultWasteFraction
	s.IncludeTrim = c.DefaultIncludeTrim
	if c.DefaultRoundDenominator >= 1 {
		s.RoundDenominator = c.DefaultRoundDenominator
	}
	if c.DefaultMethod == MethodCourses.String() {
		s.Method = MethodCourses
	} else {
		s.Method = MethodPanels
	}
}
