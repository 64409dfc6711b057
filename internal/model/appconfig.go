package model

// AppConfig holds application-wide preferences and default settings.
// Defaults are resolved here, once, at the input boundary; the engine
// never falls back to implicit values mid-computation.
type AppConfig struct {
	// Default optimizer settings applied to new plans
	DefaultEnableRotation      bool `json:"default_enable_rotation"`
	DefaultConsiderLoadBearing bool `json:"default_consider_load_bearing"`

	// Default equipment preset names, resolved against the catalog
	DefaultPallet    string `json:"default_pallet"`
	DefaultContainer string `json:"default_container"`

	// Application preferences
	RecentPlans []string `json:"recent_plans"`
}

// DefaultAppConfig returns an AppConfig matching DefaultSettings() and
// the first catalog entries.
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	catalog := DefaultCatalog()
	return AppConfig{
		DefaultEnableRotation:      defaults.EnableRotation,
		DefaultConsiderLoadBearing: defaults.ConsiderLoadBearing,
		DefaultPallet:              catalog.Pallets[0].Name,
		DefaultContainer:           catalog.Containers[0].Name,
		RecentPlans:                []string{},
	}
}

// ApplyToSettings copies the config defaults into a LoadSettings struct.
// Used when creating a new plan so it inherits the saved defaults.
func (c AppConfig) ApplyToSettings(s *LoadSettings) {
	s.EnableRotation = c.DefaultEnableRotation
	s.ConsiderLoadBearing = c.DefaultConsiderLoadBearing
}
