package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to new designs
	DefaultRate       float64  `json:"default_rate"`
	DefaultAreaUnit   AreaUnit `json:"default_area_unit"`
	DefaultGSTPercent float64  `json:"default_gst_percent"`
	DefaultSeriesID   string   `json:"default_series_id"`
	CompanyName       string   `json:"company_name"`
	Currency          string   `json:"currency"`

	// Cutting defaults
	KerfWidth        float64 `json:"kerf_width"`
	MinOffcutLength  float64 `json:"min_offcut_length"`
	GasketWastePct   float64 `json:"gasket_waste_pct"`
	DefaultBarLength float64 `json:"default_bar_length"`

	RecentDesigns []string `json:"recent_designs"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching DefaultQuotationSettings and DefaultCuttingSettings.
func DefaultAppConfig() AppConfig {
	q := DefaultQuotationSettings()
	c := DefaultCuttingSettings()
	return AppConfig{
		DefaultRate:       550,
		DefaultAreaUnit:   AreaSqFt,
		DefaultGSTPercent: q.GSTPercent,
		CompanyName:       q.CompanyName,
		Currency:          q.Currency,
		KerfWidth:         c.KerfWidth,
		MinOffcutLength:   c.MinOffcutLength,
		GasketWastePct:    c.GasketWastePct,
		DefaultBarLength:  c.DefaultBarLength,
		RecentDesigns:     []string{},
	}
}

// ApplyToSettings copies the quotation defaults into s.
// This is used when creating a new design so it inherits the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *QuotationSettings) {
	s.GSTPercent = c.DefaultGSTPercent
	s.CompanyName = c.CompanyName
	s.Currency = c.Currency
}

// CuttingSettings returns the cutting configuration.
func (c AppConfig) CuttingSettings() CuttingSettings {
	return CuttingSettings{
		KerfWidth:        c.KerfWidth,
		MinOffcutLength:  c.MinOffcutLength,
		GasketWastePct:   c.GasketWastePct,
		DefaultBarLength: c.DefaultBarLength,
	}
}
