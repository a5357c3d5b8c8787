package model

import "github.com/google/uuid"

// GlassPreset is a reusable glass selection.
type GlassPreset struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Spec GlassSpec `json:"spec"`
}

// NewGlassPreset creates a new GlassPreset with a generated ID.
func NewGlassPreset(name string, spec GlassSpec) GlassPreset {
	return GlassPreset{
		ID:   uuid.New().String()[:8],
		Name: name,
		Spec: spec,
	}
}

// Catalog holds the user's profile series and glass presets. Series are
// owned here and copied into structures when selected.
type Catalog struct {
	Series []ProfileSeries `json:"series"`
	Glass  []GlassPreset   `json:"glass"`
}

// DefaultCatalog returns a catalog populated with common defaults.
func DefaultCatalog() Catalog {
	casement := DefaultSeries()
	casement.ID = uuid.New().String()[:8]
	casement.Name = "Casement 40mm"
	casement.Profiles = copyProfiles(casement.Profiles)
	casement.Profiles[ProfileOuterFrame] = ProfileSpec{Width: 50, WeightPerMeter: 1.05}
	casement.Profiles[ProfileOuterFrameVertical] = ProfileSpec{Width: 55, WeightPerMeter: 1.12}
	casement.Profiles[ProfileCasementShutter] = ProfileSpec{Width: 72, WeightPerMeter: 1.02}

	return Catalog{
		Series: []ProfileSeries{DefaultSeries(), casement},
		Glass: []GlassPreset{
			NewGlassPreset("5mm Clear", GlassSpec{Type: "Clear", Thickness: 5}),
			NewGlassPreset("5mm Frosted", GlassSpec{Type: "Frosted", Thickness: 5}),
			NewGlassPreset("6mm Toughened", GlassSpec{Type: "Toughened", Thickness: 6}),
			NewGlassPreset("12mm Toughened", GlassSpec{Type: "Toughened", Thickness: 12}),
			NewGlassPreset("6.38mm Laminated", GlassSpec{Type: "Clear", Thickness: 6.38, Lamination: "PVB 0.38"}),
			NewGlassPreset("24mm DGU", GlassSpec{Type: "Clear", Thickness: 24, DGU: "6-12-6"}),
			NewGlassPreset("5mm Mirror", GlassSpec{Type: "Mirror", Thickness: 5}),
		},
	}
}

// FindSeriesByID returns a pointer to the series with the given ID, or nil.
func (c *Catalog) FindSeriesByID(id string) *ProfileSeries {
	for i := range c.Series {
		if c.Series[i].ID == id {
			return &c.Series[i]
		}
	}
	return nil
}

// FindSeriesByName returns a pointer to the first series with the given name, or nil.
func (c *Catalog) FindSeriesByName(name string) *ProfileSeries {
	for i := range c.Series {
		if c.Series[i].Name == name {
			return &c.Series[i]
		}
	}
	return nil
}

// FindGlassByName returns a pointer to the first glass preset with the given name, or nil.
func (c *Catalog) FindGlassByName(name string) *GlassPreset {
	for i := range c.Glass {
		if c.Glass[i].Name == name {
			return &c.Glass[i]
		}
	}
	return nil
}

// SeriesNames returns a list of series names for pickers.
func (c *Catalog) SeriesNames() []string {
	names := make([]string, len(c.Series))
	for i, s := range c.Series {
		names[i] = s.Name
	}
	return names
}

// UpdateSeries replaces the series with the same ID. Returns false when no
// such series exists.
func (c *Catalog) UpdateSeries(s ProfileSeries) bool {
	for i := range c.Series {
		if c.Series[i].ID == s.ID {
			c.Series[i] = s
			return true
		}
	}
	return false
}

func copyProfiles(in map[ProfileKey]ProfileSpec) map[ProfileKey]ProfileSpec {
	out := make(map[ProfileKey]ProfileSpec, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
