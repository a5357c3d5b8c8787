package model

import (
	"math"
	"slices"
)

// Sanitize coerces every numeric field of cfg at the config-construction
// boundary: negative, NaN and infinite values become 0, relative positions
// are clamped to [0, 1], grid dividers are normalised and counts are capped. It returns a copy; cfg is not modified.
func Sanitize(cfg StructureConfig) StructureConfig {
	out := cfg
	out.Width = dim(cfg.Width)
	out.Height = dim(cfg.Height)
	out.Series = sanitizeSeries(cfg.Series)
	out.FixedPanels = sanitizeFixedPanels(cfg.FixedPanels)
	out.Glass.Thickness = dim(cfg.Glass.Thickness)
	out.Georgian = sanitizeGeorgian(cfg.Georgian)

	if cfg.Sliding != nil {
		out.Sliding = sanitizeSliding(*cfg.Sliding)
	}
	if cfg.Grid != nil {
		out.Grid = sanitizeGrid(*cfg.Grid)
	}
	if cfg.Partition != nil {
		p := *cfg.Partition
		p.Count = p.PanelCount()
		p.Panels = slices.Clone(p.Panels)
		for i := range p.Panels {
			p.Panels[i].Handle = sanitizeHandle(p.Panels[i].Handle)
		}
		out.Partition = &p
	}
	if cfg.Corner != nil {
		c := *cfg.Corner
		c.PostWidth = dim(c.PostWidth)
		c.Left = sanitizeSide(c.Left)
		c.Right = sanitizeSide(c.Right)
		out.Corner = &c
	}
	if cfg.Louvers != nil {
		l := *cfg.Louvers
		l.Pattern = slices.Clone(l.Pattern)
		for i := range l.Pattern {
			if l.Pattern[i].Size = dim(l.Pattern[i].Size); l.Pattern[i].Size < MinLouverSegment {
				l.Pattern[i].Size = 0
			}
		}
		out.Louvers = &l
	}
	if cfg.Mirror != nil {
		m := *cfg.Mirror
		m.CornerRadius = dim(m.CornerRadius)
		out.Mirror = &m
	}
	return out
}

// dim coerces an invalid dimension to 0.
func dim(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// fraction clamps a relative position to [0, 1].
func fraction(v float64) float64 {
	v = dim(v)
	if v > 1 {
		return 1
	}
	return v
}

func sanitizeSeries(s ProfileSeries) ProfileSeries {
	out := s
	if s.Profiles != nil {
		out.Profiles = make(map[ProfileKey]ProfileSpec, len(s.Profiles))
		for k, p := range s.Profiles {
			out.Profiles[k] = ProfileSpec{
				Width:          dim(p.Width),
				StandardLength: dim(p.StandardLength),
				WeightPerMeter: dim(p.WeightPerMeter),
			}
		}
	}
	out.Hardware = slices.Clone(s.Hardware)
	for i := range out.Hardware {
		out.Hardware[i].QuantityPerUnit = dim(out.Hardware[i].QuantityPerUnit)
		out.Hardware[i].UnitCost = dim(out.Hardware[i].UnitCost)
	}
	return out
}

func sanitizeFixedPanels(panels []FixedPanel) []FixedPanel {
	if panels == nil {
		return nil
	}
	out := make([]FixedPanel, len(panels))
	for i, p := range panels {
		out[i] = FixedPanel{Position: p.Position, Size: dim(p.Size)}
	}
	return out
}

func sanitizeHandle(h *HandlePosition) *HandlePosition {
	if h == nil {
		return nil
	}
	return &HandlePosition{X: fraction(h.X), Y: fraction(h.Y)}
}

func sanitizeSliding(s SlidingConfig) *SlidingConfig {
	s.Shutters = slices.Clone(s.Shutters)
	for i := range s.Shutters {
		s.Shutters[i].Handle = sanitizeHandle(s.Shutters[i].Handle)
	}
	return &s
}

func sanitizeGrid(g GridConfig) *GridConfig {
	out := GridConfig{
		VerticalDividers:   NormalizeDividers(g.VerticalDividers),
		HorizontalDividers: NormalizeDividers(g.HorizontalDividers),
		Cells:              slices.Clone(g.Cells),
	}
	for i := range out.Cells {
		out.Cells[i].Handle = sanitizeHandle(out.Cells[i].Handle)
	}
	return &out
}

// sanitizeGeorgian drops patterns whose key is not a panel reference and
// rewrites the rest to their canonical key.
func sanitizeGeorgian(g GeorgianConfig) GeorgianConfig {
	if g.Patterns == nil {
		return g
	}
	out := GeorgianConfig{Patterns: make(map[string]GeorgianPattern, len(g.Patterns))}
	for k, p := range g.Patterns {
		if k != DefaultGeorgianKey {
			ref, err := ParsePanelRef(k)
			if err != nil {
				continue
			}
			k = ref.Key()
		}
		out.Patterns[k] = GeorgianPattern{
			Horizontal: sanitizeBarSet(p.Horizontal),
			Vertical:   sanitizeBarSet(p.Vertical),
		}
	}
	return out
}

func sanitizeBarSet(b BarSet) BarSet {
	b.Count = min(max(b.Count, 0), MaxGeorgianBars)
	b.Offset = dim(b.Offset)
	b.Gap = dim(b.Gap)
	return b
}

func sanitizeSide(s SubConfig) SubConfig {
	s.Width = dim(s.Width)
	s.FixedPanels = sanitizeFixedPanels(s.FixedPanels)
	s.Georgian = sanitizeGeorgian(s.Georgian)
	if s.Sliding != nil {
		s.Sliding = sanitizeSliding(*s.Sliding)
	}
	if s.Grid != nil {
		s.Grid = sanitizeGrid(*s.Grid)
	}
	return s
}
