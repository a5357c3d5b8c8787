package geometry

import (
	"math"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// georgian overlays decorative bars on every glass pane that has a pattern.
// Bar i sits at offset+i*gap from the pane's own origin. Bars starting
// outside the pane are omitted; a bar running past the far edge is clipped.
func (b *builder) georgian() {
	thickness := b.cfg.Series.Width(model.ProfileGlassGrid)
	if thickness <= 0 {
		return
	}
	for i := range b.m.Glass {
		pattern, ok := b.cfg.Georgian.PatternFor(b.panes[i])
		if !ok {
			continue
		}
		pane := &b.m.Glass[i]
		for _, off := range barOffsets(pattern.Horizontal, pane.H) {
			th := math.Min(thickness, pane.H-off)
			b.segment(model.ProfileGlassGrid, pane.PanelID, model.Rect{X: pane.X, Y: pane.Y + off, W: pane.W, H: th}, pane.W, model.LayerMain)
			pane.GeorgianBars = append(pane.GeorgianBars, model.GeorgianBar{Horizontal: true, Offset: off, Thickness: th})
		}
		for _, off := range barOffsets(pattern.Vertical, pane.W) {
			th := math.Min(thickness, pane.W-off)
			b.segment(model.ProfileGlassGrid, pane.PanelID, model.Rect{X: pane.X + off, Y: pane.Y, W: th, H: pane.H}, pane.H, model.LayerMain)
			pane.GeorgianBars = append(pane.GeorgianBars, model.GeorgianBar{Horizontal: false, Offset: off, Thickness: th})
		}
	}
}

// barOffsets returns the offsets of the bars of s that start within
// [0, extent). With no gap every bar lands on the same offset, so at most
// one is returned.
func barOffsets(s model.BarSet, extent float64) []float64 {
	count := min(s.Count, model.MaxGeorgianBars)
	if !(s.Gap > 0) {
		count = min(count, 1)
	}
	var out []float64
	for i := 0; i < count; i++ {
		off := s.Offset + float64(i)*s.Gap
		if off >= extent {
			break
		}
		if off < 0 {
			continue
		}
		out = append(out, off)
	}
	return out
}
