package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/GlazeCut/internal/model"
)

func mirrorWithPattern(w, h float64, p model.GeorgianPattern) model.StructureConfig {
	return model.StructureConfig{
		Type:     model.TypeMirror,
		Width:    w,
		Height:   h,
		Series:   model.DefaultSeries(),
		Mirror:   &model.MirrorConfig{Shape: model.ShapeRectangle, Frameless: true},
		Georgian: model.GeorgianConfig{Patterns: map[string]model.GeorgianPattern{model.DefaultGeorgianKey: p}},
	}
}

func TestGeorgianBarBeyondPaneIsOmitted(t *testing.T) {
	m := Decompose(mirrorWithPattern(800, 500, model.GeorgianPattern{
		Horizontal: model.BarSet{Count: 1, Offset: 1000},
	}))
	require.Len(t, m.Glass, 1)
	assert.Empty(t, m.Glass[0].GeorgianBars)
	assert.Empty(t, segmentsByKey(m, model.ProfileGlassGrid))
}

func TestGeorgianBarsClippedToPane(t *testing.T) {
	m := Decompose(mirrorWithPattern(800, 500, model.GeorgianPattern{
		Horizontal: model.BarSet{Count: 4, Offset: 100, Gap: 195},
		Vertical:   model.BarSet{Count: 2, Offset: 0, Gap: 400},
	}))
	require.Len(t, m.Glass, 1)
	bars := m.Glass[0].GeorgianBars
	require.Len(t, bars, 5)
	assert.Equal(t, model.GeorgianBar{Horizontal: true, Offset: 100, Thickness: 20}, bars[0])
	assert.Equal(t, model.GeorgianBar{Horizontal: true, Offset: 295, Thickness: 20}, bars[1])
	assert.Equal(t, model.GeorgianBar{Horizontal: true, Offset: 490, Thickness: 10}, bars[2])
	assert.Equal(t, model.GeorgianBar{Horizontal: false, Offset: 0, Thickness: 20}, bars[3])
	assert.Equal(t, model.GeorgianBar{Horizontal: false, Offset: 400, Thickness: 20}, bars[4])

	segs := segmentsByKey(m, model.ProfileGlassGrid)
	require.Len(t, segs, 5)
	assert.Equal(t, 800.0, segs[0].Length)
	assert.Equal(t, model.Rect{X: 0, Y: 490, W: 800, H: 10}, segs[2].Rect)
	assert.Equal(t, 500.0, segs[3].Length)
	assert.Equal(t, "mirror", segs[0].PanelID)
}

func TestGeorgianPerPanelOverride(t *testing.T) {
	cfg := slidingConfig(1500, 1200, model.Shutters2G)
	cfg.Georgian = model.GeorgianConfig{Patterns: map[string]model.GeorgianPattern{
		model.ShutterRef(1).Key(): {Vertical: model.BarSet{Count: 1, Offset: 300}},
	}}
	m := Decompose(cfg)

	assert.Empty(t, glassByID(t, m, "shutter:0").GeorgianBars)
	right := glassByID(t, m, "shutter:1")
	require.Len(t, right.GeorgianBars, 1)

	segs := segmentsByKey(m, model.ProfileGlassGrid)
	require.Len(t, segs, 1)
	assert.Equal(t, right.X+300, segs[0].X)
	assert.Equal(t, right.H, segs[0].Length)
}

func TestGeorgianDefaultAppliesToFixedPanels(t *testing.T) {
	cfg := slidingConfig(1500, 1200, model.Shutters2G)
	cfg.FixedPanels = []model.FixedPanel{{Position: model.PositionTop, Size: 400}}
	cfg.Georgian = model.GeorgianConfig{Patterns: map[string]model.GeorgianPattern{
		model.DefaultGeorgianKey: {Vertical: model.BarSet{Count: 1, Offset: 100}},
	}}
	m := Decompose(cfg)
	assert.Len(t, segmentsByKey(m, model.ProfileGlassGrid), 3)
	assert.Len(t, glassByID(t, m, "fixed:top").GeorgianBars, 1)
}

func TestGeorgianCornerSideOverride(t *testing.T) {
	cfg := cornerConfig()
	cfg.Corner.Left.Georgian = model.GeorgianConfig{Patterns: map[string]model.GeorgianPattern{
		"shutter:0": {Horizontal: model.BarSet{Count: 2, Offset: 100, Gap: 100}},
	}}
	m := Decompose(cfg)
	assert.Len(t, glassByID(t, m, "left/shutter:0").GeorgianBars, 2)
	assert.Empty(t, glassByID(t, m, "right/cell:0:0").GeorgianBars)
}

func TestGeorgianZeroGapEmitsOneBar(t *testing.T) {
	m := Decompose(mirrorWithPattern(1000, 500, model.GeorgianPattern{
		Horizontal: model.BarSet{Count: 5, Offset: 100},
	}))

	require.Len(t, m.Glass, 1)
	assert.Len(t, m.Glass[0].GeorgianBars, 1)
	assert.Len(t, segmentsByKey(m, model.ProfileGlassGrid), 1)
}

func TestGeorgianStopsAtPaneEdge(t *testing.T) {
	m := Decompose(mirrorWithPattern(1000, 500, model.GeorgianPattern{
		Horizontal: model.BarSet{Count: 1_000_000_000, Offset: 50, Gap: 100},
	}))

	require.Len(t, m.Glass, 1)
	assert.Len(t, m.Glass[0].GeorgianBars, 5)
}
