package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/GlazeCut/internal/model"
)

func slidingConfig(w, h float64, sc model.ShutterConfig) model.StructureConfig {
	return model.StructureConfig{
		Type:    model.TypeSliding,
		Width:   w,
		Height:  h,
		Series:  model.DefaultSeries(),
		Glass:   model.GlassSpec{Type: "Clear", Thickness: 5},
		Sliding: model.NewSlidingConfig(sc),
	}
}

func segmentsByKey(m model.GeometryModel, key model.ProfileKey) []model.ProfileSegment {
	var out []model.ProfileSegment
	for _, p := range m.Profiles {
		if p.Key == key {
			out = append(out, p)
		}
	}
	return out
}

func glassByID(t *testing.T, m model.GeometryModel, id string) model.GlassPane {
	t.Helper()
	for _, g := range m.Glass {
		if g.PanelID == id {
			return g
		}
	}
	t.Fatalf("no glass pane %q", id)
	return model.GlassPane{}
}

func TestDecomposeOuterFrame(t *testing.T) {
	m := Decompose(slidingConfig(1500, 1200, model.Shutters2G))

	frame := segmentsByKey(m, model.ProfileOuterFrame)
	require.Len(t, frame, 4)
	assert.Equal(t, model.Rect{X: 0, Y: 0, W: 1500, H: 60}, frame[0].Rect)
	assert.Equal(t, 1500.0, frame[0].Length)
	assert.Equal(t, 1500.0, frame[1].Length)
	assert.Equal(t, model.Rect{X: 0, Y: 60, W: 60, H: 1080}, frame[2].Rect)
	assert.Equal(t, 1200.0, frame[2].Length, "mitered members are cut to the full height")
	assert.Equal(t, model.Rect{X: 60, Y: 60, W: 1380, H: 1080}, m.Inner)
	assert.True(t, m.HasInnerContent)
}

func TestDecomposeAsymmetricFrame(t *testing.T) {
	cfg := slidingConfig(1500, 1200, model.Shutters2G)
	cfg.Series.Profiles[model.ProfileOuterFrameVertical] = model.ProfileSpec{Width: 80}

	m := Decompose(cfg)
	assert.Len(t, segmentsByKey(m, model.ProfileOuterFrame), 2)
	vertical := segmentsByKey(m, model.ProfileOuterFrameVertical)
	require.Len(t, vertical, 2)
	assert.Equal(t, 80.0, vertical[0].W)
	assert.Equal(t, model.Rect{X: 80, Y: 60, W: 1340, H: 1080}, m.Inner)
}

func TestDecomposeUnframedTypes(t *testing.T) {
	cfg := model.StructureConfig{
		Type:      model.TypeGlassPartition,
		Width:     2000,
		Height:    2400,
		Series:    model.DefaultSeries(),
		Partition: &model.PartitionConfig{Count: 2},
	}
	m := Decompose(cfg)
	assert.Empty(t, segmentsByKey(m, model.ProfileOuterFrame))
	assert.Equal(t, model.Rect{X: 0, Y: 0, W: 2000, H: 2400}, m.Inner)

	cfg = model.StructureConfig{
		Type:   model.TypeMirror,
		Width:  600,
		Height: 900,
		Series: model.DefaultSeries(),
		Mirror: &model.MirrorConfig{Shape: model.ShapeRectangle, Frameless: true},
	}
	m = Decompose(cfg)
	assert.Empty(t, m.Profiles)
	require.Len(t, m.Glass, 1)
	assert.Equal(t, model.Rect{W: 600, H: 900}, m.Glass[0].Rect)
}

func TestDecomposeFixedTopPanel(t *testing.T) {
	cfg := slidingConfig(1500, 1200, model.Shutters2G)
	cfg.FixedPanels = []model.FixedPanel{{Position: model.PositionTop, Size: 400}}

	m := Decompose(cfg)
	dividers := segmentsByKey(m, model.ProfileFixedFrame)
	require.Len(t, dividers, 1)
	assert.Equal(t, model.Rect{X: 60, Y: 360, W: 1380, H: 40}, dividers[0].Rect)
	assert.Equal(t, 1380.0, dividers[0].Length)

	top := glassByID(t, m, "fixed:top")
	assert.Equal(t, model.Rect{X: 60, Y: 60, W: 1380, H: 300}, top.Rect)
	assert.Equal(t, model.Rect{X: 60, Y: 400, W: 1380, H: 740}, m.Inner)
}

func TestDecomposeFixedSidePanelsSpanHole(t *testing.T) {
	cfg := slidingConfig(2000, 1200, model.Shutters2G)
	cfg.FixedPanels = []model.FixedPanel{
		{Position: model.PositionLeft, Size: 500},
		{Position: model.PositionTop, Size: 400},
		{Position: model.PositionRight, Size: 300},
		{Position: model.PositionLeft, Size: 900},
	}

	m := Decompose(cfg)
	left := glassByID(t, m, "fixed:left")
	assert.Equal(t, model.Rect{X: 60, Y: 400, W: 400, H: 740}, left.Rect)
	right := glassByID(t, m, "fixed:right")
	assert.Equal(t, model.Rect{X: 1740, Y: 400, W: 200, H: 740}, right.Rect)
	assert.Equal(t, model.Rect{X: 500, Y: 400, W: 1200, H: 740}, m.Inner)
	assert.Len(t, segmentsByKey(m, model.ProfileFixedFrame), 3, "second left panel is ignored")
}

func TestDecomposeDegenerateInner(t *testing.T) {
	cfg := slidingConfig(1500, 1200, model.Shutters2G)
	cfg.FixedPanels = []model.FixedPanel{
		{Position: model.PositionTop, Size: 700},
		{Position: model.PositionBottom, Size: 600},
	}

	var m model.GeometryModel
	require.NotPanics(t, func() { m = Decompose(cfg) })
	assert.False(t, m.HasInnerContent)
	assert.Zero(t, m.Inner.H)
	assert.Empty(t, segmentsByKey(m, model.ProfileShutterHandle))
	for _, g := range m.Glass {
		assert.Contains(t, []string{"fixed:top", "fixed:bottom"}, g.PanelID)
	}
}

func TestDecomposeZeroSize(t *testing.T) {
	for _, wt := range model.WindowTypes {
		cfg := model.StructureConfig{Type: wt, Series: model.DefaultSeries()}
		var m model.GeometryModel
		require.NotPanics(t, func() { m = Decompose(cfg) }, string(wt))
		assert.False(t, m.HasInnerContent, string(wt))
		assert.Empty(t, m.Glass, string(wt))
		assert.Empty(t, m.Profiles, string(wt))
	}
}

func TestDecomposeDeterministic(t *testing.T) {
	cfg := model.StructureConfig{
		Type:   model.TypeCasement,
		Width:  1200,
		Height: 1000,
		Series: model.DefaultSeries(),
		Grid: &model.GridConfig{
			VerticalDividers: []float64{0.7, 1.2, 0.3},
			Cells:            []model.GridCell{{Row: 0, Col: 1, Type: model.CellDoor}},
		},
	}
	a := Decompose(cfg)
	b := Decompose(cfg)
	assert.Equal(t, a, b)
	assert.Equal(t, []float64{0.7, 1.2, 0.3}, cfg.Grid.VerticalDividers, "input is not modified")
}
