package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindowType(t *testing.T) {
	for _, wt := range WindowTypes {
		got, ok := ParseWindowType(string(wt))
		if !ok || got != wt {
			t.Errorf("ParseWindowType(%q) = %q, %v", wt, got, ok)
		}
		got, ok = ParseWindowType(wt.String())
		if !ok || got != wt {
			t.Errorf("ParseWindowType(%q) = %q, %v", wt.String(), got, ok)
		}
	}
	_, ok := ParseWindowType("skylight")
	assert.False(t, ok)
}

func TestShutterConfigCounts(t *testing.T) {
	tests := []struct {
		sc          ShutterConfig
		glass, mesh int
	}{
		{Shutters2G, 2, 0},
		{Shutters3G, 3, 0},
		{Shutters2G1M, 2, 1},
		{Shutters4G, 4, 0},
		{Shutters4G2M, 4, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.glass, tt.sc.GlassShutters(), string(tt.sc))
		assert.Equal(t, tt.mesh, tt.sc.MeshShutters(), string(tt.sc))
	}
}

func TestNewSlidingConfig(t *testing.T) {
	s := NewSlidingConfig(Shutters2G)
	assert.Equal(t, 2, s.TrackType)
	assert.Len(t, s.Shutters, 2)

	s = NewSlidingConfig(Shutters2G1M)
	assert.Equal(t, 3, s.TrackType)
}

func TestGridCellDefaultsToGlass(t *testing.T) {
	g := GridConfig{
		VerticalDividers: []float64{0.5},
		Cells: []GridCell{
			{Row: 0, Col: 1, Type: CellDoor, HingeSide: HingeRight},
			{Row: 0, Col: 1, Type: CellFixed},
		},
	}
	assert.Equal(t, CellGlass, g.Cell(0, 0).Type)
	assert.Equal(t, CellDoor, g.Cell(0, 1).Type, "first entry wins")
}

func TestPartitionPanelDefault(t *testing.T) {
	p := PartitionConfig{Count: 3, Panels: []PartitionPanel{{Type: PanelHinged}}}
	assert.Equal(t, PanelHinged, p.Panel(0).Type)
	assert.Equal(t, PanelFixed, p.Panel(2).Type)
	assert.Equal(t, PanelFixed, p.Panel(-1).Type)
}

func TestFixedPanelFirstWins(t *testing.T) {
	cfg := StructureConfig{FixedPanels: []FixedPanel{
		{Position: PositionTop, Size: 300},
		{Position: PositionTop, Size: 500},
	}}
	p, ok := cfg.FixedPanel(PositionTop)
	require.True(t, ok)
	assert.Equal(t, 300.0, p.Size)
	_, ok = cfg.FixedPanel(PositionLeft)
	assert.False(t, ok)
}

func TestOverallWidth(t *testing.T) {
	cfg := StructureConfig{Type: TypeSliding, Width: 1500}
	assert.Equal(t, 1500.0, cfg.OverallWidth())

	cfg = StructureConfig{
		Type:  TypeCorner,
		Width: 10,
		Corner: &CornerConfig{
			Left:      SubConfig{Type: TypeSliding, Width: 1000},
			Right:     SubConfig{Type: TypeCasement, Width: 800},
			PostWidth: 80,
		},
	}
	assert.Equal(t, 1880.0, cfg.OverallWidth())
}

func TestIsFramed(t *testing.T) {
	assert.True(t, StructureConfig{Type: TypeSliding}.IsFramed())
	assert.True(t, StructureConfig{Type: TypeVentilator}.IsFramed())
	assert.True(t, StructureConfig{Type: TypeMirror}.IsFramed())
	assert.False(t, StructureConfig{Type: TypeMirror, Mirror: &MirrorConfig{Frameless: true}}.IsFramed())
	assert.False(t, StructureConfig{Type: TypeGlassPartition}.IsFramed())
	assert.False(t, StructureConfig{Type: TypeCorner}.IsFramed())
	assert.False(t, StructureConfig{Type: TypeLouvers}.IsFramed())
}

func TestSideConfigInheritsShared(t *testing.T) {
	cfg := StructureConfig{
		Type:   TypeCorner,
		Height: 1200,
		Series: DefaultSeries(),
		Glass:  GlassSpec{Type: "Clear", Thickness: 5},
		Color:  "bronze",
	}
	side := SubConfig{Type: TypeSliding, Width: 900, Sliding: NewSlidingConfig(Shutters2G)}
	got := cfg.SideConfig(side)
	assert.Equal(t, TypeSliding, got.Type)
	assert.Equal(t, 900.0, got.Width)
	assert.Equal(t, 1200.0, got.Height)
	assert.Equal(t, "bronze", got.Color)
	assert.Equal(t, cfg.Series.ID, got.Series.ID)
	assert.Same(t, side.Sliding, got.Sliding)
}

func TestStructureConfigJSONRoundTrip(t *testing.T) {
	configs := []StructureConfig{
		{
			Type:        TypeSliding,
			Width:       1500,
			Height:      1200,
			Series:      DefaultSeries(),
			FixedPanels: []FixedPanel{{Position: PositionTop, Size: 300}},
			Glass:       GlassSpec{Type: "Toughened", Thickness: 6, DGU: "6-12-6"},
			Color:       "white",
			Georgian: GeorgianConfig{Patterns: map[string]GeorgianPattern{
				DefaultGeorgianKey: {Horizontal: BarSet{Count: 2, Offset: 100, Gap: 200}},
				"shutter:1":        {Vertical: BarSet{Count: 1, Offset: 50}},
			}},
			Sliding: &SlidingConfig{
				TrackType:     3,
				ShutterConfig: Shutters2G1M,
				Shutters: []ShutterOption{
					{Fixed: true},
					{Handle: &HandlePosition{X: 0.1, Y: 0.5}},
				},
			},
		},
		{
			Type:   TypeVentilator,
			Width:  600,
			Height: 600,
			Series: DefaultSeries(),
			Grid: &GridConfig{
				VerticalDividers:   []float64{0.5},
				HorizontalDividers: []float64{},
				Cells: []GridCell{
					{Row: 0, Col: 0, Type: CellLouvers},
					{Row: 0, Col: 1, Type: CellExhaustFan},
				},
			},
		},
		{
			Type:   TypeCorner,
			Height: 1200,
			Series: DefaultSeries(),
			Corner: &CornerConfig{
				Left:      SubConfig{Type: TypeSliding, Width: 1000, Sliding: NewSlidingConfig(Shutters3G)},
				Right:     SubConfig{Type: TypeCasement, Width: 700, Grid: &GridConfig{Cells: []GridCell{{Type: CellDoor, HingeSide: HingeLeft}}}},
				PostWidth: 80,
			},
		},
		{
			Type:    TypeLouvers,
			Width:   900,
			Height:  2100,
			Series:  DefaultSeries(),
			Louvers: &LouverConfig{Orientation: LouverHorizontal, Pattern: []LouverSegment{{Kind: SegmentProfile, Size: 50}, {Kind: SegmentGap, Size: 25}}},
		},
		{
			Type:   TypeMirror,
			Width:  600,
			Height: 900,
			Series: DefaultSeries(),
			Mirror: &MirrorConfig{Shape: ShapeCapsule, Frameless: true, CornerRadius: 40},
		},
		{
			Type:      TypeGlassPartition,
			Width:     3000,
			Height:    2400,
			Series:    DefaultSeries(),
			Partition: &PartitionConfig{Count: 3, Panels: []PartitionPanel{{Type: PanelFixed}, {Type: PanelSliding, Framing: true}, {Type: PanelHinged}}, HasTopChannel: true},
		},
	}

	for _, cfg := range configs {
		data, err := json.Marshal(cfg)
		require.NoError(t, err)
		var got StructureConfig
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, cfg, got, "round trip of %s", cfg.Type)
	}
}
