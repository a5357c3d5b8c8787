package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanelRefKey(t *testing.T) {
	tests := []struct {
		ref  PanelRef
		want string
	}{
		{ShutterRef(1), "shutter:1"},
		{CellRef(0, 2), "cell:0:2"},
		{PartitionRef(3), "partition:3"},
		{FixedEdgeRef(PositionTop), "fixed:top"},
		{MirrorRef(), "mirror"},
		{ShutterRef(0).WithSide(PositionLeft), "left/shutter:0"},
		{CellRef(1, 1).WithSide(PositionRight), "right/cell:1:1"},
	}
	for _, tt := range tests {
		if got := tt.ref.Key(); got != tt.want {
			t.Errorf("Key() = %q, want %q", got, tt.want)
		}
		parsed, err := ParsePanelRef(tt.want)
		require.NoError(t, err, tt.want)
		assert.Equal(t, tt.ref, parsed)
	}
}

func TestPanelRefLocal(t *testing.T) {
	ref := CellRef(0, 1).WithSide(PositionLeft)
	assert.Equal(t, "cell:0:1", ref.Local().Key())
	assert.Equal(t, PositionLeft, ref.Side, "Local does not modify the receiver")
}

func TestParsePanelRefErrors(t *testing.T) {
	for _, key := range []string{"", "door:1", "shutter", "shutter:x", "cell:1", "cell:1:y", "fixed", "mirror:1", "fixed:middle", "diag/fixed:top", "top/shutter:0"} {
		_, err := ParsePanelRef(key)
		assert.Error(t, err, key)
	}
}

func TestGeorgianPatternFor(t *testing.T) {
	g := GeorgianConfig{Patterns: map[string]GeorgianPattern{
		DefaultGeorgianKey: {Horizontal: BarSet{Count: 1}},
		"shutter:1":        {Horizontal: BarSet{Count: 3}},
	}}

	p, ok := g.PatternFor(ShutterRef(1))
	require.True(t, ok)
	assert.Equal(t, 3, p.Horizontal.Count)

	p, ok = g.PatternFor(ShutterRef(1).WithSide(PositionRight))
	require.True(t, ok)
	assert.Equal(t, 3, p.Horizontal.Count, "corner side panels use their local key")

	p, ok = g.PatternFor(ShutterRef(0))
	require.True(t, ok)
	assert.Equal(t, 1, p.Horizontal.Count)

	_, ok = GeorgianConfig{}.PatternFor(ShutterRef(0))
	assert.False(t, ok)
}
