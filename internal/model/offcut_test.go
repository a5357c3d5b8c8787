package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectOffcuts(t *testing.T) {
	bars := []Bar{
		{StandardLength: 4876.8, Pieces: []float64{4000}, Used: 4000, Remaining: 876.8},
		{StandardLength: 4876.8, Pieces: []float64{2000, 1000}, Used: 3000, Remaining: 1876.8},
		{StandardLength: 4876.8, Pieces: []float64{4500}, Used: 4500, Remaining: 376.8},
		{StandardLength: 4876.8, Pieces: []float64{6000}, Used: 6000, Oversized: true},
	}

	offcuts := DetectOffcuts(ProfileMullion, bars, 500)
	require.Len(t, offcuts, 2)
	assert.Equal(t, 1876.8, offcuts[0].Length, "longest first")
	assert.Equal(t, 1, offcuts[0].BarIndex)
	assert.Equal(t, 876.8, offcuts[1].Length)
	assert.Equal(t, ProfileMullion, offcuts[0].ProfileKey)
	assert.InDelta(t, 2753.6, TotalOffcutLength(offcuts), 1e-9)
	assert.InDelta(t, 376.8, Waste(bars, 500), 1e-9)
}

func TestDetectOffcutsDefaultMinimum(t *testing.T) {
	bars := []Bar{{StandardLength: 1000, Pieces: []float64{600}, Used: 600, Remaining: 400}}
	assert.Empty(t, DetectOffcuts(ProfileOuterFrame, bars, 0))
	assert.Equal(t, 400.0, Waste(bars, 0))
}

func TestDetectOffcutsNone(t *testing.T) {
	assert.Empty(t, DetectOffcuts(ProfileOuterFrame, nil, 500))
	assert.Zero(t, TotalOffcutLength(nil))
}
