package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlassSpecDescription(t *testing.T) {
	tests := []struct {
		spec GlassSpec
		want string
	}{
		{GlassSpec{Type: "Clear", Thickness: 5}, "5mm Clear"},
		{GlassSpec{Thickness: 5}, "5mm Clear"},
		{GlassSpec{Type: "Toughened"}, "Toughened"},
		{GlassSpec{Type: "Clear", Thickness: 6.38, Lamination: "PVB 0.38"}, "6.38mm Clear (PVB 0.38)"},
		{GlassSpec{Type: "Clear", Thickness: 24, DGU: "6-12-6"}, "24mm Clear DGU 6-12-6"},
		{GlassSpec{Type: "Tinted", Thickness: 5, CustomName: "Bronze"}, "5mm Tinted - Bronze"},
	}
	for _, tt := range tests {
		if got := tt.spec.Description(); got != tt.want {
			t.Errorf("Description() = %q, want %q", got, tt.want)
		}
	}
}

func TestEffectiveStandardLength(t *testing.T) {
	assert.Equal(t, DefaultStandardLength, ProfileSpec{}.EffectiveStandardLength())
	assert.Equal(t, 3657.6, ProfileSpec{StandardLength: 3657.6}.EffectiveStandardLength())
}

func TestFrameWidths(t *testing.T) {
	s := NewProfileSeries("test")
	s.Profiles[ProfileOuterFrame] = ProfileSpec{Width: 60}

	h, v := s.FrameWidths()
	assert.Equal(t, 60.0, h)
	assert.Equal(t, 60.0, v)

	s.Profiles[ProfileOuterFrameVertical] = ProfileSpec{Width: 75}
	h, v = s.FrameWidths()
	assert.Equal(t, 60.0, h)
	assert.Equal(t, 75.0, v)
}

func TestSeriesWidthMissingKey(t *testing.T) {
	s := NewProfileSeries("empty")
	assert.Zero(t, s.Width(ProfileMullion))
	assert.Len(t, s.ID, 8)
}

func TestDefaultSeries(t *testing.T) {
	s := DefaultSeries()
	assert.Equal(t, 60.0, s.Width(ProfileOuterFrame))
	assert.Equal(t, 45.0, s.Width(ProfileShutterHandle))
	assert.Equal(t, 25.0, s.Width(ProfileShutterInterlock))
	assert.NotEmpty(t, s.Hardware)
	for _, h := range s.Hardware {
		assert.NotEqual(t, HardwareAuto, h.Category, h.Name)
	}
}
