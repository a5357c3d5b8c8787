package model

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ProfileKey names one profile member of a series.
type ProfileKey string

const (
	ProfileOuterFrame         ProfileKey = "outerFrame"
	ProfileOuterFrameVertical ProfileKey = "outerFrameVertical"
	ProfileFixedFrame         ProfileKey = "fixedFrame"
	ProfileShutterTop         ProfileKey = "shutterTop"
	ProfileShutterBottom      ProfileKey = "shutterBottom"
	ProfileShutterHandle      ProfileKey = "shutterHandle"
	ProfileShutterInterlock   ProfileKey = "shutterInterlock"
	ProfileShutterMeeting     ProfileKey = "shutterMeeting"
	ProfileMullion            ProfileKey = "mullion"
	ProfileCasementShutter    ProfileKey = "casementShutter"
	ProfileLouverBlade        ProfileKey = "louverBlade"
	ProfileLouverProfile      ProfileKey = "louverProfile"
	ProfilePartitionChannel   ProfileKey = "partitionChannel"
	ProfileCornerPost         ProfileKey = "cornerPost"
	ProfileGlassGrid          ProfileKey = "glassGridProfile"
)

// DefaultStandardLength is the stock bar length used when a profile does not
// declare one (16 ft).
const DefaultStandardLength = 4876.8

// ProfileSpec holds the catalogue data for one profile key.
type ProfileSpec struct {
	Width          float64 `json:"width"`            // mm, visible face width
	StandardLength float64 `json:"standard_length"`  // mm, 0 = DefaultStandardLength
	WeightPerMeter float64 `json:"weight_per_meter"` // kg/m
}

// EffectiveStandardLength returns the bar length used for stock cutting.
func (p ProfileSpec) EffectiveStandardLength() float64 {
	if p.StandardLength > 0 {
		return p.StandardLength
	}
	return DefaultStandardLength
}

// HardwareCategory says which operable units a hardware item is counted
// against.
type HardwareCategory string

const (
	HardwareAuto      HardwareCategory = ""
	HardwareShutter   HardwareCategory = "shutter"
	HardwareDoor      HardwareCategory = "door"
	HardwareLouver    HardwareCategory = "louver"
	HardwarePanel     HardwareCategory = "panel"
	HardwareStructure HardwareCategory = "structure"
)

// HardwareItem is a fitting consumed per operable unit.
type HardwareItem struct {
	Name            string           `json:"name"`
	Category        HardwareCategory `json:"category,omitempty"`
	QuantityPerUnit float64          `json:"quantity_per_unit"`
	UnitCost        float64          `json:"unit_cost"`
}

// ProfileSeries is a named catalogue of profile dimensions and hardware.
type ProfileSeries struct {
	ID       string                     `json:"id"`
	Name     string                     `json:"name"`
	Profiles map[ProfileKey]ProfileSpec `json:"profiles"`
	Hardware []HardwareItem             `json:"hardware"`
}

// NewProfileSeries creates an empty series with a generated ID.
func NewProfileSeries(name string) ProfileSeries {
	return ProfileSeries{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Profiles: map[ProfileKey]ProfileSpec{},
		Hardware: []HardwareItem{},
	}
}

// Spec returns the profile spec for key; missing keys yield a zero spec.
func (s ProfileSeries) Spec(key ProfileKey) ProfileSpec {
	return s.Profiles[key]
}

// Width returns the face width of key, 0 when the series lacks it.
func (s ProfileSeries) Width(key ProfileKey) float64 {
	return s.Profiles[key].Width
}

// FrameWidths returns the horizontal (top/bottom) and vertical (left/right)
// outer frame widths.
func (s ProfileSeries) FrameWidths() (horizontal, vertical float64) {
	horizontal = s.Width(ProfileOuterFrame)
	vertical = horizontal
	if v := s.Width(ProfileOuterFrameVertical); v > 0 {
		vertical = v
	}
	return horizontal, vertical
}

// GlassSpec describes the glazing of a structure.
type GlassSpec struct {
	Type       string  `json:"type"`
	Thickness  float64 `json:"thickness"` // mm
	Lamination string  `json:"lamination,omitempty"`
	DGU        string  `json:"dgu,omitempty"`
	CustomName string  `json:"custom_name,omitempty"`
}

// Description is the human-readable key used to aggregate glass areas.
func (g GlassSpec) Description() string {
	var b strings.Builder
	typ := g.Type
	if typ == "" {
		typ = "Clear"
	}
	if g.Thickness > 0 {
		fmt.Fprintf(&b, "%gmm %s", g.Thickness, typ)
	} else {
		b.WriteString(typ)
	}
	if g.Lamination != "" {
		fmt.Fprintf(&b, " (%s)", g.Lamination)
	}
	if g.DGU != "" {
		fmt.Fprintf(&b, " DGU %s", g.DGU)
	}
	if g.CustomName != "" {
		fmt.Fprintf(&b, " - %s", g.CustomName)
	}
	return b.String()
}

// DefaultSeries returns a typical 2-track aluminium sliding/casement series.
func DefaultSeries() ProfileSeries {
	s := NewProfileSeries("Domal 27mm")
	s.Profiles = map[ProfileKey]ProfileSpec{
		ProfileOuterFrame:       {Width: 60, WeightPerMeter: 0.95},
		ProfileFixedFrame:       {Width: 40, WeightPerMeter: 0.62},
		ProfileShutterTop:       {Width: 55, WeightPerMeter: 0.58},
		ProfileShutterBottom:    {Width: 55, WeightPerMeter: 0.64},
		ProfileShutterHandle:    {Width: 45, WeightPerMeter: 0.61},
		ProfileShutterInterlock: {Width: 25, WeightPerMeter: 0.55},
		ProfileShutterMeeting:   {Width: 30, WeightPerMeter: 0.57},
		ProfileMullion:          {Width: 70, WeightPerMeter: 1.10},
		ProfileCasementShutter:  {Width: 65, WeightPerMeter: 0.90},
		ProfileLouverBlade:      {Width: 100, WeightPerMeter: 0.70},
		ProfileLouverProfile:    {Width: 50, WeightPerMeter: 0.45},
		ProfilePartitionChannel: {Width: 40, WeightPerMeter: 0.80},
		ProfileCornerPost:       {Width: 80, WeightPerMeter: 1.40},
		ProfileGlassGrid:        {Width: 20, StandardLength: 3657.6, WeightPerMeter: 0.20},
	}
	s.Hardware = []HardwareItem{
		{Name: "Sliding Roller", Category: HardwareShutter, QuantityPerUnit: 2, UnitCost: 45},
		{Name: "Sliding Lock", Category: HardwareShutter, QuantityPerUnit: 1, UnitCost: 120},
		{Name: "Friction Stay", Category: HardwareDoor, QuantityPerUnit: 2, UnitCost: 180},
		{Name: "Casement Handle", Category: HardwareDoor, QuantityPerUnit: 1, UnitCost: 250},
		{Name: "Louver Clip", Category: HardwareLouver, QuantityPerUnit: 4, UnitCost: 15},
		{Name: "Patch Fitting", Category: HardwarePanel, QuantityPerUnit: 2, UnitCost: 650},
	}
	return s
}
