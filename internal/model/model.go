package model

import "slices"

// WindowType selects the layout rules applied to a structure.
type WindowType string

const (
	TypeSliding        WindowType = "sliding"
	TypeCasement       WindowType = "casement"
	TypeVentilator     WindowType = "ventilator"
	TypeGlassPartition WindowType = "glass_partition"
	TypeCorner         WindowType = "corner"
	TypeMirror         WindowType = "mirror"
	TypeLouvers        WindowType = "louvers"
)

// WindowTypes lists every supported type in display order.
var WindowTypes = []WindowType{
	TypeSliding, TypeCasement, TypeVentilator, TypeGlassPartition,
	TypeCorner, TypeMirror, TypeLouvers,
}

func (t WindowType) String() string {
	switch t {
	case TypeSliding:
		return "Sliding"
	case TypeCasement:
		return "Casement"
	case TypeVentilator:
		return "Ventilator"
	case TypeGlassPartition:
		return "Glass Partition"
	case TypeCorner:
		return "Corner"
	case TypeMirror:
		return "Mirror"
	case TypeLouvers:
		return "Louvers"
	default:
		return string(t)
	}
}

// ParseWindowType accepts either the stored value or the display name.
func ParseWindowType(s string) (WindowType, bool) {
	for _, t := range WindowTypes {
		if s == string(t) || s == t.String() {
			return t, true
		}
	}
	return "", false
}

// Position is an edge of the structure.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
)

// FixedPanel is a non-operable glass section along one edge. Size is measured
// from the outer edge of the structure and includes the frame and divider.
type FixedPanel struct {
	Position Position `json:"position"`
	Size     float64  `json:"size"` // mm
}

// HandlePosition is a handle location relative (0-1) to its panel.
type HandlePosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ShutterConfig names a sliding shutter arrangement.
type ShutterConfig string

const (
	Shutters2G   ShutterConfig = "2G"
	Shutters3G   ShutterConfig = "3G"
	Shutters2G1M ShutterConfig = "2G1M"
	Shutters4G   ShutterConfig = "4G"
	Shutters4G2M ShutterConfig = "4G2M"
)

// GlassShutters returns the number of glazed shutters in the arrangement.
func (s ShutterConfig) GlassShutters() int {
	switch s {
	case Shutters3G:
		return 3
	case Shutters4G, Shutters4G2M:
		return 4
	default:
		return 2
	}
}

// MeshShutters returns the number of mesh shutters in the arrangement.
func (s ShutterConfig) MeshShutters() int {
	switch s {
	case Shutters2G1M:
		return 1
	case Shutters4G2M:
		return 2
	default:
		return 0
	}
}

// ShutterOption holds per-shutter choices. Fixed only changes the indicator.
type ShutterOption struct {
	Fixed  bool            `json:"fixed"`
	Handle *HandlePosition `json:"handle,omitempty"`
}

// SlidingConfig describes a sliding window.
type SlidingConfig struct {
	TrackType     int             `json:"track_type"` // 2 or 3
	ShutterConfig ShutterConfig   `json:"shutter_config"`
	Shutters      []ShutterOption `json:"shutters"`
}

// CellType tags one cell of a casement/ventilator grid.
type CellType string

const (
	CellGlass      CellType = "glass"
	CellFixed      CellType = "fixed"
	CellDoor       CellType = "door"
	CellLouvers    CellType = "louvers"
	CellExhaustFan CellType = "exhaust_fan"
)

// HingeSide is the side a door is hung from.
type HingeSide string

const (
	HingeLeft  HingeSide = "left"
	HingeRight HingeSide = "right"
)

// GridCell tags one cell; cells not listed are plain glass.
type GridCell struct {
	Row       int             `json:"row"`
	Col       int             `json:"col"`
	Type      CellType        `json:"type"`
	HingeSide HingeSide       `json:"hinge_side,omitempty"`
	Handle    *HandlePosition `json:"handle,omitempty"`
}

// NormalizeDividers returns the dividers strictly inside (0, 1), sorted
// and without duplicates. Column and row indices of a grid count across
// the normalised dividers.
func NormalizeDividers(in []float64) []float64 {
	if in == nil {
		return nil
	}
	out := make([]float64, 0, len(in))
	for _, f := range in {
		if f > 0 && f < 1 {
			out = append(out, f)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// GridConfig describes a casement or ventilator grid. Divider positions are
// relative (0-1) to the inner width/height.
type GridConfig struct {
	VerticalDividers   []float64  `json:"vertical_dividers"`
	HorizontalDividers []float64  `json:"horizontal_dividers"`
	Cells              []GridCell `json:"cells"`
}

// Cell returns the tag for (row, col), defaulting to plain glass.
func (g GridConfig) Cell(row, col int) GridCell {
	for _, c := range g.Cells {
		if c.Row == row && c.Col == col {
			return c
		}
	}
	return GridCell{Row: row, Col: col, Type: CellGlass}
}

// PartitionPanelType describes how a partition panel moves.
type PartitionPanelType string

const (
	PanelFixed   PartitionPanelType = "fixed"
	PanelSliding PartitionPanelType = "sliding"
	PanelHinged  PartitionPanelType = "hinged"
)

// PartitionPanel is one panel of a glass partition.
type PartitionPanel struct {
	Type    PartitionPanelType `json:"type"`
	Framing bool               `json:"framing"`
	Handle  *HandlePosition    `json:"handle,omitempty"`
}

// MaxPartitionPanels caps the panels of one partition.
const MaxPartitionPanels = 64

// PartitionConfig describes a glass partition.
type PartitionConfig struct {
	Count         int              `json:"count"`
	Panels        []PartitionPanel `json:"panels"`
	HasTopChannel bool             `json:"has_top_channel"`
}

// PanelCount returns Count limited to [0, MaxPartitionPanels].
func (p PartitionConfig) PanelCount() int {
	return min(max(p.Count, 0), MaxPartitionPanels)
}

// Panel returns panel i, defaulting to an unframed fixed panel.
func (p PartitionConfig) Panel(i int) PartitionPanel {
	if i >= 0 && i < len(p.Panels) {
		return p.Panels[i]
	}
	return PartitionPanel{Type: PanelFixed}
}

// SubConfig is one side of a corner window. Only Sliding, Casement and
// Ventilator are valid types.
type SubConfig struct {
	Type        WindowType     `json:"type"`
	Width       float64        `json:"width"` // mm
	Sliding     *SlidingConfig `json:"sliding,omitempty"`
	Grid        *GridConfig    `json:"grid,omitempty"`
	FixedPanels []FixedPanel   `json:"fixed_panels,omitempty"`
	Georgian    GeorgianConfig `json:"georgian"`
}

// IsValidCornerSide reports whether t may be used inside a corner window.
func IsValidCornerSide(t WindowType) bool {
	return t == TypeSliding || t == TypeCasement || t == TypeVentilator
}

// CornerConfig joins two sub-structures with a post.
type CornerConfig struct {
	Left      SubConfig `json:"left"`
	Right     SubConfig `json:"right"`
	PostWidth float64   `json:"post_width"` // mm
}

// LouverOrientation is the axis louver segments advance along.
type LouverOrientation string

const (
	LouverVertical   LouverOrientation = "vertical"
	LouverHorizontal LouverOrientation = "horizontal"
)

// LouverSegmentKind is either a profile or a gap.
type LouverSegmentKind string

const (
	SegmentProfile LouverSegmentKind = "profile"
	SegmentGap     LouverSegmentKind = "gap"
)

// MinLouverSegment is the smallest louver profile or gap in mm. Shorter
// segments are ignored.
const MinLouverSegment = 1.0

// LouverSegment is one entry of a repeating louver pattern.
type LouverSegment struct {
	Kind LouverSegmentKind `json:"kind"`
	Size float64           `json:"size"` // mm
}

// LouverConfig describes a standalone louver structure.
type LouverConfig struct {
	Orientation LouverOrientation `json:"orientation"`
	Pattern     []LouverSegment   `json:"pattern"`
}

// MirrorShape is the outline of a mirror pane.
type MirrorShape string

const (
	ShapeRectangle MirrorShape = "rectangle"
	ShapeRounded   MirrorShape = "rounded"
	ShapeCapsule   MirrorShape = "capsule"
	ShapeOval      MirrorShape = "oval"
)

// MirrorConfig describes a mirror.
type MirrorConfig struct {
	Shape        MirrorShape `json:"shape"`
	Frameless    bool        `json:"frameless"`
	CornerRadius float64     `json:"corner_radius"` // mm
}

// MaxGeorgianBars caps the bars of one BarSet.
const MaxGeorgianBars = 100

// BarSet places Count bars at Offset + i*Gap from a pane's origin.
type BarSet struct {
	Count  int     `json:"count"`
	Offset float64 `json:"offset"` // mm
	Gap    float64 `json:"gap"`    // mm
}

// GeorgianPattern is the decorative bar grid over one pane.
type GeorgianPattern struct {
	Horizontal BarSet `json:"horizontal"`
	Vertical   BarSet `json:"vertical"`
}

// DefaultGeorgianKey is the pattern key shared by panes without an override.
const DefaultGeorgianKey = "default"

// GeorgianConfig maps PanelRef keys (or DefaultGeorgianKey) to patterns.
type GeorgianConfig struct {
	Patterns map[string]GeorgianPattern `json:"patterns,omitempty"`
}

// PatternFor returns the override for ref, else the default pattern.
func (g GeorgianConfig) PatternFor(ref PanelRef) (GeorgianPattern, bool) {
	if p, ok := g.Patterns[ref.Local().Key()]; ok {
		return p, true
	}
	p, ok := g.Patterns[DefaultGeorgianKey]
	return p, ok
}

// StructureConfig is the complete description of one designed item.
type StructureConfig struct {
	Type        WindowType     `json:"type"`
	Width       float64        `json:"width"`  // mm, ignored for corner windows
	Height      float64        `json:"height"` // mm
	Series      ProfileSeries  `json:"series"`
	FixedPanels []FixedPanel   `json:"fixed_panels"`
	Glass       GlassSpec      `json:"glass"`
	Color       string         `json:"color"`
	Georgian    GeorgianConfig `json:"georgian"`

	Sliding   *SlidingConfig   `json:"sliding,omitempty"`
	Grid      *GridConfig      `json:"grid,omitempty"`
	Partition *PartitionConfig `json:"partition,omitempty"`
	Corner    *CornerConfig    `json:"corner,omitempty"`
	Louvers   *LouverConfig    `json:"louvers,omitempty"`
	Mirror    *MirrorConfig    `json:"mirror,omitempty"`
}

// OverallWidth returns the structure width, summing the corner parts.
func (c StructureConfig) OverallWidth() float64 {
	if c.Type == TypeCorner && c.Corner != nil {
		return c.Corner.Left.Width + c.Corner.Right.Width + c.Corner.PostWidth
	}
	return c.Width
}

// FixedPanel returns the first fixed panel on the given edge.
func (c StructureConfig) FixedPanel(pos Position) (FixedPanel, bool) {
	for _, p := range c.FixedPanels {
		if p.Position == pos {
			return p, true
		}
	}
	return FixedPanel{}, false
}

// IsFramed reports whether the structure carries an outer frame.
func (c StructureConfig) IsFramed() bool {
	switch c.Type {
	case TypeGlassPartition, TypeCorner, TypeLouvers:
		return false
	case TypeMirror:
		return c.Mirror == nil || !c.Mirror.Frameless
	default:
		return true
	}
}

// SideConfig expands one side of a corner window into a full structure that
// shares the corner's height, series, glass and colour.
func (c StructureConfig) SideConfig(side SubConfig) StructureConfig {
	return StructureConfig{
		Type:        side.Type,
		Width:       side.Width,
		Height:      c.Height,
		Series:      c.Series,
		FixedPanels: side.FixedPanels,
		Glass:       c.Glass,
		Color:       c.Color,
		Georgian:    side.Georgian,
		Sliding:     side.Sliding,
		Grid:        side.Grid,
	}
}

// NewSlidingConfig returns a two-track sliding layout with default options.
func NewSlidingConfig(sc ShutterConfig) *SlidingConfig {
	track := 2
	if sc.MeshShutters() > 0 || sc == Shutters3G {
		track = 3
	}
	return &SlidingConfig{
		TrackType:     track,
		ShutterConfig: sc,
		Shutters:      make([]ShutterOption, sc.GlassShutters()),
	}
}
