package model

// Rect is an axis-aligned rectangle in mm, origin at the structure's top-left.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Area returns W*H.
func (r Rect) Area() float64 { return r.W * r.H }

// Empty reports whether the rectangle has no positive area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Translate shifts the rectangle by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Layer values for placed elements. Mesh shutters sit behind the glass.
const (
	LayerMain = 0
	LayerMesh = -1
)

// ProfileSegment is one cut length of profile. Length is the cut length,
// which for mitered members is the full outer dimension.
type ProfileSegment struct {
	Key     ProfileKey `json:"key"`
	PanelID string     `json:"panel_id,omitempty"`
	Rect
	Length float64 `json:"length"`
	Layer  int     `json:"layer"`
}

// GeorgianBar records one decorative bar on a pane, relative to the pane.
type GeorgianBar struct {
	Horizontal bool    `json:"horizontal"`
	Offset     float64 `json:"offset"`    // mm from the pane's top/left edge
	Thickness  float64 `json:"thickness"` // mm, clipped to the pane
}

// GlassPane is one sheet of glass.
type GlassPane struct {
	PanelID string `json:"panel_id"`
	Rect
	Shape        MirrorShape   `json:"shape,omitempty"`
	CornerRadius float64       `json:"corner_radius,omitempty"`
	GeorgianBars []GeorgianBar `json:"georgian_bars,omitempty"`
}

// MeshPane is an insect-mesh infill.
type MeshPane struct {
	PanelID string `json:"panel_id"`
	Rect
	Layer int `json:"layer"`
}

// HandleOrientation is the direction a handle is drawn in.
type HandleOrientation string

const (
	HandleVertical   HandleOrientation = "vertical"
	HandleHorizontal HandleOrientation = "horizontal"
)

// HandlePlacement is an absolute handle position.
type HandlePlacement struct {
	PanelID     string            `json:"panel_id"`
	X           float64           `json:"x"`
	Y           float64           `json:"y"`
	Orientation HandleOrientation `json:"orientation"`
}

// MarkerKind names a non-material indicator.
type MarkerKind string

const (
	MarkerFixed      MarkerKind = "fixed"
	MarkerSlide      MarkerKind = "slide"
	MarkerHingeLeft  MarkerKind = "hinge_left"
	MarkerHingeRight MarkerKind = "hinge_right"
	MarkerExhaustFan MarkerKind = "exhaust_fan"
)

// Marker is a cosmetic indicator; it contributes no material.
type Marker struct {
	PanelID string     `json:"panel_id"`
	Kind    MarkerKind `json:"kind"`
	Rect
}

// GeometryModel is the flat output of decomposition.
type GeometryModel struct {
	Width           float64           `json:"width"`
	Height          float64           `json:"height"`
	Inner           Rect              `json:"inner"`
	HasInnerContent bool              `json:"has_inner_content"`
	Profiles        []ProfileSegment  `json:"profiles"`
	Glass           []GlassPane       `json:"glass"`
	Mesh            []MeshPane        `json:"mesh"`
	Handles         []HandlePlacement `json:"handles"`
	Markers         []Marker          `json:"markers"`
}

// NewGeometryModel returns an empty model with non-nil element lists.
func NewGeometryModel(width, height float64) GeometryModel {
	return GeometryModel{
		Width:    width,
		Height:   height,
		Profiles: []ProfileSegment{},
		Glass:    []GlassPane{},
		Mesh:     []MeshPane{},
		Handles:  []HandlePlacement{},
		Markers:  []Marker{},
	}
}

// Append copies every element of other into m, shifted by dx, dy.
func (m *GeometryModel) Append(other GeometryModel, dx, dy float64) {
	for _, p := range other.Profiles {
		p.Rect = p.Rect.Translate(dx, dy)
		m.Profiles = append(m.Profiles, p)
	}
	for _, g := range other.Glass {
		g.Rect = g.Rect.Translate(dx, dy)
		m.Glass = append(m.Glass, g)
	}
	for _, ms := range other.Mesh {
		ms.Rect = ms.Rect.Translate(dx, dy)
		m.Mesh = append(m.Mesh, ms)
	}
	for _, h := range other.Handles {
		h.X += dx
		h.Y += dy
		m.Handles = append(m.Handles, h)
	}
	for _, mk := range other.Markers {
		mk.Rect = mk.Rect.Translate(dx, dy)
		m.Markers = append(m.Markers, mk)
	}
}

// ProfileLengths returns cut lengths grouped by profile key.
func (m GeometryModel) ProfileLengths() map[ProfileKey][]float64 {
	out := make(map[ProfileKey][]float64)
	for _, p := range m.Profiles {
		if p.Length <= 0 {
			continue
		}
		out[p.Key] = append(out[p.Key], p.Length)
	}
	return out
}

// GlassArea returns the total glass area in sq mm.
func (m GeometryModel) GlassArea() float64 {
	var total float64
	for _, g := range m.Glass {
		total += g.Area()
	}
	return total
}

// MeshArea returns the total mesh area in sq mm.
func (m GeometryModel) MeshArea() float64 {
	var total float64
	for _, ms := range m.Mesh {
		total += ms.Area()
	}
	return total
}
