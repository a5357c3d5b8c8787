// Package geometry turns a StructureConfig into placed profile, glass and
// mesh elements.
package geometry

import (
	"math"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// Decompose lays out cfg. It is pure and total: degenerate sizes yield a
// model with HasInnerContent=false, never an error. Corner windows are
// decomposed side by side with the post between them.
func Decompose(cfg model.StructureConfig) model.GeometryModel {
	if cfg.Type == model.TypeCorner {
		return decomposeCorner(cfg)
	}
	return decomposeStructure(cfg, "")
}

// builder accumulates the elements of one structure. side is set when the
// structure is one half of a corner window.
type builder struct {
	cfg   model.StructureConfig
	side  model.Position
	m     model.GeometryModel
	panes []model.PanelRef // parallel to m.Glass
}

func decomposeStructure(cfg model.StructureConfig, side model.Position) model.GeometryModel {
	b := &builder{
		cfg:  cfg,
		side: side,
		m:    model.NewGeometryModel(cfg.Width, cfg.Height),
	}

	fh, fv := b.frame()
	inner := b.fixedPanels(fh, fv)

	b.m.Inner = model.Rect{X: inner.X, Y: inner.Y, W: math.Max(inner.W, 0), H: math.Max(inner.H, 0)}
	b.m.HasInnerContent = inner.W > 0 && inner.H > 0
	if b.m.HasInnerContent {
		switch cfg.Type {
		case model.TypeSliding:
			b.sliding(inner)
		case model.TypeCasement, model.TypeVentilator:
			b.grid(inner)
		case model.TypeGlassPartition:
			b.partition(inner)
		case model.TypeLouvers:
			b.louvers(inner)
		case model.TypeMirror:
			b.mirror(inner)
		}
	}

	b.georgian()
	return b.m
}

// ref scopes r to the builder's corner side.
func (b *builder) ref(r model.PanelRef) model.PanelRef {
	if b.side != "" {
		return r.WithSide(b.side)
	}
	return r
}

// segment emits a profile piece; empty rectangles and non-positive lengths
// are dropped.
func (b *builder) segment(key model.ProfileKey, panelID string, r model.Rect, length float64, layer int) {
	if r.Empty() || length <= 0 {
		return
	}
	b.m.Profiles = append(b.m.Profiles, model.ProfileSegment{
		Key:     key,
		PanelID: panelID,
		Rect:    r,
		Length:  length,
		Layer:   layer,
	})
}

// glass emits a pane for ref. It returns the index of the pane, or -1 when
// the rectangle is empty.
func (b *builder) glass(ref model.PanelRef, r model.Rect) int {
	if r.Empty() {
		return -1
	}
	ref = b.ref(ref)
	b.m.Glass = append(b.m.Glass, model.GlassPane{PanelID: ref.Key(), Rect: r})
	b.panes = append(b.panes, ref)
	return len(b.m.Glass) - 1
}

func (b *builder) mesh(ref model.PanelRef, r model.Rect) {
	if r.Empty() {
		return
	}
	b.m.Mesh = append(b.m.Mesh, model.MeshPane{PanelID: b.ref(ref).Key(), Rect: r, Layer: model.LayerMesh})
}

func (b *builder) marker(ref model.PanelRef, kind model.MarkerKind, r model.Rect) {
	if r.Empty() {
		return
	}
	b.m.Markers = append(b.m.Markers, model.Marker{PanelID: b.ref(ref).Key(), Kind: kind, Rect: r})
}

// handle places h relative to the panel rectangle r.
func (b *builder) handle(ref model.PanelRef, h *model.HandlePosition, r model.Rect, o model.HandleOrientation) {
	if h == nil || r.Empty() {
		return
	}
	b.m.Handles = append(b.m.Handles, model.HandlePlacement{
		PanelID:     b.ref(ref).Key(),
		X:           r.X + h.X*r.W,
		Y:           r.Y + h.Y*r.H,
		Orientation: o,
	})
}

// frame emits the mitered outer frame and returns the horizontal and
// vertical frame offsets (0 for unframed types).
func (b *builder) frame() (fh, fv float64) {
	if !b.cfg.IsFramed() {
		return 0, 0
	}
	fh, fv = b.cfg.Series.FrameWidths()
	vkey := model.ProfileOuterFrame
	if b.cfg.Series.Width(model.ProfileOuterFrameVertical) > 0 {
		vkey = model.ProfileOuterFrameVertical
	}

	w, h := b.cfg.Width, b.cfg.Height
	b.segment(model.ProfileOuterFrame, "", model.Rect{X: 0, Y: 0, W: w, H: fh}, w, model.LayerMain)
	b.segment(model.ProfileOuterFrame, "", model.Rect{X: 0, Y: h - fh, W: w, H: fh}, w, model.LayerMain)
	b.segment(vkey, "", model.Rect{X: 0, Y: fh, W: fv, H: h - 2*fh}, h, model.LayerMain)
	b.segment(vkey, "", model.Rect{X: w - fv, Y: fh, W: fv, H: h - 2*fh}, h, model.LayerMain)
	return fh, fv
}

// fixedPanels resolves the hole edges, emitting the divider and pane of
// each fixed panel, and returns the inner rectangle (possibly degenerate).
// Top and bottom panels are resolved first since left and right panels
// span the hole's height.
func (b *builder) fixedPanels(fh, fv float64) model.Rect {
	w, h := b.cfg.Width, b.cfg.Height
	ff := b.cfg.Series.Width(model.ProfileFixedFrame)

	top, bottom := fh, h-fh
	left, right := fv, w-fv
	span := w - 2*fv

	if p, ok := b.cfg.FixedPanel(model.PositionTop); ok {
		top = p.Size
		ref := model.FixedEdgeRef(model.PositionTop)
		b.segment(model.ProfileFixedFrame, "", model.Rect{X: fv, Y: top - ff, W: span, H: ff}, span, model.LayerMain)
		b.fixedGlass(ref, model.Rect{X: fv, Y: fh, W: span, H: top - ff - fh})
	}
	if p, ok := b.cfg.FixedPanel(model.PositionBottom); ok {
		bottom = h - p.Size
		ref := model.FixedEdgeRef(model.PositionBottom)
		b.segment(model.ProfileFixedFrame, "", model.Rect{X: fv, Y: bottom, W: span, H: ff}, span, model.LayerMain)
		b.fixedGlass(ref, model.Rect{X: fv, Y: bottom + ff, W: span, H: h - fh - bottom - ff})
	}

	holeH := bottom - top
	if p, ok := b.cfg.FixedPanel(model.PositionLeft); ok {
		left = p.Size
		ref := model.FixedEdgeRef(model.PositionLeft)
		b.segment(model.ProfileFixedFrame, "", model.Rect{X: left - ff, Y: top, W: ff, H: holeH}, holeH, model.LayerMain)
		b.fixedGlass(ref, model.Rect{X: fv, Y: top, W: left - ff - fv, H: holeH})
	}
	if p, ok := b.cfg.FixedPanel(model.PositionRight); ok {
		right = w - p.Size
		ref := model.FixedEdgeRef(model.PositionRight)
		b.segment(model.ProfileFixedFrame, "", model.Rect{X: right, Y: top, W: ff, H: holeH}, holeH, model.LayerMain)
		b.fixedGlass(ref, model.Rect{X: right + ff, Y: top, W: w - fv - right - ff, H: holeH})
	}

	return model.Rect{X: left, Y: top, W: right - left, H: bottom - top}
}

func (b *builder) fixedGlass(ref model.PanelRef, r model.Rect) {
	if b.glass(ref, r) >= 0 {
		b.marker(ref, model.MarkerFixed, r)
	}
}

// miteredFrame emits a four-member frame of the given profile inside r and
// returns the rectangle it encloses.
func (b *builder) miteredFrame(key model.ProfileKey, panelID string, r model.Rect, width float64) model.Rect {
	b.segment(key, panelID, model.Rect{X: r.X, Y: r.Y, W: r.W, H: width}, r.W, model.LayerMain)
	b.segment(key, panelID, model.Rect{X: r.X, Y: r.Bottom() - width, W: r.W, H: width}, r.W, model.LayerMain)
	b.segment(key, panelID, model.Rect{X: r.X, Y: r.Y + width, W: width, H: r.H - 2*width}, r.H, model.LayerMain)
	b.segment(key, panelID, model.Rect{X: r.Right() - width, Y: r.Y + width, W: width, H: r.H - 2*width}, r.H, model.LayerMain)
	return model.Rect{X: r.X + width, Y: r.Y + width, W: r.W - 2*width, H: r.H - 2*width}
}

// fractions returns the divider positions strictly inside (0, 1), sorted.
// The input is not modified.
func fractions(in []float64) []float64 {
	return model.NormalizeDividers(in)
}
