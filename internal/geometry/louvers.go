package geometry

import (
	"math"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// maxLouverSegments bounds the segments emitted for one louver structure.
const maxLouverSegments = 10000

// louvers repeats the profile/gap pattern along the structure's axis until
// the end is reached. Vertical louvers advance down the height with blades
// spanning the width; horizontal louvers advance across the width. Segments
// shorter than model.MinLouverSegment are skipped.
func (b *builder) louvers(inner model.Rect) {
	l := b.cfg.Louvers
	if l == nil {
		return
	}
	var period float64
	for _, seg := range l.Pattern {
		if seg.Size >= model.MinLouverSegment {
			period += seg.Size
		}
	}
	if period <= 0 || math.IsInf(period, 0) {
		return
	}

	horizontal := l.Orientation == model.LouverHorizontal
	start, end := inner.Y, inner.Bottom()
	if horizontal {
		start, end = inner.X, inner.Right()
	}

	pos := start
	steps := 0
	for pos < end {
		for _, seg := range l.Pattern {
			if pos >= end {
				break
			}
			if !(seg.Size >= model.MinLouverSegment) {
				continue
			}
			if steps++; steps > maxLouverSegments || pos+seg.Size <= pos {
				return
			}
			size := math.Min(seg.Size, end-pos)
			if seg.Kind == model.SegmentProfile {
				if horizontal {
					b.segment(model.ProfileLouverProfile, "", model.Rect{X: pos, Y: inner.Y, W: size, H: inner.H}, inner.H, model.LayerMain)
				} else {
					b.segment(model.ProfileLouverProfile, "", model.Rect{X: inner.X, Y: pos, W: inner.W, H: size}, inner.W, model.LayerMain)
				}
			}
			pos += seg.Size
		}
	}
}

// mirror emits a single shaped pane filling the inner rectangle.
func (b *builder) mirror(inner model.Rect) {
	m := model.MirrorConfig{Shape: model.ShapeRectangle}
	if b.cfg.Mirror != nil {
		m = *b.cfg.Mirror
	}
	idx := b.glass(model.MirrorRef(), inner)
	if idx < 0 {
		return
	}
	shape, radius := MirrorRadius(m, inner.W, inner.H)
	b.m.Glass[idx].Shape = shape
	b.m.Glass[idx].CornerRadius = radius
}

// MirrorRadius resolves the shape and effective corner radius of a w x h
// mirror pane.
func MirrorRadius(m model.MirrorConfig, w, h float64) (model.MirrorShape, float64) {
	half := math.Min(w, h) / 2
	switch m.Shape {
	case model.ShapeRounded:
		return model.ShapeRounded, math.Min(math.Max(m.CornerRadius, 0), half)
	case model.ShapeCapsule:
		return model.ShapeCapsule, half
	case model.ShapeOval:
		return model.ShapeOval, half
	default:
		return model.ShapeRectangle, 0
	}
}
