package geometry

import (
	"math"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// span is a [start, end) interval along one axis.
type span struct{ start, end float64 }

// spans splits [origin, origin+length) at the divider fractions, leaving a
// mullion of the given width centred on each divider.
func spans(origin, length, mullion float64, fracs []float64) []span {
	out := make([]span, 0, len(fracs)+1)
	start := origin
	for _, f := range fracs {
		c := origin + f*length
		out = append(out, span{start, c - mullion/2})
		start = c + mullion/2
	}
	return append(out, span{start, origin + length})
}

func (b *builder) grid(inner model.Rect) {
	g := model.GridConfig{}
	if b.cfg.Grid != nil {
		g = *b.cfg.Grid
	}
	mw := b.cfg.Series.Width(model.ProfileMullion)
	vf := fractions(g.VerticalDividers)
	hf := fractions(g.HorizontalDividers)

	for _, f := range vf {
		c := inner.X + f*inner.W
		b.segment(model.ProfileMullion, "", model.Rect{X: c - mw/2, Y: inner.Y, W: mw, H: inner.H}, inner.H, model.LayerMain)
	}

	cols := spans(inner.X, inner.W, mw, vf)
	rows := spans(inner.Y, inner.H, mw, hf)
	for _, col := range cols {
		w := col.end - col.start
		for _, f := range hf {
			c := inner.Y + f*inner.H
			b.segment(model.ProfileMullion, "", model.Rect{X: col.start, Y: c - mw/2, W: w, H: mw}, w, model.LayerMain)
		}
	}

	for r, row := range rows {
		for c, col := range cols {
			rect := model.Rect{X: col.start, Y: row.start, W: col.end - col.start, H: row.end - row.start}
			if rect.Empty() {
				continue
			}
			b.cell(g.Cell(r, c), rect)
		}
	}
}

func (b *builder) cell(cell model.GridCell, r model.Rect) {
	ref := model.CellRef(cell.Row, cell.Col)
	switch cell.Type {
	case model.CellDoor:
		b.door(ref, cell, r)
	case model.CellLouvers:
		b.louverBlades(ref, r)
	case model.CellExhaustFan:
		b.marker(ref, model.MarkerExhaustFan, r)
	case model.CellFixed:
		if b.glass(ref, r) >= 0 {
			b.marker(ref, model.MarkerFixed, r)
		}
	default:
		b.glass(ref, r)
	}
}

// door emits a mitered shutter frame, its glass and a hinge marker.
func (b *builder) door(ref model.PanelRef, cell model.GridCell, r model.Rect) {
	width := b.cfg.Series.Width(model.ProfileCasementShutter)
	infill := b.miteredFrame(model.ProfileCasementShutter, b.ref(ref).Key(), r, width)
	b.glass(ref, infill)

	kind := model.MarkerHingeLeft
	if cell.HingeSide == model.HingeRight {
		kind = model.MarkerHingeRight
	}
	b.marker(ref, kind, r)
	b.handle(ref, cell.Handle, r, model.HandleVertical)
}

// louverBlades fills r with horizontal blades at the blade-width pitch; the
// last blade is clipped to the cell.
func (b *builder) louverBlades(ref model.PanelRef, r model.Rect) {
	pitch := b.cfg.Series.Width(model.ProfileLouverBlade)
	if pitch <= 0 {
		return
	}
	id := b.ref(ref).Key()
	count := bladeCount(r.H, pitch)
	for i := 0; i < count; i++ {
		y := r.Y + float64(i)*pitch
		h := math.Min(pitch, r.Bottom()-y)
		b.segment(model.ProfileLouverBlade, id, model.Rect{X: r.X, Y: y, W: r.W, H: h}, r.W, model.LayerMain)
	}
}

// bladeCount is ceil(height/pitch), tolerant of floating point noise.
func bladeCount(height, pitch float64) int {
	n := math.Ceil(height/pitch - 1e-9)
	if !(n > 0) {
		return 0
	}
	return int(math.Min(n, maxLouverSegments))
}
