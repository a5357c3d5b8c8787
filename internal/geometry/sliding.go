package geometry

import "github.com/piwi3910/GlazeCut/internal/model"

// shutterSlot is the position of one sliding shutter and the stile profile
// on each of its vertical edges.
type shutterSlot struct {
	x, w        float64
	left, right model.ProfileKey
}

// shutterSlots lays out the glass shutters across the inner width. Adjacent
// shutters share one interlock width. In a 4-shutter layout the two
// interlocked pairs butt at the centre on meeting stiles.
func shutterSlots(sc model.ShutterConfig, inner model.Rect, interlock float64) []shutterSlot {
	n := sc.GlassShutters()
	fourTrack := n == 4

	var sw float64
	if fourTrack {
		sw = (inner.W + 2*interlock) / 4
	} else {
		sw = (inner.W + float64(n-1)*interlock) / float64(n)
	}

	slots := make([]shutterSlot, n)
	x := inner.X
	for i := range slots {
		if i > 0 {
			overlap := interlock
			if fourTrack && i == 2 {
				overlap = 0
			}
			x += slots[i-1].w - overlap
		}
		s := shutterSlot{
			x:     x,
			w:     sw,
			left:  model.ProfileShutterInterlock,
			right: model.ProfileShutterInterlock,
		}
		if i == 0 {
			s.left = model.ProfileShutterHandle
		}
		if i == n-1 {
			s.right = model.ProfileShutterHandle
		}
		if fourTrack && i == 1 {
			s.right = model.ProfileShutterMeeting
		}
		if fourTrack && i == 2 {
			s.left = model.ProfileShutterMeeting
		}
		slots[i] = s
	}
	return slots
}

// meshSlots returns the glass shutter positions a mesh shutter overlays.
func meshSlots(sc model.ShutterConfig) []int {
	switch sc {
	case model.Shutters2G1M:
		return []int{sc.GlassShutters() - 1}
	case model.Shutters4G2M:
		return []int{0, 3}
	default:
		return nil
	}
}

func (b *builder) sliding(inner model.Rect) {
	cfg := b.cfg.Sliding
	if cfg == nil {
		cfg = model.NewSlidingConfig(model.Shutters2G)
	}
	series := b.cfg.Series
	slots := shutterSlots(cfg.ShutterConfig, inner, series.Width(model.ProfileShutterInterlock))

	for i, s := range slots {
		ref := model.ShutterRef(i)
		infill := b.shutter(ref, s, inner, model.LayerMain)
		if b.glass(ref, infill) < 0 {
			continue
		}

		var opt model.ShutterOption
		if i < len(cfg.Shutters) {
			opt = cfg.Shutters[i]
		}
		kind := model.MarkerSlide
		if opt.Fixed {
			kind = model.MarkerFixed
		}
		b.marker(ref, kind, infill)
		b.handle(ref, opt.Handle, model.Rect{X: s.x, Y: inner.Y, W: s.w, H: inner.H}, model.HandleVertical)
	}

	for j, slot := range meshSlots(cfg.ShutterConfig) {
		ref := model.ShutterRef(len(slots) + j)
		infill := b.shutter(ref, slots[slot], inner, model.LayerMesh)
		b.mesh(ref, infill)
	}
}

// shutter emits the stiles and rails of one shutter and returns the infill
// rectangle they enclose. Stiles run the full shutter height; rails run
// between the stiles.
func (b *builder) shutter(ref model.PanelRef, s shutterSlot, inner model.Rect, layer int) model.Rect {
	series := b.cfg.Series
	id := b.ref(ref).Key()
	lw, rw := series.Width(s.left), series.Width(s.right)
	tw, bw := series.Width(model.ProfileShutterTop), series.Width(model.ProfileShutterBottom)

	b.segment(s.left, id, model.Rect{X: s.x, Y: inner.Y, W: lw, H: inner.H}, inner.H, layer)
	b.segment(s.right, id, model.Rect{X: s.x + s.w - rw, Y: inner.Y, W: rw, H: inner.H}, inner.H, layer)

	railW := s.w - lw - rw
	b.segment(model.ProfileShutterTop, id, model.Rect{X: s.x + lw, Y: inner.Y, W: railW, H: tw}, railW, layer)
	b.segment(model.ProfileShutterBottom, id, model.Rect{X: s.x + lw, Y: inner.Bottom() - bw, W: railW, H: bw}, railW, layer)

	return model.Rect{X: s.x + lw, Y: inner.Y + tw, W: railW, H: inner.H - tw - bw}
}
