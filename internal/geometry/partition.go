package geometry

import "github.com/piwi3910/GlazeCut/internal/model"

// SlidingOverlap is how far a sliding partition panel overlaps the panel
// before it, in mm.
const SlidingOverlap = 25.0

func (b *builder) partition(inner model.Rect) {
	p := model.PartitionConfig{Count: 1}
	if b.cfg.Partition != nil {
		p = *b.cfg.Partition
	}
	count := p.PanelCount()
	if count == 0 {
		return
	}

	area := inner
	if p.HasTopChannel {
		ch := b.cfg.Series.Width(model.ProfilePartitionChannel)
		b.segment(model.ProfilePartitionChannel, "", model.Rect{X: inner.X, Y: inner.Y, W: inner.W, H: ch}, inner.W, model.LayerMain)
		b.segment(model.ProfilePartitionChannel, "", model.Rect{X: inner.X, Y: inner.Bottom() - ch, W: inner.W, H: ch}, inner.W, model.LayerMain)
		area = model.Rect{X: inner.X, Y: inner.Y + ch, W: inner.W, H: inner.H - 2*ch}
	}
	if area.Empty() {
		return
	}

	pw := area.W / float64(count)
	frameW := b.cfg.Series.Width(model.ProfileCasementShutter)
	for i := 0; i < count; i++ {
		panel := p.Panel(i)
		ref := model.PartitionRef(i)
		r := model.Rect{X: area.X + float64(i)*pw, Y: area.Y, W: pw, H: area.H}
		if panel.Type == model.PanelSliding && i > 0 {
			r.X -= SlidingOverlap
			r.W += SlidingOverlap
		}

		infill := r
		if panel.Framing || panel.Type == model.PanelHinged {
			infill = b.miteredFrame(model.ProfileCasementShutter, b.ref(ref).Key(), r, frameW)
		}
		b.glass(ref, infill)

		switch panel.Type {
		case model.PanelSliding:
			b.marker(ref, model.MarkerSlide, r)
		case model.PanelHinged:
			b.marker(ref, model.MarkerHingeLeft, r)
		default:
			b.marker(ref, model.MarkerFixed, r)
		}
		b.handle(ref, panel.Handle, r, model.HandleVertical)
	}
}
