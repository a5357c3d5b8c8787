package geometry

import (
	"math"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// decomposeCorner lays out the left and right sides independently, then
// places the post between them. Sides of an unsupported type contribute
// nothing.
func decomposeCorner(cfg model.StructureConfig) model.GeometryModel {
	m := model.NewGeometryModel(cfg.OverallWidth(), cfg.Height)
	c := cfg.Corner
	if c == nil {
		return m
	}

	var left, right model.GeometryModel
	if model.IsValidCornerSide(c.Left.Type) {
		left = decomposeStructure(cfg.SideConfig(c.Left), model.PositionLeft)
		m.Append(left, 0, 0)
	}

	post := math.Max(c.PostWidth, 0)
	if post > 0 && cfg.Height > 0 {
		m.Profiles = append(m.Profiles, model.ProfileSegment{
			Key:    model.ProfileCornerPost,
			Rect:   model.Rect{X: c.Left.Width, Y: 0, W: post, H: cfg.Height},
			Length: cfg.Height,
			Layer:  model.LayerMain,
		})
	}

	if model.IsValidCornerSide(c.Right.Type) {
		right = decomposeStructure(cfg.SideConfig(c.Right), model.PositionRight)
		m.Append(right, c.Left.Width+post, 0)
	}

	m.Inner = model.Rect{W: math.Max(m.Width, 0), H: math.Max(cfg.Height, 0)}
	m.HasInnerContent = left.HasInnerContent || right.HasInnerContent
	return m
}
