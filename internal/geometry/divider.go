package geometry

import (
	"slices"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// RemoveVerticalDivider returns a copy of g without vertical divider i,
// where i indexes g.VerticalDividers as given. The column right of the
// divider is merged away: its cell entries are deleted and entries in later
// columns move one column left. The result's dividers are normalised. An
// out-of-range index returns a normalised copy.
func RemoveVerticalDivider(g model.GridConfig, i int) model.GridConfig {
	out := cloneGrid(g)
	dividers, removed := removeDivider(g.VerticalDividers, i)
	out.VerticalDividers = dividers
	if removed >= 0 {
		out.Cells = reindexCells(out.Cells, removed, func(c *model.GridCell) *int { return &c.Col })
	}
	return out
}

// RemoveHorizontalDivider is RemoveVerticalDivider for rows.
func RemoveHorizontalDivider(g model.GridConfig, i int) model.GridConfig {
	out := cloneGrid(g)
	dividers, removed := removeDivider(g.HorizontalDividers, i)
	out.HorizontalDividers = dividers
	if removed >= 0 {
		out.Cells = reindexCells(out.Cells, removed, func(c *model.GridCell) *int { return &c.Row })
	}
	return out
}

// removeDivider drops dividers[i] and returns the normalised remainder with
// the position the divider had among the normalised dividers. The position
// is -1 when no column or row boundary disappears: i is out of range, the
// divider lies outside (0, 1), or a duplicate of it remains.
func removeDivider(dividers []float64, i int) ([]float64, int) {
	before := model.NormalizeDividers(dividers)
	if i < 0 || i >= len(dividers) {
		return before, -1
	}
	rest := make([]float64, 0, len(dividers)-1)
	rest = append(rest, dividers[:i]...)
	rest = append(rest, dividers[i+1:]...)
	after := model.NormalizeDividers(rest)
	if len(after) == len(before) {
		return after, -1
	}
	return after, slices.Index(before, dividers[i])
}

func reindexCells(cells []model.GridCell, removed int, index func(*model.GridCell) *int) []model.GridCell {
	out := cells[:0]
	for _, c := range cells {
		idx := index(&c)
		switch {
		case *idx == removed+1:
			continue
		case *idx > removed+1:
			*idx--
		}
		out = append(out, c)
	}
	return out
}

func cloneGrid(g model.GridConfig) model.GridConfig {
	out := model.GridConfig{
		VerticalDividers:   model.NormalizeDividers(g.VerticalDividers),
		HorizontalDividers: model.NormalizeDividers(g.HorizontalDividers),
		Cells:              make([]model.GridCell, len(g.Cells)),
	}
	for i, c := range g.Cells {
		if c.Handle != nil {
			h := *c.Handle
			c.Handle = &h
		}
		out.Cells[i] = c
	}
	return out
}
