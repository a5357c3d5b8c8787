// Package engine packs linear profile pieces into stock bars.
package engine

import (
	"sort"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// Optimizer runs the first-fit-decreasing bar packing.
type Optimizer struct {
	Settings model.CuttingSettings
}

func New(settings model.CuttingSettings) *Optimizer {
	return &Optimizer{Settings: settings}
}

// Pack returns the number of bars of standardLength needed for pieces.
// An empty list needs no bars.
func Pack(pieces []float64, standardLength float64) int {
	return len(PackBars(pieces, standardLength, 0))
}

// PackBars places pieces first-fit-decreasing: pieces are sorted longest
// first and each goes into the first open bar with room, otherwise a new
// bar is opened. A piece longer than the bar gets a dedicated oversized bar
// that never takes another piece. Kerf is lost after each piece unless the
// piece fills the bar exactly. Non-positive pieces are ignored.
func PackBars(pieces []float64, standardLength, kerf float64) []model.Bar {
	if standardLength <= 0 {
		standardLength = model.DefaultStandardLength
	}
	if kerf < 0 {
		kerf = 0
	}

	sorted := make([]float64, 0, len(pieces))
	for _, p := range pieces {
		if p > 0 {
			sorted = append(sorted, p)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var bars []model.Bar
	for _, p := range sorted {
		if p > standardLength {
			bars = append(bars, model.Bar{
				StandardLength: standardLength,
				Pieces:         []float64{p},
				Used:           p,
				Oversized:      true,
			})
			continue
		}

		placed := false
		for i := range bars {
			if bars[i].Oversized || bars[i].Remaining < p {
				continue
			}
			cut(&bars[i], p, kerf)
			placed = true
			break
		}
		if !placed {
			bars = append(bars, model.Bar{StandardLength: standardLength, Remaining: standardLength})
			cut(&bars[len(bars)-1], p, kerf)
		}
	}
	return bars
}

// cut takes piece p from bar b, followed by the saw kerf when material is
// left over.
func cut(b *model.Bar, p, kerf float64) {
	b.Pieces = append(b.Pieces, p)
	b.Used += p
	b.Remaining -= p
	if b.Remaining <= 0 {
		b.Remaining = 0
		return
	}
	k := kerf
	if k > b.Remaining {
		k = b.Remaining
	}
	b.Used += k
	b.Remaining -= k
}

// StandardLength returns the bar length used for spec: the profile's own
// length, else the configured default, else DefaultStandardLength.
func (o *Optimizer) StandardLength(spec model.ProfileSpec) float64 {
	if spec.StandardLength <= 0 && o.Settings.DefaultBarLength > 0 {
		return o.Settings.DefaultBarLength
	}
	return spec.EffectiveStandardLength()
}

// Optimize packs the pieces of one profile key and summarises the result.
// Weight is totalLength/1000 * weightPerMeter.
func (o *Optimizer) Optimize(key model.ProfileKey, spec model.ProfileSpec, pieces []float64) model.BOMProfile {
	length := o.StandardLength(spec)
	bars := PackBars(pieces, length, o.Settings.KerfWidth)

	var total float64
	for _, p := range pieces {
		if p > 0 {
			total += p
		}
	}

	return model.BOMProfile{
		ProfileKey:     key,
		Pieces:         append([]float64{}, pieces...),
		StandardLength: length,
		RequiredBars:   len(bars),
		TotalLength:    total,
		WeightPerMeter: spec.WeightPerMeter,
		TotalWeight:    total / 1000 * spec.WeightPerMeter,
		Bars:           bars,
		Offcuts:        model.DetectOffcuts(key, bars, o.Settings.MinOffcutLength),
	}
}

// OptimizeSeries packs every profile key of a series, sorted by key.
func (o *Optimizer) OptimizeSeries(series model.ProfileSeries, lengths map[model.ProfileKey][]float64) []model.BOMProfile {
	keys := make([]model.ProfileKey, 0, len(lengths))
	for k := range lengths {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]model.BOMProfile, 0, len(keys))
	for _, k := range keys {
		out = append(out, o.Optimize(k, series.Spec(k), lengths[k]))
	}
	return out
}
