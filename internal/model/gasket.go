package model

import "math"

// GasketSummary holds the glazing gasket needed to seal a set of panes.
type GasketSummary struct {
	TotalLinearMM    float64 `json:"total_linear_mm"`     // no waste
	TotalLinearM     float64 `json:"total_linear_m"`      // no waste
	WastePercent     float64 `json:"waste_percent"`       // waste percentage applied
	TotalWithWasteMM float64 `json:"total_with_waste_mm"` // rounded up to whole mm
	TotalWithWasteM  float64 `json:"total_with_waste_m"`
	PaneCount        int     `json:"pane_count"`
}

// CalculateGasket computes the gasket length for glass panes: one full
// perimeter per pane, scaled by quantity.
// wastePercent is the additional percentage to add for waste (e.g., 10 for 10%).
func CalculateGasket(panes []GlassPane, quantity int, wastePercent float64) GasketSummary {
	var totalMM float64
	var count int
	for _, p := range panes {
		if p.Empty() {
			continue
		}
		totalMM += 2 * (p.W + p.H) * float64(quantity)
		count += quantity
	}

	return gasketSummary(totalMM, count, wastePercent)
}

// Add merges two summaries computed with the same waste percentage.
func (g GasketSummary) Add(other GasketSummary) GasketSummary {
	waste := g.WastePercent
	if g.PaneCount == 0 {
		waste = other.WastePercent
	}
	return gasketSummary(g.TotalLinearMM+other.TotalLinearMM, g.PaneCount+other.PaneCount, waste)
}

func gasketSummary(totalMM float64, count int, wastePercent float64) GasketSummary {
	totalWithWaste := math.Ceil(totalMM * (100 + wastePercent) / 100)
	return GasketSummary{
		TotalLinearMM:    totalMM,
		TotalLinearM:     totalMM / 1000.0,
		WastePercent:     wastePercent,
		TotalWithWasteMM: totalWithWaste,
		TotalWithWasteM:  totalWithWaste / 1000.0,
		PaneCount:        count,
	}
}
