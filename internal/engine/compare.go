package engine

import (
	"fmt"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// ComparisonScenario is a candidate stock length and kerf to evaluate.
type ComparisonScenario struct {
	Name           string
	StandardLength float64
	KerfWidth      float64
}

// ComparisonResult holds the packing statistics of a single scenario.
type ComparisonResult struct {
	Scenario     ComparisonScenario
	Bars         []model.Bar
	BarsUsed     int
	Oversized    int
	TotalLength  float64 // mm of pieces
	StockLength  float64 // mm of stock bought, oversized pieces at their own length
	Waste        float64 // mm
	WastePercent float64
}

// CompareScenarios packs the same pieces under each scenario, in scenario
// order, so alternatives can be compared side by side.
func CompareScenarios(scenarios []ComparisonScenario, pieces []float64) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	var total float64
	for _, p := range pieces {
		if p > 0 {
			total += p
		}
	}

	for _, scenario := range scenarios {
		bars := PackBars(pieces, scenario.StandardLength, scenario.KerfWidth)

		var stock float64
		oversized := 0
		for _, b := range bars {
			if b.Oversized {
				oversized++
				stock += b.Used
				continue
			}
			stock += b.StandardLength
		}

		waste := stock - total
		wastePercent := 0.0
		if stock > 0 {
			wastePercent = waste / stock * 100
		}

		results = append(results, ComparisonResult{
			Scenario:     scenario,
			Bars:         bars,
			BarsUsed:     len(bars),
			Oversized:    oversized,
			TotalLength:  total,
			StockLength:  stock,
			Waste:        waste,
			WastePercent: wastePercent,
		})
	}

	return results
}

// CompareStandardLengths is CompareScenarios over plain stock lengths.
func CompareStandardLengths(pieces, lengths []float64, kerf float64) []ComparisonResult {
	scenarios := make([]ComparisonScenario, 0, len(lengths))
	for _, l := range lengths {
		scenarios = append(scenarios, ComparisonScenario{
			Name:           fmt.Sprintf("%.1f mm", l),
			StandardLength: l,
			KerfWidth:      kerf,
		})
	}
	return CompareScenarios(scenarios, pieces)
}

// BuildDefaultScenarios generates common stock lengths to compare against
// the current settings.
func BuildDefaultScenarios(base model.CuttingSettings) []ComparisonScenario {
	current := base.DefaultBarLength
	if current <= 0 {
		current = model.DefaultStandardLength
	}
	scenarios := []ComparisonScenario{
		{Name: "Current Settings", StandardLength: current, KerfWidth: base.KerfWidth},
	}

	for _, alt := range []struct {
		name   string
		length float64
	}{
		{"12 ft", 3657.6},
		{"16 ft", 4876.8},
		{"5.8 m", 5800},
		{"6 m", 6000},
	} {
		if alt.length == current {
			continue
		}
		scenarios = append(scenarios, ComparisonScenario{
			Name:           alt.name,
			StandardLength: alt.length,
			KerfWidth:      base.KerfWidth,
		})
	}

	// Scenario: Thinner blade
	if base.KerfWidth > 1.0 {
		scenarios = append(scenarios, ComparisonScenario{
			Name:           fmt.Sprintf("Kerf %.1fmm (half)", base.KerfWidth*0.5),
			StandardLength: current,
			KerfWidth:      base.KerfWidth * 0.5,
		})
	}

	return scenarios
}
