package model

// Bar is one stock length with the pieces cut from it.
type Bar struct {
	StandardLength float64   `json:"standard_length"`
	Pieces         []float64 `json:"pieces"`
	Used           float64   `json:"used"`      // mm including kerf
	Remaining      float64   `json:"remaining"` // mm, 0 for oversized bars
	Oversized      bool      `json:"oversized"` // single piece longer than the bar
}

// BOMProfile is the cutting summary of one profile key.
type BOMProfile struct {
	ProfileKey     ProfileKey `json:"profile_key"`
	Pieces         []float64  `json:"pieces"`
	StandardLength float64    `json:"standard_length"`
	RequiredBars   int        `json:"required_bars"`
	TotalLength    float64    `json:"total_length"` // mm
	WeightPerMeter float64    `json:"weight_per_meter"`
	TotalWeight    float64    `json:"total_weight"` // kg
	Bars           []Bar      `json:"bars"`
	Offcuts        []Offcut   `json:"offcuts"`
}

// OversizedPieces counts pieces that needed a special-order bar.
func (p BOMProfile) OversizedPieces() int {
	var n int
	for _, b := range p.Bars {
		if b.Oversized {
			n++
		}
	}
	return n
}

// BOMHardware is the total quantity of one hardware item.
type BOMHardware struct {
	Name          string  `json:"name"`
	TotalQuantity float64 `json:"total_quantity"`
	UnitCost      float64 `json:"unit_cost"`
}

// BOMGlass is the total area of one glass description.
type BOMGlass struct {
	Description   string  `json:"description"`
	Pieces        int     `json:"pieces"`
	TotalAreaSqFt float64 `json:"total_area_sqft"`
	TotalAreaSqMt float64 `json:"total_area_sqmt"`
}

// BOMMesh is the total mesh area.
type BOMMesh struct {
	Pieces        int     `json:"pieces"`
	TotalAreaSqFt float64 `json:"total_area_sqft"`
	TotalAreaSqMt float64 `json:"total_area_sqmt"`
}

// BOMSeries groups all materials of one profile series.
type BOMSeries struct {
	SeriesID   string        `json:"series_id"`
	SeriesName string        `json:"series_name"`
	Profiles   []BOMProfile  `json:"profiles"`
	Glass      []BOMGlass    `json:"glass"`
	Mesh       BOMMesh       `json:"mesh"`
	Hardware   []BOMHardware `json:"hardware"`
	Gasket     GasketSummary `json:"gasket"`
}

// TotalWeight returns the profile weight of the series in kg.
func (s BOMSeries) TotalWeight() float64 {
	var total float64
	for _, p := range s.Profiles {
		total += p.TotalWeight
	}
	return total
}

// TotalBars returns the number of stock bars required for the series.
func (s BOMSeries) TotalBars() int {
	var total int
	for _, p := range s.Profiles {
		total += p.RequiredBars
	}
	return total
}

// BOM is the bill of materials for a list of quotation items.
type BOM struct {
	Series []BOMSeries `json:"series"`
}
