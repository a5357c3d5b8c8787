// Package bom builds the bill of materials for a list of quotation items.
package bom

import (
	"github.com/piwi3910/GlazeCut/internal/engine"
	"github.com/piwi3910/GlazeCut/internal/geometry"
	"github.com/piwi3910/GlazeCut/internal/model"
)

// Build decomposes every item and aggregates its materials per profile
// series. Series appear in first-seen order; profile keys are sorted.
// Items with a non-positive quantity contribute nothing.
func Build(items []model.QuotationItem, settings model.CuttingSettings) model.BOM {
	var order []string
	bySeries := make(map[string]*usage)

	for _, item := range items {
		u := itemUsage(item, settings.GasketWastePct)
		if existing, ok := bySeries[u.seriesID]; ok {
			existing.merge(u)
			continue
		}
		bySeries[u.seriesID] = u
		order = append(order, u.seriesID)
	}

	opt := engine.New(settings)
	out := model.BOM{Series: make([]model.BOMSeries, 0, len(order))}
	for _, id := range order {
		out.Series = append(out.Series, bySeries[id].summary(opt))
	}
	return out
}

// SeriesKey identifies the series a structure is grouped under.
func SeriesKey(s model.ProfileSeries) string {
	if s.ID != "" {
		return s.ID
	}
	return s.Name
}

type glassUsage struct {
	pieces int
	area   float64 // sq mm
}

type hardwareUsage struct {
	quantity float64
	unitCost float64
}

// usage is the partial material usage of one or more items of the same
// series. merge is associative, so items can be summed in any grouping.
type usage struct {
	seriesID string
	series   model.ProfileSeries

	lengths map[model.ProfileKey][]float64

	glassOrder []string
	glass      map[string]glassUsage

	meshPieces int
	meshArea   float64

	hardwareOrder []string
	hardware      map[string]hardwareUsage

	gasket model.GasketSummary
}

func newUsage(series model.ProfileSeries) *usage {
	return &usage{
		seriesID: SeriesKey(series),
		series:   series,
		lengths:  make(map[model.ProfileKey][]float64),
		glass:    make(map[string]glassUsage),
		hardware: make(map[string]hardwareUsage),
	}
}

// itemUsage extracts the materials of one item, scaled by its quantity.
func itemUsage(item model.QuotationItem, gasketWastePct float64) *usage {
	cfg := item.Config
	u := newUsage(cfg.Series)
	u.gasket.WastePercent = gasketWastePct
	qty := item.Quantity
	if qty <= 0 {
		return u
	}

	m := geometry.Decompose(cfg)
	for key, lengths := range m.ProfileLengths() {
		for i := 0; i < qty; i++ {
			u.lengths[key] = append(u.lengths[key], lengths...)
		}
	}

	desc := cfg.Glass.Description()
	for _, g := range m.Glass {
		u.addGlass(desc, qty, g.Area()*float64(qty))
	}
	for _, ms := range m.Mesh {
		u.meshPieces += qty
		u.meshArea += ms.Area() * float64(qty)
	}

	for _, h := range cfg.Series.Hardware {
		n := model.OperableUnits(cfg, h) * h.QuantityPerUnit * float64(qty)
		if n <= 0 {
			continue
		}
		u.addHardware(h.Name, n, h.UnitCost)
	}

	u.gasket = model.CalculateGasket(m.Glass, qty, gasketWastePct)
	return u
}

func (u *usage) addGlass(desc string, pieces int, area float64) {
	g, ok := u.glass[desc]
	if !ok {
		u.glassOrder = append(u.glassOrder, desc)
	}
	g.pieces += pieces
	g.area += area
	u.glass[desc] = g
}

func (u *usage) addHardware(name string, qty, unitCost float64) {
	h, ok := u.hardware[name]
	if !ok {
		u.hardwareOrder = append(u.hardwareOrder, name)
		h.unitCost = unitCost
	}
	h.quantity += qty
	u.hardware[name] = h
}

// merge adds other into u. Both must belong to the same series.
func (u *usage) merge(other *usage) {
	for key, lengths := range other.lengths {
		u.lengths[key] = append(u.lengths[key], lengths...)
	}
	for _, desc := range other.glassOrder {
		g := other.glass[desc]
		u.addGlass(desc, g.pieces, g.area)
	}
	u.meshPieces += other.meshPieces
	u.meshArea += other.meshArea
	for _, name := range other.hardwareOrder {
		h := other.hardware[name]
		u.addHardware(name, h.quantity, h.unitCost)
	}
	u.gasket = u.gasket.Add(other.gasket)
}

func (u *usage) summary(opt *engine.Optimizer) model.BOMSeries {
	s := model.BOMSeries{
		SeriesID:   u.seriesID,
		SeriesName: u.series.Name,
		Profiles:   opt.OptimizeSeries(u.series, u.lengths),
		Glass:      make([]model.BOMGlass, 0, len(u.glassOrder)),
		Mesh: model.BOMMesh{
			Pieces:        u.meshPieces,
			TotalAreaSqFt: model.SqFt(u.meshArea),
			TotalAreaSqMt: model.SqMt(u.meshArea),
		},
		Hardware: make([]model.BOMHardware, 0, len(u.hardwareOrder)),
		Gasket:   u.gasket,
	}
	for _, desc := range u.glassOrder {
		g := u.glass[desc]
		s.Glass = append(s.Glass, model.BOMGlass{
			Description:   desc,
			Pieces:        g.pieces,
			TotalAreaSqFt: model.SqFt(g.area),
			TotalAreaSqMt: model.SqMt(g.area),
		})
	}
	for _, name := range u.hardwareOrder {
		h := u.hardware[name]
		s.Hardware = append(s.Hardware, model.BOMHardware{
			Name:          name,
			TotalQuantity: h.quantity,
			UnitCost:      h.unitCost,
		})
	}
	return s
}
