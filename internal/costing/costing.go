// Package costing prices quotation items. All arithmetic is done on
// decimal.Decimal and rounding happens only in the Display helpers.
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/piwi3910/GlazeCut/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Line is the costed view of one quotation item.
type Line struct {
	ItemID          string          `json:"item_id"`
	Label           string          `json:"label"`
	Quantity        int             `json:"quantity"`
	AreaUnit        model.AreaUnit  `json:"area_unit"`
	Area            decimal.Decimal `json:"area"` // per structure, in AreaUnit
	Rate            decimal.Decimal `json:"rate"`
	BaseCost        decimal.Decimal `json:"base_cost"`
	HardwarePerUnit decimal.Decimal `json:"hardware_per_unit"`
	HardwareCost    decimal.Decimal `json:"hardware_cost"`
	Total           decimal.Decimal `json:"total"`
}

// Quotation is the priced list of items with its totals.
type Quotation struct {
	Settings       model.QuotationSettings `json:"settings"`
	Lines          []Line                  `json:"lines"`
	Subtotal       decimal.Decimal         `json:"subtotal"`
	DiscountAmount decimal.Decimal         `json:"discount_amount"`
	Taxable        decimal.Decimal         `json:"taxable"`
	GSTAmount      decimal.Decimal         `json:"gst_amount"`
	GrandTotal     decimal.Decimal         `json:"grand_total"`
}

// Area returns (width/d) x (height/d) where d is the unit's linear divisor.
func Area(width, height float64, unit model.AreaUnit) decimal.Decimal {
	d := decimal.NewFromFloat(unit.Divisor())
	return decimal.NewFromFloat(width).Mul(decimal.NewFromFloat(height)).Div(d.Mul(d))
}

// HardwareCostPerUnit walks the series hardware and prices it against the
// operable units of one structure.
func HardwareCostPerUnit(cfg model.StructureConfig) decimal.Decimal {
	total := decimal.Zero
	for _, h := range cfg.Series.Hardware {
		units := model.OperableUnits(cfg, h)
		if units <= 0 {
			continue
		}
		total = total.Add(decimal.NewFromFloat(units).
			Mul(decimal.NewFromFloat(h.QuantityPerUnit)).
			Mul(decimal.NewFromFloat(h.UnitCost)))
	}
	return total
}

// LineCost prices one item: area x quantity x rate plus hardware per
// structure x quantity. Corner windows use their overall width.
func LineCost(item model.QuotationItem) Line {
	cfg := item.Config
	qty := decimal.NewFromInt(int64(item.Quantity))
	area := Area(cfg.OverallWidth(), cfg.Height, item.AreaUnit)
	rate := decimal.NewFromFloat(item.Rate)
	hw := HardwareCostPerUnit(cfg)

	base := area.Mul(qty).Mul(rate)
	hwCost := hw.Mul(qty)
	unit := item.AreaUnit
	if unit == "" {
		unit = model.AreaSqFt
	}
	return Line{
		ItemID:          item.ID,
		Label:           item.Label,
		Quantity:        item.Quantity,
		AreaUnit:        unit,
		Area:            area,
		Rate:            rate,
		BaseCost:        base,
		HardwarePerUnit: hw,
		HardwareCost:    hwCost,
		Total:           base.Add(hwCost),
	}
}

// Discount returns the discount on subtotal. Unknown discount types are
// treated as a percentage.
func Discount(settings model.QuotationSettings, subtotal decimal.Decimal) decimal.Decimal {
	value := decimal.NewFromFloat(settings.DiscountValue)
	if settings.DiscountType == model.DiscountFlat {
		return value
	}
	return subtotal.Mul(value.Div(hundred))
}

// Quote prices every item and applies discount then GST to the subtotal.
func Quote(settings model.QuotationSettings, items []model.QuotationItem) Quotation {
	q := Quotation{
		Settings: settings,
		Lines:    make([]Line, 0, len(items)),
		Subtotal: decimal.Zero,
	}
	for _, item := range items {
		line := LineCost(item)
		q.Lines = append(q.Lines, line)
		q.Subtotal = q.Subtotal.Add(line.Total)
	}

	q.DiscountAmount = Discount(settings, q.Subtotal)
	q.Taxable = q.Subtotal.Sub(q.DiscountAmount)
	q.GSTAmount = q.Taxable.Mul(decimal.NewFromFloat(settings.GSTPercent).Div(hundred))
	q.GrandTotal = q.Taxable.Add(q.GSTAmount)
	return q
}

// WithHardwareCost returns items with their derived HardwareCost filled in.
func WithHardwareCost(items []model.QuotationItem) []model.QuotationItem {
	out := make([]model.QuotationItem, len(items))
	for i, item := range items {
		item.HardwareCost = HardwareCostPerUnit(item.Config).InexactFloat64()
		out[i] = item
	}
	return out
}
