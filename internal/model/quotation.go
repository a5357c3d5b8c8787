package model

import (
	"strings"

	"github.com/google/uuid"
)

// DiscountType selects how the discount value is applied.
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFlat    DiscountType = "flat"
)

// QuotationSettings holds the quotation-wide commercial terms.
type QuotationSettings struct {
	CustomerName  string       `json:"customer_name"`
	CompanyName   string       `json:"company_name"`
	Currency      string       `json:"currency"`
	GSTPercent    float64      `json:"gst_percent"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue float64      `json:"discount_value"`
	Notes         string       `json:"notes,omitempty"`
}

// DefaultQuotationSettings returns the settings used for new designs.
func DefaultQuotationSettings() QuotationSettings {
	return QuotationSettings{
		CompanyName:  "GlazeCut Fabricators",
		Currency:     "INR",
		GSTPercent:   18,
		DiscountType: DiscountPercent,
	}
}

// QuotationItem is one structure snapshot on a quotation.
type QuotationItem struct {
	ID           string          `json:"id"`
	Label        string          `json:"label"`
	Config       StructureConfig `json:"config"`
	Quantity     int             `json:"quantity"`
	Rate         float64         `json:"rate"` // currency per area unit
	AreaUnit     AreaUnit        `json:"area_unit"`
	HardwareCost float64         `json:"hardware_cost"` // derived, per structure
}

// NewQuotationItem creates an item with a generated ID.
func NewQuotationItem(label string, cfg StructureConfig, qty int, rate float64, unit AreaUnit) QuotationItem {
	return QuotationItem{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Config:   cfg,
		Quantity: qty,
		Rate:     rate,
		AreaUnit: unit,
	}
}

// Design is the persisted document: settings plus quotation items.
type Design struct {
	Settings QuotationSettings `json:"settings"`
	Items    []QuotationItem   `json:"items"`
}

// NewDesign returns an empty design with default settings.
func NewDesign() Design {
	return Design{
		Settings: DefaultQuotationSettings(),
		Items:    []QuotationItem{},
	}
}

// CuttingSettings configures stock cutting.
type CuttingSettings struct {
	KerfWidth        float64 `json:"kerf_width"`         // mm lost per cut
	MinOffcutLength  float64 `json:"min_offcut_length"`  // mm
	GasketWastePct   float64 `json:"gasket_waste_pct"`   // %
	DefaultBarLength float64 `json:"default_bar_length"` // mm, 0 = DefaultStandardLength
}

// DefaultCuttingSettings returns zero-kerf settings.
func DefaultCuttingSettings() CuttingSettings {
	return CuttingSettings{
		KerfWidth:        0,
		MinOffcutLength:  MinOffcutLength,
		GasketWastePct:   10,
		DefaultBarLength: DefaultStandardLength,
	}
}

// OperableUnits counts the units a hardware item applies to for one
// structure. Corner windows sum both sides.
func OperableUnits(cfg StructureConfig, item HardwareItem) float64 {
	if item.Category == HardwareStructure {
		return 1
	}
	switch cfg.Type {
	case TypeSliding:
		if cfg.Sliding == nil || !categoryMatches(item, HardwareShutter) {
			return 0
		}
		sc := cfg.Sliding.ShutterConfig
		return float64(sc.GlassShutters() + sc.MeshShutters())
	case TypeCasement:
		if cfg.Grid == nil || !categoryMatches(item, HardwareDoor) {
			return 0
		}
		return float64(countCells(*cfg.Grid, CellDoor))
	case TypeVentilator:
		if cfg.Grid == nil {
			return 0
		}
		switch ventilatorCategory(item) {
		case HardwareLouver:
			return float64(countCells(*cfg.Grid, CellLouvers))
		case HardwareDoor:
			return float64(countCells(*cfg.Grid, CellDoor))
		}
		return 0
	case TypeGlassPartition:
		if cfg.Partition == nil || !categoryMatches(item, HardwarePanel) {
			return 0
		}
		var n int
		for i := 0; i < cfg.Partition.PanelCount(); i++ {
			if cfg.Partition.Panel(i).Type != PanelFixed {
				n++
			}
		}
		return float64(n)
	case TypeCorner:
		if cfg.Corner == nil {
			return 0
		}
		return OperableUnits(cfg.SideConfig(cfg.Corner.Left), item) +
			OperableUnits(cfg.SideConfig(cfg.Corner.Right), item)
	}
	return 0
}

// categoryMatches treats auto-category items as matching any unit kind.
func categoryMatches(item HardwareItem, want HardwareCategory) bool {
	return item.Category == HardwareAuto || item.Category == want
}

// ventilatorCategory resolves an auto category by name for compatibility
// with catalogues that predate explicit categories.
func ventilatorCategory(item HardwareItem) HardwareCategory {
	if item.Category != HardwareAuto {
		return item.Category
	}
	if strings.Contains(strings.ToLower(item.Name), "louver") {
		return HardwareLouver
	}
	return HardwareDoor
}

// countCells counts cells of the given type within the grid's bounds.
func countCells(g GridConfig, t CellType) int {
	rows := len(NormalizeDividers(g.HorizontalDividers)) + 1
	cols := len(NormalizeDividers(g.VerticalDividers)) + 1
	seen := make(map[[2]int]bool)
	var n int
	for _, c := range g.Cells {
		key := [2]int{c.Row, c.Col}
		if seen[key] || c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			continue
		}
		seen[key] = true
		if c.Type == t {
			n++
		}
	}
	return n
}
