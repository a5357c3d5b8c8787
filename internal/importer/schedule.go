package importer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// Options supplies the catalogue and defaults that schedule rows are
// resolved against.
type Options struct {
	Catalog  model.Catalog
	Defaults model.AppConfig
}

// DefaultOptions resolves rows against the built-in catalogue.
func DefaultOptions() Options {
	return Options{Catalog: model.DefaultCatalog(), Defaults: model.DefaultAppConfig()}
}

// defaultGlass is used when a row names no glass.
var defaultGlass = model.GlassSpec{Type: "Clear", Thickness: 5}

// defaultLouverGap is the gap between louver profiles in an imported
// louver structure.
const defaultLouverGap = 25.0

var typeAliases = map[string]model.WindowType{
	"slider":    model.TypeSliding,
	"partition": model.TypeGlassPartition,
	"vent":      model.TypeVentilator,
	"louver":    model.TypeLouvers,
	"louvre":    model.TypeLouvers,
	"louvres":   model.TypeLouvers,
}

type builder struct {
	opts   Options
	series model.ProfileSeries
}

func newBuilder(opts Options) *builder {
	b := &builder{opts: opts, series: model.DefaultSeries()}
	if s := opts.Catalog.FindSeriesByID(opts.Defaults.DefaultSeriesID); s != nil {
		b.series = *s
	} else if len(opts.Catalog.Series) > 0 {
		b.series = opts.Catalog.Series[0]
	}
	return b
}

// parseRow builds a quotation item from one schedule row. It returns the
// item, an error message that rejects the row, and any warnings.
func (b *builder) parseRow(row []string, mapping ColumnMapping, rowLabel string, itemCount int) (model.QuotationItem, string, []string) {
	var warnings []string

	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Item %d", itemCount+1)
	}

	typeStr := getCell(row, mapping.Type)
	if typeStr == "" {
		return model.QuotationItem{}, fmt.Sprintf("%s: Missing type value", rowLabel), nil
	}
	wt, ok := parseType(typeStr)
	if !ok {
		return model.QuotationItem{}, fmt.Sprintf("%s: Unknown type '%s'", rowLabel, typeStr), nil
	}
	if wt == model.TypeCorner {
		return model.QuotationItem{}, fmt.Sprintf("%s: Corner windows cannot be imported from a schedule", rowLabel), nil
	}

	width, errMsg := parseDimension(row, mapping.Width, "width", rowLabel)
	if errMsg != "" {
		return model.QuotationItem{}, errMsg, nil
	}
	height, errMsg := parseDimension(row, mapping.Height, "height", rowLabel)
	if errMsg != "" {
		return model.QuotationItem{}, errMsg, nil
	}

	qty := 1
	if qtyStr := getCell(row, mapping.Quantity); qtyStr != "" {
		n, err := strconv.Atoi(qtyStr)
		if err != nil {
			return model.QuotationItem{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), nil
		}
		if n <= 0 {
			return model.QuotationItem{}, fmt.Sprintf("%s: Quantity must be positive", rowLabel), nil
		}
		qty = n
	}

	rate := b.opts.Defaults.DefaultRate
	if rateStr := getCell(row, mapping.Rate); rateStr != "" {
		r, err := strconv.ParseFloat(rateStr, 64)
		if err != nil || r < 0 {
			return model.QuotationItem{}, fmt.Sprintf("%s: Invalid rate '%s'", rowLabel, rateStr), nil
		}
		rate = r
	}

	unit := b.opts.Defaults.DefaultAreaUnit
	if unit == "" {
		unit = model.AreaSqFt
	}
	if unitStr := getCell(row, mapping.Unit); unitStr != "" {
		if u, ok := parseUnit(unitStr); ok {
			unit = u
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown area unit '%s', using %s", rowLabel, unitStr, unit))
		}
	}

	series := b.series
	if name := getCell(row, mapping.Series); name != "" {
		if s, ok := b.findSeries(name); ok {
			series = s
		} else {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown series '%s', using %s", rowLabel, name, series.Name))
		}
	}

	cfg := model.StructureConfig{
		Type:   wt,
		Width:  width,
		Height: height,
		Series: series,
		Glass:  b.glass(getCell(row, mapping.Glass)),
	}
	if w := applyLayout(&cfg, getCell(row, mapping.Layout)); w != "" {
		warnings = append(warnings, fmt.Sprintf("%s: %s", rowLabel, w))
	}

	return model.NewQuotationItem(label, model.Sanitize(cfg), qty, rate, unit), "", warnings
}

func parseDimension(row []string, idx int, name, rowLabel string) (float64, string) {
	s := getCell(row, idx)
	if s == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, name, s)
	}
	if v <= 0 {
		return 0, fmt.Sprintf("%s: Width and height must be positive", rowLabel)
	}
	return v, ""
}

// parseType accepts stored values, display names and a few trade aliases.
func parseType(s string) (model.WindowType, bool) {
	if t, ok := model.ParseWindowType(s); ok {
		return t, true
	}
	norm := strings.ToLower(strings.TrimSpace(s))
	if t, ok := model.ParseWindowType(strings.ReplaceAll(norm, " ", "_")); ok {
		return t, true
	}
	t, ok := typeAliases[norm]
	return t, ok
}

func parseUnit(s string) (model.AreaUnit, bool) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "")) {
	case "sqft", "sq.ft", "sq.ft.", "ft2", "ft":
		return model.AreaSqFt, true
	case "sqmt", "sqm", "sq.mt", "sq.m", "m2", "m":
		return model.AreaSqMt, true
	}
	return "", false
}

func (b *builder) findSeries(name string) (model.ProfileSeries, bool) {
	for _, s := range b.opts.Catalog.Series {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return model.ProfileSeries{}, false
}

// glass resolves a catalogue preset by name, then a "<thickness>mm <type>"
// description, then treats the text as a custom glass type.
func (b *builder) glass(name string) model.GlassSpec {
	if name == "" {
		if p := b.opts.Catalog.FindGlassByName("5mm Clear"); p != nil {
			return p.Spec
		}
		return defaultGlass
	}
	for _, p := range b.opts.Catalog.Glass {
		if strings.EqualFold(p.Name, name) {
			return p.Spec
		}
	}
	if thick, typ, ok := strings.Cut(name, "mm"); ok {
		if t, err := strconv.ParseFloat(strings.TrimSpace(thick), 64); err == nil && strings.TrimSpace(typ) != "" {
			return model.GlassSpec{Type: strings.TrimSpace(typ), Thickness: t}
		}
	}
	return model.GlassSpec{Type: name}
}

// applyLayout fills the type-specific part of cfg from the layout column
// and returns a warning when the value could not be used.
func applyLayout(cfg *model.StructureConfig, layout string) string {
	switch cfg.Type {
	case model.TypeSliding:
		sc := model.Shutters2G
		var warning string
		if layout != "" {
			sc = model.ShutterConfig(strings.ToUpper(layout))
			if !validShutterConfig(sc) {
				warning = fmt.Sprintf("Unknown shutter layout '%s', using 2G", layout)
				sc = model.Shutters2G
			}
		}
		cfg.Sliding = model.NewSlidingConfig(sc)
		return warning

	case model.TypeCasement, model.TypeVentilator:
		n, warning := panelCount(layout, 1)
		cell := model.CellDoor
		if cfg.Type == model.TypeVentilator {
			cell = model.CellLouvers
		}
		cfg.Grid = equalGrid(n, cell)
		return warning

	case model.TypeGlassPartition:
		cfg.Partition = partitionLayout(layout)
		if cfg.Partition == nil {
			cfg.Partition = &model.PartitionConfig{Count: 2, Panels: fixedPanels(2)}
			return fmt.Sprintf("Unknown partition layout '%s', using 2 fixed panels", layout)
		}
		return ""

	case model.TypeMirror:
		shape := model.MirrorShape(strings.ToLower(layout))
		var warning string
		switch shape {
		case model.ShapeRectangle, model.ShapeRounded, model.ShapeCapsule, model.ShapeOval:
		case "":
			shape = model.ShapeRectangle
		default:
			warning = fmt.Sprintf("Unknown mirror shape '%s', using rectangle", layout)
			shape = model.ShapeRectangle
		}
		cfg.Mirror = &model.MirrorConfig{Shape: shape}
		if shape == model.ShapeRounded {
			cfg.Mirror.CornerRadius = 50
		}
		return warning

	case model.TypeLouvers:
		orientation := model.LouverVertical
		var warning string
		switch strings.ToLower(layout) {
		case "", "vertical", "v":
		case "horizontal", "h":
			orientation = model.LouverHorizontal
		default:
			warning = fmt.Sprintf("Unknown louver orientation '%s', using vertical", layout)
		}
		profile := cfg.Series.Width(model.ProfileLouverProfile)
		if profile <= 0 {
			profile = 50
		}
		cfg.Louvers = &model.LouverConfig{
			Orientation: orientation,
			Pattern: []model.LouverSegment{
				{Kind: model.SegmentProfile, Size: profile},
				{Kind: model.SegmentGap, Size: defaultLouverGap},
			},
		}
		return warning
	}
	return ""
}

func validShutterConfig(sc model.ShutterConfig) bool {
	switch sc {
	case model.Shutters2G, model.Shutters3G, model.Shutters2G1M, model.Shutters4G, model.Shutters4G2M:
		return true
	}
	return false
}

func panelCount(s string, def int) (int, string) {
	if s == "" {
		return def, ""
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def, fmt.Sprintf("Invalid panel count '%s', using %d", s, def)
	}
	return n, ""
}

// equalGrid splits the inner width into n equal columns of the given cell
// type. Doors alternate their hinge side.
func equalGrid(n int, cell model.CellType) *model.GridConfig {
	g := &model.GridConfig{Cells: make([]model.GridCell, 0, n)}
	for i := 1; i < n; i++ {
		g.VerticalDividers = append(g.VerticalDividers, float64(i)/float64(n))
	}
	for col := 0; col < n; col++ {
		c := model.GridCell{Row: 0, Col: col, Type: cell}
		if cell == model.CellDoor {
			c.HingeSide = model.HingeLeft
			if col%2 == 1 {
				c.HingeSide = model.HingeRight
			}
		}
		g.Cells = append(g.Cells, c)
	}
	return g
}

// partitionLayout accepts a panel count ("3") or one letter per panel
// ("FSH": fixed, sliding, hinged). It returns nil for anything else.
func partitionLayout(s string) *model.PartitionConfig {
	if s == "" {
		return &model.PartitionConfig{Count: 2, Panels: fixedPanels(2)}
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 {
			return nil
		}
		return &model.PartitionConfig{Count: n, Panels: fixedPanels(n)}
	}
	panels := make([]model.PartitionPanel, 0, len(s))
	for _, r := range strings.ToUpper(s) {
		switch r {
		case 'F':
			panels = append(panels, model.PartitionPanel{Type: model.PanelFixed})
		case 'S':
			panels = append(panels, model.PartitionPanel{Type: model.PanelSliding})
		case 'H':
			panels = append(panels, model.PartitionPanel{Type: model.PanelHinged, Framing: true})
		default:
			return nil
		}
	}
	return &model.PartitionConfig{Count: len(panels), Panels: panels}
}

func fixedPanels(n int) []model.PartitionPanel {
	panels := make([]model.PartitionPanel, n)
	for i := range panels {
		panels[i].Type = model.PanelFixed
	}
	return panels
}
