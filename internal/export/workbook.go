package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// Workbook sheet names.
const (
	SheetSummary  = "Summary"
	SheetProfiles = "Profiles"
	SheetCutting  = "Cutting"
	SheetGlass    = "Glass"
	SheetHardware = "Hardware"
)

// ExportBOMWorkbook writes bom as an Excel workbook to path.
func ExportBOMWorkbook(path string, bom model.BOM) error {
	f, err := buildWorkbook(bom)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// WriteBOMWorkbook streams bom as an Excel workbook to w.
func WriteBOMWorkbook(w io.Writer, bom model.BOM) error {
	f, err := buildWorkbook(bom)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// sheetWriter appends rows to one sheet and keeps the first error.
type sheetWriter struct {
	f    *excelize.File
	name string
	row  int
	err  error
}

func (s *sheetWriter) add(values ...any) {
	if s.err != nil {
		return
	}
	s.row++
	cell, err := excelize.CoordinatesToCellName(1, s.row)
	if err != nil {
		s.err = err
		return
	}
	s.err = s.f.SetSheetRow(s.name, cell, &values)
}

// header writes a bold, shaded header row and sizes the columns.
func (s *sheetWriter) header(style int, titles ...string) {
	values := make([]any, len(titles))
	for i, t := range titles {
		values[i] = t
	}
	s.add(values...)
	if s.err != nil {
		return
	}
	last, _ := excelize.ColumnNumberToName(len(titles))
	end := fmt.Sprintf("%s%d", last, s.row)
	if s.err = s.f.SetCellStyle(s.name, fmt.Sprintf("A%d", s.row), end, style); s.err != nil {
		return
	}
	s.err = s.f.SetColWidth(s.name, "A", last, 16)
}

func buildWorkbook(bom model.BOM) (*excelize.File, error) {
	if len(bom.Series) == 0 {
		return nil, fmt.Errorf("no materials to export")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetProfiles, SheetCutting, SheetGlass, SheetHardware} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, err
	}

	summary := &sheetWriter{f: f, name: SheetSummary}
	profiles := &sheetWriter{f: f, name: SheetProfiles}
	cutting := &sheetWriter{f: f, name: SheetCutting}
	glass := &sheetWriter{f: f, name: SheetGlass}
	hardware := &sheetWriter{f: f, name: SheetHardware}

	summary.header(bold, "Series", "Bars", "Weight (kg)", "Glass (sq.ft)", "Mesh (sq.ft)", "Hardware Cost", "Gasket (m)")
	profiles.header(bold, "Series", "Profile", "Pieces", "Bar Length (mm)", "Bars", "Cut Length (mm)", "Weight/m (kg)", "Weight (kg)", "Offcuts", "Special Order")
	cutting.header(bold, "Series", "Profile", "Bar", "Pieces (mm)", "Used (mm)", "Remaining (mm)", "Special Order")
	glass.header(bold, "Series", "Description", "Pieces", "Area (sq.ft)", "Area (sq.mt)")
	hardware.header(bold, "Series", "Item", "Quantity", "Unit Cost", "Cost")

	for _, s := range bom.Series {
		var glassSqFt, hardwareCost float64
		for _, g := range s.Glass {
			glassSqFt += g.TotalAreaSqFt
			glass.add(s.SeriesName, g.Description, g.Pieces, g.TotalAreaSqFt, g.TotalAreaSqMt)
		}
		if s.Mesh.Pieces > 0 {
			glass.add(s.SeriesName, "Insect mesh", s.Mesh.Pieces, s.Mesh.TotalAreaSqFt, s.Mesh.TotalAreaSqMt)
		}
		for _, h := range s.Hardware {
			cost := h.TotalQuantity * h.UnitCost
			hardwareCost += cost
			hardware.add(s.SeriesName, h.Name, h.TotalQuantity, h.UnitCost, cost)
		}
		for _, p := range s.Profiles {
			profiles.add(s.SeriesName, string(p.ProfileKey), len(p.Pieces), p.StandardLength, p.RequiredBars,
				p.TotalLength, p.WeightPerMeter, p.TotalWeight, len(p.Offcuts), p.OversizedPieces())
			for i, b := range p.Bars {
				cutting.add(s.SeriesName, string(p.ProfileKey), i+1, joinPieces(b.Pieces), b.Used, b.Remaining, yesNo(b.Oversized))
			}
		}
		summary.add(s.SeriesName, s.TotalBars(), s.TotalWeight(), glassSqFt, s.Mesh.TotalAreaSqFt, hardwareCost, s.Gasket.TotalWithWasteM)
	}

	for _, s := range []*sheetWriter{summary, profiles, cutting, glass, hardware} {
		if s.err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to fill sheet %s: %w", s.name, s.err)
		}
	}
	return f, nil
}

func joinPieces(pieces []float64) string {
	parts := make([]string, len(pieces))
	for i, p := range pieces {
		parts[i] = fmt.Sprintf("%g", p)
	}
	return strings.Join(parts, " + ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
