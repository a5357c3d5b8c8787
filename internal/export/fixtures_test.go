package export

import (
	"bytes"
	"os"
	"testing"

	"github.com/piwi3910/GlazeCut/internal/bom"
	"github.com/piwi3910/GlazeCut/internal/model"
)

// buildTestDesign returns a design covering the drawing paths of the
// elevation renderer.
func buildTestDesign() model.Design {
	series := model.DefaultSeries()
	glass := model.GlassSpec{Type: "Clear", Thickness: 5}

	d := model.NewDesign()
	d.Settings.CustomerName = "Mehta"
	d.Settings.DiscountValue = 5
	d.Settings.Notes = "Prices valid for 30 days.\nInstallation extra."

	d.Items = append(d.Items,
		model.NewQuotationItem("W1", model.StructureConfig{
			Type: model.TypeSliding, Width: 1500, Height: 1200, Series: series, Glass: glass,
			Sliding: model.NewSlidingConfig(model.Shutters2G1M),
		}, 2, 550, model.AreaSqFt),
		model.NewQuotationItem("D1", model.StructureConfig{
			Type: model.TypeCasement, Width: 1200, Height: 1500, Series: series, Glass: glass,
			Grid: &model.GridConfig{
				VerticalDividers: []float64{0.5},
				Cells: []model.GridCell{
					{Row: 0, Col: 0, Type: model.CellDoor, HingeSide: model.HingeLeft},
					{Row: 0, Col: 1, Type: model.CellDoor, HingeSide: model.HingeRight},
				},
			},
		}, 1, 650, model.AreaSqFt),
		model.NewQuotationItem("V1", model.StructureConfig{
			Type: model.TypeVentilator, Width: 600, Height: 450, Series: series, Glass: glass,
			Grid: &model.GridConfig{
				VerticalDividers: []float64{0.5},
				Cells: []model.GridCell{
					{Row: 0, Col: 0, Type: model.CellLouvers},
					{Row: 0, Col: 1, Type: model.CellExhaustFan},
				},
			},
		}, 1, 500, model.AreaSqFt),
		model.NewQuotationItem("M1", model.StructureConfig{
			Type: model.TypeMirror, Width: 600, Height: 900, Series: series, Glass: glass,
			Mirror: &model.MirrorConfig{Shape: model.ShapeOval},
		}, 1, 400, model.AreaSqFt),
		model.NewQuotationItem("M2", model.StructureConfig{
			Type: model.TypeMirror, Width: 600, Height: 900, Series: series, Glass: glass,
			Mirror: &model.MirrorConfig{Shape: model.ShapeRounded, CornerRadius: 80},
		}, 1, 400, model.AreaSqFt),
		model.NewQuotationItem("C1", model.StructureConfig{
			Type: model.TypeCorner, Height: 1200, Series: series, Glass: glass,
			Corner: &model.CornerConfig{
				Left:      model.SubConfig{Type: model.TypeSliding, Width: 900, Sliding: model.NewSlidingConfig(model.Shutters2G)},
				Right:     model.SubConfig{Type: model.TypeCasement, Width: 900, Grid: &model.GridConfig{}},
				PostWidth: 80,
			},
		}, 1, 600, model.AreaSqMt),
	)
	return d
}

func buildTestBOM() model.BOM {
	return bom.Build(buildTestDesign().Items, model.DefaultCuttingSettings())
}

// assertPDFFile checks that path holds a non-trivial PDF document.
func assertPDFFile(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if len(data) < 500 {
		t.Errorf("PDF file seems too small: %d bytes", len(data))
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("file does not start with a PDF header")
	}
}
