package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/GlazeCut/internal/model"
)

func TestExportCutListPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cutlist.pdf")

	if err := ExportCutListPDF(path, buildTestBOM()); err != nil {
		t.Fatalf("ExportCutListPDF returned error: %v", err)
	}
	assertPDFFile(t, path)
}

func TestExportCutListPDF_EmptyBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")

	if err := ExportCutListPDF(path, model.BOM{}); err == nil {
		t.Fatal("expected error for empty BOM, got nil")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected no file to be left behind, stat returned %v", err)
	}
}

func TestWriteCutListPDF_OversizedAndKerf(t *testing.T) {
	bom := model.BOM{Series: []model.BOMSeries{{
		SeriesName: "Test",
		Profiles: []model.BOMProfile{{
			ProfileKey:     model.ProfileOuterFrame,
			Pieces:         []float64{5000, 1500, 1200},
			StandardLength: 3657.6,
			RequiredBars:   2,
			Bars: []model.Bar{
				{StandardLength: 3657.6, Pieces: []float64{5000}, Used: 5000, Oversized: true},
				{StandardLength: 3657.6, Pieces: []float64{1500, 1200}, Used: 2706, Remaining: 951.6},
			},
		}},
	}}}

	var buf bytes.Buffer
	if err := WriteCutListPDF(&buf, bom); err != nil {
		t.Fatalf("WriteCutListPDF returned error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF")
	}
}

func TestWriteCutListPDF_ManyBarsPaginate(t *testing.T) {
	p := model.BOMProfile{ProfileKey: model.ProfileMullion, StandardLength: 3000}
	for i := 0; i < 40; i++ {
		p.Pieces = append(p.Pieces, 2500)
		p.Bars = append(p.Bars, model.Bar{StandardLength: 3000, Pieces: []float64{2500}, Used: 2500, Remaining: 500})
	}
	p.RequiredBars = len(p.Bars)
	bom := model.BOM{Series: []model.BOMSeries{{SeriesName: "Long", Profiles: []model.BOMProfile{p}}}}

	var single, many bytes.Buffer
	one := p
	one.Bars = p.Bars[:1]
	if err := WriteCutListPDF(&single, model.BOM{Series: []model.BOMSeries{{SeriesName: "Long", Profiles: []model.BOMProfile{one}}}}); err != nil {
		t.Fatalf("WriteCutListPDF returned error: %v", err)
	}
	if err := WriteCutListPDF(&many, bom); err != nil {
		t.Fatalf("WriteCutListPDF returned error: %v", err)
	}
	if many.Len() <= single.Len() {
		t.Errorf("expected 40 bars to produce a larger document (%d <= %d)", many.Len(), single.Len())
	}
}

func TestLongestBar(t *testing.T) {
	p := model.BOMProfile{StandardLength: 3657.6, Bars: []model.Bar{
		{StandardLength: 3657.6, Used: 5000, Oversized: true},
		{StandardLength: 3657.6, Used: 1200},
	}}
	if got := longestBar(p); got != 5000 {
		t.Errorf("expected 5000, got %v", got)
	}
	if got := longestBar(model.BOMProfile{StandardLength: 3657.6}); got != 3657.6 {
		t.Errorf("expected standard length, got %v", got)
	}
	if got := longestBar(model.BOMProfile{}); got != 1 {
		t.Errorf("expected 1 for an empty profile, got %v", got)
	}
}

func TestCountBars(t *testing.T) {
	bom := buildTestBOM()
	want := 0
	for _, s := range bom.Series {
		want += s.TotalBars()
	}
	if got := countBars(bom); got != want {
		t.Errorf("expected %d bars, got %d", want, got)
	}
	if countBars(model.BOM{}) != 0 {
		t.Error("expected no bars for an empty BOM")
	}
}
