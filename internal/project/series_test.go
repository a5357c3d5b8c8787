package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/GlazeCut/internal/model"
)

func TestExportAndImportSeries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.json")
	s := model.DefaultSeries()

	if err := ExportSeries(path, s); err != nil {
		t.Fatalf("ExportSeries failed: %v", err)
	}
	got, err := ImportSeries(path)
	if err != nil {
		t.Fatalf("ImportSeries failed: %v", err)
	}
	if got.ID != s.ID || got.Name != s.Name {
		t.Errorf("expected %s/%s, got %s/%s", s.ID, s.Name, got.ID, got.Name)
	}
	if got.Width(model.ProfileMullion) != 70 {
		t.Errorf("expected mullion width 70, got %f", got.Width(model.ProfileMullion))
	}
	if len(got.Hardware) != len(s.Hardware) {
		t.Errorf("expected %d hardware items, got %d", len(s.Hardware), len(got.Hardware))
	}
}

func TestImportSeriesAssignsID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.json")
	data := []byte(`{"name":"Imported","profiles":{"outerFrame":{"width":55}}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ImportSeries(path)
	if err != nil {
		t.Fatalf("ImportSeries failed: %v", err)
	}
	if got.ID == "" {
		t.Error("expected a generated ID")
	}
	if got.Hardware == nil {
		t.Error("hardware should not be nil")
	}
}

func TestImportSeriesRejectsIncomplete(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"noname.json":     `{"profiles":{"outerFrame":{"width":55}}}`,
		"noprofiles.json": `{"name":"Empty"}`,
		"broken.json":     `{"name":`,
	}
	for name, body := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := ImportSeries(path); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}
