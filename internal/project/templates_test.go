package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/GlazeCut/internal/model"
)

func TestSaveAndLoadTemplates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")

	store := model.NewTemplateStore()
	cfg := model.StructureConfig{
		Type:        model.TypeSliding,
		Width:       1800,
		Height:      1500,
		Series:      model.DefaultSeries(),
		FixedPanels: []model.FixedPanel{{Position: model.PositionTop, Size: 400}},
		Sliding:     model.NewSlidingConfig(model.Shutters3G),
	}
	store.Add(model.NewDesignTemplate("3 track", "Slider with top light", cfg))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}

	if len(loaded.Templates) != 1 {
		t.Fatalf("expected 1 template, got %d", len(loaded.Templates))
	}
	if loaded.Templates[0].Name != "3 track" {
		t.Errorf("expected '3 track', got %q", loaded.Templates[0].Name)
	}
	got := loaded.Templates[0].Config
	if got.Sliding == nil || got.Sliding.ShutterConfig != model.Shutters3G {
		t.Errorf("sliding config not restored: %+v", got.Sliding)
	}
	if len(got.FixedPanels) != 1 || got.FixedPanels[0].Size != 400 {
		t.Errorf("fixed panels not restored: %+v", got.FixedPanels)
	}
}

func TestLoadTemplates_NotFound(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.json")

	store, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if len(store.Templates) != 0 {
		t.Errorf("expected empty store, got %d templates", len(store.Templates))
	}
}

func TestLoadTemplates_SanitisesConfigs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "templates.json")
	data := []byte(`{"templates":[{"id":"t1","name":"Bad","config":{"type":"casement","width":-5,"height":900}}]}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	store, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}
	if store.Templates[0].Config.Width != 0 {
		t.Errorf("expected negative width coerced to 0, got %f", store.Templates[0].Config.Width)
	}
}

func TestSaveAndLoadTemplates_Multiple(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "templates.json")

	store := model.NewTemplateStore()
	store.Add(model.NewDesignTemplate("T1", "First", model.StructureConfig{Type: model.TypeMirror}))
	store.Add(model.NewDesignTemplate("T2", "Second", model.StructureConfig{Type: model.TypeLouvers}))
	store.Add(model.NewDesignTemplate("T3", "Third", model.StructureConfig{Type: model.TypeCasement}))

	if err := SaveTemplates(path, store); err != nil {
		t.Fatalf("SaveTemplates error: %v", err)
	}

	loaded, err := LoadTemplates(path)
	if err != nil {
		t.Fatalf("LoadTemplates error: %v", err)
	}
	if len(loaded.Templates) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(loaded.Templates))
	}
	if loaded.FindByName("T2") == nil {
		t.Error("expected to find T2 by name")
	}
}
