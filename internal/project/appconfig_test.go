package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/GlazeCut/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := model.DefaultAppConfig()
	cfg.KerfWidth = 4.0
	cfg.DefaultRate = 620
	cfg.DefaultAreaUnit = model.AreaSqMt
	cfg.RecentDesigns = []string{"/tmp/a.glazecut", "/tmp/b.glazecut"}

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.KerfWidth != 4.0 {
		t.Errorf("expected KerfWidth=4.0, got %f", loaded.KerfWidth)
	}
	if loaded.DefaultRate != 620 {
		t.Errorf("expected DefaultRate=620, got %f", loaded.DefaultRate)
	}
	if loaded.DefaultAreaUnit != model.AreaSqMt {
		t.Errorf("expected sqmt, got %s", loaded.DefaultAreaUnit)
	}
	if len(loaded.RecentDesigns) != 2 {
		t.Errorf("expected 2 recent designs, got %d", len(loaded.RecentDesigns))
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "config.json")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultRate != defaults.DefaultRate {
		t.Errorf("expected default rate %f, got %f", defaults.DefaultRate, cfg.DefaultRate)
	}
	if cfg.Currency != "INR" {
		t.Errorf("expected currency INR, got %s", cfg.Currency)
	}
}

func TestLoadAppConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"default_rate": 700, "recent_designs": null}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}
	if cfg.DefaultRate != 700 {
		t.Errorf("expected DefaultRate=700, got %f", cfg.DefaultRate)
	}
	if cfg.GasketWastePct != 10 {
		t.Errorf("expected default gasket waste 10, got %f", cfg.GasketWastePct)
	}
	if cfg.RecentDesigns == nil {
		t.Error("RecentDesigns should not be nil")
	}
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "config.json")
	if err := SaveAppConfig(path, model.DefaultAppConfig()); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()
	if !strings.HasSuffix(path, filepath.Join(".glazecut", "config.json")) {
		t.Errorf("unexpected default config path %s", path)
	}
}

func TestAddRecentDesign(t *testing.T) {
	cfg := model.DefaultAppConfig()
	AddRecentDesign(&cfg, "a")
	AddRecentDesign(&cfg, "b")
	AddRecentDesign(&cfg, "a")

	if len(cfg.RecentDesigns) != 2 || cfg.RecentDesigns[0] != "a" || cfg.RecentDesigns[1] != "b" {
		t.Errorf("unexpected recent list %v", cfg.RecentDesigns)
	}

	for i := 0; i < 15; i++ {
		AddRecentDesign(&cfg, string(rune('c'+i)))
	}
	if len(cfg.RecentDesigns) != maxRecentDesigns {
		t.Errorf("expected %d recent designs, got %d", maxRecentDesigns, len(cfg.RecentDesigns))
	}
}
