package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// DefaultCatalogPath returns the default file path for the catalog file.
// This is located at ~/.glazecut/catalog.json.
func DefaultCatalogPath() string {
	return filepath.Join(DefaultConfigDir(), "catalog.json")
}

// SaveCatalog writes the catalog to the specified JSON file.
// It creates parent directories if they do not exist.
func SaveCatalog(path string, cat model.Catalog) error {
	return writeJSON(path, cat)
}

// LoadCatalog reads the catalog from the specified JSON file.
// If the file does not exist, it returns the default catalog and saves it.
func LoadCatalog(path string) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cat := model.DefaultCatalog()
			if saveErr := SaveCatalog(path, cat); saveErr != nil {
				return cat, saveErr
			}
			return cat, nil
		}
		return model.Catalog{}, err
	}
	var cat model.Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return model.Catalog{}, err
	}
	if cat.Series == nil {
		cat.Series = []model.ProfileSeries{}
	}
	if cat.Glass == nil {
		cat.Glass = []model.GlassPreset{}
	}
	return cat, nil
}

// LoadOrCreateCatalog loads the catalog from the default path.
// If the file does not exist, it creates one with default entries.
func LoadOrCreateCatalog() (model.Catalog, string, error) {
	path := DefaultCatalogPath()
	cat, err := LoadCatalog(path)
	return cat, path, err
}

// ExportCatalog exports the catalog to a user-specified JSON file.
func ExportCatalog(path string, cat model.Catalog) error {
	return SaveCatalog(path, cat)
}

// ImportCatalog imports a catalog from a user-specified JSON file,
// merging it with the existing catalog. Duplicate IDs are skipped.
func ImportCatalog(path string, existing model.Catalog) (model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Catalog
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, err
	}

	seriesIDs := make(map[string]bool, len(existing.Series))
	for _, s := range existing.Series {
		seriesIDs[s.ID] = true
	}
	glassIDs := make(map[string]bool, len(existing.Glass))
	for _, g := range existing.Glass {
		glassIDs[g.ID] = true
	}

	for _, s := range imported.Series {
		if !seriesIDs[s.ID] {
			existing.Series = append(existing.Series, s)
			seriesIDs[s.ID] = true
		}
	}
	for _, g := range imported.Glass {
		if !glassIDs[g.ID] {
			existing.Glass = append(existing.Glass, g)
			glassIDs[g.ID] = true
		}
	}

	return existing, nil
}
