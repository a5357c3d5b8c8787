package project

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// BackupVersion is written into every backup file.
const BackupVersion = "1.0.0"

// BackupData is the top-level structure for import/export of all application data.
type BackupData struct {
	Version   string              `json:"version"`
	CreatedAt string              `json:"created_at"`
	Config    model.AppConfig     `json:"config"`
	Catalog   model.Catalog       `json:"catalog"`
	Templates model.TemplateStore `json:"templates"`
}

// ExportAllData exports config, catalog and templates to a single JSON file.
func ExportAllData(exportPath string, config model.AppConfig, catalog model.Catalog, templates model.TemplateStore) error {
	backup := BackupData{
		Version:   BackupVersion,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Config:    config,
		Catalog:   catalog,
		Templates: templates,
	}
	if err := writeJSON(exportPath, backup); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportAllData reads a backup JSON file and returns the contained data.
// The caller is responsible for applying it.
func ImportAllData(importPath string) (BackupData, error) {
	data, err := os.ReadFile(importPath)
	if err != nil {
		return BackupData{}, fmt.Errorf("failed to read backup file: %w", err)
	}
	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return BackupData{}, fmt.Errorf("failed to parse backup file: %w", err)
	}
	if backup.Version == "" {
		return BackupData{}, fmt.Errorf("invalid backup file: missing version field")
	}
	if backup.Config.RecentDesigns == nil {
		backup.Config.RecentDesigns = []string{}
	}
	if backup.Catalog.Series == nil {
		backup.Catalog.Series = []model.ProfileSeries{}
	}
	if backup.Catalog.Glass == nil {
		backup.Catalog.Glass = []model.GlassPreset{}
	}
	if backup.Templates.Templates == nil {
		backup.Templates.Templates = []model.DesignTemplate{}
	}
	return backup, nil
}
