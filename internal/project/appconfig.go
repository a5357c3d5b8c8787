package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// maxRecentDesigns caps the recent designs list.
const maxRecentDesigns = 10

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.glazecut/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".glazecut")
}

// DefaultConfigPath returns the default path for the application config file.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON.
// It creates any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	return writeJSON(path, config)
}

// LoadAppConfig reads an AppConfig from the given path.
// If the file does not exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	config := model.DefaultAppConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	if config.RecentDesigns == nil {
		config.RecentDesigns = []string{}
	}
	return config, nil
}

// AddRecentDesign moves path to the front of the recent list.
func AddRecentDesign(config *model.AppConfig, path string) {
	recent := []string{path}
	for _, p := range config.RecentDesigns {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentDesigns {
		recent = recent[:maxRecentDesigns]
	}
	config.RecentDesigns = recent
}

// writeJSON writes v as indented JSON, creating parent directories.
func writeJSON(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
