package project

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/google/uuid"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// ExportSeries exports a single profile series to a JSON file for sharing.
func ExportSeries(path string, s model.ProfileSeries) error {
	return writeJSON(path, s)
}

// ImportSeries imports a single profile series from a JSON file. A series
// without an ID gets a fresh one.
func ImportSeries(path string) (model.ProfileSeries, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.ProfileSeries{}, err
	}

	var s model.ProfileSeries
	if err := json.Unmarshal(data, &s); err != nil {
		return model.ProfileSeries{}, err
	}

	if s.Name == "" {
		return model.ProfileSeries{}, errors.New("imported series has no name")
	}
	if len(s.Profiles) == 0 {
		return model.ProfileSeries{}, errors.New("imported series has no profiles")
	}
	if s.ID == "" {
		s.ID = uuid.New().String()[:8]
	}
	if s.Hardware == nil {
		s.Hardware = []model.HardwareItem{}
	}
	return s, nil
}
