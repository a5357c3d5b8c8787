package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/piwi3910/GlazeCut/internal/model"
)

// DesignExt is the file extension used for saved designs.
const DesignExt = ".glazecut"

// ErrInvalidDesign is returned when a design document has the wrong shape.
var ErrInvalidDesign = errors.New("invalid design file")

// Save writes a design as indented JSON.
func Save(path string, d model.Design) error {
	if d.Items == nil {
		d.Items = []model.QuotationItem{}
	}
	return writeJSON(path, d)
}

// Load reads a design file and validates it with ImportDesign.
func Load(path string) (model.Design, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Design{}, fmt.Errorf("failed to read design file: %w", err)
	}
	return ImportDesign(data)
}

// ImportDesign parses a design document. The document must be an object
// with a settings object and an items array; anything else is rejected as a
// whole with ErrInvalidDesign. Item configs are sanitised and missing item
// IDs are generated.
func ImportDesign(data []byte) (model.Design, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.Design{}, fmt.Errorf("%w: %v", ErrInvalidDesign, err)
	}

	settings, ok := raw["settings"]
	if !ok || !isJSONKind(settings, '{') {
		return model.Design{}, fmt.Errorf("%w: settings must be an object", ErrInvalidDesign)
	}
	items, ok := raw["items"]
	if !ok || !isJSONKind(items, '[') {
		return model.Design{}, fmt.Errorf("%w: items must be an array", ErrInvalidDesign)
	}

	var d model.Design
	if err := json.Unmarshal(settings, &d.Settings); err != nil {
		return model.Design{}, fmt.Errorf("%w: settings: %v", ErrInvalidDesign, err)
	}
	if err := json.Unmarshal(items, &d.Items); err != nil {
		return model.Design{}, fmt.Errorf("%w: items: %v", ErrInvalidDesign, err)
	}

	for i := range d.Items {
		item := &d.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()[:8]
		}
		if item.Quantity < 0 {
			item.Quantity = 0
		}
		if item.AreaUnit == "" {
			item.AreaUnit = model.AreaSqFt
		}
		item.Config = model.Sanitize(item.Config)
	}
	return d, nil
}

// isJSONKind reports whether raw is a JSON value starting with open.
func isJSONKind(raw json.RawMessage, open byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == open
}
