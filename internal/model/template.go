package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// DesignTemplate is a reusable structure preset, e.g. "3-track slider with
// top fixed light".
type DesignTemplate struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
	Config      StructureConfig `json:"config"`
}

// NewDesignTemplate creates a template holding a deep copy of cfg.
func NewDesignTemplate(name, description string, cfg StructureConfig) DesignTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return DesignTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Config:      CloneConfig(cfg),
	}
}

// ToItem creates a quotation item from this template with a fresh ID, so
// later edits to the item do not reach the template.
func (t DesignTemplate) ToItem(label string, qty int, rate float64, unit AreaUnit) QuotationItem {
	return NewQuotationItem(label, CloneConfig(t.Config), qty, rate, unit)
}

// TemplateStore holds a collection of design templates.
type TemplateStore struct {
	Templates []DesignTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []DesignTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t DesignTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *DesignTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *DesignTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// CloneConfig returns a deep copy of cfg. Configs are plain data, so a JSON
// round trip copies every nested slice, map and pointer.
func CloneConfig(cfg StructureConfig) StructureConfig {
	data, err := json.Marshal(cfg)
	if err != nil {
		return cfg
	}
	var out StructureConfig
	if err := json.Unmarshal(data, &out); err != nil {
		return cfg
	}
	return out
}
