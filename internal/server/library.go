package server

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/piwi3910/GlazeCut/internal/geometry"
	"github.com/piwi3910/GlazeCut/internal/importer"
	"github.com/piwi3910/GlazeCut/internal/model"
)

type removeDividerRequest struct {
	Grid        model.GridConfig `json:"grid"`
	Orientation string           `json:"orientation"` // "vertical" or "horizontal"
	Index       int              `json:"index"`
}

func (s *Server) handleRemoveDivider(w http.ResponseWriter, r *http.Request) {
	data, ok := readBody(w, r)
	if !ok {
		return
	}
	var req removeDividerRequest
	if err := json.Unmarshal(data, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	var grid model.GridConfig
	switch req.Orientation {
	case "vertical":
		if req.Index < 0 || req.Index >= len(req.Grid.VerticalDividers) {
			writeError(w, http.StatusBadRequest, "divider index out of range")
			return
		}
		grid = geometry.RemoveVerticalDivider(req.Grid, req.Index)
	case "horizontal":
		if req.Index < 0 || req.Index >= len(req.Grid.HorizontalDividers) {
			writeError(w, http.StatusBadRequest, "divider index out of range")
			return
		}
		grid = geometry.RemoveHorizontalDivider(req.Grid, req.Index)
	default:
		writeError(w, http.StatusBadRequest, `orientation must be "vertical" or "horizontal"`)
		return
	}
	writeJSON(w, http.StatusOK, grid)
}

type catalogResponse struct {
	Series []model.ProfileSeries `json:"series"`
	Glass  []model.GlassPreset   `json:"glass"`
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	resp := catalogResponse{Series: s.catalog.Series, Glass: s.catalog.Glass}
	if resp.Series == nil {
		resp.Series = []model.ProfileSeries{}
	}
	if resp.Glass == nil {
		resp.Glass = []model.GlassPreset{}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates := s.templates.Templates
	if templates == nil {
		templates = []model.DesignTemplate{}
	}
	writeJSON(w, http.StatusOK, templates)
}

type templateItemRequest struct {
	Label    string         `json:"label"`
	Quantity int            `json:"quantity"`
	Rate     float64        `json:"rate"`
	AreaUnit model.AreaUnit `json:"area_unit"`
}

// handleTemplateItem instantiates a quotation item from a template.
func (s *Server) handleTemplateItem(w http.ResponseWriter, r *http.Request) {
	t := s.templates.FindByID(mux.Vars(r)["id"])
	if t == nil {
		writeError(w, http.StatusNotFound, "template not found")
		return
	}
	data, ok := readBody(w, r)
	if !ok {
		return
	}
	req := templateItemRequest{Label: t.Name, Quantity: 1, AreaUnit: model.AreaSqFt}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}
	}
	if req.Quantity < 1 {
		writeError(w, http.StatusBadRequest, "quantity must be at least 1")
		return
	}
	writeJSON(w, http.StatusOK, t.ToItem(req.Label, req.Quantity, req.Rate, req.AreaUnit))
}

type importResponse struct {
	Items    []model.QuotationItem `json:"items"`
	Errors   []string              `json:"errors"`
	Warnings []string              `json:"warnings"`
}

// handleImport turns a CSV item schedule body into quotation items. Rows
// are resolved against the server catalogue when one is configured.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, ok := readBody(w, r)
	if !ok {
		return
	}
	if len(bytes.TrimSpace(data)) == 0 {
		writeError(w, http.StatusBadRequest, "empty schedule")
		return
	}

	opts := importer.DefaultOptions()
	if len(s.catalog.Series) > 0 {
		opts.Catalog = s.catalog
	}
	result := importer.ImportCSVFromReader(bytes.NewReader(data), importer.DetectCSVDelimiter(data), opts)

	resp := importResponse{Items: result.Items, Errors: result.Errors, Warnings: result.Warnings}
	if resp.Items == nil {
		resp.Items = []model.QuotationItem{}
	}
	status := http.StatusOK
	if len(resp.Items) == 0 {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, resp)
}
