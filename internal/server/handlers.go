package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/piwi3910/GlazeCut/internal/bom"
	"github.com/piwi3910/GlazeCut/internal/costing"
	"github.com/piwi3910/GlazeCut/internal/export"
	"github.com/piwi3910/GlazeCut/internal/geometry"
	"github.com/piwi3910/GlazeCut/internal/model"
	"github.com/piwi3910/GlazeCut/internal/project"
	"github.com/piwi3910/GlazeCut/internal/store"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// readBody returns the request body, capped at maxBodyBytes.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return nil, false
	}
	return data, true
}

// readDesign decodes and sanitises a design body. The optional "cutting"
// member overrides the server's cutting settings.
func (s *Server) readDesign(w http.ResponseWriter, r *http.Request) (model.Design, model.CuttingSettings, bool) {
	data, ok := readBody(w, r)
	if !ok {
		return model.Design{}, model.CuttingSettings{}, false
	}
	d, err := project.ImportDesign(data)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return model.Design{}, model.CuttingSettings{}, false
	}

	var extra struct {
		Cutting *model.CuttingSettings `json:"cutting"`
	}
	cutting := s.cutting
	if err := json.Unmarshal(data, &extra); err == nil && extra.Cutting != nil {
		cutting = *extra.Cutting
	}
	return d, cutting, true
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDecompose(w http.ResponseWriter, r *http.Request) {
	data, ok := readBody(w, r)
	if !ok {
		return
	}
	var cfg model.StructureConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid structure config: "+err.Error())
		return
	}
	if _, ok := model.ParseWindowType(string(cfg.Type)); !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown window type %q", cfg.Type))
		return
	}
	writeJSON(w, http.StatusOK, geometry.Decompose(model.Sanitize(cfg)))
}

func (s *Server) handleBOM(w http.ResponseWriter, r *http.Request) {
	d, cutting, ok := s.readDesign(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, bom.Build(d.Items, cutting))
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	d, _, ok := s.readDesign(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, costing.Quote(d.Settings, d.Items))
}

func (s *Server) handleQuotePDF(w http.ResponseWriter, r *http.Request) {
	d, _, ok := s.readDesign(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteQuotationPDF(&buf, d); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeFile(w, contentTypePDF, "quotation.pdf", buf.Bytes())
}

func (s *Server) handleBOMWorkbook(w http.ResponseWriter, r *http.Request) {
	d, cutting, ok := s.readDesign(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteBOMWorkbook(&buf, bom.Build(d.Items, cutting)); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeFile(w, contentTypeXLSX, "bom.xlsx", buf.Bytes())
}

func writeFile(w http.ResponseWriter, contentType, name string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("failed to write %s: %v", name, err)
	}
}

// saveRequest is the body of design create and update calls.
type saveRequest struct {
	Name   string          `json:"name"`
	Design json.RawMessage `json:"design"`
}

func (s *Server) handleListDesigns(w http.ResponseWriter, r *http.Request) {
	list, err := s.designs.List(r.Context())
	if err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetDesign(w http.ResponseWriter, r *http.Request) {
	rec, err := s.designs.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleCreateDesign(w http.ResponseWriter, r *http.Request) {
	s.saveDesign(w, r, "", http.StatusCreated)
}

func (s *Server) handlePutDesign(w http.ResponseWriter, r *http.Request) {
	s.saveDesign(w, r, mux.Vars(r)["id"], http.StatusOK)
}

func (s *Server) saveDesign(w http.ResponseWriter, r *http.Request, id string, status int) {
	data, ok := readBody(w, r)
	if !ok {
		return
	}
	var req saveRequest
	if err := json.Unmarshal(data, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	d, err := project.ImportDesign(req.Design)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	d.Items = costing.WithHardwareCost(d.Items)
	rec, err := s.designs.Put(r.Context(), id, req.Name, d)
	if err != nil {
		s.storeError(w, err)
		return
	}
	writeJSON(w, status, rec)
}

func (s *Server) handleDeleteDesign(w http.ResponseWriter, r *http.Request) {
	if err := s.designs.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.storeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "design not found")
		return
	}
	log.Printf("design store: %v", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
