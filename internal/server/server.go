// Package server exposes the configurator core over a JSON HTTP API.
package server

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/piwi3910/GlazeCut/internal/model"
	"github.com/piwi3910/GlazeCut/internal/store"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 4 << 20

// DesignStore persists named designs.
type DesignStore interface {
	Put(ctx context.Context, id, name string, d model.Design) (store.Record, error)
	Get(ctx context.Context, id string) (store.Record, error)
	List(ctx context.Context) ([]store.Summary, error)
	Delete(ctx context.Context, id string) error
}

// Options configures a Server.
type Options struct {
	RateLimit float64 // requests per second per client IP, 0 disables limiting
	RateBurst int
	Cutting   model.CuttingSettings
	Catalog   model.Catalog
	Templates model.TemplateStore
}

// Server routes API requests to the core packages and the design store.
type Server struct {
	designs   DesignStore
	cutting   model.CuttingSettings
	catalog   model.Catalog
	templates model.TemplateStore
	router    *mux.Router
}

// New builds the router. designs may be nil, in which case the design
// library routes are not registered.
func New(designs DesignStore, opts Options) *Server {
	s := &Server{
		designs:   designs,
		cutting:   opts.Cutting,
		catalog:   opts.Catalog,
		templates: opts.Templates,
		router:    mux.NewRouter(),
	}

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		api.Use(NewIPRateLimiter(rate.Limit(opts.RateLimit), burst).LimitMiddleware)
	}

	api.HandleFunc("/decompose", s.handleDecompose).Methods(http.MethodPost)
	api.HandleFunc("/bom", s.handleBOM).Methods(http.MethodPost)
	api.HandleFunc("/bom/xlsx", s.handleBOMWorkbook).Methods(http.MethodPost)
	api.HandleFunc("/quote", s.handleQuote).Methods(http.MethodPost)
	api.HandleFunc("/quote/pdf", s.handleQuotePDF).Methods(http.MethodPost)
	api.HandleFunc("/import", s.handleImport).Methods(http.MethodPost)
	api.HandleFunc("/grid/remove-divider", s.handleRemoveDivider).Methods(http.MethodPost)
	api.HandleFunc("/catalog", s.handleCatalog).Methods(http.MethodGet)
	api.HandleFunc("/templates", s.handleListTemplates).Methods(http.MethodGet)
	api.HandleFunc("/templates/{id}/item", s.handleTemplateItem).Methods(http.MethodPost)

	if designs != nil {
		api.HandleFunc("/designs", s.handleListDesigns).Methods(http.MethodGet)
		api.HandleFunc("/designs", s.handleCreateDesign).Methods(http.MethodPost)
		api.HandleFunc("/designs/{id}", s.handleGetDesign).Methods(http.MethodGet)
		api.HandleFunc("/designs/{id}", s.handlePutDesign).Methods(http.MethodPut)
		api.HandleFunc("/designs/{id}", s.handleDeleteDesign).Methods(http.MethodDelete)
	}
	return s
}

// Handler returns the router wrapped with request logging and CORS.
func (s *Server) Handler() http.Handler {
	return logRequests(CORS(s.router))
}
