// ===== internal/web/server.go =====
package web

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"dhcpleases/internal/config"
	"dhcpleases/pkg/models"
)

// LeaseSource supplies the current lease snapshot
type LeaseSource interface {
	Leases() models.Leases
	Status() (time.Time, error)
}

// VendorLookup resolves the vendor of a hardware address
type VendorLookup interface {
	Lookup(mac string) *models.OUIEntry
}

// Server represents the HTTP query API
type Server struct {
	cfg     *config.Config
	source  LeaseSource
	vendors VendorLookup
	http    *http.Server
}

// NewServer creates a new web server. vendors may be nil.
func NewServer(cfg *config.Config, source LeaseSource, vendors VendorLookup) *Server {
	s := &Server{
		cfg:     cfg,
		source:  source,
		vendors: vendors,
	}
	s.http = &http.Server{
		Addr:              cfg.HTTPListen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler configures HTTP routes
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(api chi.Router) {
		api.Get("/leases", s.handleLeases)
		api.Get("/leases/ip/{ip}", s.handleLeasesByIP)
		api.Get("/leases/mac/{mac}", s.handleLeasesByMAC)
		api.Get("/hostnames", s.handleHostnames)
		api.Get("/client-hostnames", s.handleClientHostnames)
	})
	return r
}

// Start starts the HTTP server; it returns http.ErrServerClosed after
// Shutdown
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
