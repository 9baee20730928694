// Package web serves the company site: marketing pages, the product and
// job listings pulled from the backend API, and the two forms.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/selamsoft/selam-web/internal/api"
	"github.com/selamsoft/selam-web/internal/config"
	"github.com/selamsoft/selam-web/internal/notify"
	"github.com/selamsoft/selam-web/internal/rendering"
	"github.com/selamsoft/selam-web/internal/types"
	"github.com/selamsoft/selam-web/internal/view"
	"github.com/selamsoft/selam-web/internal/web/ratelimit"
)

// Catalog is the backend API as the site uses it.
type Catalog interface {
	BaseURL() string
	ListJobs(ctx context.Context) (*api.List[types.Job], error)
	ListProducts(ctx context.Context) (*api.List[types.Product], error)
	SubmitApplication(ctx context.Context, sub api.Submission) (*api.Receipt, error)
}

// Config holds server configuration
type Config struct {
	Port           int
	RenderTimeout  time.Duration
	MaxUploadBytes int64
	FlashTTL       time.Duration
	Keys           *config.Keys
	SecureCookies  bool
	RateLimit      *ratelimit.Config
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	catalog     Catalog
	contacts    view.ContactSink
	pages       *rendering.Renderer
	flasher     *notify.Flasher
	tokens      *notify.Tokens
	submitter   *view.Submitter
	rateLimiter *ratelimit.Limiter

	renderTimeout  time.Duration
	maxUploadBytes int64
}

// New creates a new server instance. contacts may be nil, in which case
// contact messages are acknowledged without being stored.
func New(cfg Config, catalog Catalog, contacts view.ContactSink) (*Server, error) {
	if catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if cfg.Keys == nil {
		return nil, fmt.Errorf("signing keys are required")
	}
	if cfg.RenderTimeout <= 0 {
		cfg.RenderTimeout = config.DefaultRenderTimeout
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = types.DefaultMaxUploadBytes
	}

	pages, err := rendering.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	s := &Server{
		catalog:        catalog,
		contacts:       contacts,
		pages:          pages,
		flasher:        notify.NewFlasher(cfg.Keys.Flash, cfg.FlashTTL, cfg.SecureCookies),
		tokens:         notify.NewTokens(cfg.Keys.CSRF, notify.DefaultTokenTTL),
		submitter:      view.NewSubmitter(catalog, view.NewInFlight(), cfg.MaxUploadBytes),
		rateLimiter:    ratelimit.NewLimiter(cfg.RateLimit),
		renderTimeout:  cfg.RenderTimeout,
		maxUploadBytes: cfg.MaxUploadBytes,
	}

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /about", s.handleAbout)
	mux.HandleFunc("GET /services", s.handleServices)
	mux.HandleFunc("GET /products", s.handleProducts)
	mux.HandleFunc("GET /products/{id}", s.handleProduct)
	mux.HandleFunc("GET /jobs", s.handleJobs)
	mux.HandleFunc("GET /job-application/{jobId}", s.handleApplyForm)
	mux.HandleFunc("POST /job-application/{jobId}", s.handleApplySubmit)
	mux.HandleFunc("GET /contact", s.handleContactForm)
	mux.HandleFunc("POST /contact", s.handleContactSubmit)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(rendering.Static())))
	mux.HandleFunc("/", s.handleNotFound)

	s.handler = s.withRateLimit(s.withLogging(s.withSecurityHeaders(s.withRecover(mux))))

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second, // uploads
		WriteTimeout:      cfg.RenderTimeout + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

// Handler returns the fully wrapped router.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[web] Server starting on %s (api %s)", s.httpServer.Addr, s.catalog.BaseURL())
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-stop:
	case err := <-errCh:
		s.Close()
		return fmt.Errorf("server error: %w", err)
	}
	log.Println("[web] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.Close()
	log.Println("[web] Server stopped")
	return nil
}

// Close releases background resources. The contact store belongs to the
// caller.
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}

// render writes page with status. Without an explicit notice, a pending
// flash is shown instead.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page, title string, notice *notify.Notice, data any) {
	if notice == nil {
		if n, ok := s.flasher.Pop(w, r); ok {
			notice = n
		}
	}

	var buf bytes.Buffer
	if err := s.pages.Render(&buf, page, rendering.NewPage(r.URL.Path, title, notice, data)); err != nil {
		log.Printf("[web] %v", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[web] write %s: %v", r.URL.Path, err)
	}
}

// renderError shows the generic error page.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, heading, message string) {
	s.render(w, r, status, rendering.PageError, heading, nil, errorPage{Heading: heading, Message: message})
}

// redirectWithNotice stores n for the next page and redirects there.
func (s *Server) redirectWithNotice(w http.ResponseWriter, r *http.Request, target string, n *notify.Notice) {
	if n != nil {
		if err := s.flasher.Set(w, *n); err != nil {
			log.Printf("[web] failed to set flash: %v", err)
		}
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[web] Error encoding JSON response: %v", err)
	}
}
