package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/ziadkadry99/solidview/internal/principles"
	"github.com/ziadkadry99/solidview/internal/site"
	"github.com/ziadkadry99/solidview/internal/viewer"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
	SiteName string
}

// Deps are the collaborators the server displays.
type Deps struct {
	// Viewer is nil when the documents failed to load at startup.
	Viewer *viewer.Viewer
	// LoadErr is the startup failure, if any. It is never shown to clients.
	LoadErr      error
	HighlightCSS string
	Search       []site.SearchEntry
	Mermaid      any
	Logger       *slog.Logger
}

// Server is the documentation viewer HTTP server.
type Server struct {
	cfg        Config
	deps       Deps
	logger     *slog.Logger
	shell      *site.Shell
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. Either deps.Viewer or deps.LoadErr must be set.
func New(cfg Config, deps Deps) (*Server, error) {
	if deps.Viewer == nil && deps.LoadErr == nil {
		return nil, errors.New("server needs a viewer or a load error")
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	shell, err := site.NewShell(site.ShellOptions{
		SiteName:     cfg.SiteName,
		AssetBase:    "/static/",
		AssetVersion: uuid.NewString()[:8],
		API:          "/api/principles/",
		Href:         principles.RouteHref,
		Mermaid:      deps.Mermaid,
	})
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:    cfg,
		deps:   deps,
		logger: logger,
		shell:  shell,
	}
	s.router = s.buildRouter()
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", s.handleHealth)

	r.Get("/", s.handleHome)
	r.Get("/p/{principle}", s.handlePage)
	r.Get("/static/{asset}", s.handleAsset)

	r.Route("/api", func(r chi.Router) {
		r.Get("/principles", s.handleListPrinciples)
		r.Get("/principles/{principle}", s.handleFragment)
		r.Get("/search", s.handleSearch)
	})

	r.NotFound(s.handleNotFound)

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Healthy reports whether the documents loaded at startup.
func (s *Server) Healthy() bool { return s.deps.Viewer != nil }

// URL returns the local address the server listens on.
func (s *Server) URL() string { return fmt.Sprintf("http://localhost:%d", s.cfg.Port) }

// Start begins listening on the configured port. It returns
// http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	s.logger.Info("solidview listening", "addr", addr, "url", s.URL(), "healthy", s.Healthy())
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// requestLogger emits one structured record per request.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			level := slog.LevelInfo
			if status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http request",
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
