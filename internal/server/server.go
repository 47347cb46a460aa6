// Package server exposes the model pipeline over HTTP.
//
// Routes:
//
//	POST /v1/render          TOML model body → OpenSCAD source (text/plain)
//	POST /v1/tree            TOML model body → DOT, or SVG with ?format=svg
//	GET  /healthz            build information as JSON
//
// Every render response carries an X-Render-ID header (a UUID) that also
// appears in the server log, and X-Cache reporting whether the output was
// served from the cache. Model errors are answered with 422 and a JSON body:
//
//	{"code": "DIMENSION_MISMATCH", "message": "...", "render_id": "..."}
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/scadgen/pkg/observability"
	"github.com/matzehuels/scadgen/pkg/pipeline"
)

const (
	// DefaultAddr is the listen address when none is configured.
	DefaultAddr = ":8080"

	// MaxBodyBytes bounds the size of a model upload.
	MaxBodyBytes = 1 << 20

	shutdownTimeout = 10 * time.Second
)

// Content types accepted for model uploads.
var modelContentTypes = []string{"application/toml", "text/plain", "application/octet-stream"}

// Server serves the render API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server that renders through runner.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Group(func(r chi.Router) {
		r.Use(s.instrument)
		r.Get("/healthz", s.handleHealth)

		models := r.With(middleware.AllowContentType(modelContentTypes...))
		models.Post("/v1/render", s.handleRender)
		models.Post("/v1/tree", s.handleTree)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// instrument reports requests to the HTTP hooks and the debug log. It runs
// after routing so the route pattern is known.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		route := chi.RouteContext(r.Context()).RoutePattern()
		hooks.OnRequest(r.Context(), r.Method, route)

		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		dur := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, route, status, dur)
		s.logger.Debug("request", "method", r.Method, "route", route, "status", status, "duration", dur)
	})
}
