// Package web serves the proofreader as a browser page and a JSON API.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/custodia-labs/docproof/internal/core/ports/driving"
	"github.com/custodia-labs/docproof/internal/logger"
)

//go:embed templates/index.html
var templateFS embed.FS

// shutdownTimeout bounds graceful shutdown once the context is cancelled.
const shutdownTimeout = 10 * time.Second

// Config holds the dependencies of the web server.
type Config struct {
	// Proofread runs the pipeline (required).
	Proofread driving.ProofreadService

	// Registry receives the HTTP metrics and is exposed on /metrics.
	// Nil disables both.
	Registry *prometheus.Registry

	// AccessLog receives one JSON line per request. Defaults to stdout.
	AccessLog io.Writer

	// Tracing enables the otelfiber middleware.
	Tracing bool
}

// Server is the fiber application plus its page template.
type Server struct {
	app       *fiber.App
	proofread driving.ProofreadService
	page      *template.Template
}

// NewServer builds the fiber app and registers all routes.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Proofread == nil {
		return nil, errors.New("web: proofread service is required")
	}
	if cfg.AccessLog == nil {
		cfg.AccessLog = os.Stdout
	}

	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler(),
		DisableStartupMessage: true,
		ReadTimeout:           30 * time.Second,
	})

	app.Use(RequestID())
	app.Use(Logger(cfg.AccessLog))
	if cfg.Tracing {
		app.Use(otelfiber.Middleware())
	}
	if cfg.Registry != nil {
		httpMetrics, err := NewHTTPMetrics(cfg.Registry)
		if err != nil {
			return nil, err
		}
		app.Use(httpMetrics.Handler())
	}

	s := &Server{app: app, proofread: cfg.Proofread, page: page}
	s.routes(cfg.Registry)
	return s, nil
}

// App exposes the fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Listen(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("web: shutting down")
		return s.app.ShutdownWithTimeout(shutdownTimeout)
	}
}
