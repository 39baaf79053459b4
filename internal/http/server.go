// Package http serves the agency site: health and metrics endpoints, the
// localized HTML shell and the JSON API under /api.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"agencysite/internal/auth"
	"agencysite/internal/contact"
	"agencysite/internal/core"
	"agencysite/internal/flood"
	"agencysite/internal/i18n"
	"agencysite/internal/projects"
	"agencysite/internal/testimonials"
)

const serviceName = "agencysite"

// Deps are the components the site serves.
type Deps struct {
	Language     *i18n.LanguageContext
	Document     *i18n.Document
	Projects     *projects.Provider
	Testimonials *testimonials.Service
	Auth         *auth.Service
	Contact      *contact.Service
	Floodgate    *flood.Floodgate
	Metrics      *Metrics
	Gatherer     prometheus.Gatherer
}

type Server struct {
	config *core.ServerConfig
	logger *zap.Logger
	server *http.Server
}

func NewServer(config *core.ServerConfig, deps Deps, logger *zap.Logger) *Server {
	mux := setupRoutes(config, deps, logger)

	return &Server{
		config: config,
		logger: logger,
		server: createHTTPServer(config, mux),
	}
}

func setupRoutes(config *core.ServerConfig, deps Deps, logger *zap.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, logger, fmt.Sprintf(`{"status":"ok","service":%q}`, serviceName))
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		mode := deps.Projects.Mode()
		if mode == projects.ModeLoading {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		writeJSON(w, logger, fmt.Sprintf(`{"status":"ready","service":%q,"mode":%q}`, serviceName, mode))
	})

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	mux.Handle("/api/", newAPIRouter(config, deps, logger.Named("api")))

	mux.HandleFunc("/", homeHandler(deps, logger))

	return mux
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, body string) {
	w.Header().Set("Content-Type", "application/json")
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Debug("Failed to write response", zap.Error(err))
	}
}

func createHTTPServer(config *core.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:      handler,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting HTTP server",
		zap.String("addr", s.server.Addr))

	go func() {
		<-ctx.Done()
		s.logger.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Failed to shutdown HTTP server gracefully", zap.Error(err))
		}
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server failed: %w", err)
	}

	return nil
}

// Handler exposes the route tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}
