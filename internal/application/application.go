package application

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/eugenenazirov/packaging-selector/internal/api"
	"github.com/eugenenazirov/packaging-selector/internal/catalog"
	"github.com/eugenenazirov/packaging-selector/internal/config"
	"github.com/eugenenazirov/packaging-selector/internal/metrics"
	"github.com/eugenenazirov/packaging-selector/internal/packaging"
)

// App encapsulates the application dependencies and HTTP server.
type App struct {
	catalog  catalog.Source
	selector packaging.Selector
	handler  *api.Handler
	router   http.Handler
	logger   *zap.Logger
	server   *http.Server
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	source, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load packaging catalog: %w", err)
	}
	options := source.Options()
	logger.Info("packaging catalog loaded",
		zap.Int("entries", len(options)),
		zap.String("file", cfg.CatalogFile),
	)

	selector := packaging.New(options)
	handler := api.NewHandler(selector, source)
	apiRouter := api.NewRouter(handler, logger,
		api.WithLogging(cfg.EnableRequestLogging),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	return &App{
		catalog:  source,
		selector: selector,
		handler:  handler,
		router:   apiRouter,
		logger:   logger,
		server:   NewServer(cfg, BuildRootHandler(apiRouter)),
	}, nil
}

// BuildRootHandler mounts the API under /api/ and the Prometheus endpoint under /metrics.
func BuildRootHandler(apiHandler http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/", apiHandler)
	mux.Handle("GET /metrics", metrics.Handler())
	return mux
}

// NewServer creates and configures an HTTP server from the provided configuration.
func NewServer(cfg config.Config, handler http.Handler) *http.Server {
	addr := cfg.Port
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Start starts the HTTP server in a goroutine and logs the listening address.
func (a *App) Start() error {
	go func() {
		a.logger.Info("server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Fatal("server error", zap.Error(err))
		}
	}()
	return nil
}

// Server returns the HTTP server instance for shutdown handling.
func (a *App) Server() *http.Server {
	return a.server
}
