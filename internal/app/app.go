// Package app provides the main application bootstrap and runtime orchestration.
//
// The App type wires together all dependencies and exposes methods to run
// different operational modes:
//
//   - Serve mode: admin content API plus the health and metrics server
//   - Migrate mode: apply database migrations and exit
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/bankim/content-admin/internal/api"
	"github.com/bankim/content-admin/internal/core/ports"
	"github.com/bankim/content-admin/internal/dropdown"
	"github.com/bankim/content-admin/internal/platform/config"
	"github.com/bankim/content-admin/internal/platform/observability"
	"github.com/bankim/content-admin/internal/platform/worker"
	db "github.com/bankim/content-admin/internal/storage"
)

const (
	poolStatsInterval = 15 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// App holds the application dependencies and provides methods to run different modes.
type App struct {
	cfg      *config.Config
	database *db.DB
	logger   *zerolog.Logger
}

// New creates a new App instance with the given dependencies.
func New(cfg *config.Config, database *db.DB, logger *zerolog.Logger) *App {
	return &App{
		cfg:      cfg,
		database: database,
		logger:   logger,
	}
}

// NewDropdownService builds the classifier, fallback provider, resolver and
// service from configuration.
func NewDropdownService(cfg *config.Config, store ports.ContentStore, logger *zerolog.Logger) (*dropdown.Service, error) {
	order, err := dropdown.ParseOptionOrder(cfg.DropdownOptionOrder)
	if err != nil {
		return nil, fmt.Errorf("dropdown option order: %w", err)
	}

	classifier := dropdown.NewClassifier(dropdown.DefaultRules(), logger)
	fallback := dropdown.NewFallbackProvider(classifier, dropdown.DefaultMessages())
	resolver := dropdown.NewResolver(store, logger, dropdown.WithOrder(order))
	scopes := dropdown.DefaultScopes(cfg.DropdownIncludeTextOptions)

	return dropdown.NewService(scopes, resolver, fallback, store, logger), nil
}

// StartHealthServer starts the health check and metrics server.
func (a *App) StartHealthServer(ctx context.Context) error {
	srv := observability.NewServer(a.database, a.cfg.HealthPort, a.logger)

	return srv.Start(ctx)
}

// RunMigrate applies pending migrations.
func (a *App) RunMigrate(ctx context.Context) error {
	if err := a.database.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	a.logger.Info().Msg("migrations applied")

	return nil
}

// RunServe serves the admin API until ctx is cancelled.
func (a *App) RunServe(ctx context.Context) error {
	service, err := NewDropdownService(a.cfg, a.database, a.logger)
	if err != nil {
		return err
	}

	handler := api.NewHandler(service, a.database, a.logger)
	router := api.NewRouter(handler, api.RouterOptions{
		RateLimitRPS:   a.cfg.APIRateLimitRPS,
		RateLimitBurst: a.cfg.APIRateLimitBurst,
		RequestTimeout: a.cfg.HTTPRequestTimeout,
	}, a.logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return observability.Serve(gctx, srv, "Content API server", a.logger)
	})

	g.Go(func() error {
		return a.reportPoolStats(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}

	return ctx.Err()
}

func (a *App) reportPoolStats(ctx context.Context) error {
	err := worker.TickerLoop(ctx, worker.TickerConfig{
		Name:       "db-pool-stats",
		Interval:   poolStatsInterval,
		RunOnStart: true,
		OnTick: func(context.Context) {
			acquired, total := a.database.PoolStats()
			observability.DBPoolAcquiredConns.Set(float64(acquired))
			observability.DBPoolTotalConns.Set(float64(total))
		},
		Logger: a.logger,
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}
