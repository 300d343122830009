package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/uptrace/bun"

	"github.com/card-table-club/tally-bot/app/eventbus"
	"github.com/card-table-club/tally-bot/app/handlers"
	playerservice "github.com/card-table-club/tally-bot/app/modules/player/application"
	playerdb "github.com/card-table-club/tally-bot/app/modules/player/infrastructure/repositories"
	roundservice "github.com/card-table-club/tally-bot/app/modules/round/application"
	rounddb "github.com/card-table-club/tally-bot/app/modules/round/infrastructure/repositories"
	standingsservice "github.com/card-table-club/tally-bot/app/modules/standings/application"
	standingshandlers "github.com/card-table-club/tally-bot/app/modules/standings/infrastructure/handlers"
	standingsqueue "github.com/card-table-club/tally-bot/app/modules/standings/infrastructure/queue"
	standingsdb "github.com/card-table-club/tally-bot/app/modules/standings/infrastructure/repositories"
	standingsrouter "github.com/card-table-club/tally-bot/app/modules/standings/infrastructure/router"
	tableservice "github.com/card-table-club/tally-bot/app/modules/table/application"
	tabledb "github.com/card-table-club/tally-bot/app/modules/table/infrastructure/repositories"
	"github.com/card-table-club/tally-bot/config"
	"github.com/card-table-club/tally-bot/db/bundb"
)

// App wires the modules together: one bun connection pool, one event bus,
// one watermill router for the standings consumers, one River queue for the
// periodic refresh, and the HTTP API on top.
type App struct {
	Config          *config.Config
	Logger          *slog.Logger
	DB              *bun.DB
	EventBus        eventbus.EventBus
	WatermillRouter *message.Router
	QueueService    standingsqueue.QueueService
	HTTPServer      *http.Server

	registry *prometheus.Registry
}

// NewApp initializes the application.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := bundb.NewBunDB(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	bus, err := eventbus.NewEventBus(ctx, cfg.NATS.URL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	registry := prometheus.NewRegistry()

	playerRepo := &playerdb.PlayerDBImpl{DB: db}
	tableRepo := &tabledb.TableDBImpl{DB: db}
	roundRepo := &rounddb.RoundDBImpl{DB: db}
	snapshotRepo := &standingsdb.SnapshotDBImpl{DB: db}

	playerSvc := playerservice.NewPlayerService(playerRepo, bus, logger)
	tableSvc := tableservice.NewTableService(tableRepo, playerRepo, roundRepo, bus, logger)
	roundSvc := roundservice.NewRoundService(roundRepo, bus, logger)
	standingsSvc := standingsservice.NewStandingsService(
		playerRepo,
		tableRepo,
		roundRepo,
		snapshotRepo,
		bus,
		logger,
		standingsservice.NewMetrics(registry),
		cfg.Standings,
	)

	watermillRouter, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create watermill router: %w", err)
	}

	sr := standingsrouter.NewStandingsRouter(logger, watermillRouter, bus, registry)
	if err := sr.Configure(ctx, standingshandlers.NewStandingsHandlers(standingsSvc, logger)); err != nil {
		return nil, fmt.Errorf("failed to configure standings router: %w", err)
	}

	queueSvc, err := standingsqueue.NewService(ctx, cfg.Postgres.DSN, standingsSvc, cfg.Standings.SnapshotInterval, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize queue service: %w", err)
	}

	mux := NewHTTPRouter(
		cfg.HTTP,
		handlers.NewPlayerHandler(playerSvc),
		handlers.NewTableHandler(tableSvc),
		handlers.NewRoundHandler(roundSvc),
		handlers.NewStandingsHandler(standingsSvc),
		registry,
	)

	return &App{
		Config:          cfg,
		Logger:          logger,
		DB:              db,
		EventBus:        bus,
		WatermillRouter: watermillRouter,
		QueueService:    queueSvc,
		HTTPServer: &http.Server{
			Addr:    cfg.HTTP.Addr,
			Handler: mux,
		},
		registry: registry,
	}, nil
}

// Run starts the watermill router, the queue service, and the HTTP server.
// It blocks until the context is canceled or the HTTP server fails.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	go func() {
		if err := a.WatermillRouter.Run(ctx); err != nil {
			errCh <- fmt.Errorf("watermill router stopped: %w", err)
		}
	}()

	if err := a.QueueService.Start(ctx); err != nil {
		return err
	}

	go func() {
		a.Logger.InfoContext(ctx, "HTTP server listening", slog.String("addr", a.HTTPServer.Addr))
		if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server stopped: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Close shuts everything down in reverse dependency order.
func (a *App) Close(ctx context.Context) {
	if err := a.HTTPServer.Shutdown(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "Failed to shut down HTTP server", slog.Any("error", err))
	}
	if err := a.QueueService.Stop(ctx); err != nil {
		a.Logger.ErrorContext(ctx, "Failed to stop queue service", slog.Any("error", err))
	}
	if err := a.WatermillRouter.Close(); err != nil {
		a.Logger.ErrorContext(ctx, "Failed to close watermill router", slog.Any("error", err))
	}
	if err := a.EventBus.Close(); err != nil {
		a.Logger.ErrorContext(ctx, "Failed to close event bus", slog.Any("error", err))
	}
	if err := a.DB.Close(); err != nil {
		a.Logger.ErrorContext(ctx, "Failed to close database", slog.Any("error", err))
	}
}
