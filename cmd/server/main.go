package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "chiller_guard/docs"
	"chiller_guard/internal/config"
	"chiller_guard/internal/guard"
	"chiller_guard/internal/handlers"
	"chiller_guard/internal/health"
	"chiller_guard/internal/logger"
	"chiller_guard/internal/metrics"
	"chiller_guard/internal/physics"
	"chiller_guard/internal/repository"
	"chiller_guard/internal/repository/db"
	"chiller_guard/internal/scenario"
	"chiller_guard/internal/server"
	"chiller_guard/internal/service"

	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 10 * time.Second

// @title        Chiller Guard API
// @version      1.0
// @description  Physics-validated ingestion and explainable health scoring for chiller telemetry.
// @BasePath     /
func main() {
	configPath := flag.String("config", "", "path to config file (default configs/config.yml)")
	flag.Parse()

	// init logger
	log := logger.Get(logger.InfoLevel)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalw("error reading config", "err", err)
	}
	log.SetLevel(cfg.LogLevel)

	// open DB
	sqlDB, err := db.InitDB(cfg.DB.Path)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err, "path", cfg.DB.Path)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	deps, err := buildDeps(cfg, log)
	if err != nil {
		log.Fatalw("invalid domain configuration", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, deps)
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Replay.Enabled {
		log.Infow("replay simulator enabled",
			"scenario", cfg.Replay.Scenario, "asset_id", cfg.Replay.AssetID, "tick", cfg.Replay.Tick, "loop", cfg.Replay.Loop)
		go services.Simulator.Run(ctx, cfg.Replay.Tick)
	}

	// start HTTP server
	srv := &server.Server{Timeouts: server.Timeouts{
		ReadHeader: cfg.Server.ReadHeaderTimeout,
		Write:      cfg.Server.WriteTimeout,
		Idle:       cfg.Server.IdleTimeout,
	}}
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

// buildDeps turns validated configuration into the domain objects.
func buildDeps(cfg *config.Config, log *logger.Logger) (service.Deps, error) {
	g, err := guard.New(cfg.Guard)
	if err != nil {
		return service.Deps{}, err
	}
	engine, err := health.NewEngine(cfg.Health)
	if err != nil {
		return service.Deps{}, err
	}
	return service.Deps{
		Calculator:  physics.NewCalculator(cfg.Physics),
		Guard:       g,
		Engine:      engine,
		Generator:   scenario.NewGenerator(scenario.DefaultBaseline()),
		Metrics:     metrics.New(prometheus.DefaultRegisterer),
		Log:         log,
		HealthBelow: cfg.Alerts.HealthBelow,
		Replay: service.ReplayParams{
			Spec: cfg.ReplaySpec(),
			Seed: cfg.Replay.Seed,
			Loop: cfg.Replay.Loop,
		},
	}, nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
	_ = log.Sync()
}
