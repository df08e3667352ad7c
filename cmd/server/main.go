package main // Entry point package

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"                   // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // request logging and recovery
	"github.com/mama165/sdk-go/logs"
	"github.com/viant/afs"

	"github.com/iliyamo/openspace-organizer/internal/config"   // Internal config loader
	"github.com/iliyamo/openspace-organizer/internal/database" // MySQL connection and schema
	"github.com/iliyamo/openspace-organizer/internal/handler"
	"github.com/iliyamo/openspace-organizer/internal/middleware"
	"github.com/iliyamo/openspace-organizer/internal/model"
	"github.com/iliyamo/openspace-organizer/internal/queue"
	"github.com/iliyamo/openspace-organizer/internal/repository"
	"github.com/iliyamo/openspace-organizer/internal/router" // Internal router setup
	"github.com/iliyamo/openspace-organizer/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and blocks until SIGINT/SIGTERM.  Deferred
// cleanups run before main exits.
func run() error {
	cfg, err := config.LoadServer()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	layout, err := resolveLayout(ctx, cfg.Config, log)
	if err != nil {
		return err
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing MySQL...")
		_ = db.Close()
	}()
	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("schema migration failed: %w", err)
	}

	// Redis backs the response cache and the rate limiter; both are skipped
	// when it is unreachable.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn("redis unavailable, caching and rate limiting disabled")
	} else {
		defer func() { _ = rdb.Close() }()
	}
	cacheCfg, err := config.LoadCacheConfig()
	if err != nil {
		return err
	}
	rateCfg, err := config.LoadRateLimitConfig()
	if err != nil {
		return err
	}

	var publisher service.EventPublisher
	if cfg.EventsEnabled {
		publisher = queue.NewPublisher(cfg.RabbitMQURL, log)
	}
	if cfg.ConsumerEnabled {
		consumer := queue.NewConsumer(cfg.RabbitMQURL, cfg.EventLogDir, log)
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("event consumer stopped", "error", err)
			}
		}()
	}

	organizer := service.NewOrganizer(layout, repository.NewAllocationRepo(db), publisher, log)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(_ echo.Context, v echomw.RequestLoggerValues) error {
			log.Info("request", "method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency)
			return nil
		},
	}))

	limiter := middleware.NewRateLimiter(rateCfg, rdb)
	router.RegisterRoutes(e, &handler.HealthHandler{DB: db, Redis: rdb})
	router.RegisterAuth(e, handler.NewAuthHandler(cfg), limiter)
	router.RegisterAllocations(e,
		handler.NewAllocationHandler(organizer, cacheCfg, rdb),
		cfg.JWTSecret,
		middleware.NewRedisCache(cacheCfg, rdb),
		limiter,
	)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info("listening", "addr", addr, "env", cfg.Env, "tables", layout.Tables, "seats_per_table", layout.SeatsPerTable)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
		log.Info("shutting down")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// resolveLayout prefers the YAML layout file when one is configured.
func resolveLayout(ctx context.Context, cfg config.Config, log *slog.Logger) (model.Layout, error) {
	if cfg.LayoutURL == "" {
		return cfg.Layout(), nil
	}
	layout, err := config.LoadLayout(ctx, afs.New(), cfg.LayoutURL)
	if err != nil {
		return model.Layout{}, err
	}
	log.Debug("layout loaded", "location", cfg.LayoutURL)
	return layout, nil
}
