// Command server runs the TravelPay HTTP API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbukum/travelpay/internal/auth"
	"github.com/kbukum/travelpay/internal/config"
	"github.com/kbukum/travelpay/internal/database"
	"github.com/kbukum/travelpay/internal/handler"
	"github.com/kbukum/travelpay/internal/logger"
	"github.com/kbukum/travelpay/internal/observability"
	"github.com/kbukum/travelpay/internal/server"
	"github.com/kbukum/travelpay/internal/server/middleware"
	"github.com/kbukum/travelpay/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(&cfg.Logging, cfg.Base.Name)
	logger.SetGlobalLogger(log)
	log.Info("Starting service", map[string]interface{}{
		"name":        cfg.Base.Name,
		"version":     cfg.Base.Version,
		"environment": cfg.Base.Environment,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, cfg.Database, log.WithComponent("database"))
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := db.Migrate(); err != nil {
			return err
		}
	}

	telemetry, err := observability.Init(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			log.Warn("telemetry shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	var httpMetrics *observability.HTTPMetrics
	if cfg.Observability.Enabled {
		httpMetrics, err = observability.NewHTTPMetrics()
		if err != nil {
			return err
		}
	}

	users := store.NewUsers(db)
	provinces := store.NewProvinces(db)
	travels := store.NewTravels(db)

	authSvc := auth.NewService(
		users,
		auth.NewHasher(cfg.Auth.BcryptCost),
		auth.NewTokenCodec(cfg.Auth.Secret, cfg.Auth.Algorithm, cfg.Auth.TokenTTL()),
		auth.Attributes(cfg.Auth.Identifiers),
		log,
	)

	srv := server.New(cfg.Server, log)
	engine := srv.GinEngine()
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(cfg.Server.CORSOrigins))
	engine.Use(middleware.Metrics(httpMetrics))
	engine.Use(middleware.RequestLogger(log))

	handler.New(authSvc, provinces, travels, db, log).RegisterRoutes(engine)

	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	log.Info("Shutdown signal received")

	return srv.Stop(context.Background())
}
