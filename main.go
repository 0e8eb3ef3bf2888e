package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gruhahomes/gruha-backend/config"
	"github.com/gruhahomes/gruha-backend/db"
	"github.com/gruhahomes/gruha-backend/handlers"
	"github.com/gruhahomes/gruha-backend/internal/store/postgres"
	"github.com/gruhahomes/gruha-backend/logger"
	"github.com/gruhahomes/gruha-backend/router"
	"github.com/gruhahomes/gruha-backend/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The pool is the single shared database handle: acquired here, shared
	// by all request handlers, released on shutdown.
	pool, err := db.NewPool(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.Database.URL()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Stores
	contactStore := postgres.NewContactStore(pool)
	newsletterStore := postgres.NewNewsletterStore(pool)

	// Services
	contactService := services.NewContactService(contactStore)
	newsletterService := services.NewNewsletterService(newsletterStore)
	healthService := services.NewHealthService(pool, cfg.Server.Version)

	// Router setup
	r := router.SetupRouter(router.Dependencies{
		Config:            cfg,
		ContactHandler:    handlers.NewContactHandler(contactService),
		NewsletterHandler: handlers.NewNewsletterHandler(newsletterService),
		HealthHandler:     handlers.NewHealthHandler(healthService),
		Logger:            log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutdown signal received, draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server shutdown failed", "error", err)
	}
	log.Info("Server stopped")
}
