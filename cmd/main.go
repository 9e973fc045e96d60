package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"adyenbridge/internal/adyen"
	"adyenbridge/internal/bootstrap"
	"adyenbridge/internal/config"
	cronpkg "adyenbridge/internal/cron"
	"adyenbridge/internal/gateway"
	"adyenbridge/internal/middleware"
	"adyenbridge/internal/pay"
	"adyenbridge/internal/repository"
	"adyenbridge/internal/router"
)

func main() {
	// --- Logger ---
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// --- Config ---
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// --- Database ---
	db, err := config.NewDatabase(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := bootstrap.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	// --- Adyen gateway ---
	client := adyen.NewClient(adyen.ClientConfig{
		APIKey:          cfg.Adyen.APIKey,
		MerchantAccount: cfg.Adyen.MerchantAccount,
		Live:            cfg.Adyen.Live(),
		LiveBaseURL:     cfg.Adyen.LiveBaseURL,
	})

	gw := gateway.New(client, gateway.Config{
		MerchantAccount: cfg.Adyen.MerchantAccount,
		OriginURL:       cfg.Adyen.OriginURL,
		PublicURL:       cfg.Server.PublicURL,
		DefaultLocale:   cfg.Adyen.DefaultLocale,
		DefaultCountry:  cfg.Adyen.DefaultCountry,
	}, logger)

	mode := pay.ModeTest
	if cfg.Adyen.Live() {
		mode = pay.ModeLive
	}

	// --- Echo ---
	e := echo.New()
	e.HideBanner = true

	// --- Return payload deduper (Redis with in-memory fallback) ---
	payloadDeduper, dedupeErr := middleware.NewPayloadDeduper(
		cfg.Redis.Addr,
		cfg.Redis.Pass,
		cfg.Redis.DB,
		time.Hour,
	)
	if dedupeErr != nil {
		logger.Warn("Redis unavailable for payload dedup, using in-memory fallback", zap.Error(dedupeErr))
	}

	// --- Routes ---
	router.Setup(e, db, gw, mode, logger, payloadDeduper)

	// --- Cron Scheduler ---
	scheduler := cronpkg.New(cfg, repository.NewPaymentRepository(db), logger)
	scheduler.Start()

	// --- Start Server ---
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logger.Info("Starting adyenbridge server", zap.String("addr", addr))
		if err := e.Start(addr); err != nil {
			logger.Info("Server stopped", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")

	// Stop cron
	ctx := scheduler.Stop()
	<-ctx.Done()

	// Stop HTTP server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
