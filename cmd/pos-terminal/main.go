package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Shyam-2315/Grocery-Store/internal/cart"
	"github.com/Shyam-2315/Grocery-Store/internal/catalog"
	"github.com/Shyam-2315/Grocery-Store/internal/checkout"
	"github.com/Shyam-2315/Grocery-Store/internal/config"
	poshttp "github.com/Shyam-2315/Grocery-Store/internal/http"
	"github.com/Shyam-2315/Grocery-Store/internal/ledger"
	"github.com/Shyam-2315/Grocery-Store/pkg/metrics"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ledgerClient := ledger.NewClient(cfg.LedgerBaseURL, cfg.LedgerTimeout)
	cache := catalog.NewCache(ledgerClient)
	store := cart.NewStore()
	coordinator := checkout.NewCoordinator(ledgerClient, store, cache, logger)
	m := metrics.New()

	// Warm the catalog when a standing API token is configured. Terminals
	// without one populate the cache on the first refresh after login.
	if cfg.LedgerAPIToken != "" {
		warmCtx, cancel := context.WithTimeout(context.Background(), cfg.LedgerTimeout)
		if err := cache.Refresh(warmCtx, cfg.LedgerAPIToken); err != nil {
			logger.Warn("initial catalog fetch failed, starting with empty cache", "error", err)
		} else {
			logger.Info("catalog cache warmed", "products", len(cache.All()))
		}
		cancel()
	}

	handler := poshttp.NewPosHandler(cache, store, coordinator, m, cfg.TaxRate, logger)
	router := poshttp.NewRouter(handler, m, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "pos-terminal"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("POS terminal listening", "port", cfg.HTTPPort, "ledger", cfg.LedgerBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down terminal")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("terminal stopped")
}
