package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"vigil/internal/platform/config"
	"vigil/internal/platform/httpserver"
	"vigil/internal/platform/logger"
	"vigil/internal/screening"
	"vigil/internal/screening/handler"
	"vigil/internal/screening/metrics"
	"vigil/internal/screening/store/watchlist"
	httptransport "vigil/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	store := watchlist.NewSeeded()
	screeningMetrics := metrics.New()

	svc, err := screening.New(store,
		screening.WithLogger(log),
		screening.WithMetrics(screeningMetrics),
		screening.WithThreshold(cfg.ScreeningThreshold),
	)
	if err != nil {
		log.Error("screening service init failed", "error", err)
		os.Exit(1)
	}

	screeningHandler := handler.New(svc, log, screeningMetrics)
	router := httptransport.NewRouter(screeningHandler)

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting vigil", "addr", cfg.Addr, "threshold", cfg.ScreeningThreshold)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
