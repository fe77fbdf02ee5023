package main

import (
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/volume-discounts/internal/config"
	"github.com/noah-isme/volume-discounts/internal/engine"
	"github.com/noah-isme/volume-discounts/internal/harness"
	"github.com/noah-isme/volume-discounts/internal/health"
	"github.com/noah-isme/volume-discounts/internal/obs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger := obs.NewLogger(os.Stdout, cfg.LogFormat, cfg.LogLevel).With().
		Str("env", cfg.AppEnv).
		Logger()

	metrics := obs.NewEvalMetrics(cfg.MetricsNamespace, nil)
	handler := &harness.Handler{
		Logger:       logger,
		Metrics:      metrics,
		Options:      engine.Options{DefaultMessage: cfg.DefaultMessage},
		TraceEnabled: cfg.TraceEnabled,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", health.Handler{}.Live)
	r.Route("/functions", func(f chi.Router) {
		f.Post("/order-discount/run", handler.RunOrderDiscount)
		f.Post("/product-discount/run", handler.RunProductDiscount)
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: r,
	}

	logger.Info().Str("addr", srv.Addr).Msg("harness starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("harness exited unexpectedly")
	}
}
