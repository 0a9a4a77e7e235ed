package main

import (
	"log/slog"
	"net/http"
	"os"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/secretsanta/internal/assignment"
	"github.com/mmynk/secretsanta/internal/auth"
	"github.com/mmynk/secretsanta/internal/config"
	"github.com/mmynk/secretsanta/internal/metrics"
	"github.com/mmynk/secretsanta/internal/middleware"
	"github.com/mmynk/secretsanta/internal/service"
	"github.com/mmynk/secretsanta/internal/storage/sqlite"
	pb "github.com/mmynk/secretsanta/pkg/api"
	"github.com/mmynk/secretsanta/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.ValidateServer(); err != nil {
		slog.Error("Invalid config", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	tokens := auth.NewTokenManager(cfg.TokenSecret, cfg.TokenTTL)
	engineOpts := append(cfg.EngineOptions(),
		assignment.WithRecorder(metrics.NewPrometheus(registry, "")),
		assignment.WithLogger(slog.Default()),
	)
	svc := service.NewDrawService(store, tokens, engineOpts...)

	mux := http.NewServeMux()

	drawPath, drawHandler := pb.NewDrawServiceHandler(svc, pb.HandlerOptions{
		Common: []connect.HandlerOption{connect.WithInterceptors(middleware.LoggingInterceptor())},
		Reveal: []connect.HandlerOption{connect.WithInterceptors(middleware.RequireRevealToken(tokens))},
	})
	mux.Handle(drawPath, drawHandler)
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Wrap with h2c for HTTP/2 without TLS (Connect clients may use it)
	h2cHandler := h2c.NewHandler(middleware.LogRequests(mux), &http2.Server{})

	slog.Info("Connect server starting",
		"address", cfg.Addr,
		"max_attempts", cfg.MaxAttempts,
		"time_budget", cfg.TimeBudget,
		"prune", cfg.Prune,
	)
	if err := http.ListenAndServe(cfg.Addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
