package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/evalease/sentiment-service/internal/api"
	"github.com/evalease/sentiment-service/internal/config"
	"github.com/evalease/sentiment-service/internal/metrics"
	"github.com/evalease/sentiment-service/internal/ratelimiter"
	"github.com/evalease/sentiment-service/internal/scorer"
	"github.com/evalease/sentiment-service/internal/service"
)

func main() {
	// Bootstrap logger for failures before LOG_LEVEL is known.
	bootstrap, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}

	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		bootstrap.Fatal("failed to load config", zap.Error(err))
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		bootstrap.Fatal("failed to build logger", zap.Error(err), zap.String("level", cfg.LogLevel))
	}
	_ = bootstrap.Sync()
	defer logger.Sync() //nolint:errcheck

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)
	onAnalyzed, onFallback := m.ServiceHooks()

	sc, err := scorer.New(scorer.Options{
		Kind:            cfg.Scorer,
		UpstreamURL:     cfg.UpstreamURL,
		UpstreamTimeout: cfg.UpstreamTimeout,
		OnFallback: func(err error) {
			logger.Warn("upstream scorer failed, scoring locally", zap.Error(err))
			onFallback(err)
		},
	})
	if err != nil {
		logger.Fatal("failed to build scorer", zap.Error(err))
	}
	svc := service.NewSentimentService(sc, logger, service.Hooks{OnAnalyzed: onAnalyzed})

	opts := api.Options{
		MaxBodyBytes:   cfg.MaxBodyBytes,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		TrustedProxies: cfg.TrustedProxies,
	}
	if cfg.RateLimitRPS > 0 {
		opts.Limiter = ratelimiter.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	// ---- HTTP server ----
	router := api.NewRouter(svc, m, reg, logger, opts)
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start server in a goroutine so it does not block the shutdown listener.
	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("scorer", svc.ScorerName()),
			zap.Bool("rate_limited", opts.Limiter != nil),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	return zcfg.Build()
}
