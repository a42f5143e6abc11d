package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/eststy/eststy/internal"
	"github.com/eststy/eststy/internal/events"
	"github.com/eststy/eststy/internal/handler"
	"github.com/eststy/eststy/internal/middleware"
	"github.com/eststy/eststy/internal/pricing"
	"github.com/eststy/eststy/internal/seed"
	"github.com/eststy/eststy/internal/shipping"
	"github.com/eststy/eststy/internal/store"
	"github.com/eststy/eststy/internal/telemetry"
	"github.com/eststy/eststy/internal/worker"
)

func run() error {
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	cleanupSentry, err := telemetry.InitSentry(telemetry.SentryConfig{
		DSN:         cfg.Sentry.DSN,
		Enabled:     cfg.Sentry.Enabled,
		Environment: cfg.Sentry.Environment,
		Release:     cfg.Sentry.Release,
		SampleRate:  cfg.Sentry.SampleRate,
	}, logger)
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	defer cleanupSentry()

	tax, err := pricing.NewPercentageCalculator(cfg.Store.TaxRate)
	if err != nil {
		return fmt.Errorf("invalid tax rate: %w", err)
	}

	rnd := rand.New(rand.NewSource(cfg.Store.Seed))
	if cfg.Store.Seed == 0 {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := store.New(seed.Products(time.Now()), seed.Sellers(), store.Options{
		Tax:                tax,
		Shipping:           shipping.NewThresholdProvider(cfg.Store.FlatShippingCents, cfg.Store.FreeShippingThreshold),
		GiftWrapFeeCents:   cfg.Store.GiftWrapFeeCents,
		SimulatedLatency:   time.Duration(cfg.Store.SimulatedLatencyMillis) * time.Millisecond,
		SearchHistoryLimit: cfg.Store.SearchHistoryLimit,
		Rand:               rnd,
		Logger:             logger,
	})

	business := telemetry.NewBusinessMetrics(cfg.Metrics.Namespace)
	s.Subscribe(business.Observe)

	if cfg.NATS.Enabled {
		bridge, err := events.NewNATSPublisher(cfg.NATS.URL, cfg.NATS.SubjectPrefix, logger)
		if err != nil {
			return fmt.Errorf("NATS connection failed: %w", err)
		}
		defer bridge.Close()
		bridge.Bridge(s.Bus())
		logger.Info().Str("url", cfg.NATS.URL).Msg("event bridge connected")
	}

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if cfg.Worker.Enabled {
		w := worker.NewWorker(s, worker.Config{
			Interval: time.Duration(cfg.Worker.IntervalSeconds) * time.Second,
		}, logger)
		go func() {
			if err := w.Start(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error().Err(err).Msg("order progression worker exited")
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler(logger)

	metrics := middleware.NewMetrics(cfg.Metrics.Namespace)
	e.Use(echomw.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(metrics.Middleware())

	handler.RegisterRoutes(e, handler.New(s, logger), metrics)

	addr := fmt.Sprintf(":%d", cfg.Port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
