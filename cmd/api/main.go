package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	apphttp "fence_estimate_backend/internal/http"
	"fence_estimate_backend/internal/http/router"
	"fence_estimate_backend/internal/leads"
	"fence_estimate_backend/platform/config"
	"fence_estimate_backend/platform/httpkit"
	"fence_estimate_backend/platform/logger"
	"fence_estimate_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	gen, err := leads.NewGenerator(cfg)
	if err != nil {
		log.Error("failed to build slot generator", "error", err)
		return fmt.Errorf("build slot generator: %w", err)
	}
	first, last := gen.Holidays().Coverage()
	log.Info("holiday calendar loaded",
		"source", cfg.GetHolidaySource(),
		"firstYear", first,
		"lastYear", last,
		"timezone", gen.Location().String(),
	)
	if gen.Today().Year() >= last {
		log.Warn("holiday calendar ends this year; extend it or switch HOLIDAY_SOURCE to rules", "lastYear", last)
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	leadsModule := leads.NewModule(gen, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:            cfg,
		Logger:            log,
		PublicRateLimiter: httpkit.NewPublicRateLimiter(cfg, log),
		Modules: []apphttp.Module{
			leadsModule,
		},
	}

	srv := &http.Server{
		Addr:    cfg.GetHTTPAddr(),
		Handler: router.New(app),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		return err
	}
	log.Info("server stopped")
	return nil
}
