package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fence_estimate_backend/internal/cli"
	"fence_estimate_backend/internal/leads"
	"fence_estimate_backend/internal/leads/service"
	"fence_estimate_backend/platform/config"
	"fence_estimate_backend/platform/logger"
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

	// Command output goes to stdout; logs stay on stderr.
	log := logger.NewWithWriter(cfg.Env, os.Stderr)

	gen, err := leads.NewGenerator(cfg)
	if err != nil {
		return fmt.Errorf("build slot generator: %w", err)
	}

	cli.SetLogger(log)
	cli.SetApp(&cli.App{
		Service:  service.New(gen, log),
		Holidays: gen.Holidays(),
		Today:    gen.Today,
		Location: gen.Location(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.Execute(ctx)
}
