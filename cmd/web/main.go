package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/m3rciful/trainbot/core/logger"
	"github.com/m3rciful/trainbot/internal/app"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("web: %v", err)
	}
}

func run() error {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := app.Load(cfgPath)
	if err != nil {
		return err
	}

	application, err := app.Bootstrap(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = application.Close()
		_ = logger.Shutdown()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return application.WebServer().ListenAndServe(ctx, application.WebListen())
}
