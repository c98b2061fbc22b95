package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adhconnect/forecast-gateway/internal/config"
	"github.com/adhconnect/forecast-gateway/internal/engine"
	"github.com/adhconnect/forecast-gateway/internal/logger"
)

var port = flag.Int("port", 0, "HTTP port override (defaults to HTTP_PORT)")

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *port != 0 {
		cfg.HTTPPort = *port
	}

	appLogger := logger.New("forecast-gateway", logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	eng := engine.NewEngine(cfg, appLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := eng.Start(ctx); err != nil {
		appLogger.Fatalf("Failed to start engine: %v", err)
	}

	<-ctx.Done()
	appLogger.Infof("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := eng.Stop(shutdownCtx); err != nil {
		appLogger.Errorf("Shutdown error: %v", err)
	}
}
