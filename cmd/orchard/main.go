package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dukerupert/orchard/internal/config"
	"github.com/dukerupert/orchard/internal/kv"
	"github.com/dukerupert/orchard/internal/logging"
	"github.com/dukerupert/orchard/internal/rollover"
	"github.com/dukerupert/orchard/internal/server"
)

func main() {
	cfgPath := os.Getenv("ORCHARD_CONFIG")
	if cfgPath == "" {
		cfgPath = "orchard.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg.ApplyEnv()
	cfg.Normalize()

	logger := logging.Setup(cfg.LogLevel)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("invalid timezone %q: %v", cfg.Timezone, err)
	}

	var kvStore kv.Store
	switch cfg.Storage.Backend {
	case "disk":
		kvStore, err = kv.OpenDisk(cfg.Storage.Path)
	default:
		kvStore, err = kv.OpenSQLite(cfg.Storage.Path)
	}
	if err != nil {
		log.Fatalf("failed to open storage: %v", err)
	}
	defer kvStore.Close()

	srv := server.New(kvStore, loc, cfg.BasicAuth, logger)

	notifier, err := rollover.NewNotifier(srv.Hub(), loc, logger.With("component", "rollover"))
	if err != nil {
		log.Fatalf("failed to set up day rollover: %v", err)
	}
	notifier.Start()
	defer notifier.Stop()

	httpServer := &http.Server{
		Addr:         cfg.Listen,
		Handler:      srv.Router(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		fmt.Printf("Orchard running at http://%s\n", cfg.Listen)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nShutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown error: %v", err)
	}
}
