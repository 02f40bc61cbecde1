// Package main is the entry point for the retrodo CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"retrodo/internal/backend/localdisk"
	"retrodo/internal/cli"
	"retrodo/internal/commands"
	"retrodo/internal/config"
	"retrodo/internal/logging"
	"retrodo/internal/store"

	// Import all command packages to register them via init()
	_ "retrodo/internal/commands"
)

func main() {
	// Best-effort .env for local overrides
	_ = godotenv.Load()

	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create store factory
	factory := func(ctx context.Context, cfg *config.Config) (*store.Store, error) {
		if err := cfg.EnsureDir(); err != nil {
			return nil, err
		}
		log := logging.New(os.Stderr, cfg.LogLevel, cfg.Debug)
		return store.Load(localdisk.New(cfg, log), log), nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
