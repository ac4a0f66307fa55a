// Package main is the entry point for the bookshelf API server.
// It wires together configuration, the in-memory book store, and the HTTP router.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/mizzcode/bookshelf-api/internal/data"
)

// appVersion is the current version of the API, shown in logs.
const appVersion = "1.0.0"

// applicationDependencies bundles every shared resource that HTTP handlers need.
// A pointer to this struct is passed as the receiver on all handler and route methods.
type applicationDependencies struct {
	config serverConfig
	logger *slog.Logger
	models data.Models

	// shutdown is closed once the server has stopped; background loops exit on it.
	shutdown chan struct{}
}

func main() {
	settings, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error(err.Error())
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: settings.slogLevel(),
	}))

	app := &applicationDependencies{
		config:   settings,
		logger:   logger,
		models:   data.NewModels(),
		shutdown: make(chan struct{}),
	}

	logger.Info("book store ready", "version", appVersion)

	if err := app.serve(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
