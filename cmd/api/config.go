// cmd/api/config.go
// Startup configuration: command-line flags with environment-variable fallbacks.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/mizzcode/bookshelf-api/internal/validator"
)

// serverConfig holds all the values that can be tweaked at startup.
type serverConfig struct {
	port        int    // TCP port the HTTP server listens on
	environment string // development, staging, or production
	logLevel    string // debug, info, warn, or error
	limiter     struct {
		rps     float64 // tokens added per second for each client IP
		burst   int     // bucket capacity for each client IP
		enabled bool
	}
}

// loadConfig parses args into a serverConfig. A flag given on the command
// line wins over its environment variable, which wins over the default.
func loadConfig(args []string) (serverConfig, error) {
	var cfg serverConfig

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.IntVar(&cfg.port, "port", envInt("PORT", 9000), "Server port")
	fs.StringVar(&cfg.environment, "env", envString("ENV", "development"), "Environment(development|staging|production)")
	fs.StringVar(&cfg.logLevel, "log-level", envString("LOG_LEVEL", "info"), "Log level(debug|info|warn|error)")
	fs.Float64Var(&cfg.limiter.rps, "limiter-rps", 2, "Rate limiter maximum requests per second")
	fs.IntVar(&cfg.limiter.burst, "limiter-burst", 4, "Rate limiter maximum burst")
	fs.BoolVar(&cfg.limiter.enabled, "limiter-enabled", true, "Enable rate limiter")

	if err := fs.Parse(args); err != nil {
		return serverConfig{}, err
	}

	if err := cfg.validate(); err != nil {
		return serverConfig{}, err
	}
	return cfg, nil
}

// validate reports every invalid setting at once.
func (c serverConfig) validate() error {
	v := validator.New()
	v.Check(c.port > 0 && c.port <= 65535, "port", "must be between 1 and 65535")
	v.Check(validator.In(c.environment, "development", "staging", "production"), "env", "must be development, staging, or production")
	v.Check(validator.In(c.logLevel, "debug", "info", "warn", "error"), "log-level", "must be debug, info, warn, or error")
	if c.limiter.enabled {
		v.Check(c.limiter.rps > 0, "limiter-rps", "must be greater than zero")
		v.Check(c.limiter.burst > 0, "limiter-burst", "must be greater than zero")
	}

	if v.Valid() {
		return nil
	}

	errs := make([]error, 0, len(v.Errors))
	for _, key := range []string{"port", "env", "log-level", "limiter-rps", "limiter-burst"} {
		if msg, ok := v.Errors[key]; ok {
			errs = append(errs, fmt.Errorf("invalid %s: %s", key, msg))
		}
	}
	return errors.Join(errs...)
}

func (c serverConfig) slogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func envString(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	i, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return i
}
