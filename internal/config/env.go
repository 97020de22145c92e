// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"edlkit/internal/log"
)

// Environment variable names recognised by mergeEnv.
const (
	EnvFrameRate  = "EDLKIT_FPS"
	EnvShotRegexp = "EDLKIT_SHOT_REGEXP"
	EnvListen     = "EDLKIT_LISTEN"
	EnvRateLimit  = "EDLKIT_RATE_LIMIT"
	EnvWatchDir   = "EDLKIT_WATCH_DIR"
	EnvOutputDir  = "EDLKIT_OUTPUT_DIR"
	EnvWorkers    = "EDLKIT_WORKERS"
	EnvLogLevel   = "EDLKIT_LOG_LEVEL"
)

// mergeEnv overlays environment values onto cfg, logging the source of each
// override for observability.
func mergeEnv(cfg *Config) {
	logger := log.WithComponent("config")
	cfg.FrameRate = parseFloat(logger, EnvFrameRate, cfg.FrameRate)
	cfg.ShotRegexp = parseString(logger, EnvShotRegexp, cfg.ShotRegexp)
	cfg.Listen = parseString(logger, EnvListen, cfg.Listen)
	cfg.RateLimit = parseInt(logger, EnvRateLimit, cfg.RateLimit)
	cfg.WatchDir = parseString(logger, EnvWatchDir, cfg.WatchDir)
	cfg.OutputDir = parseString(logger, EnvOutputDir, cfg.OutputDir)
	cfg.Workers = parseInt(logger, EnvWorkers, cfg.Workers)
	cfg.LogLevel = parseString(logger, EnvLogLevel, cfg.LogLevel)
}

// parseString reads a string from an environment variable or returns the
// fallback value.
func parseString(logger zerolog.Logger, key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	logger.Debug().
		Str("key", key).
		Str("value", value).
		Str("source", "environment").
		Msg("using environment variable")
	return value
}

// parseInt reads an integer from an environment variable or returns the
// fallback value. Unparseable values are logged and ignored.
func parseInt(logger zerolog.Logger, key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logger.Warn().
			Str("key", key).
			Str("value", value).
			Int("default", fallback).
			Msg("invalid integer in environment variable, using default")
		return fallback
	}
	logger.Debug().
		Str("key", key).
		Int("value", n).
		Str("source", "environment").
		Msg("using environment variable")
	return n
}

// parseFloat reads a float from an environment variable or returns the
// fallback value. Unparseable values are logged and ignored.
func parseFloat(logger zerolog.Logger, key string, fallback float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logger.Warn().
			Str("key", key).
			Str("value", value).
			Float64("default", fallback).
			Msg("invalid float in environment variable, using default")
		return fallback
	}
	logger.Debug().
		Str("key", key).
		Float64("value", f).
		Str("source", "environment").
		Msg("using environment variable")
	return f
}
