// SPDX-License-Identifier: MIT

// Package config loads edlkit settings from an optional YAML file and
// EDLKIT_-prefixed environment variables. Environment values override file
// values, which override defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"edlkit/internal/timecode"
)

// Config holds all runtime settings.
type Config struct {
	// FrameRate is the frames-per-second EDLs are parsed at, e.g. 24 or 23.976.
	FrameRate float64 `yaml:"frame_rate"`
	// ShotRegexp extracts shot_name, type and version from clip names.
	// Empty selects the built-in default pattern.
	ShotRegexp string `yaml:"shot_regexp"`
	// Listen is the HTTP API address.
	Listen string `yaml:"listen"`
	// RateLimit is the per-client HTTP request budget per minute. Zero disables it.
	RateLimit int `yaml:"rate_limit"`
	// WatchDir is the drop folder scanned for .edl files.
	WatchDir string `yaml:"watch_dir"`
	// OutputDir receives JSON results for ingested files.
	OutputDir string `yaml:"output_dir"`
	// Workers bounds concurrent ingest parses.
	Workers int `yaml:"workers"`
	// LogLevel is the zerolog level name.
	LogLevel string `yaml:"log_level"`
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		FrameRate: 24,
		Listen:    ":8080",
		RateLimit: 120,
		Workers:   4,
		LogLevel:  "info",
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (if non-empty), then environment overrides. The result is validated.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	mergeEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeFile overlays values from a strict-parsed YAML file. Unknown keys are
// reported as ErrUnknownConfigField so typos fail loudly.
func mergeFile(cfg *Config, path string) error {
	path = filepath.Clean(path)
	f, err := os.Open(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file, nothing to overlay.
			return nil
		}
		var typeErr *yaml.TypeError
		if errors.As(err, &typeErr) {
			return fmt.Errorf("%w: %s: %v", ErrUnknownConfigField, path, err)
		}
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Rate returns the configured frame rate as a timecode.Rate.
func (c Config) Rate() (timecode.Rate, error) {
	return timecode.NewRateFromFloat(c.FrameRate)
}

// Validate checks invariants that would otherwise surface deep inside a parse.
func (c Config) Validate() error {
	if c.FrameRate <= 0 {
		return fmt.Errorf("frame_rate must be greater than zero, got %g", c.FrameRate)
	}
	if c.ShotRegexp != "" {
		if _, err := regexp.Compile(c.ShotRegexp); err != nil {
			return fmt.Errorf("shot_regexp does not compile: %w", err)
		}
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative, got %d", c.RateLimit)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
