// SPDX-License-Identifier: MIT
package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edlkit.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FrameRate != 24 {
		t.Fatalf("default frame rate = %g, want 24", cfg.FrameRate)
	}
	if cfg.Listen != ":8080" {
		t.Fatalf("default listen = %q", cfg.Listen)
	}
	if cfg.Workers != 4 {
		t.Fatalf("default workers = %d", cfg.Workers)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "frame_rate: 23.976\nlisten: \":9000\"\nworkers: 2\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FrameRate != 23.976 {
		t.Fatalf("frame rate = %g, want 23.976", cfg.FrameRate)
	}
	if cfg.Listen != ":9000" {
		t.Fatalf("listen = %q, want :9000", cfg.Listen)
	}
	if cfg.Workers != 2 {
		t.Fatalf("workers = %d, want 2", cfg.Workers)
	}
	// Values absent from the file keep their defaults.
	if cfg.RateLimit != 120 {
		t.Fatalf("rate limit = %d, want default 120", cfg.RateLimit)
	}
}

func TestUnknownFieldRejected(t *testing.T) {
	path := writeConfig(t, "frame_rae: 25\n")
	_, err := Load(path)
	if !errors.Is(err, ErrUnknownConfigField) {
		t.Fatalf("expected ErrUnknownConfigField, got %v", err)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "frame_rate: 25\nworkers: 2\n")
	t.Setenv(EnvFrameRate, "30")
	t.Setenv(EnvWorkers, "8")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FrameRate != 30 {
		t.Fatalf("frame rate = %g, want env override 30", cfg.FrameRate)
	}
	if cfg.Workers != 8 {
		t.Fatalf("workers = %d, want env override 8", cfg.Workers)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level = %q, want debug", cfg.LogLevel)
	}
}

func TestInvalidEnvValueFallsBack(t *testing.T) {
	t.Setenv(EnvWorkers, "not-a-number")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Workers != 4 {
		t.Fatalf("workers = %d, want default 4", cfg.Workers)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}},
		{name: "zero frame rate", mutate: func(c *Config) { c.FrameRate = 0 }, wantErr: true},
		{name: "negative frame rate", mutate: func(c *Config) { c.FrameRate = -24 }, wantErr: true},
		{name: "bad shot regexp", mutate: func(c *Config) { c.ShotRegexp = "(" }, wantErr: true},
		{name: "good shot regexp", mutate: func(c *Config) { c.ShotRegexp = `(?P<shot_name>\w+)$` }},
		{name: "negative rate limit", mutate: func(c *Config) { c.RateLimit = -1 }, wantErr: true},
		{name: "zero workers", mutate: func(c *Config) { c.Workers = 0 }, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Defaults()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestRate(t *testing.T) {
	cfg := Defaults()
	cfg.FrameRate = 23.976
	rate, err := cfg.Rate()
	if err != nil {
		t.Fatalf("Rate failed: %v", err)
	}
	if rate.String() != "23.976" {
		t.Fatalf("rate = %s, want 23.976", rate)
	}
}
