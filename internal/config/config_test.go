// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	// Product-specified timer defaults.
	if cfg.Session.AutoAdvanceDelay != 300*time.Millisecond {
		t.Errorf("auto_advance_delay = %v, want 300ms", cfg.Session.AutoAdvanceDelay)
	}
	if cfg.Session.SocialInitialDelay != 3*time.Second {
		t.Errorf("social_initial_delay = %v, want 3s", cfg.Session.SocialInitialDelay)
	}
	if cfg.Session.FeedbackRefetchDelay != 1500*time.Millisecond {
		t.Errorf("feedback_refetch_delay = %v, want 1.5s", cfg.Session.FeedbackRefetchDelay)
	}
	if cfg.Social.ScoreLow != 0.1 || cfg.Social.ScoreHigh != 0.7 {
		t.Errorf("social score band = (%v, %v), want (0.1, 0.7)", cfg.Social.ScoreLow, cfg.Social.ScoreHigh)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"empty backend url", func(c *Config) { c.Backend.URL = "" }},
		{"relative backend url", func(c *Config) { c.Backend.URL = "localhost:8080" }},
		{"zero backend timeout", func(c *Config) { c.Backend.Timeout = 0 }},
		{"failure ratio above one", func(c *Config) { c.Backend.BreakerFailureRatio = 1.5 }},
		{"zero auto advance", func(c *Config) { c.Session.AutoAdvanceDelay = 0 }},
		{"negative idle ttl", func(c *Config) { c.Session.IdleTTL = -time.Minute }},
		{"negative max sessions", func(c *Config) { c.Session.MaxSessions = -1 }},
		{"inverted score band", func(c *Config) { c.Social.ScoreLow = 0.8 }},
		{"score high above one", func(c *Config) { c.Social.ScoreHigh = 1.2 }},
		{"zero rate limit", func(c *Config) { c.API.RateLimitRequests = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"BACKEND_URL", "backend.url"},
		{"BACKEND_BREAKER_TIMEOUT", "backend.breaker_timeout"},
		{"SESSION_IDLE_TTL", "session.idle_ttl"},
		{"SERVER_PORT", "server.port"},
		{"LOGGING_LEVEL", "logging.level"},
		{"API_CORS_ORIGINS", "api.cors_origins"},
		{"SOCIAL_SCORE_LOW", "social.score_low"},
		{"PATH", ""},
		{"HOME", ""},
		{"SERVER_", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := envTransform(tt.key); got != tt.want {
				t.Errorf("envTransform(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestLoadLayersFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	yaml := `
server:
  port: 9000
backend:
  url: http://backend:8080
session:
  auto_advance_delay: 50ms
`
	if err := os.WriteFile(configPath, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("SERVER_PORT", "9100") // env must beat file
	t.Setenv("API_CORS_ORIGINS", "http://a.example, http://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("env override lost: port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Backend.URL != "http://backend:8080" {
		t.Errorf("file value lost: backend.url = %q", cfg.Backend.URL)
	}
	if cfg.Session.AutoAdvanceDelay != 50*time.Millisecond {
		t.Errorf("duration not parsed: auto_advance_delay = %v", cfg.Session.AutoAdvanceDelay)
	}
	// Untouched keys keep defaults.
	if cfg.Session.FeedbackRefetchDelay != 1500*time.Millisecond {
		t.Errorf("default lost: feedback_refetch_delay = %v", cfg.Session.FeedbackRefetchDelay)
	}
	want := []string{"http://a.example", "http://b.example"}
	if len(cfg.API.CORSOrigins) != len(want) {
		t.Fatalf("cors_origins = %v, want %v", cfg.API.CORSOrigins, want)
	}
	for i := range want {
		if cfg.API.CORSOrigins[i] != want[i] {
			t.Errorf("cors_origins[%d] = %q, want %q", i, cfg.API.CORSOrigins[i], want[i])
		}
	}
}

func TestLoadInvalidConfigFails(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("server:\n  port: -1\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, configPath)

	if _, err := Load(); err == nil {
		t.Error("expected validation failure for negative port")
	}
}
