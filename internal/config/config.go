// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

// Package config provides layered configuration for the GameSoul service
// using Koanf v2: built-in defaults, an optional YAML file, then environment
// variables (highest priority).
package config

import (
	"fmt"
	"net/url"
	"time"
)

// Config is the root configuration for the service.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Backend BackendConfig `koanf:"backend"`
	Session SessionConfig `koanf:"session"`
	Social  SocialConfig  `koanf:"social"`
	API     APIConfig     `koanf:"api"`
	Logging LoggingConfig `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// BackendConfig holds settings for the recommendation backend the service
// submits questionnaires to, including the circuit breaker wrapped around it.
type BackendConfig struct {
	// URL is the base URL of the recommendation backend.
	URL string `koanf:"url"`

	// Timeout bounds each backend HTTP request.
	Timeout time.Duration `koanf:"timeout"`

	// BreakerEnabled wraps the backend client with a circuit breaker.
	BreakerEnabled bool `koanf:"breaker_enabled"`

	// BreakerMaxRequests is the number of probe requests allowed half-open.
	BreakerMaxRequests uint32 `koanf:"breaker_max_requests"`

	// BreakerInterval resets failure counts while the circuit is closed.
	BreakerInterval time.Duration `koanf:"breaker_interval"`

	// BreakerTimeout is how long the circuit stays open before probing.
	BreakerTimeout time.Duration `koanf:"breaker_timeout"`

	// BreakerFailureRatio opens the circuit at this failure rate.
	BreakerFailureRatio float64 `koanf:"breaker_failure_ratio"`

	// BreakerMinRequests is the minimum sample before tripping.
	BreakerMinRequests uint32 `koanf:"breaker_min_requests"`
}

// SessionConfig holds wizard session settings: the three timer delays and the
// idle-session janitor. The delays default to the product-specified values;
// they are configurable so tests can shrink them.
type SessionConfig struct {
	// AutoAdvanceDelay is the pause between selecting an answer and moving
	// to the next question (or submitting on the last one).
	AutoAdvanceDelay time.Duration `koanf:"auto_advance_delay"`

	// SocialInitialDelay is the pause between entering the results phase and
	// the first social recommendation fetch.
	SocialInitialDelay time.Duration `koanf:"social_initial_delay"`

	// FeedbackRefetchDelay is the pause between a delivered feedback signal
	// and the social refetch that lets the backend absorb it.
	FeedbackRefetchDelay time.Duration `koanf:"feedback_refetch_delay"`

	// RequestTimeout bounds the backend work a fired timer may do.
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// IdleTTL is how long an untouched session survives before the janitor
	// reaps it. Sessions are memory-only and never persisted.
	IdleTTL time.Duration `koanf:"idle_ttl"`

	// JanitorInterval is how often the janitor scans for idle sessions.
	JanitorInterval time.Duration `koanf:"janitor_interval"`

	// MaxSessions caps concurrently live sessions. 0 means unlimited.
	MaxSessions int `koanf:"max_sessions"`
}

// SocialConfig holds the social-signal classification heuristic. The score
// bounds mirror the backend's convention of emitting social-sourced items
// with mid-range match scores; they are not a formal contract, which is why
// they live in configuration rather than code.
type SocialConfig struct {
	// ScoreLow is the exclusive lower bound of the social score band.
	ScoreLow float64 `koanf:"score_low"`

	// ScoreHigh is the exclusive upper bound of the social score band.
	ScoreHigh float64 `koanf:"score_high"`
}

// APIConfig holds HTTP API settings.
type APIConfig struct {
	// RateLimitRequests is the number of requests allowed per window per IP.
	RateLimitRequests int `koanf:"rate_limit_requests"`

	// RateLimitWindow is the rate limiting window.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// CORSOrigins lists allowed CORS origins for the browser wizard.
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and environment.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8090,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Backend: BackendConfig{
			URL:                 "http://localhost:8080",
			Timeout:             10 * time.Second,
			BreakerEnabled:      true,
			BreakerMaxRequests:  3,
			BreakerInterval:     time.Minute,
			BreakerTimeout:      2 * time.Minute,
			BreakerFailureRatio: 0.6,
			BreakerMinRequests:  10,
		},
		Session: SessionConfig{
			AutoAdvanceDelay:     300 * time.Millisecond,
			SocialInitialDelay:   3000 * time.Millisecond,
			FeedbackRefetchDelay: 1500 * time.Millisecond,
			RequestTimeout:       10 * time.Second,
			IdleTTL:              30 * time.Minute,
			JanitorInterval:      time.Minute,
			MaxSessions:          0,
		},
		Social: SocialConfig{
			ScoreLow:  0.1,
			ScoreHigh: 0.7,
		},
		API: APIConfig{
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for values that would break the service
// at runtime. It is called after all layers are merged.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port)
	}

	if c.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}
	u, err := url.Parse(c.Backend.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend.url %q is not a valid absolute URL", c.Backend.URL)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be positive")
	}
	if c.Backend.BreakerFailureRatio <= 0 || c.Backend.BreakerFailureRatio > 1 {
		return fmt.Errorf("backend.breaker_failure_ratio %v out of range (0,1]", c.Backend.BreakerFailureRatio)
	}

	for name, d := range map[string]time.Duration{
		"session.auto_advance_delay":     c.Session.AutoAdvanceDelay,
		"session.social_initial_delay":   c.Session.SocialInitialDelay,
		"session.feedback_refetch_delay": c.Session.FeedbackRefetchDelay,
		"session.request_timeout":        c.Session.RequestTimeout,
		"session.idle_ttl":               c.Session.IdleTTL,
		"session.janitor_interval":       c.Session.JanitorInterval,
	} {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	if c.Session.MaxSessions < 0 {
		return fmt.Errorf("session.max_sessions must not be negative")
	}

	if c.Social.ScoreLow < 0 || c.Social.ScoreHigh > 1 || c.Social.ScoreLow >= c.Social.ScoreHigh {
		return fmt.Errorf("social score band [%v, %v] must satisfy 0 <= low < high <= 1",
			c.Social.ScoreLow, c.Social.ScoreHigh)
	}

	if c.API.RateLimitRequests <= 0 {
		return fmt.Errorf("api.rate_limit_requests must be positive")
	}
	if c.API.RateLimitWindow <= 0 {
		return fmt.Errorf("api.rate_limit_window must be positive")
	}

	return nil
}
