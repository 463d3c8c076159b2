// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

// Package main is the entry point for the GameSoul server.
//
// GameSoul guides a player through a short emotional questionnaire and turns
// the answers into game recommendations. The server owns the wizard flow:
// session lifecycle, questionnaire progression with auto-advance, submission
// to the recommendation backend (with a deterministic local fallback), the
// tiered community recommendation cascade, and like/dislike feedback with a
// delayed social refetch.
//
// Startup order:
//
//  1. Configuration: Koanf v2 layered load (defaults, optional YAML file,
//     environment variables).
//  2. Logging: zerolog, configured from the logging section.
//  3. Backend client: HTTP client for the recommendation backend, optionally
//     wrapped in a gobreaker circuit breaker.
//  4. Session manager: in-memory sessions with per-session timers.
//  5. Supervisor tree: suture runs the HTTP server and the idle-session
//     janitor, restarting either on failure.
//
// The server handles graceful shutdown on SIGINT and SIGTERM: the HTTP
// server drains in-flight requests, session timers are canceled, and the
// supervisor tree reports anything that failed to stop.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gamesoul/gamesoul/internal/api"
	"github.com/gamesoul/gamesoul/internal/config"
	"github.com/gamesoul/gamesoul/internal/feedback"
	"github.com/gamesoul/gamesoul/internal/logging"
	"github.com/gamesoul/gamesoul/internal/session"
	"github.com/gamesoul/gamesoul/internal/social"
	"github.com/gamesoul/gamesoul/internal/soulbackend"
	"github.com/gamesoul/gamesoul/internal/supervisor"
	"github.com/gamesoul/gamesoul/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("backend_url", cfg.Backend.URL).
		Bool("breaker_enabled", cfg.Backend.BreakerEnabled).
		Str("environment", cfg.Server.Environment).
		Msg("Configuration loaded")

	// Backend client, optionally behind the circuit breaker.
	var client soulbackend.ClientInterface = soulbackend.NewClient(cfg.Backend.URL, cfg.Backend.Timeout)
	if cfg.Backend.BreakerEnabled {
		client = soulbackend.NewCircuitBreakerClient(client, &cfg.Backend)
		logging.Info().Msg("Circuit breaker enabled for backend client")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	manager := session.NewManager(ctx, cfg.Session,
		soulbackend.FailOpenSubmitter{Client: client},
		social.NewResolver(client, cfg.Social),
		feedback.NewDispatcher(client),
	)
	defer manager.Close()

	router := api.NewRouter(api.NewHandler(manager), &cfg.API)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree := supervisor.NewTree(logging.NewSlogLogger(), treeCfg)

	tree.AddSessionService(services.NewJanitorService(manager, cfg.Session.JanitorInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Server stopped gracefully")
}
