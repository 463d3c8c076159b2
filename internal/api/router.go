// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

// Package api provides the HTTP surface of the wizard: request decoding,
// the response envelope, and Chi routing.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gamesoul/gamesoul/internal/config"
	"github.com/gamesoul/gamesoul/internal/middleware"
)

// Router wires the wizard handlers into a Chi router.
type Router struct {
	handler *Handler
	cfg     *config.APIConfig
}

// NewRouter creates a Router serving the given handler.
func NewRouter(handler *Handler, cfg *config.APIConfig) *Router {
	return &Router{handler: handler, cfg: cfg}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order. CORS is global so
	// OPTIONS preflight works everywhere.
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   router.cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health endpoints stay outside rate limiting so probes never starve.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Wizard endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(router.cfg.RateLimitRequests, router.cfg.RateLimitWindow))
		r.Use(middleware.PrometheusMetrics)

		r.Get("/questions", router.handler.Questions)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", router.handler.CreateSession)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", router.handler.GetSession)
				r.Post("/start", router.handler.Start)
				r.Post("/register", router.handler.Register)
				r.Get("/questionnaire", router.handler.Questionnaire)
				r.Post("/questionnaire/answers", router.handler.Answer)
				r.Post("/questionnaire/back", router.handler.Back)
				r.Post("/feedback", router.handler.Feedback)
				r.Post("/social/refresh", router.handler.RefreshSocial)
				r.Post("/restart", router.handler.Restart)
				r.Post("/reset", router.handler.Reset)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
