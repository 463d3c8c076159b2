// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

// Package metrics provides Prometheus instrumentation for the GameSoul
// service: session lifecycle, questionnaire submissions, the social
// recommendation cascade, feedback delivery, API requests, and the circuit
// breaker around the recommendation backend.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Session Metrics
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamesoul_sessions_active",
			Help: "Current number of live wizard sessions",
		},
	)

	SessionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamesoul_session_transitions_total",
			Help: "Total number of session phase transitions",
		},
		[]string{"from", "to"},
	)

	SessionsReaped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gamesoul_sessions_reaped_total",
			Help: "Total number of idle sessions removed by the janitor",
		},
	)

	// Questionnaire Metrics
	QuestionnaireSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamesoul_questionnaire_submissions_total",
			Help: "Total number of questionnaire submissions",
		},
		[]string{"source"}, // "backend", "fallback"
	)

	// Social Cascade Metrics
	SocialResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamesoul_social_resolutions_total",
			Help: "Total number of social recommendation resolutions by serving tier",
		},
		[]string{"tier"}, // "direct", "mixed", "simulated", "static", "error"
	)

	SocialResolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gamesoul_social_resolution_duration_seconds",
			Help:    "Duration of full social cascade resolutions in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Feedback Metrics
	FeedbackEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamesoul_feedback_events_total",
			Help: "Total number of feedback send attempts",
		},
		[]string{"result", "polarity"}, // result: "sent", "failed"; polarity: "like", "dislike"
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamesoul_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gamesoul_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gamesoul_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gamesoul_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamesoul_circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gamesoul_circuit_breaker_requests_total",
			Help: "Total number of requests through the circuit breaker",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordSessionTransition records one phase transition.
func RecordSessionTransition(from, to string) {
	SessionTransitions.WithLabelValues(from, to).Inc()
}

// RecordFeedback records one feedback send attempt.
func RecordFeedback(sent, liked bool) {
	result := "sent"
	if !sent {
		result = "failed"
	}
	polarity := "like"
	if !liked {
		polarity = "dislike"
	}
	FeedbackEvents.WithLabelValues(result, polarity).Inc()
}

// StatusCodeLabel converts a numeric HTTP status to its metric label.
func StatusCodeLabel(code int) string {
	return strconv.Itoa(code)
}
