// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package soulbackend

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/gamesoul/gamesoul/internal/config"
	"github.com/gamesoul/gamesoul/internal/logging"
	"github.com/gamesoul/gamesoul/internal/metrics"
	"github.com/gamesoul/gamesoul/internal/models"
)

// CircuitBreakerClient wraps Client with circuit breaker protection so a
// slow or failing backend cannot pile up requests from every active session.
//
// The breaker uses real time (via sony/gobreaker) for its interval and
// timeout calculations. Tests exercise the wrapped client directly or
// configure a small MinRequests sample.
type CircuitBreakerClient struct {
	client ClientInterface
	cb     *gobreaker.CircuitBreaker[any]
	name   string
}

// NewCircuitBreakerClient wraps client with a circuit breaker configured from
// cfg. The circuit opens once the failure rate reaches BreakerFailureRatio
// over at least BreakerMinRequests requests, stays open for BreakerTimeout,
// then allows BreakerMaxRequests probes half-open.
func NewCircuitBreakerClient(client ClientInterface, cfg *config.BackendConfig) *CircuitBreakerClient {
	cbName := "soul-backend"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: cfg.BreakerMaxRequests,
		Interval:    cfg.BreakerInterval,
		Timeout:     cfg.BreakerTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.BreakerFailureRatio

			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
		},
	})

	return &CircuitBreakerClient{
		client: client,
		cb:     cb,
		name:   cbName,
	}
}

// execute runs a backend call through the circuit breaker and records
// per-request metrics.
func (cbc *CircuitBreakerClient) execute(fn func() (any, error)) (any, error) {
	result, err := cbc.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		}
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
	return result, nil
}

// castResult safely type-casts the circuit breaker result with error checking.
func castResult[T any](result any, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics.
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging.
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Submit posts questionnaire answers with circuit breaker protection.
func (cbc *CircuitBreakerClient) Submit(ctx context.Context, userID, userName string, answers models.AnswerSet) (*models.SubmissionResult, error) {
	return castResult[*models.SubmissionResult](cbc.execute(func() (any, error) {
		return cbc.client.Submit(ctx, userID, userName, answers)
	}))
}

// SocialRecommendations fetches community picks with circuit breaker protection.
func (cbc *CircuitBreakerClient) SocialRecommendations(ctx context.Context, userID string) ([]models.Recommendation, error) {
	return castResult[[]models.Recommendation](cbc.execute(func() (any, error) {
		return cbc.client.SocialRecommendations(ctx, userID)
	}))
}

// MixedRecommendations fetches the blended feed with circuit breaker protection.
func (cbc *CircuitBreakerClient) MixedRecommendations(ctx context.Context, userID string) ([]models.Recommendation, error) {
	return castResult[[]models.Recommendation](cbc.execute(func() (any, error) {
		return cbc.client.MixedRecommendations(ctx, userID)
	}))
}

// SendFeedback records a like or dislike with circuit breaker protection.
func (cbc *CircuitBreakerClient) SendFeedback(ctx context.Context, userID, gameID string, liked bool, rating int) error {
	_, err := cbc.execute(func() (any, error) {
		return nil, cbc.client.SendFeedback(ctx, userID, gameID, liked, rating)
	})
	return err
}
