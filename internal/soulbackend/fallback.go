// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package soulbackend

import (
	"context"

	"github.com/gamesoul/gamesoul/internal/logging"
	"github.com/gamesoul/gamesoul/internal/metrics"
	"github.com/gamesoul/gamesoul/internal/models"
)

// StatusBackendUnavailable tags a submission result that was generated
// locally because the backend could not serve the request.
const StatusBackendUnavailable = "backend_unavailable"

// FallbackSubmission returns the deterministic submission result served when
// the backend is unavailable. The results phase must never be empty, so a
// connectivity failure during onboarding degrades to this fixed pair instead
// of an error.
func FallbackSubmission() *models.SubmissionResult {
	return &models.SubmissionResult{
		Status:  StatusBackendUnavailable,
		Message: "Backend no disponible - usando datos de prueba",
		Recommendations: []models.Recommendation{
			{
				ID:          "fallback-1",
				Name:        "Stardew Valley",
				Description: "Juego relajante perfecto para ti",
				MatchScore:  0.85,
				Reasons:     []string{"Muy relajante", "Creativo"},
			},
			{
				ID:          "fallback-2",
				Name:        "Minecraft",
				Description: "Ideal para crear y explorar",
				MatchScore:  0.78,
				Reasons:     []string{"Creativo", "Exploración"},
			},
		},
	}
}

// FailOpenSubmitter adapts a backend client into the fail-open submission
// used by the session layer: every call yields a result, never an error.
type FailOpenSubmitter struct {
	Client ClientInterface
}

// Submit submits via SubmitWithFallback.
func (s FailOpenSubmitter) Submit(ctx context.Context, userID, userName string, answers models.AnswerSet) *models.SubmissionResult {
	return SubmitWithFallback(ctx, s.Client, userID, userName, answers)
}

// SubmitWithFallback submits the questionnaire and absorbs every transport
// and decoding failure into the deterministic fallback result. It never
// returns an error: the caller always receives a non-empty recommendation
// set.
func SubmitWithFallback(ctx context.Context, client ClientInterface, userID, userName string, answers models.AnswerSet) *models.SubmissionResult {
	result, err := client.Submit(ctx, userID, userName, answers)
	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("user_id", userID).
			Msg("questionnaire submission failed, serving fallback recommendations")
		metrics.QuestionnaireSubmissions.WithLabelValues("fallback").Inc()
		return FallbackSubmission()
	}

	logging.Ctx(ctx).Info().
		Str("user_id", userID).
		Int("recommendations", len(result.Recommendations)).
		Msg("questionnaire submitted")
	metrics.QuestionnaireSubmissions.WithLabelValues("backend").Inc()
	return result
}
