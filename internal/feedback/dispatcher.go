// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

// Package feedback turns like/dislike signals into backend feedback calls
// and the confirmation messages shown next to each recommendation.
package feedback

import (
	"context"
	"fmt"

	"github.com/gamesoul/gamesoul/internal/logging"
	"github.com/gamesoul/gamesoul/internal/metrics"
	"github.com/gamesoul/gamesoul/internal/models"
	"github.com/gamesoul/gamesoul/internal/soulbackend"
)

const (
	// likeRating and dislikeRating are the fixed numeric ratings the
	// backend expects for the two feedback polarities.
	likeRating    = 4
	dislikeRating = 2

	likeMessage    = "¡Genial! Buscaremos más juegos como este 🎯"
	dislikeMessage = "Entendido. Evitaremos juegos similares 👍"
)

// Dispatcher sends feedback signals to the backend.
type Dispatcher struct {
	client soulbackend.ClientInterface
}

// NewDispatcher builds a Dispatcher over the given backend client.
func NewDispatcher(client soulbackend.ClientInterface) *Dispatcher {
	return &Dispatcher{client: client}
}

// Rating maps a feedback polarity to its backend rating value.
func Rating(liked bool) int {
	if liked {
		return likeRating
	}
	return dislikeRating
}

// Message returns the confirmation text shown for a recorded polarity.
func Message(liked bool) string {
	if liked {
		return likeMessage
	}
	return dislikeMessage
}

// Send records a like or dislike for a game. On success it returns the
// outcome to store against the game; on failure the signal is dropped and
// no message is recorded.
func (d *Dispatcher) Send(ctx context.Context, userID, gameID string, liked bool) (*models.FeedbackOutcome, error) {
	if err := d.client.SendFeedback(ctx, userID, gameID, liked, Rating(liked)); err != nil {
		metrics.RecordFeedback(false, liked)
		logging.Ctx(ctx).Error().
			Err(err).
			Str("user_id", userID).
			Str("game_id", gameID).
			Bool("liked", liked).
			Msg("feedback dispatch failed")
		return nil, fmt.Errorf("failed to send feedback for %s: %w", gameID, err)
	}

	metrics.RecordFeedback(true, liked)
	logging.Ctx(ctx).Info().
		Str("user_id", userID).
		Str("game_id", gameID).
		Bool("liked", liked).
		Msg("feedback recorded")

	return &models.FeedbackOutcome{
		Liked:   liked,
		Message: Message(liked),
	}, nil
}
