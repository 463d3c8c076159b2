// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

// Package social resolves community recommendations through a tiered
// cascade: the direct social feed, the filtered mixed feed, a simulated
// projection of the mixed feed, a static community list, and finally a
// learning placeholder when the backend is unreachable. Every tier
// produces a non-empty list, so the caller always has something to show.
package social

import (
	"context"
	"errors"
	"time"

	"github.com/gamesoul/gamesoul/internal/config"
	"github.com/gamesoul/gamesoul/internal/logging"
	"github.com/gamesoul/gamesoul/internal/metrics"
	"github.com/gamesoul/gamesoul/internal/models"
	"github.com/gamesoul/gamesoul/internal/soulbackend"
)

// Tier identifies which cascade level produced the social recommendations.
type Tier int

const (
	// TierDirect is the backend's dedicated social feed.
	TierDirect Tier = iota
	// TierMixed is the mixed feed filtered down to community signals.
	TierMixed
	// TierSimulated projects the top mixed entries as community picks.
	TierSimulated
	// TierStatic is the fixed community list.
	TierStatic
	// TierError is the placeholder shown when the backend is unreachable.
	TierError
)

// String returns the tier label used in logs and metrics.
func (t Tier) String() string {
	switch t {
	case TierDirect:
		return "direct"
	case TierMixed:
		return "mixed"
	case TierSimulated:
		return "simulated"
	case TierStatic:
		return "static"
	case TierError:
		return "error"
	default:
		return "unknown"
	}
}

// simulatedReason replaces the original reasons on simulated entries.
const simulatedReason = "👥 Usuarios como tú también jugaron esto"

// simulatedScore is the fixed match score assigned to simulated entries.
const simulatedScore = 0.4

// maxSimulated caps how many mixed entries are projected as social picks.
const maxSimulated = 2

// Resolver walks the recommendation cascade against the backend client.
type Resolver struct {
	client soulbackend.ClientInterface
	cfg    config.SocialConfig
}

// NewResolver builds a Resolver over the given backend client.
func NewResolver(client soulbackend.ClientInterface, cfg config.SocialConfig) *Resolver {
	return &Resolver{client: client, cfg: cfg}
}

// Resolve walks the cascade for userID and returns the recommendations with
// the tier that produced them. It never returns an empty list and never
// returns an error: connectivity failures resolve to TierError, HTTP-level
// failures fall through to the next tier.
func (r *Resolver) Resolve(ctx context.Context, userID string) ([]models.Recommendation, Tier) {
	start := time.Now()
	recs, tier := r.resolve(ctx, userID)
	elapsed := time.Since(start)

	metrics.SocialResolutions.WithLabelValues(tier.String()).Inc()
	metrics.SocialResolutionDuration.Observe(elapsed.Seconds())

	logging.Ctx(ctx).Info().
		Str("user_id", userID).
		Str("tier", tier.String()).
		Int("count", len(recs)).
		Dur("duration", elapsed).
		Msg("social recommendations resolved")

	return recs, tier
}

func (r *Resolver) resolve(ctx context.Context, userID string) ([]models.Recommendation, Tier) {
	direct, err := r.client.SocialRecommendations(ctx, userID)
	if err != nil {
		if isTerminal(err) {
			logging.Ctx(ctx).Warn().Err(err).Str("user_id", userID).Msg("social feed unreachable")
			return LearningPlaceholder(), TierError
		}
		logging.Ctx(ctx).Debug().Err(err).Str("user_id", userID).Msg("direct social feed failed, trying mixed")
	} else if len(direct) > 0 {
		return direct, TierDirect
	}

	mixed, err := r.client.MixedRecommendations(ctx, userID)
	if err != nil {
		if isTerminal(err) {
			logging.Ctx(ctx).Warn().Err(err).Str("user_id", userID).Msg("mixed feed unreachable")
			return LearningPlaceholder(), TierError
		}
		logging.Ctx(ctx).Debug().Err(err).Str("user_id", userID).Msg("mixed feed failed, serving static picks")
		return StaticCommunityPicks(), TierStatic
	}

	if filtered := FilterSocial(mixed, r.cfg.ScoreLow, r.cfg.ScoreHigh); len(filtered) > 0 {
		return filtered, TierMixed
	}

	if len(mixed) > 0 {
		return simulate(mixed), TierSimulated
	}

	return StaticCommunityPicks(), TierStatic
}

// simulate projects the leading mixed entries as community picks with a
// rewritten identity so they never collide with the originals.
func simulate(mixed []models.Recommendation) []models.Recommendation {
	n := len(mixed)
	if n > maxSimulated {
		n = maxSimulated
	}

	simulated := make([]models.Recommendation, 0, n)
	for _, rec := range mixed[:n] {
		rec.ID = "social-" + rec.ID
		rec.Reasons = []string{simulatedReason}
		rec.MatchScore = simulatedScore
		simulated = append(simulated, rec)
	}
	return simulated
}

// isTerminal reports whether a backend error should short-circuit the
// cascade to the error tier. Connectivity failures and undecodable bodies
// are terminal; HTTP status failures fall through tier by tier.
func isTerminal(err error) bool {
	if soulbackend.IsNetworkError(err) {
		return true
	}
	var malformed *soulbackend.MalformedResponseError
	return errors.As(err, &malformed)
}
