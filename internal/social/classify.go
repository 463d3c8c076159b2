// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package social

import (
	"strings"

	"github.com/gamesoul/gamesoul/internal/models"
)

// socialReasonMarkers are the lowercase substrings that identify a
// recommendation reason as community-driven.
var socialReasonMarkers = []string{
	"usuarios como tú",
	"social",
	"similares",
	"comunidad",
}

// HasSocialSignal reports whether a recommendation from the mixed feed
// carries a community signal: either one of its reasons mentions a social
// marker, or its match score sits in the band (low, high) typical of
// collaborative scoring. Both bounds are exclusive.
func HasSocialSignal(rec models.Recommendation, low, high float64) bool {
	for _, reason := range rec.Reasons {
		lowered := strings.ToLower(reason)
		for _, marker := range socialReasonMarkers {
			if strings.Contains(lowered, marker) {
				return true
			}
		}
	}

	return rec.MatchScore > low && rec.MatchScore < high
}

// FilterSocial keeps only the recommendations with a community signal.
func FilterSocial(recs []models.Recommendation, low, high float64) []models.Recommendation {
	var social []models.Recommendation
	for _, rec := range recs {
		if HasSocialSignal(rec, low, high) {
			social = append(social, rec)
		}
	}
	return social
}
