// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package social

import "github.com/gamesoul/gamesoul/internal/models"

// StaticCommunityPicks returns the fixed community list served when the
// backend produced no usable social data. The social panel always shows
// something, so this list stands in until real collaborative data exists.
func StaticCommunityPicks() []models.Recommendation {
	return []models.Recommendation{
		{
			ID:          "fallback-social-1",
			Name:        "Journey",
			Description: "Experiencia contemplativa recomendada por usuarios similares",
			MatchScore:  0.6,
			Reasons:     []string{"👥 Usuarios como tú también jugaron esto"},
		},
		{
			ID:          "fallback-social-2",
			Name:        "Stardew Valley",
			Description: "Popular entre usuarios con gustos similares",
			MatchScore:  0.5,
			Reasons:     []string{"👥 Popular en la comunidad"},
		},
		{
			ID:          "fallback-social-3",
			Name:        "Animal Crossing",
			Description: "Recomendado por usuarios con tu perfil emocional",
			MatchScore:  0.4,
			Reasons:     []string{"👥 Usuarios similares lo recomiendan"},
		},
	}
}

// LearningPlaceholder returns the single placeholder entry shown when the
// backend could not be reached at all.
func LearningPlaceholder() []models.Recommendation {
	return []models.Recommendation{
		{
			ID:          "error-fallback",
			Name:        "Sistema Social Activo",
			Description: "El sistema está aprendiendo de tus gustos y conectándote con usuarios similares...",
			MatchScore:  0.3,
			Reasons:     []string{"👥 Sistema social en funcionamiento"},
		},
	}
}
