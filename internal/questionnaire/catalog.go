// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

// Package questionnaire holds the emotional question catalog and the
// step-by-step controller that walks a user through it.
package questionnaire

import "github.com/gamesoul/gamesoul/internal/models"

// catalog is the ordered emotional questionnaire. The IDs and option
// values are the backend's wire contract; the labels are the product's
// user-facing Spanish copy.
var catalog = []models.Question{
	{
		ID:     "tipo_experiencia",
		Prompt: "¿Qué tipo de experiencia buscas?",
		Options: []models.Option{
			{Value: "relajante", Label: "Algo relajante y tranquilo", Emoji: "🧘‍♀️", Description: "Quiero desestresarme y relajarme"},
			{Value: "emocion", Label: "Una experiencia emocionante", Emoji: "🎢", Description: "Busco aventura y emoción"},
			{Value: "desafio", Label: "Un desafío que me pruebe", Emoji: "⚔️", Description: "Quiero superar obstáculos difíciles"},
			{Value: "exploracion", Label: "Explorar y descubrir", Emoji: "🗺️", Description: "Me gusta investigar mundos nuevos"},
			{Value: "conexion", Label: "Conectar con otros jugadores", Emoji: "👥", Description: "Prefiero experiencias sociales"},
		},
	},
	{
		ID:     "estado_animo",
		Prompt: "¿Cómo te sientes ahora mismo?",
		Options: []models.Option{
			{Value: "tranquilo", Label: "Tranquilo y relajado", Emoji: "😌", Description: "En paz, sin prisa"},
			{Value: "energico", Label: "Con energía y ganas de acción", Emoji: "⚡", Description: "Listo para la acción"},
			{Value: "curioso", Label: "Curioso y explorador", Emoji: "🤔", Description: "Quiero aprender algo nuevo"},
			{Value: "nostalgico", Label: "Nostálgico y reflexivo", Emoji: "🌅", Description: "Con ganas de recordar y reflexionar"},
			{Value: "estresado", Label: "Estresado, necesito despejarme", Emoji: "😤", Description: "Necesito olvidarme de todo"},
		},
	},
	{
		ID:     "actividad_preferida",
		Prompt: "¿Qué actividad te llama más la atención?",
		Options: []models.Option{
			{Value: "construir", Label: "Construir y crear cosas", Emoji: "🏗️", Description: "Me gusta dar forma a mis ideas"},
			{Value: "competir", Label: "Competir contra otros", Emoji: "🏆", Description: "Quiero demostrar mis habilidades"},
			{Value: "descubrir", Label: "Descubrir secretos y misterios", Emoji: "🔍", Description: "Me encanta resolver enigmas"},
			{Value: "historia", Label: "Vivir una gran historia", Emoji: "📚", Description: "Quiero una narrativa envolvente"},
		},
	},
	{
		ID:     "tiempo_disponible",
		Prompt: "¿Cuánto tiempo tienes para jugar?",
		Options: []models.Option{
			{Value: "corto", Label: "30 minutos o menos", Emoji: "⏰", Description: "Una sesión rápida"},
			{Value: "medio", Label: "1-2 horas", Emoji: "🕐", Description: "Una buena sesión"},
			{Value: "largo", Label: "3+ horas", Emoji: "🌙", Description: "Tengo toda la tarde/noche"},
		},
	},
	{
		ID:     "meta_emocional",
		Prompt: "¿Qué quieres sentir después de jugar?",
		Options: []models.Option{
			{Value: "calma", Label: "Calma y paz interior", Emoji: "☮️", Description: "Relajado y en armonía"},
			{Value: "satisfaccion", Label: "Satisfacción por lograr algo", Emoji: "💪", Description: "Orgulloso de mis logros"},
			{Value: "asombro", Label: "Asombro y maravilla", Emoji: "🤯", Description: "Sorprendido por algo increíble"},
			{Value: "diversion", Label: "Diversión pura", Emoji: "😂", Description: "Haberme reído y divertido"},
			{Value: "conexion", Label: "Conexión emocional profunda", Emoji: "💝", Description: "Tocado por una historia o personaje"},
		},
	},
}

// Catalog returns the ordered question list. Callers must not mutate it.
func Catalog() []models.Question {
	return catalog
}

// Count returns the number of questions in the catalog.
func Count() int {
	return len(catalog)
}
