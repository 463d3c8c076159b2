// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/gamesoul/gamesoul/internal/validation"
)

// RegisterRequest carries the display name for the Register phase. Name
// length and content rules live in the session layer; here only presence is
// enforced.
type RegisterRequest struct {
	Name string `json:"name" validate:"required"`
}

// AnswerRequest records one questionnaire answer.
type AnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required"`
	OptionID   string `json:"option_id" validate:"required"`
}

// FeedbackRequest carries a like/dislike for a recommended game. Liked is a
// pointer so an absent field fails validation instead of defaulting to a
// dislike.
type FeedbackRequest struct {
	GameID string `json:"game_id" validate:"required"`
	Liked  *bool  `json:"liked" validate:"required"`
}

// decodeAndValidate decodes a JSON body into dst and runs struct validation.
// It writes the error response itself and reports whether the caller should
// proceed.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	rw := NewResponseWriter(w, r)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		rw.BadRequest("invalid JSON body")
		return false
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		rw.ValidationError(verr.Error(), verr.Details())
		return false
	}

	return true
}
