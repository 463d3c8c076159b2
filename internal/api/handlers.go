// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gamesoul/gamesoul/internal/questionnaire"
	"github.com/gamesoul/gamesoul/internal/session"
)

// Handler exposes the wizard's session operations over HTTP.
type Handler struct {
	manager *session.Manager
}

// NewHandler creates a Handler over the session manager.
func NewHandler(manager *session.Manager) *Handler {
	return &Handler{manager: manager}
}

// writeSessionError maps session-layer errors onto API error responses:
// validation failures are 400, wrong-phase operations 409, unknown sessions
// 404, the session cap 503.
func writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	rw := NewResponseWriter(w, r)

	var ve *session.ValidationError
	if errors.As(err, &ve) {
		rw.ValidationError(ve.Error(), map[string]string{"field": ve.Field})
		return
	}

	var te *session.TransitionError
	if errors.As(err, &te) {
		rw.Conflict(te.Error())
		return
	}

	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		rw.NotFound("session not found")
	case errors.Is(err, session.ErrTooManySessions):
		rw.ServiceUnavailable("session limit reached, try again later")
	default:
		rw.InternalError("unexpected error")
	}
}

// CreateSession starts a new wizard session in the Landing phase.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.Create(r.Context())
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Created(snap)
}

// GetSession returns a snapshot of the session.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(snap)
}

// Start moves a Landing session into Register.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.Start(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(snap)
}

// Register stores the display name and enters the questionnaire.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	snap, err := h.manager.Register(r.Context(), chi.URLParam(r, "id"), req.Name)
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(snap)
}

// Questionnaire returns the current question and progress.
func (h *Handler) Questionnaire(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeSessionError(w, r, err)
		return
	}

	if snap.Questionnaire == nil {
		NewResponseWriter(w, r).Conflict("session is not in the questionnaire phase")
		return
	}
	NewResponseWriter(w, r).Success(snap.Questionnaire)
}

// Answer records an answer for the current question.
func (h *Handler) Answer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	snap, err := h.manager.Answer(r.Context(), chi.URLParam(r, "id"), req.QuestionID, req.OptionID)
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(snap)
}

// Back navigates one question back, or exits to Register.
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.Back(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(snap)
}

// Feedback records a like/dislike for a recommended game. A backend dispatch
// failure is surfaced as 502 so the client can retry.
func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	snap, err := h.manager.Feedback(r.Context(), chi.URLParam(r, "id"), req.GameID, *req.Liked)
	if err != nil {
		var te *session.TransitionError
		if errors.Is(err, session.ErrSessionNotFound) || errors.As(err, &te) {
			writeSessionError(w, r, err)
			return
		}
		NewResponseWriter(w, r).ExternalServiceError("recommendation backend", err)
		return
	}
	NewResponseWriter(w, r).Success(snap)
}

// RefreshSocial runs the social cascade immediately.
func (h *Handler) RefreshSocial(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.RefreshSocial(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(snap)
}

// Restart returns a Results session to the questionnaire.
func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.Restart(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(snap)
}

// Reset returns a session to Landing from any phase.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	snap, err := h.manager.Reset(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeSessionError(w, r, err)
		return
	}
	NewResponseWriter(w, r).Success(snap)
}

// Questions serves the static question catalog.
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(questionnaire.Catalog())
}

// HealthLive reports process liveness.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "ok"})
}

// HealthReady reports readiness to serve traffic.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "ready"})
}
