// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

// Package session implements the wizard's finite-state flow: one Session per
// user walking Landing → Register → Questionnaire → Results, a Manager that
// isolates sessions from each other, and a Scheduler owning the delayed
// transitions (auto-advance, the Results social fetch, the post-feedback
// re-fetch). Every state change is synchronous under the session's own
// mutex; only the backend calls triggered by timers run outside it.
package session

import (
	"sync"
	"time"

	"github.com/gamesoul/gamesoul/internal/models"
	"github.com/gamesoul/gamesoul/internal/questionnaire"
)

// Session is one user's walk through the wizard. All fields are guarded by
// mu; the Manager is the only writer.
type Session struct {
	mu sync.Mutex

	id         string
	phase      Phase
	userName   string
	userID     string
	controller *questionnaire.Controller
	result     *models.QuestionnaireResult

	createdAt  time.Time
	lastActive time.Time
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// QuestionState describes questionnaire progress for API consumers.
type QuestionState struct {
	Index    int              `json:"index"`
	Count    int              `json:"count"`
	Question models.Question  `json:"question"`
	Answers  models.AnswerSet `json:"answers"`
}

// Snapshot is a point-in-time copy of a session, safe to serialize after
// the session lock is released.
type Snapshot struct {
	ID            string                      `json:"id"`
	Phase         Phase                       `json:"phase"`
	UserName      string                      `json:"user_name,omitempty"`
	UserID        string                      `json:"user_id,omitempty"`
	Questionnaire *QuestionState              `json:"questionnaire,omitempty"`
	Result        *models.QuestionnaireResult `json:"result,omitempty"`
	CreatedAt     time.Time                   `json:"created_at"`
	LastActive    time.Time                   `json:"last_active"`
}

// snapshotLocked copies the session state. Caller holds s.mu.
func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		ID:         s.id,
		Phase:      s.phase,
		UserName:   s.userName,
		UserID:     s.userID,
		CreatedAt:  s.createdAt,
		LastActive: s.lastActive,
	}

	if s.phase == PhaseQuestionnaire && s.controller != nil {
		snap.Questionnaire = &QuestionState{
			Index:    s.controller.Index(),
			Count:    questionnaire.Count(),
			Question: s.controller.Current(),
			Answers:  s.controller.Answers(),
		}
	}

	if s.result != nil {
		snap.Result = s.result.Clone()
	}

	return snap
}
