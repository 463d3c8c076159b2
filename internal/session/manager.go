// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gamesoul/gamesoul/internal/config"
	"github.com/gamesoul/gamesoul/internal/logging"
	"github.com/gamesoul/gamesoul/internal/metrics"
	"github.com/gamesoul/gamesoul/internal/models"
	"github.com/gamesoul/gamesoul/internal/questionnaire"
	"github.com/gamesoul/gamesoul/internal/social"
)

// minNameLength is the shortest accepted display name after trimming.
const minNameLength = 2

// Submitter submits a completed questionnaire. Implementations are fail-open:
// they always produce a result, falling back to the deterministic local pair
// on any backend failure.
type Submitter interface {
	Submit(ctx context.Context, userID, userName string, answers models.AnswerSet) *models.SubmissionResult
}

// Resolver produces the community recommendation list for a user through the
// tiered cascade. It never fails and never returns an empty list.
type Resolver interface {
	Resolve(ctx context.Context, userID string) ([]models.Recommendation, social.Tier)
}

// FeedbackSender delivers a like/dislike signal. A nil error means the
// outcome was recorded by the backend.
type FeedbackSender interface {
	Send(ctx context.Context, userID, gameID string, liked bool) (*models.FeedbackOutcome, error)
}

// Manager owns every live session and drives their transitions. Sessions are
// fully isolated: each has its own mutex, and timers are keyed by session ID
// so teardown of one session never touches another.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	scheduler *Scheduler
	submitter Submitter
	resolver  Resolver
	sender    FeedbackSender
	cfg       config.SessionConfig

	// now is injectable for deterministic user IDs in tests.
	now func() time.Time

	// baseCtx parents the contexts of timer-driven backend calls, so
	// shutdown cancels in-flight fetches.
	baseCtx context.Context
}

// NewManager builds a Manager with the given collaborators.
func NewManager(ctx context.Context, cfg config.SessionConfig, submitter Submitter, resolver Resolver, sender FeedbackSender) *Manager {
	return &Manager{
		sessions:  make(map[string]*Session),
		scheduler: NewScheduler(),
		submitter: submitter,
		resolver:  resolver,
		sender:    sender,
		cfg:       cfg,
		now:       time.Now,
		baseCtx:   ctx,
	}
}

// Create starts a new session in the Landing phase and returns its snapshot.
func (m *Manager) Create(ctx context.Context) (Snapshot, error) {
	now := m.now()
	s := &Session{
		id:         uuid.NewString(),
		phase:      PhaseLanding,
		createdAt:  now,
		lastActive: now,
	}

	m.mu.Lock()
	if m.cfg.MaxSessions > 0 && len(m.sessions) >= m.cfg.MaxSessions {
		m.mu.Unlock()
		return Snapshot{}, ErrTooManySessions
	}
	m.sessions[s.id] = s
	m.mu.Unlock()

	metrics.SessionsActive.Inc()
	logging.Ctx(ctx).Info().Str("session_id", s.id).Msg("session created")

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), nil
}

// Get returns a snapshot of the session.
func (m *Manager) Get(ctx context.Context, id string) (Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), nil
}

// Start moves a Landing session into Register.
func (m *Manager) Start(ctx context.Context, id string) (Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseLanding {
		return Snapshot{}, &TransitionError{Op: "start", Phase: s.phase}
	}

	m.transitionLocked(ctx, s, PhaseRegister)
	return s.snapshotLocked(), nil
}

// Register validates and stores the display name and moves the session into
// the Questionnaire phase with a fresh controller. Validation failures leave
// the session in Register.
func (m *Manager) Register(ctx context.Context, id, name string) (Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseRegister {
		return Snapshot{}, &TransitionError{Op: "register", Phase: s.phase}
	}

	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Snapshot{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if len([]rune(trimmed)) < minNameLength {
		return Snapshot{}, &ValidationError{Field: "name", Reason: "must be at least 2 characters"}
	}

	s.userName = trimmed
	s.controller = questionnaire.NewController()
	m.transitionLocked(ctx, s, PhaseQuestionnaire)

	return s.snapshotLocked(), nil
}

// Answer records an option for the current question and arms the
// auto-advance timer. Answering again before the timer fires replaces it:
// the last answer wins and at most one advance is pending.
func (m *Manager) Answer(ctx context.Context, id, questionID, value string) (Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseQuestionnaire {
		return Snapshot{}, &TransitionError{Op: "answer", Phase: s.phase}
	}

	if err := s.controller.Answer(questionID, value); err != nil {
		return Snapshot{}, &ValidationError{Field: "answer", Reason: err.Error()}
	}
	s.lastActive = m.now()

	m.scheduler.Schedule(s.id, TimerAutoAdvance, m.cfg.AutoAdvanceDelay, func() {
		m.advanceOrSubmit(s.id)
	})

	return s.snapshotLocked(), nil
}

// Back moves the questionnaire one question back, or exits to Register when
// already on the first question. Any pending auto-advance is cancelled.
func (m *Manager) Back(ctx context.Context, id string) (Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseQuestionnaire {
		return Snapshot{}, &TransitionError{Op: "back", Phase: s.phase}
	}

	m.scheduler.Cancel(s.id, TimerAutoAdvance)
	s.lastActive = m.now()

	if !s.controller.Back() {
		// First question: leave the questionnaire, keep the name so the
		// register form comes back pre-filled.
		m.transitionLocked(ctx, s, PhaseRegister)
	}

	return s.snapshotLocked(), nil
}

// Feedback records a like/dislike for a recommended game. On success the
// outcome lands in the session's feedback map and a delayed social re-fetch
// is scheduled; on failure nothing is recorded and the error is returned so
// the caller can retry.
func (m *Manager) Feedback(ctx context.Context, id, gameID string, liked bool) (Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	if s.phase != PhaseResults {
		s.mu.Unlock()
		return Snapshot{}, &TransitionError{Op: "feedback", Phase: s.phase}
	}
	userID := s.userID
	s.lastActive = m.now()
	s.mu.Unlock()

	// The send happens outside the session lock; a slow backend must not
	// freeze the session for other calls.
	outcome, err := m.sender.Send(ctx, userID, gameID, liked)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseResults || s.result == nil {
		// Session was reset while the send was in flight; drop the outcome.
		return s.snapshotLocked(), nil
	}

	s.result.Feedback[gameID] = *outcome

	m.scheduler.Schedule(s.id, TimerFeedbackRefetch, m.cfg.FeedbackRefetchDelay, func() {
		m.resolveSocial(m.baseCtx, s.id)
	})

	return s.snapshotLocked(), nil
}

// RefreshSocial runs the social cascade immediately for a Results session
// and returns the updated snapshot.
func (m *Manager) RefreshSocial(ctx context.Context, id string) (Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	if s.phase != PhaseResults {
		s.mu.Unlock()
		return Snapshot{}, &TransitionError{Op: "refresh social recommendations", Phase: s.phase}
	}
	s.lastActive = m.now()
	s.mu.Unlock()

	m.resolveSocial(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked(), nil
}

// Restart returns a Results session to the questionnaire for a fresh run,
// keeping the display name. The previous result and its timers are dropped.
func (m *Manager) Restart(ctx context.Context, id string) (Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseResults {
		return Snapshot{}, &TransitionError{Op: "restart", Phase: s.phase}
	}

	m.scheduler.CancelSession(s.id)
	s.result = nil
	s.userID = ""
	s.controller = questionnaire.NewController()
	m.transitionLocked(ctx, s, PhaseQuestionnaire)

	return s.snapshotLocked(), nil
}

// Reset returns a session to Landing from any phase, clearing all user data
// and cancelling every pending timer.
func (m *Manager) Reset(ctx context.Context, id string) (Snapshot, error) {
	s, err := m.lookup(id)
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m.scheduler.CancelSession(s.id)
	s.userName = ""
	s.userID = ""
	s.controller = nil
	s.result = nil
	m.transitionLocked(ctx, s, PhaseLanding)

	return s.snapshotLocked(), nil
}

// ReapIdle removes sessions idle longer than the configured TTL and cancels
// their timers. It returns the number of sessions reaped.
func (m *Manager) ReapIdle(ctx context.Context) int {
	cutoff := m.now().Add(-m.cfg.IdleTTL)

	m.mu.Lock()
	var stale []*Session
	for _, s := range m.sessions {
		s.mu.Lock()
		idle := s.lastActive.Before(cutoff)
		s.mu.Unlock()
		if idle {
			stale = append(stale, s)
			delete(m.sessions, s.id)
		}
	}
	m.mu.Unlock()

	for _, s := range stale {
		m.scheduler.CancelSession(s.id)
		metrics.SessionsActive.Dec()
		metrics.SessionsReaped.Inc()
		logging.Ctx(ctx).Info().Str("session_id", s.id).Msg("idle session reaped")
	}

	return len(stale)
}

// Close cancels every pending timer. In-flight resolver calls finish via
// baseCtx cancellation handled by the caller.
func (m *Manager) Close() {
	m.scheduler.Stop()
}

// advanceOrSubmit is the auto-advance timer callback: it either moves the
// cursor to the next question or, on a completed final question, submits the
// questionnaire and enters Results. A stale fire against a session that left
// the Questionnaire phase is a no-op.
func (m *Manager) advanceOrSubmit(id string) {
	s, err := m.lookup(id)
	if err != nil {
		return
	}

	s.mu.Lock()

	if s.phase != PhaseQuestionnaire || s.controller == nil {
		s.mu.Unlock()
		return
	}

	if s.controller.Advance() {
		s.mu.Unlock()
		return
	}

	if !s.controller.Complete() {
		// Final question reached without a full answer set; wait for the
		// missing answers instead of submitting.
		s.mu.Unlock()
		return
	}

	userName := s.userName
	answers := s.controller.Answers()
	userID := DeriveUserID(userName, m.now())
	s.mu.Unlock()

	result := m.submitter.Submit(m.baseCtx, userID, userName, answers)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseQuestionnaire {
		// Reset raced the submission; the result belongs to a torn-down walk.
		return
	}

	s.userID = userID
	s.result = &models.QuestionnaireResult{
		UserName:              userName,
		UserID:                userID,
		Answers:               answers,
		Status:                result.Status,
		Message:               result.Message,
		Recommendations:       result.Recommendations,
		SocialRecommendations: []models.Recommendation{},
		Feedback:              map[string]models.FeedbackOutcome{},
	}
	m.transitionLocked(m.baseCtx, s, PhaseResults)

	m.scheduler.Schedule(s.id, TimerSocialInitial, m.cfg.SocialInitialDelay, func() {
		m.resolveSocial(m.baseCtx, s.id)
	})
}

// resolveSocial runs the cascade and stores its output. Concurrent runs for
// the same session are allowed to race; the last one to finish wins.
func (m *Manager) resolveSocial(ctx context.Context, id string) {
	s, err := m.lookup(id)
	if err != nil {
		return
	}

	s.mu.Lock()
	if s.phase != PhaseResults || s.result == nil {
		s.mu.Unlock()
		return
	}
	userID := s.userID
	s.mu.Unlock()

	recs, tier := m.resolver.Resolve(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseResults || s.result == nil || s.userID != userID {
		// The walk this fetch belonged to is gone.
		return
	}

	s.result.SocialRecommendations = recs
	logging.Ctx(ctx).Debug().
		Str("session_id", s.id).
		Str("tier", tier.String()).
		Int("count", len(recs)).
		Msg("social recommendations stored")
}

// transitionLocked changes the phase and records the transition. Caller
// holds s.mu.
func (m *Manager) transitionLocked(ctx context.Context, s *Session, to Phase) {
	from := s.phase
	s.phase = to
	s.lastActive = m.now()

	metrics.RecordSessionTransition(from.String(), to.String())
	logging.Ctx(ctx).Info().
		Str("session_id", s.id).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("session phase transition")
}

func (m *Manager) lookup(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}
