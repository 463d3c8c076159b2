// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package session

import (
	"sync"
	"time"
)

// TimerKind identifies one of the wizard's delayed operations. A session
// holds at most one live timer per kind; scheduling replaces any pending
// timer of the same kind (last answer wins for auto-advance).
type TimerKind int

const (
	// TimerAutoAdvance fires the 300 ms advance after an answer.
	TimerAutoAdvance TimerKind = iota
	// TimerSocialInitial fires the one-shot social fetch on entering Results.
	TimerSocialInitial
	// TimerFeedbackRefetch fires the social re-fetch after a feedback send.
	TimerFeedbackRefetch
)

// String returns the timer label used in logs.
func (k TimerKind) String() string {
	switch k {
	case TimerAutoAdvance:
		return "auto_advance"
	case TimerSocialInitial:
		return "social_initial"
	case TimerFeedbackRefetch:
		return "feedback_refetch"
	default:
		return "unknown"
	}
}

type timerKey struct {
	sessionID string
	kind      TimerKind
}

// Scheduler owns the delayed operations of every session, keyed by session
// ID and timer kind so teardown can cancel a whole session at once. A timer
// that fires after its session is gone runs against nothing; callbacks must
// re-check session state themselves.
type Scheduler struct {
	mu     sync.Mutex
	timers map[timerKey]*time.Timer
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[timerKey]*time.Timer)}
}

// Schedule arms fn to run after delay, replacing any pending timer with the
// same session ID and kind.
func (s *Scheduler) Schedule(sessionID string, kind TimerKind, delay time.Duration, fn func()) {
	key := timerKey{sessionID: sessionID, kind: kind}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.timers[key]; ok {
		prev.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(delay, func() {
		s.mu.Lock()
		cur, ok := s.timers[key]
		if ok && cur == t {
			delete(s.timers, key)
		}
		s.mu.Unlock()

		// A replacement or cancellation between firing and acquiring the
		// lock wins; the stale callback must not run.
		if !ok || cur != t {
			return
		}
		fn()
	})
	s.timers[key] = t
}

// Cancel stops the pending timer of one kind, if any.
func (s *Scheduler) Cancel(sessionID string, kind TimerKind) {
	key := timerKey{sessionID: sessionID, kind: kind}

	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[key]; ok {
		t.Stop()
		delete(s.timers, key)
	}
}

// CancelSession stops every pending timer owned by a session.
func (s *Scheduler) CancelSession(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, t := range s.timers {
		if key.sessionID == sessionID {
			t.Stop()
			delete(s.timers, key)
		}
	}
}

// Stop cancels every pending timer. Used on shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}
}

// Pending reports whether a timer of the given kind is armed.
func (s *Scheduler) Pending(sessionID string, kind TimerKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.timers[timerKey{sessionID: sessionID, kind: kind}]
	return ok
}
