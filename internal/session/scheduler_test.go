// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package session

import (
	"sync/atomic"
	"testing"
	"time"
)

// waitFor polls cond until it holds or the deadline passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", msg)
}

func TestSchedulerFires(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var fired atomic.Int32
	s.Schedule("sess-1", TimerAutoAdvance, 5*time.Millisecond, func() {
		fired.Add(1)
	})

	waitFor(t, 2*time.Second, func() bool { return fired.Load() == 1 }, "timer to fire")

	if s.Pending("sess-1", TimerAutoAdvance) {
		t.Error("timer still pending after firing")
	}
}

func TestSchedulerReplaceKeepsLastOnly(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var first, second atomic.Int32
	s.Schedule("sess-1", TimerAutoAdvance, 20*time.Millisecond, func() { first.Add(1) })
	s.Schedule("sess-1", TimerAutoAdvance, 5*time.Millisecond, func() { second.Add(1) })

	waitFor(t, 2*time.Second, func() bool { return second.Load() == 1 }, "replacement timer to fire")
	time.Sleep(50 * time.Millisecond)

	if first.Load() != 0 {
		t.Error("replaced timer fired")
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var fired atomic.Int32
	s.Schedule("sess-1", TimerAutoAdvance, 10*time.Millisecond, func() { fired.Add(1) })
	s.Cancel("sess-1", TimerAutoAdvance)

	time.Sleep(50 * time.Millisecond)
	if fired.Load() != 0 {
		t.Error("cancelled timer fired")
	}
	if s.Pending("sess-1", TimerAutoAdvance) {
		t.Error("cancelled timer still pending")
	}
}

func TestSchedulerCancelSessionLeavesOthers(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var mine, other atomic.Int32
	s.Schedule("sess-1", TimerAutoAdvance, 10*time.Millisecond, func() { mine.Add(1) })
	s.Schedule("sess-1", TimerSocialInitial, 10*time.Millisecond, func() { mine.Add(1) })
	s.Schedule("sess-2", TimerAutoAdvance, 10*time.Millisecond, func() { other.Add(1) })

	s.CancelSession("sess-1")

	waitFor(t, 2*time.Second, func() bool { return other.Load() == 1 }, "other session's timer")
	time.Sleep(50 * time.Millisecond)

	if mine.Load() != 0 {
		t.Error("cancelled session's timers fired")
	}
}

func TestSchedulerKindsAreIndependent(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var advance, social atomic.Int32
	s.Schedule("sess-1", TimerAutoAdvance, 5*time.Millisecond, func() { advance.Add(1) })
	s.Schedule("sess-1", TimerSocialInitial, 5*time.Millisecond, func() { social.Add(1) })

	waitFor(t, 2*time.Second, func() bool {
		return advance.Load() == 1 && social.Load() == 1
	}, "both kinds to fire")
}

func TestTimerKindString(t *testing.T) {
	tests := []struct {
		kind TimerKind
		want string
	}{
		{TimerAutoAdvance, "auto_advance"},
		{TimerSocialInitial, "social_initial"},
		{TimerFeedbackRefetch, "feedback_refetch"},
		{TimerKind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("TimerKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
