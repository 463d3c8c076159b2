// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package services

import (
	"context"
	"time"

	"github.com/gamesoul/gamesoul/internal/logging"
)

// SessionReaper removes idle sessions and reports how many were reaped.
// Satisfied by *session.Manager.
type SessionReaper interface {
	ReapIdle(ctx context.Context) int
}

// JanitorService periodically reaps idle sessions. Sessions live only in
// memory, so without the janitor an abandoned browser tab would hold its
// session forever.
type JanitorService struct {
	reaper   SessionReaper
	interval time.Duration
	name     string
}

// NewJanitorService creates a janitor scanning at the given interval.
func NewJanitorService(reaper SessionReaper, interval time.Duration) *JanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &JanitorService{
		reaper:   reaper,
		interval: interval,
		name:     "session-janitor",
	}
}

// Serve implements suture.Service. It ticks until the context is canceled.
func (j *JanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if reaped := j.reaper.ReapIdle(ctx); reaped > 0 {
				logging.Info().
					Int("reaped", reaped).
					Msg("reaped idle sessions")
			}
		}
	}
}

// String identifies the service in supervisor logs.
func (j *JanitorService) String() string {
	return j.name
}
