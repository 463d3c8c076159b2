// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package feedback

import (
	"context"
	"errors"
	"testing"

	"github.com/gamesoul/gamesoul/internal/models"
)

// feedbackClient records the last feedback call and returns a scripted error.
type feedbackClient struct {
	err        error
	lastUserID string
	lastGameID string
	lastLiked  bool
	lastRating int
}

func (c *feedbackClient) Submit(ctx context.Context, userID, userName string, answers models.AnswerSet) (*models.SubmissionResult, error) {
	return nil, errors.New("not implemented")
}

func (c *feedbackClient) SocialRecommendations(ctx context.Context, userID string) ([]models.Recommendation, error) {
	return nil, errors.New("not implemented")
}

func (c *feedbackClient) MixedRecommendations(ctx context.Context, userID string) ([]models.Recommendation, error) {
	return nil, errors.New("not implemented")
}

func (c *feedbackClient) SendFeedback(ctx context.Context, userID, gameID string, liked bool, rating int) error {
	c.lastUserID = userID
	c.lastGameID = gameID
	c.lastLiked = liked
	c.lastRating = rating
	return c.err
}

func TestRating(t *testing.T) {
	if got := Rating(true); got != 4 {
		t.Errorf("Rating(true) = %d, want 4", got)
	}
	if got := Rating(false); got != 2 {
		t.Errorf("Rating(false) = %d, want 2", got)
	}
}

func TestSendLike(t *testing.T) {
	client := &feedbackClient{}
	d := NewDispatcher(client)

	outcome, err := d.Send(context.Background(), "ana_123", "game-1", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.lastUserID != "ana_123" || client.lastGameID != "game-1" {
		t.Errorf("dispatched to %s/%s, want ana_123/game-1", client.lastUserID, client.lastGameID)
	}
	if !client.lastLiked || client.lastRating != 4 {
		t.Errorf("dispatched liked=%v rating=%d, want true/4", client.lastLiked, client.lastRating)
	}

	if !outcome.Liked {
		t.Error("outcome.Liked = false, want true")
	}
	if outcome.Message != likeMessage {
		t.Errorf("outcome.Message = %q, want %q", outcome.Message, likeMessage)
	}
}

func TestSendDislike(t *testing.T) {
	client := &feedbackClient{}
	d := NewDispatcher(client)

	outcome, err := d.Send(context.Background(), "ana_123", "game-1", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.lastLiked || client.lastRating != 2 {
		t.Errorf("dispatched liked=%v rating=%d, want false/2", client.lastLiked, client.lastRating)
	}
	if outcome.Liked {
		t.Error("outcome.Liked = true, want false")
	}
	if outcome.Message != dislikeMessage {
		t.Errorf("outcome.Message = %q, want %q", outcome.Message, dislikeMessage)
	}
}

func TestSendFailure(t *testing.T) {
	client := &feedbackClient{err: errors.New("backend down")}
	d := NewDispatcher(client)

	outcome, err := d.Send(context.Background(), "ana_123", "game-1", true)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if outcome != nil {
		t.Errorf("outcome = %+v, want nil on failure", outcome)
	}
}
