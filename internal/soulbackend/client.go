// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

// Package soulbackend implements the REST client for the GameSoul
// recommendation backend: questionnaire submission, the two social
// recommendation endpoints, and feedback delivery. A circuit breaker wrapper
// and the deterministic submission fallback live alongside the raw client.
package soulbackend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/gamesoul/gamesoul/internal/models"
)

// ClientInterface defines the backend operations the service consumes.
// Both Client and CircuitBreakerClient implement this interface.
type ClientInterface interface {
	Submit(ctx context.Context, userID, userName string, answers models.AnswerSet) (*models.SubmissionResult, error)
	SocialRecommendations(ctx context.Context, userID string) ([]models.Recommendation, error)
	MixedRecommendations(ctx context.Context, userID string) ([]models.Recommendation, error)
	SendFeedback(ctx context.Context, userID, gameID string, liked bool, rating int) error
}

// Ensure Client implements ClientInterface
var _ ClientInterface = (*Client)(nil)

// Client provides access to the recommendation backend REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new backend API client.
//
// Parameters:
//   - baseURL: backend base URL (e.g., http://localhost:8080)
//   - timeout: per-request timeout
func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// submitRequest is the wire body for POST /api/questionnaire.
type submitRequest struct {
	UserID   string           `json:"user_id"`
	UserName string           `json:"user_name"`
	Answers  models.AnswerSet `json:"answers"`
}

// feedbackRequest is the wire body for POST /api/feedback.
type feedbackRequest struct {
	UserID string `json:"userId"`
	GameID string `json:"gameId"`
	Liked  bool   `json:"liked"`
	Rating int    `json:"rating"`
}

// Submit sends a completed answer set to the backend and returns its
// recommendation list verbatim. Callers that need the fail-open behavior use
// SubmitWithFallback instead.
func (c *Client) Submit(ctx context.Context, userID, userName string, answers models.AnswerSet) (*models.SubmissionResult, error) {
	const endpoint = "/api/questionnaire"

	body, err := json.Marshal(submitRequest{
		UserID:   userID,
		UserName: userName,
		Answers:  answers,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}

	resp, err := c.post(ctx, endpoint, body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !is2xx(resp.StatusCode) {
		drainBody(resp.Body)
		return nil, &TransportError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	var result models.SubmissionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &MalformedResponseError{Endpoint: endpoint, Err: err}
	}

	return &result, nil
}

// SocialRecommendations fetches the direct social recommendation list for
// userID. An empty list is a valid result, not an error.
func (c *Client) SocialRecommendations(ctx context.Context, userID string) ([]models.Recommendation, error) {
	return c.getRecommendations(ctx, "/api/recommendations/social/"+userID)
}

// MixedRecommendations fetches the mixed recommendation list for userID.
func (c *Client) MixedRecommendations(ctx context.Context, userID string) ([]models.Recommendation, error) {
	return c.getRecommendations(ctx, "/api/recommendations/mixed/"+userID)
}

// SendFeedback posts a like/dislike signal with its numeric rating.
// The response body is optional; only the status matters.
func (c *Client) SendFeedback(ctx context.Context, userID, gameID string, liked bool, rating int) error {
	const endpoint = "/api/feedback"

	body, err := json.Marshal(feedbackRequest{
		UserID: userID,
		GameID: gameID,
		Liked:  liked,
		Rating: rating,
	})
	if err != nil {
		return fmt.Errorf("failed to encode feedback: %w", err)
	}

	resp, err := c.post(ctx, endpoint, body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	drainBody(resp.Body)

	if !is2xx(resp.StatusCode) {
		return &TransportError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	return nil
}

// getRecommendations fetches and decodes a recommendation list endpoint.
func (c *Client) getRecommendations(ctx context.Context, endpoint string) ([]models.Recommendation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if !is2xx(resp.StatusCode) {
		drainBody(resp.Body)
		return nil, &TransportError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	var recs []models.Recommendation
	if err := json.NewDecoder(resp.Body).Decode(&recs); err != nil {
		return nil, &MalformedResponseError{Endpoint: endpoint, Err: err}
	}

	return recs, nil
}

// post issues a JSON POST to the given endpoint.
func (c *Client) post(ctx context.Context, endpoint string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	return resp, nil
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}

// drainBody consumes the remaining body so the connection can be reused.
func drainBody(body io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(body, 64<<10))
}
