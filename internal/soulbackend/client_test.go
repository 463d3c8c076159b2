// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package soulbackend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/gamesoul/gamesoul/internal/models"
)

func TestClientSubmit(t *testing.T) {
	var gotBody submitRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		checkStringEqual(t, "method", r.Method, http.MethodPost)
		checkStringEqual(t, "path", r.URL.Path, "/api/questionnaire")
		checkStringEqual(t, "content-type", r.Header.Get("Content-Type"), "application/json")

		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SubmissionResult{
			Status:  "success",
			Message: "Recomendaciones generadas",
			Recommendations: []models.Recommendation{
				{ID: "game-1", Name: "Celeste", MatchScore: 0.92, Reasons: []string{"Desafiante"}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	answers := models.AnswerSet{"estado_animo": "estresado"}
	result, err := client.Submit(context.Background(), "ana_123", "Ana", answers)
	checkNoError(t, err)

	checkStringEqual(t, "request user_id", gotBody.UserID, "ana_123")
	checkStringEqual(t, "request user_name", gotBody.UserName, "Ana")
	checkStringEqual(t, "request answer", gotBody.Answers["estado_animo"], "estresado")

	checkStringEqual(t, "status", result.Status, "success")
	checkSliceLen(t, "recommendations", len(result.Recommendations), 1)
	checkStringEqual(t, "recommendation name", result.Recommendations[0].Name, "Celeste")
	checkFloat64Equal(t, "match score", result.Recommendations[0].MatchScore, 0.92)
}

func TestClientSubmitServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	_, err := client.Submit(context.Background(), "ana_123", "Ana", models.AnswerSet{})
	checkError(t, err)

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransportError, got %T", err)
	}
	if te.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want %d", te.StatusCode, http.StatusInternalServerError)
	}
	checkTrue(t, "IsNetworkError false for HTTP failure", !IsNetworkError(err))
}

func TestClientSubmitInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("{not valid json"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	_, err := client.Submit(context.Background(), "ana_123", "Ana", models.AnswerSet{})
	checkError(t, err)

	var me *MalformedResponseError
	if !errors.As(err, &me) {
		t.Fatalf("expected *MalformedResponseError, got %T", err)
	}
}

func TestClientSubmitConnectionRefused(t *testing.T) {
	// Start then immediately close: the port is valid but nothing listens.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second)

	_, err := client.Submit(context.Background(), "ana_123", "Ana", models.AnswerSet{})
	checkError(t, err)
	checkTrue(t, "IsNetworkError for connection failure", IsNetworkError(err))
}

func TestClientSubmitContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	client := NewClient(server.URL, 10*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Submit(ctx, "ana_123", "Ana", models.AnswerSet{})
	checkError(t, err)
}

func TestClientSocialRecommendations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		checkStringEqual(t, "method", r.Method, http.MethodGet)
		checkStringEqual(t, "path", r.URL.Path, "/api/recommendations/social/ana_123")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Recommendation{
			{ID: "game-2", Name: "Journey", MatchScore: 0.6, Reasons: []string{"Popular en la comunidad"}},
			{ID: "game-3", Name: "Unravel", MatchScore: 0.5},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	recs, err := client.SocialRecommendations(context.Background(), "ana_123")
	checkNoError(t, err)
	checkSliceLen(t, "recommendations", len(recs), 2)
	checkStringEqual(t, "first name", recs[0].Name, "Journey")
}

func TestClientSocialRecommendationsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	recs, err := client.SocialRecommendations(context.Background(), "ana_123")
	checkNoError(t, err)
	checkSliceLen(t, "recommendations", len(recs), 0)
}

func TestClientMixedRecommendations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		checkStringEqual(t, "path", r.URL.Path, "/api/recommendations/mixed/ana_123")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]models.Recommendation{
			{ID: "game-4", Name: "Hades", MatchScore: 0.88},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	recs, err := client.MixedRecommendations(context.Background(), "ana_123")
	checkNoError(t, err)
	checkSliceLen(t, "recommendations", len(recs), 1)
}

func TestClientSendFeedback(t *testing.T) {
	var gotBody feedbackRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		checkStringEqual(t, "method", r.Method, http.MethodPost)
		checkStringEqual(t, "path", r.URL.Path, "/api/feedback")

		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	err := client.SendFeedback(context.Background(), "ana_123", "game-1", true, 4)
	checkNoError(t, err)

	checkStringEqual(t, "request userId", gotBody.UserID, "ana_123")
	checkStringEqual(t, "request gameId", gotBody.GameID, "game-1")
	checkTrue(t, "request liked", gotBody.Liked)
	if gotBody.Rating != 4 {
		t.Errorf("rating = %d, want 4", gotBody.Rating)
	}
}

func TestClientSendFeedbackServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	err := client.SendFeedback(context.Background(), "ana_123", "game-1", false, 2)
	checkError(t, err)
	checkErrorContains(t, err, "/api/feedback")
}
