// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

// Package models defines the domain types shared across the GameSoul service:
// questions and answers, scored recommendations, submission results, and
// feedback outcomes. The JSON tags mirror the recommendation backend's wire
// format (matchScore is intentionally camelCase).
package models

// Option is one selectable choice for a question.
type Option struct {
	// Value is the token the recommendation backend matches on.
	Value string `json:"value"`

	// Label is the display text for the option.
	Label string `json:"label"`

	// Description is a short elaboration shown under the label.
	Description string `json:"description,omitempty"`

	// Emoji is the decorative glyph shown next to the label.
	Emoji string `json:"emoji,omitempty"`
}

// Question is one immutable entry of the fixed questionnaire catalog.
type Question struct {
	// ID is the stable question identifier the backend keys answers on.
	ID string `json:"id"`

	// Prompt is the question text.
	Prompt string `json:"prompt"`

	// Options are the selectable choices, in display order.
	Options []Option `json:"options"`
}

// HasOption reports whether value is a valid option for the question.
func (q Question) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

// AnswerSet maps question IDs to the selected option value. Keys are unique;
// question order is defined by the catalog, not the map.
type AnswerSet map[string]string

// Clone returns an independent copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	if a == nil {
		return nil
	}
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Recommendation is a scored candidate game with supporting reasons.
// Produced by the backend or by a fallback generator; never mutated, only
// replaced as a whole list.
type Recommendation struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	MatchScore  float64  `json:"matchScore"`
	Reasons     []string `json:"reasons"`
}

// SubmissionResult is the normalized outcome of a questionnaire submission:
// either the backend's recommendation list, or the deterministic fallback
// tagged with a backend-unavailable status.
type SubmissionResult struct {
	Status          string           `json:"status,omitempty"`
	Message         string           `json:"message,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
}

// FeedbackOutcome records a successfully delivered like/dislike signal.
// Failed sends produce no outcome.
type FeedbackOutcome struct {
	Liked   bool   `json:"liked"`
	Message string `json:"message"`
}

// QuestionnaireResult is the accumulated state of one completed questionnaire:
// the submitted answers plus every recommendation set produced for it.
// Recommendations is set once at submission; SocialRecommendations may be
// replaced multiple times during the results phase (last write wins); Feedback
// grows monotonically, one entry per game ID.
type QuestionnaireResult struct {
	UserName              string                     `json:"user_name"`
	UserID                string                     `json:"user_id"`
	Answers               AnswerSet                  `json:"answers"`
	Status                string                     `json:"status,omitempty"`
	Message               string                     `json:"message,omitempty"`
	Recommendations       []Recommendation           `json:"recommendations"`
	SocialRecommendations []Recommendation           `json:"social_recommendations"`
	Feedback              map[string]FeedbackOutcome `json:"feedback"`
}

// Clone returns a copy that shares no mutable containers with the original.
// Recommendation values are copied by value; they are never mutated in place.
func (r *QuestionnaireResult) Clone() *QuestionnaireResult {
	if r == nil {
		return nil
	}

	out := *r
	out.Answers = r.Answers.Clone()
	out.Recommendations = append([]Recommendation(nil), r.Recommendations...)
	out.SocialRecommendations = append([]Recommendation(nil), r.SocialRecommendations...)

	if r.Feedback != nil {
		out.Feedback = make(map[string]FeedbackOutcome, len(r.Feedback))
		for k, v := range r.Feedback {
			out.Feedback[k] = v
		}
	}

	return &out
}
