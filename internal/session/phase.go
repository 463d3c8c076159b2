// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package session

import "fmt"

// Phase is a wizard phase. A session moves Landing → Register →
// Questionnaire → Results, with back-navigation and reset edges.
type Phase int

const (
	PhaseLanding Phase = iota
	PhaseRegister
	PhaseQuestionnaire
	PhaseResults
)

// String returns the phase label used in logs, metrics and API payloads.
func (p Phase) String() string {
	switch p {
	case PhaseLanding:
		return "landing"
	case PhaseRegister:
		return "register"
	case PhaseQuestionnaire:
		return "questionnaire"
	case PhaseResults:
		return "results"
	default:
		return "unknown"
	}
}

// MarshalText renders the phase label into JSON payloads.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a phase label. Unknown labels are rejected so a
// mistyped phase never silently maps to Landing.
func (p *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "landing":
		*p = PhaseLanding
	case "register":
		*p = PhaseRegister
	case "questionnaire":
		*p = PhaseQuestionnaire
	case "results":
		*p = PhaseResults
	default:
		return fmt.Errorf("unknown phase %q", text)
	}
	return nil
}
