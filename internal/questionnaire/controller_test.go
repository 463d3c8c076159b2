// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package questionnaire

import (
	"errors"
	"testing"
)

func TestCatalogShape(t *testing.T) {
	questions := Catalog()

	if len(questions) != 5 {
		t.Fatalf("catalog length = %d, want 5", len(questions))
	}

	wantIDs := []string{
		"tipo_experiencia",
		"estado_animo",
		"actividad_preferida",
		"tiempo_disponible",
		"meta_emocional",
	}
	for i, id := range wantIDs {
		if questions[i].ID != id {
			t.Errorf("question %d ID = %q, want %q", i, questions[i].ID, id)
		}
		if questions[i].Prompt == "" {
			t.Errorf("question %q has no prompt", id)
		}
		if len(questions[i].Options) < 3 {
			t.Errorf("question %q has %d options, want at least 3", id, len(questions[i].Options))
		}
	}
}

func TestCatalogOptionsAreComplete(t *testing.T) {
	for _, q := range Catalog() {
		seen := map[string]bool{}
		for _, opt := range q.Options {
			if opt.Value == "" || opt.Label == "" {
				t.Errorf("question %q has an option missing value or label: %+v", q.ID, opt)
			}
			if seen[opt.Value] {
				t.Errorf("question %q has duplicate option value %q", q.ID, opt.Value)
			}
			seen[opt.Value] = true
		}
	}
}

func TestControllerWalksAllQuestions(t *testing.T) {
	c := NewController()

	answers := map[string]string{
		"tipo_experiencia":    "relajante",
		"estado_animo":        "estresado",
		"actividad_preferida": "construir",
		"tiempo_disponible":   "medio",
		"meta_emocional":      "calma",
	}

	for i := 0; i < Count(); i++ {
		q := c.Current()
		if err := c.Answer(q.ID, answers[q.ID]); err != nil {
			t.Fatalf("answer %q: %v", q.ID, err)
		}

		advanced := c.Advance()
		if i < Count()-1 && !advanced {
			t.Fatalf("Advance() = false at question %d", i)
		}
		if i == Count()-1 && advanced {
			t.Fatal("Advance() = true on the last question")
		}
	}

	if !c.Complete() {
		t.Error("Complete() = false after answering everything")
	}

	got := c.Answers()
	for id, value := range answers {
		if got[id] != value {
			t.Errorf("answer %q = %q, want %q", id, got[id], value)
		}
	}
}

func TestControllerRejectsOutOfTurnAnswer(t *testing.T) {
	c := NewController()

	err := c.Answer("estado_animo", "tranquilo")
	if !errors.Is(err, ErrQuestionOutOfTurn) {
		t.Fatalf("err = %v, want ErrQuestionOutOfTurn", err)
	}
}

func TestControllerRejectsUnknownOption(t *testing.T) {
	c := NewController()

	err := c.Answer("tipo_experiencia", "no_such_option")
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("err = %v, want ErrUnknownOption", err)
	}
	if len(c.Answers()) != 0 {
		t.Error("rejected answer was recorded")
	}
}

func TestControllerBackNavigationEdits(t *testing.T) {
	c := NewController()

	if err := c.Answer("tipo_experiencia", "relajante"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	c.Advance()

	// First question: Back signals exit only at index 0.
	if !c.Back() {
		t.Fatal("Back() = false mid-questionnaire")
	}
	if c.Index() != 0 {
		t.Fatalf("index = %d after back, want 0", c.Index())
	}
	if c.Back() {
		t.Error("Back() = true at the first question")
	}

	// Revising keeps the latest answer.
	if err := c.Answer("tipo_experiencia", "desafio"); err != nil {
		t.Fatalf("revised answer: %v", err)
	}
	if got := c.Answers()["tipo_experiencia"]; got != "desafio" {
		t.Errorf("revised answer = %q, want %q", got, "desafio")
	}
}

func TestControllerReset(t *testing.T) {
	c := NewController()
	_ = c.Answer("tipo_experiencia", "relajante")
	c.Advance()

	c.Reset()

	if c.Index() != 0 {
		t.Errorf("index = %d after reset, want 0", c.Index())
	}
	if len(c.Answers()) != 0 {
		t.Errorf("answers not cleared: %v", c.Answers())
	}
	if c.Complete() {
		t.Error("Complete() = true after reset")
	}
}
