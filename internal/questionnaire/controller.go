// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package questionnaire

import (
	"errors"
	"fmt"

	"github.com/gamesoul/gamesoul/internal/models"
)

var (
	// ErrQuestionOutOfTurn is returned when an answer targets a question
	// other than the current one.
	ErrQuestionOutOfTurn = errors.New("answer does not target the current question")

	// ErrUnknownOption is returned when an answer value is not among the
	// current question's options.
	ErrUnknownOption = errors.New("unknown option for question")
)

// Controller walks a user through the catalog one question at a time.
// Answers may be revised after back-navigation; the latest answer for a
// question wins. Controller is not safe for concurrent use; the owning
// session serializes access.
type Controller struct {
	questions []models.Question
	index     int
	answers   models.AnswerSet
}

// NewController starts a fresh walk at the first question.
func NewController() *Controller {
	return &Controller{
		questions: Catalog(),
		answers:   models.AnswerSet{},
	}
}

// Current returns the question at the cursor.
func (c *Controller) Current() models.Question {
	return c.questions[c.index]
}

// Index returns the 0-based cursor position.
func (c *Controller) Index() int {
	return c.index
}

// IsLast reports whether the cursor is on the final question.
func (c *Controller) IsLast() bool {
	return c.index == len(c.questions)-1
}

// Answer records an option for the current question, overwriting any prior
// answer. The questionID must match the current question; the value must be
// one of its options.
func (c *Controller) Answer(questionID, value string) error {
	current := c.Current()
	if questionID != current.ID {
		return fmt.Errorf("%w: got %q, current is %q", ErrQuestionOutOfTurn, questionID, current.ID)
	}
	if !current.HasOption(value) {
		return fmt.Errorf("%w: %q is not an option of %q", ErrUnknownOption, value, questionID)
	}

	c.answers[questionID] = value
	return nil
}

// Advance moves the cursor to the next question. It reports false when the
// cursor is already on the last question; the caller submits instead.
func (c *Controller) Advance() bool {
	if c.IsLast() {
		return false
	}
	c.index++
	return true
}

// Back moves the cursor to the previous question, keeping recorded answers
// so they can be revised. It reports false at the first question, signalling
// the caller to leave the questionnaire phase entirely.
func (c *Controller) Back() bool {
	if c.index == 0 {
		return false
	}
	c.index--
	return true
}

// Complete reports whether every question has a recorded answer.
func (c *Controller) Complete() bool {
	for _, q := range c.questions {
		if _, ok := c.answers[q.ID]; !ok {
			return false
		}
	}
	return true
}

// Answers returns a copy of the recorded answers.
func (c *Controller) Answers() models.AnswerSet {
	return c.answers.Clone()
}

// Reset returns the controller to the first question with no answers.
func (c *Controller) Reset() {
	c.index = 0
	c.answers = models.AnswerSet{}
}
