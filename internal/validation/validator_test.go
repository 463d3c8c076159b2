// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package validation

import (
	"strings"
	"testing"
)

type registerForm struct {
	Name string `validate:"required,min=2,max=64"`
}

func TestValidateStructPasses(t *testing.T) {
	if err := ValidateStruct(&registerForm{Name: "Ana"}); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestValidateStructRequired(t *testing.T) {
	err := ValidateStruct(&registerForm{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Fields()) != 1 {
		t.Fatalf("fields = %d, want 1", len(err.Fields()))
	}
	if err.Fields()[0].Tag != "required" {
		t.Errorf("tag = %q, want required", err.Fields()[0].Tag)
	}
	if !strings.Contains(err.Error(), "required") {
		t.Errorf("message %q does not mention required", err.Error())
	}
}

func TestValidateStructMin(t *testing.T) {
	err := ValidateStruct(&registerForm{Name: "A"})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if err.Fields()[0].Tag != "min" {
		t.Errorf("tag = %q, want min", err.Fields()[0].Tag)
	}
	if !strings.Contains(err.Error(), "at least 2") {
		t.Errorf("message %q does not mention the minimum", err.Error())
	}
}

func TestValidateStructDetails(t *testing.T) {
	err := ValidateStruct(&registerForm{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	details := err.Details()
	if len(details) != 1 {
		t.Fatalf("details = %d, want 1", len(details))
	}
	if details[0]["field"] != "Name" {
		t.Errorf("detail field = %v, want Name", details[0]["field"])
	}
}
