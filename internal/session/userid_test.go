// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package session

import (
	"testing"
	"time"
)

func TestDeriveUserID(t *testing.T) {
	at := time.UnixMilli(1700000000000)

	tests := []struct {
		name string
		want string
	}{
		{"Ana", "ana_1700000000000"},
		{"Ana María", "ana_maría_1700000000000"},
		{"  spaced   out  ", "spaced_out_1700000000000"},
		{"Tab\tand\nnewline", "tab_and_newline_1700000000000"},
		{"UPPER", "upper_1700000000000"},
	}

	for _, tt := range tests {
		if got := DeriveUserID(tt.name, at); got != tt.want {
			t.Errorf("DeriveUserID(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDeriveUserIDUniquePerTimestamp(t *testing.T) {
	a := DeriveUserID("Ana", time.UnixMilli(1))
	b := DeriveUserID("Ana", time.UnixMilli(2))
	if a == b {
		t.Errorf("IDs for different timestamps collide: %q", a)
	}
}
