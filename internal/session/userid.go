// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package session

import (
	"strconv"
	"strings"
	"time"
)

// DeriveUserID builds the backend user ID from a display name: lower-cased,
// whitespace runs collapsed to underscores, suffixed with the submission
// timestamp in Unix milliseconds. The ID is unique per session, not stable
// across sessions for the same name; it is derived once at submission time
// and reused for every social and feedback call of that session.
func DeriveUserID(userName string, at time.Time) string {
	slug := strings.Join(strings.Fields(strings.ToLower(userName)), "_")
	return slug + "_" + strconv.FormatInt(at.UnixMilli(), 10)
}
