// GameSoul - Emotional Game Recommendation Wizard
// Copyright 2026 GameSoul contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/gamesoul/gamesoul

package soulbackend

import (
	"errors"
	"fmt"
)

// TransportError reports a failed backend exchange: either the request never
// completed (StatusCode == 0) or the backend answered with a non-2xx status.
type TransportError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("backend %s returned status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("backend %s request failed: %v", e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MalformedResponseError reports a 2xx response whose body could not be
// decoded into the expected shape.
type MalformedResponseError struct {
	Endpoint string
	Err      error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("backend %s returned malformed body: %v", e.Endpoint, e.Err)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err is a transport failure where no HTTP
// response was received at all. The social cascade distinguishes this from a
// served non-2xx status: an unreachable backend short-circuits to the error
// tier, a refusing one falls through to the static tier.
func IsNetworkError(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.StatusCode == 0
}
