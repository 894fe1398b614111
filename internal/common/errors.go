// Package common defines shared constants and sentinel errors used across
// the Prism client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors are raised at the call site, before any network
	// request is made.
	ErrValidation = errors.New("validation error")

	// ErrSessionExpired means an authenticated request came back 401:
	// the access token is missing, invalid, or expired. The session manager
	// tears the session down on this error; there is no silent refresh.
	ErrSessionExpired = errors.New("session expired")

	// ErrForbidden means the caller is authenticated but lacks privilege
	// (non-admin on an admin endpoint, or a tier restriction).
	ErrForbidden = errors.New("forbidden")

	// ErrUnreachable means no response was received at all. Callers surface
	// this as "service offline" rather than an authentication problem.
	ErrUnreachable = errors.New("service unreachable")
)
