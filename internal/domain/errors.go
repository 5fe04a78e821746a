package domain

import "errors"

// Sentinel errors for cross-provider error classification.
// Provider clients wrap these so the CLI can handle error categories
// uniformly without inspecting provider-specific payloads.
//
//	return fmt.Errorf("failed to look up zone: %w", domain.ErrNotFound)
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request was rejected due to
	// invalid, expired, or missing credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates the provider throttled the request.
	ErrRateLimited = errors.New("rate limited")

	// ErrAborted indicates the user cancelled an interactive prompt.
	ErrAborted = errors.New("aborted by user")

	// ErrNoSelection indicates a required choice was left empty, either
	// because the user dismissed a prompt or because filtering produced
	// no eligible options.
	ErrNoSelection = errors.New("no selection made")
)
