package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors represent business failures, distinct from infrastructure
// errors. The sync engine reports most of them as result-level error strings
// rather than letting them escape.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSourceNotConnected indicates the owning user has no note-source
	// credentials stored.
	ErrSourceNotConnected = errors.New("note source not connected")

	// ErrNotebookNotConfigured indicates the blog is not mapped to a notebook.
	ErrNotebookNotConfigured = errors.New("no notebook configured")

	// ErrAuthRejected indicates the note source refused the stored credentials.
	ErrAuthRejected = errors.New("note source rejected credentials")

	// ErrRateLimited indicates the note source is throttling the account.
	ErrRateLimited = errors.New("note source rate limited")

	// ErrSyncInProgress indicates another pass for the same blog is running.
	ErrSyncInProgress = errors.New("sync already in progress")
)

// RateLimitError carries the cooldown the source asked for. It matches
// ErrRateLimited under errors.Is so callers can branch without unwrapping.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("note source rate limited, retry in %s", e.RetryAfter.Round(time.Second))
}

func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}
