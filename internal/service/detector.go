package service

import (
	"time"

	"github.com/alexy/fromcafe-sub000/internal/domain"
)

// SyncMode is what a pass will do before touching any posts.
type SyncMode int

const (
	// SyncModeSkip means the account counter shows nothing changed since
	// the last successful pass; only the sync timestamps are refreshed.
	SyncModeSkip SyncMode = iota
	// SyncModeIncremental fetches only notes modified since the last
	// successful pass.
	SyncModeIncremental
	// SyncModeFull fetches the whole notebook.
	SyncModeFull
)

func (m SyncMode) String() string {
	switch m {
	case SyncModeSkip:
		return "skip"
	case SyncModeIncremental:
		return "incremental"
	case SyncModeFull:
		return "full"
	default:
		return "unknown"
	}
}

// SyncDecision is the detector's verdict for one pass.
type SyncDecision struct {
	Mode          SyncMode
	ModifiedSince *time.Time // set for incremental passes
	ClearBaseline bool       // a stale counter baseline must be dropped before the pass
}

// DecideSyncMode picks the pass mode from the blog's persisted sync state
// and the account change counter the source just reported.
//
// The counter is account-wide, so Skip is a conservative optimization only:
// an unchanged counter proves the notebook is unchanged, while a bumped
// counter may mean an unrelated notebook moved and the fetch finds nothing.
// An unknown counter never skips and never becomes a baseline.
func DecideSyncMode(blog domain.Blog, currentCount int) SyncDecision {
	if blog.LastSyncedAt == nil {
		// First pass, or every previous attempt failed. A baseline without
		// a success timestamp was never confirmed and cannot be trusted.
		return SyncDecision{
			Mode:          SyncModeFull,
			ClearBaseline: blog.LastSyncUpdateCount != nil,
		}
	}

	if blog.LastSyncUpdateCount != nil &&
		currentCount != domain.UpdateCountUnknown &&
		currentCount <= *blog.LastSyncUpdateCount {
		return SyncDecision{Mode: SyncModeSkip}
	}

	return SyncDecision{
		Mode:          SyncModeIncremental,
		ModifiedSince: blog.LastSyncedAt,
	}
}
