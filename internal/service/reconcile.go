package service

import (
	"time"

	"github.com/alexy/fromcafe-sub000/internal/domain"
)

// NoteAction is the outcome of comparing one fetched note against its
// persisted post. The caller issues persistence mutations based on the
// action; classification itself touches nothing.
type NoteAction int

const (
	// ActionNone means the post (or its absence) already matches the note.
	// Required for idempotence: a second pass over unchanged notes must
	// issue no writes.
	ActionNone NoteAction = iota

	// ActionCreate means no post exists and the note carries the publish
	// tag. Untagged notes never create posts.
	ActionCreate

	// ActionContentUpdate means the post stays published but its title,
	// content, excerpt or publish date moved.
	ActionContentUpdate

	// ActionRepublish means an unpublished post regains the publish tag
	// with content unchanged.
	ActionRepublish

	// ActionRepublishUpdate means an unpublished post regains the publish
	// tag and its content changed while it was down.
	ActionRepublishUpdate

	// ActionUnpublish means the post is published but the note lost the
	// publish tag.
	ActionUnpublish
)

func (a NoteAction) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionCreate:
		return "create"
	case ActionContentUpdate:
		return "content_update"
	case ActionRepublish:
		return "republish"
	case ActionRepublishUpdate:
		return "republish_update"
	case ActionUnpublish:
		return "unpublish"
	default:
		return "unknown"
	}
}

// NoteUpdate is the converted, comparable form of a fetched note. Content
// and Excerpt hold converter output, not raw markup, and are only populated
// when Published is true.
type NoteUpdate struct {
	NoteID      string
	Title       string
	Content     string
	Excerpt     string
	Published   bool
	PublishedAt *time.Time // explicit publish date from note metadata, when set
	CreatedAt   time.Time
}

// TargetPublishedAt resolves the publish timestamp a post should carry after
// applying the note. An explicit date on the note always wins; otherwise an
// existing timestamp is preserved, so unpublish/republish round trips keep
// the original publish time; a first publish falls back to the note's
// creation time.
func TargetPublishedAt(existing *domain.Post, in NoteUpdate) *time.Time {
	if in.PublishedAt != nil {
		return in.PublishedAt
	}
	if existing != nil && existing.PublishedAt != nil {
		return existing.PublishedAt
	}
	if in.Published {
		t := in.CreatedAt
		return &t
	}
	return nil
}

// ClassifyNote is a pure decision function with no I/O. existing is nil when
// no post is backed by this note yet.
//
// The stored post's UpdatedAt never participates: it reflects internal write
// time, not source changes, and comparing it would break idempotence.
func ClassifyNote(existing *domain.Post, in NoteUpdate) NoteAction {
	if existing == nil {
		if in.Published {
			return ActionCreate
		}
		return ActionNone
	}

	if !in.Published {
		if existing.IsPublished {
			return ActionUnpublish
		}
		// Drafts are left alone; their content is reconciled if and when
		// the publish tag comes back.
		return ActionNone
	}

	contentChanged := existing.Title != in.Title ||
		existing.Content != in.Content ||
		excerptChanged(existing.Excerpt, in.Excerpt)

	target := TargetPublishedAt(existing, in)
	publicationChanged := !existing.IsPublished || !timePtrEqual(existing.PublishedAt, target)

	if !contentChanged && !publicationChanged {
		return ActionNone
	}

	if !existing.IsPublished {
		if contentChanged {
			return ActionRepublishUpdate
		}
		return ActionRepublish
	}
	return ActionContentUpdate
}

func excerptChanged(stored *string, in string) bool {
	if stored == nil {
		return in != ""
	}
	return *stored != in
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
