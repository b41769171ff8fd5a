package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a blog entry. Posts backed by a note carry its ExternalNoteID;
// posts authored directly in the editor have none and are never touched by
// sync. Sync never deletes a post, it only flips IsPublished.
type Post struct {
	ID             uuid.UUID  `db:"id"`
	BlogID         uuid.UUID  `db:"blog_id"`
	ExternalNoteID *string    `db:"external_note_id"`
	Title          string     `db:"title"`
	Content        string     `db:"content"`
	Excerpt        *string    `db:"excerpt"`
	Slug           string     `db:"slug"`
	IsPublished    bool       `db:"is_published"`
	PublishedAt    *time.Time `db:"published_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// PostEventAction identifies the kind of post change announced to consumers.
type PostEventAction string

const (
	PostEventCreated     PostEventAction = "post.created"
	PostEventUpdated     PostEventAction = "post.updated"
	PostEventUnpublished PostEventAction = "post.unpublished"
)
