package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alexy/fromcafe-sub000/internal/converter"
	"github.com/alexy/fromcafe-sub000/internal/domain"
)

// NoteSource is a note-source client bound to one user's credentials.
type NoteSource interface {
	GetSyncState(ctx context.Context) (domain.SourceSyncState, error)
	ListNotebookNotes(ctx context.Context, notebookID string, maxCount int, modifiedSince *time.Time) ([]domain.Note, error)
	ListNotebookNoteIDs(ctx context.Context, notebookID string) ([]string, error)
	GetResourceData(ctx context.Context, resourceID string) ([]byte, error)
}

// SourceFactory mints a NoteSource for one user's access token.
type SourceFactory func(token string) NoteSource

// NoteConverter renders a note's markup into sanitized HTML plus an excerpt,
// persisting embedded images for the post on the way.
type NoteConverter interface {
	Convert(ctx context.Context, note domain.Note, postID uuid.UUID, fetch converter.ResourceFetcher) (converter.Result, error)
}

type PostStore interface {
	FindByExternalIDs(ctx context.Context, blogID uuid.UUID, externalIDs []string) (map[string]domain.Post, error)
	Create(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	ListPublished(ctx context.Context, blogID uuid.UUID) ([]domain.Post, error)
	Count(ctx context.Context, blogID uuid.UUID, published bool) (int, error)
}

type BlogStore interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Blog, error)
	ListSyncableByUser(ctx context.Context, userID string) ([]domain.Blog, error)
	MarkSyncAttempt(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkSyncSuccess(ctx context.Context, id uuid.UUID, at time.Time, updateCount *int) error
	ClearSyncBaseline(ctx context.Context, id uuid.UUID) error
}

type UserStore interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	ListConnected(ctx context.Context) ([]domain.User, error)
}

// ImageStore is the unpublish sweep's cleanup hook into stored post media.
// Deletion is best-effort and logs its own failures.
type ImageStore interface {
	DeletePostImages(ctx context.Context, postID uuid.UUID)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	PublishPostEvent(ctx context.Context, action domain.PostEventAction, post *domain.Post) error
	Close() error
}
