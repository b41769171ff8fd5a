package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alexy/fromcafe-sub000/internal/domain"
)

type BlogStore struct {
	db *sqlx.DB
}

func NewBlogStore(db *sqlx.DB) *BlogStore {
	return &BlogStore{db: db}
}

const blogColumns = `
	id, user_id, title, slug, external_notebook_id, last_synced_at,
	last_sync_attempt_at, last_sync_update_count, created_at, updated_at`

func (s *BlogStore) Get(ctx context.Context, id uuid.UUID) (*domain.Blog, error) {
	var blog domain.Blog
	query := `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE id = $1`

	err := s.db.GetContext(ctx, &blog, query, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &blog, nil
}

// ListSyncableByUser returns the user's blogs that are mapped to a notebook,
// in creation order.
func (s *BlogStore) ListSyncableByUser(ctx context.Context, userID string) ([]domain.Blog, error) {
	query := `
		SELECT ` + blogColumns + `
		FROM blogs
		WHERE user_id = $1 AND external_notebook_id IS NOT NULL
		ORDER BY created_at`

	var blogs []domain.Blog
	err := s.db.SelectContext(ctx, &blogs, query, userID)
	return blogs, err
}

// MarkSyncAttempt records a failed pass. The success fields stay untouched so
// the next pass can detect the outstanding failure.
func (s *BlogStore) MarkSyncAttempt(ctx context.Context, id uuid.UUID, at time.Time) error {
	query := `
		UPDATE blogs SET
			last_sync_attempt_at = $2,
			updated_at = NOW()
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, at)
	return err
}

// MarkSyncSuccess records a fully successful pass: the success timestamp
// advances, any failed-attempt marker is cleared, and the change-counter
// baseline moves to updateCount. A nil updateCount leaves the stored
// baseline alone, for passes where the source reported an unknown counter.
func (s *BlogStore) MarkSyncSuccess(ctx context.Context, id uuid.UUID, at time.Time, updateCount *int) error {
	query := `
		UPDATE blogs SET
			last_synced_at = $2,
			last_sync_attempt_at = NULL,
			last_sync_update_count = COALESCE($3::int, last_sync_update_count),
			updated_at = NOW()
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id, at, updateCount)
	return err
}

// ClearSyncBaseline drops a change-counter baseline that was never confirmed
// by a successful pass.
func (s *BlogStore) ClearSyncBaseline(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE blogs SET
			last_sync_update_count = NULL,
			updated_at = NOW()
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, id)
	return err
}
