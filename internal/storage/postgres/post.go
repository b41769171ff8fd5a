package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/alexy/fromcafe-sub000/internal/domain"
)

const (
	uniqueViolation = "23505"
	blogSlugKey     = "posts_blog_slug_key"
	maxSlugAttempts = 50
)

type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `
	id, blog_id, external_note_id, title, content, excerpt, slug,
	is_published, published_at, created_at, updated_at`

// FindByExternalIDs returns the blog's posts backed by the given note IDs,
// keyed by note ID.
func (s *PostStore) FindByExternalIDs(ctx context.Context, blogID uuid.UUID, externalIDs []string) (map[string]domain.Post, error) {
	result := make(map[string]domain.Post, len(externalIDs))
	if len(externalIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE blog_id = $1 AND external_note_id = ANY($2)`

	var posts []domain.Post
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &posts, query, blogID, pq.Array(externalIDs))
	if err != nil {
		return nil, err
	}

	for _, p := range posts {
		result[*p.ExternalNoteID] = p
	}
	return result, nil
}

// Create inserts the post. The caller provides a base slug; when it is
// already taken within the blog a numeric suffix is appended until the
// insert goes through.
func (s *PostStore) Create(ctx context.Context, post *domain.Post) error {
	base := post.Slug
	for attempt := 1; ; attempt++ {
		err := s.insert(ctx, post)
		if err == nil {
			return nil
		}

		var pqErr *pq.Error
		if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation || pqErr.Constraint != blogSlugKey {
			return err
		}
		if attempt >= maxSlugAttempts {
			return fmt.Errorf("allocate slug for %q: %w", base, err)
		}
		post.Slug = fmt.Sprintf("%s-%d", base, attempt+1)
	}
}

func (s *PostStore) insert(ctx context.Context, post *domain.Post) error {
	query := `
		INSERT INTO posts (
			id, blog_id, external_note_id, title, content, excerpt, slug,
			is_published, published_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	return GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		post.ID,
		post.BlogID,
		post.ExternalNoteID,
		post.Title,
		post.Content,
		post.Excerpt,
		post.Slug,
		post.IsPublished,
		post.PublishedAt,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
}

// Update writes the sync-owned fields of an existing post as one mutation.
func (s *PostStore) Update(ctx context.Context, post *domain.Post) error {
	query := `
		UPDATE posts SET
			title = $2,
			content = $3,
			excerpt = $4,
			is_published = $5,
			published_at = $6,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		post.ID,
		post.Title,
		post.Content,
		post.Excerpt,
		post.IsPublished,
		post.PublishedAt,
	).Scan(&post.UpdatedAt)

	if err == sql.ErrNoRows {
		return domain.ErrNotFound
	}
	return err
}

func (s *PostStore) ListPublished(ctx context.Context, blogID uuid.UUID) ([]domain.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts
		WHERE blog_id = $1 AND is_published = TRUE
		ORDER BY published_at DESC`

	var posts []domain.Post
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &posts, query, blogID)
	return posts, err
}

func (s *PostStore) Count(ctx context.Context, blogID uuid.UUID, published bool) (int, error) {
	var n int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &n,
		`SELECT COUNT(*) FROM posts WHERE blog_id = $1 AND is_published = $2`,
		blogID, published)
	return n, err
}
