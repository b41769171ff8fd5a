package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/alexy/fromcafe-sub000/internal/domain"
)

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Get(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	query := `
		SELECT id, email, evernote_token, created_at, updated_at
		FROM users
		WHERE id = $1`

	err := s.db.GetContext(ctx, &user, query, id)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListConnected returns users that have note-source credentials stored.
func (s *UserStore) ListConnected(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, email, evernote_token, created_at, updated_at
		FROM users
		WHERE evernote_token IS NOT NULL AND evernote_token <> ''
		ORDER BY created_at`

	var users []domain.User
	err := s.db.SelectContext(ctx, &users, query)
	return users, err
}
