package domain

import (
	"time"

	"github.com/google/uuid"
)

// Blog maps one source notebook to one publication. The three sync-state
// fields are written only by the sync engine: LastSyncedAt and
// LastSyncUpdateCount advance on fully successful passes, LastSyncAttemptAt
// marks a failed pass and is cleared again on success.
type Blog struct {
	ID                  uuid.UUID  `db:"id"`
	UserID              string     `db:"user_id"`
	Title               string     `db:"title"`
	Slug                string     `db:"slug"`
	ExternalNotebookID  *string    `db:"external_notebook_id"`
	LastSyncedAt        *time.Time `db:"last_synced_at"`
	LastSyncAttemptAt   *time.Time `db:"last_sync_attempt_at"`
	LastSyncUpdateCount *int       `db:"last_sync_update_count"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}
