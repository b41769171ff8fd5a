package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexy/fromcafe-sub000/internal/domain"
)

// Syncer defines the interface for sync operations.
type Syncer interface {
	SyncUser(ctx context.Context, userID string) domain.UserSyncResult
}

// UserLister supplies the users whose blogs get synced each tick.
type UserLister interface {
	ListConnected(ctx context.Context) ([]domain.User, error)
}

type Scheduler struct {
	syncer     Syncer
	users      UserLister
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(syncer Syncer, users UserLister, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:     syncer,
		users:      users,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	users, err := s.users.ListConnected(runCtx)
	if err != nil {
		s.logger.Error("failed to list connected users", "error", err)
		return
	}

	for _, user := range users {
		result := s.syncer.SyncUser(runCtx, user.ID)
		if !result.Success {
			s.logger.Warn("user sync completed with errors",
				"user_id", user.ID,
				"error", result.Error,
			)
			continue
		}
		s.logger.Info("user sync completed",
			"user_id", user.ID,
			"blogs", len(result.Results),
			"new", result.TotalNewPosts,
			"updated", result.TotalUpdatedPosts,
			"unpublished", result.TotalUnpublishedPosts,
		)
	}
}
