package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/alexy/fromcafe-sub000/internal/config"
	"github.com/alexy/fromcafe-sub000/internal/domain"
)

// SyncService reconciles notebooks against blogs. All failures short of
// programming errors are folded into the returned results so callers
// iterating many users and blogs always get a row per blog.
type SyncService struct {
	sourceFor SourceFactory
	converter NoteConverter
	posts     PostStore
	blogs     BlogStore
	users     UserStore
	images    ImageStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	config    config.SyncConfig

	mu     sync.Mutex
	active map[uuid.UUID]struct{}
}

func NewSyncService(
	sourceFor SourceFactory,
	conv NoteConverter,
	posts PostStore,
	blogs BlogStore,
	users UserStore,
	images ImageStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	cfg config.SyncConfig,
) *SyncService {
	return &SyncService{
		sourceFor: sourceFor,
		converter: conv,
		posts:     posts,
		blogs:     blogs,
		users:     users,
		images:    images,
		txManager: txManager,
		publisher: publisher,
		logger:    logger,
		config:    cfg,
		active:    make(map[uuid.UUID]struct{}),
	}
}

// SyncUser runs one pass over every blog of the user that is mapped to a
// notebook. Blogs go one at a time so a failure in one cannot eat the
// other blogs' results and the shared source rate limit is respected.
func (s *SyncService) SyncUser(ctx context.Context, userID string) domain.UserSyncResult {
	result := domain.UserSyncResult{Success: true, Results: []domain.SyncResult{}}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		result.Success = false
		result.Error = fmt.Sprintf("load user %s: %v", userID, err)
		return result
	}

	blogs, err := s.blogs.ListSyncableByUser(ctx, userID)
	if err != nil {
		result.Success = false
		result.Error = fmt.Sprintf("list blogs: %v", err)
		return result
	}

	s.logger.Info("starting user sync", "user_id", userID, "blogs", len(blogs))

	for _, blog := range blogs {
		result.Add(s.syncBlog(ctx, blog, *user))
	}

	return result
}

// SyncBlog runs one pass for a single blog, loading it and its owner first.
func (s *SyncService) SyncBlog(ctx context.Context, blogID uuid.UUID) domain.SyncResult {
	blog, err := s.blogs.Get(ctx, blogID)
	if err != nil {
		return domain.SyncResult{
			BlogID: blogID,
			Posts:  []domain.PostSyncDetail{},
			Error:  fmt.Sprintf("load blog: %v", err),
		}
	}

	user, err := s.users.Get(ctx, blog.UserID)
	if err != nil {
		return domain.SyncResult{
			BlogID:    blog.ID,
			BlogTitle: blog.Title,
			Posts:     []domain.PostSyncDetail{},
			Error:     fmt.Sprintf("load user: %v", err),
		}
	}

	return s.syncBlog(ctx, *blog, *user)
}

func (s *SyncService) syncBlog(ctx context.Context, blog domain.Blog, user domain.User) domain.SyncResult {
	result := domain.SyncResult{
		BlogID:    blog.ID,
		BlogTitle: blog.Title,
		Posts:     []domain.PostSyncDetail{},
	}

	if blog.ExternalNotebookID == nil {
		result.Error = domain.ErrNotebookNotConfigured.Error()
		return result
	}
	if !user.SourceConnected() {
		result.Error = domain.ErrSourceNotConnected.Error()
		return result
	}

	if !s.tryAcquire(blog.ID) {
		result.Error = domain.ErrSyncInProgress.Error()
		return result
	}
	defer s.release(blog.ID)

	logger := s.logger.With("blog_id", blog.ID, "blog_slug", blog.Slug)
	start := time.Now()

	if err := s.runPass(ctx, logger, blog, *user.EvernoteToken, &result); err != nil {
		// A failed pass never advances the success baseline; it only
		// leaves the attempt marker behind so the next pass goes full.
		if markErr := s.blogs.MarkSyncAttempt(ctx, blog.ID, time.Now().UTC()); markErr != nil {
			logger.Error("failed to record sync attempt", "error", markErr)
		}

		var rl *domain.RateLimitError
		if errors.As(err, &rl) {
			result.RateLimited = true
			result.Error = fmt.Sprintf("note source rate limited, try again in %s", rl.RetryAfter.Round(time.Second))
		} else {
			result.Error = err.Error()
		}

		logger.Warn("sync failed", "error", err, "duration", time.Since(start))
		return result
	}

	logger.Info("sync completed",
		"notes_found", result.NotesFound,
		"new", result.NewPosts,
		"updated", result.UpdatedPosts,
		"unpublished", result.UnpublishedPosts,
		"republished", result.RepublishedPosts,
		"republished_updated", result.RepublishedUpdatedPosts,
		"total_published", result.TotalPublishedPosts,
		"duration", time.Since(start),
	)
	return result
}

func (s *SyncService) runPass(ctx context.Context, logger *slog.Logger, blog domain.Blog, token string, result *domain.SyncResult) error {
	source := s.sourceFor(token)
	notebookID := *blog.ExternalNotebookID

	state, err := source.GetSyncState(ctx)
	if err != nil {
		return fmt.Errorf("get source sync state: %w", err)
	}

	decision := DecideSyncMode(blog, state.UpdateCount)
	logger.Info("sync mode decided",
		"mode", decision.Mode,
		"update_count", state.UpdateCount,
	)

	if decision.Mode == SyncModeSkip {
		total, err := s.posts.Count(ctx, blog.ID, true)
		if err != nil {
			return fmt.Errorf("count published posts: %w", err)
		}
		if err := s.blogs.MarkSyncSuccess(ctx, blog.ID, time.Now().UTC(), nil); err != nil {
			return fmt.Errorf("record skipped pass: %w", err)
		}
		result.TotalPublishedPosts = total
		result.Posts = append(result.Posts, domain.PostSyncDetail{Title: "No changes detected"})
		return nil
	}

	if decision.ClearBaseline {
		if err := s.blogs.ClearSyncBaseline(ctx, blog.ID); err != nil {
			return fmt.Errorf("clear stale sync baseline: %w", err)
		}
	}

	notes, err := source.ListNotebookNotes(ctx, notebookID, s.config.MaxNotesPerFetch, decision.ModifiedSince)
	if err != nil {
		return fmt.Errorf("fetch notes: %w", err)
	}
	result.NotesFound = len(notes)

	externalIDs := make([]string, len(notes))
	for i, n := range notes {
		externalIDs[i] = n.ID
	}

	existing, err := s.posts.FindByExternalIDs(ctx, blog.ID, externalIDs)
	if err != nil {
		return fmt.Errorf("load existing posts: %w", err)
	}

	for _, note := range notes {
		if err := s.processNote(ctx, logger, blog, source, note, existing, result); err != nil {
			return err
		}
	}

	// The sweep needs the complete current note-id set. A full fetch
	// already is one; an incremental fetch is a subset, so the cheap id
	// listing fills the gap. Sweeping against the subset alone would
	// unpublish posts whose notes simply were not modified.
	currentIDs := externalIDs
	if decision.Mode == SyncModeIncremental {
		currentIDs, err = source.ListNotebookNoteIDs(ctx, notebookID)
		if err != nil {
			return fmt.Errorf("list current note ids: %w", err)
		}
	}

	if err := s.sweepUnpublished(ctx, logger, blog, currentIDs, result); err != nil {
		return err
	}

	total, err := s.posts.Count(ctx, blog.ID, true)
	if err != nil {
		return fmt.Errorf("count published posts: %w", err)
	}
	result.TotalPublishedPosts = total

	// An unknown counter must not become the next baseline.
	var baseline *int
	if state.UpdateCount != domain.UpdateCountUnknown {
		baseline = &state.UpdateCount
	}

	// The post mutations above already happened and stand regardless, so a
	// failure on this final write is logged rather than failing the pass.
	if err := s.blogs.MarkSyncSuccess(ctx, blog.ID, time.Now().UTC(), baseline); err != nil {
		logger.Error("failed to record sync success", "error", err)
	}

	return nil
}

// processNote classifies one fetched note and applies the resulting
// mutation. Conversion and resource-fetch failures are contained: the note
// gets an error descriptor and the pass moves on. Persistence failures
// abort the pass.
func (s *SyncService) processNote(ctx context.Context, logger *slog.Logger, blog domain.Blog, source NoteSource, note domain.Note, existingPosts map[string]domain.Post, result *domain.SyncResult) error {
	var existing *domain.Post
	if p, ok := existingPosts[note.ID]; ok {
		existing = &p
	}

	postID := uuid.New()
	if existing != nil {
		postID = existing.ID
	}

	update := NoteUpdate{
		NoteID:      note.ID,
		Title:       note.Title,
		Published:   note.HasTag(s.config.PublishTag),
		PublishedAt: note.PublishedAt,
		CreatedAt:   note.CreatedAt,
	}

	// Untagged notes never need conversion: they either unpublish an
	// existing post or mean nothing, and converting would store images
	// for posts that are not going live.
	if update.Published {
		converted, err := s.converter.Convert(ctx, note, postID, source.GetResourceData)
		if err != nil {
			logger.Warn("note processing failed",
				"note_id", note.ID,
				"title", note.Title,
				"error", err,
			)
			result.Posts = append(result.Posts, domain.PostSyncDetail{Title: note.Title, Error: err.Error()})
			return nil
		}
		update.Content = converted.HTML
		update.Excerpt = converted.Excerpt
	}

	action := ClassifyNote(existing, update)
	return s.applyAction(ctx, logger, blog, action, existing, update, postID, result)
}

func (s *SyncService) applyAction(ctx context.Context, logger *slog.Logger, blog domain.Blog, action NoteAction, existing *domain.Post, update NoteUpdate, postID uuid.UUID, result *domain.SyncResult) error {
	if action == ActionNone {
		return nil
	}

	if action == ActionCreate {
		excerpt := update.Excerpt
		post := &domain.Post{
			ID:             postID,
			BlogID:         blog.ID,
			ExternalNoteID: &update.NoteID,
			Title:          update.Title,
			Content:        update.Content,
			Excerpt:        &excerpt,
			Slug:           makeSlug(update.Title),
			IsPublished:    true,
			PublishedAt:    TargetPublishedAt(nil, update),
		}

		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			return s.posts.Create(txCtx, post)
		})
		if err != nil {
			return fmt.Errorf("create post for note %s: %w", update.NoteID, err)
		}

		result.NewPosts++
		result.Posts = append(result.Posts, domain.PostSyncDetail{Title: post.Title, IsNew: true})
		s.publishEvent(ctx, logger, domain.PostEventCreated, post)
		logger.Debug("created post", "post_id", post.ID, "note_id", update.NoteID)
		return nil
	}

	// The remaining actions mutate the existing post.
	post := *existing
	if action == ActionUnpublish {
		// PublishedAt stays, so a later republish keeps the original date.
		post.IsPublished = false
	} else {
		excerpt := update.Excerpt
		post.Title = update.Title
		post.Content = update.Content
		post.Excerpt = &excerpt
		post.IsPublished = true
		post.PublishedAt = TargetPublishedAt(existing, update)
	}

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return s.posts.Update(txCtx, &post)
	})
	if err != nil {
		return fmt.Errorf("update post %s: %w", post.ID, err)
	}

	detail := domain.PostSyncDetail{Title: post.Title}
	switch action {
	case ActionContentUpdate:
		result.UpdatedPosts++
		detail.IsUpdated = true
		s.publishEvent(ctx, logger, domain.PostEventUpdated, &post)
	case ActionRepublish:
		result.RepublishedPosts++
		detail.IsRepublished = true
		s.publishEvent(ctx, logger, domain.PostEventUpdated, &post)
	case ActionRepublishUpdate:
		result.RepublishedUpdatedPosts++
		detail.IsRepublishedUpdated = true
		s.publishEvent(ctx, logger, domain.PostEventUpdated, &post)
	case ActionUnpublish:
		result.UnpublishedPosts++
		detail.IsUnpublished = true
		s.publishEvent(ctx, logger, domain.PostEventUnpublished, &post)
	}

	result.Posts = append(result.Posts, detail)
	logger.Debug("applied note action", "action", action, "post_id", post.ID)
	return nil
}

// sweepUnpublished takes down published posts whose backing note is gone
// from the notebook. Posts without a backing note are the editor's, not
// sync's, and are skipped.
func (s *SyncService) sweepUnpublished(ctx context.Context, logger *slog.Logger, blog domain.Blog, currentNoteIDs []string, result *domain.SyncResult) error {
	current := make(map[string]struct{}, len(currentNoteIDs))
	for _, id := range currentNoteIDs {
		current[id] = struct{}{}
	}

	published, err := s.posts.ListPublished(ctx, blog.ID)
	if err != nil {
		return fmt.Errorf("list published posts: %w", err)
	}

	for i := range published {
		post := published[i]
		if post.ExternalNoteID == nil {
			continue
		}
		if _, ok := current[*post.ExternalNoteID]; ok {
			continue
		}

		post.IsPublished = false
		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			return s.posts.Update(txCtx, &post)
		})
		if err != nil {
			return fmt.Errorf("unpublish post %s: %w", post.ID, err)
		}

		s.images.DeletePostImages(ctx, post.ID)

		result.UnpublishedPosts++
		result.Posts = append(result.Posts, domain.PostSyncDetail{Title: post.Title, IsUnpublished: true})
		s.publishEvent(ctx, logger, domain.PostEventUnpublished, &post)
		logger.Debug("unpublished post with missing note", "post_id", post.ID, "note_id", *post.ExternalNoteID)
	}

	return nil
}

func (s *SyncService) publishEvent(ctx context.Context, logger *slog.Logger, action domain.PostEventAction, post *domain.Post) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishPostEvent(ctx, action, post); err != nil {
		logger.Warn("failed to publish post event",
			"action", action,
			"post_id", post.ID,
			"error", err,
		)
	}
}

func (s *SyncService) tryAcquire(blogID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.active[blogID]; busy {
		return false
	}
	s.active[blogID] = struct{}{}
	return true
}

func (s *SyncService) release(blogID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, blogID)
}

func makeSlug(title string) string {
	out := slug.Make(title)
	if out == "" {
		return "untitled"
	}
	return out
}
