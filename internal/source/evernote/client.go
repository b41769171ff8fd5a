package evernote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/alexy/fromcafe-sub000/internal/domain"
)

const defaultRetryAfter = time.Minute

// Config holds note-source client configuration. The rate limit is applied
// per access token, since the upstream throttles per account.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	MaxAttempts       int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Factory mints per-token clients sharing one configuration. Clients are
// cached by token so the rate limiter state survives across sync passes.
type Factory struct {
	cfg    Config
	logger *slog.Logger

	mu      sync.Mutex
	clients map[string]*Client
}

func NewFactory(cfg Config, logger *slog.Logger) *Factory {
	return &Factory{
		cfg:     cfg,
		logger:  logger,
		clients: make(map[string]*Client),
	}
}

func (f *Factory) ClientFor(token string) *Client {
	f.mu.Lock()
	defer f.mu.Unlock()

	if c, ok := f.clients[token]; ok {
		return c
	}
	c := newClient(f.cfg, token, f.logger)
	f.clients[token] = c
	return c
}

// Client talks to the note-source HTTP API with one user's credentials.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	limiter        *rate.Limiter
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func newClient(cfg Config, token string, logger *slog.Logger) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		token:          token,
		limiter:        rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "evernote"),
	}
}

// GetSyncState returns the account-wide change counter. Gateways that do not
// expose the counter yield the unknown sentinel rather than an error.
func (c *Client) GetSyncState(ctx context.Context) (domain.SourceSyncState, error) {
	var resp SyncStateResponse
	err := c.getJSON(ctx, "/sync/state", &resp)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.SourceSyncState{UpdateCount: domain.UpdateCountUnknown}, nil
	}
	if err != nil {
		return domain.SourceSyncState{}, fmt.Errorf("get sync state: %w", err)
	}
	return domain.SourceSyncState{UpdateCount: resp.UpdateCount}, nil
}

// ListNotebookNotes fetches notes with content for one notebook, newest
// first. A nil modifiedSince fetches the whole notebook.
func (c *Client) ListNotebookNotes(ctx context.Context, notebookID string, maxCount int, modifiedSince *time.Time) ([]domain.Note, error) {
	q := url.Values{}
	q.Set("max", strconv.Itoa(maxCount))
	if modifiedSince != nil {
		q.Set("modifiedSince", modifiedSince.UTC().Format(time.RFC3339))
	}

	path := fmt.Sprintf("/notebooks/%s/notes?%s", url.PathEscape(notebookID), q.Encode())

	var resp NotesResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("list notes for notebook %s: %w", notebookID, err)
	}

	notes := make([]domain.Note, 0, len(resp.Notes))
	for _, n := range resp.Notes {
		notes = append(notes, transform(n))
	}
	return notes, nil
}

// ListNotebookNoteIDs fetches only the note IDs of a notebook. This is the
// cheap metadata listing the unpublish sweep uses on incremental passes.
func (c *Client) ListNotebookNoteIDs(ctx context.Context, notebookID string) ([]string, error) {
	path := fmt.Sprintf("/notebooks/%s/notes/ids", url.PathEscape(notebookID))

	var resp NoteIDsResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("list note ids for notebook %s: %w", notebookID, err)
	}
	return resp.GUIDs, nil
}

// GetResourceData fetches the raw bytes of one attachment.
func (c *Client) GetResourceData(ctx context.Context, resourceID string) ([]byte, error) {
	path := fmt.Sprintf("/resources/%s/data", url.PathEscape(resourceID))

	body, err := c.get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("get resource %s: %w", resourceID, err)
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	var body []byte
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		body, err = c.doRequest(ctx, path)
		if err == nil {
			return body, nil
		}

		// Auth rejections, throttling and missing entities do not get
		// better with retries.
		if errors.Is(err, domain.ErrAuthRejected) ||
			errors.Is(err, domain.ErrRateLimited) ||
			errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"path", path,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", "fromcafe-syncer/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, domain.ErrAuthRejected
	case http.StatusTooManyRequests:
		return nil, &domain.RateLimitError{RetryAfter: retryAfter(resp)}
	case http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	default:
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultRetryAfter
}

func transform(n Note) domain.Note {
	note := domain.Note{
		ID:         n.GUID,
		Title:      n.Title,
		RawContent: n.Content,
		TagNames:   n.TagNames,
		CreatedAt:  time.UnixMilli(n.Created).UTC(),
		UpdatedAt:  time.UnixMilli(n.Updated).UTC(),
	}

	if n.Attributes != nil && n.Attributes.SubjectDate != nil {
		t := time.UnixMilli(*n.Attributes.SubjectDate).UTC()
		note.PublishedAt = &t
	}

	for _, r := range n.Resources {
		note.Resources = append(note.Resources, domain.Resource{
			ID:          r.GUID,
			ContentHash: r.Data.BodyHash,
			MimeType:    r.Mime,
			Width:       r.Width,
			Height:      r.Height,
		})
	}

	return note
}
