// Package images stores post images on local disk, addressed by content
// hash, and serves them under a configurable public base URL.
package images

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DiskStore lays files out as {root}/{postID}/{contentHash}{ext}. The
// content-hash naming makes writes idempotent: storing the same image twice
// for a post lands on the same path.
type DiskStore struct {
	root    string
	baseURL string
	logger  *slog.Logger
}

func NewDiskStore(root, baseURL string, logger *slog.Logger) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &DiskStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}, nil
}

// Exists reports whether an image with this content hash is already stored
// for the post, returning its public URL when it is.
func (s *DiskStore) Exists(_ context.Context, contentHash string, postID uuid.UUID) (string, bool, error) {
	if err := validateHash(contentHash); err != nil {
		return "", false, err
	}

	matches, err := filepath.Glob(filepath.Join(s.root, postID.String(), contentHash+".*"))
	if err != nil {
		return "", false, fmt.Errorf("probe image %s: %w", contentHash, err)
	}
	if len(matches) == 0 {
		return "", false, nil
	}
	return s.publicURL(postID, filepath.Base(matches[0])), true, nil
}

// Store writes the image bytes and returns the public URL. The write goes
// through a temp file and a rename so readers never see a partial image.
func (s *DiskStore) Store(_ context.Context, data []byte, contentHash, mimeType string, postID uuid.UUID, title string) (string, error) {
	if err := validateHash(contentHash); err != nil {
		return "", err
	}

	dir := filepath.Join(s.root, postID.String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create post media dir: %w", err)
	}

	name := contentHash + extensionFor(mimeType)
	final := filepath.Join(dir, name)

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp image: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close temp image: %w", err)
	}
	if err := os.Rename(tmp.Name(), final); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("place image: %w", err)
	}

	s.logger.Debug("stored image",
		"post_id", postID,
		"hash", contentHash,
		"mime", mimeType,
		"bytes", len(data),
		"title", title,
	)

	return s.publicURL(postID, name), nil
}

// DeletePostImages removes everything stored for the post. Best effort:
// failures are logged, never surfaced, so an unpublish sweep cannot fail on
// media cleanup.
func (s *DiskStore) DeletePostImages(_ context.Context, postID uuid.UUID) {
	dir := filepath.Join(s.root, postID.String())
	if err := os.RemoveAll(dir); err != nil {
		s.logger.Warn("failed to delete post images",
			"post_id", postID,
			"error", err,
		)
	}
}

func (s *DiskStore) publicURL(postID uuid.UUID, name string) string {
	return s.baseURL + "/" + postID.String() + "/" + name
}

func validateHash(hash string) error {
	if hash == "" || strings.ContainsAny(hash, "/\\.") {
		return fmt.Errorf("invalid content hash %q", hash)
	}
	return nil
}

func extensionFor(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "image/svg+xml":
		return ".svg"
	default:
		return ".bin"
	}
}
