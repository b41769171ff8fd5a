package images

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := NewDiskStore(t.TempDir(), "/media/", logger)
	require.NoError(t, err)
	return store
}

func TestDiskStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	postID := uuid.New()

	_, ok, err := store.Exists(ctx, "cafe01", postID)
	require.NoError(t, err)
	require.False(t, ok)

	url, err := store.Store(ctx, []byte("png bytes"), "cafe01", "image/png", postID, "A Note")
	require.NoError(t, err)
	require.Equal(t, "/media/"+postID.String()+"/cafe01.png", url)

	existing, ok, err := store.Exists(ctx, "cafe01", postID)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, url, existing)
}

func TestDiskStoreStoreIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	postID := uuid.New()

	first, err := store.Store(ctx, []byte("one"), "beef02", "image/jpeg", postID, "")
	require.NoError(t, err)
	second, err := store.Store(ctx, []byte("one"), "beef02", "image/jpeg", postID, "")
	require.NoError(t, err)
	require.Equal(t, first, second)

	entries, err := os.ReadDir(filepath.Join(store.root, postID.String()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestDiskStoreScopesImagesByPost(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	postA := uuid.New()
	postB := uuid.New()

	_, err := store.Store(ctx, []byte("x"), "abc123", "image/png", postA, "")
	require.NoError(t, err)

	_, ok, err := store.Exists(ctx, "abc123", postB)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDiskStoreDeletePostImages(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	postID := uuid.New()

	_, err := store.Store(ctx, []byte("x"), "abc123", "image/png", postID, "")
	require.NoError(t, err)

	store.DeletePostImages(ctx, postID)

	_, ok, err := store.Exists(ctx, "abc123", postID)
	require.NoError(t, err)
	require.False(t, ok)
	require.NoDirExists(t, filepath.Join(store.root, postID.String()))
}

func TestDiskStoreRejectsTraversalHashes(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	postID := uuid.New()

	_, err := store.Store(ctx, []byte("x"), "../escape", "image/png", postID, "")
	require.Error(t, err)

	_, _, err = store.Exists(ctx, "", postID)
	require.Error(t, err)
}

func TestDiskStoreUnknownMimeFallsBack(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	postID := uuid.New()

	url, err := store.Store(ctx, []byte("x"), "feed99", "image/x-exotic", postID, "")
	require.NoError(t, err)
	require.Equal(t, "/media/"+postID.String()+"/feed99.bin", url)
}
