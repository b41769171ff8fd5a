package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexy/fromcafe-sub000/internal/domain"
	"github.com/alexy/fromcafe-sub000/testdata/utils"
)

func publishedPost(publishedAt time.Time) *domain.Post {
	return &domain.Post{
		Title:       "Hello",
		Content:     "<p>Hello</p>",
		Excerpt:     utils.Ptr("Hello"),
		IsPublished: true,
		PublishedAt: &publishedAt,
	}
}

func matchingUpdate(post *domain.Post) NoteUpdate {
	update := NoteUpdate{
		NoteID:    "note-1",
		Title:     post.Title,
		Content:   post.Content,
		Published: true,
		CreatedAt: time.Now().Add(-24 * time.Hour),
	}
	if post.Excerpt != nil {
		update.Excerpt = *post.Excerpt
	}
	return update
}

func TestClassifyNote_NewTaggedNoteCreates(t *testing.T) {
	update := NoteUpdate{NoteID: "note-1", Title: "Hello", Content: "<p>Hello</p>", Published: true}

	assert.Equal(t, ActionCreate, ClassifyNote(nil, update))
}

func TestClassifyNote_NewUntaggedNoteIgnored(t *testing.T) {
	update := NoteUpdate{NoteID: "note-1", Title: "Hello"}

	assert.Equal(t, ActionNone, ClassifyNote(nil, update))
}

func TestClassifyNote_UnchangedNoteIsNoOp(t *testing.T) {
	post := publishedPost(time.Now().Add(-48 * time.Hour))

	assert.Equal(t, ActionNone, ClassifyNote(post, matchingUpdate(post)))
}

func TestClassifyNote_ChangedContentUpdates(t *testing.T) {
	post := publishedPost(time.Now().Add(-48 * time.Hour))

	titleChanged := matchingUpdate(post)
	titleChanged.Title = "Hello again"
	assert.Equal(t, ActionContentUpdate, ClassifyNote(post, titleChanged))

	bodyChanged := matchingUpdate(post)
	bodyChanged.Content = "<p>Hello again</p>"
	assert.Equal(t, ActionContentUpdate, ClassifyNote(post, bodyChanged))

	excerptOnly := matchingUpdate(post)
	excerptOnly.Excerpt = "Hello again"
	assert.Equal(t, ActionContentUpdate, ClassifyNote(post, excerptOnly))
}

func TestClassifyNote_ExplicitDateMoveUpdates(t *testing.T) {
	post := publishedPost(time.Now().Add(-48 * time.Hour))

	update := matchingUpdate(post)
	update.PublishedAt = utils.Ptr(time.Now().Add(-12 * time.Hour))

	assert.Equal(t, ActionContentUpdate, ClassifyNote(post, update))
}

func TestClassifyNote_TagRemovedUnpublishes(t *testing.T) {
	post := publishedPost(time.Now().Add(-48 * time.Hour))

	update := matchingUpdate(post)
	update.Published = false
	update.Content = ""
	update.Excerpt = ""

	assert.Equal(t, ActionUnpublish, ClassifyNote(post, update))
}

func TestClassifyNote_UntaggedDraftLeftAlone(t *testing.T) {
	post := publishedPost(time.Now().Add(-48 * time.Hour))
	post.IsPublished = false

	update := matchingUpdate(post)
	update.Published = false
	update.Content = ""
	update.Excerpt = ""

	assert.Equal(t, ActionNone, ClassifyNote(post, update))
}

func TestClassifyNote_RetaggedRepublishes(t *testing.T) {
	post := publishedPost(time.Now().Add(-48 * time.Hour))
	post.IsPublished = false

	assert.Equal(t, ActionRepublish, ClassifyNote(post, matchingUpdate(post)))
}

func TestClassifyNote_RetaggedWithChangesRepublishUpdates(t *testing.T) {
	post := publishedPost(time.Now().Add(-48 * time.Hour))
	post.IsPublished = false

	update := matchingUpdate(post)
	update.Content = "<p>Hello again</p>"

	assert.Equal(t, ActionRepublishUpdate, ClassifyNote(post, update))
}

// Every tagged note over an existing post lands in exactly one of the four
// publish-state/content-state outcomes.
func TestClassifyNote_TaggedOutcomeGrid(t *testing.T) {
	cases := []struct {
		name           string
		postPublished  bool
		contentChanged bool
		want           NoteAction
	}{
		{"published unchanged", true, false, ActionNone},
		{"published changed", true, true, ActionContentUpdate},
		{"unpublished unchanged", false, false, ActionRepublish},
		{"unpublished changed", false, true, ActionRepublishUpdate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			post := publishedPost(time.Now().Add(-48 * time.Hour))
			post.IsPublished = tc.postPublished

			update := matchingUpdate(post)
			if tc.contentChanged {
				update.Content = "<p>changed</p>"
			}

			assert.Equal(t, tc.want, ClassifyNote(post, update))
		})
	}
}

func TestTargetPublishedAt_ExplicitDateWins(t *testing.T) {
	explicit := time.Now().Add(-time.Hour)
	post := publishedPost(time.Now().Add(-48 * time.Hour))

	update := matchingUpdate(post)
	update.PublishedAt = &explicit

	got := TargetPublishedAt(post, update)
	require.NotNil(t, got)
	assert.True(t, got.Equal(explicit))
}

func TestTargetPublishedAt_ExistingTimestampPreserved(t *testing.T) {
	original := time.Now().Add(-48 * time.Hour)
	post := publishedPost(original)
	post.IsPublished = false

	got := TargetPublishedAt(post, matchingUpdate(post))
	require.NotNil(t, got)
	assert.True(t, got.Equal(original))
}

func TestTargetPublishedAt_FirstPublishUsesNoteCreation(t *testing.T) {
	created := time.Now().Add(-24 * time.Hour)
	update := NoteUpdate{Title: "Hello", Published: true, CreatedAt: created}

	got := TargetPublishedAt(nil, update)
	require.NotNil(t, got)
	assert.True(t, got.Equal(created))
}

func TestTargetPublishedAt_NilForUnpublishedNew(t *testing.T) {
	update := NoteUpdate{Title: "Hello"}

	assert.Nil(t, TargetPublishedAt(nil, update))
}
