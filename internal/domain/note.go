package domain

import (
	"strings"
	"time"
)

// UpdateCountUnknown is the change counter value a source reports when it
// cannot say whether anything changed. A pass seeing it must proceed with a
// fetch and must not persist a new baseline.
const UpdateCountUnknown = -1

// SourceSyncState is the account-wide sync state reported by the note source.
// UpdateCount covers the whole account, not a single notebook.
type SourceSyncState struct {
	UpdateCount int
}

// Resource is a binary attachment of a Note.
type Resource struct {
	ID          string
	ContentHash string // hex digest of the body, as reported by the source
	MimeType    string
	Width       int // 0 when the source does not know
	Height      int
}

// Note is a single content item fetched from the note source.
type Note struct {
	ID          string
	Title       string
	RawContent  string
	TagNames    []string
	Resources   []Resource
	CreatedAt   time.Time
	UpdatedAt   time.Time
	PublishedAt *time.Time // explicit publish date from note attributes, when set
}

// HasTag reports whether the note carries the given tag, ignoring case.
func (n Note) HasTag(name string) bool {
	for _, t := range n.TagNames {
		if strings.EqualFold(t, name) {
			return true
		}
	}
	return false
}

// ResourceByHash returns the attachment whose content hash matches, if any.
func (n Note) ResourceByHash(hash string) (Resource, bool) {
	for _, r := range n.Resources {
		if strings.EqualFold(r.ContentHash, hash) {
			return r, true
		}
	}
	return Resource{}, false
}
