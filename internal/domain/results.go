package domain

import "github.com/google/uuid"

// PostSyncDetail describes what happened to a single post during one pass.
// Exactly one of the flags is set, or none for the "no changes detected"
// descriptor of a skipped pass. Error is set when the note failed processing.
type PostSyncDetail struct {
	Title                string `json:"title"`
	IsNew                bool   `json:"isNew"`
	IsUpdated            bool   `json:"isUpdated"`
	IsUnpublished        bool   `json:"isUnpublished"`
	IsRepublished        bool   `json:"isRepublished,omitempty"`
	IsRepublishedUpdated bool   `json:"isRepublishedUpdated,omitempty"`
	Error                string `json:"error,omitempty"`
}

// SyncResult reports one blog pass. Failures land in Error rather than in a
// returned error so that callers iterating many blogs always get a result
// row per blog.
type SyncResult struct {
	BlogID                  uuid.UUID        `json:"blogId"`
	BlogTitle               string           `json:"blogTitle"`
	NotesFound              int              `json:"notesFound"`
	NewPosts                int              `json:"newPosts"`
	UpdatedPosts            int              `json:"updatedPosts"`
	UnpublishedPosts        int              `json:"unpublishedPosts"`
	RepublishedPosts        int              `json:"republishedPosts"`
	RepublishedUpdatedPosts int              `json:"republishedUpdatedPosts"`
	TotalPublishedPosts     int              `json:"totalPublishedPosts"`
	RateLimited             bool             `json:"rateLimited,omitempty"`
	Error                   string           `json:"error,omitempty"`
	Posts                   []PostSyncDetail `json:"posts"`
}

// UserSyncResult aggregates the per-blog results of one user run.
type UserSyncResult struct {
	Success                      bool         `json:"success"`
	Results                      []SyncResult `json:"results"`
	TotalNewPosts                int          `json:"totalNewPosts"`
	TotalUpdatedPosts            int          `json:"totalUpdatedPosts"`
	TotalUnpublishedPosts        int          `json:"totalUnpublishedPosts"`
	TotalRepublishedPosts        int          `json:"totalRepublishedPosts"`
	TotalRepublishedUpdatedPosts int          `json:"totalRepublishedUpdatedPosts"`
	Error                        string       `json:"error,omitempty"`
}

// Add folds one blog result into the aggregate.
func (r *UserSyncResult) Add(res SyncResult) {
	r.Results = append(r.Results, res)
	r.TotalNewPosts += res.NewPosts
	r.TotalUpdatedPosts += res.UpdatedPosts
	r.TotalUnpublishedPosts += res.UnpublishedPosts
	r.TotalRepublishedPosts += res.RepublishedPosts
	r.TotalRepublishedUpdatedPosts += res.RepublishedUpdatedPosts
	if res.Error != "" {
		r.Success = false
	}
}
