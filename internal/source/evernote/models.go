package evernote

// SyncStateResponse mirrors the account sync-state endpoint.
type SyncStateResponse struct {
	UpdateCount int `json:"updateCount"`
}

type NotesResponse struct {
	Notes []Note `json:"notes"`
}

type NoteIDsResponse struct {
	GUIDs []string `json:"guids"`
}

// Note is the wire representation of a note. Timestamps are milliseconds
// since the epoch, as the API reports them.
type Note struct {
	GUID       string          `json:"guid"`
	Title      string          `json:"title"`
	Content    string          `json:"content"`
	TagNames   []string        `json:"tagNames"`
	Created    int64           `json:"created"`
	Updated    int64           `json:"updated"`
	Attributes *NoteAttributes `json:"attributes"`
	Resources  []Resource      `json:"resources"`
}

// NoteAttributes carries the optional note metadata. SubjectDate doubles as
// the author-set publish date when present.
type NoteAttributes struct {
	SubjectDate *int64 `json:"subjectDate"`
}

type Resource struct {
	GUID   string       `json:"guid"`
	Mime   string       `json:"mime"`
	Width  int          `json:"width"`
	Height int          `json:"height"`
	Data   ResourceData `json:"data"`
}

type ResourceData struct {
	BodyHash string `json:"bodyHash"`
	Size     int    `json:"size"`
}
