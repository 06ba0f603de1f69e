package model

import "time"

// DefaultNotes is the placeholder body used when a draft release is created
// without explicit notes.
const DefaultNotes = "Release notes to be added."

// Release represents a GitHub release.
type Release struct {
	ID          int64     `json:"id"`
	TagName     string    `json:"tagName"`
	Name        string    `json:"name"`
	Body        string    `json:"body,omitempty"`
	Draft       bool      `json:"draft"`
	Prerelease  bool      `json:"prerelease"`
	CreatedAt   time.Time `json:"createdAt"`
	PublishedAt time.Time `json:"publishedAt"`
	HTMLURL     string    `json:"htmlUrl"`
	Repo        RepoRef   `json:"repo"`
}

// Tag represents a Git tag.
type Tag struct {
	Name string  `json:"name"`
	SHA  string  `json:"sha"`
	Repo RepoRef `json:"repo"`
}

// ReleaseRequest contains the information needed to create a new release.
type ReleaseRequest struct {
	Repo            RepoRef `json:"repo"`
	TagName         string  `json:"tagName"`
	TargetCommitish string  `json:"targetCommitish,omitempty"` // Branch or commit SHA
	Name            string  `json:"name"`
	Body            string  `json:"body"`
	Draft           bool    `json:"draft"`
	Prerelease      bool    `json:"prerelease"`
	GenerateNotes   bool    `json:"generateNotes"`
	VerifyTag       bool    `json:"verifyTag"`
}

// ApplyDefaults fills unset request fields: the release title defaults to the
// tag name and the body to the placeholder notes (unless GitHub is generating
// the notes).
func (r *ReleaseRequest) ApplyDefaults() {
	if r.Name == "" {
		r.Name = r.TagName
	}
	if r.Body == "" && !r.GenerateNotes {
		r.Body = DefaultNotes
	}
}
