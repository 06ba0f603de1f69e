package model

import "time"

// CreateResult contains the outcome of a release-creation run.
type CreateResult struct {
	Timestamp time.Time `json:"timestamp"`
	DryRun    bool      `json:"dryRun"`
	Repo      RepoRef   `json:"repo"`
	TagName   string    `json:"tagName"`
	Release   *Release  `json:"release,omitempty"`
	Created   bool      `json:"created"`
}

// VerifyResult contains the outcome of a tag verification.
type VerifyResult struct {
	Timestamp time.Time `json:"timestamp"`
	Repo      RepoRef   `json:"repo"`
	TagName   string    `json:"tagName"`
	Exists    bool      `json:"exists"`
	SHA       string    `json:"sha,omitempty"`
}

// ListResult contains the releases found for a repository.
type ListResult struct {
	Timestamp time.Time `json:"timestamp"`
	Repo      RepoRef   `json:"repo"`
	Releases  []Release `json:"releases"`
	Count     int       `json:"count"`
}

// LatestResult contains the highest semver tag of a repository.
type LatestResult struct {
	Timestamp time.Time `json:"timestamp"`
	Repo      RepoRef   `json:"repo"`
	TagName   string    `json:"tagName"`
}
