package releaser

import (
	"context"

	"github.com/grokify/releaseconductor/pkg/model"
)

// Releaser defines the interface for creating and inspecting releases.
type Releaser interface {
	// CreateRelease creates a new release for a repository. Exactly one
	// attempt is made; failures are returned as *Error values classified
	// by kind.
	CreateRelease(ctx context.Context, req *model.ReleaseRequest) (*model.Release, error)

	// GetTagSHA returns the SHA for a given tag.
	GetTagSHA(ctx context.Context, repo model.RepoRef, tagName string) (string, error)

	// TagExists reports whether a tag exists in the repository.
	TagExists(ctx context.Context, repo model.RepoRef, tagName string) (bool, string, error)

	// GetReleaseByTag returns the release associated with a tag, if any.
	GetReleaseByTag(ctx context.Context, repo model.RepoRef, tagName string) (*model.Release, error)

	// ListReleases returns the releases of a repository, drafts included.
	ListReleases(ctx context.Context, repo model.RepoRef) ([]model.Release, error)

	// GetLatestTag returns the most recent semver tag.
	GetLatestTag(ctx context.Context, repo model.RepoRef) (string, error)
}

// NewGitHub creates a new GitHub releaser with the given token.
func NewGitHub(token string) Releaser {
	return NewGitHubReleaser(token)
}
