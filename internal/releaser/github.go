package releaser

import (
	"context"
	"net/http"

	"github.com/google/go-github/v84/github"
	"github.com/grokify/gogithub/auth"
	"github.com/grokify/gogithub/tag"
	"github.com/grokify/mogo/net/http/retryhttp"

	"github.com/grokify/releaseconductor/pkg/model"
)

// GitHubReleaser implements Releaser for GitHub.
//
// Mutations go through a plain authenticated client so that creating a
// release is a single attempt. Read-only lookups (tags, release lists) use a
// retry transport that absorbs rate limits and transient 5xx responses.
type GitHubReleaser struct {
	client      *github.Client // create path, no retry
	queryClient *github.Client // read path, retry transport
}

// NewGitHubReleaser creates a new GitHub releaser.
func NewGitHubReleaser(token string) *GitHubReleaser {
	ctx := context.Background()

	rt := retryhttp.NewWithOptions()
	queryClient := github.NewClient(&http.Client{Transport: rt})
	if token != "" {
		queryClient = queryClient.WithAuthToken(token)
	}

	return &GitHubReleaser{
		client:      auth.NewGitHubClient(ctx, token),
		queryClient: queryClient,
	}
}

// CreateRelease creates a new release for a repository.
//
// When req.VerifyTag is set, the tag must already exist; a missing tag fails
// the call before any mutation is attempted. The create call itself is made
// exactly once and any platform failure is returned classified, including a
// duplicate-release rejection when a release for the tag already exists.
func (r *GitHubReleaser) CreateRelease(ctx context.Context, req *model.ReleaseRequest) (*model.Release, error) {
	req.ApplyDefaults()

	if req.VerifyTag {
		exists, _, err := r.TagExists(ctx, req.Repo, req.TagName)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, &Error{Kind: KindTagNotFound, Op: "verify tag " + req.TagName}
		}
	}

	ghRelease := &github.RepositoryRelease{
		TagName:              github.Ptr(req.TagName),
		Name:                 github.Ptr(req.Name),
		Body:                 github.Ptr(req.Body),
		Draft:                github.Ptr(req.Draft),
		Prerelease:           github.Ptr(req.Prerelease),
		GenerateReleaseNotes: github.Ptr(req.GenerateNotes),
	}

	if req.TargetCommitish != "" {
		ghRelease.TargetCommitish = github.Ptr(req.TargetCommitish)
	}

	created, _, err := r.client.Repositories.CreateRelease(ctx, req.Repo.Owner, req.Repo.Name, ghRelease)
	if err != nil {
		return nil, newError("create release", err)
	}

	rel := convertRelease(created, req.Repo)
	return &rel, nil
}

// GetTagSHA returns the SHA for a given tag.
func (r *GitHubReleaser) GetTagSHA(ctx context.Context, repo model.RepoRef, tagName string) (string, error) {
	ref, _, err := r.queryClient.Git.GetRef(ctx, repo.Owner, repo.Name, "tags/"+tagName)
	if err != nil {
		return "", newError("get tag "+tagName, err)
	}
	return ref.GetObject().GetSHA(), nil
}

// TagExists reports whether a tag exists, returning its SHA when it does.
func (r *GitHubReleaser) TagExists(ctx context.Context, repo model.RepoRef, tagName string) (bool, string, error) {
	sha, err := r.GetTagSHA(ctx, repo, tagName)
	if err != nil {
		if IsKind(err, KindTagNotFound) {
			return false, "", nil
		}
		return false, "", err
	}
	return true, sha, nil
}

// GetReleaseByTag returns the release associated with a tag, or nil when the
// tag has no release.
func (r *GitHubReleaser) GetReleaseByTag(ctx context.Context, repo model.RepoRef, tagName string) (*model.Release, error) {
	ghRelease, resp, err := r.queryClient.Repositories.GetReleaseByTag(ctx, repo.Owner, repo.Name, tagName)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, newError("get release for tag "+tagName, err)
	}

	rel := convertRelease(ghRelease, repo)
	return &rel, nil
}

// ListReleases returns the releases of a repository, drafts included.
func (r *GitHubReleaser) ListReleases(ctx context.Context, repo model.RepoRef) ([]model.Release, error) {
	var releases []model.Release

	opts := &github.ListOptions{PerPage: 100}
	for {
		ghReleases, resp, err := r.queryClient.Repositories.ListReleases(ctx, repo.Owner, repo.Name, opts)
		if err != nil {
			return nil, newError("list releases", err)
		}

		for _, ghRelease := range ghReleases {
			releases = append(releases, convertRelease(ghRelease, repo))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return releases, nil
}

// GetLatestTag returns the most recent semver tag.
func (r *GitHubReleaser) GetLatestTag(ctx context.Context, repo model.RepoRef) (string, error) {
	tagNames, err := tag.GetTagNames(ctx, r.queryClient, repo.Owner, repo.Name)
	if err != nil {
		return "", newError("list tags", err)
	}

	latest := FindLatestVersion(tagNames)
	if latest == "" {
		return "", &Error{Kind: KindTagNotFound, Op: "find latest semver tag"}
	}

	return latest, nil
}

// convertRelease maps a go-github release onto the model type.
func convertRelease(ghRelease *github.RepositoryRelease, repo model.RepoRef) model.Release {
	return model.Release{
		ID:          ghRelease.GetID(),
		TagName:     ghRelease.GetTagName(),
		Name:        ghRelease.GetName(),
		Body:        ghRelease.GetBody(),
		Draft:       ghRelease.GetDraft(),
		Prerelease:  ghRelease.GetPrerelease(),
		CreatedAt:   ghRelease.GetCreatedAt().Time,
		PublishedAt: ghRelease.GetPublishedAt().Time,
		HTMLURL:     ghRelease.GetHTMLURL(),
		Repo:        repo,
	}
}
