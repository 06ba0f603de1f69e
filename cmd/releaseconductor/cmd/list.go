package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grokify/releaseconductor/internal/releaser"
	"github.com/grokify/releaseconductor/internal/report"
	"github.com/grokify/releaseconductor/pkg/model"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List releases for a repository, drafts included",
	Long: `List the releases of a repository. Drafts are visible when the token has
access to them.

Examples:
  releaseconductor list --repo myorg/myrepo

  # Only drafts, as JSON
  releaseconductor list --repo myorg/myrepo --drafts-only --format json

  # Only the release attached to a specific tag
  releaseconductor list --repo myorg/myrepo --tag v1.2.0`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Bool("drafts-only", false, "Show only draft releases")
	listCmd.Flags().Int("limit", 0, "Maximum number of releases to show (0 = no limit)")
	listCmd.Flags().String("tag", "", "Show only the release for this tag")

	_ = viper.BindPFlag("list.drafts-only", listCmd.Flags().Lookup("drafts-only"))
	_ = viper.BindPFlag("list.limit", listCmd.Flags().Lookup("limit"))
	_ = viper.BindPFlag("list.tag", listCmd.Flags().Lookup("tag"))
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	token := viper.GetString("token")
	if token == "" {
		return fmt.Errorf("GitHub token required. Set GITHUB_TOKEN or use --token flag")
	}

	repoRef := model.ParseRepoRef(viper.GetString("repo"))
	if !repoRef.IsValid() {
		return fmt.Errorf("repository required in owner/repo format (--repo)")
	}

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Listing releases for %s...\n", repoRef.FullName())
	}

	rel := releaser.NewGitHub(token)

	var releases []model.Release

	if tagName := viper.GetString("list.tag"); tagName != "" {
		release, err := rel.GetReleaseByTag(ctx, repoRef, tagName)
		if err != nil {
			return err
		}
		if release != nil {
			releases = append(releases, *release)
		}
	} else {
		var err error
		releases, err = rel.ListReleases(ctx, repoRef)
		if err != nil {
			return err
		}
	}

	if viper.GetBool("list.drafts-only") {
		var drafts []model.Release
		for _, r := range releases {
			if r.Draft {
				drafts = append(drafts, r)
			}
		}
		releases = drafts
	}

	if limit := viper.GetInt("list.limit"); limit > 0 && len(releases) > limit {
		releases = releases[:limit]
	}

	result := model.ListResult{
		Timestamp: time.Now(),
		Repo:      repoRef,
		Releases:  releases,
		Count:     len(releases),
	}

	formatter := report.New(viper.GetString("format"))

	output, err := formatter.FormatListResult(&result)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Print(output)

	return nil
}
