package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grokify/releaseconductor/internal/releaser"
	"github.com/grokify/releaseconductor/internal/report"
	"github.com/grokify/releaseconductor/pkg/model"
)

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the highest semver tag of a repository",
	Long: `Print the highest semantic-version tag of a repository.

Examples:
  releaseconductor latest --repo myorg/myrepo`,
	RunE: runLatest,
}

func init() {
	rootCmd.AddCommand(latestCmd)
}

func runLatest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	token := viper.GetString("token")
	if token == "" {
		return fmt.Errorf("GitHub token required. Set GITHUB_TOKEN or use --token flag")
	}

	repoRef := model.ParseRepoRef(viper.GetString("repo"))
	if !repoRef.IsValid() {
		return fmt.Errorf("repository required in owner/repo format (--repo)")
	}

	rel := releaser.NewGitHub(token)

	latest, err := rel.GetLatestTag(ctx, repoRef)
	if err != nil {
		return err
	}

	result := model.LatestResult{
		Timestamp: time.Now(),
		Repo:      repoRef,
		TagName:   latest,
	}

	formatter := report.New(viper.GetString("format"))

	output, err := formatter.FormatLatestResult(&result)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Print(output)

	return nil
}
