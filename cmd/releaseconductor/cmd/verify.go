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

var verifyCmd = &cobra.Command{
	Use:   "verify <tag>",
	Short: "Verify that a tag exists in the repository",
	Long: `Verify that a tag exists in the repository, printing its SHA when it does.

This is the same check 'create' performs before creating a release. The command
exits non-zero when the tag is missing.

Examples:
  releaseconductor verify v1.2.0 --repo myorg/myrepo`,
	Args: cobra.ExactArgs(1),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	tagName := args[0]

	token := viper.GetString("token")
	if token == "" {
		return fmt.Errorf("GitHub token required. Set GITHUB_TOKEN or use --token flag")
	}

	repoRef := model.ParseRepoRef(viper.GetString("repo"))
	if !repoRef.IsValid() {
		return fmt.Errorf("repository required in owner/repo format (--repo)")
	}

	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Checking tag %s in %s...\n", tagName, repoRef.FullName())
	}

	rel := releaser.NewGitHub(token)

	exists, sha, err := rel.TagExists(ctx, repoRef, tagName)
	if err != nil {
		return err
	}

	result := model.VerifyResult{
		Timestamp: time.Now(),
		Repo:      repoRef,
		TagName:   tagName,
		Exists:    exists,
		SHA:       sha,
	}

	formatter := report.New(viper.GetString("format"))

	output, err := formatter.FormatVerifyResult(&result)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Print(output)

	if !exists {
		return &releaser.Error{Kind: releaser.KindTagNotFound, Op: "verify tag " + tagName}
	}

	return nil
}
