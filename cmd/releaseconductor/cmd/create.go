package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grokify/releaseconductor/internal/profile"
	"github.com/grokify/releaseconductor/internal/releaser"
	"github.com/grokify/releaseconductor/internal/report"
	"github.com/grokify/releaseconductor/pkg/model"
)

var createCmd = &cobra.Command{
	Use:   "create <tag>",
	Short: "Create a draft release for an existing version tag",
	Long: `Create a release for a tag that already exists in the repository.

By default the release is a draft titled after the tag, with placeholder notes
("Release notes to be added."). The tag is verified before the release is
created; a missing tag fails the command without creating anything. Exactly one
create attempt is made: there is no retry, and any failure exits non-zero.

Examples:
  # Draft release for v1.2.0, title v1.2.0, placeholder notes
  releaseconductor create v1.2.0 --repo myorg/myrepo

  # Published release with GitHub's auto-generated notes
  releaseconductor create v1.2.0 --repo myorg/myrepo --profile publish

  # Guard against tags outside the automation trigger pattern
  releaseconductor create v1.2.0 --repo myorg/myrepo --match 'v*'

  # Show what would happen without creating anything
  releaseconductor create v1.2.0 --repo myorg/myrepo --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().String("title", "", "Release title (defaults to the tag name)")
	createCmd.Flags().String("notes", "", "Release notes (defaults to placeholder text)")
	createCmd.Flags().String("notes-file", "", "Read release notes from a file")
	createCmd.Flags().Bool("draft", true, "Create the release as a draft")
	createCmd.Flags().Bool("prerelease", false, "Mark the release as a prerelease")
	createCmd.Flags().Bool("generate-notes", false, "Use GitHub's auto-generated release notes")
	createCmd.Flags().Bool("verify-tag", true, "Require the tag to exist before creating")
	createCmd.Flags().String("target", "", "Target branch or commit SHA (defaults to the default branch)")
	createCmd.Flags().String("match", "", "Require the tag to match a glob pattern (e.g. 'v*')")
	createCmd.Flags().String("profile", "", "Release profile: draft, publish, prerelease, or a YAML file path")

	_ = viper.BindPFlag("create.title", createCmd.Flags().Lookup("title"))
	_ = viper.BindPFlag("create.notes", createCmd.Flags().Lookup("notes"))
	_ = viper.BindPFlag("create.notes-file", createCmd.Flags().Lookup("notes-file"))
	_ = viper.BindPFlag("create.draft", createCmd.Flags().Lookup("draft"))
	_ = viper.BindPFlag("create.prerelease", createCmd.Flags().Lookup("prerelease"))
	_ = viper.BindPFlag("create.generate-notes", createCmd.Flags().Lookup("generate-notes"))
	_ = viper.BindPFlag("create.verify-tag", createCmd.Flags().Lookup("verify-tag"))
	_ = viper.BindPFlag("create.target", createCmd.Flags().Lookup("target"))
	_ = viper.BindPFlag("create.match", createCmd.Flags().Lookup("match"))
	_ = viper.BindPFlag("create.profile", createCmd.Flags().Lookup("profile"))
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	tagName := args[0]
	if tagName == "" {
		return fmt.Errorf("tag name must not be empty")
	}

	token := viper.GetString("token")
	if token == "" {
		return fmt.Errorf("GitHub token required. Set GITHUB_TOKEN or use --token flag")
	}

	repoRef := model.ParseRepoRef(viper.GetString("repo"))
	if !repoRef.IsValid() {
		return fmt.Errorf("repository required in owner/repo format (--repo)")
	}

	dryRun := viper.GetBool("dry-run")
	verbose := viper.GetBool("verbose")

	// Resolve the release profile, then let explicitly set flags override it.
	prof, err := resolveProfile(viper.GetString("create.profile"))
	if err != nil {
		return err
	}

	req := &model.ReleaseRequest{
		Repo:            repoRef,
		TagName:         tagName,
		TargetCommitish: viper.GetString("create.target"),
		Name:            viper.GetString("create.title"),
		Body:            prof.Notes,
		Draft:           prof.Draft,
		Prerelease:      prof.Prerelease,
		GenerateNotes:   prof.GenerateNotes,
		VerifyTag:       prof.VerifyTag,
	}

	flags := cmd.Flags()
	if flags.Changed("draft") {
		req.Draft = viper.GetBool("create.draft")
	}
	if flags.Changed("prerelease") {
		req.Prerelease = viper.GetBool("create.prerelease")
	}
	if flags.Changed("generate-notes") {
		req.GenerateNotes = viper.GetBool("create.generate-notes")
	}
	if flags.Changed("verify-tag") {
		req.VerifyTag = viper.GetBool("create.verify-tag")
	}
	if notes := viper.GetString("create.notes"); notes != "" {
		req.Body = notes
	}
	if notesFile := viper.GetString("create.notes-file"); notesFile != "" {
		data, err := os.ReadFile(notesFile) // #nosec G304
		if err != nil {
			return fmt.Errorf("failed to read notes file: %w", err)
		}
		req.Body = string(data)
	}

	// Tag-pattern filtering normally belongs to the invoking automation;
	// enforce it only when a pattern was given.
	pattern := viper.GetString("create.match")
	if pattern == "" && flags.Changed("profile") {
		pattern = prof.TagPattern
	}
	if pattern != "" {
		matched, err := releaser.MatchTagPattern(pattern, tagName)
		if err != nil {
			return err
		}
		if !matched {
			return fmt.Errorf("tag %q does not match pattern %q", tagName, pattern)
		}
	}

	result := model.CreateResult{
		Timestamp: time.Now(),
		DryRun:    dryRun,
		Repo:      repoRef,
		TagName:   tagName,
	}

	if dryRun {
		if verbose {
			fmt.Fprintf(os.Stderr, "Would create release %s for %s (draft=%t)\n",
				tagName, repoRef.FullName(), req.Draft)
		}
		return printCreateResult(&result)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Creating release %s for %s (draft=%t)\n",
			tagName, repoRef.FullName(), req.Draft)
	}

	rel := releaser.NewGitHub(token)

	release, err := rel.CreateRelease(ctx, req)
	if err != nil {
		return err
	}

	result.Release = release
	result.Created = true

	return printCreateResult(&result)
}

// resolveProfile returns the predefined profile with the given name, loads a
// YAML profile from disk, or falls back to the draft profile for an empty name.
func resolveProfile(name string) (*model.ReleaseProfile, error) {
	if name == "" {
		p := profile.ProfileDraft
		return &p, nil
	}

	if p := profile.GetProfile(name); p != nil {
		return p, nil
	}

	p, err := profile.LoadProfileFromFile(name)
	if err != nil {
		return nil, fmt.Errorf("unknown profile %q (expected one of %v or a YAML file): %w",
			name, profile.ProfileNames(), err)
	}
	return p, nil
}

func printCreateResult(result *model.CreateResult) error {
	formatter := report.New(viper.GetString("format"))

	output, err := formatter.FormatCreateResult(result)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Print(output)
	return nil
}
