package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/grokify/releaseconductor/pkg/model"
)

// MarkdownFormatter formats results as Markdown.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new Markdown formatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// FormatCreateResult formats a release-creation result as Markdown.
func (f *MarkdownFormatter) FormatCreateResult(result *model.CreateResult) (string, error) {
	var sb strings.Builder

	if result.DryRun {
		sb.WriteString("# Release Dry Run\n\n")
	} else {
		sb.WriteString("# Release Created\n\n")
	}

	sb.WriteString(fmt.Sprintf("**Time:** %s\n\n", result.Timestamp.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("**Repository:** %s\n\n", result.Repo.FullName()))
	sb.WriteString(fmt.Sprintf("**Tag:** %s\n\n", result.TagName))

	if result.DryRun {
		sb.WriteString("No release was created (dry run).\n")
		return sb.String(), nil
	}

	if rel := result.Release; rel != nil {
		sb.WriteString(fmt.Sprintf("**Title:** %s\n\n", rel.Name))
		sb.WriteString(fmt.Sprintf("**Draft:** %t | **Prerelease:** %t\n\n", rel.Draft, rel.Prerelease))
		if rel.HTMLURL != "" {
			sb.WriteString(fmt.Sprintf("[View release](%s)\n", rel.HTMLURL))
		}
	}

	return sb.String(), nil
}

// FormatVerifyResult formats a tag-verification result as Markdown.
func (f *MarkdownFormatter) FormatVerifyResult(result *model.VerifyResult) (string, error) {
	var sb strings.Builder

	sb.WriteString("# Tag Verification\n\n")
	sb.WriteString(fmt.Sprintf("**Repository:** %s\n\n", result.Repo.FullName()))

	if result.Exists {
		sb.WriteString(fmt.Sprintf("✅ Tag `%s` exists at `%s`.\n", result.TagName, result.SHA))
	} else {
		sb.WriteString(fmt.Sprintf("❌ Tag `%s` was not found.\n", result.TagName))
	}

	return sb.String(), nil
}

// FormatListResult formats a release-list result as Markdown.
func (f *MarkdownFormatter) FormatListResult(result *model.ListResult) (string, error) {
	var sb strings.Builder

	sb.WriteString("# Releases\n\n")
	sb.WriteString(fmt.Sprintf("**Repository:** %s\n\n", result.Repo.FullName()))
	sb.WriteString(fmt.Sprintf("**Releases:** %d\n\n", result.Count))

	if len(result.Releases) > 0 {
		sb.WriteString("| Tag | Title | Draft | Prerelease | Created |\n")
		sb.WriteString("|-----|-------|-------|------------|--------|\n")

		for _, rel := range result.Releases {
			name := rel.Name
			if rel.HTMLURL != "" {
				name = fmt.Sprintf("[%s](%s)", rel.Name, rel.HTMLURL)
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %t | %t | %s |\n",
				rel.TagName,
				name,
				rel.Draft,
				rel.Prerelease,
				rel.CreatedAt.Format("2006-01-02"),
			))
		}
	}

	return sb.String(), nil
}

// FormatLatestResult formats a latest-tag result as Markdown.
func (f *MarkdownFormatter) FormatLatestResult(result *model.LatestResult) (string, error) {
	return fmt.Sprintf("**Latest tag for %s:** `%s`\n", result.Repo.FullName(), result.TagName), nil
}
