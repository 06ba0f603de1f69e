package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/grokify/releaseconductor/pkg/model"
)

// TableFormatter formats results as text tables.
type TableFormatter struct{}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter() *TableFormatter {
	return &TableFormatter{}
}

// FormatCreateResult formats a release-creation result as a text table.
func (f *TableFormatter) FormatCreateResult(result *model.CreateResult) (string, error) {
	var sb strings.Builder

	if result.DryRun {
		sb.WriteString(fmt.Sprintf("Release Dry Run (%s)\n", result.Timestamp.Format(time.RFC3339)))
	} else {
		sb.WriteString(fmt.Sprintf("Release Created (%s)\n", result.Timestamp.Format(time.RFC3339)))
	}
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if result.DryRun {
		sb.WriteString(fmt.Sprintf("Would create release %s for %s\n", result.TagName, result.Repo.FullName()))
		return sb.String(), nil
	}

	rel := result.Release
	if rel == nil {
		sb.WriteString(fmt.Sprintf("No release created for %s\n", result.Repo.FullName()))
		return sb.String(), nil
	}

	sb.WriteString(fmt.Sprintf("Repository: %s\n", result.Repo.FullName()))
	sb.WriteString(fmt.Sprintf("Tag:        %s\n", rel.TagName))
	sb.WriteString(fmt.Sprintf("Title:      %s\n", rel.Name))
	sb.WriteString(fmt.Sprintf("ID:         %d\n", rel.ID))
	sb.WriteString(fmt.Sprintf("Draft:      %t\n", rel.Draft))
	sb.WriteString(fmt.Sprintf("Prerelease: %t\n", rel.Prerelease))
	if rel.HTMLURL != "" {
		sb.WriteString(fmt.Sprintf("URL:        %s\n", rel.HTMLURL))
	}

	return sb.String(), nil
}

// FormatVerifyResult formats a tag-verification result as a text table.
func (f *TableFormatter) FormatVerifyResult(result *model.VerifyResult) (string, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Tag Verification (%s)\n", result.Timestamp.Format(time.RFC3339)))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if result.Exists {
		sb.WriteString(fmt.Sprintf("✅ %s exists in %s (%s)\n", result.TagName, result.Repo.FullName(), result.SHA))
	} else {
		sb.WriteString(fmt.Sprintf("❌ %s not found in %s\n", result.TagName, result.Repo.FullName()))
	}

	return sb.String(), nil
}

// FormatListResult formats a release-list result as a text table.
func (f *TableFormatter) FormatListResult(result *model.ListResult) (string, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Releases for %s (%s)\n", result.Repo.FullName(), result.Timestamp.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Releases: %d\n", result.Count))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if len(result.Releases) == 0 {
		sb.WriteString("No releases found.\n")
		return sb.String(), nil
	}

	sb.WriteString(fmt.Sprintf("%-20s %-30s %-7s %-10s %-20s\n",
		"TAG", "TITLE", "DRAFT", "PRERELEASE", "CREATED"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, rel := range result.Releases {
		sb.WriteString(fmt.Sprintf("%-20s %-30s %-7t %-10t %-20s\n",
			truncate(rel.TagName, 20),
			truncate(rel.Name, 30),
			rel.Draft,
			rel.Prerelease,
			rel.CreatedAt.Format("2006-01-02 15:04"),
		))
	}

	return sb.String(), nil
}

// FormatLatestResult formats a latest-tag result as a text table.
func (f *TableFormatter) FormatLatestResult(result *model.LatestResult) (string, error) {
	return fmt.Sprintf("%s\n", result.TagName), nil
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
