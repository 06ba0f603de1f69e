package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/grokify/releaseconductor/pkg/model"
)

// CSVFormatter formats results as CSV.
type CSVFormatter struct{}

// NewCSVFormatter creates a new CSV formatter.
func NewCSVFormatter() *CSVFormatter {
	return &CSVFormatter{}
}

// FormatCreateResult formats a release-creation result as CSV.
func (f *CSVFormatter) FormatCreateResult(result *model.CreateResult) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Repository", "Tag", "Title", "Draft", "Prerelease", "Created", "URL"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	row := []string{result.Repo.FullName(), result.TagName, "", "", "", fmt.Sprintf("%t", result.Created), ""}
	if rel := result.Release; rel != nil {
		row = []string{
			result.Repo.FullName(),
			rel.TagName,
			rel.Name,
			fmt.Sprintf("%t", rel.Draft),
			fmt.Sprintf("%t", rel.Prerelease),
			fmt.Sprintf("%t", result.Created),
			rel.HTMLURL,
		}
	}

	if err := w.Write(row); err != nil {
		return "", err
	}

	w.Flush()
	return buf.String(), w.Error()
}

// FormatVerifyResult formats a tag-verification result as CSV.
func (f *CSVFormatter) FormatVerifyResult(result *model.VerifyResult) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Repository", "Tag", "Exists", "SHA"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	row := []string{
		result.Repo.FullName(),
		result.TagName,
		fmt.Sprintf("%t", result.Exists),
		result.SHA,
	}
	if err := w.Write(row); err != nil {
		return "", err
	}

	w.Flush()
	return buf.String(), w.Error()
}

// FormatListResult formats a release-list result as CSV.
func (f *CSVFormatter) FormatListResult(result *model.ListResult) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Repository", "Tag", "Title", "Draft", "Prerelease", "Created At", "URL"}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, rel := range result.Releases {
		row := []string{
			result.Repo.FullName(),
			rel.TagName,
			rel.Name,
			fmt.Sprintf("%t", rel.Draft),
			fmt.Sprintf("%t", rel.Prerelease),
			rel.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			rel.HTMLURL,
		}

		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	return buf.String(), w.Error()
}

// FormatLatestResult formats a latest-tag result as CSV.
func (f *CSVFormatter) FormatLatestResult(result *model.LatestResult) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Repository", "Latest Tag"}); err != nil {
		return "", err
	}
	if err := w.Write([]string{result.Repo.FullName(), result.TagName}); err != nil {
		return "", err
	}

	w.Flush()
	return buf.String(), w.Error()
}
