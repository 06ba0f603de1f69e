package report

import "github.com/grokify/releaseconductor/pkg/model"

// Formatter defines the interface for formatting results.
type Formatter interface {
	// FormatCreateResult formats a release-creation result.
	FormatCreateResult(result *model.CreateResult) (string, error)

	// FormatVerifyResult formats a tag-verification result.
	FormatVerifyResult(result *model.VerifyResult) (string, error)

	// FormatListResult formats a release-list result.
	FormatListResult(result *model.ListResult) (string, error)

	// FormatLatestResult formats a latest-tag result.
	FormatLatestResult(result *model.LatestResult) (string, error)
}

// New returns the formatter for a format name. Unknown names fall back to the
// table formatter.
func New(format string) Formatter {
	switch format {
	case "json":
		return NewJSONFormatter()
	case "markdown", "md":
		return NewMarkdownFormatter()
	case "csv":
		return NewCSVFormatter()
	default:
		return NewTableFormatter()
	}
}
