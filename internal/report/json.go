package report

import (
	"encoding/json"

	"github.com/grokify/releaseconductor/pkg/model"
)

// JSONFormatter formats results as JSON.
type JSONFormatter struct {
	Indent bool
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{Indent: true}
}

// FormatCreateResult formats a release-creation result as JSON.
func (f *JSONFormatter) FormatCreateResult(result *model.CreateResult) (string, error) {
	return f.marshal(result)
}

// FormatVerifyResult formats a tag-verification result as JSON.
func (f *JSONFormatter) FormatVerifyResult(result *model.VerifyResult) (string, error) {
	return f.marshal(result)
}

// FormatListResult formats a release-list result as JSON.
func (f *JSONFormatter) FormatListResult(result *model.ListResult) (string, error) {
	return f.marshal(result)
}

// FormatLatestResult formats a latest-tag result as JSON.
func (f *JSONFormatter) FormatLatestResult(result *model.LatestResult) (string, error) {
	return f.marshal(result)
}

func (f *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error

	if f.Indent {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}
