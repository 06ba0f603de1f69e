package releaser

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"github.com/google/go-github/v84/github"
)

// ErrorKind classifies release failures.
type ErrorKind string

const (
	// KindAuth indicates the credential lacks write scope or is invalid.
	KindAuth ErrorKind = "auth"

	// KindTagNotFound indicates the tag does not exist in the repository.
	KindTagNotFound ErrorKind = "tag_not_found"

	// KindDuplicateRelease indicates a release already exists for the tag.
	KindDuplicateRelease ErrorKind = "duplicate_release"

	// KindNetwork indicates a transport failure or platform unavailability.
	KindNetwork ErrorKind = "network"

	// KindUnknown covers everything else.
	KindUnknown ErrorKind = "unknown"
)

// Error is a classified release failure.
type Error struct {
	Kind ErrorKind
	Op   string // "create release", "get tag", ...
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// newError wraps err in an *Error with the classified kind. A nil err
// produces a nil result.
func newError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: Classify(err), Op: op, Err: err}
}

// IsKind reports whether err is (or wraps) an *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind == kind
	}
	return false
}

// Classify maps a GitHub API or transport error onto an ErrorKind.
//
// The GitHub releases API reports a missing write scope as 401/403, an
// existing release for the tag as 422 with an "already_exists" error code,
// and a missing tag ref as 404. Transport failures and 5xx responses are
// treated as network errors.
func Classify(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		switch errResp.Response.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return KindAuth
		case http.StatusNotFound:
			return KindTagNotFound
		case http.StatusUnprocessableEntity:
			for _, e := range errResp.Errors {
				if e.Code == "already_exists" {
					return KindDuplicateRelease
				}
			}
			return KindUnknown
		}
		if errResp.Response.StatusCode >= 500 {
			return KindNetwork
		}
		return KindUnknown
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return KindNetwork
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return KindNetwork
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindNetwork
	}

	return KindUnknown
}
