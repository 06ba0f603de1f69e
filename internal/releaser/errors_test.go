package releaser

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/go-github/v84/github"
)

func apiError(statusCode int, codes ...string) error {
	resp := &github.ErrorResponse{
		Response: &http.Response{StatusCode: statusCode},
	}
	for _, code := range codes {
		resp.Errors = append(resp.Errors, github.Error{Resource: "Release", Field: "tag_name", Code: code})
	}
	return resp
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{"unauthorized", apiError(http.StatusUnauthorized), KindAuth},
		{"forbidden", apiError(http.StatusForbidden), KindAuth},
		{"missing tag ref", apiError(http.StatusNotFound), KindTagNotFound},
		{"duplicate release", apiError(http.StatusUnprocessableEntity, "already_exists"), KindDuplicateRelease},
		{"other validation failure", apiError(http.StatusUnprocessableEntity, "invalid"), KindUnknown},
		{"server error", apiError(http.StatusBadGateway), KindNetwork},
		{"transport error", &url.Error{Op: "Post", URL: "https://api.github.com", Err: errors.New("connection refused")}, KindNetwork},
		{"plain error", errors.New("boom"), KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.expected {
				t.Errorf("Classify = %s, expected %s", got, tt.expected)
			}
		})
	}
}

func TestClassify_WrappedError(t *testing.T) {
	err := fmt.Errorf("create release: %w", apiError(http.StatusUnprocessableEntity, "already_exists"))

	if got := Classify(err); got != KindDuplicateRelease {
		t.Errorf("Classify = %s, expected %s", got, KindDuplicateRelease)
	}
}

func TestIsKind(t *testing.T) {
	err := newError("create release", apiError(http.StatusUnauthorized))

	if !IsKind(err, KindAuth) {
		t.Error("expected IsKind(err, KindAuth) to be true")
	}
	if IsKind(err, KindDuplicateRelease) {
		t.Error("expected IsKind(err, KindDuplicateRelease) to be false")
	}
	if IsKind(errors.New("plain"), KindAuth) {
		t.Error("expected IsKind on plain error to be false")
	}
}

func TestIsKind_Wrapped(t *testing.T) {
	err := fmt.Errorf("run failed: %w", newError("verify tag", apiError(http.StatusNotFound)))

	if !IsKind(err, KindTagNotFound) {
		t.Error("expected IsKind to see through wrapping")
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{Kind: KindTagNotFound, Op: "verify tag v1.2.0"}

	expected := "verify tag v1.2.0: tag_not_found"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := apiError(http.StatusForbidden)
	err := newError("create release", cause)

	var errResp *github.ErrorResponse
	if !errors.As(err, &errResp) {
		t.Fatal("expected to unwrap to *github.ErrorResponse")
	}
	if errResp.Response.StatusCode != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", errResp.Response.StatusCode)
	}
}

func TestNewError_Nil(t *testing.T) {
	if err := newError("noop", nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}
