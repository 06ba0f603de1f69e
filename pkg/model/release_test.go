package model

import "testing"

func TestParseRepoRef(t *testing.T) {
	ref := ParseRepoRef("myorg/myrepo")

	if ref.Owner != "myorg" || ref.Name != "myrepo" {
		t.Errorf("expected myorg/myrepo, got %s/%s", ref.Owner, ref.Name)
	}
	if ref.FullName() != "myorg/myrepo" {
		t.Errorf("expected full name myorg/myrepo, got %s", ref.FullName())
	}
	if !ref.IsValid() {
		t.Error("expected ref to be valid")
	}
}

func TestParseRepoRef_NoOwner(t *testing.T) {
	ref := ParseRepoRef("myrepo")

	if ref.Owner != "" || ref.Name != "myrepo" {
		t.Errorf("expected empty owner, got %s/%s", ref.Owner, ref.Name)
	}
	if ref.IsValid() {
		t.Error("expected ref without owner to be invalid")
	}
}

func TestReleaseRequest_ApplyDefaults(t *testing.T) {
	req := &ReleaseRequest{TagName: "v1.2.0", Draft: true}
	req.ApplyDefaults()

	if req.Name != "v1.2.0" {
		t.Errorf("expected title to default to tag, got %q", req.Name)
	}
	if req.Body != DefaultNotes {
		t.Errorf("expected placeholder notes, got %q", req.Body)
	}
}

func TestReleaseRequest_ApplyDefaults_GenerateNotes(t *testing.T) {
	req := &ReleaseRequest{TagName: "v1.2.0", GenerateNotes: true}
	req.ApplyDefaults()

	if req.Body != "" {
		t.Errorf("expected empty body with generated notes, got %q", req.Body)
	}
}

func TestReleaseRequest_ApplyDefaults_Explicit(t *testing.T) {
	req := &ReleaseRequest{TagName: "v1.2.0", Name: "Release 1.2", Body: "Changelog."}
	req.ApplyDefaults()

	if req.Name != "Release 1.2" {
		t.Errorf("expected explicit title to survive, got %q", req.Name)
	}
	if req.Body != "Changelog." {
		t.Errorf("expected explicit body to survive, got %q", req.Body)
	}
}
