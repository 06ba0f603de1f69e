package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/grokify/releaseconductor/pkg/model"
)

func TestLoadProfileFromBytes(t *testing.T) {
	data := []byte(`name: nightly
description: Nightly draft builds
draft: true
prerelease: true
generateNotes: false
notes: Nightly build.
verifyTag: true
tagPattern: "nightly-*"
`)

	p, err := LoadProfileFromBytes(data)
	if err != nil {
		t.Fatalf("LoadProfileFromBytes failed: %v", err)
	}

	if p.Name != "nightly" {
		t.Errorf("expected name nightly, got %s", p.Name)
	}
	if !p.Draft || !p.Prerelease {
		t.Error("expected draft prerelease profile")
	}
	if p.Notes != "Nightly build." {
		t.Errorf("expected notes 'Nightly build.', got %q", p.Notes)
	}
	if p.TagPattern != "nightly-*" {
		t.Errorf("expected tag pattern nightly-*, got %q", p.TagPattern)
	}
}

func TestLoadProfileFromBytes_Invalid(t *testing.T) {
	if _, err := LoadProfileFromBytes([]byte("{not yaml")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestSaveAndLoadProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")

	original := &model.ReleaseProfile{
		Name:          "custom",
		Description:   "Custom profile",
		Draft:         true,
		GenerateNotes: true,
		VerifyTag:     true,
		TagPattern:    "v*",
	}

	if err := SaveProfileToFile(original, path); err != nil {
		t.Fatalf("SaveProfileToFile failed: %v", err)
	}

	loaded, err := LoadProfileFromFile(path)
	if err != nil {
		t.Fatalf("LoadProfileFromFile failed: %v", err)
	}

	if loaded.Name != original.Name {
		t.Errorf("expected name %s, got %s", original.Name, loaded.Name)
	}
	if loaded.GenerateNotes != original.GenerateNotes {
		t.Error("expected generateNotes to round-trip")
	}
	if loaded.TagPattern != original.TagPattern {
		t.Errorf("expected tag pattern %q, got %q", original.TagPattern, loaded.TagPattern)
	}
}

func TestLoadProfileFromFile_Missing(t *testing.T) {
	if _, err := LoadProfileFromFile(filepath.Join(os.TempDir(), "does-not-exist.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetProfile(t *testing.T) {
	p := GetProfile("draft")
	if p == nil {
		t.Fatal("expected draft profile")
	}
	if !p.Draft {
		t.Error("expected draft profile to set Draft")
	}
	if p.Notes != model.DefaultNotes {
		t.Errorf("expected placeholder notes, got %q", p.Notes)
	}
	if !p.VerifyTag {
		t.Error("expected draft profile to verify tags")
	}

	if GetProfile("publish").Draft {
		t.Error("expected publish profile to not be draft")
	}

	if GetProfile("missing") != nil {
		t.Error("expected nil for unknown profile")
	}
}

func TestGetProfile_ReturnsCopy(t *testing.T) {
	p := GetProfile("draft")
	p.Draft = false

	if !ProfileDraft.Draft {
		t.Error("expected predefined profile to be unchanged")
	}
}
