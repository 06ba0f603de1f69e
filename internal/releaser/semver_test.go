package releaser

import (
	"testing"
)

func TestParse_Simple(t *testing.T) {
	v, err := Parse("v1.2.3")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if v.Prefix != "v" {
		t.Errorf("expected prefix v, got %q", v.Prefix)
	}
	if v.Major != 1 || v.Minor != 2 || v.Patch != 3 {
		t.Errorf("expected 1.2.3, got %d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	if v.String() != "v1.2.3" {
		t.Errorf("expected round-trip v1.2.3, got %s", v.String())
	}
}

func TestParse_PrereleaseAndBuild(t *testing.T) {
	v, err := Parse("v2.0.0-rc.1+build.5")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if v.Prerelease != "rc.1" {
		t.Errorf("expected prerelease rc.1, got %q", v.Prerelease)
	}
	if v.Build != "build.5" {
		t.Errorf("expected build build.5, got %q", v.Build)
	}
	if v.String() != "v2.0.0-rc.1+build.5" {
		t.Errorf("unexpected round-trip: %s", v.String())
	}
}

func TestParse_Invalid(t *testing.T) {
	if _, err := Parse("not-a-version"); err == nil {
		t.Error("expected error for non-numeric version")
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"v1.0.0", "v1.0.0", 0},
		{"v1.0.0", "v2.0.0", -1},
		{"v2.1.0", "v2.0.9", 1},
		{"v1.0.1", "v1.0.0", 1},
		{"v1.0.0-rc.1", "v1.0.0", -1},
		{"v1.0.0", "v1.0.0-rc.1", 1},
	}

	for _, tt := range tests {
		a, err := Parse(tt.a)
		if err != nil {
			t.Fatalf("Parse(%s) failed: %v", tt.a, err)
		}
		b, err := Parse(tt.b)
		if err != nil {
			t.Fatalf("Parse(%s) failed: %v", tt.b, err)
		}

		if got := a.Compare(b); got != tt.expected {
			t.Errorf("Compare(%s, %s) = %d, expected %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestIsSemver(t *testing.T) {
	valid := []string{"v1.2.3", "1.2.3", "v0.0.1", "v1.2.3-rc.1", "v1.2.3+meta"}
	for _, s := range valid {
		if !IsSemver(s) {
			t.Errorf("expected %q to be semver", s)
		}
	}

	invalid := []string{"", "v1.2", "release-1", "v1.2.3.4", "latest"}
	for _, s := range invalid {
		if IsSemver(s) {
			t.Errorf("expected %q to not be semver", s)
		}
	}
}

func TestFindLatestVersion(t *testing.T) {
	tags := []string{"v1.0.0", "v1.2.0", "v1.10.0", "v1.9.9", "release-candidate", "v1.10.0-rc.1"}

	latest := FindLatestVersion(tags)
	if latest != "v1.10.0" {
		t.Errorf("expected v1.10.0, got %s", latest)
	}
}

func TestFindLatestVersion_NoSemverTags(t *testing.T) {
	if latest := FindLatestVersion([]string{"latest", "stable"}); latest != "" {
		t.Errorf("expected empty result, got %s", latest)
	}
}

func TestMatchTagPattern(t *testing.T) {
	tests := []struct {
		pattern string
		tag     string
		matched bool
	}{
		{"v*", "v1.2.0", true},
		{"v*", "1.2.0", false},
		{"v*", "release-1", false},
		{"", "anything", true},
		{"v1.*", "v1.2.0", true},
		{"v1.*", "v2.0.0", false},
	}

	for _, tt := range tests {
		matched, err := MatchTagPattern(tt.pattern, tt.tag)
		if err != nil {
			t.Fatalf("MatchTagPattern(%q, %q) failed: %v", tt.pattern, tt.tag, err)
		}
		if matched != tt.matched {
			t.Errorf("MatchTagPattern(%q, %q) = %t, expected %t", tt.pattern, tt.tag, matched, tt.matched)
		}
	}
}

func TestMatchTagPattern_InvalidPattern(t *testing.T) {
	if _, err := MatchTagPattern("v[", "v1.0.0"); err == nil {
		t.Error("expected error for malformed pattern")
	}
}
