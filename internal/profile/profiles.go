package profile

import (
	"github.com/grokify/releaseconductor/pkg/model"
)

// Predefined release profiles.
var (
	// ProfileDraft creates draft releases with placeholder notes for
	// existing version tags. This is the default.
	ProfileDraft = model.ReleaseProfile{
		Name:        "draft",
		Description: "Draft release with placeholder notes for an existing tag",

		Draft:         true,
		Prerelease:    false,
		GenerateNotes: false,
		Notes:         model.DefaultNotes,

		VerifyTag:  true,
		TagPattern: "v*",
	}

	// ProfilePublish creates a published release with auto-generated notes.
	ProfilePublish = model.ReleaseProfile{
		Name:        "publish",
		Description: "Published release with auto-generated notes",

		Draft:         false,
		Prerelease:    false,
		GenerateNotes: true,

		VerifyTag:  true,
		TagPattern: "v*",
	}

	// ProfilePrerelease creates a draft prerelease, tags unrestricted.
	ProfilePrerelease = model.ReleaseProfile{
		Name:        "prerelease",
		Description: "Draft prerelease with placeholder notes",

		Draft:         true,
		Prerelease:    true,
		GenerateNotes: false,
		Notes:         model.DefaultNotes,

		VerifyTag: true,
	}
)

// GetProfile returns a predefined profile by name, or nil when unknown.
func GetProfile(name string) *model.ReleaseProfile {
	switch name {
	case "draft":
		p := ProfileDraft
		return &p
	case "publish":
		p := ProfilePublish
		return &p
	case "prerelease":
		p := ProfilePrerelease
		return &p
	}
	return nil
}

// ProfileNames returns the names of all predefined profiles.
func ProfileNames() []string {
	return []string{"draft", "publish", "prerelease"}
}
