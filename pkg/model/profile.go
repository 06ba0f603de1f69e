package model

// ReleaseProfile defines reusable defaults for creating releases.
type ReleaseProfile struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	// Release attributes
	Draft         bool   `json:"draft" yaml:"draft"`
	Prerelease    bool   `json:"prerelease" yaml:"prerelease"`
	GenerateNotes bool   `json:"generateNotes" yaml:"generateNotes"`
	Notes         string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// VerifyTag requires the tag to exist before the release is created.
	VerifyTag bool `json:"verifyTag" yaml:"verifyTag"`

	// TagPattern is an optional glob the tag must match, e.g. "v*".
	TagPattern string `json:"tagPattern,omitempty" yaml:"tagPattern,omitempty"`
}
