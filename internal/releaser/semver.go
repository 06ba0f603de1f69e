package releaser

import (
	"fmt"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Version represents a semantic version.
type Version struct {
	Major      int
	Minor      int
	Patch      int
	Prerelease string
	Build      string
	Prefix     string // "v" or empty
}

// Parse parses a version string into a Version struct.
func Parse(v string) (*Version, error) {
	ver := &Version{}

	// Check for 'v' prefix
	if strings.HasPrefix(v, "v") {
		ver.Prefix = "v"
		v = strings.TrimPrefix(v, "v")
	}

	// Split on '+' for build metadata
	if idx := strings.Index(v, "+"); idx >= 0 {
		ver.Build = v[idx+1:]
		v = v[:idx]
	}

	// Split on '-' for prerelease
	if idx := strings.Index(v, "-"); idx >= 0 {
		ver.Prerelease = v[idx+1:]
		v = v[:idx]
	}

	parts := strings.Split(v, ".")
	if len(parts) < 1 {
		return nil, fmt.Errorf("invalid version format: %s", v)
	}

	var err error

	ver.Major, err = strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("invalid major version: %s", parts[0])
	}

	if len(parts) >= 2 {
		ver.Minor, err = strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("invalid minor version: %s", parts[1])
		}
	}

	if len(parts) >= 3 {
		ver.Patch, err = strconv.Atoi(parts[2])
		if err != nil {
			return nil, fmt.Errorf("invalid patch version: %s", parts[2])
		}
	}

	return ver, nil
}

// String returns the version as a string.
func (v *Version) String() string {
	s := fmt.Sprintf("%s%d.%d.%d", v.Prefix, v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// Compare compares two versions.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v *Version) Compare(other *Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}

	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}

	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}

	// Prerelease versions have lower precedence
	if v.Prerelease != "" && other.Prerelease == "" {
		return -1
	}
	if v.Prerelease == "" && other.Prerelease != "" {
		return 1
	}

	return strings.Compare(v.Prerelease, other.Prerelease)
}

// IsSemver checks if a string is a valid semver tag.
func IsSemver(s string) bool {
	pattern := `^v?\d+\.\d+\.\d+(-[a-zA-Z0-9.-]+)?(\+[a-zA-Z0-9.-]+)?$`
	matched, _ := regexp.MatchString(pattern, s)
	return matched
}

// FindLatestVersion finds the highest semver version from a list of tags.
func FindLatestVersion(tags []string) string {
	var versions []*Version

	for _, tag := range tags {
		if !IsSemver(tag) {
			continue
		}
		v, err := Parse(tag)
		if err != nil {
			continue
		}
		versions = append(versions, v)
	}

	if len(versions) == 0 {
		return ""
	}

	sort.Slice(versions, func(i, j int) bool {
		return versions[i].Compare(versions[j]) > 0
	})

	return versions[0].String()
}

// MatchTagPattern reports whether a tag name matches a glob pattern such as
// "v*". An empty pattern matches everything. This mirrors the tag filter the
// invoking automation layer applies; the creator only enforces it when asked.
func MatchTagPattern(pattern, tagName string) (bool, error) {
	if pattern == "" {
		return true, nil
	}
	matched, err := path.Match(pattern, tagName)
	if err != nil {
		return false, fmt.Errorf("invalid tag pattern %q: %w", pattern, err)
	}
	return matched, nil
}
