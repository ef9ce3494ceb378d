package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Level identifies which version component a bump increments.
type Level string

const (
	LevelMajor Level = "major"
	LevelMinor Level = "minor"
	LevelPatch Level = "patch"
)

// ParseLevel validates a bump level string.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelMajor, LevelMinor, LevelPatch:
		return Level(s), nil
	default:
		return "", fmt.Errorf("invalid level %q: must be \"major\", \"minor\", or \"patch\"", s)
	}
}

// Parse parses an explicit version string. A leading "v" is accepted.
func Parse(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return v, nil
}

// Zero returns version 0.0.0, the previous version of an untagged repo.
func Zero() *semver.Version {
	return semver.New(0, 0, 0, "", "")
}

// Bump returns the version incremented by the given level.
// Pre-release and metadata suffixes are dropped by the increment.
func Bump(prev *semver.Version, level Level) *semver.Version {
	var next semver.Version
	switch level {
	case LevelMajor:
		next = prev.IncMajor()
	case LevelMinor:
		next = prev.IncMinor()
	default:
		next = prev.IncPatch()
	}
	return &next
}

// LatestFromTags returns the highest semantic version among tags carrying
// the given prefix. Tags without the prefix or that do not parse as semver
// are ignored. Returns nil when no tag qualifies.
func LatestFromTags(tags []string, prefix string) *semver.Version {
	var latest *semver.Version
	for _, tag := range tags {
		if !strings.HasPrefix(tag, prefix) {
			continue
		}
		v, err := semver.NewVersion(strings.TrimPrefix(tag, prefix))
		if err != nil {
			continue
		}
		if latest == nil || v.GreaterThan(latest) {
			latest = v
		}
	}
	return latest
}
