package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config file names probed at the repository root, in order.
const (
	FileName    = "release.toml"
	AltFileName = ".release.toml"
)

// DefaultTagPrefix is prepended to the version when forming tag names.
const DefaultTagPrefix = "v"

// Default commit message templates.
const (
	DefaultPreReleaseMessage  = "chore: release {{version}}"
	DefaultPostReleaseMessage = "chore: start next development iteration after {{version}}"
)

// Replacement is a single search/replace rule applied to a file during
// a version bump.
type Replacement struct {
	File    string `toml:"file"`    // path relative to the repository root
	Search  string `toml:"search"`  // regular expression, placeholders allowed
	Replace string `toml:"replace"` // replacement template, $1 references allowed
	Exactly *int   `toml:"exactly"` // required match count (nil = at least one)
}

// Config holds the release configuration
type Config struct {
	AllowBranch              []string      `toml:"allow-branch"`
	SignCommit               bool          `toml:"sign-commit"`
	SignTag                  bool          `toml:"sign-tag"`
	EnableAllFeatures        bool          `toml:"enable-all-features"`
	ConsolidatePushes        bool          `toml:"consolidate-pushes"`
	TagPrefix                string        `toml:"tag-prefix"`
	PreReleaseCommitMessage  string        `toml:"pre-release-commit-message"`
	PostReleaseCommitMessage string        `toml:"post-release-commit-message"`
	PreReleaseReplacements   []Replacement `toml:"pre-release-replacements"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		TagPrefix:                DefaultTagPrefix,
		PreReleaseCommitMessage:  DefaultPreReleaseMessage,
		PostReleaseCommitMessage: DefaultPostReleaseMessage,
	}
}

// TagName returns the tag name for a version, e.g. "v1.2.3".
func (c *Config) TagName(version string) string {
	return c.TagPrefix + version
}

// Find returns the path of the config file at the repository root,
// or "" if none exists.
func Find(repoRoot string) string {
	for _, name := range []string{FileName, AltFileName} {
		path := filepath.Join(repoRoot, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads the release configuration from the repository root.
// Returns Default() and an empty path if no config file exists.
// Returns an error only if a file exists but is invalid.
func Load(repoRoot string) (Config, string, error) {
	path := Find(repoRoot)
	if path == "" {
		return Default(), "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), "", nil
		}
		return Default(), path, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Default(), path, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, path, nil
}

// Parse decodes and validates a release configuration document.
// Defaults apply only to keys absent from the document, so an explicit
// tag-prefix = "" (unprefixed tags) is preserved.
func Parse(data []byte) (Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}

	if !md.IsDefined("tag-prefix") {
		cfg.TagPrefix = DefaultTagPrefix
	}
	if !md.IsDefined("pre-release-commit-message") {
		cfg.PreReleaseCommitMessage = DefaultPreReleaseMessage
	}
	if !md.IsDefined("post-release-commit-message") {
		cfg.PostReleaseCommitMessage = DefaultPostReleaseMessage
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}
