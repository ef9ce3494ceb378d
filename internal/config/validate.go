package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate performs structural validation of the configuration.
// Regex compilation and placeholder expansion are checked by the replace
// package, which owns that syntax.
func (c *Config) Validate() error {
	for i, pat := range c.AllowBranch {
		if pat == "" {
			return fmt.Errorf("invalid allow-branch[%d]: pattern cannot be empty", i)
		}
		if _, err := filepath.Match(pat, ""); err != nil {
			return fmt.Errorf("invalid allow-branch[%d] %q: %w", i, pat, err)
		}
	}

	for i, r := range c.PreReleaseReplacements {
		if r.File == "" {
			return fmt.Errorf("invalid pre-release-replacements[%d]: file cannot be empty", i)
		}
		if filepath.IsAbs(r.File) || strings.HasPrefix(r.File, "..") {
			return fmt.Errorf("invalid pre-release-replacements[%d]: file %q must be relative to the repository root", i, r.File)
		}
		if r.Search == "" {
			return fmt.Errorf("invalid pre-release-replacements[%d] (%s): search cannot be empty", i, r.File)
		}
		if r.Exactly != nil && *r.Exactly < 1 {
			return fmt.Errorf("invalid pre-release-replacements[%d] (%s): exactly must be at least 1, got %d", i, r.File, *r.Exactly)
		}
	}

	return nil
}

// BranchAllowed reports whether branch matches the allow-branch patterns.
// An empty allowlist permits any branch. Patterns use filepath.Match glob
// syntax; "*" does not cross "/" so "release/*" matches "release/1.x" but
// not "release/1.x/hotfix".
func (c *Config) BranchAllowed(branch string) bool {
	if len(c.AllowBranch) == 0 {
		return true
	}
	for _, pat := range c.AllowBranch {
		if ok, err := filepath.Match(pat, branch); err == nil && ok {
			return true
		}
	}
	return false
}
