package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfigTemplate = `# relprep configuration

# Branches a release may be prepared on (glob patterns).
# Empty or omitted = any branch.
allow-branch = ["main"]

# Require the release commit and tag to be signed.
# relprep verifies that signing is configured (user.signingkey) but never
# creates commits or tags itself.
sign-commit = false
sign-tag = false

# Forwarded to the orchestrator's verification build.
enable-all-features = true

# Push branch and tag in a single push.
consolidate-pushes = true

# Prefix for release tags. {{tag_name}} renders as "<tag-prefix><version>".
tag-prefix = %q

# Commit message templates.
# Available placeholders:
#   {{version}}      - the version being released
#   {{prev_version}} - the previous release version (from the latest tag)
#   {{name}}         - project name (from the git origin URL)
#   {{date}}         - today's date (YYYY-MM-DD)
#   {{tag_name}}     - tag-prefix + version
pre-release-commit-message = "chore: release {{version}}"
post-release-commit-message = "chore: start next development iteration after {{version}}"

# Replacements applied in order during "relprep apply".
# search is a regular expression; replace may use $1 capture references.
# exactly pins the required match count (omit = at least one match).
#
# [[pre-release-replacements]]
# file = "CHANGELOG.md"
# search = "## \\[Unreleased\\]"
# replace = "## [Unreleased]\n\n## [{{version}}] - {{date}}"
# exactly = 1
#
# [[pre-release-replacements]]
# file = "README.md"
# search = "version = \"[a-z0-9\\.-]+\""
# replace = "version = \"{{version}}\""
`

// DefaultFileContent returns the commented default release.toml content.
func DefaultFileContent(tagPrefix string) string {
	return fmt.Sprintf(defaultConfigTemplate, tagPrefix)
}

// Init creates a default release.toml at the repository root.
// If force is true, overwrites an existing file.
// Returns the path of the created file.
func Init(repoRoot, tagPrefix string, force bool) (string, error) {
	path := filepath.Join(repoRoot, FileName)

	if !force {
		if existing := Find(repoRoot); existing != "" {
			return "", errors.New("config file already exists: " + existing)
		}
	}

	if err := os.WriteFile(path, []byte(DefaultFileContent(tagPrefix)), 0644); err != nil {
		return "", err
	}

	return path, nil
}
