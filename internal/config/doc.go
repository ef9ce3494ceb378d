// Package config handles loading and validation of the release configuration.
//
// Configuration is read from release.toml (fallback: .release.toml) at the
// repository root. A missing file is not an error; defaults apply.
//
// # Key Settings
//
//   - allow-branch: glob patterns a release branch must match (empty = any)
//   - sign-commit / sign-tag: release commit/tag must be signed
//   - enable-all-features: verification flag forwarded to the build step
//   - consolidate-pushes: branch and tag should go out in a single push
//   - tag-prefix: prefix for release tags (default "v")
//   - pre-release-commit-message / post-release-commit-message: message
//     templates with {{version}}-style placeholders
//
// # Replacements
//
// Pre-release replacements are defined in [[pre-release-replacements]]
// tables and applied in order during a version bump:
//
//	[[pre-release-replacements]]
//	file = "CHANGELOG.md"
//	search = "## \\[Unreleased\\]"
//	replace = "## [Unreleased]\n\n## [{{version}}] - {{date}}"
//	exactly = 1
//
// search is a regular expression; replace may reference capture groups with
// $1 syntax. Both may contain placeholders. exactly pins the required match
// count; without it, at least one match is required.
package config
