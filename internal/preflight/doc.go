// Package preflight verifies that a release can be prepared.
//
// Checks cover the release configuration itself (parseable, patterns
// compile, templates render), the repository state (allowed branch, clean
// worktree), the signing setup when sign-commit/sign-tag are enabled, and
// the replacement rules (every search pattern matches its target file the
// expected number of times for the upcoming version).
//
// Checks never mutate anything; git is only queried.
package preflight
