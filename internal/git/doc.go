// Package git provides read-only git queries via shell commands.
//
// All operations use [os/exec.Command] to call the git CLI directly rather
// than using Go git libraries. This approach is simpler, more reliable, and
// ensures compatibility with user configurations (SSH keys, signing setup,
// aliases).
//
// relprep never mutates a repository: no commits, tags, or pushes happen
// here. The queries exist so preflight checks can verify that the release
// configuration can be honored:
//
//   - [CurrentBranch], [IsDirty]: working tree state
//   - [Tags]: existing tags, for determining the previous release version
//   - [ConfigValue]: signing configuration lookups
//   - [TopLevel]: repository discovery
//   - [RepoName]: project name from the origin remote
package git
