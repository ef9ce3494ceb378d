package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// CurrentBranch returns the current branch name.
// Returns "(detached)" for detached HEAD state.
func CurrentBranch(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %v", err)
	}
	branch := strings.TrimSpace(string(output))
	if branch == "" {
		return "(detached)", nil
	}
	return branch, nil
}

// IsDirty returns true if the worktree has uncommitted changes or untracked files
func IsDirty(ctx context.Context, path string) bool {
	output, err := outputGit(ctx, path, "status", "--porcelain")
	if err != nil {
		return false // Treat error as clean (safe default)
	}
	return strings.TrimSpace(string(output)) != ""
}

// TopLevel returns the root directory of the repository containing path
func TopLevel(ctx context.Context, path string) (string, error) {
	output, err := outputGit(ctx, path, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %v", err)
	}
	return strings.TrimSpace(string(output)), nil
}

// Tags returns all tag names in the repository
func Tags(ctx context.Context, path string) ([]string, error) {
	output, err := outputGit(ctx, path, "tag", "--list")
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %v", err)
	}
	return splitLines(string(output)), nil
}

// ConfigValue returns the value of a git config key (e.g., "user.signingkey").
// Returns "" without error when the key is unset.
func ConfigValue(ctx context.Context, path, key string) (string, error) {
	output, err := outputGit(ctx, path, "config", "--get", key)
	if err != nil {
		// git config --get exits 1 when the key is unset, with empty stderr.
		if strings.TrimSpace(err.Error()) == "exit status 1" {
			return "", nil
		}
		return "", fmt.Errorf("failed to read git config %s: %v", key, err)
	}
	return strings.TrimSpace(string(output)), nil
}

// RepoName extracts the repository name from the origin URL of the repo at
// the given path, falling back to the folder name when there is no origin.
func RepoName(ctx context.Context, repoPath string) string {
	output, err := outputGit(ctx, repoPath, "remote", "get-url", "origin")
	if err != nil {
		return filepath.Base(repoPath)
	}

	url := strings.TrimSpace(string(output))
	url = strings.TrimSuffix(url, ".git")
	parts := strings.Split(url, "/")
	name := parts[len(parts)-1]
	if name == "" {
		return filepath.Base(repoPath)
	}
	return name
}

// splitLines splits command output into trimmed, non-empty lines
func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
