//go:build integration

package main

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/raphi011/relprep/internal/log"
	"github.com/raphi011/relprep/internal/output"
)

// testContext returns a context with logger and printer wired to the test log.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx := log.WithLogger(context.Background(), log.New(testWriter{t}, true, false))
	return output.WithPrinter(ctx, testWriter{t})
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

// runGitCommand runs a git command in dir, failing the test on error.
func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run %v: %v\n%s", args, err, out)
	}
	return string(out)
}

// setupTestRepo creates a git repo with an initial commit and a v1.0.0 tag.
// Returns the absolute path to the created repo (with symlinks resolved).
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}

	runGitCommand(t, dir, "git", "init", "-b", "main")
	runGitCommand(t, dir, "git", "config", "user.email", "test@test.com")
	runGitCommand(t, dir, "git", "config", "user.name", "Test User")
	runGitCommand(t, dir, "git", "config", "commit.gpgsign", "false")

	writeTestFile(t, dir, "README.md", "# proj\n\ncurrent release: 1.0.0\n")
	runGitCommand(t, dir, "git", "add", "README.md")
	runGitCommand(t, dir, "git", "commit", "-m", "Initial commit")
	runGitCommand(t, dir, "git", "tag", "v1.0.0")

	return dir
}

// writeTestFile writes a file under dir.
func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

// commitAll stages and commits everything in the repo.
func commitAll(t *testing.T, dir, message string) {
	t.Helper()
	runGitCommand(t, dir, "git", "add", "-A")
	runGitCommand(t, dir, "git", "commit", "-m", message)
}
