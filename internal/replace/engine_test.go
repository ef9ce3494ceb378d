package replace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/relprep/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func intPtr(n int) *int { return &n }

func testContext() Context {
	return Context{
		Version:     "2.0.0",
		PrevVersion: "1.4.2",
		Name:        "proj",
		Date:        "2026-08-27",
		TagName:     "v2.0.0",
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "current version: 1.4.2\n")

	rules := []config.Replacement{
		{File: "README.md", Search: `version: {{prev_version}}`, Replace: "version: {{version}}", Exactly: intPtr(1)},
	}

	changes, err := Run(dir, rules, testContext())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}

	c := changes[0]
	if c.New != "current version: 2.0.0\n" {
		t.Errorf("New = %q, want updated version", c.New)
	}
	if c.Matches != 1 {
		t.Errorf("Matches = %d, want 1", c.Matches)
	}
	if !c.Modified() {
		t.Error("expected Modified() = true")
	}

	// Run must not write anything
	data, err := os.ReadFile(filepath.Join(dir, "README.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "current version: 1.4.2\n" {
		t.Errorf("Run modified the file on disk: %q", string(data))
	}
}

func TestRunSequentialRulesOnSameFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "CHANGELOG.md", "# Changelog\n\n## [Unreleased]\n")

	rules := []config.Replacement{
		{
			File:    "CHANGELOG.md",
			Search:  `## \[Unreleased\]`,
			Replace: "## [Unreleased]\n\n## [{{version}}] - {{date}}",
			Exactly: intPtr(1),
		},
		{
			// Sees the output of the previous rule: two headings now.
			File:    "CHANGELOG.md",
			Search:  `## \[`,
			Replace: "## [",
			Exactly: intPtr(2),
		},
	}

	changes, err := Run(dir, rules, testContext())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("expected 1 change for 1 file, got %d", len(changes))
	}
	if want := "## [2.0.0] - 2026-08-27"; !strings.Contains(changes[0].New, want) {
		t.Errorf("New missing %q:\n%s", want, changes[0].New)
	}
	if changes[0].Matches != 3 {
		t.Errorf("Matches = %d, want 3 (1 + 2)", changes[0].Matches)
	}
}

func TestRunCaptureReferences(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "install.md", "pip install proj==1.4.2 # stays\n")

	rules := []config.Replacement{
		{File: "install.md", Search: `(proj)==[0-9.]+`, Replace: "$1=={{version}}"},
	}

	changes, err := Run(dir, rules, testContext())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if want := "pip install proj==2.0.0 # stays\n"; changes[0].New != want {
		t.Errorf("New = %q, want %q", changes[0].New, want)
	}
}

func TestRunExactlyMismatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "v1 v1 v1\n")

	rules := []config.Replacement{
		{File: "README.md", Search: `v1`, Replace: "v2", Exactly: intPtr(2)},
	}

	_, err := Run(dir, rules, testContext())
	if err == nil {
		t.Fatal("expected error for exactly mismatch, got nil")
	}
	if !strings.Contains(err.Error(), "matched 3 times") || !strings.Contains(err.Error(), "expected exactly 2") {
		t.Errorf("error = %q, want match count details", err.Error())
	}
}

func TestRunNoMatches(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "nothing to see\n")

	rules := []config.Replacement{
		{File: "README.md", Search: `version = "[0-9.]+"`, Replace: `version = "{{version}}"`},
	}

	_, err := Run(dir, rules, testContext())
	if err == nil {
		t.Fatal("expected error for zero matches, got nil")
	}
	if !strings.Contains(err.Error(), "matched nothing") {
		t.Errorf("error = %q, want 'matched nothing'", err.Error())
	}
}

func TestRunMissingFile(t *testing.T) {
	dir := t.TempDir()

	rules := []config.Replacement{
		{File: "missing.md", Search: `x`, Replace: "y"},
	}

	if _, err := Run(dir, rules, testContext()); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestRunInvalidPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.md", "x\n")

	rules := []config.Replacement{
		{File: "README.md", Search: `[unclosed`, Replace: "y"},
	}

	_, err := Run(dir, rules, testContext())
	if err == nil {
		t.Fatal("expected error for invalid pattern, got nil")
	}
	if !strings.Contains(err.Error(), "invalid search pattern") {
		t.Errorf("error = %q, want 'invalid search pattern'", err.Error())
	}
}

func TestApply(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "README.md", "version 1.4.2\n")

	rules := []config.Replacement{
		{File: "README.md", Search: `1\.4\.2`, Replace: "{{version}}", Exactly: intPtr(1)},
	}

	changes, err := Run(dir, rules, testContext())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if err := Apply(changes); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "version 2.0.0\n" {
		t.Errorf("file content = %q, want updated version", string(data))
	}
}

func TestDiff(t *testing.T) {
	c := Change{
		File: "README.md",
		Old:  "version 1.4.2\n",
		New:  "version 2.0.0\n",
	}
	diff := Diff(&c)
	if !strings.Contains(diff, "-version 1.4.2") || !strings.Contains(diff, "+version 2.0.0") {
		t.Errorf("diff missing expected lines:\n%s", diff)
	}

	unchanged := Change{File: "README.md", Old: "same\n", New: "same\n"}
	if got := Diff(&unchanged); got != "" {
		t.Errorf("expected empty diff for unchanged file, got %q", got)
	}
}
