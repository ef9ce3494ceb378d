package replace

import (
	"strings"
	"testing"
)

func TestExpand(t *testing.T) {
	rc := Context{
		Version:     "2.3.0",
		PrevVersion: "2.2.1",
		Name:        "relprep",
		Date:        "2026-08-27",
		TagName:     "v2.3.0",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"no placeholders", "plain text", "plain text"},
		{"version", "release {{version}}", "release 2.3.0"},
		{"prev version", "{{prev_version}} -> {{version}}", "2.2.1 -> 2.3.0"},
		{"name and tag", "{{name}} {{tag_name}}", "relprep v2.3.0"},
		{"date", "## [{{version}}] - {{date}}", "## [2.3.0] - 2026-08-27"},
		{"repeated placeholder", "{{version}}/{{version}}", "2.3.0/2.3.0"},
		{"single braces untouched", "a {version} b", "a {version} b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rc.Expand(tt.template)
			if err != nil {
				t.Fatalf("Expand(%q) failed: %v", tt.template, err)
			}
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestExpandUnknownPlaceholder(t *testing.T) {
	rc := Context{Version: "1.0.0"}

	_, err := rc.Expand("release {{verison}}")
	if err == nil {
		t.Fatal("expected error for unknown placeholder, got nil")
	}
	if !strings.Contains(err.Error(), "{{verison}}") {
		t.Errorf("error = %q, want it to name the placeholder", err.Error())
	}
}

func TestNewContextDate(t *testing.T) {
	rc := NewContext("1.1.0", "1.0.0", "proj", "v1.1.0")
	if len(rc.Date) != len("2006-01-02") || strings.Count(rc.Date, "-") != 2 {
		t.Errorf("Date = %q, want YYYY-MM-DD format", rc.Date)
	}
}
