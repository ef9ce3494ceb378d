package version

import (
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, valid := range []string{"major", "minor", "patch"} {
		if _, err := ParseLevel(valid); err != nil {
			t.Errorf("ParseLevel(%q) failed: %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "Major", "prerelease", "x"} {
		if _, err := ParseLevel(invalid); err == nil {
			t.Errorf("ParseLevel(%q) expected error, got nil", invalid)
		}
	}
}

func TestBump(t *testing.T) {
	tests := []struct {
		prev  string
		level Level
		want  string
	}{
		{"1.2.3", LevelPatch, "1.2.4"},
		{"1.2.3", LevelMinor, "1.3.0"},
		{"1.2.3", LevelMajor, "2.0.0"},
		{"0.0.0", LevelPatch, "0.0.1"},
		{"1.2.3-rc.1", LevelPatch, "1.2.3"}, // pre-release suffix dropped
	}

	for _, tt := range tests {
		prev, err := Parse(tt.prev)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", tt.prev, err)
		}
		if got := Bump(prev, tt.level); got.String() != tt.want {
			t.Errorf("Bump(%s, %s) = %s, want %s", tt.prev, tt.level, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	v, err := Parse("v1.2.3")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if v.String() != "1.2.3" {
		t.Errorf("Parse(v1.2.3) = %s, want 1.2.3", v)
	}

	if _, err := Parse("not-a-version"); err == nil {
		t.Error("expected error for invalid version, got nil")
	}
}

func TestLatestFromTags(t *testing.T) {
	tests := []struct {
		name   string
		tags   []string
		prefix string
		want   string // "" = nil
	}{
		{
			name:   "picks highest",
			tags:   []string{"v1.0.0", "v1.10.0", "v1.2.0"},
			prefix: "v",
			want:   "1.10.0",
		},
		{
			name:   "ignores tags without prefix",
			tags:   []string{"v1.0.0", "2.0.0", "nightly-2026"},
			prefix: "v",
			want:   "1.0.0",
		},
		{
			name:   "ignores non-semver tags with prefix",
			tags:   []string{"v1.0.0", "vnext", "v-old"},
			prefix: "v",
			want:   "1.0.0",
		},
		{
			name:   "empty prefix considers all tags",
			tags:   []string{"1.0.0", "2.1.0"},
			prefix: "",
			want:   "2.1.0",
		},
		{
			name:   "no tags",
			tags:   nil,
			prefix: "v",
			want:   "",
		},
		{
			name:   "no qualifying tags",
			tags:   []string{"release-2026", "stable"},
			prefix: "v",
			want:   "",
		},
		{
			name:   "custom prefix",
			tags:   []string{"relprep-v1.2.0", "v9.9.9"},
			prefix: "relprep-v",
			want:   "1.2.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LatestFromTags(tt.tags, tt.prefix)
			if tt.want == "" {
				if got != nil {
					t.Errorf("expected nil, got %s", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected %s, got nil", tt.want)
			}
			if got.String() != tt.want {
				t.Errorf("LatestFromTags = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestZero(t *testing.T) {
	if got := Zero().String(); got != "0.0.0" {
		t.Errorf("Zero() = %s, want 0.0.0", got)
	}
}
