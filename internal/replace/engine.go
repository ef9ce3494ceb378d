package replace

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/renameio/v2"

	"github.com/raphi011/relprep/internal/config"
)

// Change records the cumulative effect of all rules on one file.
type Change struct {
	File    string      // path relative to the repository root
	Path    string      // absolute path
	Old     string      // content before any rule ran
	New     string      // content after all rules ran
	Matches int         // total matches across rules targeting this file
	mode    fs.FileMode // original file mode, preserved on write
}

// Modified reports whether the file content actually changed.
func (c *Change) Modified() bool {
	return c.Old != c.New
}

// Run evaluates all rules against the files under root without writing.
// It returns one Change per distinct target file, in first-touched order.
// A rule whose match count violates its exactly constraint (or that matches
// nothing when exactly is unset) fails the whole run.
func Run(root string, rules []config.Replacement, rc Context) ([]Change, error) {
	byFile := make(map[string]*Change)
	var order []string

	for i, rule := range rules {
		search, err := rc.Expand(rule.Search)
		if err != nil {
			return nil, fmt.Errorf("pre-release-replacements[%d] (%s): search: %w", i, rule.File, err)
		}
		re, err := regexp.Compile(search)
		if err != nil {
			return nil, fmt.Errorf("pre-release-replacements[%d] (%s): invalid search pattern: %w", i, rule.File, err)
		}
		replacement, err := rc.Expand(rule.Replace)
		if err != nil {
			return nil, fmt.Errorf("pre-release-replacements[%d] (%s): replace: %w", i, rule.File, err)
		}

		change, ok := byFile[rule.File]
		if !ok {
			path := filepath.Join(root, rule.File)
			info, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("pre-release-replacements[%d]: %w", i, err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("pre-release-replacements[%d]: %w", i, err)
			}
			change = &Change{
				File: rule.File,
				Path: path,
				Old:  string(data),
				New:  string(data),
				mode: info.Mode().Perm(),
			}
			byFile[rule.File] = change
			order = append(order, rule.File)
		}

		count := len(re.FindAllStringIndex(change.New, -1))
		if rule.Exactly != nil {
			if count != *rule.Exactly {
				return nil, fmt.Errorf("pre-release-replacements[%d]: %q matched %d times in %s, expected exactly %d",
					i, search, count, rule.File, *rule.Exactly)
			}
		} else if count == 0 {
			return nil, fmt.Errorf("pre-release-replacements[%d]: %q matched nothing in %s", i, search, rule.File)
		}

		change.New = re.ReplaceAllString(change.New, replacement)
		change.Matches += count
	}

	changes := make([]Change, 0, len(order))
	for _, file := range order {
		changes = append(changes, *byFile[file])
	}
	return changes, nil
}

// Apply writes the changed files atomically, preserving file modes.
// Files whose content did not change are left untouched.
func Apply(changes []Change) error {
	for i := range changes {
		c := &changes[i]
		if !c.Modified() {
			continue
		}
		if err := renameio.WriteFile(c.Path, []byte(c.New), c.mode); err != nil {
			return fmt.Errorf("write %s: %w", c.File, err)
		}
	}
	return nil
}
