package replace

import (
	"github.com/aymanbagabas/go-udiff"
)

// Diff returns a unified diff of the change for dry-run output.
// Returns "" when the file content is unchanged.
func Diff(c *Change) string {
	if !c.Modified() {
		return ""
	}
	return udiff.Unified("a/"+c.File, "b/"+c.File, c.Old, c.New)
}
