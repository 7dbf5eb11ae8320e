package hooks

import (
	"fmt"

	"golang.org/x/text/cases"

	"github.com/hookworks/hookrun/internal/fileproc"
)

// caseConflict detects operand names that collide on case-insensitive
// filesystems. State accumulates across the path set within one
// invocation; the first spelling seen wins and later collisions are
// reported against it.
type caseConflict struct {
	folder cases.Caser
	seen   map[string]string
}

func newCaseConflict() *caseConflict {
	return &caseConflict{
		folder: cases.Fold(),
		seen:   make(map[string]string),
	}
}

func (c *caseConflict) Inspect(path string, content []byte) []fileproc.Finding {
	folded := c.folder.String(path)
	if first, ok := c.seen[folded]; ok {
		if first == path {
			return nil
		}
		return []fileproc.Finding{{
			Message: fmt.Sprintf("case-insensitive name collides with %q", first),
		}}
	}
	c.seen[folded] = path
	return nil
}
