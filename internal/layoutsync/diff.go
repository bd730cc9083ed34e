package layoutsync

import (
	"strings"

	"github.com/google/go-cmp/cmp"
)

// lineDiff returns a line-oriented (-before +after) diff, or "" when equal.
func lineDiff(before, after string) string {
	if before == after {
		return ""
	}
	return cmp.Diff(strings.Split(before, "\n"), strings.Split(after, "\n"))
}
