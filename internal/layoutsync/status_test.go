package layoutsync

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "Updated press.html", StatusLine(Result{Path: "press.html", Outcome: OutcomeUpdated}, false))
	assert.Equal(t, "Would update press.html", StatusLine(Result{Path: "press.html", Outcome: OutcomeUpdated}, true))
	assert.Equal(t, "No changes needed for press.html", StatusLine(Result{Path: "press.html", Outcome: OutcomeUnchanged}, false))
	assert.Equal(t, "cookies.html not found", StatusLine(Result{Path: "cookies.html", Outcome: OutcomeNotFound}, false))
}

func TestStatusPrinter_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewStatusPrinter(&buf, true, true, false)

	p.Print(Result{Path: "a.html", Outcome: OutcomeUpdated, Diff: "-old\n+new"})
	p.Print(Result{Path: "b.html", Outcome: OutcomeNotFound})

	assert.Equal(t, "Would update a.html\n-old\n+new\nb.html not found\n", buf.String())
}

func TestLineDiff(t *testing.T) {
	assert.Empty(t, lineDiff("a\nb", "a\nb"))
	d := lineDiff("a\nold", "a\nnew")
	assert.Contains(t, d, "old")
	assert.Contains(t, d, "new")
}
