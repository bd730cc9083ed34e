package layoutsync

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// StatusLine renders the one-line summary printed for a target.
func StatusLine(r Result, dryRun bool) string {
	switch r.Outcome {
	case OutcomeUpdated:
		if dryRun {
			return "Would update " + r.Path
		}
		return "Updated " + r.Path
	case OutcomeUnchanged:
		return "No changes needed for " + r.Path
	case OutcomeNotFound:
		return r.Path + " not found"
	default:
		return fmt.Sprintf("%s: %s", r.Path, r.Outcome)
	}
}

// StatusPrinter writes status lines, colored by outcome when enabled.
type StatusPrinter struct {
	w         io.Writer
	dryRun    bool
	showDiff  bool
	updated   *color.Color
	unchanged *color.Color
	notFound  *color.Color
}

// NewStatusPrinter creates a printer writing to w. Color follows
// color.NoColor unless useColor is false.
func NewStatusPrinter(w io.Writer, dryRun, showDiff, useColor bool) *StatusPrinter {
	p := &StatusPrinter{
		w:         w,
		dryRun:    dryRun,
		showDiff:  showDiff,
		updated:   color.New(color.FgGreen),
		unchanged: color.New(color.Faint),
		notFound:  color.New(color.FgYellow),
	}
	if !useColor {
		p.updated.DisableColor()
		p.unchanged.DisableColor()
		p.notFound.DisableColor()
	}
	return p
}

// Print writes the status line for r, followed by its diff when requested.
func (p *StatusPrinter) Print(r Result) {
	line := StatusLine(r, p.dryRun)
	var c *color.Color
	switch r.Outcome {
	case OutcomeUpdated:
		c = p.updated
	case OutcomeNotFound:
		c = p.notFound
	default:
		c = p.unchanged
	}
	_, _ = c.Fprintln(p.w, line)
	if p.showDiff && r.Diff != "" {
		_, _ = fmt.Fprintln(p.w, r.Diff)
	}
}
