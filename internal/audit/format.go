package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

const rule = "========================================"

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteText writes the human-readable report.
func WriteText(w io.Writer, r *Report) error {
	var b strings.Builder

	section(&b, `PLACEHOLDER LINKS (href="#")`)
	file := ""
	for _, l := range r.Links {
		if l.Kind != KindActionable {
			continue
		}
		if l.File != file {
			file = l.File
			fmt.Fprintf(&b, "\n%s:\n", file)
		}
		fmt.Fprintf(&b, "   Line %d: %q\n", l.Line, l.Text)
	}

	section(&b, "SUMMARY")
	fmt.Fprintf(&b, "Files scanned: %d\n", r.Files)
	fmt.Fprintf(&b, "Total href=\"#\" found: %d\n", len(r.Links))
	fmt.Fprintf(&b, "  Actionable (need real links): %d\n", r.Count(KindActionable))
	fmt.Fprintf(&b, "  Social media (OK as #): %d\n", r.Count(KindSocial))
	fmt.Fprintf(&b, "  Buttons/toggles (OK as #): %d\n", r.Count(KindButton))

	section(&b, "PAGE COMPLETENESS")
	for _, p := range r.Pages {
		fmt.Fprintf(&b, "%s:\n", p.File)
		for _, issue := range p.Issues {
			fmt.Fprintf(&b, "   %s\n", issue)
		}
		b.WriteString("\n")
	}

	section(&b, "UNIQUE ACTIONABLE LINK TEXTS")
	for _, u := range r.UniqueTexts {
		shown := u.Files
		more := ""
		if len(shown) > 3 {
			shown = shown[:3]
			more = "..."
		}
		fmt.Fprintf(&b, "%q -> found in %d file(s): %s%s\n", u.Text, len(u.Files), strings.Join(shown, ", "), more)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func section(b *strings.Builder, title string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(b, "%s\n%s\n%s\n", rule, title, rule)
}
