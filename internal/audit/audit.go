package audit

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"

	ferrors "git.home.luguber.info/inful/layoutsync/internal/foundation/errors"
	"git.home.luguber.info/inful/layoutsync/internal/logfields"
	"git.home.luguber.info/inful/layoutsync/internal/storage"
)

// Options tunes the completeness checks.
type Options struct {
	// ExcludeDirs are directory names skipped anywhere in the tree.
	ExcludeDirs []string
	// MinPageBytes flags smaller files, except those named in SmallPageAllow.
	MinPageBytes   int
	SmallPageAllow []string
	// MinMainText flags a <main> whose trimmed text is shorter.
	MinMainText     int
	RequiredScripts []string
	Logger          *slog.Logger
}

// PageIssues lists the completeness problems of one file.
type PageIssues struct {
	File   string   `json:"file"`
	Issues []string `json:"issues"`
}

// UniqueText is an actionable link text and the files it occurs in.
type UniqueText struct {
	Text  string   `json:"text"`
	Files []string `json:"files"`
}

// Report is the result of auditing a site.
type Report struct {
	Files       int          `json:"files"`
	Links       []Link       `json:"links"`
	Pages       []PageIssues `json:"pages"`
	UniqueTexts []UniqueText `json:"unique_texts"`
}

// Count returns the number of placeholder links of kind k.
func (r *Report) Count(k LinkKind) int {
	n := 0
	for _, l := range r.Links {
		if l.Kind == k {
			n++
		}
	}
	return n
}

// Run audits every .html file under the store root. File paths in the
// report are slash-separated and relative to the root.
func Run(ctx context.Context, store *storage.FSStore, opts Options) (*Report, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	files, err := findHTMLFiles(store.Root(), opts.ExcludeDirs)
	if err != nil {
		return nil, err
	}

	report := &Report{Files: len(files), Links: []Link{}, Pages: []PageIssues{}, UniqueTexts: []UniqueText{}}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryRuntime, "audit interrupted").Build()
		}
		content, err := store.Read(ctx, filepath.FromSlash(file))
		if err != nil {
			return nil, err
		}

		scan := scanPage(file, content)
		report.Links = append(report.Links, scan.links...)
		if issues := checkPage(file, content, scan, opts); len(issues) > 0 {
			report.Pages = append(report.Pages, PageIssues{File: file, Issues: issues})
		}
		log.Debug("Audited page", logfields.File(file), logfields.Count(len(scan.links)))
	}
	report.UniqueTexts = uniqueTexts(report.Links)
	return report, nil
}

func findHTMLFiles(root string, exclude []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && slices.Contains(exclude, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && strings.HasSuffix(d.Name(), ".html") {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to walk site directory").
			Fatal().
			WithContext("site_dir", root).
			Build()
	}
	return files, nil
}

func checkPage(file string, content []byte, scan pageScan, opts Options) []string {
	var issues []string
	text := string(content)

	if opts.MinPageBytes > 0 && len(content) < opts.MinPageBytes && !slices.Contains(opts.SmallPageAllow, filepath.Base(file)) {
		issues = append(issues, "Very small file ("+strconv.Itoa(len(content))+" bytes) - may be incomplete")
	}
	if strings.Contains(text, "Lorem ipsum") || strings.Contains(text, "TODO") || strings.Contains(text, "FIXME") ||
		(strings.Contains(text, "placeholder") && strings.Contains(text, "Coming soon")) {
		issues = append(issues, "Contains placeholder text (Lorem ipsum / TODO / Coming soon)")
	}
	if scan.hasMain && len([]rune(scan.mainText)) < opts.MinMainText {
		issues = append(issues, "Main content area is nearly empty")
	}
	if !scan.hasTitle {
		issues = append(issues, "Missing <title> tag")
	}
	for _, script := range opts.RequiredScripts {
		if !strings.Contains(text, script) {
			issues = append(issues, "Missing "+script)
		}
	}
	return issues
}

// uniqueTexts groups actionable links by text, most widespread first.
// Ties keep first-seen order.
func uniqueTexts(links []Link) []UniqueText {
	index := map[string]int{}
	out := []UniqueText{}
	for _, l := range links {
		if l.Kind != KindActionable {
			continue
		}
		i, ok := index[l.Text]
		if !ok {
			i = len(out)
			index[l.Text] = i
			out = append(out, UniqueText{Text: l.Text})
		}
		if !slices.Contains(out[i].Files, l.File) {
			out[i].Files = append(out[i].Files, l.File)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return len(out[a].Files) > len(out[b].Files)
	})
	return out
}
