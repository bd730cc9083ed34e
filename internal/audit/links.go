package audit

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LinkKind classifies a placeholder link.
type LinkKind string

const (
	// KindActionable links need a real destination.
	KindActionable LinkKind = "actionable"
	// KindSocial links are social media icons left as "#" on purpose.
	KindSocial LinkKind = "social"
	// KindButton links are driven by script (toggles, modals, handlers).
	KindButton LinkKind = "button"
)

// Link is one placeholder anchor.
type Link struct {
	File string   `json:"file"`
	Line int      `json:"line"`
	Text string   `json:"text"`
	Kind LinkKind `json:"kind"`
}

var socialLabels = []string{"facebook", "twitter", "instagram", "linkedin", "x (twitter)", "youtube"}

var controlHints = []string{"button", "toggle", "modal", "accordion"}

// pageScan is what a single tokenizer pass learns about a document.
type pageScan struct {
	links    []Link
	hasTitle bool
	hasMain  bool
	mainText string
}

type openLink struct {
	link Link
	text strings.Builder
}

func scanPage(file string, content []byte) pageScan {
	var scan pageScan
	z := html.NewTokenizer(bytes.NewReader(content))
	line := 1

	var current *openLink
	mainDepth := 0
	var main strings.Builder

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			// io.EOF, or a read error which bytes.Reader never returns.
			break
		}
		raw := z.Raw()
		startLine := line
		line += bytes.Count(raw, []byte("\n"))

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.DataAtom {
			case atom.A:
				if current != nil {
					scan.links = append(scan.links, current.finish())
					current = nil
				}
				if href, ok := attr(tok, "href"); ok && strings.TrimSpace(href) == "#" && tt == html.StartTagToken {
					current = &openLink{link: Link{File: file, Line: startLine, Kind: classify(tok)}}
				}
			case atom.Title:
				scan.hasTitle = true
			case atom.Main:
				if tt == html.StartTagToken && (mainDepth > 0 || !scan.hasMain) {
					scan.hasMain = true
					mainDepth++
				}
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.A:
				if current != nil {
					scan.links = append(scan.links, current.finish())
					current = nil
				}
			case atom.Main:
				if mainDepth > 0 {
					mainDepth--
				}
			}
		case html.TextToken:
			text := string(z.Text())
			if current != nil {
				current.text.WriteString(text)
			}
			if mainDepth > 0 {
				main.WriteString(text)
			}
		}
	}
	if current != nil {
		scan.links = append(scan.links, current.finish())
	}
	scan.mainText = strings.TrimSpace(main.String())
	return scan
}

func (o *openLink) finish() Link {
	text := strings.Join(strings.Fields(o.text.String()), " ")
	if text == "" || text == "#" {
		text = "(empty)"
	}
	o.link.Text = text
	return o.link
}

// classify applies the social check before the control check, so a social
// icon with data attributes still counts as social.
func classify(tok html.Token) LinkKind {
	if label, ok := attr(tok, "aria-label"); ok {
		label = strings.ToLower(strings.TrimSpace(label))
		for _, s := range socialLabels {
			if strings.HasPrefix(label, s) {
				return KindSocial
			}
		}
	}
	for _, a := range tok.Attr {
		key := strings.ToLower(a.Key)
		if key == "onclick" || strings.HasPrefix(key, "data-") {
			return KindButton
		}
		if key == "class" || key == "id" || key == "role" {
			val := strings.ToLower(a.Val)
			for _, hint := range controlHints {
				if strings.Contains(val, hint) {
					return KindButton
				}
			}
		}
	}
	return KindActionable
}

func attr(tok html.Token, name string) (string, bool) {
	for _, a := range tok.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
