package fragment

import "strings"

// Range is a half-open byte range [Start, End) into a document.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Locate finds the element selected by sel.
//
// The returned range starts at the first opening tag satisfying sel and ends
// right after the `</tag>` at which the nesting depth of the tag name first
// returns to zero. ok is false when no opening tag matches or the element is
// never closed.
func Locate(doc string, sel Selector) (Range, bool) {
	if sel.Tag == "" {
		return Range{}, false
	}
	start, ok := findOpening(doc, sel)
	if !ok {
		return Range{}, false
	}
	end, ok := balance(doc, start, sel.Tag)
	if !ok {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// Extract returns the markup of the element selected by sel.
func Extract(doc string, sel Selector) (string, bool) {
	r, ok := Locate(doc, sel)
	if !ok {
		return "", false
	}
	return doc[r.Start:r.End], true
}

// ExtractFirst tries each selector in order and returns the first element found
// together with the selector that found it.
func ExtractFirst(doc string, sels ...Selector) (string, Selector, bool) {
	for _, sel := range sels {
		if markup, ok := Extract(doc, sel); ok {
			return markup, sel, true
		}
	}
	return "", Selector{}, false
}

func findOpening(doc string, sel Selector) (int, bool) {
	open := "<" + sel.Tag
	for from := 0; from < len(doc); {
		i := strings.Index(doc[from:], open)
		if i < 0 {
			return 0, false
		}
		at := from + i
		tag, ok := OpeningTag(doc, at)
		if !ok {
			// No '>' left anywhere after this point, so no later tag can close either.
			return 0, false
		}
		if sel.Matches(tag) {
			return at, true
		}
		from = at + 1
	}
	return 0, false
}

// balance scans from the opening tag at start and returns the offset just past
// the closing tag that brings the depth back to zero.
func balance(doc string, start int, tag string) (int, bool) {
	open := "<" + tag
	closing := "</" + tag + ">"
	depth := 0
	for i := start; i < len(doc); {
		lt := strings.IndexByte(doc[i:], '<')
		if lt < 0 {
			return 0, false
		}
		i += lt
		switch {
		case strings.HasPrefix(doc[i:], closing):
			depth--
			i += len(closing)
			if depth == 0 {
				return i, true
			}
		case strings.HasPrefix(doc[i:], open):
			depth++
			i += len(open)
		default:
			i++
		}
	}
	return 0, false
}
