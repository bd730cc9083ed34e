package fragment

// Replace substitutes markup for the element selected by sel.
//
// The result is doc[:start] + markup + doc[end:] with no re-indentation or
// escaping. When the element cannot be located doc is returned unchanged;
// callers that need to know compare the result with the input.
func Replace(doc string, sel Selector, markup string) string {
	r, ok := Locate(doc, sel)
	if !ok {
		return doc
	}
	return doc[:r.Start] + markup + doc[r.End:]
}

// ReplaceFirst applies Replace with each selector in order and returns the
// first result that differs from doc. If none does, doc is returned as is.
//
// This is the id then class fallback used for navigation elements that some
// pages mark by id and others only by class.
func ReplaceFirst(doc, markup string, sels ...Selector) string {
	for _, sel := range sels {
		if out := Replace(doc, sel, markup); out != doc {
			return out
		}
	}
	return doc
}
