// Package fragment locates and replaces balanced elements in raw HTML text.
//
// No parse tree is built. An element is found by scanning for the literal
// opening tag text (`<tag`) and counting nesting depth of that tag name until
// the matching `</tag>` brings the depth back to zero. Scanning is literal and
// case-sensitive: `<nav` also matches `<navbar`, and tag-like text inside
// attribute values or comments is counted as markup. Callers rely on that
// behaviour, so it is kept as is.
//
// Lookups that fail, either because no opening tag satisfies the selector or
// because the markup never balances, report not-found instead of an error.
// Replace returns the document unchanged in that case.
package fragment
