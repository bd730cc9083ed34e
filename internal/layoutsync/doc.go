// Package layoutsync propagates shared layout fragments from a canonical HTML
// document into a set of target documents.
//
// A run extracts each configured fragment from the source once, then for every
// target in order replaces the matching elements, merges the body class list,
// and writes the document back only when its content changed. Targets that do
// not exist are reported and skipped. A storage or guard failure stops the
// run; documents written before the failure stay written.
package layoutsync
