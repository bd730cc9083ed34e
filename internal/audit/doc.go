// Package audit reports placeholder links and incomplete pages across a
// static site.
//
// Every <a href="#"> is listed with its line and text and classified as a
// social icon, a script-driven control, or an actionable link that still
// needs a real destination. Pages are also checked for signs of unfinished
// content: a tiny file, placeholder text, a nearly empty <main>, a missing
// <title>, or missing required scripts.
package audit
