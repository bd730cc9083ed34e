package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyFile       = "file"
	KeySource     = "source"
	KeyFragment   = "fragment"
	KeySelector   = "selector"
	KeyOutcome    = "outcome"
	KeyDryRun     = "dry_run"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func File(path string) slog.Attr      { return slog.String(KeyFile, path) }
func Source(path string) slog.Attr    { return slog.String(KeySource, path) }
func Fragment(name string) slog.Attr  { return slog.String(KeyFragment, name) }
func Selector(sel string) slog.Attr   { return slog.String(KeySelector, sel) }
func Outcome(o string) slog.Attr      { return slog.String(KeyOutcome, o) }
func DryRun(v bool) slog.Attr         { return slog.Bool(KeyDryRun, v) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
