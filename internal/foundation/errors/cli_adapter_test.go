package errors

import (
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation error", err: ValidationError("bad selector").Build(), expected: 2},
		{name: "config error", err: ConfigError("bad config").Build(), expected: 7},
		{name: "git error", err: NewError(CategoryGit, "dirty worktree").Build(), expected: 8},
		{name: "filesystem error", err: FileSystemError("write failed").Build(), expected: 11},
		{name: "not found error", err: NewError(CategoryNotFound, "missing source").Build(), expected: 11},
		{name: "watch error", err: NewError(CategoryWatch, "watcher closed").Build(), expected: 12},
		{name: "internal error", err: InternalError("boom").Build(), expected: 10},
		{name: "unclassified error", err: &customError{msg: "unknown error"}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.ExitCodeFor(tt.err)
			if got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{
			name:     "internal error in non-verbose mode",
			err:      InternalError("internal issue").Build(),
			contains: "Internal error occurred (use -v for details)",
		},
		{
			name:     "config error shows message and context",
			err:      ConfigError("unknown key").WithContext("path", "layoutsync.yaml").Build(),
			contains: "Error: unknown key (path=layoutsync.yaml)",
		},
		{
			name:     "filesystem error shows category",
			err:      FileSystemError("write document failed").Build(),
			contains: "Error: filesystem: write document failed",
		},
		{
			name:     "unclassified error",
			err:      &customError{msg: "unknown error"},
			contains: "Error: unknown error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.FormatError(tt.err)
			if !strings.Contains(got, tt.contains) {
				t.Errorf("FormatError() = %q, want to contain %q", got, tt.contains)
			}
		})
	}

	if got := adapter.FormatError(nil); got != "" {
		t.Errorf("FormatError(nil) = %q, want empty string", got)
	}
}

func TestCLIErrorAdapter_VerboseShowsFullError(t *testing.T) {
	adapter := NewCLIErrorAdapter(true, nil)
	err := InternalError("internal issue").Build()

	if got := adapter.FormatError(err); got != err.Error() {
		t.Errorf("FormatError() = %q, want %q", got, err.Error())
	}
}

// customError is a test helper for unclassified errors
type customError struct {
	msg string
}

func (e *customError) Error() string {
	return e.msg
}
