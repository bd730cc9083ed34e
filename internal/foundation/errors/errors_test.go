package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryConfig, "invalid configuration").
			WithSeverity(SeverityFatal).
			WithContext("file", "layoutsync.yaml").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid configuration" {
			t.Errorf("expected message 'invalid configuration', got %s", err.Message())
		}

		file, exists := err.Context().GetString("file")
		if !exists || file != "layoutsync.yaml" {
			t.Errorf("expected context file=layoutsync.yaml, got %v", file)
		}
	})

	t.Run("Error detection", func(t *testing.T) {
		err := ConfigError("test error").Build()

		if !IsClassified(err) {
			t.Error("expected error to be classified")
		}
		if !HasCategory(err, CategoryConfig) {
			t.Error("expected error to have config category")
		}
		if !err.IsFatal() {
			t.Error("expected config error to be fatal")
		}
	})

	t.Run("Detection through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("sync: %w", FileSystemError("write failed").Build())

		if GetCategory(err) != CategoryFileSystem {
			t.Errorf("expected filesystem category, got %s", GetCategory(err))
		}
		if GetSeverity(err) != SeverityFatal {
			t.Errorf("expected fatal severity, got %s", GetSeverity(err))
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	originalErr := errors.New("permission denied")
	err := WrapError(originalErr, CategoryFileSystem, "write document failed").
		Warning().
		WithContext("path", "press.html").
		Build()

	if err.Severity() != SeverityWarning {
		t.Errorf("expected severity %s, got %s", SeverityWarning, err.Severity())
	}
	if !errors.Is(err, originalErr) {
		t.Error("expected error to wrap original error")
	}
	if err.Cause() != originalErr {
		t.Error("expected cause to be the original error")
	}
	want := "[filesystem:warning] write document failed: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestClassifiedError_WithContextDoesNotMutate(t *testing.T) {
	base := NewError(CategoryFileSystem, "read failed").WithContext("path", "a.html").Build()
	derived := base.WithContext("path", "b.html")

	if got, _ := base.Context().GetString("path"); got != "a.html" {
		t.Errorf("base context mutated: %s", got)
	}
	if got, _ := derived.Context().GetString("path"); got != "b.html" {
		t.Errorf("derived context = %s, want b.html", got)
	}
	if !errors.Is(derived, base) {
		t.Error("expected derived error to match base by category and message")
	}
}

func TestDefaultsForUnclassified(t *testing.T) {
	err := errors.New("plain")
	if IsClassified(err) {
		t.Error("plain error must not be classified")
	}
	if GetCategory(err) != CategoryInternal {
		t.Errorf("expected internal category, got %s", GetCategory(err))
	}
	if GetSeverity(err) != SeverityError {
		t.Errorf("expected error severity, got %s", GetSeverity(err))
	}
}
