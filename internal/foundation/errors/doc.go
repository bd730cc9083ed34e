// Package errors provides the classified error type used across layoutsync.
//
// A ClassifiedError carries a category, a severity and structured context.
// Errors are built with the fluent ErrorBuilder and mapped to exit codes by
// the CLIErrorAdapter.
//
// Example usage:
//
//	err := errors.WrapError(cause, errors.CategoryFileSystem, "write document failed").
//		WithContext("path", path).
//		Build()
package errors
