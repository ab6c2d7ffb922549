// Package errors provides foundational, type-safe error primitives used across pomedit.
//
// This package contains classified error types and helpers for robust error handling,
// including a fluent builder API for constructing ClassifiedError values with context.
//
// Key features:
//   - ErrorCategory: Broad error classification (parse, not_found, unsupported, filesystem, etc.)
//   - ErrorSeverity: Impact level (fatal, error, warning, info)
//   - ClassifiedError: Structured error with category, severity, and context
//   - ErrorBuilder: Fluent API for creating classified errors
//   - CLI adapter for error presentation and exit codes
//
// Capability violations (operations a live wrapper or collection deliberately does not
// support) are reported as CategoryUnsupported and wrap the standard library's
// errors.ErrUnsupported, so callers can test for them with errors.Is.
//
// Example usage:
//
//	err := errors.NewError(errors.CategoryParse, "malformed document").
//		WithContext("path", pomPath).
//		WithCause(originalErr).
//		Build()
package errors
