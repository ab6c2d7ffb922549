package errors

import (
	"errors"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := ParseError("malformed document").
			WithContext("path", "pom.xml").
			Build()

		if err.Category() != CategoryParse {
			t.Errorf("expected category %s, got %s", CategoryParse, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "malformed document" {
			t.Errorf("expected message 'malformed document', got %s", err.Message())
		}
		if path := err.Context()["path"]; path != "pom.xml" {
			t.Errorf("expected context path=pom.xml, got %v", path)
		}
		if got, want := err.Error(), "[parse:fatal] malformed document"; got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("Detection through wrapping", func(t *testing.T) {
		inner := NotFoundError("missing pom").Build()
		wrapped := errors.Join(errors.New("extract"), inner)

		if !HasCategory(wrapped, CategoryNotFound) {
			t.Error("expected wrapped error to keep its category")
		}
		if HasCategory(errors.New("plain"), CategoryNotFound) {
			t.Error("expected unclassified error to have no category")
		}
		if _, ok := AsClassified(errors.New("plain")); ok {
			t.Error("expected unclassified error not to be found")
		}
	})
}

func TestUnsupported(t *testing.T) {
	err := Unsupported("Dependencies.InsertAt").Build()

	if !errors.Is(err, errors.ErrUnsupported) {
		t.Error("expected capability violation to wrap errors.ErrUnsupported")
	}
	if err.Category() != CategoryUnsupported {
		t.Errorf("expected category %s, got %s", CategoryUnsupported, err.Category())
	}
	if op := err.Context()["operation"]; op != "Dependencies.InsertAt" {
		t.Errorf("expected operation context, got %v", op)
	}
	if errors.Is(ParseError("bad").Build(), errors.ErrUnsupported) {
		t.Error("parse errors are not capability violations")
	}
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Fluent API", func(t *testing.T) {
		originalErr := errors.New("disk full")
		err := WrapError(originalErr, CategoryFileSystem, "write failed").
			WithContext("path", "out.xml").
			WithContext("bytes", 42).
			Build()

		if err.Category() != CategoryFileSystem {
			t.Errorf("expected category %s, got %s", CategoryFileSystem, err.Category())
		}
		if err.Severity() != SeverityError {
			t.Errorf("expected severity %s, got %s", SeverityError, err.Severity())
		}
		if !errors.Is(err, originalErr) {
			t.Error("expected error to wrap original error")
		}
		if n := err.Context()["bytes"]; n != 42 {
			t.Errorf("expected bytes context 42, got %v", n)
		}
	})

	t.Run("Convenience constructors", func(t *testing.T) {
		tests := []struct {
			name     string
			builder  *ErrorBuilder
			category ErrorCategory
			severity ErrorSeverity
		}{
			{"ConfigError", ConfigError("test"), CategoryConfig, SeverityFatal},
			{"ValidationError", ValidationError("test"), CategoryValidation, SeverityFatal},
			{"ParseError", ParseError("test"), CategoryParse, SeverityFatal},
			{"NotFoundError", NotFoundError("test"), CategoryNotFound, SeverityError},
			{"FileSystemError", FileSystemError("test"), CategoryFileSystem, SeverityError},
			{"InternalError", InternalError("test"), CategoryInternal, SeverityFatal},
			{"Unsupported", Unsupported("test"), CategoryUnsupported, SeverityFatal},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.builder.Build()
				if err.Category() != tt.category {
					t.Errorf("expected category %s, got %s", tt.category, err.Category())
				}
				if err.Severity() != tt.severity {
					t.Errorf("expected severity %s, got %s", tt.severity, err.Severity())
				}
			})
		}
	})
}
