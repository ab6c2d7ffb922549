package errors

import (
	"errors"
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
		{name: "validation", err: ValidationError("invalid input").Build(), expected: 2},
		{name: "parse", err: ParseError("malformed").Build(), expected: 3},
		{name: "not found", err: NotFoundError("missing").Build(), expected: 4},
		{name: "unsupported", err: Unsupported("Profiles.Set").Build(), expected: 6},
		{name: "config", err: ConfigError("bad config").Build(), expected: 7},
		{name: "internal", err: InternalError("boom").Build(), expected: 10},
		{name: "filesystem", err: FileSystemError("write failed").Build(), expected: 11},
		{name: "unclassified error", err: errors.New("unknown error"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := adapter.ExitCodeFor(tt.err); got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	quiet := NewCLIErrorAdapter(false, nil)
	verbose := NewCLIErrorAdapter(true, nil)

	parse := ParseError("malformed").Build()
	if got := quiet.FormatError(parse); !strings.Contains(got, "malformed") {
		t.Errorf("expected user-facing errors to be shown, got %q", got)
	}

	internal := InternalError("secret detail").Build()
	if got := quiet.FormatError(internal); strings.Contains(got, "secret detail") {
		t.Errorf("expected internal details to be hidden without -v, got %q", got)
	}
	if got := verbose.FormatError(internal); !strings.Contains(got, "secret detail") {
		t.Errorf("expected internal details with -v, got %q", got)
	}
	if got := quiet.FormatError(nil); got != "" {
		t.Errorf("expected empty string for nil error, got %q", got)
	}
}
