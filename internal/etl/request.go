package etl

import (
	"runtime"

	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
	"git.home.luguber.info/inful/pomedit/internal/foundation/normalization"
)

// LineSeparator selects the line ending written on load.
type LineSeparator int

const (
	// LineSeparatorDetect keeps the line ending found in the extracted document.
	LineSeparatorDetect LineSeparator = iota
	// LineSeparatorUnix writes "\n".
	LineSeparatorUnix
	// LineSeparatorSystem writes the platform's native line ending.
	LineSeparatorSystem
)

func (s LineSeparator) String() string {
	switch s {
	case LineSeparatorUnix:
		return "unix"
	case LineSeparatorSystem:
		return "system"
	default:
		return "detect"
	}
}

var lineSeparators = normalization.NewNormalizer("line separator", map[string]LineSeparator{
	"detect": LineSeparatorDetect,
	"unix":   LineSeparatorUnix,
	"lf":     LineSeparatorUnix,
	"system": LineSeparatorSystem,
	"native": LineSeparatorSystem,
}, LineSeparatorDetect)

// ParseLineSeparator maps a configuration value onto a LineSeparator. The empty string
// selects LineSeparatorDetect.
func ParseLineSeparator(s string) (LineSeparator, error) {
	v, err := lineSeparators.NormalizeWithError(s)
	if err != nil {
		return LineSeparatorDetect, errors.WrapError(err, errors.CategoryValidation, "unknown line separator").
			WithContext("value", s).
			Build()
	}
	return v, nil
}

// resolve returns the literal separator to write for a document whose source used detected.
func (s LineSeparator) resolve(detected string) string {
	switch s {
	case LineSeparatorUnix:
		return "\n"
	case LineSeparatorSystem:
		if runtime.GOOS == "windows" {
			return "\r\n"
		}
		return "\n"
	default:
		if detected == "" {
			return "\n"
		}
		return detected
	}
}

// Request configures a ModelETL.
type Request struct {
	LineSeparator LineSeparator
}
