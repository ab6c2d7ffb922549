package config

import (
	"git.home.luguber.info/inful/pomedit/internal/etl"
	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
)

// Validate rejects values that do not name a known option.
func (c *Config) Validate() error {
	if _, err := etl.ParseLineSeparator(c.LineSeparator); err != nil {
		return invalid("line_separator", c.LineSeparator, err)
	}
	if _, err := logLevelNormalizer.NormalizeWithError(string(c.Logging.Level)); err != nil {
		return invalid("logging.level", string(c.Logging.Level), err)
	}
	if _, err := logFormatNormalizer.NormalizeWithError(string(c.Logging.Format)); err != nil {
		return invalid("logging.format", string(c.Logging.Format), err)
	}
	return nil
}

// Normalize rewrites enumerations to their canonical spelling. Call it after Validate.
func (c *Config) Normalize() {
	if sep, err := etl.ParseLineSeparator(c.LineSeparator); err == nil {
		c.LineSeparator = sep.String()
	}
	c.Logging.Level = NormalizeLogLevel(string(c.Logging.Level))
	c.Logging.Format = NormalizeLogFormat(string(c.Logging.Format))
}

func invalid(field, value string, cause error) error {
	return errors.ConfigError("invalid configuration value").
		WithCause(cause).
		WithContext("field", field).
		WithContext("value", value).
		Build()
}
