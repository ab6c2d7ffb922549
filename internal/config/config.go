// Package config loads the optional pomedit configuration file and applies the environment
// on top of it.
package config

import (
	stderrors "errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/pomedit/internal/etl"
	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
)

// DefaultFilename is read from the working directory when no path is given.
const DefaultFilename = ".pomedit.yaml"

// Config represents the application configuration.
type Config struct {
	// LineSeparator is one of detect, unix or system.
	LineSeparator string        `yaml:"line_separator"`
	Logging       LoggingConfig `yaml:"logging"`
	Metrics       MetricsConfig `yaml:"metrics"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// MetricsConfig enables the Prometheus textfile export when Textfile is set.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LineSeparator: etl.LineSeparatorDetect.String(),
		Logging: LoggingConfig{
			Level:  LogLevelInfo,
			Format: LogFormatText,
		},
	}
}

// Load reads the configuration at path. An empty path means DefaultFilename, which may be
// absent; an explicitly named file must exist. Variables from .env are loaded first, ${VAR}
// references in the file are expanded, and POMEDIT_* variables override the file.
func Load(path string) (*Config, error) {
	_ = loadEnvFile()

	explicit := path != ""
	if !explicit {
		path = DefaultFilename
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, errors.ConfigError("failed to parse configuration").
				WithCause(err).
				WithContext("path", path).
				Build()
		}
	case stderrors.Is(err, fs.ErrNotExist) && !explicit:
	case stderrors.Is(err, fs.ErrNotExist):
		return nil, errors.NotFoundError("configuration file not found").
			WithCause(err).
			WithContext("path", path).
			Build()
	default:
		return nil, errors.FileSystemError("failed to read configuration").
			WithCause(err).
			WithContext("path", path).
			Build()
	}

	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return cfg, nil
}

// Request builds the ETL request described by the configuration.
func (c *Config) Request() (etl.Request, error) {
	sep, err := etl.ParseLineSeparator(c.LineSeparator)
	if err != nil {
		return etl.Request{}, err
	}
	return etl.Request{LineSeparator: sep}, nil
}
