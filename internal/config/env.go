package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override the configuration file.
const (
	EnvLineSeparator = "POMEDIT_LINE_SEPARATOR"
	EnvLogLevel      = "POMEDIT_LOG_LEVEL"
	EnvLogFormat     = "POMEDIT_LOG_FORMAT"
	EnvMetricsFile   = "POMEDIT_METRICS_FILE"
)

var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads the first of .env and .env.local that exists. Variables already set in
// the process environment are not overwritten. It returns the loaded file name.
func loadEnvFile() string {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err == nil {
			return name
		}
	}
	return ""
}

func applyEnvOverrides(cfg *Config) {
	override := func(key string, apply func(string)) {
		if v := os.Getenv(key); v != "" {
			apply(v)
		}
	}
	override(EnvLineSeparator, func(v string) { cfg.LineSeparator = v })
	override(EnvLogLevel, func(v string) { cfg.Logging.Level = LogLevel(v) })
	override(EnvLogFormat, func(v string) { cfg.Logging.Format = LogFormat(v) })
	override(EnvMetricsFile, func(v string) { cfg.Metrics.Textfile = v })
}
