package metrics

import (
	"os"
	"path/filepath"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
)

// WriteTextfile writes everything g gathers to path in the text exposition format. The file
// is replaced atomically, so a collector never reads a partial file.
func WriteTextfile(path string, g prom.Gatherer) error {
	if path == "" {
		return errors.ValidationError("metrics textfile path is empty").Build()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.FileSystemError("create metrics directory").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	if err := prom.WriteToTextfile(path, g); err != nil {
		return errors.FileSystemError("write metrics textfile").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}
