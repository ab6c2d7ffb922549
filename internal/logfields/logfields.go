package logfields

import (
	"log/slog"
	"time"
)

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath          = "path"
	KeyETLID         = "etl_id"
	KeyStage         = "stage"
	KeyLineSeparator = "line_separator"
	KeyCharset       = "charset"
	KeyCollection    = "collection"
	KeyOperation     = "operation"
	KeyCount         = "count"
	KeyDurationMS    = "duration_ms"
	KeyError         = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func ETLID(id string) slog.Attr        { return slog.String(KeyETLID, id) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func LineSeparator(s string) slog.Attr { return slog.String(KeyLineSeparator, s) }
func Charset(c string) slog.Attr       { return slog.String(KeyCharset, c) }
func Collection(name string) slog.Attr { return slog.String(KeyCollection, name) }
func Operation(op string) slog.Attr    { return slog.String(KeyOperation, op) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Duration(d time.Duration) slog.Attr {
	return slog.Float64(KeyDurationMS, float64(d.Microseconds())/1000)
}
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
