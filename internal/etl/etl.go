// Package etl reads a POM into a document tree, hands out the live model over it, and writes
// the tree back. Everything the model does not touch is written back byte for byte.
package etl

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
	"git.home.luguber.info/inful/pomedit/internal/logfields"
	"git.home.luguber.info/inful/pomedit/internal/metrics"
	"git.home.luguber.info/inful/pomedit/internal/pom"
	"git.home.luguber.info/inful/pomedit/internal/xmltree"
)

// State is the lifecycle position of a ModelETL.
type State int

const (
	StateIdle State = iota
	StateExtracted
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateExtracted:
		return "extracted"
	case StateLoaded:
		return "loaded"
	default:
		return "idle"
	}
}

// Option configures a ModelETL.
type Option func(*ModelETL)

// WithLogger sets the logger. The pipeline id is attached to every record.
func WithLogger(l *slog.Logger) Option {
	return func(e *ModelETL) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(e *ModelETL) {
		if r != nil {
			e.recorder = r
		}
	}
}

// ModelETL is a single-document pipeline: Extract parses a source, Model hands out live views
// over the parsed tree, and Load or WriteTo serializes it. It is not safe for concurrent use.
type ModelETL struct {
	req      Request
	id       string
	logger   *slog.Logger
	recorder metrics.Recorder

	state  State
	source string
	parsed *xmltree.Parsed
}

// NewModelETL returns an idle pipeline.
func NewModelETL(req Request, opts ...Option) *ModelETL {
	e := &ModelETL{
		req:      req,
		id:       uuid.NewString(),
		logger:   slog.Default(),
		recorder: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(logfields.ETLID(e.id))
	return e
}

// ID returns the pipeline id used in log records.
func (e *ModelETL) ID() string { return e.id }

// State returns the current lifecycle state.
func (e *ModelETL) State() State { return e.state }

// Source returns the path or name of the extracted document.
func (e *ModelETL) Source() string { return e.source }

// Charset returns the declared non-UTF-8 encoding of the source, "" for UTF-8.
func (e *ModelETL) Charset() string {
	if e.parsed == nil {
		return ""
	}
	return e.parsed.Charset
}

// LineSeparator returns the line ending Load will write. It is "" while idle.
func (e *ModelETL) LineSeparator() string {
	if e.parsed == nil {
		return ""
	}
	return e.req.LineSeparator.resolve(e.parsed.Newline)
}

// Extract reads and parses the document at path.
func (e *ModelETL) Extract(path string) error {
	if err := e.expect("Extract", StateIdle); err != nil {
		return err
	}
	start := time.Now()
	content, err := os.ReadFile(path)
	if err != nil {
		err = readError(path, err)
		e.observe(metrics.StageExtract, start, err, logfields.Path(path))
		return err
	}
	return e.extract(path, content, start)
}

// ExtractBytes parses content. name identifies the document in logs and errors.
func (e *ModelETL) ExtractBytes(name string, content []byte) error {
	if err := e.expect("ExtractBytes", StateIdle); err != nil {
		return err
	}
	return e.extract(name, content, time.Now())
}

func (e *ModelETL) extract(name string, content []byte, start time.Time) error {
	parsed, err := xmltree.Parse(content)
	if err != nil {
		err = parseError(name, err)
		e.observe(metrics.StageExtract, start, err, logfields.Path(name))
		return err
	}
	e.parsed = parsed
	e.source = name
	e.state = StateExtracted
	e.observe(metrics.StageExtract, start, nil,
		logfields.Path(name),
		logfields.LineSeparator(lineSeparatorName(parsed.Newline)),
		logfields.Charset(parsed.Charset))
	return nil
}

// Model returns a new live model over the extracted tree. Edits made through any model
// returned by the same pipeline are visible to all of them.
func (e *ModelETL) Model() (*pom.Model, error) {
	if err := e.expect("Model", StateExtracted, StateLoaded); err != nil {
		return nil, err
	}
	return pom.NewModel(e.parsed.Root(), pom.WithEditObserver(e.edited)), nil
}

// Transform runs fn against the live model.
func (e *ModelETL) Transform(fn func(*pom.Model) error) error {
	m, err := e.Model()
	if err != nil {
		return err
	}
	return fn(m)
}

// Bytes serializes the current tree.
func (e *ModelETL) Bytes() ([]byte, error) {
	if err := e.expect("Bytes", StateExtracted, StateLoaded); err != nil {
		return nil, err
	}
	return e.serialize()
}

// WriteTo serializes the current tree into w.
func (e *ModelETL) WriteTo(w io.Writer) (int64, error) {
	if err := e.expect("WriteTo", StateExtracted, StateLoaded); err != nil {
		return 0, err
	}
	start := time.Now()
	out, err := e.serialize()
	if err != nil {
		e.observe(metrics.StageLoad, start, err)
		return 0, err
	}
	n, err := io.Copy(w, bytes.NewReader(out))
	if err != nil {
		err = errors.FileSystemError("write document").WithCause(err).Build()
	} else {
		e.state = StateLoaded
	}
	e.observe(metrics.StageLoad, start, err, logfields.Count(int(n)))
	return n, err
}

// Load serializes the current tree to path. An existing file keeps its permissions.
func (e *ModelETL) Load(path string) error {
	if err := e.expect("Load", StateExtracted, StateLoaded); err != nil {
		return err
	}
	start := time.Now()
	out, err := e.serialize()
	if err == nil {
		err = writeFile(path, out)
	}
	if err == nil {
		e.state = StateLoaded
	}
	e.observe(metrics.StageLoad, start, err, logfields.Path(path), logfields.Count(len(out)))
	return err
}

// Reset drops the extracted document and returns the pipeline to idle.
func (e *ModelETL) Reset() {
	e.parsed = nil
	e.source = ""
	e.state = StateIdle
}

func (e *ModelETL) serialize() ([]byte, error) {
	out, err := e.parsed.Serialize(e.LineSeparator())
	if err != nil {
		return nil, errors.ValidationError("document cannot be encoded in its source charset").
			WithCause(err).
			WithContext("charset", e.parsed.Charset).
			Build()
	}
	return out, nil
}

func (e *ModelETL) expect(op string, states ...State) error {
	for _, s := range states {
		if e.state == s {
			return nil
		}
	}
	return errors.ValidationError("operation not allowed in current state").
		WithContext("operation", op).
		WithContext("state", e.state.String()).
		Build()
}

func (e *ModelETL) edited(collection, operation string) {
	e.recorder.IncEdit(collection, operation)
	e.logger.Debug("Collection edited", logfields.Collection(collection), logfields.Operation(operation))
}

func (e *ModelETL) observe(stage string, start time.Time, err error, attrs ...slog.Attr) {
	d := time.Since(start)
	e.recorder.ObserveStageDuration(stage, d)
	e.recorder.IncStageResult(stage, metrics.Result(err))

	attrs = append(attrs, logfields.Stage(stage), logfields.Duration(d))
	if err != nil {
		e.logger.LogAttrs(context.Background(), slog.LevelWarn, "Stage failed", append(attrs, logfields.Error(err))...)
		return
	}
	e.logger.LogAttrs(context.Background(), slog.LevelDebug, "Stage completed", attrs...)
}

func readError(path string, err error) error {
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.NotFoundError("document not found").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return errors.FileSystemError("read document").
		WithCause(err).
		WithContext("path", path).
		Build()
}

func parseError(name string, err error) error {
	msg := "malformed XML"
	if stderrors.Is(err, xmltree.ErrNoRoot) {
		msg = "document has no root element"
	}
	return errors.ParseError(msg).
		WithCause(err).
		WithContext("path", name).
		Build()
}

func writeFile(path string, content []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, content, mode); err != nil {
		return errors.FileSystemError("write document").
			WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}

func lineSeparatorName(newline string) string {
	if newline == "\r\n" {
		return "crlf"
	}
	return "lf"
}
