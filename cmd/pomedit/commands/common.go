package commands

import (
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/pomedit/internal/config"
	"git.home.luguber.info/inful/pomedit/internal/etl"
	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
	"git.home.luguber.info/inful/pomedit/internal/logfields"
	"git.home.luguber.info/inful/pomedit/internal/metrics"
	"git.home.luguber.info/inful/pomedit/internal/pom"
	"git.home.luguber.info/inful/pomedit/internal/version"
)

// Global holds the state shared by all commands. It is bound into kong before parsing.
type Global struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Verbose  bool
	Request  etl.Request
	Recorder metrics.Recorder

	registry    *prom.Registry
	metricsFile string
}

// NewGlobal returns the defaults used until the configuration has been applied.
func NewGlobal(stdout, stderr io.Writer) *Global {
	return &Global{
		Stdout:   stdout,
		Stderr:   stderr,
		Logger:   slog.Default(),
		Recorder: metrics.NoopRecorder{},
	}
}

// CLI definition & global flags.
type CLI struct {
	Config        string           `short:"c" help:"Configuration file path (default: .pomedit.yaml when present)" type:"path"`
	Verbose       bool             `short:"v" help:"Enable verbose logging"`
	LineSeparator string           `name:"line-separator" help:"Line separator to write: detect, unix or system"`
	MetricsFile   string           `name:"metrics-file" help:"Write Prometheus metrics to this textfile when done" type:"path"`
	Version       kong.VersionFlag `name:"version" help:"Show version and exit"`

	Check      CheckCmd      `cmd:"" help:"Report whether a POM is written back byte for byte"`
	Deps       DepsCmd       `cmd:"" help:"List, add or remove dependencies"`
	Profiles   ProfilesCmd   `cmd:"" help:"List, add or remove profiles"`
	Modules    ModulesCmd    `cmd:"" help:"List, add or remove modules"`
	Props      PropsCmd      `cmd:"" help:"List, set or unset properties"`
	SetVersion SetVersionCmd `cmd:"" name:"set-version" help:"Set the project version"`
}

// AfterApply runs after flag parsing: it loads the configuration, lets the flags override
// it, and sets up logging and metrics.
func (c *CLI) AfterApply(g *Global) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.LineSeparator != "" {
		cfg.LineSeparator = c.LineSeparator
	}
	if c.MetricsFile != "" {
		cfg.Metrics.Textfile = c.MetricsFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Normalize()
	if g.Request, err = cfg.Request(); err != nil {
		return err
	}

	g.Verbose = c.Verbose
	g.Logger = cfg.Logging.NewLogger(g.Stderr, c.Verbose)
	if cfg.Metrics.Textfile != "" {
		g.registry = prom.NewRegistry()
		g.Recorder = metrics.NewPrometheusRecorder(g.registry)
		g.metricsFile = cfg.Metrics.Textfile
	}
	return nil
}

// Execute parses args, runs the selected command and writes the metrics textfile.
func Execute(args []string, g *Global, opts ...kong.Option) error {
	cli := &CLI{}
	parser, err := kong.New(cli, append([]kong.Option{
		kong.Name("pomedit"),
		kong.Description("Edit Maven POM files in place without disturbing their formatting."),
		kong.UsageOnError(),
		kong.Bind(g),
		kong.Vars{"version": version.String()},
	}, opts...)...)
	if err != nil {
		return errors.InternalError("build command line parser").WithCause(err).Build()
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		if classified, ok := errors.AsClassified(err); ok {
			return classified
		}
		return errors.WrapError(err, errors.CategoryValidation, "invalid command line").Build()
	}
	err = ctx.Run()
	if ferr := g.finish(); err == nil {
		err = ferr
	}
	return err
}

func (g *Global) finish() error {
	if g.registry == nil {
		return nil
	}
	return metrics.WriteTextfile(g.metricsFile, g.registry)
}

func (g *Global) newETL() *etl.ModelETL {
	return etl.NewModelETL(g.Request, etl.WithLogger(g.Logger), etl.WithRecorder(g.Recorder))
}

// read extracts path and runs fn against the model without writing anything.
func (g *Global) read(path string, fn func(*pom.Model) error) error {
	e := g.newETL()
	if err := e.Extract(path); err != nil {
		return err
	}
	return e.Transform(fn)
}

// edit extracts path, runs fn against the model and writes the result to path, to output
// when set, or to stdout when output is "-".
func (g *Global) edit(path string, out OutputFlags, fn func(*pom.Model) error) error {
	e := g.newETL()
	if err := e.Extract(path); err != nil {
		return err
	}
	if err := e.Transform(fn); err != nil {
		return err
	}
	switch out.Output {
	case "-":
		_, err := e.WriteTo(g.Stdout)
		return err
	case "":
		out.Output = path
	}
	if err := e.Load(out.Output); err != nil {
		return err
	}
	g.Logger.Info("POM written", logfields.Path(out.Output))
	return nil
}

// OutputFlags is embedded by every command that modifies a POM.
type OutputFlags struct {
	Output string `short:"o" help:"Write the result to this file instead of editing in place (- for stdout)"`
}

// section is the part of a POM that dependency, module and property commands operate on:
// the project itself or one of its profiles.
type section interface {
	Dependencies() *pom.Dependencies
	DependencyManagement() *pom.DependencyManagement
	Modules() *pom.Modules
	Properties() *pom.Properties
}

// ProfileFlags is embedded by commands that can operate inside a profile.
type ProfileFlags struct {
	Profile string `help:"Operate inside the profile with this id"`
}

func (t ProfileFlags) resolve(m *pom.Model) (section, error) {
	if t.Profile == "" {
		return m, nil
	}
	for _, p := range m.Profiles().All() {
		id, err := p.GetID()
		if err != nil {
			return nil, err
		}
		if id == t.Profile {
			return p, nil
		}
	}
	return nil, errors.NotFoundError("profile not found").
		WithContext("profile", t.Profile).
		Build()
}
