package commands

import (
	"fmt"

	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
	"git.home.luguber.info/inful/pomedit/internal/model"
	"git.home.luguber.info/inful/pomedit/internal/pom"
)

// DepsCmd groups the dependency commands.
type DepsCmd struct {
	List   DepsListCmd   `cmd:"" help:"List dependencies"`
	Add    DepsAddCmd    `cmd:"" help:"Add a dependency"`
	Remove DepsRemoveCmd `cmd:"" help:"Remove a dependency"`
}

// DepsFlags selects the dependency list a command operates on.
type DepsFlags struct {
	ProfileFlags `embed:""`

	Managed bool `help:"Operate on dependencyManagement instead of dependencies"`
}

func (t DepsFlags) resolve(m *pom.Model) (*pom.Dependencies, error) {
	s, err := t.ProfileFlags.resolve(m)
	if err != nil {
		return nil, err
	}
	if t.Managed {
		return s.DependencyManagement().Dependencies(), nil
	}
	return s.Dependencies(), nil
}

type DepsListCmd struct {
	DepsFlags `embed:""`

	POM string `arg:"" help:"POM file" type:"path"`
}

func (c *DepsListCmd) Run(g *Global) error {
	return g.read(c.POM, func(m *pom.Model) error {
		deps, err := c.resolve(m)
		if err != nil {
			return err
		}
		values, err := deps.Snapshot()
		if err != nil {
			return err
		}
		for _, d := range values {
			fmt.Fprintln(g.Stdout, describeDependency(d))
		}
		return nil
	})
}

// describeDependency formats d as coordinates followed by its non-default scope and flags.
func describeDependency(d model.Dependency) string {
	if model.IsDefault("dependency", "type", d.Type) {
		d.Type = ""
	}
	s := model.Coordinates(d)
	if d.Scope != "" && !model.IsDefault("dependency", "scope", d.Scope) {
		s += " (" + d.Scope + ")"
	}
	if d.Optional {
		s += " optional"
	}
	return s
}

type DepsAddCmd struct {
	DepsFlags   `embed:""`
	OutputFlags `embed:""`

	Scope    string `help:"Dependency scope"`
	Optional bool   `help:"Mark the dependency optional"`

	POM         string `arg:"" help:"POM file" type:"path"`
	Coordinates string `arg:"" help:"groupId:artifactId[:version[:type[:classifier]]]"`
}

func (c *DepsAddCmd) Run(g *Global) error {
	d, err := model.ParseCoordinates(c.Coordinates)
	if err != nil {
		return err
	}
	d.Scope = c.Scope
	d.Optional = c.Optional

	return g.edit(c.POM, c.OutputFlags, func(m *pom.Model) error {
		deps, err := c.resolve(m)
		if err != nil {
			return err
		}
		exists, err := deps.Contains(&d)
		if err != nil {
			return err
		}
		if exists {
			return errors.ValidationError("dependency already declared").
				WithContext("dependency", c.Coordinates).
				Build()
		}
		return deps.Add(&d)
	})
}

type DepsRemoveCmd struct {
	DepsFlags   `embed:""`
	OutputFlags `embed:""`

	POM         string `arg:"" help:"POM file" type:"path"`
	Coordinates string `arg:"" help:"groupId:artifactId[:version[:type[:classifier]]]; the version is ignored"`
}

func (c *DepsRemoveCmd) Run(g *Global) error {
	d, err := model.ParseCoordinates(c.Coordinates)
	if err != nil {
		return err
	}

	return g.edit(c.POM, c.OutputFlags, func(m *pom.Model) error {
		deps, err := c.resolve(m)
		if err != nil {
			return err
		}
		removed, err := deps.Remove(&d)
		if err != nil {
			return err
		}
		if !removed {
			return errors.NotFoundError("dependency not declared").
				WithContext("dependency", c.Coordinates).
				Build()
		}
		return nil
	})
}
