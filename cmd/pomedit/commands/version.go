package commands

import (
	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
	"git.home.luguber.info/inful/pomedit/internal/pom"
)

// SetVersionCmd sets the project version, or the version of the parent reference.
type SetVersionCmd struct {
	OutputFlags `embed:""`

	Parent bool `help:"Set the version of the parent reference instead"`

	POM     string `arg:"" help:"POM file" type:"path"`
	Version string `arg:"" help:"New version"`
}

func (c *SetVersionCmd) Run(g *Global) error {
	return g.edit(c.POM, c.OutputFlags, func(m *pom.Model) error {
		if !c.Parent {
			return m.SetVersion(c.Version)
		}
		p := m.Parent()
		if !p.Exists() {
			return errors.NotFoundError("project has no parent").Build()
		}
		return p.SetVersion(c.Version)
	})
}
