package commands

import (
	"fmt"

	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
	"git.home.luguber.info/inful/pomedit/internal/pom"
)

// PropsCmd groups the property commands.
type PropsCmd struct {
	List  PropsListCmd  `cmd:"" help:"List properties"`
	Set   PropsSetCmd   `cmd:"" help:"Set a property, replacing its value when declared"`
	Unset PropsUnsetCmd `cmd:"" help:"Remove a property"`
}

type PropsListCmd struct {
	ProfileFlags `embed:""`

	POM string `arg:"" help:"POM file" type:"path"`
}

func (c *PropsListCmd) Run(g *Global) error {
	return g.read(c.POM, func(m *pom.Model) error {
		s, err := c.resolve(m)
		if err != nil {
			return err
		}
		for name, value := range s.Properties().All() {
			fmt.Fprintf(g.Stdout, "%s=%s\n", name, value)
		}
		return nil
	})
}

type PropsSetCmd struct {
	ProfileFlags `embed:""`
	OutputFlags  `embed:""`

	POM   string `arg:"" help:"POM file" type:"path"`
	Name  string `arg:"" help:"Property name"`
	Value string `arg:"" help:"Property value"`
}

func (c *PropsSetCmd) Run(g *Global) error {
	return g.edit(c.POM, c.OutputFlags, func(m *pom.Model) error {
		s, err := c.resolve(m)
		if err != nil {
			return err
		}
		return s.Properties().Set(c.Name, c.Value)
	})
}

type PropsUnsetCmd struct {
	ProfileFlags `embed:""`
	OutputFlags  `embed:""`

	POM  string `arg:"" help:"POM file" type:"path"`
	Name string `arg:"" help:"Property name"`
}

func (c *PropsUnsetCmd) Run(g *Global) error {
	return g.edit(c.POM, c.OutputFlags, func(m *pom.Model) error {
		s, err := c.resolve(m)
		if err != nil {
			return err
		}
		if !s.Properties().Remove(c.Name) {
			return errors.NotFoundError("property not declared").
				WithContext("property", c.Name).
				Build()
		}
		return nil
	})
}
