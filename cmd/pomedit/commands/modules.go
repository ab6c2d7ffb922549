package commands

import (
	"fmt"

	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
	"git.home.luguber.info/inful/pomedit/internal/pom"
)

// ModulesCmd groups the module commands.
type ModulesCmd struct {
	List   ModulesListCmd   `cmd:"" help:"List modules"`
	Add    ModulesAddCmd    `cmd:"" help:"Add modules"`
	Remove ModulesRemoveCmd `cmd:"" help:"Remove modules"`
}

type ModulesListCmd struct {
	ProfileFlags `embed:""`

	POM string `arg:"" help:"POM file" type:"path"`
}

func (c *ModulesListCmd) Run(g *Global) error {
	return g.read(c.POM, func(m *pom.Model) error {
		s, err := c.resolve(m)
		if err != nil {
			return err
		}
		for _, module := range s.Modules().All() {
			fmt.Fprintln(g.Stdout, module)
		}
		return nil
	})
}

type ModulesAddCmd struct {
	ProfileFlags `embed:""`
	OutputFlags  `embed:""`

	POM     string   `arg:"" help:"POM file" type:"path"`
	Modules []string `arg:"" help:"Module paths"`
}

func (c *ModulesAddCmd) Run(g *Global) error {
	return g.edit(c.POM, c.OutputFlags, func(m *pom.Model) error {
		s, err := c.resolve(m)
		if err != nil {
			return err
		}
		modules := s.Modules()
		for _, module := range c.Modules {
			exists, err := modules.Contains(module)
			if err != nil {
				return err
			}
			if exists {
				return errors.ValidationError("module already declared").
					WithContext("module", module).
					Build()
			}
		}
		return modules.AddAll(c.Modules...)
	})
}

type ModulesRemoveCmd struct {
	ProfileFlags `embed:""`
	OutputFlags  `embed:""`

	POM     string   `arg:"" help:"POM file" type:"path"`
	Modules []string `arg:"" help:"Module paths"`
}

func (c *ModulesRemoveCmd) Run(g *Global) error {
	return g.edit(c.POM, c.OutputFlags, func(m *pom.Model) error {
		s, err := c.resolve(m)
		if err != nil {
			return err
		}
		for _, module := range c.Modules {
			removed, err := s.Modules().Remove(module)
			if err != nil {
				return err
			}
			if !removed {
				return errors.NotFoundError("module not declared").
					WithContext("module", module).
					Build()
			}
		}
		return nil
	})
}
