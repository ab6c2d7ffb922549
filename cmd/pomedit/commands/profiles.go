package commands

import (
	"fmt"
	"slices"

	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
	"git.home.luguber.info/inful/pomedit/internal/model"
	"git.home.luguber.info/inful/pomedit/internal/pom"
)

// ProfilesCmd groups the profile commands.
type ProfilesCmd struct {
	List   ProfilesListCmd   `cmd:"" help:"List profile ids"`
	Add    ProfilesAddCmd    `cmd:"" help:"Add a profile"`
	Remove ProfilesRemoveCmd `cmd:"" help:"Remove a profile"`
}

type ProfilesListCmd struct {
	POM string `arg:"" help:"POM file" type:"path"`
}

func (c *ProfilesListCmd) Run(g *Global) error {
	return g.read(c.POM, func(m *pom.Model) error {
		for _, p := range m.Profiles().All() {
			id, err := p.GetID()
			if err != nil {
				return err
			}
			fmt.Fprintln(g.Stdout, id)
		}
		return nil
	})
}

type ProfilesAddCmd struct {
	OutputFlags `embed:""`

	Modules    []string          `name:"module" help:"Module to declare in the profile (repeatable)"`
	Properties map[string]string `name:"property" short:"p" help:"Property to declare in the profile, as name=value (repeatable)"`

	POM string `arg:"" help:"POM file" type:"path"`
	ID  string `arg:"" help:"Profile id"`
}

func (c *ProfilesAddCmd) Run(g *Global) error {
	profile := model.Profile{ID: c.ID, Modules: c.Modules}
	names := make([]string, 0, len(c.Properties))
	for name := range c.Properties {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		profile.Properties = append(profile.Properties, model.Property{Name: name, Value: c.Properties[name]})
	}

	return g.edit(c.POM, c.OutputFlags, func(m *pom.Model) error {
		exists, err := m.Profiles().Contains(&profile)
		if err != nil {
			return err
		}
		if exists {
			return errors.ValidationError("profile already declared").
				WithContext("profile", c.ID).
				Build()
		}
		return m.Profiles().Add(&profile)
	})
}

type ProfilesRemoveCmd struct {
	OutputFlags `embed:""`

	POM string `arg:"" help:"POM file" type:"path"`
	ID  string `arg:"" help:"Profile id"`
}

func (c *ProfilesRemoveCmd) Run(g *Global) error {
	return g.edit(c.POM, c.OutputFlags, func(m *pom.Model) error {
		removed, err := m.Profiles().Remove(&model.Profile{ID: c.ID})
		if err != nil {
			return err
		}
		if !removed {
			return errors.NotFoundError("profile not found").
				WithContext("profile", c.ID).
				Build()
		}
		return nil
	})
}
