package pom

import (
	"git.home.luguber.info/inful/pomedit/internal/model"
)

// modelBase holds the substructures a project and a profile have in common. Every accessor
// builds a fresh view over the current tree.
type modelBase struct {
	node
	onEdit EditFunc
}

func (b *modelBase) owner() resolver { return fixed(b.el) }

// Dependencies returns the live dependency list.
func (b *modelBase) Dependencies() *Dependencies {
	return newDependencies(b.owner(), b.onEdit)
}

// DependencyManagement returns the live managed dependency block, which may be absent.
func (b *modelBase) DependencyManagement() *DependencyManagement {
	return newDependencyManagement(b.owner(), b.onEdit)
}

// Modules returns the live module list.
func (b *modelBase) Modules() *Modules {
	return newModules(b.owner(), b.onEdit)
}

// Properties returns the live properties block.
func (b *modelBase) Properties() *Properties {
	return newProperties(b.owner(), b.onEdit)
}

func (b *modelBase) GetDependencies() ([]model.Dependency, error) {
	if err := b.checkBacked("GetDependencies"); err != nil {
		return nil, err
	}
	return b.Dependencies().Snapshot()
}

// SetDependencies replaces the dependency list. An empty list removes the <dependencies>
// block.
func (b *modelBase) SetDependencies(deps []model.Dependency) error {
	if err := b.checkBacked("SetDependencies"); err != nil {
		return err
	}
	if len(deps) == 0 {
		optionalNode(b.owner(), "dependencies", "Dependencies").remove()
		return nil
	}
	return b.Dependencies().Replace(deps)
}

func (b *modelBase) GetDependencyManagement() (*model.DependencyManagement, error) {
	if err := b.checkBacked("GetDependencyManagement"); err != nil {
		return nil, err
	}
	return b.DependencyManagement().Snapshot()
}

// SetDependencyManagement replaces the managed dependencies. nil removes the block.
func (b *modelBase) SetDependencyManagement(v *model.DependencyManagement) error {
	if err := b.checkBacked("SetDependencyManagement"); err != nil {
		return err
	}
	return b.DependencyManagement().Replace(v)
}

func (b *modelBase) GetModules() ([]string, error) {
	if err := b.checkBacked("GetModules"); err != nil {
		return nil, err
	}
	return b.Modules().Values(), nil
}

// SetModules replaces the module list. An empty list removes the <modules> block.
func (b *modelBase) SetModules(modules []string) error {
	if err := b.checkBacked("SetModules"); err != nil {
		return err
	}
	return b.Modules().Replace(modules)
}

func (b *modelBase) GetProperties() ([]model.Property, error) {
	if err := b.checkBacked("GetProperties"); err != nil {
		return nil, err
	}
	return b.Properties().Snapshot(), nil
}

// SetProperties replaces all properties. An empty list removes the <properties> block.
func (b *modelBase) SetProperties(props []model.Property) error {
	if err := b.checkBacked("SetProperties"); err != nil {
		return err
	}
	return b.Properties().Replace(props)
}

func (b *modelBase) GetRepositories() ([]model.Repository, error) {
	return nil, b.unsupported("GetRepositories")
}

func (b *modelBase) SetRepositories([]model.Repository) error {
	return b.unsupported("SetRepositories")
}

func (b *modelBase) GetPluginRepositories() ([]model.Repository, error) {
	return nil, b.unsupported("GetPluginRepositories")
}

func (b *modelBase) SetPluginRepositories([]model.Repository) error {
	return b.unsupported("SetPluginRepositories")
}

func (b *modelBase) GetDistributionManagement() (*model.DistributionManagement, error) {
	return nil, b.unsupported("GetDistributionManagement")
}

func (b *modelBase) SetDistributionManagement(*model.DistributionManagement) error {
	return b.unsupported("SetDistributionManagement")
}

func (b *modelBase) GetReporting() (*model.Reporting, error) {
	return nil, b.unsupported("GetReporting")
}

func (b *modelBase) SetReporting(*model.Reporting) error {
	return b.unsupported("SetReporting")
}
