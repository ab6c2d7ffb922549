package model

import (
	"errors"
	"slices"
)

// ProfileAccessor is the read side of the profile contract.
type ProfileAccessor interface {
	GetID() (string, error)
	GetActivation() (*Activation, error)
	GetBuild() (*BuildBase, error)
	GetModules() ([]string, error)
	GetDistributionManagement() (*DistributionManagement, error)
	GetProperties() ([]Property, error)
	GetDependencyManagement() (*DependencyManagement, error)
	GetDependencies() ([]Dependency, error)
	GetRepositories() ([]Repository, error)
	GetPluginRepositories() ([]Repository, error)
	GetReporting() (*Reporting, error)
}

// ProfileContract is the full profile contract.
type ProfileContract interface {
	ProfileAccessor
	SetID(string) error
	SetActivation(*Activation) error
	SetBuild(*BuildBase) error
	SetModules([]string) error
	SetDistributionManagement(*DistributionManagement) error
	SetProperties([]Property) error
	SetDependencyManagement(*DependencyManagement) error
	SetDependencies([]Dependency) error
	SetRepositories([]Repository) error
	SetPluginRepositories([]Repository) error
	SetReporting(*Reporting) error
}

// Profile is a plain profile value.
type Profile struct {
	ID                     string
	Activation             *Activation
	Build                  *BuildBase
	Modules                []string
	DistributionManagement *DistributionManagement
	Properties             []Property
	DependencyManagement   *DependencyManagement
	Dependencies           []Dependency
	Repositories           []Repository
	PluginRepositories     []Repository
	Reporting              *Reporting
}

var _ ProfileContract = (*Profile)(nil)

func (p *Profile) GetID() (string, error)                 { return p.ID, nil }
func (p *Profile) GetActivation() (*Activation, error)    { return p.Activation, nil }
func (p *Profile) GetBuild() (*BuildBase, error)          { return p.Build, nil }
func (p *Profile) GetModules() ([]string, error)          { return slices.Clone(p.Modules), nil }
func (p *Profile) GetProperties() ([]Property, error)     { return slices.Clone(p.Properties), nil }
func (p *Profile) GetDependencies() ([]Dependency, error) { return slices.Clone(p.Dependencies), nil }
func (p *Profile) GetRepositories() ([]Repository, error) { return slices.Clone(p.Repositories), nil }
func (p *Profile) GetReporting() (*Reporting, error)      { return p.Reporting, nil }

func (p *Profile) GetDistributionManagement() (*DistributionManagement, error) {
	return p.DistributionManagement, nil
}

func (p *Profile) GetDependencyManagement() (*DependencyManagement, error) {
	return p.DependencyManagement, nil
}

func (p *Profile) GetPluginRepositories() ([]Repository, error) {
	return slices.Clone(p.PluginRepositories), nil
}

func (p *Profile) SetID(v string) error                 { p.ID = v; return nil }
func (p *Profile) SetActivation(v *Activation) error    { p.Activation = v; return nil }
func (p *Profile) SetBuild(v *BuildBase) error          { p.Build = v; return nil }
func (p *Profile) SetModules(v []string) error          { p.Modules = slices.Clone(v); return nil }
func (p *Profile) SetProperties(v []Property) error     { p.Properties = slices.Clone(v); return nil }
func (p *Profile) SetDependencies(v []Dependency) error { p.Dependencies = slices.Clone(v); return nil }
func (p *Profile) SetRepositories(v []Repository) error { p.Repositories = slices.Clone(v); return nil }
func (p *Profile) SetReporting(v *Reporting) error      { p.Reporting = v; return nil }

func (p *Profile) SetDistributionManagement(v *DistributionManagement) error {
	p.DistributionManagement = v
	return nil
}

func (p *Profile) SetDependencyManagement(v *DependencyManagement) error {
	p.DependencyManagement = v
	return nil
}

func (p *Profile) SetPluginRepositories(v []Repository) error {
	p.PluginRepositories = slices.Clone(v)
	return nil
}

// SnapshotProfile reads every member of src into a plain value. Members src rejects as
// unsupported are treated as absent; any other error aborts the snapshot.
func SnapshotProfile(src ProfileAccessor) (Profile, error) {
	if p, ok := src.(*Profile); ok {
		return *p, nil
	}

	var (
		p   Profile
		err error
	)
	if p.ID, err = absentIfUnsupported(src.GetID()); err != nil {
		return Profile{}, err
	}
	if p.Activation, err = absentIfUnsupported(src.GetActivation()); err != nil {
		return Profile{}, err
	}
	if p.Build, err = absentIfUnsupported(src.GetBuild()); err != nil {
		return Profile{}, err
	}
	if p.Modules, err = absentIfUnsupported(src.GetModules()); err != nil {
		return Profile{}, err
	}
	if p.DistributionManagement, err = absentIfUnsupported(src.GetDistributionManagement()); err != nil {
		return Profile{}, err
	}
	if p.Properties, err = absentIfUnsupported(src.GetProperties()); err != nil {
		return Profile{}, err
	}
	if p.DependencyManagement, err = absentIfUnsupported(src.GetDependencyManagement()); err != nil {
		return Profile{}, err
	}
	if p.Dependencies, err = absentIfUnsupported(src.GetDependencies()); err != nil {
		return Profile{}, err
	}
	if p.Repositories, err = absentIfUnsupported(src.GetRepositories()); err != nil {
		return Profile{}, err
	}
	if p.PluginRepositories, err = absentIfUnsupported(src.GetPluginRepositories()); err != nil {
		return Profile{}, err
	}
	if p.Reporting, err = absentIfUnsupported(src.GetReporting()); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func absentIfUnsupported[T any](v T, err error) (T, error) {
	if errors.Is(err, errors.ErrUnsupported) {
		var zero T
		return zero, nil
	}
	return v, err
}
