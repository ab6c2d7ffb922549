package model

import "slices"

// DependencyAccessor is the read side of the dependency contract.
type DependencyAccessor interface {
	GetGroupID() (string, error)
	GetArtifactID() (string, error)
	GetVersion() (string, error)
	GetType() (string, error)
	GetClassifier() (string, error)
	GetScope() (string, error)
	GetSystemPath() (string, error)
	IsOptional() (bool, error)
	GetExclusions() ([]Exclusion, error)
}

// DependencyContract is the full dependency contract. Implementations may reject members
// with a capability violation.
type DependencyContract interface {
	DependencyAccessor
	SetGroupID(string) error
	SetArtifactID(string) error
	SetVersion(string) error
	SetType(string) error
	SetClassifier(string) error
	SetScope(string) error
	SetSystemPath(string) error
	SetOptional(bool) error
	SetExclusions([]Exclusion) error
	AddExclusion(Exclusion) error
	RemoveExclusion(Exclusion) error
}

// Dependency is a plain dependency value. The zero value is an empty dependency.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Version    string
	Type       string
	Classifier string
	Scope      string
	SystemPath string
	Optional   bool
	Exclusions []Exclusion
}

var _ DependencyContract = (*Dependency)(nil)

func (d *Dependency) GetGroupID() (string, error)    { return d.GroupID, nil }
func (d *Dependency) GetArtifactID() (string, error) { return d.ArtifactID, nil }
func (d *Dependency) GetVersion() (string, error)    { return d.Version, nil }
func (d *Dependency) GetType() (string, error)       { return d.Type, nil }
func (d *Dependency) GetClassifier() (string, error) { return d.Classifier, nil }
func (d *Dependency) GetScope() (string, error)      { return d.Scope, nil }
func (d *Dependency) GetSystemPath() (string, error) { return d.SystemPath, nil }
func (d *Dependency) IsOptional() (bool, error)      { return d.Optional, nil }

func (d *Dependency) GetExclusions() ([]Exclusion, error) {
	return slices.Clone(d.Exclusions), nil
}

func (d *Dependency) SetGroupID(v string) error    { d.GroupID = v; return nil }
func (d *Dependency) SetArtifactID(v string) error { d.ArtifactID = v; return nil }
func (d *Dependency) SetVersion(v string) error    { d.Version = v; return nil }
func (d *Dependency) SetType(v string) error       { d.Type = v; return nil }
func (d *Dependency) SetClassifier(v string) error { d.Classifier = v; return nil }
func (d *Dependency) SetScope(v string) error      { d.Scope = v; return nil }
func (d *Dependency) SetSystemPath(v string) error { d.SystemPath = v; return nil }
func (d *Dependency) SetOptional(v bool) error     { d.Optional = v; return nil }

func (d *Dependency) SetExclusions(v []Exclusion) error {
	d.Exclusions = slices.Clone(v)
	return nil
}

func (d *Dependency) AddExclusion(e Exclusion) error {
	d.Exclusions = append(d.Exclusions, e)
	return nil
}

func (d *Dependency) RemoveExclusion(e Exclusion) error {
	d.Exclusions = slices.DeleteFunc(d.Exclusions, func(x Exclusion) bool { return x == e })
	return nil
}

// SnapshotDependency reads every field of src into a plain value. Members src rejects as
// unsupported are treated as absent; any other error aborts the snapshot.
func SnapshotDependency(src DependencyAccessor) (Dependency, error) {
	if d, ok := src.(*Dependency); ok {
		out := *d
		out.Exclusions = slices.Clone(d.Exclusions)
		return out, nil
	}

	var (
		d   Dependency
		err error
	)
	fields := []struct {
		dst *string
		get func() (string, error)
	}{
		{&d.GroupID, src.GetGroupID},
		{&d.ArtifactID, src.GetArtifactID},
		{&d.Version, src.GetVersion},
		{&d.Type, src.GetType},
		{&d.Classifier, src.GetClassifier},
		{&d.Scope, src.GetScope},
		{&d.SystemPath, src.GetSystemPath},
	}
	for _, f := range fields {
		if *f.dst, err = absentIfUnsupported(f.get()); err != nil {
			return Dependency{}, err
		}
	}
	if d.Optional, err = absentIfUnsupported(src.IsOptional()); err != nil {
		return Dependency{}, err
	}
	if d.Exclusions, err = absentIfUnsupported(src.GetExclusions()); err != nil {
		return Dependency{}, err
	}
	return d, nil
}
