package pom

import (
	"github.com/beevik/etree"

	"git.home.luguber.info/inful/pomedit/internal/model"
	"git.home.luguber.info/inful/pomedit/internal/xmltree"
)

// Profile is a live view of a <profile> element. It supports the id, modules, properties,
// dependencies and managed dependencies of the profile; activation, build, repositories,
// distribution management and reporting are rejected.
type Profile struct {
	modelBase
}

var _ model.ProfileContract = (*Profile)(nil)

// NewProfile wraps el. A nil el gives a query-only wrapper whose accessors fail.
func NewProfile(el *etree.Element) *Profile {
	return newProfile(el, nil)
}

func newProfile(el *etree.Element, onEdit EditFunc) *Profile {
	return &Profile{modelBase{node: fixedNode(el, "profile", "Profile"), onEdit: onEdit}}
}

// Name returns the element tag this wrapper binds to.
func (p *Profile) Name() string { return p.tag }

// GetID returns the profile id, "default" when undeclared.
func (p *Profile) GetID() (string, error) { return p.textOrDefault("GetID", "id") }

func (p *Profile) SetID(v string) error { return p.setText("SetID", "id", v) }

func (p *Profile) GetActivation() (*model.Activation, error) {
	return nil, p.unsupported("GetActivation")
}

func (p *Profile) SetActivation(*model.Activation) error {
	return p.unsupported("SetActivation")
}

func (p *Profile) GetBuild() (*model.BuildBase, error) {
	return nil, p.unsupported("GetBuild")
}

func (p *Profile) SetBuild(*model.BuildBase) error {
	return p.unsupported("SetBuild")
}

// Value snapshots the supported members into a plain value.
func (p *Profile) Value() (model.Profile, error) {
	return model.SnapshotProfile(p)
}

// writeProfile fills an empty <profile> element from v, which has passed checkProfile.
func writeProfile(el *etree.Element, v model.Profile) {
	p := NewProfile(el)
	// An explicit id is written even when it names the default profile.
	xmltree.SetChildText(el, "id", v.ID)
	// The element exists, so none of these can fail.
	_ = p.SetModules(v.Modules)
	_ = p.SetProperties(v.Properties)
	if v.DependencyManagement != nil {
		_ = p.SetDependencyManagement(v.DependencyManagement)
	}
	_ = p.SetDependencies(v.Dependencies)
}

// checkProfile rejects a value carrying members a live profile cannot store.
func checkProfile(v model.Profile) error {
	p := NewProfile(nil)
	switch {
	case v.Activation != nil:
		return p.unsupported("SetActivation")
	case v.Build != nil:
		return p.unsupported("SetBuild")
	case v.DistributionManagement != nil:
		return p.unsupported("SetDistributionManagement")
	case len(v.Repositories) > 0:
		return p.unsupported("SetRepositories")
	case len(v.PluginRepositories) > 0:
		return p.unsupported("SetPluginRepositories")
	case v.Reporting != nil:
		return p.unsupported("SetReporting")
	}
	for _, prop := range v.Properties {
		if err := validPropertyName(prop.Name); err != nil {
			return err
		}
	}
	for _, m := range v.Modules {
		if _, err := modulesSpec.classify(m); err != nil {
			return err
		}
	}
	return nil
}

// Profiles is the live list of <profile> elements. Removing the last profile removes the
// <profiles> block.
type Profiles struct {
	*elementRun[*Profile, model.ProfileAccessor]
}

func newProfiles(owner resolver, onEdit EditFunc) *Profiles {
	spec := &runSpec[*Profile, model.ProfileAccessor]{
		typeName:     "Profiles",
		containerTag: "profiles",
		itemTag:      "profile",
		collapse:     true,
		wrap: func(el *etree.Element) *Profile {
			return newProfile(el, onEdit)
		},
		keyOf: model.KeyOfProfile,
		itemKey: func(el *etree.Element) string {
			id, _ := model.KeyOfProfile(NewProfile(el))
			return id
		},
		classify: func(x model.ProfileAccessor) (addEntry, error) {
			if live, ok := x.(*Profile); ok && live.el != nil {
				return addEntry{clone: live.el}, nil
			}
			v, err := model.SnapshotProfile(x)
			if err != nil {
				return addEntry{}, err
			}
			if err := checkProfile(v); err != nil {
				return addEntry{}, err
			}
			return addEntry{fill: func(el *etree.Element) { writeProfile(el, v) }}, nil
		},
	}
	return &Profiles{newElementRun(spec, owner, onEdit)}
}
