package pom

import (
	"github.com/beevik/etree"

	"git.home.luguber.info/inful/pomedit/internal/model"
	"git.home.luguber.info/inful/pomedit/internal/xmltree"
)

// Dependency is a live view of a <dependency> element.
type Dependency struct {
	node
}

var _ model.DependencyContract = (*Dependency)(nil)

// NewDependency wraps el. A nil el gives a query-only wrapper whose accessors fail.
func NewDependency(el *etree.Element) *Dependency {
	return &Dependency{node: fixedNode(el, "dependency", "Dependency")}
}

// Name returns the element tag this wrapper binds to.
func (d *Dependency) Name() string { return d.tag }

func (d *Dependency) GetGroupID() (string, error) { return d.text("GetGroupID", "groupId") }

func (d *Dependency) SetGroupID(v string) error { return d.setText("SetGroupID", "groupId", v) }

func (d *Dependency) GetArtifactID() (string, error) { return d.text("GetArtifactID", "artifactId") }

func (d *Dependency) SetArtifactID(v string) error {
	return d.setText("SetArtifactID", "artifactId", v)
}

func (d *Dependency) GetVersion() (string, error) { return d.text("GetVersion", "version") }

func (d *Dependency) SetVersion(v string) error { return d.setText("SetVersion", "version", v) }

// GetType returns the packaging type, "jar" when undeclared.
func (d *Dependency) GetType() (string, error) { return d.textOrDefault("GetType", "type") }

func (d *Dependency) SetType(v string) error { return d.setText("SetType", "type", v) }

func (d *Dependency) GetClassifier() (string, error) { return d.text("GetClassifier", "classifier") }

func (d *Dependency) SetClassifier(v string) error {
	return d.setText("SetClassifier", "classifier", v)
}

// GetScope returns the scope, "compile" when undeclared.
func (d *Dependency) GetScope() (string, error) { return d.textOrDefault("GetScope", "scope") }

func (d *Dependency) SetScope(v string) error { return d.setText("SetScope", "scope", v) }

func (d *Dependency) GetSystemPath() (string, error) { return d.text("GetSystemPath", "systemPath") }

func (d *Dependency) SetSystemPath(v string) error {
	return d.setText("SetSystemPath", "systemPath", v)
}

func (d *Dependency) IsOptional() (bool, error) {
	v, err := d.text("IsOptional", "optional")
	return v == "true", err
}

// SetOptional writes <optional>true</optional>, or removes the element for false.
func (d *Dependency) SetOptional(v bool) error {
	if v {
		return d.setText("SetOptional", "optional", "true")
	}
	return d.setText("SetOptional", "optional", "")
}

func (d *Dependency) GetExclusions() ([]model.Exclusion, error) {
	if err := d.checkBacked("GetExclusions"); err != nil {
		return nil, err
	}
	return readExclusions(d.el), nil
}

// SetExclusions replaces the whole <exclusions> block. An empty list removes it.
func (d *Dependency) SetExclusions(v []model.Exclusion) error {
	if err := d.checkBacked("SetExclusions"); err != nil {
		return err
	}
	writeExclusions(d.el, v)
	return nil
}

func (d *Dependency) AddExclusion(model.Exclusion) error {
	return d.unsupported("AddExclusion")
}

func (d *Dependency) RemoveExclusion(model.Exclusion) error {
	return d.unsupported("RemoveExclusion")
}

// Value snapshots the dependency into a plain value.
func (d *Dependency) Value() (model.Dependency, error) {
	return model.SnapshotDependency(d)
}

func readExclusions(el *etree.Element) []model.Exclusion {
	block := xmltree.ChildElement(el, "exclusions")
	if block == nil {
		return nil
	}
	var out []model.Exclusion
	for _, ex := range block.SelectElements("exclusion") {
		g, _ := xmltree.ChildText(ex, "groupId")
		a, _ := xmltree.ChildText(ex, "artifactId")
		out = append(out, model.Exclusion{GroupID: g, ArtifactID: a})
	}
	return out
}

func writeExclusions(el *etree.Element, v []model.Exclusion) {
	if block := xmltree.ChildElement(el, "exclusions"); block != nil {
		xmltree.RemoveChildElement(el, block)
	}
	if len(v) == 0 {
		return
	}
	block := xmltree.InsertNewElement(el, "exclusions")
	for _, ex := range v {
		e := xmltree.InsertNewElement(block, "exclusion")
		xmltree.SetChildText(e, "groupId", ex.GroupID)
		xmltree.SetChildText(e, "artifactId", ex.ArtifactID)
	}
}

// writeDependency fills an empty <dependency> element from d. Fields equal to their
// documented default are not written.
func writeDependency(el *etree.Element, d model.Dependency) {
	set := func(field, value string) {
		if !model.IsDefault("dependency", field, value) {
			xmltree.SetChildText(el, field, value)
		}
	}
	set("groupId", d.GroupID)
	set("artifactId", d.ArtifactID)
	set("version", d.Version)
	set("type", d.Type)
	set("classifier", d.Classifier)
	set("scope", d.Scope)
	set("systemPath", d.SystemPath)
	if d.Optional {
		set("optional", "true")
	}
	writeExclusions(el, d.Exclusions)
}

// Dependencies is the live list of <dependency> elements of a <dependencies> block.
// Removing the last dependency keeps the empty block.
type Dependencies struct {
	*elementRun[*Dependency, model.DependencyAccessor]
}

var dependenciesSpec = &runSpec[*Dependency, model.DependencyAccessor]{
	typeName:     "Dependencies",
	containerTag: "dependencies",
	itemTag:      "dependency",
	wrap:         NewDependency,
	keyOf:        dependencyKey,
	itemKey: func(el *etree.Element) string {
		k, _ := dependencyKey(NewDependency(el))
		return k
	},
	classify: classifyDependency,
}

func newDependencies(owner resolver, onEdit EditFunc) *Dependencies {
	return &Dependencies{newElementRun(dependenciesSpec, owner, onEdit)}
}

func dependencyKey(d model.DependencyAccessor) (string, error) {
	k, err := model.KeyOfDependency(d)
	if err != nil {
		return "", err
	}
	return k.String(), nil
}

func classifyDependency(x model.DependencyAccessor) (addEntry, error) {
	if live, ok := x.(*Dependency); ok && live.el != nil {
		return addEntry{clone: live.el}, nil
	}
	v, err := model.SnapshotDependency(x)
	if err != nil {
		return addEntry{}, err
	}
	return addEntry{fill: func(el *etree.Element) { writeDependency(el, v) }}, nil
}

// Snapshot returns plain copies of every dependency.
func (l *Dependencies) Snapshot() ([]model.Dependency, error) {
	out := make([]model.Dependency, 0, l.Len())
	for _, d := range l.All() {
		v, err := d.Value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Replace clears the list and adds deps in order. Nothing changes when any of deps is
// rejected.
func (l *Dependencies) Replace(deps []model.Dependency) error {
	entries := make([]model.DependencyAccessor, len(deps))
	for i := range deps {
		entries[i] = &deps[i]
	}
	return l.replace(entries)
}
