package pom

import (
	"github.com/beevik/etree"

	"git.home.luguber.info/inful/pomedit/internal/model"
	"git.home.luguber.info/inful/pomedit/internal/xmltree"
)

// Model is a live view of a <project> element. It never caches: every accessor returns a
// new view bound to the current tree, so two calls return distinct values sharing the same
// elements.
type Model struct {
	modelBase
}

// Option configures a Model.
type Option func(*Model)

// WithEditObserver reports every successful add or remove performed through the model's
// collections.
func WithEditObserver(fn EditFunc) Option {
	return func(m *Model) { m.onEdit = fn }
}

// NewModel wraps the <project> element root.
func NewModel(root *etree.Element, opts ...Option) *Model {
	m := &Model{modelBase{node: fixedNode(root, "project", "Model")}}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Model) GetModelVersion() (string, error) { return m.text("GetModelVersion", "modelVersion") }
func (m *Model) GetGroupID() (string, error)      { return m.text("GetGroupID", "groupId") }
func (m *Model) GetArtifactID() (string, error)   { return m.text("GetArtifactID", "artifactId") }
func (m *Model) GetVersion() (string, error)      { return m.text("GetVersion", "version") }
func (m *Model) GetName() (string, error)         { return m.text("GetName", "name") }
func (m *Model) GetDescription() (string, error)  { return m.text("GetDescription", "description") }
func (m *Model) GetURL() (string, error)          { return m.text("GetURL", "url") }

// GetPackaging returns the packaging, "jar" when undeclared.
func (m *Model) GetPackaging() (string, error) { return m.textOrDefault("GetPackaging", "packaging") }

func (m *Model) SetModelVersion(v string) error {
	return m.setText("SetModelVersion", "modelVersion", v)
}

func (m *Model) SetGroupID(v string) error     { return m.setText("SetGroupID", "groupId", v) }
func (m *Model) SetArtifactID(v string) error  { return m.setText("SetArtifactID", "artifactId", v) }
func (m *Model) SetVersion(v string) error     { return m.setText("SetVersion", "version", v) }
func (m *Model) SetPackaging(v string) error   { return m.setText("SetPackaging", "packaging", v) }
func (m *Model) SetName(v string) error        { return m.setText("SetName", "name", v) }
func (m *Model) SetURL(v string) error         { return m.setText("SetURL", "url", v) }
func (m *Model) SetDescription(v string) error { return m.setText("SetDescription", "description", v) }

// Parent returns the live parent reference, which may be absent.
func (m *Model) Parent() *Parent {
	return &Parent{optionalNode(m.owner(), "parent", "Parent")}
}

// SetParent writes v over the parent reference. nil removes it.
func (m *Model) SetParent(v *model.Parent) error {
	if err := m.checkBacked("SetParent"); err != nil {
		return err
	}
	p := m.Parent()
	if v == nil {
		p.remove()
		return nil
	}
	el := p.element(true)
	xmltree.SetChildText(el, "groupId", v.GroupID)
	xmltree.SetChildText(el, "artifactId", v.ArtifactID)
	xmltree.SetChildText(el, "version", v.Version)
	xmltree.SetChildText(el, "relativePath", v.RelativePath)
	return nil
}

// Build returns the live build section, which may be absent.
func (m *Model) Build() *Build {
	return &Build{optionalNode(m.owner(), "build", "Build")}
}

// SetBuild is not supported; edit the section through Build.
func (m *Model) SetBuild(*model.BuildBase) error {
	return m.unsupported("SetBuild")
}

// Profiles returns the live profile list.
func (m *Model) Profiles() *Profiles {
	return newProfiles(m.owner(), m.onEdit)
}
