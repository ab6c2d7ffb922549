package pom

import "git.home.luguber.info/inful/pomedit/internal/model"

// Parent is a live view of the <parent> reference. Reads on an absent element return "";
// setting a field creates it.
type Parent struct {
	node
}

func (p *Parent) GetGroupID() (string, error)    { return p.text("GetGroupID", "groupId") }
func (p *Parent) GetArtifactID() (string, error) { return p.text("GetArtifactID", "artifactId") }
func (p *Parent) GetVersion() (string, error)    { return p.text("GetVersion", "version") }

func (p *Parent) GetRelativePath() (string, error) {
	return p.text("GetRelativePath", "relativePath")
}

func (p *Parent) SetGroupID(v string) error    { return p.setText("SetGroupID", "groupId", v) }
func (p *Parent) SetArtifactID(v string) error { return p.setText("SetArtifactID", "artifactId", v) }
func (p *Parent) SetVersion(v string) error    { return p.setText("SetVersion", "version", v) }

func (p *Parent) SetRelativePath(v string) error {
	return p.setText("SetRelativePath", "relativePath", v)
}

// Snapshot returns the reference as a plain value, nil when absent.
func (p *Parent) Snapshot() *model.Parent {
	el := p.element(false)
	if el == nil {
		return nil
	}
	v := &model.Parent{}
	v.GroupID, _ = p.GetGroupID()
	v.ArtifactID, _ = p.GetArtifactID()
	v.Version, _ = p.GetVersion()
	v.RelativePath, _ = p.GetRelativePath()
	return v
}

// Build is a live view of the <build> settings this model supports.
type Build struct {
	node
}

func (b *Build) GetDefaultGoal() (string, error) { return b.text("GetDefaultGoal", "defaultGoal") }
func (b *Build) GetDirectory() (string, error)   { return b.text("GetDirectory", "directory") }
func (b *Build) GetFinalName() (string, error)   { return b.text("GetFinalName", "finalName") }

func (b *Build) SetDefaultGoal(v string) error {
	return b.setText("SetDefaultGoal", "defaultGoal", v)
}

func (b *Build) SetDirectory(v string) error { return b.setText("SetDirectory", "directory", v) }
func (b *Build) SetFinalName(v string) error { return b.setText("SetFinalName", "finalName", v) }
