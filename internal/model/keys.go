package model

import "fmt"

// DependencyKey identifies a dependency inside a list. Type is always filled, with the
// default substituted when the dependency declares none.
type DependencyKey struct {
	GroupID    string
	ArtifactID string
	Type       string
}

func (k DependencyKey) String() string {
	return fmt.Sprintf("%s:%s:%s", k.GroupID, k.ArtifactID, k.Type)
}

// KeyOfDependency computes the identity key of d.
func KeyOfDependency(d DependencyAccessor) (DependencyKey, error) {
	g, err := d.GetGroupID()
	if err != nil {
		return DependencyKey{}, err
	}
	a, err := d.GetArtifactID()
	if err != nil {
		return DependencyKey{}, err
	}
	t, err := d.GetType()
	if err != nil {
		return DependencyKey{}, err
	}
	return DependencyKey{
		GroupID:    g,
		ArtifactID: a,
		Type:       OrDefault("dependency", "type", t),
	}, nil
}

// KeyOfProfile returns the id of p, with the default substituted when absent.
func KeyOfProfile(p ProfileAccessor) (string, error) {
	id, err := p.GetID()
	if err != nil {
		return "", err
	}
	return OrDefault("profile", "id", id), nil
}
