package model

import (
	"strings"

	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
)

// ParseCoordinates parses "groupId:artifactId[:version[:type[:classifier]]]".
func ParseCoordinates(s string) (Dependency, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 5 {
		return Dependency{}, errors.ValidationError("invalid dependency coordinates").
			WithContext("coordinates", s).
			WithContext("expected", "groupId:artifactId[:version[:type[:classifier]]]").
			Build()
	}
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	if parts[0] == "" || parts[1] == "" {
		return Dependency{}, errors.ValidationError("groupId and artifactId are required").
			WithContext("coordinates", s).
			Build()
	}

	d := Dependency{GroupID: parts[0], ArtifactID: parts[1]}
	fields := []*string{&d.Version, &d.Type, &d.Classifier}
	for i, p := range parts[2:] {
		*fields[i] = p
	}
	return d, nil
}

// Coordinates formats d the way ParseCoordinates reads it. Trailing absent parts are
// omitted; the default type is written only when a classifier follows it.
func Coordinates(d Dependency) string {
	parts := []string{d.GroupID, d.ArtifactID, d.Version, d.Type, d.Classifier}
	if parts[4] != "" && parts[3] == "" {
		parts[3] = DefaultDependencyType
	}
	n := len(parts)
	for n > 2 && parts[n-1] == "" {
		n--
	}
	return strings.Join(parts[:n], ":")
}
