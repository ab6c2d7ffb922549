// Package model defines the host object contract for POM content: plain value types that
// carry a dependency, a profile or a parent reference, the accessor interfaces the live
// wrappers in package pom satisfy, and the default-value table both sides honor.
//
// Absent fields are represented by the empty string, nil pointers and empty slices.
package model

// Exclusion is a dependency exclusion.
type Exclusion struct {
	GroupID    string
	ArtifactID string
}

// Property is one named entry of a properties block, in document order.
type Property struct {
	Name  string
	Value string
}

// Activation describes when a profile is active.
type Activation struct {
	ActiveByDefault bool
	JDK             string
}

// BuildBase is the subset of build settings a profile or project may override.
type BuildBase struct {
	DefaultGoal string
	Directory   string
	FinalName   string
}

// Repository is a remote artifact or plugin repository.
type Repository struct {
	ID   string
	Name string
	URL  string
}

// DistributionManagement holds deployment targets.
type DistributionManagement struct {
	DownloadURL string
	Repository  *Repository
}

// Reporting configures site reports.
type Reporting struct {
	OutputDirectory string
}

// DependencyManagement holds managed dependency declarations.
type DependencyManagement struct {
	Dependencies []Dependency
}

// Parent references the parent POM.
type Parent struct {
	GroupID      string
	ArtifactID   string
	Version      string
	RelativePath string
}

// IsZero reports whether p carries no field.
func (p Parent) IsZero() bool {
	return p == Parent{}
}
