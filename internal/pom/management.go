package pom

import (
	"git.home.luguber.info/inful/pomedit/internal/model"
)

// DependencyManagement is a live view of a <dependencyManagement> block. The block may be
// absent; adding the first managed dependency creates it together with its <dependencies>
// element.
type DependencyManagement struct {
	node
	onEdit EditFunc
}

func newDependencyManagement(owner resolver, onEdit EditFunc) *DependencyManagement {
	return &DependencyManagement{
		node:   optionalNode(owner, "dependencyManagement", "DependencyManagement"),
		onEdit: onEdit,
	}
}

// Dependencies returns the live list of managed dependencies.
func (m *DependencyManagement) Dependencies() *Dependencies {
	return newDependencies(child(m.parent, m.tag), m.onEdit)
}

// GetDependencies returns plain copies of the managed dependencies.
func (m *DependencyManagement) GetDependencies() ([]model.Dependency, error) {
	return m.Dependencies().Snapshot()
}

// SetDependencies replaces the managed dependencies.
func (m *DependencyManagement) SetDependencies(deps []model.Dependency) error {
	return m.Dependencies().Replace(deps)
}

// Snapshot returns the block as a plain value, nil when absent.
func (m *DependencyManagement) Snapshot() (*model.DependencyManagement, error) {
	if !m.Exists() {
		return nil, nil
	}
	deps, err := m.GetDependencies()
	if err != nil {
		return nil, err
	}
	return &model.DependencyManagement{Dependencies: deps}, nil
}

// Replace writes v over the block. A nil v removes the block.
func (m *DependencyManagement) Replace(v *model.DependencyManagement) error {
	if v == nil {
		m.remove()
		return nil
	}
	if !m.Exists() && len(v.Dependencies) == 0 {
		m.element(true)
		return nil
	}
	return m.SetDependencies(v.Dependencies)
}
