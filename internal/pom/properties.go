package pom

import (
	"iter"
	"strings"

	"github.com/beevik/etree"

	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
	"git.home.luguber.info/inful/pomedit/internal/model"
	"git.home.luguber.info/inful/pomedit/internal/xmltree"
)

// Properties is a live view of a <properties> block: one child element per property, named
// after the property. The block is created by the first Set and removed with its last entry.
type Properties struct {
	node
	onEdit EditFunc
}

func newProperties(owner resolver, onEdit EditFunc) *Properties {
	return &Properties{node: optionalNode(owner, "properties", "Properties"), onEdit: onEdit}
}

// Get returns the trimmed value of property name.
func (p *Properties) Get(name string) (string, bool) {
	return xmltree.ChildText(p.element(false), name)
}

// Set writes property name. New properties are appended after the existing ones.
func (p *Properties) Set(name, value string) error {
	if err := validPropertyName(name); err != nil {
		return err
	}
	block := p.element(true)
	if block == nil {
		return errNoOwner("Properties.Set")
	}
	if el := xmltree.ChildElement(block, name); el != nil {
		el.SetText(value)
		return nil
	}
	el := etree.NewElement(name)
	el.Space = block.Space
	xmltree.AppendElement(block, el)
	el.SetText(value)
	p.notify("add")
	return nil
}

// Remove deletes property name. It reports false when there is no such property.
func (p *Properties) Remove(name string) bool {
	block := p.element(false)
	el := xmltree.ChildElement(block, name)
	if el == nil {
		return false
	}
	xmltree.RemoveChildElement(block, el)
	if len(block.ChildElements()) == 0 {
		p.remove()
	}
	p.notify("remove")
	return true
}

// Len returns the number of properties.
func (p *Properties) Len() int {
	if block := p.element(false); block != nil {
		return len(block.ChildElements())
	}
	return 0
}

// Names returns the property names in document order.
func (p *Properties) Names() []string {
	var names []string
	for name := range p.All() {
		names = append(names, name)
	}
	return names
}

// All iterates name/value pairs in document order.
func (p *Properties) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		block := p.element(false)
		if block == nil {
			return
		}
		for _, el := range block.ChildElements() {
			if !yield(el.Tag, strings.TrimSpace(el.Text())) {
				return
			}
		}
	}
}

// Snapshot returns the properties as plain values.
func (p *Properties) Snapshot() []model.Property {
	var out []model.Property
	for name, value := range p.All() {
		out = append(out, model.Property{Name: name, Value: value})
	}
	return out
}

// Replace removes every property and writes props in order. An empty list removes the
// block. Names are validated before anything is changed.
func (p *Properties) Replace(props []model.Property) error {
	for _, prop := range props {
		if err := validPropertyName(prop.Name); err != nil {
			return err
		}
	}
	for _, name := range p.Names() {
		p.Remove(name)
	}
	for _, prop := range props {
		if err := p.Set(prop.Name, prop.Value); err != nil {
			return err
		}
	}
	return nil
}

func (p *Properties) notify(op string) {
	if p.onEdit != nil {
		p.onEdit(p.tag, op)
	}
}

func validPropertyName(name string) error {
	if name == "" || strings.ContainsAny(name, " \t\r\n<>&:/\"'") {
		return errors.ValidationError("invalid property name").
			WithContext("name", name).
			Build()
	}
	return nil
}
