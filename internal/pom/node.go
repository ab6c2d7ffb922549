package pom

import (
	"github.com/beevik/etree"

	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
	"git.home.luguber.info/inful/pomedit/internal/model"
	"git.home.luguber.info/inful/pomedit/internal/xmltree"
)

// resolver returns the element a substructure lives under. With create set it
// materializes missing ancestors; otherwise it returns nil for an absent one.
type resolver func(create bool) *etree.Element

// fixed resolves to el, which always exists.
func fixed(el *etree.Element) resolver {
	return func(bool) *etree.Element { return el }
}

// child resolves the element named tag under parent, creating it at its canonical
// position on demand.
func child(parent resolver, tag string) resolver {
	return func(create bool) *etree.Element {
		p := parent(create)
		if p == nil {
			return nil
		}
		if el := xmltree.ChildElement(p, tag); el != nil || !create {
			return el
		}
		return xmltree.InsertNewElement(p, tag)
	}
}

// node is the backing handle shared by all live wrappers. A node either wraps a fixed
// element (which may be nil for query-only use) or an optional child found through
// parent on every call.
type node struct {
	el       *etree.Element
	parent   resolver
	tag      string
	typeName string
}

func fixedNode(el *etree.Element, tag, typeName string) node {
	return node{el: el, tag: tag, typeName: typeName}
}

func optionalNode(parent resolver, tag, typeName string) node {
	return node{parent: parent, tag: tag, typeName: typeName}
}

// element returns the backing element. For optional nodes it is nil while absent,
// unless create is set.
func (n node) element(create bool) *etree.Element {
	if n.parent == nil {
		return n.el
	}
	return child(n.parent, n.tag)(create)
}

// Exists reports whether the backing element is present in the document.
func (n node) Exists() bool {
	return n.element(false) != nil
}

// Element returns the backing element, nil when absent.
func (n node) Element() *etree.Element {
	return n.element(false)
}

func (n node) checkBacked(method string) error {
	if n.parent == nil && n.el == nil {
		return errNoOwner(n.typeName + "." + method)
	}
	return nil
}

func errNoOwner(op string) error {
	return errors.ValidationError("no backing element").
		WithContext("operation", op).
		Build()
}

func (n node) unsupported(method string) error {
	return errors.Unsupported(n.typeName + "." + method).Build()
}

// text returns the trimmed text of field, "" when absent.
func (n node) text(method, field string) (string, error) {
	if err := n.checkBacked(method); err != nil {
		return "", err
	}
	v, _ := xmltree.ChildText(n.element(false), field)
	return v, nil
}

// textOrDefault is text with the documented default substituted for an absent field.
func (n node) textOrDefault(method, field string) (string, error) {
	v, err := n.text(method, field)
	if err != nil {
		return "", err
	}
	return model.OrDefault(n.tag, field, v), nil
}

// setText writes field. Clearing a field of an absent optional node does not create it.
func (n node) setText(method, field, value string) error {
	if err := n.checkBacked(method); err != nil {
		return err
	}
	el := n.element(value != "")
	if el == nil {
		return nil
	}
	xmltree.SetChildText(el, field, value)
	return nil
}

// remove detaches an optional node from its parent.
func (n node) remove() bool {
	el := n.element(false)
	if el == nil || n.parent == nil {
		return false
	}
	return xmltree.RemoveChildElement(el.Parent(), el)
}
