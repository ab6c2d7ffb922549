// Package xmltree holds the element-level editing primitives the live POM model is built
// on, plus parsing and serialization of whole documents.
//
// Every structural edit keeps the surrounding formatting intact: inserted elements get a
// whitespace run computed by package indent, removed elements take their own indentation
// run with them, and nothing else in the tree is touched.
package xmltree

import (
	"strings"

	"github.com/beevik/etree"

	"git.home.luguber.info/inful/pomedit/internal/indent"
)

// ChildElement returns the first child of parent named tag, or nil.
func ChildElement(parent *etree.Element, tag string) *etree.Element {
	if parent == nil {
		return nil
	}
	return parent.SelectElement(tag)
}

// ChildText returns the trimmed text of parent's child named tag. ok is false when the
// child does not exist.
func ChildText(parent *etree.Element, tag string) (text string, ok bool) {
	child := ChildElement(parent, tag)
	if child == nil {
		return "", false
	}
	return strings.TrimSpace(child.Text()), true
}

// SetChildText writes value into parent's child named tag.
//
//   - empty value, no child: nothing happens
//   - empty value, child exists: the child and its indentation run are removed
//   - value, no child: a child is created at its canonical position
//   - value, child exists: the child's text is replaced
func SetChildText(parent *etree.Element, tag, value string) {
	child := ChildElement(parent, tag)
	switch {
	case value == "" && child == nil:
	case value == "":
		RemoveChildElement(parent, child)
	case child == nil:
		InsertNewElement(parent, tag).SetText(value)
	default:
		child.SetText(value)
	}
}

// InsertNewElement creates an empty child named tag under parent, in parent's namespace
// prefix. The child goes before the first sibling that the canonical POM order places after
// tag; when there is none, or the tag has no canonical position, it is appended.
func InsertNewElement(parent *etree.Element, tag string) *etree.Element {
	child := etree.NewElement(tag)
	child.Space = parent.Space
	if next := canonicalSuccessor(parent, tag); next != nil {
		insertBefore(parent, child, next)
	} else {
		AppendElement(parent, child)
	}
	return child
}

// AppendElement splices child into parent right before parent's closing tag, on its own
// line at parent's child indentation. If parent had no closing run (an empty or inline
// element) one is created at parent's own indentation.
func AppendElement(parent, child *etree.Element) {
	run := indent.Newline(parent)
	n := len(parent.Child)
	if n > 0 && isIndentRun(parent.Child[n-1]) {
		parent.InsertChildAt(n-1, indent.NewRun(run))
		parent.InsertChildAt(n, child)
		return
	}
	closing := indent.ClosingRun(parent)
	parent.AddChild(indent.NewRun(run))
	parent.AddChild(child)
	parent.AddChild(indent.NewRun(closing))
}

// RemoveChildElement detaches child from parent together with the whitespace run that
// directly precedes it. It reports false when child is not a child of parent.
func RemoveChildElement(parent, child *etree.Element) bool {
	if parent == nil || child == nil || child.Parent() != parent {
		return false
	}
	i := child.Index()
	parent.RemoveChildAt(i)
	if i > 0 {
		if _, ok := indent.WhitespaceRun(parent.Child[i-1]); ok {
			parent.RemoveChildAt(i - 1)
		}
	}
	return true
}

func insertBefore(parent, child, next *etree.Element) {
	run := indent.NewRun(indent.Newline(parent))
	i := next.Index()
	if i > 0 && isIndentRun(parent.Child[i-1]) {
		parent.InsertChildAt(i-1, run)
		parent.InsertChildAt(i, child)
		return
	}
	parent.InsertChildAt(i, child)
	parent.InsertChildAt(i, run)
}

func canonicalSuccessor(parent *etree.Element, tag string) *etree.Element {
	pos, ok := orderIndex(parent.Tag, tag)
	if !ok {
		return nil
	}
	for _, sibling := range parent.ChildElements() {
		if p, known := orderIndex(parent.Tag, sibling.Tag); known && p > pos {
			return sibling
		}
	}
	return nil
}

func isIndentRun(tok etree.Token) bool {
	cd, ok := indent.WhitespaceRun(tok)
	return ok && strings.Contains(cd.Data, "\n")
}
