// Package indent detects and rewrites the whitespace that positions elements in an
// XML tree.
//
// The functions only look at the token structure of *etree.Element values: whitespace-only
// character data runs, elements and comments. They know nothing about POMs, so they can be
// exercised against any synthetic tree.
//
// Terminology:
//   - base indentation: the characters after the last newline of the whitespace run that
//     precedes an element's start tag.
//   - child indentation: the same for the element's first child element.
//   - unit: child indentation minus base indentation, i.e. one nesting level.
package indent

import (
	"strings"

	"github.com/beevik/etree"
)

// DefaultUnit is used when no element on the path to the root provides a sample.
const DefaultUnit = "  "

// BaseIndent returns the indentation of e's start tag. It is empty for the document root
// and for elements not preceded by a newline.
func BaseIndent(e *etree.Element) string {
	if e == nil {
		return ""
	}
	parent := e.Parent()
	if parent == nil {
		return ""
	}
	if s, ok := lineIndent(precedingWhitespace(parent, e.Index())); ok {
		return s
	}
	return ""
}

// ChildIndent returns the indentation used for e's children: the sample taken from the run
// before e's first child element, or BaseIndent(e)+DetectUnit(e) when e has no such sample.
func ChildIndent(e *etree.Element) string {
	if s, ok := childSample(e); ok {
		return s
	}
	return BaseIndent(e) + DetectUnit(e)
}

// DetectUnit returns the indentation unit used inside e. Elements without a usable sample
// defer to their ancestors; DefaultUnit is returned when nothing on the way up has one.
// It never fails, including for childless or nil elements.
func DetectUnit(e *etree.Element) string {
	for cur := e; cur != nil; cur = cur.Parent() {
		child, ok := childSample(cur)
		if !ok {
			continue
		}
		base := BaseIndent(cur)
		if len(child) > len(base) && strings.HasPrefix(child, base) {
			return child[len(base):]
		}
	}
	return DefaultUnit
}

// Reindent rewrites the whitespace inside e for an element whose start tag sits at base,
// using unit per nesting level. Every whitespace-only run that contains a newline and
// precedes a child element or comment becomes its original newlines followed by base+unit;
// the run before e's closing tag becomes its newlines followed by base. Child elements are
// processed recursively. Runs without a newline (inline markup) and text-only elements are
// left alone. Running Reindent twice with the same arguments is a no-op the second time.
func Reindent(e *etree.Element, base, unit string) {
	if e == nil {
		return
	}
	childBase := base + unit
	hasElements := false
	for _, tok := range e.Child {
		if _, ok := tok.(*etree.Element); ok {
			hasElements = true
			break
		}
	}

	last := len(e.Child) - 1
	for i, tok := range e.Child {
		cd, ok := WhitespaceRun(tok)
		if !ok {
			continue
		}
		newlines := strings.Count(cd.Data, "\n")
		if newlines == 0 {
			continue
		}
		switch {
		case i < last && isStructural(e.Child[i+1]):
			cd.SetData(strings.Repeat("\n", newlines) + childBase)
		case i == last && hasElements:
			cd.SetData(strings.Repeat("\n", newlines) + base)
		}
	}

	for _, child := range e.ChildElements() {
		Reindent(child, childBase, unit)
	}
}

// Newline returns the whitespace run that places a new child of e on its own line.
func Newline(e *etree.Element) string {
	return "\n" + ChildIndent(e)
}

// ClosingRun returns the whitespace run that places e's closing tag on its own line.
func ClosingRun(e *etree.Element) string {
	return "\n" + BaseIndent(e)
}

// childSample returns the child indentation of e if the run before its first child
// element contains a newline.
func childSample(e *etree.Element) (string, bool) {
	if e == nil {
		return "", false
	}
	for i, tok := range e.Child {
		if _, ok := tok.(*etree.Element); ok {
			return lineIndent(precedingWhitespace(e, i))
		}
	}
	return "", false
}

// precedingWhitespace returns the whitespace-only run directly before parent.Child[i].
func precedingWhitespace(parent *etree.Element, i int) *etree.CharData {
	if i <= 0 || i > len(parent.Child) {
		return nil
	}
	cd, ok := WhitespaceRun(parent.Child[i-1])
	if !ok {
		return nil
	}
	return cd
}

// lineIndent returns the characters after the last newline of cd.
func lineIndent(cd *etree.CharData) (string, bool) {
	if cd == nil {
		return "", false
	}
	idx := strings.LastIndexByte(cd.Data, '\n')
	if idx < 0 {
		return "", false
	}
	return cd.Data[idx+1:], true
}

// WhitespaceRun returns tok as character data when it holds nothing but XML whitespace.
// The content is inspected directly: etree only flags whitespace on parsed tokens.
func WhitespaceRun(tok etree.Token) (*etree.CharData, bool) {
	cd, ok := tok.(*etree.CharData)
	if !ok || cd.IsCData() || strings.Trim(cd.Data, " \t\r\n") != "" {
		return nil, false
	}
	return cd, true
}

// NewRun returns an unparented whitespace token holding s.
func NewRun(s string) *etree.CharData {
	cd := etree.NewText("")
	cd.SetData(s)
	return cd
}

func isStructural(tok etree.Token) bool {
	switch tok.(type) {
	case *etree.Element, *etree.Comment:
		return true
	default:
		return false
	}
}
