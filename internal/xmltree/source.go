package xmltree

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// source maps the tokens of a parsed tree to the bytes they were read from. A token whose
// content still matches its record is written back verbatim, which keeps attribute layout,
// quoting, entity references and empty-element spelling as they were.
type source struct {
	elements map[*etree.Element]*rawElement
	leaves   map[etree.Token]rawLeaf
}

type rawElement struct {
	start string
	// end is empty for an element written as <a/>.
	end   string
	space string
	tag   string
	attrs []rawAttr
}

type rawAttr struct {
	space, key, value string
}

type rawLeaf struct {
	raw   string
	data  string
	cdata bool
}

type rawToken struct {
	tok xml.Token
	raw string
}

func identityCharset(_ string, input io.Reader) (io.Reader, error) { return input, nil }

// indexSource replays text through the decoder etree reads with and pairs every decoder
// token with the tree token built from it. It returns nil when the two streams disagree.
func indexSource(doc *etree.Document, text []byte) *source {
	dec := xml.NewDecoder(bytes.NewReader(text))
	dec.CharsetReader = identityCharset
	next := func() (rawToken, bool) {
		start := dec.InputOffset()
		tok, err := dec.RawToken()
		if err != nil {
			return rawToken{}, false
		}
		return rawToken{tok: xml.CopyToken(tok), raw: string(text[start:dec.InputOffset()])}, true
	}

	s := &source{
		elements: make(map[*etree.Element]*rawElement),
		leaves:   make(map[etree.Token]rawLeaf),
	}
	if !s.index(&doc.Element, next) {
		return nil
	}
	if _, more := next(); more {
		return nil
	}
	return s
}

func (s *source) index(parent *etree.Element, next func() (rawToken, bool)) bool {
	for _, child := range parent.Child {
		t, ok := next()
		if !ok {
			return false
		}
		switch c := child.(type) {
		case *etree.Element:
			if st, ok := t.tok.(xml.StartElement); !ok || st.Name.Space != c.Space || st.Name.Local != c.Tag {
				return false
			}
			re := &rawElement{start: t.raw, space: c.Space, tag: c.Tag, attrs: attrsOf(c)}
			if !s.index(c, next) {
				return false
			}
			end, ok := next()
			if !ok {
				return false
			}
			if _, ok := end.tok.(xml.EndElement); !ok {
				return false
			}
			re.end = end.raw
			s.elements[c] = re
		case *etree.CharData:
			if _, ok := t.tok.(xml.CharData); !ok {
				return false
			}
			s.leaves[c] = rawLeaf{raw: t.raw, data: c.Data, cdata: c.IsCData()}
		case *etree.Comment:
			if _, ok := t.tok.(xml.Comment); !ok {
				return false
			}
			s.leaves[c] = rawLeaf{raw: t.raw, data: c.Data}
		case *etree.Directive:
			if _, ok := t.tok.(xml.Directive); !ok {
				return false
			}
			s.leaves[c] = rawLeaf{raw: t.raw, data: c.Data}
		case *etree.ProcInst:
			if _, ok := t.tok.(xml.ProcInst); !ok {
				return false
			}
			s.leaves[c] = rawLeaf{raw: t.raw, data: procInstData(c)}
		default:
			return false
		}
	}
	return true
}

func attrsOf(el *etree.Element) []rawAttr {
	out := make([]rawAttr, len(el.Attr))
	for i, a := range el.Attr {
		out[i] = rawAttr{space: a.Space, key: a.Key, value: a.Value}
	}
	return out
}

func procInstData(p *etree.ProcInst) string { return p.Target + "?" + p.Inst }

// unchanged reports whether el still has the name and attributes it was read with.
func (r *rawElement) unchanged(el *etree.Element) bool {
	if r.space != el.Space || r.tag != el.Tag || len(r.attrs) != len(el.Attr) {
		return false
	}
	for i, a := range el.Attr {
		if r.attrs[i] != (rawAttr{space: a.Space, key: a.Key, value: a.Value}) {
			return false
		}
	}
	return true
}

// tokenWriter serializes a tree, preferring recorded source bytes. With a nil source every
// token is written in etree's canonical form.
type tokenWriter struct {
	buf      bytes.Buffer
	src      *source
	settings etree.WriteSettings
}

func newTokenWriter(src *source) *tokenWriter {
	w := &tokenWriter{src: src}
	w.settings.CanonicalText = true
	return w
}

func (w *tokenWriter) writeChildren(parent *etree.Element) {
	for _, child := range parent.Child {
		w.writeToken(child)
	}
}

func (w *tokenWriter) writeToken(tok etree.Token) {
	if el, ok := tok.(*etree.Element); ok {
		w.writeElement(el)
		return
	}
	if w.src != nil {
		if leaf, ok := w.src.leaves[tok]; ok && leaf.data == leafData(tok) && leaf.cdata == isCData(tok) {
			w.buf.WriteString(leaf.raw)
			return
		}
	}
	tok.WriteTo(&w.buf, &w.settings)
}

func (w *tokenWriter) writeElement(el *etree.Element) {
	var r *rawElement
	if w.src != nil {
		if rec, ok := w.src.elements[el]; ok && rec.unchanged(el) {
			r = rec
		}
	}
	selfClosing := r != nil && r.end == ""

	switch {
	case r == nil:
		w.writeStartTag(el, len(el.Child) == 0)
		if len(el.Child) == 0 {
			return
		}
	case len(el.Child) == 0 && selfClosing:
		w.buf.WriteString(r.start)
		return
	case selfClosing:
		w.buf.WriteString(strings.TrimRight(strings.TrimSuffix(r.start, "/>"), " \t\r\n"))
		w.buf.WriteByte('>')
	default:
		w.buf.WriteString(r.start)
	}

	w.writeChildren(el)

	if r != nil && !selfClosing {
		w.buf.WriteString(r.end)
		return
	}
	w.buf.WriteString("</")
	w.buf.WriteString(el.FullTag())
	w.buf.WriteByte('>')
}

func (w *tokenWriter) writeStartTag(el *etree.Element, empty bool) {
	w.buf.WriteByte('<')
	w.buf.WriteString(el.FullTag())
	for _, a := range el.Attr {
		w.buf.WriteByte(' ')
		a.WriteTo(&w.buf, &w.settings)
	}
	if empty {
		w.buf.WriteString("/>")
		return
	}
	w.buf.WriteByte('>')
}

func leafData(tok etree.Token) string {
	switch t := tok.(type) {
	case *etree.CharData:
		return t.Data
	case *etree.Comment:
		return t.Data
	case *etree.Directive:
		return t.Data
	case *etree.ProcInst:
		return procInstData(t)
	}
	return ""
}

func isCData(tok etree.Token) bool {
	cd, ok := tok.(*etree.CharData)
	return ok && cd.IsCData()
}
