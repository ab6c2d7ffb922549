package xmltree

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/beevik/etree"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ErrNoRoot is returned by Parse for input without a root element.
var ErrNoRoot = errors.New("document has no root element")

// Parsed is a document together with the formatting facts needed to write it back.
type Parsed struct {
	Doc *etree.Document
	// Newline is the line ending detected in the raw input ("\n" or "\r\n").
	Newline string
	// Charset is the declared encoding when it is not UTF-8, empty otherwise.
	Charset string
	// BOM records a leading UTF-8 byte order mark.
	BOM bool

	src *source
}

// Parse reads content into a tree that keeps every token of the source: declaration,
// comments, CDATA sections and whitespace runs. The source bytes of each token are kept so
// that Serialize reproduces untouched markup exactly. The XML decoder normalizes line
// endings to "\n" inside the tree; the original convention is reported in Parsed.Newline.
func Parse(content []byte) (*Parsed, error) {
	p := &Parsed{Newline: DetectNewline(content)}
	if bytes.HasPrefix(content, utf8BOM) {
		p.BOM = true
		content = content[len(utf8BOM):]
	}

	if label := declaredCharset(content); label != "" {
		enc, err := lookupCharset(label)
		if err != nil {
			return nil, err
		}
		if content, err = enc.NewDecoder().Bytes(content); err != nil {
			return nil, fmt.Errorf("decode %s: %w", label, err)
		}
		p.Charset = label
	}

	doc := etree.NewDocument()
	doc.ReadSettings.PreserveCData = true
	doc.ReadSettings.CharsetReader = identityCharset
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, ErrNoRoot
	}
	p.Doc = doc
	p.src = indexSource(doc, content)
	return p, nil
}

// Root returns the document element.
func (p *Parsed) Root() *etree.Element { return p.Doc.Root() }

// Serialize writes the document back. Tokens left untouched since Parse are copied from the
// source; edited and new ones are written canonically. Every "\n" in the output is replaced
// by newline and the result is encoded into the source charset, with the source BOM.
func (p *Parsed) Serialize(newline string) ([]byte, error) {
	w := newTokenWriter(p.src)
	w.writeChildren(&p.Doc.Element)
	return encode(w.buf.Bytes(), newline, p.Charset, p.BOM)
}

// declaredCharset returns the encoding named by the XML declaration when it is not UTF-8.
func declaredCharset(content []byte) string {
	var label string
	dec := xml.NewDecoder(bytes.NewReader(content))
	dec.CharsetReader = func(l string, input io.Reader) (io.Reader, error) {
		label = l
		return input, nil
	}
	_, _ = dec.RawToken()
	return label
}

func encode(out []byte, newline, charset string, bom bool) ([]byte, error) {
	// Source spans and comments keep raw "\r\n".
	out = bytes.ReplaceAll(out, []byte("\r\n"), []byte("\n"))

	if newline != "" && newline != "\n" {
		out = bytes.ReplaceAll(out, []byte("\n"), []byte(newline))
	}
	if charset != "" {
		enc, err := lookupCharset(charset)
		if err != nil {
			return nil, err
		}
		if out, err = enc.NewEncoder().Bytes(out); err != nil {
			return nil, fmt.Errorf("encode as %s: %w", charset, err)
		}
	}
	if bom {
		out = append(append([]byte(nil), utf8BOM...), out...)
	}
	return out, nil
}

// DetectNewline returns the first line ending found in content, "\n" when there is none.
func DetectNewline(content []byte) string {
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\r':
			if i+1 < len(content) && content[i+1] == '\n' {
				return "\r\n"
			}
		case '\n':
			return "\n"
		}
	}
	return "\n"
}
