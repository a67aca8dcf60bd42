package polycom

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"polyconf/models"
)

// Prolog is the declaration the phone loader expects.
const Prolog = `<?xml version="1.0" encoding="utf-8" standalone="yes"?>`

// genericProlog is what the tree writer emits before it is swapped for Prolog.
const genericProlog = `<?xml version="1.0" ?>`

// Indent per nesting level.
const Indent = "    "

// Attr - a single key/value pair on an element
type Attr struct {
	Key   string
	Value string
}

// Element - a tag with ordered attributes and children
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
}

// NewElement -
func NewElement(tag string, attrs ...Attr) *Element {
	e := &Element{Tag: tag}
	for _, a := range attrs {
		e.Set(a.Key, a.Value)
	}
	return e
}

// SubElement - appends a child element and returns it
func (e *Element) SubElement(tag string, attrs ...Attr) *Element {
	child := NewElement(tag, attrs...)
	e.Children = append(e.Children, child)
	return child
}

// Set - assigns key, keeping its original position if it already exists
func (e *Element) Set(key, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Key == key {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
}

// Get -
func (e *Element) Get(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Find - first direct child with the given tag
func (e *Element) Find(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Document - a complete provisioning file
type Document struct {
	Root *Element
}

// Marshal - pretty prints the document with the Polycom prolog
func (d *Document) Marshal() ([]byte, error) {

	var b strings.Builder

	b.WriteString(genericProlog)
	b.WriteByte('\n')

	if d.Root != nil {
		if err := writeElement(&b, d.Root, 0); err != nil {
			return nil, err
		}
	}

	// the generic declaration carries neither encoding nor standalone
	out := strings.Replace(b.String(), genericProlog, Prolog, 1)

	return []byte(out), nil
}

func writeElement(b *strings.Builder, e *Element, depth int) error {

	pad := strings.Repeat(Indent, depth)

	b.WriteString(pad)
	b.WriteByte('<')
	b.WriteString(e.Tag)

	for _, a := range e.Attrs {
		if err := checkChars(a.Value); err != nil {
			return &models.MalformedInputError{Field: a.Key, Err: err}
		}
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(attrEscaper.Replace(a.Value))
		b.WriteByte('"')
	}

	if len(e.Children) == 0 {
		b.WriteString("/>\n")
		return nil
	}

	b.WriteString(">\n")

	for _, c := range e.Children {
		if err := writeElement(b, c, depth+1); err != nil {
			return err
		}
	}

	b.WriteString(pad)
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteString(">\n")

	return nil
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\r", "&#13;",
	"\n", "&#10;",
	"\t", "&#9;",
)

// checkChars rejects text no XML 1.0 document may contain.
func checkChars(s string) error {
	if !utf8.ValidString(s) {
		return fmt.Errorf("value is not valid utf-8")
	}
	for _, r := range s {
		if !isXMLChar(r) {
			return fmt.Errorf("character %U is not allowed in xml", r)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
