// Package markup builds an element index over HTML documents.
package markup

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// Element is an HTML element in document order.
type Element struct {
	Tag   string // lower-cased tag name
	Attrs []html.Attribute
	Depth int // nesting level, <html> is 0

	node *html.Node
}

// Attr returns value of the named attribute (case-insensitive) and whether
// it is present at all. Empty attributes such as <p style> are present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// Text returns concatenated text content of the element.
func (e *Element) Text() string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(e.node)
	return sb.String()
}

// StyleRef is a <link rel="stylesheet"> reference.
type StyleRef struct {
	Href  string
	Media string
}

// StyleBlock is the content of a <style> element.
type StyleBlock struct {
	Index int // 1-based position among <style> elements of the document
	Text  string
	Media string
}

// Document is a parsed HTML document with element lookup.
type Document struct {
	Path     string
	Encoding string // name of detected or forced encoding

	elements []*Element
	byTag    map[string][]*Element
}

// Parse parses HTML read from r. When enc is nil encoding is detected from
// BOM and <meta> elements, UTF-8 otherwise.
func Parse(r io.Reader, path string, enc encoding.Encoding) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", path, err)
	}

	doc := &Document{Path: path, byTag: make(map[string][]*Element)}

	var rdr io.Reader
	if enc != nil {
		rdr = enc.NewDecoder().Reader(bytes.NewReader(data))
		if doc.Encoding, err = ianaindex.IANA.Name(enc); err != nil {
			doc.Encoding = "unknown"
		}
	} else {
		_, doc.Encoding, _ = charset.DetermineEncoding(data, "")
		if rdr, err = charset.NewReader(bytes.NewReader(data), ""); err != nil {
			return nil, fmt.Errorf("unable to decode %s: %w", path, err)
		}
	}

	root, err := html.Parse(rdr)
	if err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", path, err)
	}
	doc.index(root, -1)
	return doc, nil
}

func (d *Document) index(n *html.Node, depth int) {
	if n.Type == html.ElementNode {
		el := &Element{
			Tag:   strings.ToLower(n.Data),
			Attrs: n.Attr,
			Depth: depth,
			node:  n,
		}
		d.elements = append(d.elements, el)
		d.byTag[el.Tag] = append(d.byTag[el.Tag], el)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		next := depth
		if c.Type == html.ElementNode {
			next++
		}
		d.index(c, next)
	}
}

// Elements returns all elements in document order.
func (d *Document) Elements() []*Element {
	return d.elements
}

// ElementsByTag returns elements with given tag name in document order.
func (d *Document) ElementsByTag(tag string) []*Element {
	return d.byTag[strings.ToLower(strings.TrimSpace(tag))]
}

// CountTag returns number of elements with given tag name.
func (d *Document) CountTag(tag string) int {
	return len(d.ElementsByTag(tag))
}

// Has reports whether document contains at least one element with given tag.
func (d *Document) Has(tag string) bool {
	return d.CountTag(tag) > 0
}

// Tags returns distinct tag names present in the document in order of first
// appearance.
func (d *Document) Tags() []string {
	seen := make(map[string]bool, len(d.byTag))
	var out []string
	for _, el := range d.elements {
		if !seen[el.Tag] {
			seen[el.Tag] = true
			out = append(out, el.Tag)
		}
	}
	return out
}

// WithAttribute returns elements carrying the named attribute regardless of
// its value.
func (d *Document) WithAttribute(name string) []*Element {
	var out []*Element
	for _, el := range d.elements {
		if _, ok := el.Attr(name); ok {
			out = append(out, el)
		}
	}
	return out
}

// StylesheetRefs returns hrefs of linked stylesheets in document order.
// Alternate stylesheets are included, links without href are not.
func (d *Document) StylesheetRefs() []StyleRef {
	var out []StyleRef
	for _, el := range d.byTag[atom.Link.String()] {
		rel, _ := el.Attr("rel")
		if !hasToken(rel, "stylesheet") {
			continue
		}
		href, _ := el.Attr("href")
		if href = strings.TrimSpace(href); href == "" {
			continue
		}
		media, _ := el.Attr("media")
		out = append(out, StyleRef{Href: href, Media: media})
	}
	return out
}

// StyleBlocks returns contents of <style> elements in document order.
func (d *Document) StyleBlocks() []StyleBlock {
	var out []StyleBlock
	for i, el := range d.byTag[atom.Style.String()] {
		media, _ := el.Attr("media")
		out = append(out, StyleBlock{Index: i + 1, Text: el.Text(), Media: media})
	}
	return out
}

// hasToken checks space separated token list (rel attribute) for token.
func hasToken(list, token string) bool {
	for _, t := range strings.Fields(list) {
		if strings.EqualFold(t, token) {
			return true
		}
	}
	return false
}
