package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Andrey Grigoriev

*/

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// FromHTML parses an HTML document and builds its arena tree. Element,
// text and comment nodes are kept, doctypes are dropped. Text nodes are
// kept even when whitespace-only: an element containing nothing but
// whitespace is not :empty. The parse never fails on malformed input,
// following the HTML parsing algorithm.
func FromHTML(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return FromHTMLNode(root), nil
}

// FromHTMLNode builds an arena tree from an already parsed HTML node.
// The node itself is included unless it is the synthetic document node,
// in which case its children are ingested directly.
func FromHTMLNode(n *html.Node) *Document {
	d := NewDocument()
	if n.Type == html.DocumentNode {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			d.ingest(c, NoNode)
		}
	} else {
		d.ingest(n, NoNode)
	}
	return d
}

func (d *Document) ingest(n *html.Node, parent NodeID) {
	switch n.Type {
	case html.ElementNode:
		attrs := make([]Attr, 0, len(n.Attr))
		for _, a := range n.Attr {
			attrs = append(attrs, Attr{Name: a.Key, Value: a.Val})
		}
		id := d.AppendElement(parent, n.Data, attrs...)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			d.ingest(c, id)
		}
	case html.TextNode:
		d.AppendText(parent)
	case html.CommentNode:
		d.AppendComment(parent)
	}
}

// StyleSources walks an HTML document for embedded stylesheet text: the
// contents of every <style> element, in document order. Linked sheets
// are not fetched; their hrefs show up in Links.
type StyleSources struct {
	Inline []string // contents of <style> elements
	Links  []string // hrefs of <link rel="stylesheet"> elements
}

// ExtractStyleSources collects <style> contents and stylesheet link
// targets from a parsed HTML tree.
func ExtractStyleSources(root *html.Node) StyleSources {
	var src StyleSources
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Style:
				var sb strings.Builder
				for c := n.FirstChild; c != nil; c = c.NextSibling {
					if c.Type == html.TextNode {
						sb.WriteString(c.Data)
					}
				}
				src.Inline = append(src.Inline, sb.String())
			case atom.Link:
				if linkIsStylesheet(n) {
					for _, a := range n.Attr {
						if strings.EqualFold(a.Key, "href") && a.Val != "" {
							src.Links = append(src.Links, a.Val)
						}
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return src
}

func linkIsStylesheet(n *html.Node) bool {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, "rel") {
			for _, f := range strings.Fields(a.Val) {
				if strings.EqualFold(f, "stylesheet") {
					return true
				}
			}
		}
	}
	return false
}
