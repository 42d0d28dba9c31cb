package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Andrey Grigoriev

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/andreygrigoriev/styledom/selector"
)

// NodeID is an index into a document's node arena.
type NodeID int32

// NoNode marks the absence of a node reference.
const NoNode NodeID = -1

// Kind discriminates the node types the engine cares about. Everything
// else in a source document (doctypes, processing instructions) is
// dropped during construction.
type Kind uint8

const (
	ElementNode Kind = iota
	TextNode
	CommentNode
)

// Attr is one element attribute.
type Attr struct {
	Name  string
	Value string
}

type node struct {
	kind       Kind
	tag        string // lower-case element name, empty for non-elements
	id         string // value of the id attribute
	classes    []string
	attrs      []Attr
	parent     NodeID
	prevSib    NodeID
	nextSib    NodeID
	firstChild NodeID
	lastChild  NodeID
}

// Document is an arena-owned tree of nodes. Parent and sibling links are
// indices into the shared node table, so there are no ownership cycles;
// navigation is cheap and the whole tree is freed together. A Document
// is read-only for the cascade engine: it only navigates, never mutates.
type Document struct {
	nodes []node
}

// NewDocument creates an empty document. Nodes are appended with
// AppendElement/AppendText/AppendComment; a parent always precedes its
// children in the arena, which is also the precondition Validate checks.
func NewDocument() *Document {
	return &Document{}
}

// AppendElement adds an element node as the last child of parent.
// Pass NoNode as parent for the root element.
func (d *Document) AppendElement(parent NodeID, tag string, attrs ...Attr) NodeID {
	n := node{
		kind:   ElementNode,
		tag:    strings.ToLower(tag),
		parent: parent,
		attrs:  attrs,
	}
	for _, a := range attrs {
		switch strings.ToLower(a.Name) {
		case "id":
			n.id = a.Value
		case "class":
			n.classes = strings.Fields(a.Value)
		}
	}
	return d.append(n)
}

// AppendText adds a text node as the last child of parent. The engine
// only needs its existence (sibling topology, :empty), not its content.
func (d *Document) AppendText(parent NodeID) NodeID {
	return d.append(node{kind: TextNode, parent: parent})
}

// AppendComment adds a comment node as the last child of parent.
func (d *Document) AppendComment(parent NodeID) NodeID {
	return d.append(node{kind: CommentNode, parent: parent})
}

func (d *Document) append(n node) NodeID {
	n.firstChild, n.lastChild = NoNode, NoNode
	n.prevSib, n.nextSib = NoNode, NoNode
	id := NodeID(len(d.nodes))
	if n.parent != NoNode {
		p := &d.nodes[n.parent]
		if p.lastChild != NoNode {
			n.prevSib = p.lastChild
			d.nodes[p.lastChild].nextSib = id
		} else {
			p.firstChild = id
		}
		p.lastChild = id
	}
	d.nodes = append(d.nodes, n)
	return id
}

// NodeCount returns the number of nodes in the arena.
func (d *Document) NodeCount() int {
	return len(d.nodes)
}

// Root returns the first top-level element, or NoNode for an empty
// document.
func (d *Document) Root() NodeID {
	for i := range d.nodes {
		if d.nodes[i].kind == ElementNode && d.nodes[i].parent == NoNode {
			return NodeID(i)
		}
	}
	return NoNode
}

// Elements returns the IDs of all element nodes in document order.
// Document order means a parent is listed before its children, which the
// cascade relies on for inheritance.
func (d *Document) Elements() []NodeID {
	var ids []NodeID
	for i := range d.nodes {
		if d.nodes[i].kind == ElementNode {
			ids = append(ids, NodeID(i))
		}
	}
	return ids
}

// ChildElements returns the element children of a node, in order.
func (d *Document) ChildElements(id NodeID) []NodeID {
	var out []NodeID
	for c := d.nodes[id].firstChild; c != NoNode; c = d.nodes[c].nextSib {
		if d.nodes[c].kind == ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// ErrCyclicTree flags a corrupted parent chain. Appending through the
// Document API cannot produce one; seeing this error means the input
// collaborator handed over a broken tree.
var ErrCyclicTree = errors.New("cyclic parent chain in document tree")

// Validate checks the arena invariant that every parent precedes its
// children, which rules out parent-chain cycles.
func (d *Document) Validate() error {
	for i := range d.nodes {
		p := d.nodes[i].parent
		if p != NoNode && (p >= NodeID(i) || p < 0) {
			return fmt.Errorf("node %d: %w", i, ErrCyclicTree)
		}
	}
	return nil
}

// --- Element context --------------------------------------------------

// Element is the read-only view of one element node, satisfying the
// matcher's element-context interface. It is a small value; copying is
// fine.
type Element struct {
	doc *Document
	id  NodeID
}

// Element returns the context view for an element node. It panics when
// the ID does not refer to an element; that is a programming error.
func (d *Document) Element(id NodeID) Element {
	if id < 0 || int(id) >= len(d.nodes) || d.nodes[id].kind != ElementNode {
		panic(fmt.Sprintf("dom: node %d is not an element", id))
	}
	return Element{doc: d, id: id}
}

// NodeID returns the arena index of this element.
func (e Element) NodeID() NodeID {
	return e.id
}

// TagName returns the lower-case element name.
func (e Element) TagName() string {
	return e.doc.nodes[e.id].tag
}

// ID returns the element's id attribute, or "".
func (e Element) ID() string {
	return e.doc.nodes[e.id].id
}

// HasClass reports whether the class attribute contains name.
func (e Element) HasClass(name string) bool {
	for _, c := range e.doc.nodes[e.id].classes {
		if c == name {
			return true
		}
	}
	return false
}

// Attr returns an attribute value. Names compare case-insensitively.
func (e Element) Attr(name string) (string, bool) {
	for _, a := range e.doc.nodes[e.id].attrs {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return "", false
}

// Parent returns the parent element, or nil at the root.
func (e Element) Parent() selector.Element {
	p := e.doc.nodes[e.id].parent
	if p == NoNode {
		return nil
	}
	return Element{doc: e.doc, id: p}
}

// ParentID returns the parent element's arena index, or NoNode.
func (e Element) ParentID() NodeID {
	return e.doc.nodes[e.id].parent
}

// PrevSiblingElement returns the closest preceding sibling that is an
// element, skipping text and comment nodes, or nil.
func (e Element) PrevSiblingElement() selector.Element {
	for s := e.doc.nodes[e.id].prevSib; s != NoNode; s = e.doc.nodes[s].prevSib {
		if e.doc.nodes[s].kind == ElementNode {
			return Element{doc: e.doc, id: s}
		}
	}
	return nil
}

// NextSiblingElement returns the closest following element sibling or nil.
func (e Element) NextSiblingElement() selector.Element {
	for s := e.doc.nodes[e.id].nextSib; s != NoNode; s = e.doc.nodes[s].nextSib {
		if e.doc.nodes[s].kind == ElementNode {
			return Element{doc: e.doc, id: s}
		}
	}
	return nil
}

// Empty reports whether the element has no child nodes at all.
func (e Element) Empty() bool {
	return e.doc.nodes[e.id].firstChild == NoNode
}

var _ selector.Element = Element{}
