/*
Package domdbg renders styled document trees for debugging.

Sprint produces an ASCII tree of the element structure, annotating each
element with a chosen subset of its computed style properties. It is
meant for test logs and interactive inspection, not for serialization.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Andrey Grigoriev
*/
package domdbg

import (
	"fmt"
	"strings"

	tp "github.com/xlab/treeprint"

	"github.com/andreygrigoriev/styledom/cascade"
	"github.com/andreygrigoriev/styledom/dom"
)

// Sprint renders the element tree of a document. For every element, the
// values of the given properties are appended from its style store, in
// the order given. Styles may be nil, and properties may be empty; then
// only the structure is printed.
func Sprint(doc *dom.Document, styles cascade.StyleMap, properties ...string) string {
	root := doc.Root()
	if root == dom.NoNode {
		return "(empty document)\n"
	}
	printer := tp.New()
	printElement(printer, doc, root, styles, properties)
	return printer.String()
}

func printElement(printer tp.Tree, doc *dom.Document, id dom.NodeID, styles cascade.StyleMap, properties []string) {
	label := elementLabel(doc.Element(id), styles[id], properties)
	children := doc.ChildElements(id)
	if len(children) == 0 {
		printer.AddNode(label)
		return
	}
	branch := printer.AddBranch(label)
	for _, ch := range children {
		printElement(branch, doc, ch, styles, properties)
	}
}

func elementLabel(e dom.Element, store cascade.NodeData, properties []string) string {
	var sb strings.Builder
	sb.WriteString(e.TagName())
	if id := e.ID(); id != "" {
		sb.WriteString("#" + id)
	}
	if store != nil {
		var props []string
		for _, name := range properties {
			if v, ok := store.Get(name); ok {
				props = append(props, fmt.Sprintf("%s=%s", name, v))
			}
		}
		if len(props) > 0 {
			sb.WriteString("  [" + strings.Join(props, " ") + "]")
		}
	}
	return sb.String()
}
