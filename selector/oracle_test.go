package selector_test

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/andreygrigoriev/styledom/dom"
	"github.com/andreygrigoriev/styledom/selector"
)

// Cross-check the matcher against cascadia on a shared document: both
// see the same elements in document order, and must agree on every
// selector/element pair.

const oracleHTML = `<html><head><title>t</title></head><body>
<div id="main" class="content wide">
<h1 id="title">Heading</h1>
<p id="p1" class="note">one</p>
<p id="p2" lang="en-US">two</p>
<span id="s1"></span>
<span id="s2"> </span>
</div>
<div id="side"><p id="p3" class="note fine">three</p></div>
</body></html>`

var oracleSelectors = []string{
	"p", "div", "span", "*",
	".note", ".note.fine", ".content",
	"#main", "#p2", "div#side",
	"div p", "body p", "div div", "html span",
	"div > p", "body > p", "body > div > h1",
	"h1 + p", "p + p", "p + span", "h1 ~ span", "h1 ~ p",
	"[lang]", `[lang="en-US"]`, `[lang^="en"]`, `[lang$="US"]`,
	`[lang*="n-U"]`, `[class~="fine"]`,
	"p:first-child", "h1:first-child", "span:last-child",
	"p:only-child", "span:empty",
	"p:nth-child(2)", "p:nth-child(odd)", "p:nth-child(2n+1)",
}

func TestMatcherAgreesWithCascadia(t *testing.T) {
	root, err := html.Parse(strings.NewReader(oracleHTML))
	if err != nil {
		t.Fatal(err)
	}
	doc := dom.FromHTMLNode(root)

	var htmlEls []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			htmlEls = append(htmlEls, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	domEls := doc.Elements()
	if len(domEls) != len(htmlEls) {
		t.Fatalf("element count mismatch: dom %d, html %d", len(domEls), len(htmlEls))
	}
	for i := range domEls {
		if doc.Element(domEls[i]).TagName() != htmlEls[i].Data {
			t.Fatalf("element order mismatch at %d: %s vs %s",
				i, doc.Element(domEls[i]).TagName(), htmlEls[i].Data)
		}
	}

	for _, src := range oracleSelectors {
		sel, err := selector.Parse(src)
		if err != nil {
			t.Errorf("cannot parse %q: %v", src, err)
			continue
		}
		oracle, err := cascadia.Compile(src)
		if err != nil {
			t.Errorf("cascadia cannot parse %q: %v", src, err)
			continue
		}
		for i := range domEls {
			got := sel.Matches(doc.Element(domEls[i]))
			want := oracle.Match(htmlEls[i])
			if got != want {
				t.Errorf("%q on element %d (%s#%s): got %v, oracle says %v",
					src, i, doc.Element(domEls[i]).TagName(),
					doc.Element(domEls[i]).ID(), got, want)
			}
		}
	}
}
