package styledom

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/andreygrigoriev/styledom/dom"
	"github.com/andreygrigoriev/styledom/sheet"
	"github.com/andreygrigoriev/styledom/term"
)

func TestNewRejectsIncompleteConfig(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*Config)
		want error
	}{
		{"parser", func(c *Config) { c.Parser = nil }, ErrNoParser},
		{"terms", func(c *Config) { c.Terms = nil }, ErrNoTerms},
		{"supported", func(c *Config) { c.Supported = nil }, ErrNoSupported},
		{"stores", func(c *Config) { c.Stores = nil }, ErrNoStores},
	}
	for _, c := range cases {
		cfg := DefaultConfig()
		c.mod(&cfg)
		if _, err := New(cfg); err != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, err)
		}
	}
	if _, err := New(DefaultConfig()); err != nil {
		t.Errorf("default configuration must construct, got %v", err)
	}
}

const testPage = `<html><body>
<div id="main" style="margin-top: 10px">
  <h1>Title</h1>
  <p class="note">one</p>
  <p>two</p>
</div>
</body></html>`

const testCSS = `
p { color: #0000ff }
.note { color: #ff0000; font-size: 12pt !important }
div { color: #00ff00; font-size: 10pt }
@media print { p { color: #000000 } }
`

func TestEndToEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledom")
	defer teardown()
	engine, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s, err := engine.ParseSheet(testCSS, sheet.Author)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := dom.FromHTML(strings.NewReader(testPage))
	if err != nil {
		t.Fatal(err)
	}
	styles, err := engine.Style(doc, s, "screen", true)
	if err != nil {
		t.Fatal(err)
	}

	els := doc.Elements()
	byID := make(map[string]dom.NodeID)
	byTag := make(map[string]dom.NodeID)
	for _, id := range els {
		e := doc.Element(id)
		if e.ID() != "" {
			byID[e.ID()] = id
		}
		byTag[e.TagName()] = id
	}
	var note dom.NodeID
	for _, id := range els {
		if doc.Element(id).HasClass("note") {
			note = id
		}
	}

	// .note beats p on specificity
	if v, _ := styles[note].Get("color"); !v.Equals(term.Color{R: 0xff, A: 0xff}) {
		t.Errorf("note color: expected red, got %v", v)
	}
	// the print rule does not apply on screen
	if v, _ := styles[byTag["p"]].Get("color"); !v.Equals(term.Color{B: 0xff, A: 0xff}) {
		t.Errorf("plain p color: expected blue, got %v", v)
	}
	// inline style wins for the div
	if v, _ := styles[byID["main"]].Get("margin-top"); !v.Equals(term.Number{Value: 10, Unit: "px"}) {
		t.Errorf("div margin-top: expected inline 10px, got %v", v)
	}
	// h1 inherits color from the div
	if v, _ := styles[byTag["h1"]].Get("color"); !v.Equals(term.Color{G: 0xff, A: 0xff}) {
		t.Errorf("h1 color: expected inherited green, got %v", v)
	}
	// !important beats the div's font-size on .note, 12pt survives
	if v, _ := styles[note].Get("font-size"); !v.Equals(term.Number{Value: 12, Unit: "pt"}) {
		t.Errorf("note font-size: expected 12pt, got %v", v)
	}
	// every element got a full property map
	for _, id := range els {
		if styles[id] == nil || len(styles[id].Names()) == 0 {
			t.Errorf("element %d has no style store", id)
		}
	}
}

func TestEndToEndPrintMedium(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledom")
	defer teardown()
	engine, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	s, err := engine.ParseSheet(testCSS, sheet.Author)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := dom.FromHTML(strings.NewReader(testPage))
	if err != nil {
		t.Fatal(err)
	}
	styles, err := engine.Style(doc, s, "print", false)
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range doc.Elements() {
		e := doc.Element(id)
		if e.TagName() == "p" && !e.HasClass("note") {
			if v, _ := styles[id].Get("color"); !v.Equals(term.Color{A: 0xff}) {
				t.Errorf("in print the p color must be black, got %v", v)
			}
		}
	}
}

func TestMultiOriginComposition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styledom")
	defer teardown()
	engine, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	ua, err := engine.ParseSheet(`p { color: #000000; font-size: 12pt }`, sheet.UserAgent)
	if err != nil {
		t.Fatal(err)
	}
	author, err := engine.ParseSheet(`p { color: #ff0000 }`, sheet.Author)
	if err != nil {
		t.Fatal(err)
	}
	combined := sheet.New(sheet.Author)
	combined.Append(ua)
	combined.Append(author)

	doc, err := dom.FromHTML(strings.NewReader(`<html><body><p>x</p></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	styles, err := engine.Style(doc, combined, "screen", false)
	if err != nil {
		t.Fatal(err)
	}
	var p dom.NodeID
	for _, id := range doc.Elements() {
		if doc.Element(id).TagName() == "p" {
			p = id
		}
	}
	if v, _ := styles[p].Get("color"); !v.Equals(term.Color{R: 0xff, A: 0xff}) {
		t.Errorf("author color must override the user agent, got %v", v)
	}
	if v, _ := styles[p].Get("font-size"); !v.Equals(term.Number{Value: 12, Unit: "pt"}) {
		t.Errorf("uncontested user-agent declaration must survive, got %v", v)
	}
}
