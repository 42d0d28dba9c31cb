package selector

import (
	"testing"
)

func mustParse(t *testing.T, src string) Selector {
	t.Helper()
	sel, err := Parse(src)
	if err != nil {
		t.Fatalf("cannot parse %q: %v", src, err)
	}
	return sel
}

func TestParseSimple(t *testing.T) {
	sel := mustParse(t, "div")
	if len(sel.Parts) != 1 || sel.Parts[0].Group.Tag != "div" {
		t.Errorf("expected single type selector, got %v", sel)
	}
	if sel.Parts[0].Combinator != NoCombinator {
		t.Errorf("first part must carry no combinator")
	}
}

func TestParseCompound(t *testing.T) {
	sel := mustParse(t, "p#intro.note.fine[href][lang=en]:first-child")
	if len(sel.Parts) != 1 {
		t.Fatalf("expected one part, got %d", len(sel.Parts))
	}
	g := sel.Parts[0].Group
	if g.Tag != "p" || len(g.IDs) != 1 || g.IDs[0] != "intro" {
		t.Errorf("tag/id wrong: %v", g)
	}
	if len(g.Classes) != 2 || g.Classes[0] != "note" || g.Classes[1] != "fine" {
		t.Errorf("classes wrong: %v", g.Classes)
	}
	if len(g.Attrs) != 2 || g.Attrs[0].Op != AttrExists || g.Attrs[1].Op != AttrEquals {
		t.Errorf("attrs wrong: %v", g.Attrs)
	}
	if len(g.Pseudos) != 1 || g.Pseudos[0].Name != "first-child" {
		t.Errorf("pseudos wrong: %v", g.Pseudos)
	}
}

func TestParseCombinators(t *testing.T) {
	cases := []struct {
		src  string
		comb Combinator
	}{
		{"div p", Descendant},
		{"div > p", Child},
		{"div>p", Child},
		{"div + p", AdjacentSibling},
		{"div ~ p", GeneralSibling},
	}
	for _, c := range cases {
		sel := mustParse(t, c.src)
		if len(sel.Parts) != 2 {
			t.Errorf("%q: expected two parts, got %d", c.src, len(sel.Parts))
			continue
		}
		if sel.Parts[1].Combinator != c.comb {
			t.Errorf("%q: expected combinator %v on second part, got %v",
				c.src, c.comb, sel.Parts[1].Combinator)
		}
		if sel.Parts[1].Group.Tag != "p" {
			t.Errorf("%q: second group should be the p selector", c.src)
		}
	}
}

func TestParseLongChain(t *testing.T) {
	sel := mustParse(t, "body div.a > p + span ~ em")
	if len(sel.Parts) != 5 {
		t.Fatalf("expected 5 parts, got %d", len(sel.Parts))
	}
	combs := []Combinator{NoCombinator, Descendant, Child, AdjacentSibling, GeneralSibling}
	for i, want := range combs {
		if sel.Parts[i].Combinator != want {
			t.Errorf("part %d: expected combinator %v, got %v", i, want, sel.Parts[i].Combinator)
		}
	}
}

func TestParseAttributeOperators(t *testing.T) {
	cases := []struct {
		src string
		op  AttrOp
	}{
		{`[href]`, AttrExists},
		{`[lang=en]`, AttrEquals},
		{`[rel~="nofollow"]`, AttrWord},
		{`[href^="https"]`, AttrPrefix},
		{`[src$=".png"]`, AttrSuffix},
		{`[title*="part"]`, AttrSubstring},
	}
	for _, c := range cases {
		sel := mustParse(t, c.src)
		g := sel.Parts[0].Group
		if len(g.Attrs) != 1 || g.Attrs[0].Op != c.op {
			t.Errorf("%q: expected operator %v, got %v", c.src, c.op, g.Attrs)
		}
	}
}

func TestParseFunctionalPseudoClass(t *testing.T) {
	sel := mustParse(t, "li:nth-child(2n+1)")
	g := sel.Parts[0].Group
	if len(g.Pseudos) != 1 || g.Pseudos[0].Name != "nth-child" || g.Pseudos[0].Arg != "2n+1" {
		t.Errorf("expected nth-child(2n+1), got %v", g.Pseudos)
	}
}

func TestParsePseudoElements(t *testing.T) {
	sel := mustParse(t, "p::before")
	if sel.Parts[0].Group.PseudoElement != "before" {
		t.Errorf("expected pseudo-element, got %v", sel.Parts[0].Group)
	}
	// single-colon form still accepted for the CSS1 pseudo-elements
	sel = mustParse(t, "p:first-line")
	if sel.Parts[0].Group.PseudoElement != "first-line" {
		t.Errorf("expected legacy pseudo-element, got %v", sel.Parts[0].Group)
	}
	// :hover is a pseudo-class, not an element
	sel = mustParse(t, "a:hover")
	g := sel.Parts[0].Group
	if g.PseudoElement != "" || len(g.Pseudos) != 1 || g.Pseudos[0].Name != "hover" {
		t.Errorf("expected pseudo-class hover, got %v", g)
	}
}

func TestParseUniversal(t *testing.T) {
	sel := mustParse(t, "* > p")
	if sel.Parts[0].Group.Tag != "*" {
		t.Errorf("expected universal selector, got %v", sel.Parts[0].Group)
	}
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{
		"",
		"   ",
		"div >",
		"> p",
		"div > > p",
		"p .",
		"[=foo]",
		"ns|div",
	} {
		if _, err := Parse(src); err == nil {
			t.Errorf("expected error for %q", src)
		}
	}
}

func TestSpecificity(t *testing.T) {
	cases := []struct {
		src  string
		want Specificity
	}{
		{"*", Specificity{0, 0, 0, 0}},
		{"li", Specificity{0, 0, 0, 1}},
		{"ul li", Specificity{0, 0, 0, 2}},
		{"h1 + *[rel=up]", Specificity{0, 0, 1, 1}},
		{"ul ol li.red", Specificity{0, 0, 1, 3}},
		{"li.red.level", Specificity{0, 0, 2, 1}},
		{"#x34y", Specificity{0, 1, 0, 0}},
		{"div#main p:first-child", Specificity{0, 1, 1, 2}},
		{"p::before", Specificity{0, 0, 0, 2}},
	}
	for _, c := range cases {
		got := mustParse(t, c.src).Specificity()
		if got != c.want {
			t.Errorf("%q: expected specificity %v, got %v", c.src, c.want, got)
		}
	}
}

func TestSpecificityLess(t *testing.T) {
	a := Specificity{0, 0, 11, 0} // eleven classes...
	b := Specificity{0, 1, 0, 0}  // ...still lose to one ID
	if !a.Less(b) || b.Less(a) {
		t.Error("ID slot must dominate any number of class matchers")
	}
	if StyleAttribute.Less(Specificity{0, 99, 99, 99}) {
		t.Error("style attribute outranks every selector")
	}
	if a.Less(a) {
		t.Error("Less must be irreflexive")
	}
}

func TestStringRoundtrip(t *testing.T) {
	for _, src := range []string{"div > p.note", "h1 + h2", "ul li", "a[href]:hover"} {
		sel := mustParse(t, src)
		resel, err := Parse(sel.String())
		if err != nil {
			t.Errorf("cannot reparse %q (from %q): %v", sel.String(), src, err)
			continue
		}
		if resel.String() != sel.String() {
			t.Errorf("unstable rendering: %q became %q", sel.String(), resel.String())
		}
	}
}
