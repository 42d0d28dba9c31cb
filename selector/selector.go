package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Andrey Grigoriev

*/

import "strings"

// Combinator joins two simple-selector groups and expresses a structural
// tree relationship between them.
type Combinator int

const (
	NoCombinator   Combinator = iota // first group of a selector
	Descendant                       // whitespace
	Child                            // >
	AdjacentSibling                  // +
	GeneralSibling                   // ~
)

func (c Combinator) String() string {
	switch c {
	case Descendant:
		return " "
	case Child:
		return " > "
	case AdjacentSibling:
		return " + "
	case GeneralSibling:
		return " ~ "
	}
	return ""
}

// AttrOp is the comparison operator of an attribute matcher.
type AttrOp int

const (
	AttrExists    AttrOp = iota // [attr]
	AttrEquals                  // [attr=value]
	AttrWord                    // [attr~=value]
	AttrPrefix                  // [attr^=value]
	AttrSuffix                  // [attr$=value]
	AttrSubstring               // [attr*=value]
)

var attrOpText = map[AttrOp]string{
	AttrEquals:    "=",
	AttrWord:      "~=",
	AttrPrefix:    "^=",
	AttrSuffix:    "$=",
	AttrSubstring: "*=",
}

// AttrMatcher tests a single element attribute. Attribute names are
// matched case-insensitively, values case-sensitively.
type AttrMatcher struct {
	Name  string
	Op    AttrOp
	Value string
}

func (am AttrMatcher) String() string {
	if am.Op == AttrExists {
		return "[" + am.Name + "]"
	}
	return "[" + am.Name + attrOpText[am.Op] + "\"" + am.Value + "\"]"
}

// PseudoClass is a pseudo-class matcher with an optional argument, as in
// :first-child or :nth-child(2n+1).
type PseudoClass struct {
	Name string
	Arg  string
}

func (pc PseudoClass) String() string {
	if pc.Arg == "" {
		return ":" + pc.Name
	}
	return ":" + pc.Name + "(" + pc.Arg + ")"
}

// Group is a conjunction of simple-selector matchers which all have to
// hold at a single element ("compound selector" in CSS parlance).
type Group struct {
	Tag           string // "" or "*" matches any element
	IDs           []string
	Classes       []string
	Attrs         []AttrMatcher
	Pseudos       []PseudoClass
	PseudoElement string
}

// IsEmpty is true for a group without any matcher.
func (g Group) IsEmpty() bool {
	return g.Tag == "" && len(g.IDs) == 0 && len(g.Classes) == 0 &&
		len(g.Attrs) == 0 && len(g.Pseudos) == 0 && g.PseudoElement == ""
}

func (g Group) String() string {
	var b strings.Builder
	b.WriteString(g.Tag)
	for _, id := range g.IDs {
		b.WriteString("#" + id)
	}
	for _, c := range g.Classes {
		b.WriteString("." + c)
	}
	for _, a := range g.Attrs {
		b.WriteString(a.String())
	}
	for _, p := range g.Pseudos {
		b.WriteString(p.String())
	}
	if g.PseudoElement != "" {
		b.WriteString("::" + g.PseudoElement)
	}
	return b.String()
}

// Part is one step of a selector: a group plus the combinator linking it
// to the part on its left. The first part carries NoCombinator.
type Part struct {
	Combinator Combinator
	Group      Group
}

// Selector is an ordered sequence of parts, e.g. "div > p.note" becomes
// [{NoCombinator div} {Child p.note}]. Selectors are immutable once
// parsed; a comma-separated selector list is a []Selector on the rule.
type Selector struct {
	Parts []Part
}

func (sel Selector) String() string {
	var b strings.Builder
	for _, p := range sel.Parts {
		b.WriteString(p.Combinator.String())
		b.WriteString(p.Group.String())
	}
	return b.String()
}

// --- Specificity ------------------------------------------------------

// Specificity is the matching weight of a selector: style-attribute flag,
// ID matchers, class+attribute+pseudo-class matchers, type matchers.
// Tuples compare lexicographically, higher wins.
type Specificity [4]int

// StyleAttribute is the specificity of a declaration coming from an
// element's style attribute; it outranks every selector-based one.
var StyleAttribute = Specificity{1, 0, 0, 0}

// Less reports s < other in cascade order.
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] != other[i] {
			return s[i] < other[i]
		}
	}
	return false
}

// Specificity computes the weight of a selector over all of its parts.
func (sel Selector) Specificity() Specificity {
	var s Specificity
	for _, p := range sel.Parts {
		g := p.Group
		s[1] += len(g.IDs)
		s[2] += len(g.Classes) + len(g.Attrs) + len(g.Pseudos)
		if g.Tag != "" && g.Tag != "*" {
			s[3]++
		}
		if g.PseudoElement != "" {
			s[3]++
		}
	}
	return s
}
