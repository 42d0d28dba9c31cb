package selector

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Andrey Grigoriev

*/

import (
	"strconv"
	"strings"
)

// Element is the read-only view of a document element a selector is
// matched against. Implementations expose tree shape only; the matcher
// never mutates or caches anything on the element.
//
// Parent, PrevSiblingElement and NextSiblingElement return nil when no
// such element exists. Sibling navigation is over element nodes only;
// text and comment nodes are invisible here.
type Element interface {
	TagName() string
	ID() string
	HasClass(name string) bool
	Attr(name string) (string, bool)
	Parent() Element
	PrevSiblingElement() Element
	NextSiblingElement() Element
	Empty() bool // no child nodes at all, text included
}

// Matches decides whether the selector matches at the given element.
// Groups are evaluated right to left: the rightmost group must hold at
// the element itself, every further group is resolved against its
// combinator by walking the ancestor or sibling axis.
func (sel Selector) Matches(e Element) bool {
	if len(sel.Parts) == 0 || e == nil {
		return false
	}
	i := len(sel.Parts) - 1
	if !sel.Parts[i].Group.matches(e) {
		return false
	}
	current := e
	for i > 0 {
		comb := sel.Parts[i].Combinator
		i--
		g := sel.Parts[i].Group
		switch comb {
		case Descendant:
			matched := false
			for anc := current.Parent(); anc != nil; anc = anc.Parent() {
				if g.matches(anc) {
					current = anc
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		case Child:
			parent := current.Parent()
			if parent == nil || !g.matches(parent) {
				return false
			}
			current = parent
		case AdjacentSibling:
			prev := current.PrevSiblingElement()
			if prev == nil || !g.matches(prev) {
				return false
			}
			current = prev
		case GeneralSibling:
			matched := false
			for prev := current.PrevSiblingElement(); prev != nil; prev = prev.PrevSiblingElement() {
				if g.matches(prev) {
					current = prev
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func (g Group) matches(e Element) bool {
	if g.Tag != "" && g.Tag != "*" && !strings.EqualFold(g.Tag, e.TagName()) {
		return false
	}
	for _, id := range g.IDs {
		if e.ID() != id {
			return false
		}
	}
	for _, class := range g.Classes {
		if !e.HasClass(class) {
			return false
		}
	}
	for _, am := range g.Attrs {
		if !am.matches(e) {
			return false
		}
	}
	for _, pc := range g.Pseudos {
		if !pc.matches(e) {
			return false
		}
	}
	// pseudo-elements address generated boxes, not elements; a selector
	// carrying one never selects an element for styling
	return g.PseudoElement == ""
}

func (am AttrMatcher) matches(e Element) bool {
	v, ok := e.Attr(am.Name)
	if !ok {
		return false
	}
	switch am.Op {
	case AttrExists:
		return true
	case AttrEquals:
		return v == am.Value
	case AttrWord:
		for _, w := range strings.Fields(v) {
			if w == am.Value {
				return true
			}
		}
		return false
	case AttrPrefix:
		return am.Value != "" && strings.HasPrefix(v, am.Value)
	case AttrSuffix:
		return am.Value != "" && strings.HasSuffix(v, am.Value)
	case AttrSubstring:
		return am.Value != "" && strings.Contains(v, am.Value)
	}
	return false
}

// matches evaluates the pseudo-classes this engine understands. Anything
// else fails closed: an unknown pseudo-class never selects, it does not
// raise an error.
func (pc PseudoClass) matches(e Element) bool {
	switch pc.Name {
	case "root":
		return e.Parent() == nil
	case "empty":
		return e.Empty()
	case "first-child":
		return e.PrevSiblingElement() == nil
	case "last-child":
		return e.NextSiblingElement() == nil
	case "only-child":
		return e.PrevSiblingElement() == nil && e.NextSiblingElement() == nil
	case "nth-child":
		a, b, ok := parseNth(pc.Arg)
		if !ok {
			return false
		}
		pos := 1
		for prev := e.PrevSiblingElement(); prev != nil; prev = prev.PrevSiblingElement() {
			pos++
		}
		return nthMatches(a, b, pos)
	default:
		return false
	}
}

// nthMatches reports whether pos = a*n + b for some n >= 0.
func nthMatches(a, b, pos int) bool {
	if a == 0 {
		return pos == b
	}
	diff := pos - b
	if a > 0 {
		return diff >= 0 && diff%a == 0
	}
	return diff <= 0 && diff%a == 0
}

// parseNth parses the an+b micro-syntax, including the odd/even keywords.
func parseNth(arg string) (a, b int, ok bool) {
	s := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(arg)), " ", "")
	switch s {
	case "odd":
		return 2, 1, true
	case "even":
		return 2, 0, true
	case "":
		return 0, 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return 0, n, true
	}
	nIdx := strings.IndexByte(s, 'n')
	if nIdx < 0 {
		return 0, 0, false
	}
	switch aStr := s[:nIdx]; aStr {
	case "", "+":
		a = 1
	case "-":
		a = -1
	default:
		var err error
		if a, err = strconv.Atoi(aStr); err != nil {
			return 0, 0, false
		}
	}
	if bStr := s[nIdx+1:]; bStr != "" {
		var err error
		if b, err = strconv.Atoi(strings.TrimPrefix(bStr, "+")); err != nil {
			return 0, 0, false
		}
	}
	return a, b, true
}
