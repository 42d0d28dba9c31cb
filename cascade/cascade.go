package cascade

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Andrey Grigoriev

*/

import (
	"errors"
	"fmt"
	"sort"

	"github.com/andreygrigoriev/styledom/dom"
	"github.com/andreygrigoriev/styledom/selector"
	"github.com/andreygrigoriev/styledom/sheet"
	"github.com/andreygrigoriev/styledom/supported"
)

// DeclarationParser parses the contents of an inline style attribute
// into declarations. It is optional: without one, style attributes are
// ignored.
type DeclarationParser interface {
	ParseDeclarations(src string) ([]sheet.Declaration, error)
}

// Config names the collaborators of an Analyzer. Every field except
// Inline is required.
type Config struct {
	Supported supported.CSS     // capability table; decides support and inheritance
	Stores    StoreFactory      // creates the per-element store
	Inline    DeclarationParser // optional; enables the style attribute
}

// Errors returned by New when the configuration is incomplete or the
// stylesheet violates its invariants.
var (
	ErrNoStyleSheet = errors.New("cascade: no stylesheet")
	ErrNoSupported  = errors.New("cascade: no supported-property table configured")
	ErrNoStores     = errors.New("cascade: no store factory configured")
)

// Analyzer runs the cascade for one stylesheet. It is stateless across
// runs and safe for concurrent Assign calls on different documents.
type Analyzer struct {
	sheet  *sheet.StyleSheet
	config Config
}

// New creates an Analyzer. The stylesheet and all required collaborators
// are checked up front; a rule without selectors is rejected here rather
// than surfacing mid-cascade.
func New(s *sheet.StyleSheet, cfg Config) (*Analyzer, error) {
	if s == nil {
		return nil, ErrNoStyleSheet
	}
	if cfg.Supported == nil {
		return nil, ErrNoSupported
	}
	if cfg.Stores == nil {
		return nil, ErrNoStores
	}
	for i, r := range s.Rules() {
		if len(r.Selectors) == 0 {
			return nil, fmt.Errorf("rule %d: %w", i, sheet.ErrNoSelectors)
		}
	}
	return &Analyzer{sheet: s, config: cfg}, nil
}

// candidate is one declaration applying to an element, together with
// everything the cascade sorts by. seq disambiguates declarations within
// one block, keeping the sort fully deterministic.
type candidate struct {
	decl   sheet.Declaration
	spec   selector.Specificity
	origin sheet.Origin
	order  int
	seq    int
}

// rank maps origin and importance onto a single ascending scale; higher
// wins. Important declarations beat all normal ones, and invert the
// origin order among themselves.
func (c candidate) rank() int {
	if c.decl.Important {
		switch c.origin {
		case sheet.Author:
			return 3
		case sheet.User:
			return 4
		default: // user agent
			return 5
		}
	}
	switch c.origin {
	case sheet.UserAgent:
		return 0
	case sheet.User:
		return 1
	default: // author
		return 2
	}
}

// Assign computes the style of every element in the document for the
// given medium. With inherit set, properties the capability table marks
// as inherited are copied from the parent element when no declaration
// set them; otherwise every unset property falls back to its initial
// value. The returned map has an entry for each element node.
func (a *Analyzer) Assign(doc *dom.Document, media string, inherit bool) (StyleMap, error) {
	if doc == nil {
		return nil, errors.New("cascade: no document")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	active := a.activeRules(media)
	styles := make(StyleMap)
	// Elements come parent-before-child, so a parent's store is complete
	// before its children inherit from it.
	for _, id := range doc.Elements() {
		e := doc.Element(id)
		store := a.config.Stores()
		a.cascadeElement(e, active, store)
		a.fill(e, store, styles, inherit)
		styles[id] = store
	}
	tracer().Debugf("assigned styles for %d elements", len(styles))
	return styles, nil
}

// activeRules filters the stylesheet down to the rules whose media
// condition includes the target medium.
func (a *Analyzer) activeRules(media string) []sheet.Rule {
	all := a.sheet.Rules()
	active := make([]sheet.Rule, 0, len(all))
	for _, r := range all {
		if r.Media.Matches(media) {
			active = append(active, r)
		}
	}
	tracer().Debugf("%d of %d rules active for medium %q", len(active), len(all), media)
	return active
}

// cascadeElement collects the matching declarations for one element,
// sorts them by cascade precedence and applies them weakest first, so
// the strongest declaration for each property ends up in the store.
func (a *Analyzer) cascadeElement(e dom.Element, rules []sheet.Rule, store NodeData) {
	var cands []candidate
	seq := 0
	for _, r := range rules {
		spec, ok := matchAny(r.Selectors, e)
		if !ok {
			continue
		}
		for _, d := range r.Declarations {
			if !a.config.Supported.IsSupported(d.Property, d.Value) {
				continue
			}
			cands = append(cands, candidate{
				decl:   d,
				spec:   spec,
				origin: r.Origin,
				order:  r.Order,
				seq:    seq,
			})
			seq++
		}
	}
	if a.config.Inline != nil {
		cands = append(cands, a.inlineCandidates(e, seq)...)
	}
	sort.SliceStable(cands, func(i, j int) bool {
		ci, cj := cands[i], cands[j]
		if ri, rj := ci.rank(), cj.rank(); ri != rj {
			return ri < rj
		}
		if ci.spec != cj.spec {
			return ci.spec.Less(cj.spec)
		}
		if ci.order != cj.order {
			return ci.order < cj.order
		}
		return ci.seq < cj.seq
	})
	for _, c := range cands {
		store.Set(c.decl.Property, c.decl.Value)
	}
}

// matchAny tries the selector alternatives of a rule in source order and
// returns the specificity of the first one that matches.
func matchAny(sels []selector.Selector, e dom.Element) (selector.Specificity, bool) {
	for _, sel := range sels {
		if sel.Matches(e) {
			return sel.Specificity(), true
		}
	}
	return selector.Specificity{}, false
}

// inlineCandidates parses the element's style attribute, if present.
// Inline declarations carry the style-attribute specificity, beating
// every selector-based declaration of the same origin and importance.
func (a *Analyzer) inlineCandidates(e dom.Element, seq int) []candidate {
	src, ok := e.Attr("style")
	if !ok || src == "" {
		return nil
	}
	decls, err := a.config.Inline.ParseDeclarations(src)
	if err != nil {
		tracer().Infof("dropping unparsable style attribute: %v", err)
		return nil
	}
	var cands []candidate
	for _, d := range decls {
		if !a.config.Supported.IsSupported(d.Property, d.Value) {
			continue
		}
		cands = append(cands, candidate{
			decl:   d,
			spec:   selector.StyleAttribute,
			origin: sheet.Author,
			order:  int(^uint(0) >> 1), // after every stylesheet rule
			seq:    seq,
		})
		seq++
	}
	return cands
}

// fill completes the store: every property the capability table knows
// gets a value, inherited from the parent where allowed and requested,
// otherwise the initial value.
func (a *Analyzer) fill(e dom.Element, store NodeData, styles StyleMap, inherit bool) {
	parent := styles[e.ParentID()] // nil at the root
	for _, name := range a.config.Supported.Names() {
		if _, ok := store.Get(name); ok {
			continue
		}
		if inherit && a.config.Supported.IsInherited(name) && parent != nil {
			if v, ok := parent.Get(name); ok {
				store.Set(name, v)
				continue
			}
		}
		// the capability table guarantees a non-nil initial value for
		// every registered name
		store.Set(name, a.config.Supported.Initial(name))
	}
}
