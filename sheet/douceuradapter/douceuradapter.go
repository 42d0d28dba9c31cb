/*
Package douceuradapter parses CSS text with the douceur parser and
converts the result into stylesheet rules.

This is the default parsing collaborator. Selectors and declaration
values arrive from douceur as raw strings; the adapter runs them through
the selector parser and the term factory, dropping what it cannot
convert and recording a warning per drop.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Andrey Grigoriev
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"

	"github.com/andreygrigoriev/styledom/dom"
	"github.com/andreygrigoriev/styledom/selector"
	"github.com/andreygrigoriev/styledom/sheet"
	"github.com/andreygrigoriev/styledom/term"
)

// Parser converts douceur output into stylesheet rules. The zero value
// is not usable; create one with NewParser.
type Parser struct {
	terms term.Factory
}

// NewParser creates a parser using the given term factory for
// declaration values.
func NewParser(terms term.Factory) *Parser {
	return &Parser{terms: terms}
}

// Parse parses a complete stylesheet. Syntax errors inside single
// declarations or selectors do not fail the sheet; the broken construct
// is skipped with a warning. Only a malformed overall structure returns
// an error.
func (p *Parser) Parse(src string, origin sheet.Origin) (*sheet.StyleSheet, error) {
	parsed, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	s := sheet.New(origin)
	for _, r := range parsed.Rules {
		p.convertRule(s, r, nil)
	}
	return s, nil
}

// convertRule appends one douceur rule, descending into @media blocks.
// media is the condition inherited from an enclosing at-rule.
func (p *Parser) convertRule(s *sheet.StyleSheet, r *css.Rule, media sheet.Condition) {
	switch r.Kind {
	case css.QualifiedRule:
		p.convertQualified(s, r, media)
	case css.AtRule:
		switch strings.ToLower(r.Name) {
		case "@media":
			cond := mediaCondition(r.Prelude)
			for _, sub := range r.Rules {
				p.convertRule(s, sub, cond)
			}
		case "@import":
			if url := importTarget(r.Prelude); url != "" {
				s.AddImport(url)
			} else {
				s.Warn(fmt.Sprintf("skipping unparsable import %q", r.Prelude))
			}
		default:
			s.Warn(fmt.Sprintf("skipping unsupported at-rule %s", r.Name))
		}
	}
}

func (p *Parser) convertQualified(s *sheet.StyleSheet, r *css.Rule, media sheet.Condition) {
	var sels []selector.Selector
	for _, raw := range r.Selectors {
		sel, err := selector.Parse(raw)
		if err != nil {
			s.Warn(fmt.Sprintf("skipping selector %q: %v", raw, err))
			continue
		}
		sels = append(sels, sel)
	}
	if len(sels) == 0 {
		s.Warn(fmt.Sprintf("skipping rule without usable selectors: %q", r.Prelude))
		return
	}
	decls := p.convertDeclarations(r.Declarations, s.Warn)
	if len(decls) == 0 {
		return
	}
	// AddRule only fails on an empty selector list, which is excluded here
	_ = s.AddRule(sheet.Rule{Selectors: sels, Declarations: decls, Media: media})
}

func (p *Parser) convertDeclarations(decls []*css.Declaration, warn func(string)) []sheet.Declaration {
	out := make([]sheet.Declaration, 0, len(decls))
	for _, d := range decls {
		v, err := p.terms.Parse(d.Value)
		if err != nil {
			warn(fmt.Sprintf("skipping declaration %s: %v", d.Property, err))
			continue
		}
		out = append(out, sheet.Declaration{
			Property:  strings.ToLower(d.Property),
			Value:     v,
			Important: d.Important,
		})
	}
	return out
}

// ParseDeclarations parses the contents of a style attribute. Broken
// declarations are dropped silently; there is no stylesheet to attach
// warnings to.
func (p *Parser) ParseDeclarations(src string) ([]sheet.Declaration, error) {
	decls, err := parser.ParseDeclarations(src)
	if err != nil {
		return nil, err
	}
	return p.convertDeclarations(decls, func(string) {}), nil
}

// ExtractStyleElements collects the embedded <style> elements of an HTML
// parse tree and parses each into a stylesheet with the given origin.
// A <style> whose content does not parse is skipped; its sheet is simply
// missing from the result.
func (p *Parser) ExtractStyleElements(htmldoc *html.Node, origin sheet.Origin) []*sheet.StyleSheet {
	var sheets []*sheet.StyleSheet
	for _, src := range dom.ExtractStyleSources(htmldoc).Inline {
		s, err := p.Parse(src, origin)
		if err != nil {
			continue
		}
		sheets = append(sheets, s)
	}
	return sheets
}

// mediaCondition splits an @media prelude into media identifiers. Only
// comma-separated media types are understood; query expressions come
// through as-is and simply never match a plain medium name.
func mediaCondition(prelude string) sheet.Condition {
	var cond sheet.Condition
	for _, m := range strings.Split(prelude, ",") {
		if m = strings.TrimSpace(m); m != "" {
			cond = append(cond, strings.ToLower(m))
		}
	}
	return cond
}

// importTarget extracts the URL from an @import prelude, accepting both
// the url() and the plain string form.
func importTarget(prelude string) string {
	s := strings.TrimSpace(prelude)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		s = s[:i] // drop trailing media list
	}
	if strings.HasPrefix(strings.ToLower(s), "url(") && strings.HasSuffix(s, ")") {
		s = s[4 : len(s)-1]
	}
	s = strings.Trim(s, `"'`)
	return s
}
