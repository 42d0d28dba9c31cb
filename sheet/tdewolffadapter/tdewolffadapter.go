/*
Package tdewolffadapter parses CSS text with the tdewolff/parse grammar
walker and converts the result into stylesheet rules.

It is an alternative to the douceur-based default, useful when the input
is large or messy: the grammar walker streams tokens instead of building
an intermediate AST, and recovers from broken constructs at the grammar
level. Both adapters produce identical stylesheet structures.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Andrey Grigoriev
*/
package tdewolffadapter

import (
	"fmt"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	tdcss "github.com/tdewolff/parse/v2/css"
	"github.com/andreygrigoriev/styledom/selector"
	"github.com/andreygrigoriev/styledom/sheet"
	"github.com/andreygrigoriev/styledom/term"
)

// Parser converts grammar-walker output into stylesheet rules.
type Parser struct {
	terms term.Factory
}

// NewParser creates a parser using the given term factory for
// declaration values.
func NewParser(terms term.Factory) *Parser {
	return &Parser{terms: terms}
}

// Parse parses a complete stylesheet. The grammar walker never fails on
// malformed input; constructs the adapter cannot convert are skipped
// with a warning on the sheet.
func (p *Parser) Parse(src string, origin sheet.Origin) (*sheet.StyleSheet, error) {
	s := sheet.New(origin)
	input := parse.NewInput(strings.NewReader(src))
	walker := tdcss.NewParser(input, false)
	p.walk(walker, s, nil, false)
	return s, nil
}

// walk consumes grammar items until the end of the current scope: the
// whole input at the top level, the closing brace inside an at-rule
// block. media is the condition inherited from an enclosing @media.
func (p *Parser) walk(walker *tdcss.Parser, s *sheet.StyleSheet, media sheet.Condition, inBlock bool) {
	for {
		gt, _, data := walker.Next()
		switch gt {
		case tdcss.ErrorGrammar:
			return
		case tdcss.EndAtRuleGrammar:
			if inBlock {
				return
			}
		case tdcss.BeginAtRuleGrammar:
			name := strings.ToLower(string(data))
			if name == "@media" {
				p.walk(walker, s, mediaCondition(walker.Values()), true)
			} else {
				s.Warn(fmt.Sprintf("skipping unsupported at-rule %s", name))
				skipBlock(walker)
			}
		case tdcss.AtRuleGrammar:
			name := strings.ToLower(string(data))
			if name == "@import" {
				if url := importTarget(walker.Values()); url != "" {
					s.AddImport(url)
				} else {
					s.Warn("skipping unparsable import")
				}
			} else {
				s.Warn(fmt.Sprintf("skipping unsupported at-rule %s", name))
			}
		case tdcss.BeginRulesetGrammar:
			p.ruleset(walker, s, selectorList(data, walker.Values()), media)
		}
	}
}

// ruleset consumes the declarations of one rule block and appends the
// resulting rule.
func (p *Parser) ruleset(walker *tdcss.Parser, s *sheet.StyleSheet, rawSels []string, media sheet.Condition) {
	var sels []selector.Selector
	for _, raw := range rawSels {
		sel, err := selector.Parse(raw)
		if err != nil {
			s.Warn(fmt.Sprintf("skipping selector %q: %v", raw, err))
			continue
		}
		sels = append(sels, sel)
	}
	var decls []sheet.Declaration
	for {
		gt, _, data := walker.Next()
		switch gt {
		case tdcss.ErrorGrammar, tdcss.EndRulesetGrammar:
			if len(sels) == 0 {
				s.Warn("skipping rule without usable selectors")
				return
			}
			if len(decls) == 0 {
				return
			}
			_ = s.AddRule(sheet.Rule{Selectors: sels, Declarations: decls, Media: media})
			return
		case tdcss.DeclarationGrammar:
			if d, ok := p.declaration(string(data), walker.Values(), s); ok {
				decls = append(decls, d)
			}
		}
	}
}

// declaration assembles a declaration from its value tokens. A trailing
// "!important" is detected and stripped before the term parse.
func (p *Parser) declaration(property string, tokens []tdcss.Token, s *sheet.StyleSheet) (sheet.Declaration, bool) {
	raw, important := valueText(tokens)
	v, err := p.terms.Parse(raw)
	if err != nil {
		s.Warn(fmt.Sprintf("skipping declaration %s: %v", property, err))
		return sheet.Declaration{}, false
	}
	return sheet.Declaration{
		Property:  strings.ToLower(property),
		Value:     v,
		Important: important,
	}, true
}

// valueText reconstructs the value string from tokens, dropping the
// !important marker if present.
func valueText(tokens []tdcss.Token) (string, bool) {
	important := false
	var sb strings.Builder
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.TokenType == tdcss.DelimToken && string(t.Data) == "!" {
			// lookahead for the "important" ident, skipping whitespace
			j := i + 1
			for j < len(tokens) && tokens[j].TokenType == tdcss.WhitespaceToken {
				j++
			}
			if j < len(tokens) && tokens[j].TokenType == tdcss.IdentToken &&
				strings.EqualFold(string(tokens[j].Data), "important") {
				important = true
				i = j
				continue
			}
		}
		sb.Write(t.Data)
	}
	return strings.TrimSpace(sb.String()), important
}

// selectorList rebuilds the selector text from the grammar data and
// splits it at commas.
func selectorList(data []byte, tokens []tdcss.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, t := range tokens {
		sb.Write(t.Data)
	}
	var sels []string
	for _, raw := range strings.Split(sb.String(), ",") {
		if raw = strings.TrimSpace(raw); raw != "" {
			sels = append(sels, raw)
		}
	}
	return sels
}

// mediaCondition collects the media identifiers of an @media prelude.
// Only plain comma-separated media types are understood.
func mediaCondition(tokens []tdcss.Token) sheet.Condition {
	var cond sheet.Condition
	var current strings.Builder
	flush := func() {
		if m := strings.TrimSpace(current.String()); m != "" {
			cond = append(cond, strings.ToLower(m))
		}
		current.Reset()
	}
	for _, t := range tokens {
		if t.TokenType == tdcss.CommaToken {
			flush()
			continue
		}
		current.Write(t.Data)
	}
	flush()
	return cond
}

// importTarget extracts the URL from @import tokens, accepting both the
// string and the url() form.
func importTarget(tokens []tdcss.Token) string {
	for _, t := range tokens {
		switch t.TokenType {
		case tdcss.StringToken:
			return unquote(string(t.Data))
		case tdcss.URLToken:
			s := strings.TrimPrefix(string(t.Data), "url(")
			s = strings.TrimSuffix(s, ")")
			return unquote(strings.TrimSpace(s))
		}
	}
	return ""
}

func skipBlock(walker *tdcss.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := walker.Next()
		switch gt {
		case tdcss.ErrorGrammar:
			return
		case tdcss.BeginAtRuleGrammar, tdcss.BeginRulesetGrammar:
			depth++
		case tdcss.EndAtRuleGrammar, tdcss.EndRulesetGrammar:
			depth--
		}
	}
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' && s[len(s)-1] == '"' || s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
