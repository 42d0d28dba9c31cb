package selector

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

	"github.com/gorilla/css/scanner"
)

// ErrEmptySelector is returned when selector text contains no matchers.
var ErrEmptySelector = errors.New("empty selector")

// Parse builds a Selector from the text of a single complex selector
// (no commas). Selector lists are split by the stylesheet adapters
// before they get here.
//
// Unsupported syntax (namespaces, |= matching, column combinators)
// yields an error; adapters drop such selectors with a warning instead
// of failing the whole stylesheet.
func Parse(src string) (Selector, error) {
	p := &parser{}
	s := scanner.New(src)
	for {
		tok := s.Next()
		if tok.Type == scanner.TokenEOF {
			break
		}
		if tok.Type == scanner.TokenError {
			return Selector{}, fmt.Errorf("cannot scan selector %q: %s", src, tok.Value)
		}
		if err := p.feed(tok); err != nil {
			return Selector{}, fmt.Errorf("selector %q: %w", src, err)
		}
	}
	sel, err := p.finish()
	if err != nil {
		return Selector{}, fmt.Errorf("selector %q: %w", src, err)
	}
	return sel, nil
}

type parserState int

const (
	stInitial    parserState = iota
	stGroup                  // inside a simple-selector group
	stAfterClass             // '.' seen, class name expected
	stAfterColon             // ':' seen
	stAfterColon2            // '::' seen
	stPseudoArg              // inside a functional pseudo-class argument
	stAttrName               // '[' seen
	stAttrOp                 // attribute name consumed
	stAttrValue              // operator consumed
	stAttrEnd                // value consumed, ']' expected
)

type parser struct {
	parts       []Part
	current     Group
	currentComb Combinator // combinator that preceded the current group
	state       parserState
	pending     Combinator
	sawSpace    bool
	pseudo      PseudoClass // pseudo-class under construction
	attr        AttrMatcher // attribute matcher under construction
	argDepth    int
	arg         strings.Builder
}

// closeGroup finishes the group under construction.
func (p *parser) closeGroup() {
	if p.current.IsEmpty() {
		return
	}
	p.parts = append(p.parts, Part{Combinator: p.currentComb, Group: p.current})
	p.current = Group{}
}

// beginMatcher is called before any simple-selector token. A matcher
// following whitespace or an explicit combinator starts a new group; the
// combinator it saw belongs to that new group.
func (p *parser) beginMatcher() error {
	if p.state == stGroup && !p.current.IsEmpty() && (p.sawSpace || p.pending != NoCombinator) {
		p.closeGroup()
		comb := p.pending
		if comb == NoCombinator {
			comb = Descendant
		}
		p.currentComb = comb
		p.pending = NoCombinator
	}
	p.sawSpace = false
	p.state = stGroup
	return nil
}

func (p *parser) feed(tok *scanner.Token) error {
	if tok.Type == scanner.TokenComment {
		return nil
	}
	switch p.state {
	case stPseudoArg:
		return p.feedPseudoArg(tok)
	case stAfterClass:
		if tok.Type != scanner.TokenIdent {
			return errors.New("class name expected after '.'")
		}
		p.current.Classes = append(p.current.Classes, tok.Value)
		p.state = stGroup
		return nil
	case stAfterColon, stAfterColon2:
		return p.feedPseudo(tok)
	case stAttrName, stAttrOp, stAttrValue, stAttrEnd:
		return p.feedAttr(tok)
	}

	switch tok.Type {
	case scanner.TokenS:
		if p.state == stGroup {
			p.sawSpace = true
		}
		return nil
	case scanner.TokenIdent:
		if err := p.beginMatcher(); err != nil {
			return err
		}
		if p.current.Tag != "" || !onlyTagAllowed(p.current) {
			return fmt.Errorf("unexpected type selector %q", tok.Value)
		}
		p.current.Tag = strings.ToLower(tok.Value)
		return nil
	case scanner.TokenHash:
		if err := p.beginMatcher(); err != nil {
			return err
		}
		p.current.IDs = append(p.current.IDs, strings.TrimPrefix(tok.Value, "#"))
		return nil
	case scanner.TokenChar:
		return p.feedChar(tok.Value)
	default:
		return fmt.Errorf("unexpected token %q", tok.Value)
	}
}

// onlyTagAllowed is true while the group has no matcher yet, i.e. a type
// selector may still open it.
func onlyTagAllowed(g Group) bool {
	return g.IsEmpty()
}

func (p *parser) feedChar(v string) error {
	switch v {
	case "*":
		if err := p.beginMatcher(); err != nil {
			return err
		}
		if !p.current.IsEmpty() {
			return errors.New("universal selector inside group")
		}
		p.current.Tag = "*"
		return nil
	case ".":
		if err := p.beginMatcher(); err != nil {
			return err
		}
		p.state = stAfterClass
		return nil
	case ":":
		if p.state == stAfterColon {
			p.state = stAfterColon2
			return nil
		}
		if err := p.beginMatcher(); err != nil {
			return err
		}
		p.state = stAfterColon
		return nil
	case "[":
		if err := p.beginMatcher(); err != nil {
			return err
		}
		p.attr = AttrMatcher{}
		p.state = stAttrName
		return nil
	case ">", "+", "~":
		if len(p.parts) == 0 && p.current.IsEmpty() {
			return errors.New("combinator without preceding group")
		}
		if p.pending != NoCombinator {
			return errors.New("consecutive combinators")
		}
		p.sawSpace = false
		switch v {
		case ">":
			p.pending = Child
		case "+":
			p.pending = AdjacentSibling
		case "~":
			p.pending = GeneralSibling
		}
		return nil
	default:
		return fmt.Errorf("unexpected character %q", v)
	}
}

func (p *parser) feedPseudo(tok *scanner.Token) error {
	isElement := p.state == stAfterColon2
	switch tok.Type {
	case scanner.TokenIdent:
		name := strings.ToLower(tok.Value)
		// CSS1 pseudo-elements keep working with single-colon syntax
		if !isElement && isLegacyPseudoElement(name) {
			isElement = true
		}
		if isElement {
			p.current.PseudoElement = name
		} else {
			p.current.Pseudos = append(p.current.Pseudos, PseudoClass{Name: name})
		}
		p.state = stGroup
		return nil
	case scanner.TokenFunction:
		if isElement {
			return errors.New("functional pseudo-elements not supported")
		}
		p.pseudo = PseudoClass{Name: strings.ToLower(strings.TrimSuffix(tok.Value, "("))}
		p.arg.Reset()
		p.argDepth = 1
		p.state = stPseudoArg
		return nil
	}
	return errors.New("pseudo-class name expected after ':'")
}

func (p *parser) feedPseudoArg(tok *scanner.Token) error {
	switch {
	case tok.Type == scanner.TokenFunction:
		p.argDepth++
	case tok.Type == scanner.TokenChar && tok.Value == "(":
		p.argDepth++
	case tok.Type == scanner.TokenChar && tok.Value == ")":
		p.argDepth--
		if p.argDepth == 0 {
			p.pseudo.Arg = strings.TrimSpace(p.arg.String())
			p.current.Pseudos = append(p.current.Pseudos, p.pseudo)
			p.state = stGroup
			return nil
		}
	}
	p.arg.WriteString(tok.Value)
	return nil
}

func (p *parser) feedAttr(tok *scanner.Token) error {
	if tok.Type == scanner.TokenS {
		return nil
	}
	switch p.state {
	case stAttrName:
		if tok.Type != scanner.TokenIdent {
			return errors.New("attribute name expected after '['")
		}
		p.attr.Name = strings.ToLower(tok.Value)
		p.state = stAttrOp
		return nil
	case stAttrOp:
		switch {
		case tok.Type == scanner.TokenChar && tok.Value == "]":
			p.attr.Op = AttrExists
			p.current.Attrs = append(p.current.Attrs, p.attr)
			p.state = stGroup
			return nil
		case tok.Type == scanner.TokenChar && tok.Value == "=":
			p.attr.Op = AttrEquals
		case tok.Type == scanner.TokenIncludes:
			p.attr.Op = AttrWord
		case tok.Type == scanner.TokenPrefixMatch:
			p.attr.Op = AttrPrefix
		case tok.Type == scanner.TokenSuffixMatch:
			p.attr.Op = AttrSuffix
		case tok.Type == scanner.TokenSubstringMatch:
			p.attr.Op = AttrSubstring
		default:
			return fmt.Errorf("unsupported attribute operator %q", tok.Value)
		}
		p.state = stAttrValue
		return nil
	case stAttrValue:
		switch tok.Type {
		case scanner.TokenIdent:
			p.attr.Value = tok.Value
		case scanner.TokenString:
			p.attr.Value = unquote(tok.Value)
		default:
			return errors.New("attribute value expected")
		}
		p.state = stAttrEnd
		return nil
	case stAttrEnd:
		if tok.Type == scanner.TokenChar && tok.Value == "]" {
			p.current.Attrs = append(p.current.Attrs, p.attr)
			p.state = stGroup
			return nil
		}
		return errors.New("']' expected after attribute value")
	}
	return errors.New("malformed attribute matcher")
}

func (p *parser) finish() (Selector, error) {
	switch p.state {
	case stInitial, stGroup:
		// fine
	default:
		return Selector{}, errors.New("unterminated selector")
	}
	if p.pending != NoCombinator {
		return Selector{}, errors.New("dangling combinator")
	}
	p.closeGroup()
	if len(p.parts) == 0 {
		return Selector{}, ErrEmptySelector
	}
	return Selector{Parts: p.parts}, nil
}

func isLegacyPseudoElement(name string) bool {
	switch name {
	case "before", "after", "first-line", "first-letter":
		return true
	}
	return false
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
