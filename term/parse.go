package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Andrey Grigoriev

*/

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/css/scanner"
)

// Factory builds terms from raw declaration value text. It is one of the
// collaborator interfaces wired through the engine configuration; the
// default implementation tokenizes with the gorilla/css scanner.
type Factory interface {
	Parse(raw string) (Term, error)
}

// NewFactory returns the default term factory.
func NewFactory() Factory {
	return stdFactory{}
}

// ErrEmptyValue is returned when a declaration value contains no terms.
var ErrEmptyValue = errors.New("empty declaration value")

type stdFactory struct{}

// Parse tokenizes a declaration value and builds the corresponding term.
// A single value yields its term directly, multiple space- or
// comma-separated values yield a List.
func (stdFactory) Parse(raw string) (Term, error) {
	toks, err := tokenize(raw)
	if err != nil {
		return nil, err
	}
	terms, _, err := parseTerms(toks, 0, false)
	if err != nil {
		return nil, err
	}
	switch len(terms) {
	case 0:
		return nil, ErrEmptyValue
	case 1:
		return terms[0], nil
	}
	return List(terms), nil
}

func tokenize(raw string) ([]*scanner.Token, error) {
	s := scanner.New(raw)
	var toks []*scanner.Token
	for {
		tok := s.Next()
		if tok.Type == scanner.TokenEOF {
			return toks, nil
		}
		if tok.Type == scanner.TokenError {
			return nil, fmt.Errorf("cannot scan value %q: %s", raw, tok.Value)
		}
		if tok.Type == scanner.TokenS || tok.Type == scanner.TokenComment {
			continue
		}
		toks = append(toks, tok)
	}
}

// parseTerms consumes terms starting at position i. With inArgs set it
// stops at a closing parenthesis, otherwise it runs to the end of input.
// Commas act as plain separators on both levels.
func parseTerms(toks []*scanner.Token, i int, inArgs bool) ([]Term, int, error) {
	var terms []Term
	for i < len(toks) {
		tok := toks[i]
		switch tok.Type {
		case scanner.TokenNumber:
			v, err := strconv.ParseFloat(tok.Value, 64)
			if err != nil {
				return nil, i, fmt.Errorf("malformed number %q", tok.Value)
			}
			terms = append(terms, Number{Value: v})
			i++
		case scanner.TokenPercentage:
			v, err := strconv.ParseFloat(strings.TrimSuffix(tok.Value, "%"), 64)
			if err != nil {
				return nil, i, fmt.Errorf("malformed percentage %q", tok.Value)
			}
			terms = append(terms, Percent{Value: v})
			i++
		case scanner.TokenDimension:
			n, err := parseDimension(tok.Value)
			if err != nil {
				return nil, i, err
			}
			terms = append(terms, n)
			i++
		case scanner.TokenString:
			terms = append(terms, Str{Value: unquote(tok.Value)})
			i++
		case scanner.TokenIdent:
			terms = append(terms, Ident{Name: tok.Value})
			i++
		case scanner.TokenHash:
			c, err := parseHexColor(tok.Value)
			if err != nil {
				return nil, i, err
			}
			terms = append(terms, c)
			i++
		case scanner.TokenURI:
			terms = append(terms, URI{Location: uriLocation(tok.Value)})
			i++
		case scanner.TokenFunction:
			name := strings.TrimSuffix(tok.Value, "(")
			args, next, err := parseTerms(toks, i+1, true)
			if err != nil {
				return nil, i, err
			}
			terms = append(terms, Function{Name: name, Args: args})
			i = next
		case scanner.TokenChar:
			switch tok.Value {
			case ",":
				i++ // separator only
			case ")":
				if !inArgs {
					return nil, i, fmt.Errorf("unbalanced ')' in value")
				}
				return terms, i + 1, nil
			case "/":
				// shorthand separator as in "12px/1.5"; keep as ident
				terms = append(terms, Ident{Name: "/"})
				i++
			default:
				return nil, i, fmt.Errorf("unexpected character %q in value", tok.Value)
			}
		default:
			return nil, i, fmt.Errorf("unexpected token %q in value", tok.Value)
		}
	}
	if inArgs {
		return nil, i, fmt.Errorf("unterminated function arguments")
	}
	return terms, i, nil
}

func parseDimension(v string) (Number, error) {
	// longest numeric prefix wins, so that "12em" does not trip over the 'e'
	for end := len(v); end > 0; end-- {
		if f, err := strconv.ParseFloat(v[:end], 64); err == nil {
			return Number{Value: f, Unit: strings.ToLower(v[end:])}, nil
		}
	}
	return Number{}, fmt.Errorf("malformed dimension %q", v)
}

func parseHexColor(v string) (Color, error) {
	hex := strings.TrimPrefix(v, "#")
	var r, g, b, a uint64
	var err error
	a = 0xff
	switch len(hex) {
	case 3:
		r, g, b, err = hexNibbles(hex)
	case 6:
		r, g, b, err = hexBytes(hex)
	default:
		return Color{}, fmt.Errorf("malformed color %q", v)
	}
	if err != nil {
		return Color{}, fmt.Errorf("malformed color %q", v)
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

func hexNibbles(h string) (r, g, b uint64, err error) {
	n, err := strconv.ParseUint(h, 16, 16)
	if err != nil {
		return 0, 0, 0, err
	}
	r, g, b = n>>8&0xf, n>>4&0xf, n&0xf
	return r | r<<4, g | g<<4, b | b<<4, nil
}

func hexBytes(h string) (r, g, b uint64, err error) {
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, err
	}
	return n >> 16 & 0xff, n >> 8 & 0xff, n & 0xff, nil
}

func uriLocation(v string) string {
	v = strings.TrimPrefix(v, "url(")
	v = strings.TrimSuffix(v, ")")
	return unquote(strings.TrimSpace(v))
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
