/*
Package styledom computes CSS styles for document trees.

It wires a pluggable CSS parser, a value-term factory, a
supported-property table and a per-element style store into an engine
that runs the cascade: match selectors against elements, order the
matching declarations by origin, importance, specificity and source
order, and produce one complete property map per element.

All collaborators are named explicitly in a Config; there is no global
registration. DefaultConfig assembles the stock collaborators (douceur
parsing, CSS 2.1 property table, flat-map stores), and every part can be
swapped independently.

	engine, err := styledom.New(styledom.DefaultConfig())
	s, err := engine.ParseSheet(cssText, sheet.Author)
	doc, err := dom.FromHTML(htmlReader)
	styles, err := engine.Style(doc, s, "screen", true)

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Andrey Grigoriev

*/
package styledom

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"

	"github.com/andreygrigoriev/styledom/cascade"
	"github.com/andreygrigoriev/styledom/dom"
	"github.com/andreygrigoriev/styledom/sheet"
	"github.com/andreygrigoriev/styledom/sheet/douceuradapter"
	"github.com/andreygrigoriev/styledom/supported"
	"github.com/andreygrigoriev/styledom/term"
)

// tracer traces with key 'styledom'.
func tracer() tracing.Trace {
	return tracing.Select("styledom")
}

// SheetParser turns CSS source text into a stylesheet with the given
// origin.
type SheetParser interface {
	Parse(src string, origin sheet.Origin) (*sheet.StyleSheet, error)
}

// Config names every collaborator of an Engine. All fields are
// required; New reports which one is missing.
type Config struct {
	Parser    SheetParser          // CSS text to stylesheet
	Terms     term.Factory         // raw value strings to terms
	Supported supported.CSS        // property capability table
	Stores    cascade.StoreFactory // per-element style storage
}

// DefaultConfig assembles the stock collaborators: the douceur-based
// parser, the standard term factory, the CSS 2.1 property table and
// flat-map stores.
func DefaultConfig() Config {
	terms := term.NewFactory()
	return Config{
		Parser:    douceuradapter.NewParser(terms),
		Terms:     terms,
		Supported: supported.CSS21(),
		Stores:    cascade.NewSingleMapStore,
	}
}

// Errors returned by New for incomplete configurations.
var (
	ErrNoParser    = errors.New("styledom: no sheet parser configured")
	ErrNoTerms     = errors.New("styledom: no term factory configured")
	ErrNoSupported = errors.New("styledom: no supported-property table configured")
	ErrNoStores    = errors.New("styledom: no store factory configured")
)

// Engine runs the pipeline from CSS text to per-element styles. Engines
// are immutable after construction and safe for concurrent use.
type Engine struct {
	config Config
	inline cascade.DeclarationParser // non-nil if the parser handles style attributes
}

// New creates an Engine, checking that every collaborator is present.
func New(cfg Config) (*Engine, error) {
	if cfg.Parser == nil {
		return nil, ErrNoParser
	}
	if cfg.Terms == nil {
		return nil, ErrNoTerms
	}
	if cfg.Supported == nil {
		return nil, ErrNoSupported
	}
	if cfg.Stores == nil {
		return nil, ErrNoStores
	}
	e := &Engine{config: cfg}
	// a parser that can handle declaration fragments enables the
	// style attribute
	if dp, ok := cfg.Parser.(cascade.DeclarationParser); ok {
		e.inline = dp
	}
	return e, nil
}

// ParseSheet parses CSS source text into a stylesheet tagged with the
// given origin.
func (e *Engine) ParseSheet(src string, origin sheet.Origin) (*sheet.StyleSheet, error) {
	s, err := e.config.Parser.Parse(src, origin)
	if err != nil {
		return nil, err
	}
	if len(s.Warnings()) > 0 {
		tracer().Infof("parsed stylesheet with %d warnings", len(s.Warnings()))
	}
	return s, nil
}

// Style runs the cascade for a document against a stylesheet, returning
// one style store per element. Multi-origin cascades are composed by
// appending sheets before calling Style. With inherit set, inheritable
// properties without a declaration are copied from the parent element.
func (e *Engine) Style(doc *dom.Document, s *sheet.StyleSheet, media string, inherit bool) (cascade.StyleMap, error) {
	analyzer, err := cascade.New(s, cascade.Config{
		Supported: e.config.Supported,
		Stores:    e.config.Stores,
		Inline:    e.inline,
	})
	if err != nil {
		return nil, err
	}
	return analyzer.Assign(doc, media, inherit)
}
