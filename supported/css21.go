package supported

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Andrey Grigoriev

*/

import (
	"sync"

	"github.com/andreygrigoriev/styledom/term"
)

var (
	css21once sync.Once
	css21     *Profile
)

// CSS21 returns the default capability table, covering the CSS 2.1
// property set this engine styles with. The profile is built once and
// shared; treat it as immutable.
func CSS21() *Profile {
	css21once.Do(func() {
		css21 = buildCSS21()
	})
	return css21
}

const (
	dimenShape = Number | Percent | Ident | Function
	colorShape = Color | Ident | Function
	identShape = Ident
)

func buildCSS21() *Profile {
	p := NewProfile()

	zero := term.Number{}
	auto := term.Ident{Name: "auto"}
	none := term.Ident{Name: "none"}
	normal := term.Ident{Name: "normal"}
	black := term.Color{A: 0xff}

	// box generation
	p.Register("display", term.Ident{Name: "inline"}, false, identShape)
	p.Register("position", term.Ident{Name: "static"}, false, identShape)
	p.Register("float", none, false, identShape)
	p.Register("clear", none, false, identShape)
	p.Register("visibility", term.Ident{Name: "visible"}, true, identShape)
	p.Register("overflow", term.Ident{Name: "visible"}, false, identShape)
	p.Register("z-index", auto, false, Number|Ident)

	// dimensions
	p.Register("width", auto, false, dimenShape)
	p.Register("height", auto, false, dimenShape)
	p.Register("min-width", zero, false, dimenShape)
	p.Register("min-height", zero, false, dimenShape)
	p.Register("max-width", none, false, dimenShape)
	p.Register("max-height", none, false, dimenShape)

	// box edges
	for _, side := range [...]string{"top", "right", "bottom", "left"} {
		p.Register(side, auto, false, dimenShape)
		p.Register("margin-"+side, zero, false, dimenShape)
		p.Register("padding-"+side, zero, false, Number|Percent|Function)
		p.Register("border-"+side+"-width", term.Ident{Name: "medium"}, false, Number|Ident)
		p.Register("border-"+side+"-style", none, false, identShape)
		p.Register("border-"+side+"-color", black, false, colorShape)
	}

	// color and background
	p.Register("color", black, true, colorShape)
	p.Register("background-color", term.Ident{Name: "transparent"}, false, colorShape)
	p.Register("background-image", none, false, URI|Ident)
	p.Register("background-repeat", term.Ident{Name: "repeat"}, false, identShape)
	p.Register("background-position", zero, false, dimenShape|List)
	p.Register("background-attachment", term.Ident{Name: "scroll"}, false, identShape)

	// fonts and text
	p.Register("font-family", term.Ident{Name: "serif"}, true, Ident|String|List)
	p.Register("font-size", term.Ident{Name: "medium"}, true, dimenShape)
	p.Register("font-style", normal, true, identShape)
	p.Register("font-variant", normal, true, identShape)
	p.Register("font-weight", normal, true, Number|Ident)
	p.Register("line-height", normal, true, dimenShape)
	p.Register("letter-spacing", normal, true, Number|Ident)
	p.Register("word-spacing", normal, true, Number|Ident)
	p.Register("text-align", term.Ident{Name: "left"}, true, identShape)
	p.Register("text-decoration", none, false, Ident|List)
	p.Register("text-transform", none, true, identShape)
	p.Register("text-indent", zero, true, Number|Percent|Function)
	p.Register("white-space", normal, true, identShape)
	p.Register("vertical-align", term.Ident{Name: "baseline"}, false, dimenShape)
	p.Register("direction", term.Ident{Name: "ltr"}, true, identShape)
	p.Register("unicode-bidi", normal, false, identShape)

	// lists
	p.Register("list-style-type", term.Ident{Name: "disc"}, true, identShape)
	p.Register("list-style-position", term.Ident{Name: "outside"}, true, identShape)
	p.Register("list-style-image", none, true, URI|Ident)

	// tables
	p.Register("border-collapse", term.Ident{Name: "separate"}, true, identShape)
	p.Register("border-spacing", zero, true, Number|List|Function)
	p.Register("caption-side", term.Ident{Name: "top"}, true, identShape)
	p.Register("empty-cells", term.Ident{Name: "show"}, true, identShape)
	p.Register("table-layout", auto, false, identShape)

	// generated content and misc
	p.Register("content", normal, false, Any)
	p.Register("quotes", none, true, Ident|List|String)
	p.Register("counter-reset", none, false, Any)
	p.Register("counter-increment", none, false, Any)
	p.Register("cursor", auto, true, Ident|URI|List)
	p.Register("opacity", term.Number{Value: 1}, false, Number|Percent)

	return p
}
