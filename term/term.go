package term

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Andrey Grigoriev

*/

import (
	"fmt"
	"strconv"
	"strings"
)

// Term is a single CSS value: a dimension, a percentage, a string, an
// identifier, a color, a URI, a function call or a list of terms.
// Terms are built once, during stylesheet parsing, and never mutated
// afterwards. Equality and string rendering are value-based.
type Term interface {
	fmt.Stringer
	Equals(other Term) bool
}

// --- Numbers and dimensions -------------------------------------------

// Number is a numeric term with an optional unit ("12px", "1.5em", "7").
type Number struct {
	Value float64
	Unit  string
}

// pixelsPerUnit holds conversion factors for absolute CSS units,
// anchored at the reference pixel (96 per inch).
var pixelsPerUnit = map[string]float64{
	"":   1,
	"px": 1,
	"pt": 96.0 / 72.0,
	"pc": 16,
	"in": 96,
	"cm": 96.0 / 2.54,
	"mm": 96.0 / 25.4,
	"q":  96.0 / 101.6,
}

// Pixels converts an absolute dimension to reference pixels. Relative
// units (em, rem, vw, …) cannot be resolved without context; ok will be
// false for them.
func (n Number) Pixels() (px float64, ok bool) {
	f, ok := pixelsPerUnit[strings.ToLower(n.Unit)]
	if !ok {
		return 0, false
	}
	return n.Value * f, true
}

// Equals compares two numeric terms unit-aware: 72pt equals 96px.
// Relative units only compare equal to the same unit.
func (n Number) Equals(other Term) bool {
	o, ok := other.(Number)
	if !ok {
		return false
	}
	if strings.EqualFold(n.Unit, o.Unit) {
		return n.Value == o.Value
	}
	a, okA := n.Pixels()
	b, okB := o.Pixels()
	return okA && okB && a == b
}

func (n Number) String() string {
	return strconv.FormatFloat(n.Value, 'f', -1, 64) + n.Unit
}

// Percent is a percentage term ("50%").
type Percent struct {
	Value float64
}

func (p Percent) Equals(other Term) bool {
	o, ok := other.(Percent)
	return ok && p.Value == o.Value
}

func (p Percent) String() string {
	return strconv.FormatFloat(p.Value, 'f', -1, 64) + "%"
}

// --- Textual terms ----------------------------------------------------

// Str is a quoted string term.
type Str struct {
	Value string
}

func (s Str) Equals(other Term) bool {
	o, ok := other.(Str)
	return ok && s.Value == o.Value
}

func (s Str) String() string {
	return strconv.Quote(s.Value)
}

// Ident is an identifier or keyword term ("bold", "inherit", "sans-serif").
// Identifiers compare case-insensitively, as CSS keywords do.
type Ident struct {
	Name string
}

func (id Ident) Equals(other Term) bool {
	o, ok := other.(Ident)
	return ok && strings.EqualFold(id.Name, o.Name)
}

func (id Ident) String() string {
	return id.Name
}

// --- Colors -----------------------------------------------------------

// Color is an RGBA color term.
type Color struct {
	R, G, B, A uint8
}

func (c Color) Equals(other Term) bool {
	o, ok := other.(Color)
	return ok && c == o
}

func (c Color) String() string {
	if c.A != 0xff {
		return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", c.R, c.G, c.B, float64(c.A)/255.0)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// --- URIs -------------------------------------------------------------

// URI is a url(…) term. The location is kept verbatim; no resolving or
// fetching happens here.
type URI struct {
	Location string
}

func (u URI) Equals(other Term) bool {
	o, ok := other.(URI)
	return ok && u.Location == o.Location
}

func (u URI) String() string {
	return "url(" + u.Location + ")"
}

// --- Composite terms --------------------------------------------------

// Function is a function-valued term like rgb(…) or calc(…). The cascade
// passes function terms through unevaluated; arguments are ordered and
// opaque to the engine.
type Function struct {
	Name string
	Args []Term
}

func (f Function) Equals(other Term) bool {
	o, ok := other.(Function)
	if !ok || !strings.EqualFold(f.Name, o.Name) || len(f.Args) != len(o.Args) {
		return false
	}
	for i, a := range f.Args {
		if !a.Equals(o.Args[i]) {
			return false
		}
	}
	return true
}

func (f Function) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}
	return f.Name + "(" + strings.Join(args, ",") + ")"
}

// List is an ordered sequence of terms, as in "1px solid black".
type List []Term

func (l List) Equals(other Term) bool {
	o, ok := other.(List)
	if !ok || len(l) != len(o) {
		return false
	}
	for i, t := range l {
		if !t.Equals(o[i]) {
			return false
		}
	}
	return true
}

func (l List) String() string {
	parts := make([]string, len(l))
	for i, t := range l {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
