package supported

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Andrey Grigoriev

*/

import (
	"sort"

	"github.com/andreygrigoriev/styledom/term"
)

// Shape is a bitmask over term kinds, used to describe which value
// shapes a property accepts.
type Shape uint16

const (
	Number Shape = 1 << iota
	Percent
	String
	Ident
	Color
	URI
	Function
	List
)

// Any accepts every value shape.
const Any = Number | Percent | String | Ident | Color | URI | Function | List

// ShapeOf classifies a term value.
func ShapeOf(t term.Term) Shape {
	switch t.(type) {
	case term.Number:
		return Number
	case term.Percent:
		return Percent
	case term.Str:
		return String
	case term.Ident:
		return Ident
	case term.Color:
		return Color
	case term.URI:
		return URI
	case term.Function:
		return Function
	case term.List:
		return List
	}
	return 0
}

// CSS is the capability table of a CSS profile. The cascade engine
// consults it read-only: unsupported declarations are silently dropped,
// inheritable properties fall back to the parent value, everything else
// to the registered initial value.
//
// Implementations must be safe for concurrent readers once built, and
// Initial must return a non-nil term for every name in Names().
type CSS interface {
	IsSupported(name string, v term.Term) bool
	IsInherited(name string) bool
	Initial(name string) term.Term
	Names() []string // all registered property names, sorted
}

type entry struct {
	initial   term.Term
	inherited bool
	shapes    Shape
}

// Profile is a mutable builder for a capability table. Build it up
// front, then treat it as read-only; all lookup methods are free of
// writes, so a built profile is safe for concurrent readers.
type Profile struct {
	props map[string]entry
	names []string // sorted, maintained by Register
}

// NewProfile creates an empty profile.
func NewProfile() *Profile {
	return &Profile{props: make(map[string]entry)}
}

// Register adds or replaces a property with its initial value,
// inheritance flag and accepted value shapes. A nil initial value is a
// programming error and panics: the cascade relies on every registered
// property having one.
func (p *Profile) Register(name string, initial term.Term, inherited bool, shapes Shape) *Profile {
	if initial == nil {
		panic("supported: property " + name + " registered without initial value")
	}
	if _, exists := p.props[name]; !exists {
		i := sort.SearchStrings(p.names, name)
		p.names = append(p.names, "")
		copy(p.names[i+1:], p.names[i:])
		p.names[i] = name
	}
	p.props[name] = entry{initial: initial, inherited: inherited, shapes: shapes}
	return p
}

// IsSupported reports whether the property is known and the value shape
// is acceptable for it.
func (p *Profile) IsSupported(name string, v term.Term) bool {
	e, ok := p.props[name]
	if !ok || v == nil {
		return false
	}
	return e.shapes&ShapeOf(v) != 0
}

// IsInherited reports whether the property inherits by default.
func (p *Profile) IsInherited(name string) bool {
	return p.props[name].inherited
}

// Initial returns the registered initial value, or nil for an unknown
// property.
func (p *Profile) Initial(name string) term.Term {
	return p.props[name].initial
}

// Names returns all registered property names in sorted order. The
// returned slice is shared; callers must not modify it.
func (p *Profile) Names() []string {
	return p.names
}

var _ CSS = &Profile{}
