/*
Package cascade resolves stylesheet rules into per-element style maps.

Given a document tree, a stylesheet and a target medium, an Analyzer
finds the declarations applying to each element, orders them by the
cascade (origin and importance first, then selector specificity, then
source order) and writes the winners into a per-element store. A second
pass fills in every property the capability table knows about, either by
inheriting from the parent element or by falling back to the property's
initial value.

All collaborators — the capability table, the store factory, and
optionally a parser for inline style attributes — are handed over
explicitly in a Config. There is no global registry; a missing
collaborator is a construction-time error.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Andrey Grigoriev

*/
package cascade

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styledom.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("styledom.cascade")
}
