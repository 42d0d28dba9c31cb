package sheet

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Andrey Grigoriev

*/

import (
	"errors"
	"strings"

	"github.com/andreygrigoriev/styledom/selector"
	"github.com/andreygrigoriev/styledom/term"
)

// Origin tags a stylesheet's place in the cascade. User-agent styles are
// the weakest, author styles the strongest among non-important
// declarations; !important inverts the order.
type Origin int

const (
	UserAgent Origin = iota
	User
	Author
)

func (o Origin) String() string {
	switch o {
	case UserAgent:
		return "user-agent"
	case User:
		return "user"
	}
	return "author"
}

// Declaration is a single property assignment inside a rule block.
type Declaration struct {
	Property  string
	Value     term.Term
	Important bool
}

// Condition is the media condition enclosing a rule: a set of media
// identifiers, pre-resolved by the parsing collaborator. An empty
// condition, or one containing "all", applies to every medium. No media
// query boolean logic is evaluated here.
type Condition []string

// Matches reports whether the condition includes the given medium.
func (c Condition) Matches(media string) bool {
	if len(c) == 0 {
		return true
	}
	for _, m := range c {
		if m == "all" || strings.EqualFold(m, media) {
			return true
		}
	}
	return false
}

// Rule pairs a selector list with a declaration block. A comma-separated
// selector list shares one block; the rule matches when any alternative
// does. Order is the source-order index within the stylesheet, assigned
// when the rule is added, and is the final cascade tiebreaker.
type Rule struct {
	Selectors    []selector.Selector
	Declarations []Declaration
	Media        Condition
	Order        int
	Origin       Origin
}

// ErrNoSelectors flags a rule without any selector. Such a rule is a
// programming error in the parsing collaborator, not a recoverable
// condition.
var ErrNoSelectors = errors.New("rule has no selectors")

// StyleSheet is an ordered sequence of rules. Order is preserved and is
// the primary tiebreaker in the cascade: among equal origin and
// specificity, later wins. A StyleSheet is shared-read-only once parsing
// completes.
type StyleSheet struct {
	origin   Origin
	rules    []Rule
	imports  []string
	warnings []string
}

// New creates an empty stylesheet with a default origin for its rules.
func New(origin Origin) *StyleSheet {
	return &StyleSheet{origin: origin}
}

// Origin returns the origin rules of this sheet are tagged with.
func (s *StyleSheet) Origin() Origin {
	return s.origin
}

// AddRule appends a rule, stamping its source order and origin.
func (s *StyleSheet) AddRule(r Rule) error {
	if len(r.Selectors) == 0 {
		return ErrNoSelectors
	}
	r.Order = len(s.rules)
	r.Origin = s.origin
	s.rules = append(s.rules, r)
	return nil
}

// Rules returns all rules in source order.
func (s *StyleSheet) Rules() []Rule {
	return s.rules
}

// Empty checks whether this stylesheet contains any rules.
func (s *StyleSheet) Empty() bool {
	return len(s.rules) == 0
}

// Append appends every rule of another stylesheet, re-indexing source
// order so the appended rules come later in the cascade. Origin tags of
// the appended rules are kept, which is how multi-origin cascades are
// composed: parse each sheet with its own origin, then append.
func (s *StyleSheet) Append(other *StyleSheet) {
	for _, r := range other.rules {
		r.Order = len(s.rules)
		s.rules = append(s.rules, r)
	}
	s.imports = append(s.imports, other.imports...)
	s.warnings = append(s.warnings, other.warnings...)
}

// AddImport records an @import URL. Fetching is the caller's business.
func (s *StyleSheet) AddImport(url string) {
	s.imports = append(s.imports, url)
}

// Imports returns recorded @import URLs in source order.
func (s *StyleSheet) Imports() []string {
	return s.imports
}

// Warn records a note about a skipped construct. Parsers drop what they
// do not understand instead of failing the stylesheet; warnings keep the
// drops visible.
func (s *StyleSheet) Warn(msg string) {
	s.warnings = append(s.warnings, msg)
}

// Warnings returns all recorded warnings.
func (s *StyleSheet) Warnings() []string {
	return s.warnings
}
