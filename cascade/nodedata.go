package cascade

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Andrey Grigoriev

*/

import (
	"sort"

	"github.com/andreygrigoriev/styledom/dom"
	"github.com/andreygrigoriev/styledom/term"
)

// NodeData holds the computed style of one element: a property-to-value
// mapping owned by that element alone. Implementations need not be safe
// for concurrent writes; the analyzer fills each store from a single
// goroutine.
type NodeData interface {
	Set(property string, v term.Term)
	Get(property string) (term.Term, bool)
	Names() []string // assigned property names, sorted
}

// StoreFactory creates an empty NodeData store. Plugging in a different
// factory swaps the storage strategy for the whole cascade.
type StoreFactory func() NodeData

// StyleMap is the result of a cascade run: one store per element node,
// keyed by arena index.
type StyleMap map[dom.NodeID]NodeData

// singleMapStore is the default NodeData: one flat map per element.
type singleMapStore struct {
	values map[string]term.Term
}

// NewSingleMapStore creates the default flat-map store.
func NewSingleMapStore() NodeData {
	return &singleMapStore{values: make(map[string]term.Term)}
}

func (s *singleMapStore) Set(property string, v term.Term) {
	s.values[property] = v
}

func (s *singleMapStore) Get(property string) (term.Term, bool) {
	v, ok := s.values[property]
	return v, ok
}

func (s *singleMapStore) Names() []string {
	names := make([]string, 0, len(s.values))
	for n := range s.values {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
