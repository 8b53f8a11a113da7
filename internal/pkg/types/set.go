// Package types holds small generic containers shared across packages.
package types

import (
	"iter"
	"maps"
	"slices"
)

// Set is a mutable hash set backed by map[T]struct{}.
type Set[T comparable] map[T]struct{}

// NewSet returns a Set holding the given elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts values into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Has reports whether val is in the set.
func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// Delete removes values from the set.
func (s Set[T]) Delete(values ...T) {
	for _, val := range values {
		delete(s, val)
	}
}

// ToIter iterates over the elements in no particular order.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns the elements in no particular order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}
