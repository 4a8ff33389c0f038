package domain

import "sort"

// ImportSet is the set of top-level package names a notebook currently
// imports. It is derived from the document's cells by the scanner and only
// consumed here; the sync engine never mutates the set it is given.
type ImportSet map[string]struct{}

// NewImportSet builds an ImportSet from the given names.
func NewImportSet(names ...string) ImportSet {
	s := make(ImportSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name is in the set.
func (s ImportSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Add inserts name into the set.
func (s ImportSet) Add(name string) {
	s[name] = struct{}{}
}

// Sorted returns the set's members in lexical order.
func (s ImportSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold exactly the same names.
func (s ImportSet) Equal(other ImportSet) bool {
	if len(s) != len(other) {
		return false
	}
	for n := range s {
		if !other.Has(n) {
			return false
		}
	}
	return true
}

// ReferenceSet is the aggregated set of symbol references across a
// notebook's cells, used by the usage-mode detector to spot direct calls
// into the package manager.
type ReferenceSet map[string]struct{}

// NewReferenceSet builds a ReferenceSet from the given references.
func NewReferenceSet(refs ...string) ReferenceSet {
	s := make(ReferenceSet, len(refs))
	for _, r := range refs {
		s[r] = struct{}{}
	}
	return s
}

// Has reports whether ref is in the set.
func (s ReferenceSet) Has(ref string) bool {
	_, ok := s[ref]
	return ok
}

// Add inserts ref into the set.
func (s ReferenceSet) Add(ref string) {
	s[ref] = struct{}{}
}
