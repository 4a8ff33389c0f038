package domain

import "sort"

// LockEntry records the outcome of the last successful resolution for a
// single package: either an exact version or the standard-library marker.
type LockEntry struct {
	// Version is the resolved semantic version, empty for standard libraries.
	Version string `toml:"version,omitempty"`
	// Stdlib marks packages shipped with the runtime itself; they are exempt
	// from version resolution and compat tracking.
	Stdlib bool `toml:"stdlib,omitempty"`
	// Direct marks entries that are directly declared rather than pulled in
	// transitively.
	Direct bool `toml:"direct,omitempty"`
	// Deps lists the package names this entry depends on, sorted.
	Deps []string `toml:"deps,omitempty"`
}

// Environment is a notebook's package environment: its declared
// dependencies, the resolved lock entries, and per-package compat ranges.
// One environment exists per managed notebook; it is created empty when the
// notebook first declares a managed import and destroyed when the notebook
// stops using any.
type Environment struct {
	// Dir is the on-disk directory holding the declarations and lock files.
	Dir string

	// Deps maps declared package names to their constraint range ("*" when
	// unconstrained).
	Deps map[string]string

	// Resolved maps package names to their lock entries.
	Resolved map[string]LockEntry

	// Compat maps package names to caret ranges derived from resolved
	// versions. Every declared non-stdlib dependency eventually has at most
	// one entry here.
	Compat map[string]string

	// Provisioned is true once at least one instantiate pass has
	// materialized the lock file into a usable installation.
	Provisioned bool

	// Advised is true once any synchronization of this environment has
	// issued a restart advisory.
	Advised bool
}

// NewEnvironment returns an empty environment with no backing directory.
func NewEnvironment() *Environment {
	return &Environment{
		Deps:     make(map[string]string),
		Resolved: make(map[string]LockEntry),
		Compat:   make(map[string]string),
	}
}

// DeclaredNames returns the sorted names of all declared dependencies.
func (e *Environment) DeclaredNames() []string {
	names := make([]string, 0, len(e.Deps))
	for n := range e.Deps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ResolvedVersion returns the resolved version for name. ok is false when
// name has no lock entry; stdlib entries report ok with an empty version.
func (e *Environment) ResolvedVersion(name string) (version string, stdlib, ok bool) {
	entry, found := e.Resolved[name]
	if !found {
		return "", false, false
	}
	return entry.Version, entry.Stdlib, true
}

// NonStdlibResolvedNames returns the sorted names of lock entries that are
// not standard libraries. The sync engine snapshots this around removals to
// detect transitive dependencies being dropped.
func (e *Environment) NonStdlibResolvedNames() []string {
	names := make([]string, 0, len(e.Resolved))
	for n, entry := range e.Resolved {
		if !entry.Stdlib {
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

// SetCompat records a compat range for name.
func (e *Environment) SetCompat(name, rangeStr string) {
	if e.Compat == nil {
		e.Compat = make(map[string]string)
	}
	e.Compat[name] = rangeStr
}

// ClearCompatIfMatches removes name's compat entry only when the stored
// range is exactly rangeStr. This lets the engine relax the resolver's own
// self-imposed caret ranges without touching hand-written ones.
func (e *Environment) ClearCompatIfMatches(name, rangeStr string) {
	if stored, ok := e.Compat[name]; ok && stored == rangeStr {
		delete(e.Compat, name)
	}
}
