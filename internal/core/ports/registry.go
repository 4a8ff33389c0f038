package ports

// PackageVersion describes one published version of a registry package.
type PackageVersion struct {
	// Version is the bare semantic version string.
	Version string
	// Deps lists the names of the packages this version depends on.
	Deps []string
	// Compat maps dependency names to the ranges this version requires.
	Compat map[string]string
}

// Registry answers questions about the configured package registries. Reads
// are cheap and may be called concurrently; implementations cache parsed
// registry files.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type Registry interface {
	// Exists reports whether name is a known package (including standard
	// libraries).
	Exists(name string) bool

	// IsStdlib reports whether name is distributed with the runtime itself.
	IsStdlib(name string) bool

	// Versions returns all published versions of name, newest first.
	Versions(name string) ([]PackageVersion, error)

	// Complete returns all known package names with the given prefix,
	// sorted.
	Complete(prefix string) []string
}
