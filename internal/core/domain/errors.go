package domain

import "go.trai.ch/zerr"

var (
	// ErrResolverExhausted is returned when the add call fails at every
	// preservation tier, including preserve-none.
	ErrResolverExhausted = zerr.New("resolution failed at every preservation tier")

	// ErrRemoveFailed is returned when removing dependencies from an
	// environment fails. Removal failures are never retried.
	ErrRemoveFailed = zerr.New("failed to remove dependencies")

	// ErrInstantiateFailed is returned when materializing the lock file into
	// a usable installation fails.
	ErrInstantiateFailed = zerr.New("failed to instantiate environment")

	// ErrNotDeclared is returned when a removal names a package that is not
	// declared in the environment.
	ErrNotDeclared = zerr.New("package not declared in environment")

	// ErrPackageNotFound is returned when a package cannot be located in any
	// configured registry.
	ErrPackageNotFound = zerr.New("package not found in registry")

	// ErrNoSatisfyingVersion is returned when no version of a package
	// satisfies the accumulated constraints at the requested tier.
	ErrNoSatisfyingVersion = zerr.New("no version satisfies constraints")

	// ErrVersionConflict is returned when two dependents require
	// incompatible versions of the same package.
	ErrVersionConflict = zerr.New("conflicting version requirements")

	// ErrLoaderPathMismatch is returned when the loader path popped after an
	// instantiate does not match the one pushed. The path stack is
	// process-global state; a mismatch means it was corrupted mid-operation.
	ErrLoaderPathMismatch = zerr.New("loader path stack mismatch")

	// ErrLoaderPathEmpty is returned when popping an empty loader path stack.
	ErrLoaderPathEmpty = zerr.New("loader path stack is empty")

	// ErrRegistryNotFound is returned when no configured registry path
	// exists on disk.
	ErrRegistryNotFound = zerr.New("no registry found")

	// ErrRegistryParseFailed is returned when a registry file cannot be
	// parsed.
	ErrRegistryParseFailed = zerr.New("failed to parse registry file")

	// ErrEnvReadFailed is returned when the declarations or lock file cannot
	// be read.
	ErrEnvReadFailed = zerr.New("failed to read environment files")

	// ErrEnvParseFailed is returned when the declarations or lock file
	// cannot be parsed.
	ErrEnvParseFailed = zerr.New("failed to parse environment files")

	// ErrEnvWriteFailed is returned when the declarations or lock file
	// cannot be written.
	ErrEnvWriteFailed = zerr.New("failed to write environment files")

	// ErrNotebookReadFailed is returned when a notebook document cannot be
	// read.
	ErrNotebookReadFailed = zerr.New("failed to read notebook")

	// ErrConfigReadFailed is returned when the tool configuration file
	// cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the tool configuration file
	// cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrSyncFailed is returned by the application layer when a
	// synchronization pass fails fatally.
	ErrSyncFailed = zerr.New("synchronization failed")
)
