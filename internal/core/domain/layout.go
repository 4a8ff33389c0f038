// Package domain holds the pure types of the nbenv core: environments,
// preservation tiers, import sets, and sync results.
package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	// DepsFileName is the declarations file inside an environment directory.
	DepsFileName = "nbdeps.toml"

	// LockFileName is the resolved-lock file inside an environment directory.
	LockFileName = "nbdeps.lock"

	// ConfigFileName is the tool configuration file looked up from the
	// working directory upwards.
	ConfigFileName = "nbenv.yaml"

	// RegistryIndexName is the index file at the root of a registry.
	RegistryIndexName = "registry.toml"

	// NotebookExt is the file extension of notebook documents.
	NotebookExt = ".nb"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// EnvironmentID derives the stable state-directory name for a notebook from
// its absolute path. The human-readable stem keeps state dirs debuggable;
// the hash keeps them collision-free.
func EnvironmentID(notebookPath string) string {
	stem := notebookPath
	if i := strings.LastIndexByte(stem, '/'); i >= 0 {
		stem = stem[i+1:]
	}
	stem = strings.TrimSuffix(stem, NotebookExt)
	return fmt.Sprintf("%s-%016x", stem, xxhash.Sum64String(notebookPath))
}
