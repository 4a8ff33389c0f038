package ports

import "github.com/nbxlab/nbenv/internal/core/domain"

// EnvironmentStore persists environments as a declarations file plus a
// resolved-lock file. Serialization is stable and sorted so repeated writes
// with no semantic change produce byte-identical output.
//
//go:generate mockgen -source=envstore.go -destination=mocks/mock_envstore.go -package=mocks
type EnvironmentStore interface {
	// Dir returns the state directory for the notebook at the given
	// absolute path. The directory may not exist yet.
	Dir(notebookPath string) string

	// Load reads the environment stored for notebookPath.
	// Returns nil, nil when no environment exists.
	Load(notebookPath string) (*domain.Environment, error)

	// Save writes the environment's declarations and lock files.
	Save(env *domain.Environment) error

	// Remove deletes all persisted state for notebookPath.
	Remove(notebookPath string) error
}
