// Package envstore persists environments as a TOML declarations file plus a
// TOML resolved-lock file inside a per-notebook state directory.
package envstore

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/nbxlab/nbenv/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.EnvironmentStore on the local file system.
type Store struct {
	stateDir string
}

// NewStore creates a store rooted at stateDir.
func NewStore(stateDir string) *Store {
	return &Store{stateDir: stateDir}
}

// depsFile mirrors nbdeps.toml. Map keys are emitted sorted, so writes are
// byte-stable for unchanged environments.
type depsFile struct {
	Deps   map[string]string `toml:"deps"`
	Compat map[string]string `toml:"compat,omitempty"`
}

// lockFile mirrors nbdeps.lock.
type lockFile struct {
	Provisioned bool                        `toml:"provisioned"`
	Advised     bool                        `toml:"advised"`
	Packages    map[string]domain.LockEntry `toml:"packages,omitempty"`
}

// Dir returns the state directory for the notebook at notebookPath.
func (s *Store) Dir(notebookPath string) string {
	return filepath.Join(s.stateDir, "envs", domain.EnvironmentID(notebookPath))
}

// Load reads the environment stored for notebookPath, or nil when none
// exists.
func (s *Store) Load(notebookPath string) (*domain.Environment, error) {
	dir := s.Dir(notebookPath)

	depsData, err := os.ReadFile(filepath.Join(dir, domain.DepsFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrEnvReadFailed.Error())
	}

	var deps depsFile
	if err := toml.Unmarshal(depsData, &deps); err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrEnvParseFailed.Error()),
			"file", domain.DepsFileName,
		)
	}

	env := domain.NewEnvironment()
	env.Dir = dir
	for name, rng := range deps.Deps {
		env.Deps[name] = rng
	}
	for name, rng := range deps.Compat {
		env.Compat[name] = rng
	}

	lockData, err := os.ReadFile(filepath.Join(dir, domain.LockFileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// Declared but never resolved; a valid intermediate state.
			return env, nil
		}
		return nil, zerr.Wrap(err, domain.ErrEnvReadFailed.Error())
	}

	var lock lockFile
	if err := toml.Unmarshal(lockData, &lock); err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrEnvParseFailed.Error()),
			"file", domain.LockFileName,
		)
	}

	env.Provisioned = lock.Provisioned
	env.Advised = lock.Advised
	for name, entry := range lock.Packages {
		sort.Strings(entry.Deps)
		env.Resolved[name] = entry
	}
	return env, nil
}

// Save writes the environment's declarations and lock files. Output is
// sorted and stable: saving an unchanged environment produces byte-identical
// files.
func (s *Store) Save(env *domain.Environment) error {
	if err := os.MkdirAll(env.Dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrEnvWriteFailed.Error())
	}

	deps := depsFile{Deps: env.Deps, Compat: env.Compat}
	if len(deps.Compat) == 0 {
		deps.Compat = nil
	}
	if err := s.writeTOML(filepath.Join(env.Dir, domain.DepsFileName), deps); err != nil {
		return err
	}

	lock := lockFile{
		Provisioned: env.Provisioned,
		Advised:     env.Advised,
		Packages:    env.Resolved,
	}
	if len(lock.Packages) == 0 {
		lock.Packages = nil
	}
	return s.writeTOML(filepath.Join(env.Dir, domain.LockFileName), lock)
}

// Remove deletes all persisted state for notebookPath.
func (s *Store) Remove(notebookPath string) error {
	if err := os.RemoveAll(s.Dir(notebookPath)); err != nil {
		return zerr.Wrap(err, domain.ErrEnvWriteFailed.Error())
	}
	return nil
}

func (s *Store) writeTOML(path string, v any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return zerr.Wrap(err, domain.ErrEnvWriteFailed.Error())
	}

	// Skip the write when nothing changed so mtimes stay meaningful for
	// tools watching the environment directory.
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, buf.Bytes()) {
		return nil
	}

	if err := os.WriteFile(path, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(
			zerr.Wrap(err, domain.ErrEnvWriteFailed.Error()),
			"file", path,
		)
	}
	return nil
}
