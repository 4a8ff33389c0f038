// Package registry discovers and reads package registries: directories of
// per-package TOML files describing published versions, their dependencies,
// and compat ranges.
package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/nbxlab/nbenv/internal/core/domain"
	"github.com/nbxlab/nbenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry implements ports.Registry over one or more registry roots,
// searched in order. Parsed package files are cached; the cache is shared
// process-wide, which is one of the reasons environment mutation is
// serialized.
type Registry struct {
	roots   []string
	stdlibs map[string]struct{}
	logger  ports.Logger

	mu    sync.RWMutex
	cache map[string]*cacheEntry
}

// index mirrors registry.toml at a registry root.
type index struct {
	Name    string   `toml:"name"`
	Stdlibs []string `toml:"stdlibs"`
}

// packageFile mirrors a per-package registry file.
type packageFile struct {
	Name     string `toml:"name"`
	Versions []struct {
		Version string            `toml:"version"`
		Deps    []string          `toml:"deps"`
		Compat  map[string]string `toml:"compat"`
	} `toml:"versions"`
}

// NewRegistry discovers registries at the given roots. Roots that do not
// exist are skipped with a warning; at least the standard-library set of
// every discovered root is merged.
func NewRegistry(roots []string, logger ports.Logger) (*Registry, error) {
	r := &Registry{
		stdlibs: make(map[string]struct{}),
		logger:  logger,
		cache:   make(map[string]*cacheEntry),
	}

	for _, root := range roots {
		data, err := os.ReadFile(filepath.Join(root, domain.RegistryIndexName))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Warn(fmt.Sprintf("registry not found at %s, skipping", root))
				continue
			}
			return nil, zerr.With(
				zerr.Wrap(err, domain.ErrRegistryParseFailed.Error()),
				"registry", root,
			)
		}

		var idx index
		if err := toml.Unmarshal(data, &idx); err != nil {
			return nil, zerr.With(
				zerr.Wrap(err, domain.ErrRegistryParseFailed.Error()),
				"registry", root,
			)
		}

		r.roots = append(r.roots, root)
		for _, lib := range idx.Stdlibs {
			r.stdlibs[lib] = struct{}{}
		}
	}

	if len(r.roots) == 0 {
		return nil, zerr.With(domain.ErrRegistryNotFound, "roots", strings.Join(roots, ":"))
	}
	return r, nil
}

// IsStdlib reports whether name ships with the runtime.
func (r *Registry) IsStdlib(name string) bool {
	_, ok := r.stdlibs[name]
	return ok
}

// Exists reports whether name is a known package in any registry.
func (r *Registry) Exists(name string) bool {
	if r.IsStdlib(name) {
		return true
	}
	_, err := r.Versions(name)
	return err == nil
}

// Versions returns all published versions of name, newest first. The first
// registry root containing the package wins.
func (r *Registry) Versions(name string) ([]ports.PackageVersion, error) {
	for _, root := range r.roots {
		path := filepath.Join(root, shard(name), name+".toml")
		versions, err := r.readPackage(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		return versions, nil
	}
	return nil, zerr.With(domain.ErrPackageNotFound, "package", name)
}

// Complete returns all known package names with the given prefix, sorted.
// Standard libraries are included.
func (r *Registry) Complete(prefix string) []string {
	seen := make(map[string]struct{})

	for lib := range r.stdlibs {
		if strings.HasPrefix(lib, prefix) {
			seen[lib] = struct{}{}
		}
	}

	for _, root := range r.roots {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil //nolint:nilerr // unreadable registry entries are skipped
			}
			base := d.Name()
			if base == domain.RegistryIndexName || !strings.HasSuffix(base, ".toml") {
				return nil
			}
			name := strings.TrimSuffix(base, ".toml")
			if strings.HasPrefix(name, prefix) {
				seen[name] = struct{}{}
			}
			return nil
		})
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// shard returns the single-letter shard directory a package file lives in.
func shard(name string) string {
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}
	return "_"
}
