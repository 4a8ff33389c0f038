package registry

import (
	"os"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/cespare/xxhash/v2"
	"github.com/nbxlab/nbenv/internal/core/domain"
	"github.com/nbxlab/nbenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// cacheEntry holds a parsed package file plus the content fingerprint it was
// parsed from. Registry files change rarely, so re-reading bytes and
// comparing hashes is far cheaper than re-parsing TOML on every lookup.
type cacheEntry struct {
	sum      uint64
	versions []ports.PackageVersion
}

// readPackage reads and parses the package file at path, reusing the cached
// parse when the file content is unchanged.
func (r *Registry) readPackage(path string) ([]ports.PackageVersion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sum := xxhash.Sum64(data)

	r.mu.RLock()
	entry, ok := r.cache[path]
	r.mu.RUnlock()
	if ok && entry.sum == sum {
		return entry.versions, nil
	}

	var pkg packageFile
	if err := toml.Unmarshal(data, &pkg); err != nil {
		return nil, zerr.With(
			zerr.Wrap(err, domain.ErrRegistryParseFailed.Error()),
			"file", path,
		)
	}

	versions := make([]ports.PackageVersion, 0, len(pkg.Versions))
	for _, v := range pkg.Versions {
		if !domain.ValidVersion(v.Version) {
			return nil, zerr.With(
				zerr.With(domain.ErrRegistryParseFailed, "file", path),
				"version", v.Version,
			)
		}
		deps := append([]string(nil), v.Deps...)
		sort.Strings(deps)
		versions = append(versions, ports.PackageVersion{
			Version: v.Version,
			Deps:    deps,
			Compat:  v.Compat,
		})
	}
	sort.Slice(versions, func(i, j int) bool {
		return domain.CompareVersions(versions[i].Version, versions[j].Version) > 0
	})

	r.mu.Lock()
	r.cache[path] = &cacheEntry{sum: sum, versions: versions}
	r.mu.Unlock()
	return versions, nil
}
