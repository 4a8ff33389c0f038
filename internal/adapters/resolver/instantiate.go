package resolver

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/nbxlab/nbenv/internal/core/domain"
	"go.trai.ch/zerr"
)

// loadPathFileName is the materialized loader manifest inside an
// environment directory.
const loadPathFileName = "loadpath.list"

// Instantiate materializes the resolved lock into a usable installation:
// one directory per resolved package plus a loader manifest listing them in
// name order. The environment directory is on the loader path for the
// duration of the operation; restoration is guaranteed on every exit path.
func (r *Resolver) Instantiate(_ context.Context, env *domain.Environment) (err error) {
	if env.Dir == "" {
		return zerr.With(domain.ErrInstantiateFailed, "reason", "environment has no directory")
	}

	r.paths.Push(env.Dir)
	defer func() {
		if perr := r.paths.Pop(env.Dir); perr != nil && err == nil {
			err = perr
		}
	}()

	storeDir := filepath.Join(env.Dir, "packages")
	if err := os.MkdirAll(storeDir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrInstantiateFailed.Error())
	}

	names := make([]string, 0, len(env.Resolved))
	for name := range env.Resolved {
		names = append(names, name)
	}
	sort.Strings(names)

	var manifest bytes.Buffer
	for _, name := range names {
		entry := env.Resolved[name]
		if entry.Stdlib {
			fmt.Fprintf(&manifest, "%s stdlib\n", name)
			continue
		}
		pkgDir := filepath.Join(storeDir, name+"-"+entry.Version)
		if err := os.MkdirAll(pkgDir, domain.DirPerm); err != nil {
			return zerr.With(
				zerr.Wrap(err, domain.ErrInstantiateFailed.Error()),
				"package", name,
			)
		}
		fmt.Fprintf(&manifest, "%s %s %s\n", name, entry.Version, pkgDir)
	}

	manifestPath := filepath.Join(env.Dir, loadPathFileName)
	if err := os.WriteFile(manifestPath, manifest.Bytes(), domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrInstantiateFailed.Error())
	}
	return nil
}
