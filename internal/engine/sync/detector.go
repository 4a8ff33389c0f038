package sync

import "github.com/nbxlab/nbenv/internal/core/domain"

// optOutReferences are the package manager's direct entry points. A notebook
// that calls any of them manages its own environment and opts out of managed
// tracking.
var optOutReferences = []string{
	"pkg.activate",
	"pkg.add",
	"pkg.develop",
	"pkg.instantiate",
}

// Managed reports whether a document with the given aggregated reference set
// should have its environment managed automatically.
func Managed(refs domain.ReferenceSet) bool {
	for _, ref := range optOutReferences {
		if refs.Has(ref) {
			return false
		}
	}
	return true
}
