package sync_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbxlab/nbenv/internal/core/domain"
	syncengine "github.com/nbxlab/nbenv/internal/engine/sync"
)

func TestManaged(t *testing.T) {
	tests := []struct {
		name string
		refs []string
		want bool
	}{
		{"no references", nil, true},
		{"ordinary references", []string{"qmath.solve", "plots.render"}, true},
		{"explicit activate", []string{"pkg.activate"}, false},
		{"explicit add", []string{"qmath.solve", "pkg.add"}, false},
		{"explicit develop", []string{"pkg.develop"}, false},
		{"explicit instantiate", []string{"pkg.instantiate"}, false},
		{"non-manager pkg symbol", []string{"pkg.status"}, true},
		{"similar name elsewhere", []string{"mypkg.add"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs := domain.NewReferenceSet(tt.refs...)
			require.Equal(t, tt.want, syncengine.Managed(refs))
		})
	}
}
