package scanner_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbxlab/nbenv/internal/adapters/scanner"
	"github.com/nbxlab/nbenv/internal/core/domain"
)

func writeNotebook(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc"+domain.NotebookExt)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestScan_ImportsAcrossCells(t *testing.T) {
	path := writeNotebook(t, `# %%
import qmath
x = qmath.solve(1)

# %%
import plots, linalg
plots.render(x)
`)

	s := scanner.NewScanner()
	result, err := s.Scan(path)
	require.NoError(t, err)

	require.Equal(t, []string{"linalg", "plots", "qmath"}, result.Imports.Sorted())
	require.True(t, result.References.Has("qmath.solve"))
	require.True(t, result.References.Has("plots.render"))
	require.Equal(t, 2, result.Cells)
}

func TestScan_ImportForms(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"plain", "import qmath", []string{"qmath"}},
		{"indented", "    import qmath", []string{"qmath"}},
		{"comma separated", "import qmath, plots", []string{"qmath", "plots"}},
		{"aliased", "import qmath as qm", []string{"qmath"}},
		{"aliased in list", "import qmath as qm, plots", []string{"qmath", "plots"}},
		{"commented out", "# import qmath", nil},
		{"trailing comment", "import qmath # heavy", []string{"qmath"}},
		{"not an import", "reimport qmath", nil},
		{"qualified path skipped", "import pkg.sub", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeNotebook(t, tt.line+"\n")

			result, err := scanner.NewScanner().Scan(path)
			require.NoError(t, err)
			require.ElementsMatch(t, tt.want, result.Imports.Sorted())
		})
	}
}

func TestScan_HashInsideString(t *testing.T) {
	path := writeNotebook(t, `color = "#FF0000"
import qmath
`)

	result, err := scanner.NewScanner().Scan(path)
	require.NoError(t, err)
	require.Equal(t, []string{"qmath"}, result.Imports.Sorted())
}

func TestScan_References(t *testing.T) {
	path := writeNotebook(t, `pkg.add("plots")
value = qmath.pi
`)

	result, err := scanner.NewScanner().Scan(path)
	require.NoError(t, err)
	require.True(t, result.References.Has("pkg.add"))
	require.True(t, result.References.Has("qmath.pi"))
}

func TestScan_NoMarkersSingleImplicitCell(t *testing.T) {
	path := writeNotebook(t, "import qmath\n")

	result, err := scanner.NewScanner().Scan(path)
	require.NoError(t, err)
	require.Equal(t, 1, result.Cells)
}

func TestScan_EmptyDocument(t *testing.T) {
	path := writeNotebook(t, "")

	result, err := scanner.NewScanner().Scan(path)
	require.NoError(t, err)
	require.Empty(t, result.Imports.Sorted())
	require.Equal(t, 1, result.Cells)
}

func TestScan_MissingFile(t *testing.T) {
	_, err := scanner.NewScanner().Scan("/nonexistent/doc.nb")
	require.Error(t, err)
}
