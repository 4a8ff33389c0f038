// Package scanner extracts import and reference sets from notebook
// documents. A notebook is a plain text file whose cells are delimited by
// "# %%" marker lines.
package scanner

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"github.com/nbxlab/nbenv/internal/core/domain"
	"github.com/nbxlab/nbenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// CellMarker starts a new cell when it prefixes a line.
const CellMarker = "# %%"

var (
	importRe    = regexp.MustCompile(`^\s*import\s+(.+)$`)
	referenceRe = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*\.[A-Za-z_][A-Za-z0-9_]*)\b`)
	nameRe      = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Scanner implements ports.ImportScanner with a line-based scan. It does not
// parse the cell language; import statements nested inside multi-line string
// literals are over-counted, which at worst declares an extra dependency.
type Scanner struct{}

// NewScanner creates a Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan reads the notebook at path and aggregates imports and references
// across all its cells.
func (s *Scanner) Scan(path string) (ports.ScanResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.ScanResult{}, zerr.With(
			zerr.Wrap(err, domain.ErrNotebookReadFailed.Error()),
			"notebook", path,
		)
	}
	defer f.Close()

	result := ports.ScanResult{
		Imports:    domain.NewImportSet(),
		References: domain.NewReferenceSet(),
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, CellMarker) {
			result.Cells++
			continue
		}
		scanLine(stripComment(line), &result)
	}
	if err := sc.Err(); err != nil {
		return ports.ScanResult{}, zerr.With(
			zerr.Wrap(err, domain.ErrNotebookReadFailed.Error()),
			"notebook", path,
		)
	}

	// A document without markers is a single implicit cell.
	if result.Cells == 0 {
		result.Cells = 1
	}
	return result, nil
}

func scanLine(line string, result *ports.ScanResult) {
	if m := importRe.FindStringSubmatch(line); m != nil {
		for _, part := range strings.Split(m[1], ",") {
			name := strings.TrimSpace(part)
			// "import Alpha as a" binds Alpha under a local alias.
			if i := strings.Index(name, " as "); i >= 0 {
				name = strings.TrimSpace(name[:i])
			}
			if nameRe.MatchString(name) {
				result.Imports.Add(name)
			}
		}
		return
	}

	for _, ref := range referenceRe.FindAllString(line, -1) {
		result.References.Add(ref)
	}
}

// stripComment removes a trailing "#" comment, ignoring hashes inside
// double-quoted strings.
func stripComment(line string) string {
	inString := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			if i == 0 || line[i-1] != '\\' {
				inString = !inString
			}
		case '#':
			if !inString {
				return line[:i]
			}
		}
	}
	return line
}
