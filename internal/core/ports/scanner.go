package ports

import "github.com/nbxlab/nbenv/internal/core/domain"

// ScanResult is everything the sync pipeline needs from one pass over a
// notebook's cells.
type ScanResult struct {
	// Imports are the top-level package names imported anywhere in the
	// document.
	Imports domain.ImportSet
	// References are the qualified symbol references seen in the document,
	// consumed by the usage-mode detector.
	References domain.ReferenceSet
	// Cells is the number of cells scanned.
	Cells int
}

// ImportScanner extracts the import and reference sets from a notebook
// document.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type ImportScanner interface {
	// Scan reads the notebook at path and aggregates imports and references
	// across all its cells.
	Scan(path string) (ScanResult, error)
}
