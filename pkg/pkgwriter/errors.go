package pkgwriter

import "errors"

// === Packaging Errors ===

var (
	// ErrOutputDirMissing is returned when the target output directory
	// does not exist. Package never creates the top-level output
	// directory itself, only the subdirectory beneath it — callers are
	// expected to have already chosen and created a real destination.
	ErrOutputDirMissing = errors.New("pkgwriter: output directory does not exist")
)
