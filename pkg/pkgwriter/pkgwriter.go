package pkgwriter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/markojukic/jsongen/pkg/gobuild"
	"github.com/markojukic/jsongen"
)

// Package opens an emission session targeting outputDir/subdir: it
// asserts outputDir already exists, creates subdir beneath it if
// absent, and returns a fresh Session and Builder ready for
// jsongen.Generate calls. The returned close function flushes the
// builder's accumulated source to outputDir/subdir/generatedFilename,
// using subdir's base name as the file's package clause.
func Package(outputDir, subdir string) (*jsongen.Session, *gobuild.Builder, func(generatedFilename string) error, error) {
	if _, err := os.Stat(outputDir); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %s", ErrOutputDirMissing, outputDir)
	}
	dir := filepath.Join(outputDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, nil, fmt.Errorf("pkgwriter: creating %s: %w", dir, err)
	}

	pkgName := filepath.Base(subdir)
	s := jsongen.NewSession()
	b := gobuild.New()
	closeFunc := func(generatedFilename string) error {
		return b.Flush(filepath.Join(dir, generatedFilename), pkgName)
	}
	return s, b, closeFunc, nil
}
