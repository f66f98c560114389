// Package writer persists generated LookML files to the output tree.
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// File is one output file, path relative to the output root.
type File struct {
	Path     string
	Contents []byte
}

// Write creates outputDir (and the views/ subtree) and writes every file,
// fanning out across goroutines. The first error cancels the remaining
// writes. Emission order does not matter: file contents are fully
// deterministic before any write starts.
func Write(outputDir string, files []File) error {
	if err := os.MkdirAll(filepath.Join(outputDir, "views"), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	var g errgroup.Group
	g.SetLimit(8)
	for _, f := range files {
		g.Go(func() error {
			path := filepath.Join(outputDir, f.Path)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
			}
			if err := os.WriteFile(path, f.Contents, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			return nil
		})
	}
	return g.Wait()
}
