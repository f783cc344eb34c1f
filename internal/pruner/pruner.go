// Package pruner removes empty directories from a tree.
package pruner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fenilsonani/tidyfiles/internal/scanner"
)

// Report lists the directories a prune removed.
type Report struct {
	Root    string   `json:"root" yaml:"root"`
	Removed []string `json:"removed" yaml:"removed"`
}

// Prune deletes empty directories under root, deepest first, so that a
// directory left empty by its children's removal is itself removed in
// the same pass. The root is never deleted. Directories that cannot be
// removed are left in place without failing the run.
func Prune(root string) (*Report, error) {
	dirs := []string{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return scanner.CategorizeRootError(root, err)
			}
			return nil
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deepest paths first.
	sort.Slice(dirs, func(i, j int) bool { return len(dirs[i]) > len(dirs[j]) })

	report := &Report{Root: root, Removed: []string{}}
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			continue
		}
		if err := os.Remove(dir); err != nil {
			continue
		}
		report.Removed = append(report.Removed, filepath.Base(dir))
	}

	return report, nil
}
