// Package scanner enumerates regular files under a root directory.
package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fenilsonani/tidyfiles/internal/category"
)

// FileEntry is an immutable snapshot of one regular file, taken at scan time.
// Entries are created fresh on every scan and never cached across operations.
type FileEntry struct {
	Path     string            `json:"path" yaml:"path"`
	RelPath  string            `json:"rel_path" yaml:"rel_path"`
	Name     string            `json:"name" yaml:"name"`
	Size     int64             `json:"size" yaml:"size"`
	ModTime  time.Time         `json:"mod_time" yaml:"mod_time"`
	Ext      string            `json:"ext" yaml:"ext"`
	Category category.Category `json:"category" yaml:"category"`
}

// Scanner produces FileEntry snapshots, classifying each file as it goes.
type Scanner struct {
	table *category.Table
}

// New creates a Scanner over the given category table.
func New(table *category.Table) *Scanner {
	return &Scanner{table: table}
}

// Table returns the scanner's category table.
func (s *Scanner) Table() *category.Table {
	return s.table
}

// Scan enumerates regular files under root.
//
// Shallow mode (recursive=false) lists only immediate children, skipping
// hidden names, and yields nothing when the root itself is a category folder
// so that re-running an organize pass never re-categorizes organized files.
//
// Recursive mode walks the whole subtree with no category exclusion. An
// unreadable root fails the scan; unreadable subdirectories are skipped and
// the walk continues.
func (s *Scanner) Scan(root string, recursive bool) ([]FileEntry, error) {
	if recursive {
		return s.scanRecursive(root)
	}
	return s.scanShallow(root)
}

func (s *Scanner) scanShallow(root string) ([]FileEntry, error) {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, CategorizeRootError(root, err)
	}

	entries := []FileEntry{}

	// Files already sitting inside a category folder stay where they are.
	if s.table.IsCategoryName(filepath.Base(root)) {
		return entries, nil
	}

	for _, de := range dirEntries {
		if de.IsDir() || strings.HasPrefix(de.Name(), ".") {
			continue
		}
		if !de.Type().IsRegular() {
			continue
		}
		info, err := de.Info()
		if err != nil {
			// Entry vanished between listing and stat; skip it.
			continue
		}
		entries = append(entries, s.newEntry(root, filepath.Join(root, de.Name()), info))
	}

	return entries, nil
}

func (s *Scanner) scanRecursive(root string) ([]FileEntry, error) {
	entries := []FileEntry{}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return CategorizeRootError(root, err)
			}
			// Unreadable subdirectory: skip it, keep scanning.
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		entries = append(entries, s.newEntry(root, path, info))
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	return entries, nil
}

func (s *Scanner) newEntry(root, path string, info fs.FileInfo) FileEntry {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = info.Name()
	}
	ext := strings.ToLower(filepath.Ext(info.Name()))

	return FileEntry{
		Path:     path,
		RelPath:  rel,
		Name:     info.Name(),
		Size:     info.Size(),
		ModTime:  info.ModTime(),
		Ext:      ext,
		Category: s.table.Classify(ext),
	}
}
