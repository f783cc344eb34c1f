// Package testutil provides filesystem fixtures for tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Fixture is a temporary directory tree for a single test.
type Fixture struct {
	t    *testing.T
	Root string
}

// NewFixture creates a fixture rooted at a fresh temp directory.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()
	return &Fixture{t: t, Root: t.TempDir()}
}

// CreateFile writes a file of the given size under the fixture root,
// creating parent directories as needed. Returns the absolute path.
func (f *Fixture) CreateFile(relPath string, size int) string {
	f.t.Helper()

	path := filepath.Join(f.Root, relPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		f.t.Fatalf("mkdir for %s: %v", relPath, err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		f.t.Fatalf("write %s: %v", relPath, err)
	}
	return path
}

// CreateFileWithModTime writes a file and backdates its mtime.
func (f *Fixture) CreateFileWithModTime(relPath string, size int, mtime time.Time) string {
	f.t.Helper()

	path := f.CreateFile(relPath, size)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		f.t.Fatalf("chtimes %s: %v", relPath, err)
	}
	return path
}

// CreateDir creates a directory under the fixture root.
func (f *Fixture) CreateDir(relPath string) string {
	f.t.Helper()

	path := filepath.Join(f.Root, relPath)
	if err := os.MkdirAll(path, 0o755); err != nil {
		f.t.Fatalf("mkdir %s: %v", relPath, err)
	}
	return path
}

// Exists reports whether a path exists under the fixture root.
func (f *Fixture) Exists(relPath string) bool {
	_, err := os.Stat(filepath.Join(f.Root, relPath))
	return err == nil
}
