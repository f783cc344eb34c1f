package scanner

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/fenilsonani/tidyfiles/internal/category"
	"github.com/fenilsonani/tidyfiles/internal/testutil"
)

func newScanner() *Scanner {
	return New(category.NewTable())
}

func TestScanShallow(t *testing.T) {
	fx := testutil.NewFixture(t)
	fx.CreateFile("report.pdf", 100)
	fx.CreateFile("photo.jpg", 200)
	fx.CreateFile(".hidden", 10)
	fx.CreateFile("sub/nested.txt", 50)
	fx.CreateDir("emptydir")

	entries, err := newScanner().Scan(fx.Root, false)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}

	byName := map[string]FileEntry{}
	for _, e := range entries {
		byName[e.Name] = e
	}

	pdf, ok := byName["report.pdf"]
	if !ok {
		t.Fatal("report.pdf missing from scan")
	}
	if pdf.Ext != ".pdf" {
		t.Errorf("ext = %q, want .pdf", pdf.Ext)
	}
	if pdf.Category != category.Documents {
		t.Errorf("category = %q, want Documents", pdf.Category)
	}
	if pdf.Size != 100 {
		t.Errorf("size = %d, want 100", pdf.Size)
	}
	if pdf.Path != filepath.Join(fx.Root, "report.pdf") {
		t.Errorf("path = %q", pdf.Path)
	}
}

func TestScanShallowSkipsCategoryRoot(t *testing.T) {
	fx := testutil.NewFixture(t)
	fx.CreateFile("Documents/report.pdf", 100)

	entries, err := newScanner().Scan(filepath.Join(fx.Root, "Documents"), false)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries inside a category folder, got %d", len(entries))
	}
}

func TestScanRecursive(t *testing.T) {
	fx := testutil.NewFixture(t)
	fx.CreateFile("a.txt", 10)
	fx.CreateFile("sub/b.txt", 20)
	fx.CreateFile("sub/deeper/c.png", 30)
	fx.CreateFile(".hidden", 5)

	entries, err := newScanner().Scan(fx.Root, true)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	// Recursive scans include hidden files.
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	var found bool
	for _, e := range entries {
		if e.Name == "c.png" {
			found = true
			if e.RelPath != filepath.Join("sub", "deeper", "c.png") {
				t.Errorf("rel path = %q", e.RelPath)
			}
			if e.Category != category.Images {
				t.Errorf("category = %q, want Images", e.Category)
			}
		}
	}
	if !found {
		t.Error("c.png missing from recursive scan")
	}
}

func TestScanRecursiveIncludesCategoryFolders(t *testing.T) {
	fx := testutil.NewFixture(t)
	fx.CreateFile("Documents/report.pdf", 100)

	entries, err := newScanner().Scan(fx.Root, true)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 entry, got %d", len(entries))
	}
}

func TestScanMissingRoot(t *testing.T) {
	fx := testutil.NewFixture(t)
	missing := filepath.Join(fx.Root, "nope")

	for _, recursive := range []bool{false, true} {
		_, err := newScanner().Scan(missing, recursive)
		if err == nil {
			t.Fatalf("recursive=%v: expected error for missing root", recursive)
		}
		if !IsNotFound(err) {
			t.Errorf("recursive=%v: expected not-found, got %v", recursive, err)
		}
	}
}

func TestScanEmptyRoot(t *testing.T) {
	fx := testutil.NewFixture(t)

	entries, err := newScanner().Scan(fx.Root, false)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty result, got %d entries", len(entries))
	}
}

func TestScanModTime(t *testing.T) {
	fx := testutil.NewFixture(t)
	old := time.Date(2023, time.March, 15, 12, 0, 0, 0, time.UTC)
	fx.CreateFileWithModTime("old.txt", 10, old)

	entries, err := newScanner().Scan(fx.Root, false)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if !entries[0].ModTime.Equal(old) {
		t.Errorf("mod time = %v, want %v", entries[0].ModTime, old)
	}
}
