package pruner

import (
	"path/filepath"
	"testing"

	"github.com/fenilsonani/tidyfiles/internal/scanner"
	"github.com/fenilsonani/tidyfiles/internal/testutil"
)

func TestPruneRemovesEmptyDirs(t *testing.T) {
	fx := testutil.NewFixture(t)
	fx.CreateDir("empty")
	fx.CreateDir("full")
	fx.CreateFile("full/keep.txt", 10)

	report, err := Prune(fx.Root)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}

	if len(report.Removed) != 1 || report.Removed[0] != "empty" {
		t.Errorf("removed = %v, want [empty]", report.Removed)
	}
	if fx.Exists("empty") {
		t.Error("empty dir still present")
	}
	if !fx.Exists("full/keep.txt") {
		t.Error("non-empty dir disturbed")
	}
}

func TestPruneCascades(t *testing.T) {
	fx := testutil.NewFixture(t)
	fx.CreateDir("a/b/c")

	report, err := Prune(fx.Root)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}

	// c removed first leaves b empty, then a.
	if len(report.Removed) != 3 {
		t.Fatalf("removed = %v, want 3 dirs", report.Removed)
	}
	if fx.Exists("a") {
		t.Error("cascade did not reach top-level dir")
	}
}

func TestPruneNeverRemovesRoot(t *testing.T) {
	fx := testutil.NewFixture(t)

	report, err := Prune(fx.Root)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if len(report.Removed) != 0 {
		t.Errorf("removed = %v, want none", report.Removed)
	}
	if !fx.Exists(".") {
		t.Error("root directory removed")
	}
}

func TestPruneKeepsDirsWithOnlyHiddenFiles(t *testing.T) {
	fx := testutil.NewFixture(t)
	fx.CreateFile("dotted/.keep", 0)

	_, err := Prune(fx.Root)
	if err != nil {
		t.Fatalf("Prune failed: %v", err)
	}
	if !fx.Exists("dotted/.keep") {
		t.Error("dir containing a hidden file was pruned")
	}
}

func TestPruneMissingRoot(t *testing.T) {
	fx := testutil.NewFixture(t)

	_, err := Prune(filepath.Join(fx.Root, "nope"))
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	if !scanner.IsNotFound(err) {
		t.Errorf("expected not-found, got %v", err)
	}
}
