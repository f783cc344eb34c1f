package organizer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/fenilsonani/tidyfiles/internal/category"
	"github.com/fenilsonani/tidyfiles/internal/scanner"
)

var extPool = []string{".pdf", ".jpg", ".mp3", ".zip", ".go", ".xyz", ".txt", ""}

// snapshot captures every path under root with its size.
func snapshot(t *testing.T, root string) map[string]int64 {
	t.Helper()
	state := map[string]int64{}
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			state[path] = -1
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		state[path] = info.Size()
		return nil
	})
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	return state
}

func equalStates(a, b map[string]int64) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

func genFileName() gopter.Gen {
	return gopter.CombineGens(
		gen.RegexMatch(`[a-z]{1,8}`),
		gen.IntRange(0, len(extPool)-1),
	).Map(func(vals []interface{}) string {
		return vals[0].(string) + extPool[vals[1].(int)]
	})
}

func TestDryRunLeavesFilesystemUntouched(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40

	properties := gopter.NewProperties(parameters)

	properties.Property("dry run never mutates the tree", prop.ForAll(
		func(names []string) bool {
			root := t.TempDir()
			for i, name := range names {
				path := filepath.Join(root, name)
				if err := os.WriteFile(path, make([]byte, i+1), 0o644); err != nil {
					return false
				}
			}

			before := snapshot(t, root)

			org := New(scanner.New(category.NewTable()))
			plan, err := org.PlanByType(root, "")
			if err != nil {
				return false
			}
			report := org.Execute(plan, true)
			if report.Moved != 0 {
				return false
			}

			return equalStates(before, snapshot(t, root))
		},
		gen.SliceOf(genFileName()),
	))

	properties.Property("planned destinations are unique", prop.ForAll(
		func(names []string) bool {
			root := t.TempDir()
			for _, name := range names {
				if err := os.WriteFile(filepath.Join(root, name), []byte("x"), 0o644); err != nil {
					return false
				}
			}

			org := New(scanner.New(category.NewTable()))
			plan, err := org.PlanByType(root, "")
			if err != nil {
				return false
			}

			seen := map[string]bool{}
			for _, b := range plan.Buckets {
				for _, mv := range b.Moves {
					if seen[mv.Dest] {
						return false
					}
					seen[mv.Dest] = true
				}
			}
			return true
		},
		gen.SliceOf(genFileName()),
	))

	properties.TestingRun(t)
}
