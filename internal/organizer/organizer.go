// Package organizer plans and executes file moves into category or
// date-based folders.
package organizer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fenilsonani/tidyfiles/internal/scanner"
)

// Mode selects the bucketing strategy for a plan.
type Mode string

const (
	ByType Mode = "type"
	ByDate Mode = "date"
)

// Move is one planned relocation of a file.
type Move struct {
	Source string `json:"source" yaml:"source"`
	Dest   string `json:"dest" yaml:"dest"`
	Name   string `json:"name" yaml:"name"`
	Size   int64  `json:"size" yaml:"size"`
}

// Bucket groups the planned moves that share a destination folder.
type Bucket struct {
	Name  string `json:"name" yaml:"name"`
	Dir   string `json:"dir" yaml:"dir"`
	Moves []Move `json:"moves" yaml:"moves"`
}

// Plan is a complete, not-yet-executed set of moves. Building a plan
// never touches the filesystem beyond reading it.
type Plan struct {
	Root    string   `json:"root" yaml:"root"`
	DestDir string   `json:"dest_dir" yaml:"dest_dir"`
	Mode    Mode     `json:"mode" yaml:"mode"`
	Buckets []Bucket `json:"buckets" yaml:"buckets"`
	Total   int      `json:"total" yaml:"total"`
}

// Skip records a file the executor could not move.
type Skip struct {
	Name   string `json:"name" yaml:"name"`
	Reason string `json:"reason" yaml:"reason"`
}

// Report summarizes an organize run.
type Report struct {
	Root    string   `json:"root" yaml:"root"`
	DestDir string   `json:"dest_dir" yaml:"dest_dir"`
	Mode    Mode     `json:"mode" yaml:"mode"`
	DryRun  bool     `json:"dry_run" yaml:"dry_run"`
	Moved   int      `json:"moved" yaml:"moved"`
	Planned int      `json:"planned" yaml:"planned"`
	Buckets []Bucket `json:"buckets" yaml:"buckets"`
	Skipped []Skip   `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Organizer builds and executes plans over a scanner.
type Organizer struct {
	scanner *scanner.Scanner
}

// New creates an Organizer.
func New(s *scanner.Scanner) *Organizer {
	return &Organizer{scanner: s}
}

// PlanByType plans moving root's immediate files into category folders
// under destDir. An empty destDir targets root itself.
func (o *Organizer) PlanByType(root, destDir string) (*Plan, error) {
	if destDir == "" {
		destDir = root
	}

	entries, err := o.scanner.Scan(root, false)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Root: root, DestDir: destDir, Mode: ByType}
	taken := newNameSet()

	for _, e := range entries {
		bucketName := string(e.Category)
		dir := filepath.Join(destDir, bucketName)
		dest := uniqueDestination(dir, e.Name, taken)
		plan.add(bucketName, dir, Move{Source: e.Path, Dest: dest, Name: e.Name, Size: e.Size})
	}

	plan.sortBuckets()
	return plan, nil
}

// PlanByDate plans moving root's immediate files into year/month folders
// under root, keyed by modification time.
func (o *Organizer) PlanByDate(root string) (*Plan, error) {
	entries, err := o.scanner.Scan(root, false)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Root: root, DestDir: root, Mode: ByDate}
	taken := newNameSet()

	for _, e := range entries {
		bucketName := dateBucket(e)
		dir := filepath.Join(root, bucketName)
		dest := uniqueDestination(dir, e.Name, taken)
		plan.add(bucketName, dir, Move{Source: e.Path, Dest: dest, Name: e.Name, Size: e.Size})
	}

	plan.sortBuckets()
	return plan, nil
}

// Execute carries out a plan. With dryRun set, it returns the report the
// run would produce without touching the filesystem. Individual move
// failures are recorded as skips and never abort the run.
func (o *Organizer) Execute(plan *Plan, dryRun bool) *Report {
	report := &Report{
		Root:    plan.Root,
		DestDir: plan.DestDir,
		Mode:    plan.Mode,
		DryRun:  dryRun,
		Planned: plan.Total,
		Buckets: plan.Buckets,
	}

	if dryRun {
		return report
	}

	for _, bucket := range plan.Buckets {
		if err := os.MkdirAll(bucket.Dir, 0o755); err != nil {
			for _, mv := range bucket.Moves {
				report.Skipped = append(report.Skipped, Skip{Name: mv.Name, Reason: err.Error()})
			}
			continue
		}
		for _, mv := range bucket.Moves {
			if err := moveFile(mv.Source, mv.Dest); err != nil {
				report.Skipped = append(report.Skipped, Skip{Name: mv.Name, Reason: err.Error()})
				continue
			}
			report.Moved++
		}
	}

	return report
}

func (p *Plan) add(bucketName, dir string, mv Move) {
	for i := range p.Buckets {
		if p.Buckets[i].Name == bucketName {
			p.Buckets[i].Moves = append(p.Buckets[i].Moves, mv)
			p.Total++
			return
		}
	}
	p.Buckets = append(p.Buckets, Bucket{Name: bucketName, Dir: dir, Moves: []Move{mv}})
	p.Total++
}

func (p *Plan) sortBuckets() {
	sort.Slice(p.Buckets, func(i, j int) bool {
		return p.Buckets[i].Name < p.Buckets[j].Name
	})
}

// dateBucket names the year/month folder for an entry, e.g. "2024/03 - March".
func dateBucket(e scanner.FileEntry) string {
	t := e.ModTime
	return filepath.Join(
		fmt.Sprintf("%04d", t.Year()),
		fmt.Sprintf("%02d - %s", int(t.Month()), t.Month().String()),
	)
}

// nameSet tracks destinations claimed within a single plan so that two
// same-named files headed for one folder get distinct targets even
// before anything exists on disk.
type nameSet map[string]bool

func newNameSet() nameSet { return nameSet{} }

// uniqueDestination picks a target path in dir for name, appending _1,
// _2, ... before the extension until the path is free both on disk and
// within the plan.
func uniqueDestination(dir, name string, taken nameSet) string {
	candidate := filepath.Join(dir, name)
	if available(candidate, taken) {
		taken[candidate] = true
		return candidate
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for n := 1; ; n++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
		if available(candidate, taken) {
			taken[candidate] = true
			return candidate
		}
	}
}

// available reports whether nothing exists at path and the plan has not
// claimed it. Only a successful Lstat counts as taken; a path that
// cannot be statted (missing, blocked by a non-directory parent,
// unreadable) leaves the failure to the execute step, which records it
// as a skip via MkdirAll or the O_EXCL open.
func available(path string, taken nameSet) bool {
	if taken[path] {
		return false
	}
	_, err := os.Lstat(path)
	return err != nil
}

// moveFile renames source to dest, falling back to copy-and-delete when
// the rename crosses filesystems.
func moveFile(source, dest string) error {
	if err := os.Rename(source, dest); err == nil {
		return nil
	}

	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return err
	}

	return os.Remove(source)
}
