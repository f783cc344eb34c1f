// Package watcher re-organizes a folder whenever its contents change.
package watcher

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/fenilsonani/tidyfiles/internal/organizer"
)

// Watcher observes one folder and runs an organize pass after file
// activity settles.
type Watcher struct {
	root      string
	destDir   string
	organizer *organizer.Organizer
	debounce  time.Duration
	onReport  func(*organizer.Report)
}

// New creates a Watcher over root. onReport receives the report of each
// organize pass; a nil onReport discards them.
func New(org *organizer.Organizer, root, destDir string, debounce time.Duration, onReport func(*organizer.Report)) *Watcher {
	if onReport == nil {
		onReport = func(*organizer.Report) {}
	}
	return &Watcher{
		root:      root,
		destDir:   destDir,
		organizer: org,
		debounce:  debounce,
		onReport:  onReport,
	}
}

// Run watches until ctx is cancelled. Events inside a debounce window
// collapse into one organize pass.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.root); err != nil {
		return fmt.Errorf("watching %s: %w", w.root, err)
	}

	debouncer := NewDebouncer(w.debounce, w.organizePass)
	defer debouncer.Stop()

	// Catch files that arrived before the watch started.
	debouncer.Trigger()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				debouncer.Trigger()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func (w *Watcher) organizePass() {
	plan, err := w.organizer.PlanByType(w.root, w.destDir)
	if err != nil {
		log.Printf("organize pass failed: %v", err)
		return
	}
	if plan.Total == 0 {
		return
	}
	w.onReport(w.organizer.Execute(plan, false))
}
