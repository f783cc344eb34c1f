package watcher

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerCoalesces(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(50*time.Millisecond, func() { fired.Add(1) })
	defer d.Stop()

	for i := 0; i < 10; i++ {
		d.Trigger()
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(150 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("fired %d times, want 1", got)
	}
}

func TestDebouncerFiresAgainAfterQuiet(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func() { fired.Add(1) })
	defer d.Stop()

	d.Trigger()
	time.Sleep(80 * time.Millisecond)
	d.Trigger()
	time.Sleep(80 * time.Millisecond)

	if got := fired.Load(); got != 2 {
		t.Errorf("fired %d times, want 2", got)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	var fired atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func() { fired.Add(1) })

	d.Trigger()
	d.Stop()
	time.Sleep(100 * time.Millisecond)

	if got := fired.Load(); got != 0 {
		t.Errorf("fired %d times after Stop, want 0", got)
	}
}
