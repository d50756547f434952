// Package profile samples process memory usage around one timed operation.
package profile

import (
	"fmt"
	"runtime"

	"github.com/mfenerich/duplicate-letter-fest/internal/model"
)

// MemoryProfiler brackets a single measurement. Start must be
// balanced by Stop (or Release) before the next Start; two
// measurements never overlap.
type MemoryProfiler struct {
	running   bool
	baseHeap  uint64
	baseTotal uint64
}

// Start snapshots the current allocation counters.
func (p *MemoryProfiler) Start() error {
	if p.running {
		return fmt.Errorf("memory profiler already started")
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.baseHeap = m.HeapAlloc
	p.baseTotal = m.TotalAlloc
	p.running = true
	return nil
}

// Stop ends the measurement and returns the stats since Start.
// Current is the net heap growth, Peak the total bytes allocated in
// the bracket; Peak >= Current always holds. Returns false if the
// profiler was not running.
func (p *MemoryProfiler) Stop() (model.MemoryStats, bool) {
	if !p.running {
		return model.MemoryStats{}, false
	}
	p.running = false
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	var current uint64
	if m.HeapAlloc > p.baseHeap {
		current = m.HeapAlloc - p.baseHeap
	}
	peak := m.TotalAlloc - p.baseTotal
	if peak < current {
		peak = current
	}
	return model.MemoryStats{Current: current, Peak: peak}, true
}

// Release stops the bracket if it is still engaged. Meant for defer,
// so error paths never leave the profiler running.
func (p *MemoryProfiler) Release() {
	if p.running {
		_, _ = p.Stop()
	}
}
