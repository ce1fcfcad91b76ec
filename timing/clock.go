// Package timing provides the logical timeline that drives a page
// directory. A Clock charges fault and context-switch penalties against the
// timeline and aggregates run-level metrics for its caller.
package timing

import (
	"github.com/sarchlab/vmsim/vm"
)

// A Clock wraps a page directory with a logical time counter and fixed
// penalties. Penalties are configuration, not derived state.
//
// A Clock models exactly one machine's memory subsystem. It is not safe for
// concurrent use; interleaving simulated processes share the one timeline
// through external serialization.
type Clock struct {
	directory     vm.Directory
	now           int64
	faultPenalty  int64
	switchPenalty int64
}

// Now returns the current logical time.
func (c *Clock) Now() int64 {
	return c.now
}

// Touch references a page at the current logical time. On a fault the
// timeline advances by the fault penalty and that amount is returned as the
// charged delay. A hit charges nothing and does not advance time.
func (c *Clock) Touch(page vm.PageID) (delay int64, frame vm.FrameID) {
	faulted, frame := c.directory.Access(page, c.now)
	if !faulted {
		return 0, frame
	}

	c.now += c.faultPenalty

	return c.faultPenalty, frame
}

// Read references a page for reading. Reads and writes are charged
// identically; the split exists for callers that account them separately.
func (c *Clock) Read(page vm.PageID) (delay int64, frame vm.FrameID) {
	return c.Touch(page)
}

// Write references a page for writing.
func (c *Clock) Write(page vm.PageID) (delay int64, frame vm.FrameID) {
	return c.Touch(page)
}

// Advance moves the timeline forward unconditionally. Batch runs use it to
// charge a fixed per-reference overhead independent of the hit or fault
// outcome.
func (c *Clock) Advance(ticks int64) {
	c.now += ticks
}

// SwitchContext charges the context-switch penalty. The paging engine is
// untouched.
func (c *Clock) SwitchContext() {
	c.now += c.switchPenalty
}

// Metrics returns the directory's current metrics snapshot.
func (c *Clock) Metrics() vm.Metrics {
	return c.directory.Metrics()
}

// Directory returns the directory currently driven by this clock.
func (c *Clock) Directory() vm.Directory {
	return c.directory
}

// SwapDirectory replaces the active directory, typically with an empty one
// of the same capacity under a different policy. All prior residency state
// is discarded; callers must treat a swap as a full reset, not a migration.
func (c *Clock) SwapDirectory(d vm.Directory) {
	c.directory = d
}

// RunSequence feeds an ordered page reference sequence through the clock,
// charging one tick per reference plus the fault penalties, and returns the
// resulting metrics snapshot.
func (c *Clock) RunSequence(sequence []vm.PageID) vm.Metrics {
	for _, page := range sequence {
		c.Advance(1)
		c.Touch(page)
	}

	return c.Metrics()
}
