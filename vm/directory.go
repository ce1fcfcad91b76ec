// Package vm implements the paging engine: the page directory that tracks
// page-to-frame residency, detects hits and faults, and selects eviction
// victims under the FIFO, LRU, and LFU replacement policies.
package vm

import (
	"log"
	"sort"
)

// A Directory owns all page-to-frame state of one simulated machine. It
// detects hits and faults, selects eviction victims through its victim
// finder, and keeps the bookkeeping each policy needs.
//
// A Directory is not safe for concurrent use. It models exactly one memory
// subsystem driven by one logical timeline.
type Directory interface {
	ResidencyView

	// Access references a page at the given logical time. It reports
	// whether the reference faulted and the frame now holding the page.
	Access(page PageID, now int64) (faulted bool, frame FrameID)

	// FrameCount returns the fixed number of physical frames.
	FrameCount() int

	// Policy returns the active replacement policy.
	Policy() Policy

	// Metrics returns a snapshot of the performance counters.
	Metrics() Metrics

	// Name returns the name of the directory.
	Name() string
}

// directory is the default implementation of a Directory.
type directory struct {
	name       string
	policy     Policy
	finder     VictimFinder
	frameCount int

	records    map[PageID]*Record
	owners     map[FrameID]PageID
	freeFrames []FrameID
	admitted   []FrameID

	hits            uint64
	faults          uint64
	totalReferences uint64
}

// Access references a page. A reference to a resident page is a hit and runs
// no capacity logic. A reference to a non-resident page is a fault: the page
// is bound to a free frame if one exists, otherwise to the frame freed by
// evicting the victim finder's choice.
//
// The timestamp is caller-supplied and is not validated for monotonicity.
func (d *directory) Access(page PageID, now int64) (bool, FrameID) {
	d.totalReferences++

	record, found := d.records[page]
	if !found {
		record = &Record{PageID: page, FrameID: NoFrame}
		d.records[page] = record
	}

	if record.Valid {
		d.hits++
		record.markAccess(now)

		return false, record.FrameID
	}

	d.faults++

	frame := d.obtainFrame()
	record.loadInFrame(frame, now)
	d.owners[frame] = page

	if d.policy == FIFO {
		d.admitted = append(d.admitted, frame)
	}

	return true, frame
}

// obtainFrame returns a frame that the faulting page can be loaded into.
// Free frames are all equally empty, so the choice among them is
// policy-independent.
func (d *directory) obtainFrame() FrameID {
	if len(d.freeFrames) > 0 {
		frame := d.freeFrames[0]
		d.freeFrames = d.freeFrames[1:]

		return frame
	}

	return d.evictVictim()
}

// evictVictim frees one occupied frame chosen by the victim finder. Reaching
// this with no occupied frame means the free-frame branch should have been
// taken and the directory state is corrupt.
func (d *directory) evictVictim() FrameID {
	if len(d.owners) == 0 {
		log.Panic("victim selection requested while free frames exist")
	}

	frame := d.finder.FindVictim(d)

	page, occupied := d.owners[frame]
	if !occupied {
		log.Panicf("victim finder chose unoccupied frame %d", frame)
	}

	d.records[page].evict()
	delete(d.owners, frame)
	d.removeFromAdmissionOrder(frame)

	return frame
}

func (d *directory) removeFromAdmissionOrder(frame FrameID) {
	for i, f := range d.admitted {
		if f == frame {
			d.admitted = append(d.admitted[:i], d.admitted[i+1:]...)
			return
		}
	}
}

// OccupiedFrames returns the ids of all occupied frames in ascending order.
func (d *directory) OccupiedFrames() []FrameID {
	frames := make([]FrameID, 0, len(d.owners))
	for frame := range d.owners {
		frames = append(frames, frame)
	}

	sort.Slice(frames, func(i, j int) bool {
		return frames[i] < frames[j]
	})

	return frames
}

// OwnerOf returns the page held by an occupied frame.
func (d *directory) OwnerOf(frame FrameID) PageID {
	page, occupied := d.owners[frame]
	if !occupied {
		log.Panicf("frame %d holds no page", frame)
	}

	return page
}

// RecordOf returns a copy of the residency record of a page.
func (d *directory) RecordOf(page PageID) Record {
	record, found := d.records[page]
	if !found {
		log.Panicf("page %d has never been referenced", page)
	}

	return *record
}

// AdmissionOrder returns the occupied frames oldest admission first. It is
// only maintained under the FIFO policy.
func (d *directory) AdmissionOrder() []FrameID {
	return d.admitted
}

// FrameCount returns the fixed number of physical frames.
func (d *directory) FrameCount() int {
	return d.frameCount
}

// Policy returns the active replacement policy.
func (d *directory) Policy() Policy {
	return d.policy
}

// Name returns the name of the directory.
func (d *directory) Name() string {
	return d.name
}
