package vm

// A ResidencyView is the read-only view of directory state that victim
// finders select over. OccupiedFrames enumerates frames in ascending frame
// id order, which fixes the tie-break order of the finders below.
type ResidencyView interface {
	// OccupiedFrames returns the ids of all frames currently holding a
	// page, in ascending order.
	OccupiedFrames() []FrameID

	// OwnerOf returns the page held by an occupied frame.
	OwnerOf(frame FrameID) PageID

	// RecordOf returns a copy of the residency record of a page.
	RecordOf(page PageID) Record

	// AdmissionOrder returns the occupied frames in the order they were
	// last filled, oldest first. It is maintained only under the FIFO
	// policy.
	AdmissionOrder() []FrameID
}

// A VictimFinder decides which occupied frame should be freed when a fault
// finds no free frame. Finders only select; clearing the chosen record and
// releasing the frame is done by the directory.
type VictimFinder interface {
	FindVictim(view ResidencyView) FrameID
}

// FIFOVictimFinder evicts the frame with the oldest still-resident
// admission.
type FIFOVictimFinder struct{}

// NewFIFOVictimFinder returns a newly constructed FIFO evictor.
func NewFIFOVictimFinder() *FIFOVictimFinder {
	return &FIFOVictimFinder{}
}

// FindVictim returns the frame at the head of the admission order.
func (f *FIFOVictimFinder) FindVictim(view ResidencyView) FrameID {
	return view.AdmissionOrder()[0]
}

// LRUVictimFinder evicts the frame whose page was accessed least recently.
type LRUVictimFinder struct{}

// NewLRUVictimFinder returns a newly constructed LRU evictor.
func NewLRUVictimFinder() *LRUVictimFinder {
	return &LRUVictimFinder{}
}

// FindVictim returns the occupied frame with the smallest last-access time.
// Timestamps are caller-supplied, so ties are possible; the tie goes to the
// lowest frame id.
func (f *LRUVictimFinder) FindVictim(view ResidencyView) FrameID {
	victim := NoFrame
	var oldest int64

	for _, frame := range view.OccupiedFrames() {
		record := view.RecordOf(view.OwnerOf(frame))

		if victim == NoFrame || record.LastAccess < oldest {
			victim = frame
			oldest = record.LastAccess
		}
	}

	return victim
}

// LFUVictimFinder evicts the frame whose page was accessed least frequently
// since it was loaded.
type LFUVictimFinder struct{}

// NewLFUVictimFinder returns a newly constructed LFU evictor.
func NewLFUVictimFinder() *LFUVictimFinder {
	return &LFUVictimFinder{}
}

// FindVictim returns the occupied frame with the smallest access count. A
// count tie goes to the smaller last-access time, and a remaining tie to the
// lowest frame id.
func (f *LFUVictimFinder) FindVictim(view ResidencyView) FrameID {
	victim := NoFrame
	var lowestCount int
	var oldest int64

	for _, frame := range view.OccupiedFrames() {
		record := view.RecordOf(view.OwnerOf(frame))

		betterCount := record.AccessCount < lowestCount
		sameCountOlder := record.AccessCount == lowestCount &&
			record.LastAccess < oldest

		if victim == NoFrame || betterCount || sameCountOlder {
			victim = frame
			lowestCount = record.AccessCount
			oldest = record.LastAccess
		}
	}

	return victim
}
