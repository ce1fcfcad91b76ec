package vm

// PageID identifies a page of virtual memory. Page ids are assigned by the
// workload; the engine places no upper bound on them.
type PageID int

// FrameID identifies a physical memory frame.
type FrameID int

// NoFrame is the frame id of a page that is not resident.
const NoFrame FrameID = -1

// A Record is an entry in the page directory, maintaining the residency
// information of one page. A record is created on the first reference to its
// page and persists across evictions, so that a page can be re-faulted later
// with a fresh access count.
type Record struct {
	PageID      PageID
	FrameID     FrameID
	Valid       bool
	LastAccess  int64
	AccessCount int
}

// markAccess updates the access information when the page is referenced
// while resident.
func (r *Record) markAccess(now int64) {
	r.LastAccess = now
	r.AccessCount++
}

// loadInFrame binds the page to a frame. The access count restarts at 1.
func (r *Record) loadInFrame(frame FrameID, now int64) {
	r.FrameID = frame
	r.Valid = true
	r.LastAccess = now
	r.AccessCount = 1
}

// evict removes the page from memory and returns the frame it occupied.
func (r *Record) evict() FrameID {
	frame := r.FrameID
	r.FrameID = NoFrame
	r.Valid = false

	return frame
}
