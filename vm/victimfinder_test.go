package vm

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// stubView is a hand-built directory view for pinning down tie-break rules.
type stubView struct {
	frames  []FrameID
	owners  map[FrameID]PageID
	records map[PageID]Record
	order   []FrameID
}

func (v stubView) OccupiedFrames() []FrameID {
	return v.frames
}

func (v stubView) OwnerOf(frame FrameID) PageID {
	return v.owners[frame]
}

func (v stubView) RecordOf(page PageID) Record {
	return v.records[page]
}

func (v stubView) AdmissionOrder() []FrameID {
	return v.order
}

func makeView() stubView {
	return stubView{
		frames: []FrameID{0, 1, 2},
		owners: map[FrameID]PageID{0: 10, 1: 11, 2: 12},
		records: map[PageID]Record{
			10: {PageID: 10, FrameID: 0, Valid: true},
			11: {PageID: 11, FrameID: 1, Valid: true},
			12: {PageID: 12, FrameID: 2, Valid: true},
		},
		order: []FrameID{1, 2, 0},
	}
}

var _ = Describe("FIFOVictimFinder", func() {
	It("should pick the head of the admission order", func() {
		finder := NewFIFOVictimFinder()

		Expect(finder.FindVictim(makeView())).To(Equal(FrameID(1)))
	})
})

var _ = Describe("LRUVictimFinder", func() {
	var finder *LRUVictimFinder

	BeforeEach(func() {
		finder = NewLRUVictimFinder()
	})

	It("should pick the least recently accessed page", func() {
		view := makeView()
		setAccess(view, 10, 30, 1)
		setAccess(view, 11, 10, 1)
		setAccess(view, 12, 20, 1)

		Expect(finder.FindVictim(view)).To(Equal(FrameID(1)))
	})

	It("should break timestamp ties by the lowest frame id", func() {
		view := makeView()
		setAccess(view, 10, 10, 1)
		setAccess(view, 11, 10, 1)
		setAccess(view, 12, 10, 1)

		Expect(finder.FindVictim(view)).To(Equal(FrameID(0)))
	})
})

var _ = Describe("LFUVictimFinder", func() {
	var finder *LFUVictimFinder

	BeforeEach(func() {
		finder = NewLFUVictimFinder()
	})

	It("should pick the least frequently accessed page", func() {
		view := makeView()
		setAccess(view, 10, 1, 3)
		setAccess(view, 11, 2, 2)
		setAccess(view, 12, 3, 5)

		Expect(finder.FindVictim(view)).To(Equal(FrameID(1)))
	})

	It("should break count ties by the older access", func() {
		view := makeView()
		setAccess(view, 10, 30, 2)
		setAccess(view, 11, 20, 2)
		setAccess(view, 12, 10, 5)

		Expect(finder.FindVictim(view)).To(Equal(FrameID(1)))
	})

	It("should break remaining ties by the lowest frame id", func() {
		view := makeView()
		setAccess(view, 10, 10, 2)
		setAccess(view, 11, 10, 2)
		setAccess(view, 12, 10, 2)

		Expect(finder.FindVictim(view)).To(Equal(FrameID(0)))
	})
})

func setAccess(view stubView, page PageID, lastAccess int64, count int) {
	record := view.records[page]
	record.LastAccess = lastAccess
	record.AccessCount = count
	view.records[page] = record
}
