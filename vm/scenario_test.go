package vm

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// runSequence feeds a reference sequence through a directory with one
// timestamp tick per reference.
func runSequence(dir Directory, pages []PageID) {
	for i, page := range pages {
		dir.Access(page, int64(i+1))
	}
}

var _ = Describe("Replacement scenarios", func() {
	It("should evict the oldest admission under FIFO", func() {
		dir := MakeBuilder().
			WithFrameCount(2).
			WithPolicy(FIFO).
			Build("Directory")

		runSequence(dir, []PageID{1, 2, 3})

		Expect(dir.Metrics().FaultCount).To(Equal(uint64(3)))
		Expect(dir.RecordOf(1).Valid).To(BeFalse())
		Expect(dir.RecordOf(2).Valid).To(BeTrue())
		Expect(dir.RecordOf(3).Valid).To(BeTrue())
	})

	It("should evict the first of F+1 never-repeated pages under FIFO", func() {
		const frameCount = 4

		dir := MakeBuilder().
			WithFrameCount(frameCount).
			WithPolicy(FIFO).
			Build("Directory")

		runSequence(dir, []PageID{1, 2, 3, 4, 5})

		Expect(dir.RecordOf(1).Valid).To(BeFalse())
		for page := PageID(2); page <= 5; page++ {
			Expect(dir.RecordOf(page).Valid).To(BeTrue())
		}
	})

	It("should evict the earlier-loaded page under LRU", func() {
		dir := MakeBuilder().
			WithFrameCount(2).
			WithPolicy(LRU).
			Build("Directory")

		runSequence(dir, []PageID{1, 2, 3})

		Expect(dir.RecordOf(1).Valid).To(BeFalse())
		Expect(dir.RecordOf(2).Valid).To(BeTrue())
	})

	It("should reproduce the LRU reference example", func() {
		dir := MakeBuilder().
			WithFrameCount(4).
			WithPolicy(LRU).
			Build("Directory")

		runSequence(dir, []PageID{1, 3, 0, 3, 5, 6, 3, 0, 1, 4, 3, 0, 6})

		m := dir.Metrics()
		Expect(m.FaultCount).To(Equal(uint64(8)))
		Expect(m.HitCount).To(Equal(uint64(5)))
		Expect(m.HitRate).To(BeNumerically("~", 38.46, 0.01))
		Expect(m.MissRate).To(BeNumerically("~", 61.54, 0.01))
	})

	It("should evict the less frequently used page under LFU", func() {
		dir := MakeBuilder().
			WithFrameCount(2).
			WithPolicy(LFU).
			Build("Directory")

		// Page 1 reaches count 3, page 2 stays at count 2.
		runSequence(dir, []PageID{1, 2, 1, 2, 1})

		faulted, _ := dir.Access(3, 10)

		Expect(faulted).To(BeTrue())
		Expect(dir.RecordOf(2).Valid).To(BeFalse())
		Expect(dir.RecordOf(1).Valid).To(BeTrue())
	})

	It("should drain the free pool with distinct pages", func() {
		const frameCount = 4

		dir := MakeBuilder().
			WithFrameCount(frameCount).
			WithPolicy(LRU).
			Build("Directory")

		runSequence(dir, []PageID{1, 2, 3, 4})

		m := dir.Metrics()
		Expect(m.FaultCount).To(Equal(uint64(frameCount)))
		Expect(m.Utilization).To(Equal(100.0))
		Expect(dir.OccupiedFrames()).To(HaveLen(frameCount))
	})
})
