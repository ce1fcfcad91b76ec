// Package workload generates synthetic page reference sequences for
// exercising replacement policies under different access patterns.
package workload

import (
	"math/rand"

	"github.com/sarchlab/vmsim/vm"
)

const (
	localityFactor   = 0.7
	sequentialFactor = 0.8
)

// A Generator produces page reference sequences. It carries its own random
// source so runs are reproducible from a seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator seeded deterministically.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Random returns a sequence of uniformly random references to pages in
// [0, maxPage).
func (g *Generator) Random(length, maxPage int) []vm.PageID {
	sequence := make([]vm.PageID, length)
	for i := range sequence {
		sequence[i] = vm.PageID(g.rng.Intn(maxPage))
	}

	return sequence
}

// Locality returns a sequence with temporal locality: with probability 0.7 a
// reference revisits one of the recently used pages. The recent window holds
// at most min(5, maxPage/2) pages. When the sequence is longer than the page
// count, unused pages are patched in so every page appears at least once.
func (g *Generator) Locality(length, maxPage int) []vm.PageID {
	if length == 0 {
		return nil
	}

	first := vm.PageID(g.rng.Intn(maxPage))
	sequence := make([]vm.PageID, 0, length)
	sequence = append(sequence, first)

	recent := []vm.PageID{first}
	maxRecent := maxPage / 2
	if maxRecent > 5 {
		maxRecent = 5
	}

	for len(sequence) < length {
		var page vm.PageID
		if len(recent) > 0 && g.rng.Float64() < localityFactor {
			page = recent[g.rng.Intn(len(recent))]
		} else {
			page = vm.PageID(g.rng.Intn(maxPage))
		}

		sequence = append(sequence, page)

		if !containsPage(recent, page) {
			recent = append(recent, page)
		}
		if len(recent) > maxRecent {
			recent = recent[1:]
		}
	}

	g.coverAllPages(sequence, maxPage)

	return sequence
}

// Sequential returns a sequence that tends to walk pages in order: with
// probability 0.8 the next reference is the successor of the previous one,
// wrapping at maxPage. Unused pages are patched in as in Locality.
func (g *Generator) Sequential(length, maxPage int) []vm.PageID {
	if length == 0 {
		return nil
	}

	sequence := make([]vm.PageID, 0, length)
	sequence = append(sequence, vm.PageID(g.rng.Intn(maxPage)))

	for len(sequence) < length {
		if g.rng.Float64() < sequentialFactor {
			next := (sequence[len(sequence)-1] + 1) % vm.PageID(maxPage)
			sequence = append(sequence, next)
		} else {
			sequence = append(sequence, vm.PageID(g.rng.Intn(maxPage)))
		}
	}

	g.coverAllPages(sequence, maxPage)

	return sequence
}

// coverAllPages overwrites random positions so that every page in
// [0, maxPage) is referenced at least once. Only applied when the sequence
// is long enough to hold all pages.
func (g *Generator) coverAllPages(sequence []vm.PageID, maxPage int) {
	if len(sequence) <= maxPage {
		return
	}

	used := make(map[vm.PageID]bool, maxPage)
	for _, page := range sequence {
		used[page] = true
	}

	for p := 0; p < maxPage; p++ {
		page := vm.PageID(p)
		if !used[page] {
			sequence[g.rng.Intn(len(sequence))] = page
		}
	}
}

func containsPage(pages []vm.PageID, page vm.PageID) bool {
	for _, p := range pages {
		if p == page {
			return true
		}
	}

	return false
}

// Frequency returns the per-page access counts of a sequence.
func Frequency(sequence []vm.PageID) map[vm.PageID]int {
	frequency := make(map[vm.PageID]int)
	for _, page := range sequence {
		frequency[page]++
	}

	return frequency
}
