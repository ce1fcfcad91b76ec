package vm

// A Builder can build page directories.
type Builder struct {
	frameCount int
	policy     Policy
	finder     VictimFinder
}

// MakeBuilder returns a Builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		frameCount: 4,
		policy:     FIFO,
	}
}

// WithFrameCount sets the number of physical frames.
func (b Builder) WithFrameCount(n int) Builder {
	b.frameCount = n
	return b
}

// WithPolicy sets the replacement policy.
func (b Builder) WithPolicy(p Policy) Builder {
	b.policy = p
	return b
}

// WithVictimFinder overrides the victim finder that the policy would
// normally select. Mainly useful in tests.
func (b Builder) WithVictimFinder(f VictimFinder) Builder {
	b.finder = f
	return b
}

// Build creates a new Directory. It panics if the frame count is not
// positive; capacity is never silently clamped.
func (b Builder) Build(name string) Directory {
	if b.frameCount <= 0 {
		panic("frame count must be positive")
	}

	finder := b.finder
	if finder == nil {
		finder = victimFinderFor(b.policy)
	}

	d := &directory{
		name:       name,
		policy:     b.policy,
		finder:     finder,
		frameCount: b.frameCount,
		records:    make(map[PageID]*Record),
		owners:     make(map[FrameID]PageID),
	}

	for i := 0; i < b.frameCount; i++ {
		d.freeFrames = append(d.freeFrames, FrameID(i))
	}

	return d
}

func victimFinderFor(p Policy) VictimFinder {
	switch p {
	case FIFO:
		return NewFIFOVictimFinder()
	case LRU:
		return NewLRUVictimFinder()
	case LFU:
		return NewLFUVictimFinder()
	default:
		panic("no victim finder for " + p.String())
	}
}
