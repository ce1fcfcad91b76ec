package timing

import (
	"github.com/sarchlab/vmsim/vm"
)

// A Builder can build clocks.
type Builder struct {
	directory     vm.Directory
	faultPenalty  int64
	switchPenalty int64
}

// MakeBuilder returns a Builder with default penalties.
func MakeBuilder() Builder {
	return Builder{
		faultPenalty:  100,
		switchPenalty: 20,
	}
}

// WithDirectory sets the page directory the clock drives.
func (b Builder) WithDirectory(d vm.Directory) Builder {
	b.directory = d
	return b
}

// WithFaultPenalty sets the time charged per page fault.
func (b Builder) WithFaultPenalty(p int64) Builder {
	b.faultPenalty = p
	return b
}

// WithSwitchPenalty sets the time charged per context switch.
func (b Builder) WithSwitchPenalty(p int64) Builder {
	b.switchPenalty = p
	return b
}

// Build creates a new Clock starting at time 0. It panics if no directory is
// set or a penalty is negative.
func (b Builder) Build() *Clock {
	if b.directory == nil {
		panic("clock requires a directory")
	}

	if b.faultPenalty < 0 || b.switchPenalty < 0 {
		panic("penalties must be non-negative")
	}

	return &Clock{
		directory:     b.directory,
		faultPenalty:  b.faultPenalty,
		switchPenalty: b.switchPenalty,
	}
}
