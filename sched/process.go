// Package sched provides the process scheduler collaborators that dispatch
// work on a shared simulation clock. Schedulers advance the timeline; the
// paging engine stays behind the clock's interface.
package sched

// Process states tracked in the process table.
const (
	StateReady = "PR_READY"
	StateDone  = "PR_DONE"
)

// A Process is a sequence of instruction costs to be executed on the
// simulated CPU.
type Process struct {
	ID int

	costs []int64
	pc    int
}

// NewProcess creates a process from its per-instruction costs.
func NewProcess(id int, costs []int64) *Process {
	return &Process{ID: id, costs: costs}
}

// Finished reports whether all instructions have executed.
func (p *Process) Finished() bool {
	return p.pc >= len(p.costs)
}

// PeekCost returns the cost of the next instruction without executing it.
func (p *Process) PeekCost() int64 {
	return p.costs[p.pc]
}

// ExecuteNext executes the next instruction and returns its cost.
func (p *Process) ExecuteNext() int64 {
	cost := p.costs[p.pc]
	p.pc++

	return cost
}

// Remaining returns the total cost of the instructions not yet executed.
func (p *Process) Remaining() int64 {
	var total int64
	for _, cost := range p.costs[p.pc:] {
		total += cost
	}

	return total
}

// An Entry is a row in the process table.
type Entry struct {
	ProcessID int
	State     string
	StartTime int64
	EndTime   int64
	CPUTime   int64
}

// Turnaround returns the time from arrival to completion.
func (e *Entry) Turnaround() int64 {
	return e.EndTime - e.StartTime
}

// Waiting returns the time the process spent not executing.
func (e *Entry) Waiting() int64 {
	return e.Turnaround() - e.CPUTime
}
