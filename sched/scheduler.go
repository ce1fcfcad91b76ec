package sched

import (
	"github.com/sarchlab/vmsim/timing"
)

// FCFS runs each process to completion in arrival order. All processes
// arrive when the run starts. A context switch is charged between
// consecutive dispatches.
func FCFS(clock *timing.Clock, processes []*Process) []*Entry {
	entries := makeEntries(clock, processes)

	for i, process := range processes {
		if i > 0 {
			clock.SwitchContext()
		}

		entry := entries[i]
		for !process.Finished() {
			cost := process.ExecuteNext()
			entry.CPUTime += cost
			clock.Advance(cost)
		}

		entry.EndTime = clock.Now()
		entry.State = StateDone
	}

	return entries
}

// RoundRobin dispatches processes with a fixed quantum. An instruction that
// does not fit in the remaining slice is deferred to the process's next
// turn, and the preempted process still burns its full slice. A context
// switch is charged between consecutive dispatches.
func RoundRobin(
	clock *timing.Clock,
	processes []*Process,
	quantum int64,
) []*Entry {
	entries := makeEntries(clock, processes)

	type dispatch struct {
		process *Process
		entry   *Entry
	}

	queue := make([]dispatch, 0, len(processes))
	for i, process := range processes {
		queue = append(queue, dispatch{process: process, entry: entries[i]})
	}

	first := true
	for len(queue) > 0 {
		d := queue[0]
		queue = queue[1:]

		if !first {
			clock.SwitchContext()
		}
		first = false

		remaining := quantum

		// An instruction larger than the whole quantum would never
		// fit in any slice; let it overrun so the process still makes
		// progress.
		if !d.process.Finished() && d.process.PeekCost() > quantum {
			cost := d.process.ExecuteNext()
			d.entry.CPUTime += cost
			clock.Advance(cost)
			remaining = 0
		}

		for remaining > 0 && !d.process.Finished() {
			cost := d.process.PeekCost()
			if cost > remaining {
				break
			}

			d.process.ExecuteNext()
			d.entry.CPUTime += cost
			clock.Advance(cost)
			remaining -= cost
		}

		if d.process.Finished() {
			d.entry.EndTime = clock.Now()
			d.entry.State = StateDone

			continue
		}

		// Preempted. The process owns the slice even if the next
		// instruction did not fit into it.
		if remaining > 0 {
			clock.Advance(remaining)
		}

		queue = append(queue, d)
	}

	return entries
}

func makeEntries(clock *timing.Clock, processes []*Process) []*Entry {
	arrival := clock.Now()

	entries := make([]*Entry, 0, len(processes))
	for _, process := range processes {
		entries = append(entries, &Entry{
			ProcessID: process.ID,
			State:     StateReady,
			StartTime: arrival,
		})
	}

	return entries
}
