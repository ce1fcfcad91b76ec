package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/vmsim/sched"
	"github.com/sarchlab/vmsim/timing"
	"github.com/sarchlab/vmsim/vm"
)

var schedFlags struct {
	scheduler     string
	quantum       int
	frames        int
	switchPenalty int
}

var schedCmd = &cobra.Command{
	Use:   "sched",
	Short: "Run the process scheduler on the simulation clock",
	RunE: func(cmd *cobra.Command, _ []string) error {
		clock := timing.MakeBuilder().
			WithDirectory(vm.MakeBuilder().
				WithFrameCount(schedFlags.frames).
				Build("PageDirectory")).
			WithSwitchPenalty(int64(schedFlags.switchPenalty)).
			Build()

		processes := demoProcesses()

		var entries []*sched.Entry
		switch schedFlags.scheduler {
		case "fcfs":
			entries = sched.FCFS(clock, processes)
		case "rr":
			entries = sched.RoundRobin(clock, processes,
				int64(schedFlags.quantum))
		default:
			return fmt.Errorf("unknown scheduler %q", schedFlags.scheduler)
		}

		out := cmd.OutOrStdout()
		for _, entry := range entries {
			fmt.Fprintf(out,
				"Process %d: Turnaround Time = %d, CPU Time = %d, "+
					"Waiting Time = %d\n",
				entry.ProcessID, entry.Turnaround(),
				entry.CPUTime, entry.Waiting())
		}
		fmt.Fprintf(out, "Total simulation time: %d\n", clock.Now())

		return nil
	},
}

func demoProcesses() []*sched.Process {
	return []*sched.Process{
		sched.NewProcess(1, []int64{120, 80, 200, 100}),
		sched.NewProcess(2, []int64{300, 150}),
		sched.NewProcess(3, []int64{50, 50, 50, 50, 50}),
		sched.NewProcess(4, []int64{400}),
	}
}

func init() {
	rootCmd.AddCommand(schedCmd)

	schedCmd.Flags().StringVar(&schedFlags.scheduler, "scheduler", "fcfs",
		"scheduler to use (fcfs, rr)")
	schedCmd.Flags().IntVar(&schedFlags.quantum, "quantum",
		envInt("VMSIM_QUANTUM", 500),
		"time quantum for the round-robin scheduler")
	schedCmd.Flags().IntVar(&schedFlags.frames, "frames",
		envInt("VMSIM_FRAMES", 8),
		"number of physical memory frames")
	schedCmd.Flags().IntVar(&schedFlags.switchPenalty, "switch-penalty",
		envInt("VMSIM_SWITCH_PENALTY", 20),
		"time charged per context switch")
}
