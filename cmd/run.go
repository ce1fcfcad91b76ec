package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/vmsim/monitoring"
	"github.com/sarchlab/vmsim/timing"
	"github.com/sarchlab/vmsim/vm"
	"github.com/sarchlab/vmsim/workload"
)

var runFlags struct {
	frames         int
	policy         string
	pattern        string
	numPages       int
	sequenceLength int
	faultPenalty   int
	seed           int64
	monitor        bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single paging simulation",
	RunE: func(cmd *cobra.Command, _ []string) error {
		policy, err := vm.ParsePolicy(runFlags.policy)
		if err != nil {
			return err
		}

		sequence, err := generateSequence(
			runFlags.pattern,
			runFlags.seed,
			runFlags.sequenceLength,
			runFlags.numPages,
		)
		if err != nil {
			return err
		}

		directory := vm.MakeBuilder().
			WithFrameCount(runFlags.frames).
			WithPolicy(policy).
			Build("PageDirectory")

		clock := timing.MakeBuilder().
			WithDirectory(directory).
			WithFaultPenalty(int64(runFlags.faultPenalty)).
			Build()

		if runFlags.monitor {
			monitor := monitoring.NewMonitor()
			monitor.RegisterClock(clock)
			monitor.StartServer()
			monitor.OpenDashboard()
		}

		metrics := clock.RunSequence(sequence)

		fmt.Fprintf(cmd.OutOrStdout(),
			"Algorithm: %s, Frames: %d, Pattern: %s, References: %d\n",
			policy, runFlags.frames, runFlags.pattern, len(sequence))
		printMetrics(cmd, metrics, clock.Now())

		return nil
	},
}

func printMetrics(cmd *cobra.Command, metrics vm.Metrics, totalTime int64) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Page Faults: %d\n", metrics.FaultCount)
	fmt.Fprintf(out, "Page Hits: %d\n", metrics.HitCount)
	fmt.Fprintf(out, "Hit Rate: %.2f%%\n", metrics.HitRate)
	fmt.Fprintf(out, "Miss Rate: %.2f%%\n", metrics.MissRate)
	fmt.Fprintf(out, "Memory Utilization: %.2f%%\n", metrics.Utilization)
	fmt.Fprintf(out, "Total Time: %d\n", totalTime)
}

func generateSequence(
	pattern string,
	seed int64,
	length, numPages int,
) ([]vm.PageID, error) {
	generator := workload.NewGenerator(seed)

	switch pattern {
	case "random":
		return generator.Random(length, numPages), nil
	case "locality":
		return generator.Locality(length, numPages), nil
	case "sequential":
		return generator.Sequential(length, numPages), nil
	}

	return nil, fmt.Errorf("unknown reference pattern %q", pattern)
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&runFlags.frames, "frames",
		envInt("VMSIM_FRAMES", 8),
		"number of physical memory frames")
	runCmd.Flags().StringVar(&runFlags.policy, "policy",
		envString("VMSIM_POLICY", "FIFO"),
		"replacement policy (FIFO, LRU, LFU)")
	runCmd.Flags().StringVar(&runFlags.pattern, "pattern",
		envString("VMSIM_PATTERN", "random"),
		"reference pattern (random, locality, sequential)")
	runCmd.Flags().IntVar(&runFlags.numPages, "num-pages",
		envInt("VMSIM_NUM_PAGES", 16),
		"number of distinct pages in virtual memory")
	runCmd.Flags().IntVar(&runFlags.sequenceLength, "sequence-length",
		envInt("VMSIM_SEQUENCE_LENGTH", 1000),
		"length of the reference sequence")
	runCmd.Flags().IntVar(&runFlags.faultPenalty, "fault-penalty",
		envInt("VMSIM_FAULT_PENALTY", 100),
		"time charged per page fault")
	runCmd.Flags().Int64Var(&runFlags.seed, "seed", 1,
		"random seed for the workload generator")
	runCmd.Flags().BoolVar(&runFlags.monitor, "monitor", false,
		"start the monitoring server and open the dashboard")
}
