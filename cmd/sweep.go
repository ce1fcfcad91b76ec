package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sarchlab/vmsim/datarecording"
	"github.com/sarchlab/vmsim/timing"
	"github.com/sarchlab/vmsim/vm"
)

var sweepFlags struct {
	frames         int
	numPages       int
	sequenceLength int
	faultPenalty   int
	seed           int64
	output         string
}

// sweepEntry is one row of the recorded comparison results.
type sweepEntry struct {
	Policy          string
	Pattern         string
	Frames          int
	SequenceLength  int
	FaultCount      uint64
	HitCount        uint64
	HitRate         float64
	MissRate        float64
	Utilization     float64
	TotalTime       int64
	TotalReferences uint64
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare all policies across all reference patterns",
	RunE: func(cmd *cobra.Command, _ []string) error {
		recorder := datarecording.New(sweepFlags.output)
		recorder.CreateTable("sweep_results", sweepEntry{})

		policies := []vm.Policy{vm.FIFO, vm.LRU, vm.LFU}
		patterns := []string{"random", "locality", "sequential"}

		for _, pattern := range patterns {
			// All policies see the identical sequence so their
			// results are comparable.
			sequence, err := generateSequence(
				pattern,
				sweepFlags.seed,
				sweepFlags.sequenceLength,
				sweepFlags.numPages,
			)
			if err != nil {
				return err
			}

			for _, policy := range policies {
				entry := runSweepCase(policy, pattern, sequence)
				recorder.InsertData("sweep_results", entry)
				printSweepCase(cmd, entry)
			}
		}

		recorder.Flush()

		return nil
	},
}

func runSweepCase(
	policy vm.Policy,
	pattern string,
	sequence []vm.PageID,
) sweepEntry {
	clock := timing.MakeBuilder().
		WithDirectory(vm.MakeBuilder().
			WithFrameCount(sweepFlags.frames).
			WithPolicy(policy).
			Build("PageDirectory")).
		WithFaultPenalty(int64(sweepFlags.faultPenalty)).
		Build()

	metrics := clock.RunSequence(sequence)

	return sweepEntry{
		Policy:          policy.String(),
		Pattern:         pattern,
		Frames:          sweepFlags.frames,
		SequenceLength:  len(sequence),
		FaultCount:      metrics.FaultCount,
		HitCount:        metrics.HitCount,
		HitRate:         metrics.HitRate,
		MissRate:        metrics.MissRate,
		Utilization:     metrics.Utilization,
		TotalTime:       clock.Now(),
		TotalReferences: metrics.TotalReferences,
	}
}

func printSweepCase(cmd *cobra.Command, entry sweepEntry) {
	fmt.Fprintf(cmd.OutOrStdout(),
		"Algorithm: %s, Pattern: %s, Faults: %d, "+
			"Hit Rate: %.2f%%, Miss Rate: %.2f%%\n",
		entry.Policy, entry.Pattern, entry.FaultCount,
		entry.HitRate, entry.MissRate)
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().IntVar(&sweepFlags.frames, "frames",
		envInt("VMSIM_FRAMES", 8),
		"number of physical memory frames")
	sweepCmd.Flags().IntVar(&sweepFlags.numPages, "num-pages",
		envInt("VMSIM_NUM_PAGES", 16),
		"number of distinct pages in virtual memory")
	sweepCmd.Flags().IntVar(&sweepFlags.sequenceLength, "sequence-length",
		envInt("VMSIM_SEQUENCE_LENGTH", 1000),
		"length of the reference sequence per pattern")
	sweepCmd.Flags().IntVar(&sweepFlags.faultPenalty, "fault-penalty",
		envInt("VMSIM_FAULT_PENALTY", 100),
		"time charged per page fault")
	sweepCmd.Flags().Int64Var(&sweepFlags.seed, "seed", 1,
		"random seed for the workload generator")
	sweepCmd.Flags().StringVar(&sweepFlags.output, "output", "",
		"name of the result database; empty picks a unique name")
}
