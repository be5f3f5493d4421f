package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sarchlab/vmsim/simulation"
)

var runFlags = struct {
	traceFile   string
	numFrames   int
	ptesPerPage int
	tlbCapacity int
	monitor     bool
	monitorPort int
	noRecording bool
	output      string
}{}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay an access trace through the simulated MMU",
	RunE:  runTraceCmd,
}

func init() {
	runCmd.Flags().StringVarP(&runFlags.traceFile, "trace", "t", "",
		"trace file to replay (default: stdin)")
	runCmd.Flags().IntVar(&runFlags.numFrames, "frames", 128,
		"number of physical page frames")
	runCmd.Flags().IntVar(&runFlags.ptesPerPage, "ptes-per-page", 16,
		"number of PTEs per page table level")
	runCmd.Flags().IntVar(&runFlags.tlbCapacity, "tlb-capacity", 0,
		"TLB capacity (0 covers the whole page range)")
	runCmd.Flags().BoolVar(&runFlags.monitor, "monitor", false,
		"start the monitoring server")
	runCmd.Flags().IntVar(&runFlags.monitorPort, "monitor-port", 0,
		"monitoring server port (0 picks a random port)")
	runCmd.Flags().BoolVar(&runFlags.noRecording, "no-recording", false,
		"disable data recording")
	runCmd.Flags().StringVarP(&runFlags.output, "output", "o", "",
		"data recording file name")

	rootCmd.AddCommand(runCmd)
}

// applyEnv fills flags the user did not set from VMSIM_* environment
// variables, loading a .env file first if one exists.
func applyEnv(cmd *cobra.Command) error {
	_ = godotenv.Load()

	for env, flag := range map[string]string{
		"VMSIM_FRAMES":        "frames",
		"VMSIM_PTES_PER_PAGE": "ptes-per-page",
		"VMSIM_TLB_CAPACITY":  "tlb-capacity",
		"VMSIM_MONITOR_PORT":  "monitor-port",
	} {
		value, present := os.LookupEnv(env)
		if !present || cmd.Flags().Changed(flag) {
			continue
		}

		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("%s: %q is not a number", env, value)
		}

		if err := cmd.Flags().Set(flag, value); err != nil {
			return err
		}
	}

	return nil
}

func runTraceCmd(cmd *cobra.Command, _ []string) error {
	if err := applyEnv(cmd); err != nil {
		return err
	}

	builder := simulation.MakeBuilder().
		WithNumFrames(runFlags.numFrames).
		WithPTEsPerPage(runFlags.ptesPerPage).
		WithTLBCapacity(runFlags.tlbCapacity)

	if runFlags.monitor {
		builder = builder.WithMonitoring()
		if runFlags.monitorPort > 0 {
			builder = builder.WithMonitorPort(runFlags.monitorPort)
		}
	}

	if runFlags.noRecording {
		builder = builder.WithoutRecording()
	} else if runFlags.output != "" {
		builder = builder.WithOutputFileName(runFlags.output)
	}

	s := builder.Build()
	defer s.Terminate()

	trace := os.Stdin
	if runFlags.traceFile != "" {
		f, err := os.Open(runFlags.traceFile)
		if err != nil {
			return err
		}
		defer f.Close()
		trace = f
	}

	if err := runTrace(s, trace, cmd.OutOrStdout()); err != nil {
		return err
	}

	return s.MMU().AuditFrames()
}
