package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vmsim",
	Short: "vmsim simulates a virtual memory management unit",
	Long: `vmsim simulates a virtual memory management unit: a two-level ` +
		`page table, a TLB, physical frame allocation, and copy-on-write ` +
		`fork across multiple simulated processes. It replays memory ` +
		`accesses from a trace file and records what the hardware would do.`,
}
