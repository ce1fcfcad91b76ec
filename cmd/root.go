// Package cmd provides the command-line interface for vmsim.
package cmd

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "vmsim",
	Short: "vmsim simulates virtual-memory paging under FIFO, LRU, and LFU " +
		"replacement policies.",
	Long: `vmsim simulates virtual-memory address translation under limited ` +
		`physical frames. It can run a single simulation, sweep all policies ` +
		`across synthetic reference patterns, or drive a process scheduler ` +
		`on the shared simulation clock.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Flag defaults can be overridden through VMSIM_* variables in a
	// .env file. A missing file is fine.
	_ = godotenv.Load()
}

func envInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return n
}

func envString(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	return value
}
