package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	debug bool

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "sweepwin",
	Short: "Measure reclaimable disk space on Windows",
	Long: `SweepWin - Measure reclaimable disk space on Windows.

Scans OS caches, temp directories, the Recycle Bin, and stale developer
build artifacts, and reports how much space each category could free.
SweepWin only measures; it never deletes anything.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")

	// Register all subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(drivesCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
