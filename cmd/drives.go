package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelkor/sweepwin/internal/core"
	"github.com/avelkor/sweepwin/internal/drives"
)

var drivesCmd = &cobra.Command{
	Use:   "drives",
	Short: "List fixed drives",
	Long:  "Shows the mounted fixed drives with capacity, free space, and filesystem details.",
	Run: func(cmd *cobra.Command, args []string) {
		runDrives()
	},
}

func runDrives() {
	fmt.Printf("  %s\n\n", core.OSVersionString())

	infos, err := drives.List()
	if err != nil {
		// Capacity details need WMI; fall back to plain enumeration.
		if debug {
			fmt.Println("  WMI query failed:", err)
		}
		for _, d := range drives.Fixed() {
			fmt.Println("  " + d)
		}
		return
	}

	for _, d := range infos {
		volume := d.Volume
		if volume == "" {
			volume = "(no label)"
		}
		fmt.Printf("  %s  %-16s %-6s %10s free of %s\n",
			d.Letter, volume, d.FileSystem,
			core.FormatSize(int64(d.FreeBytes)), core.FormatSize(int64(d.TotalBytes)))
	}
}
