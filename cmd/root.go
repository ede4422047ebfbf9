package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gwucal",
	Short: "A CLI and TUI for GWU course calendars",
	Long: `gwucal scrapes course listings from the GWU schedule website and builds
an interactive weekly calendar, detects room double-bookings, and exports
course meetings to an .ics file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
