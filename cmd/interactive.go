package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mmann1123/GWU-Course-Calendar/pkg/tui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Start the interactive TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
