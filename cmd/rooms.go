package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mmann1123/GWU-Course-Calendar/pkg/schedule"
	"github.com/mmann1123/GWU-Course-Calendar/pkg/tui"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Check a subject's courses for room double-bookings",
	Long: `Fetches the course listing for a subject and term and reports every
room that has two or more courses meeting at overlapping times, plus
any courses that have no assigned room.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		termID, subject, label, err := resolveTerm(cmd)
		if err != nil {
			return err
		}

		records, err := loadRecords(cmd, termID, subject)
		if err != nil {
			return err
		}

		result := schedule.Build(records)
		if len(result.Canonical) == 0 {
			return fmt.Errorf("no courses found for %s in %s", subject, label)
		}

		tui.PrintSummary(result, label)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(roomsCmd)
	addTermFlags(roomsCmd)
}
