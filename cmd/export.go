package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmann1123/GWU-Course-Calendar/pkg/exporter"
	"github.com/mmann1123/GWU-Course-Calendar/pkg/schedule"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a subject's course meetings to an .ics file",
	Long: `Fetches the course listing for a subject and term and writes every
weekly meeting as a recurring event in an iCalendar (.ics) file that
can be imported into Apple Calendar or Google Calendar.`,
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

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile == "" {
			outputFile = fmt.Sprintf("%s_%s.ics", strings.ToLower(subject), termID)
		}
		if !strings.HasSuffix(outputFile, ".ics") {
			outputFile += ".ics"
		}

		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create ICS file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(result.Canonical, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Exported %d courses (%s) to %s\n", len(result.Canonical), label, outputFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addTermFlags(exportCmd)
	exportCmd.Flags().StringP("output", "o", "", "Output ICS file name")
}
