package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmann1123/GWU-Course-Calendar/pkg/config"
	"github.com/mmann1123/GWU-Course-Calendar/pkg/renderer"
	"github.com/mmann1123/GWU-Course-Calendar/pkg/schedule"
	"github.com/mmann1123/GWU-Course-Calendar/pkg/tui"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape a subject's courses and build the HTML calendar",
	Long: `Fetches the course listing for a subject and term, deduplicates it,
and writes an interactive weekly calendar as a standalone HTML file
plus the raw course data as JSON.`,
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

		outputFile, _ := cmd.Flags().GetString("output")
		if outputFile == "" {
			if cfg, _ := config.Load(); cfg != nil && cfg.OutputFile != "" {
				outputFile = cfg.OutputFile
			} else {
				outputFile = "gwu_course_calendar.html"
			}
		}
		if !strings.HasSuffix(outputFile, ".html") {
			outputFile += ".html"
		}

		file, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := renderer.GenerateHTML(result, label, file); err != nil {
			return fmt.Errorf("failed to generate calendar: %w", err)
		}
		fmt.Printf("\nCalendar written to %s (%d courses)\n", outputFile, len(result.Canonical))

		writeRaw, _ := cmd.Flags().GetBool("json")
		if writeRaw {
			jsonFile := strings.TrimSuffix(outputFile, ".html") + ".json"
			jf, err := os.Create(jsonFile)
			if err != nil {
				return fmt.Errorf("failed to create JSON file: %w", err)
			}
			defer jf.Close()

			if err := renderer.WriteJSON(result.Canonical, jf); err != nil {
				return fmt.Errorf("failed to write JSON: %w", err)
			}
			fmt.Printf("Raw course data written to %s\n", jsonFile)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
	addTermFlags(scrapeCmd)
	scrapeCmd.Flags().StringP("output", "o", "", "Output HTML file name")
	scrapeCmd.Flags().Bool("json", true, "Also write the deduplicated course data as JSON")
}
