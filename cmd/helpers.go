package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mmann1123/GWU-Course-Calendar/pkg/config"
	"github.com/mmann1123/GWU-Course-Calendar/pkg/schedule"
	"github.com/mmann1123/GWU-Course-Calendar/pkg/scraper"
)

// addTermFlags registers the flags shared by every command that selects a
// catalog slice to work on.
func addTermFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("subject", "s", "", "Subject code to scrape (e.g. GEOG, CSCI)")
	cmd.Flags().IntP("year", "y", 0, "Academic year (defaults to the current year)")
	cmd.Flags().String("semester", "spring", "Semester: spring, summer, or fall")
	cmd.Flags().StringP("input", "i", "", "Parse a locally saved HTML page instead of fetching from the network")
}

// resolveTerm turns the term flags (plus config defaults) into a portal
// termID, an uppercased subject, and a display label like "Spring 2026".
func resolveTerm(cmd *cobra.Command) (termID, subject, label string, err error) {
	cfg, _ := config.Load()

	subject, _ = cmd.Flags().GetString("subject")
	if subject == "" && cfg != nil {
		subject = cfg.DefaultSubject
	}
	if subject == "" {
		return "", "", "", fmt.Errorf("a subject code is required (use --subject or set a default with 'gwucal config')")
	}
	subject = strings.ToUpper(strings.TrimSpace(subject))

	year, _ := cmd.Flags().GetInt("year")
	if year == 0 && cfg != nil && cfg.DefaultYear != 0 {
		year = cfg.DefaultYear
	}
	if year == 0 {
		year = time.Now().Year()
	}

	semester, _ := cmd.Flags().GetString("semester")
	if !cmd.Flags().Changed("semester") && cfg != nil && cfg.DefaultSemester != "" {
		semester = cfg.DefaultSemester
	}
	code, err := scraper.SemesterCode(semester)
	if err != nil {
		return "", "", "", err
	}

	label = fmt.Sprintf("%s %d", cases.Title(language.AmericanEnglish).String(strings.ToLower(semester)), year)
	return scraper.TermID(year, code), subject, label, nil
}

// loadRecords fetches the course records for the resolved term, either from
// a locally saved HTML page (--input) or from the GWU site with the disk
// cache in front.
func loadRecords(cmd *cobra.Command, termID, subject string) ([]schedule.Record, error) {
	input, _ := cmd.Flags().GetString("input")

	if input != "" {
		file, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer file.Close()
		return scraper.ParseCourses(file)
	}

	records, err := scraper.NewClient().FetchCourses(termID, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courses (the portal may require a login; save the page in your browser and retry with --input): %w", err)
	}
	return records, nil
}
