package tui

import (
	"fmt"

	"github.com/charmbracelet/huh/spinner"

	"github.com/mmann1123/GWU-Course-Calendar/pkg/config"
	"github.com/mmann1123/GWU-Course-Calendar/pkg/schedule"
	"github.com/mmann1123/GWU-Course-Calendar/pkg/scraper"
)

// RunRoomsTUI runs the interactive room conflict report: pick a term and
// subject, then list every room that is double-booked.
func RunRoomsTUI() error {
	cfg, _ := config.Load()

	term, err := promptTerm(cfg)
	if err != nil {
		return err
	}

	client := scraper.NewClient()
	var records []schedule.Record
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching %s courses for %s...", term.Subject, term.Label)).
		Action(func() {
			records, fetchErr = client.FetchCourses(term.TermID, term.Subject)
		}).
		Run()

	if fetchErr != nil {
		return fmt.Errorf("failed to fetch courses: %w", fetchErr)
	}

	result := schedule.Build(records)
	if len(result.Canonical) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("No courses found for %s in %s!", term.Subject, term.Label)))
		return nil
	}

	PrintSummary(result, term.Label)
	return nil
}
