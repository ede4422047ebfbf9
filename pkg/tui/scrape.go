package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/mmann1123/GWU-Course-Calendar/pkg/config"
	"github.com/mmann1123/GWU-Course-Calendar/pkg/exporter"
	"github.com/mmann1123/GWU-Course-Calendar/pkg/renderer"
	"github.com/mmann1123/GWU-Course-Calendar/pkg/schedule"
	"github.com/mmann1123/GWU-Course-Calendar/pkg/scraper"
)

// RunScrapeTUI runs the interactive flow for scraping a subject's courses
// and building the calendar outputs.
func RunScrapeTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the GWU Course Calendar!"))

	cfg, _ := config.Load()

	term, err := promptTerm(cfg)
	if err != nil {
		return err
	}

	outputFile := "gwu_course_calendar.html"
	if cfg != nil && cfg.OutputFile != "" {
		outputFile = cfg.OutputFile
	}

	outputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := outputForm.Run(); err != nil {
		return err
	}
	if !strings.HasSuffix(outputFile, ".html") {
		outputFile += ".html"
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
		fmt.Println(errorStyle.Render("Could not reach the GWU schedule site."))
		fmt.Println(subtleStyle.Render("The portal sometimes requires a login. Save the page in your browser and run 'gwucal scrape --input saved.html' instead."))
		return fmt.Errorf("failed to fetch courses: %w", fetchErr)
	}

	result := schedule.Build(records)
	if len(result.Canonical) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("No courses found for %s in %s!", term.Subject, term.Label)))
		return nil
	}

	PrintSummary(result, term.Label)

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := renderer.GenerateHTML(result, term.Label, file); err != nil {
		return fmt.Errorf("failed to generate calendar: %w", err)
	}

	jsonFile := strings.TrimSuffix(outputFile, ".html") + ".json"
	if err := writeJSONFile(result.Canonical, jsonFile); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! %d courses written to %s (raw data in %s)", len(result.Canonical), outputFile, jsonFile)))

	// Offer an ICS export on top of the HTML calendar
	var exportICS bool
	exportForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Also export an .ics calendar file?").
				Description("Creates a file you can import into Apple Calendar or Google Calendar.").
				Value(&exportICS).
				Affirmative("Export").
				Negative("Skip"),
		),
	).WithTheme(GetTheme())

	if err := exportForm.Run(); err != nil {
		return err
	}

	if exportICS {
		icsFile := strings.TrimSuffix(outputFile, ".html") + ".ics"
		f, err := os.Create(icsFile)
		if err != nil {
			return fmt.Errorf("failed to create ICS file: %w", err)
		}
		defer f.Close()

		if err := exporter.GenerateICS(result.Canonical, f); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}
		fmt.Println(accentStyle.Render(fmt.Sprintf("Exported calendar events to %s", icsFile)))
	}

	return nil
}

// PrintSummary prints the engine results: course counts, room conflicts,
// and courses without an assigned room.
func PrintSummary(result schedule.Result, label string) {
	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- %s: %d courses ---", label, len(result.Canonical))))

	if len(result.Conflicts) == 0 {
		fmt.Println(subtleStyle.Render("No room conflicts detected."))
	} else {
		fmt.Println(warningStyle.Render(fmt.Sprintf("%d room conflict group(s) detected:", len(result.Conflicts))))
		for _, g := range result.Conflicts {
			fmt.Printf("\n  %s (%d courses):\n", accentStyle.Render(g.Location), len(g.Records))
			for _, r := range g.Records {
				fmt.Printf("    - %-12s %-5s %s - %s  %s\n",
					r.CourseNumber, r.Days, clock(r.StartMin), clock(r.EndMin), r.Instructor)
			}
		}
	}

	if len(result.Unassigned) > 0 {
		fmt.Println(subtleStyle.Render(fmt.Sprintf("\n%d course(s) have no assigned room and were skipped for conflict checks.", len(result.Unassigned))))
	}
}

func clock(min int) string {
	hour := min / 60
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%02d:%02d%s", display, min%60, period)
}

func writeJSONFile(records []schedule.Record, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON file: %w", err)
	}
	defer f.Close()

	if err := renderer.WriteJSON(records, f); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
