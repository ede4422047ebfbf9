package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mmann1123/GWU-Course-Calendar/pkg/config"
	"github.com/mmann1123/GWU-Course-Calendar/pkg/scraper"
)

// termSelection is the outcome of the term form: which catalog slice the
// user wants to scrape.
type termSelection struct {
	TermID   string // portal termId, e.g. "202601"
	Subject  string // uppercased subject code, e.g. "GEOG"
	Label    string // display label, e.g. "Spring 2026"
	Year     int
	Semester string // lowercase name: spring, summer, fall
}

// promptTerm collects the year, semester, and subject code through a single
// form, pre-filling from the saved config.
func promptTerm(cfg *config.AppConfig) (termSelection, error) {
	currentYear := time.Now().Year()

	var yearOptions []huh.Option[string]
	for y := currentYear - 1; y <= currentYear+2; y++ {
		yearOptions = append(yearOptions, huh.NewOption(strconv.Itoa(y), strconv.Itoa(y)))
	}

	yearStr := strconv.Itoa(currentYear)
	semester := "spring"
	var subject string
	if cfg != nil {
		if cfg.DefaultYear != 0 {
			yearStr = strconv.Itoa(cfg.DefaultYear)
		}
		if cfg.DefaultSemester != "" {
			semester = cfg.DefaultSemester
		}
		subject = cfg.DefaultSubject
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Year").
				Options(yearOptions...).
				Value(&yearStr),

			huh.NewSelect[string]().
				Title("Semester").
				Options(
					huh.NewOption("Spring", "spring"),
					huh.NewOption("Summer", "summer"),
					huh.NewOption("Fall", "fall"),
				).
				Value(&semester),

			huh.NewInput().
				Title("Subject code").
				Description("e.g. GEOG, CSCI, MATH, PSYC").
				Value(&subject).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("subject code is required")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return termSelection{}, err
	}

	year, _ := strconv.Atoi(yearStr)
	code, err := scraper.SemesterCode(semester)
	if err != nil {
		return termSelection{}, err
	}

	return termSelection{
		TermID:   scraper.TermID(year, code),
		Subject:  strings.ToUpper(strings.TrimSpace(subject)),
		Label:    fmt.Sprintf("%s %d", cases.Title(language.AmericanEnglish).String(semester), year),
		Year:     year,
		Semester: semester,
	}, nil
}
