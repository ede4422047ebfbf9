package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/mmann1123/GWU-Course-Calendar/pkg/schedule"
)

// dateLayout matches the GWU semester range format, e.g. "01/12/26 - 04/27/26"
const dateLayout = "01/02/06"

var weekdayByLetter = map[rune]time.Weekday{
	'M': time.Monday,
	'T': time.Tuesday,
	'W': time.Wednesday,
	'R': time.Thursday,
	'F': time.Friday,
}

// GenerateICS writes the course records as weekly recurring calendar events
// and serializes them to the provided writer. Each record produces one event
// per meeting day, anchored to the first matching weekday on or after the
// semester start and repeating until the semester end. Records whose date
// range cannot be parsed are skipped.
func GenerateICS(records []schedule.Record, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	// GWU's main campus timezone
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	for _, r := range records {
		semStart, semEnd, err := parseDateRange(r.Dates, loc)
		if err != nil {
			continue
		}

		for _, d := range r.Days {
			weekday, ok := weekdayByLetter[d]
			if !ok {
				continue
			}

			first := firstOnOrAfter(semStart, weekday)
			start := time.Date(first.Year(), first.Month(), first.Day(),
				r.StartMin/60, r.StartMin%60, 0, 0, loc)
			end := time.Date(first.Year(), first.Month(), first.Day(),
				r.EndMin/60, r.EndMin%60, 0, 0, loc)

			// Repeat weekly through the end of the last semester day
			until := time.Date(semEnd.Year(), semEnd.Month(), semEnd.Day(),
				23, 59, 59, 0, loc).UTC()

			event := cal.AddEvent(fmt.Sprintf("%s-%s@gwu-course-calendar", r.CRN, string(d)))
			event.SetCreatedTime(time.Now())
			event.SetDtStampTime(time.Now())
			event.SetModifiedAt(time.Now())
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;UNTIL=%s", until.Format("20060102T150405Z")))
			event.SetSummary(strings.TrimSpace(fmt.Sprintf("%s %s", r.CourseNumber, r.Title)))
			event.SetLocation(r.Location())

			description := fmt.Sprintf("CRN: %s\nInstructor: %s\nStatus: %s\nCredits: %s",
				r.CRN, r.Instructor, r.Status, r.Credits)
			event.SetDescription(description)
		}
	}

	return cal.SerializeTo(w)
}

// parseDateRange splits a semester range like "01/12/26 - 04/27/26" into its
// start and end dates.
func parseDateRange(s string, loc *time.Location) (time.Time, time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("unrecognized date range %q", s)
	}

	start, err := time.ParseInLocation(dateLayout, strings.TrimSpace(parts[0]), loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation(dateLayout, strings.TrimSpace(parts[1]), loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("date range %q ends before it starts", s)
	}
	return start, end, nil
}

// firstOnOrAfter returns the first date on or after t that falls on the
// given weekday.
func firstOnOrAfter(t time.Time, weekday time.Weekday) time.Time {
	offset := (int(weekday) - int(t.Weekday()) + 7) % 7
	return t.AddDate(0, 0, offset)
}
