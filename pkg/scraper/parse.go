package scraper

import (
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mmann1123/GWU-Course-Calendar/pkg/schedule"
)

// DefaultDates is used when a course row carries no semester date range.
const DefaultDates = "01/12/26 - 04/27/26"

var dayTimeRe = regexp.MustCompile(`([MTWRF]+)\s*(\d{1,2}:\d{2}[AP]M\s*-\s*\d{1,2}:\d{2}[AP]M)`)

// ParseCourses extracts course rows from a GWU course listing page. The page
// holds one table.courseListing per course; the main data row has a class
// containing "crseRow1" with at least ten cells. Rows that do not match the
// expected shape, including arranged-time ("ARR") sections, are skipped.
func ParseCourses(r io.Reader) ([]schedule.Record, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var records []schedule.Record

	doc.Find("table.courseListing tr[class*='crseRow1']").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 10 {
			return
		}

		days, startMin, endMin, ok := parseDayTime(text(cells.Eq(8)))
		if !ok {
			return
		}

		subjectCell := cells.Eq(2)
		subject := text(subjectCell.Find("span[style*='font-weight:bold']").First())
		courseNum := text(subjectCell.Find("a span").First())
		section := text(cells.Eq(3))

		building, room := splitBuildingRoom(text(cells.Eq(7)))

		dates := text(cells.Eq(9))
		if dates == "" {
			dates = DefaultDates
		}

		records = append(records, schedule.Record{
			Status:       text(cells.Eq(0)),
			CRN:          text(cells.Eq(1)),
			Subject:      subject,
			CourseNumber: courseNumber(subject, courseNum, section),
			Section:      section,
			Title:        orNotSpecified(text(cells.Eq(4))),
			Credits:      text(cells.Eq(5)),
			Instructor:   orNotSpecified(text(cells.Eq(6))),
			Building:     building,
			Room:         room,
			Dates:        dates,
			Days:         days,
			StartMin:     startMin,
			EndMin:       endMin,
		})
	})

	return records, nil
}

func text(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// parseDayTime pulls the day letters and clock range out of the combined
// day/time cell, e.g. "TR 02:20PM - 03:35PM". The two parts may run
// together with no whitespace once the <br> between them is stripped.
func parseDayTime(s string) (days string, startMin, endMin int, ok bool) {
	m := dayTimeRe.FindStringSubmatch(s)
	if m == nil {
		return "", 0, 0, false
	}
	days = schedule.NormalizeDays(m[1])
	startMin, endMin, err := ParseClockRange(m[2])
	if err != nil || days == "" {
		return "", 0, 0, false
	}
	return days, startMin, endMin, true
}

// splitBuildingRoom splits a location cell like "1957 E B12" into building
// and room: the last token is the room. A lone token is a building with no
// room assignment.
func splitBuildingRoom(s string) (string, string) {
	if s == "" || s == schedule.NotSpecified {
		return schedule.NotSpecified, schedule.NotSpecified
	}
	parts := strings.Fields(s)
	if len(parts) >= 2 {
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
	return s, schedule.NotSpecified
}

// courseNumber builds the display number, e.g. "GEOG 1001", falling back to
// the section when the row has no linked course number.
func courseNumber(subject, courseNum, section string) string {
	if courseNum != "" {
		return strings.TrimSpace(subject + " " + courseNum)
	}
	return strings.TrimSpace(subject + " " + section)
}

func orNotSpecified(s string) string {
	if s == "" {
		return schedule.NotSpecified
	}
	return s
}
