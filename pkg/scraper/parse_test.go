package scraper

import (
	"strings"
	"testing"

	"github.com/mmann1123/GWU-Course-Calendar/pkg/schedule"
)

const sampleListing = `
<html><body>
<table class="courseListing">
<tr class="crseRow1 odd">
<td>OPEN</td>
<td>12345</td>
<td><span style="font-weight:bold">GEOG</span> <a href="#"><span>1001</span></a></td>
<td>10</td>
<td>Intro to Physical Geography</td>
<td>3.00</td>
<td>Mann, M</td>
<td>1957 E B12</td>
<td>MW<br>09:35AM - 10:50AM</td>
<td>01/12/26 - 04/27/26</td>
</tr>
</table>
<table class="courseListing">
<tr class="crseRow1 even">
<td>CLOSED</td>
<td>67890</td>
<td><span style="font-weight:bold">GEOG</span> <a href="#"><span>2104</span></a></td>
<td>11</td>
<td>Cartography</td>
<td>3.00</td>
<td></td>
<td>ROME</td>
<td>TR<br>02:20PM - 03:35PM</td>
<td></td>
</tr>
</table>
<table class="courseListing">
<tr class="crseRow1 odd">
<td>OPEN</td>
<td>99999</td>
<td><span style="font-weight:bold">GEOG</span> <a href="#"><span>6999</span></a></td>
<td>12</td>
<td>Independent Research</td>
<td>3.00</td>
<td>Mann, M</td>
<td>Not specified</td>
<td>ARR</td>
<td>01/12/26 - 04/27/26</td>
</tr>
</table>
</body></html>`

func TestParseCourses(t *testing.T) {
	records, err := ParseCourses(strings.NewReader(sampleListing))
	if err != nil {
		t.Fatalf("ParseCourses failed: %v", err)
	}

	// The ARR row must be skipped
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.CRN != "12345" {
		t.Errorf("expected CRN 12345, got %s", first.CRN)
	}
	if first.Subject != "GEOG" || first.CourseNumber != "GEOG 1001" {
		t.Errorf("expected GEOG 1001, got subject %q number %q", first.Subject, first.CourseNumber)
	}
	if first.Title != "Intro to Physical Geography" {
		t.Errorf("unexpected title %q", first.Title)
	}
	if first.Building != "1957 E" || first.Room != "B12" {
		t.Errorf("expected building '1957 E' room 'B12', got %q / %q", first.Building, first.Room)
	}
	if first.Days != "MW" {
		t.Errorf("expected days MW, got %q", first.Days)
	}
	if first.StartMin != 9*60+35 || first.EndMin != 10*60+50 {
		t.Errorf("expected 09:35-10:50, got %d-%d", first.StartMin, first.EndMin)
	}
	if !first.Valid() {
		t.Errorf("parsed record should pass Valid()")
	}

	second := records[1]
	if second.Instructor != schedule.NotSpecified {
		t.Errorf("empty instructor cell should default to the sentinel, got %q", second.Instructor)
	}
	if second.Building != "ROME" || second.Room != schedule.NotSpecified {
		t.Errorf("single-token location should be a building with no room, got %q / %q", second.Building, second.Room)
	}
	if second.Dates != DefaultDates {
		t.Errorf("empty dates cell should fall back to the default range, got %q", second.Dates)
	}
	if second.Days != "TR" || second.StartMin != 14*60+20 {
		t.Errorf("expected TR 14:20 start, got %q %d", second.Days, second.StartMin)
	}
}

func TestParseCoursesIgnoresShortRows(t *testing.T) {
	html := `<table class="courseListing"><tr class="crseRow1"><td>OPEN</td><td>111</td></tr></table>`
	records, err := ParseCourses(strings.NewReader(html))
	if err != nil {
		t.Fatalf("ParseCourses failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected rows with too few cells to be skipped, got %d records", len(records))
	}
}

func TestCourseListURL(t *testing.T) {
	url := CourseListURL("202601", "geog")
	want := "https://my.gwu.edu/mod/pws/courses.cfm?campId=1&termId=202601&subjId=GEOG"
	if url != want {
		t.Errorf("expected %s, got %s", want, url)
	}
}

func TestTermID(t *testing.T) {
	code, err := SemesterCode("Spring")
	if err != nil {
		t.Fatalf("SemesterCode failed: %v", err)
	}
	if got := TermID(2026, code); got != "202601" {
		t.Errorf("expected termId 202601, got %s", got)
	}

	if _, err := SemesterCode("winter"); err == nil {
		t.Errorf("expected an error for an unknown semester")
	}
}
