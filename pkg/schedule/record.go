package schedule

import "strings"

// NotSpecified is the placeholder GWU uses when a field has no value.
const NotSpecified = "Not specified"

// DayLetters holds the canonical weekday letters in Monday-to-Friday order.
// R stands for Thursday.
const DayLetters = "MTWRF"

var dayNames = map[string]string{
	"M": "Monday",
	"T": "Tuesday",
	"W": "Wednesday",
	"R": "Thursday",
	"F": "Friday",
}

// Record represents one course meeting identified by its CRN
type Record struct {
	CRN          string `json:"crn"`
	Subject      string `json:"subject"`
	CourseNumber string `json:"course_number"`
	Section      string `json:"section"`
	Title        string `json:"title"`
	Credits      string `json:"credits"`
	Status       string `json:"status"`
	Instructor   string `json:"instructor"`
	Building     string `json:"building"`
	Room         string `json:"room"`
	Dates        string `json:"dates"`
	Days         string `json:"days"`      // ordered subset of DayLetters, no duplicates
	StartMin     int    `json:"start_min"` // minutes since midnight
	EndMin       int    `json:"end_min"`
}

// Window returns the record's meeting window for overlap queries.
func (r Record) Window() TimeWindow {
	return TimeWindow{Days: r.Days, Start: r.StartMin, End: r.EndMin}
}

// Valid reports whether the record carries what the engine assumes: a CRN,
// at least one meeting day, and a positive-length window within one day.
func (r Record) Valid() bool {
	return r.CRN != "" && r.Days != "" && r.StartMin >= 0 && r.StartMin < r.EndMin && r.EndMin <= 24*60
}

// HasLocation reports whether the record names a concrete building and room.
func (r Record) HasLocation() bool {
	return r.Building != "" && r.Building != NotSpecified &&
		r.Room != "" && r.Room != NotSpecified
}

// Location returns the display name of the record's room, e.g. "1957 E B12".
func (r Record) Location() string {
	return strings.Join(strings.Fields(r.Building+" "+r.Room), " ")
}

// NormalizeDays filters s down to the canonical day letters, ordered
// M,T,W,R,F with duplicates removed. Anything else in s is dropped.
func NormalizeDays(s string) string {
	var b strings.Builder
	for _, d := range DayLetters {
		if strings.ContainsRune(s, d) {
			b.WriteRune(d)
		}
	}
	return b.String()
}

// DayName expands a day letter to its full English name, e.g. "R" -> "Thursday".
func DayName(day string) string {
	if name, ok := dayNames[day]; ok {
		return name
	}
	return day
}
