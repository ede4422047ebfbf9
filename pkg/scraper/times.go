package scraper

import (
	"fmt"
	"regexp"
	"strconv"
)

var clockRangeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})([AP]M)\s*-\s*(\d{1,2}):(\d{2})([AP]M)`)

// ParseClockRange converts a GWU time string like "02:20PM - 03:35PM" into
// start/end minutes since midnight. "ARR" and anything else that does not
// match the expected shape is rejected.
func ParseClockRange(s string) (int, int, error) {
	m := clockRangeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("unrecognized time range %q", s)
	}

	start := clockToMinutes(m[1], m[2], m[3])
	end := clockToMinutes(m[4], m[5], m[6])
	if start >= end {
		return 0, 0, fmt.Errorf("time range %q ends before it starts", s)
	}
	return start, end, nil
}

func clockToMinutes(hourStr, minStr, period string) int {
	hour, _ := strconv.Atoi(hourStr)
	min, _ := strconv.Atoi(minStr)

	if period == "PM" && hour != 12 {
		hour += 12
	}
	if period == "AM" && hour == 12 {
		hour = 0
	}
	return hour*60 + min
}
