package schedule

import "strings"

// TimeWindow is a day set plus a start/end pair in minutes since midnight.
type TimeWindow struct {
	Days  string
	Start int
	End   int
}

// Overlaps reports whether the two minute ranges intersect. Ranges are
// half-open, so back-to-back meetings (10:00-11:00 followed by 11:00-12:00)
// do not overlap.
func (w TimeWindow) Overlaps(o TimeWindow) bool {
	return w.Start < o.End && o.Start < w.End
}

// SharesDay reports whether the two windows meet on at least one common day.
func (w TimeWindow) SharesDay(o TimeWindow) bool {
	for _, d := range w.Days {
		if strings.ContainsRune(o.Days, d) {
			return true
		}
	}
	return false
}

// Conflicts reports whether the windows collide: a shared day and
// overlapping times.
func (w TimeWindow) Conflicts(o TimeWindow) bool {
	return w.SharesDay(o) && w.Overlaps(o)
}
