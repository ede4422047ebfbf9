package schedule

import (
	"sort"
	"strings"
)

// DefaultViewStartMin is where the rendered day column begins (09:00),
// matching the calendar grid the HTML output draws.
const DefaultViewStartMin = 9 * 60

// LayoutBlock places one record in a day column for rendering. Column and
// TotalColumns describe the side-by-side slot; TopOffsetMin and DurationMin
// are minutes relative to the view start and carry no pixel semantics.
// TopOffsetMin may be negative when a meeting starts before the view window;
// clipping is the renderer's job.
type LayoutBlock struct {
	Record       Record
	Day          string
	Column       int
	TotalColumns int
	TopOffsetMin int
	DurationMin  int
}

// LayoutDay packs every record meeting on the given day into side-by-side
// columns so overlapping meetings never draw on top of each other. Records
// whose intervals touch transitively form one cluster, and every member of
// a cluster shares the same TotalColumns even when a sub-pair never
// co-occurs. That keeps the rendered widths uniform across the cluster,
// which is how the calendar has always displayed overlap groups.
func LayoutDay(records []Record, day string, viewStartMin int) []LayoutBlock {
	var dayRecords []Record
	for _, r := range records {
		if strings.Contains(r.Days, day) {
			dayRecords = append(dayRecords, r)
		}
	}
	if len(dayRecords) == 0 {
		return nil
	}

	sort.Slice(dayRecords, func(i, j int) bool {
		if dayRecords[i].StartMin != dayRecords[j].StartMin {
			return dayRecords[i].StartMin < dayRecords[j].StartMin
		}
		return dayRecords[i].CRN < dayRecords[j].CRN
	})

	blocks := make([]LayoutBlock, 0, len(dayRecords))
	flush := func(start, end int) {
		total := end - start
		for i := start; i < end; i++ {
			r := dayRecords[i]
			blocks = append(blocks, LayoutBlock{
				Record:       r,
				Day:          day,
				Column:       i - start,
				TotalColumns: total,
				TopOffsetMin: r.StartMin - viewStartMin,
				DurationMin:  r.EndMin - r.StartMin,
			})
		}
	}

	// Sweep the sorted records: a cluster ends once the next record starts
	// at or after everything seen so far has ended. With a start-sorted
	// input this yields exactly the transitive overlap clusters.
	clusterStart := 0
	maxEnd := dayRecords[0].EndMin
	for i := 1; i < len(dayRecords); i++ {
		if dayRecords[i].StartMin >= maxEnd {
			flush(clusterStart, i)
			clusterStart = i
			maxEnd = dayRecords[i].EndMin
			continue
		}
		if dayRecords[i].EndMin > maxEnd {
			maxEnd = dayRecords[i].EndMin
		}
	}
	flush(clusterStart, len(dayRecords))

	return blocks
}
