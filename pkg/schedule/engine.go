// Package schedule implements the course schedule interval engine: it
// deduplicates scraped course records by CRN, detects room double-bookings,
// and computes a per-day column layout so overlapping meetings render side
// by side. Every operation is a pure function over the records it is given;
// the package holds no state and performs no I/O.
package schedule

// Result bundles the three outputs of a Build run.
type Result struct {
	Canonical    []Record
	Conflicts    []ConflictGroup
	Unassigned   []Record
	LayoutsByDay map[string][]LayoutBlock
}

// Build runs the full pipeline over raw records: deduplication, room
// conflict detection, and per-day lane packing. A record meeting on several
// days gets one layout block per day it meets. Safe to call repeatedly with
// different inputs.
func Build(raw []Record) Result {
	canonical := Deduplicate(raw)

	layouts := make(map[string][]LayoutBlock)
	for _, d := range DayLetters {
		day := string(d)
		if blocks := LayoutDay(canonical, day, DefaultViewStartMin); len(blocks) > 0 {
			layouts[day] = blocks
		}
	}

	return Result{
		Canonical:    canonical,
		Conflicts:    DetectConflicts(canonical),
		Unassigned:   Unassigned(canonical),
		LayoutsByDay: layouts,
	}
}
