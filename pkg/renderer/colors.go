package renderer

import "github.com/mmann1123/GWU-Course-Calendar/pkg/schedule"

// palette holds the block background colors cycled across instructors.
var palette = []string{
	"#667eea",
	"#e86a92",
	"#38a169",
	"#d69e2e",
	"#9f7aea",
	"#dd6b20",
	"#319795",
	"#e53e3e",
}

// InstructorColors assigns every instructor a stable color by order of first
// appearance in the canonical record set. The mapping is computed once from
// the records rather than accumulated while rendering, so rendering the same
// input always colors the same way.
func InstructorColors(records []schedule.Record) map[string]string {
	colors := make(map[string]string)
	next := 0
	for _, r := range records {
		if _, ok := colors[r.Instructor]; ok {
			continue
		}
		colors[r.Instructor] = palette[next%len(palette)]
		next++
	}
	return colors
}
