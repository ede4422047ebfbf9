package schedule

import (
	"sort"
	"strings"
)

// ConflictGroup is a maximal cluster of records that transitively overlap in
// time on a shared day inside the same room.
type ConflictGroup struct {
	Location string
	Records  []Record
}

// Unassigned returns the records that cannot take part in room conflict
// detection because their building or room is unknown.
func Unassigned(records []Record) []Record {
	var out []Record
	for _, r := range records {
		if !r.HasLocation() {
			out = append(out, r)
		}
	}
	return out
}

// DetectConflicts finds every group of records that double-book a room.
// Records are grouped by normalized building and room, pairs that meet on a
// shared day with overlapping times are merged transitively, and each
// cluster of two or more records becomes one ConflictGroup. Groups come
// back ordered by room key, then by earliest member start, so repeated runs
// over the same input always report in the same order.
func DetectConflicts(records []Record) []ConflictGroup {
	byRoom := make(map[string][]Record)
	var keys []string

	for _, r := range records {
		if !r.HasLocation() {
			continue
		}
		key := resourceKey(r.Building, r.Room)
		if _, ok := byRoom[key]; !ok {
			keys = append(keys, key)
		}
		byRoom[key] = append(byRoom[key], r)
	}
	sort.Strings(keys)

	var groups []ConflictGroup
	for _, key := range keys {
		members := byRoom[key]
		if len(members) < 2 {
			continue
		}
		groups = append(groups, clusterRoom(members)...)
	}
	return groups
}

// resourceKey normalizes a building/room pair for grouping:
// case-insensitive with runs of whitespace collapsed.
func resourceKey(building, room string) string {
	return normalizeToken(building) + "|" + normalizeToken(room)
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// clusterRoom merges transitively conflicting records within one room via
// union-find, so a chain A-B, B-C collapses into a single group even when A
// and C never directly overlap.
func clusterRoom(members []Record) []ConflictGroup {
	parent := make([]int, len(members))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}

	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if members[i].Window().Conflicts(members[j].Window()) {
				parent[find(i)] = find(j)
			}
		}
	}

	components := make(map[int][]Record)
	var roots []int
	for i, m := range members {
		root := find(i)
		if _, ok := components[root]; !ok {
			roots = append(roots, root)
		}
		components[root] = append(components[root], m)
	}

	var groups []ConflictGroup
	for _, root := range roots {
		cluster := components[root]
		if len(cluster) < 2 {
			continue
		}
		sort.Slice(cluster, func(a, b int) bool {
			if cluster[a].StartMin != cluster[b].StartMin {
				return cluster[a].StartMin < cluster[b].StartMin
			}
			return cluster[a].CRN < cluster[b].CRN
		})
		groups = append(groups, ConflictGroup{
			Location: cluster[0].Location(),
			Records:  cluster,
		})
	}

	sort.Slice(groups, func(a, b int) bool {
		return groups[a].Records[0].StartMin < groups[b].Records[0].StartMin
	})
	return groups
}
