package schedule

// Deduplicate collapses raw records that repeat a CRN into one record per
// CRN, preserving the order in which CRNs were first seen. When duplicates
// disagree, a candidate carrying a subject code wins if it is the only one
// that does; in every other case the first-seen record is kept. Records
// missing a CRN, days, or a valid time window are dropped silently,
// mirroring the skip-unparsable-rows policy of the scraper.
func Deduplicate(records []Record) []Record {
	byCRN := make(map[string][]Record)
	var order []string

	for _, r := range records {
		if !r.Valid() {
			continue
		}
		if _, seen := byCRN[r.CRN]; !seen {
			order = append(order, r.CRN)
		}
		byCRN[r.CRN] = append(byCRN[r.CRN], r)
	}

	out := make([]Record, 0, len(order))
	for _, crn := range order {
		out = append(out, pickCanonical(byCRN[crn]))
	}
	return out
}

// pickCanonical applies the duplicate tie-break for one CRN: a lone
// subject-carrying candidate replaces the rest, anything else falls back to
// the first-seen record.
func pickCanonical(candidates []Record) Record {
	withSubject := -1
	count := 0
	for i, c := range candidates {
		if c.Subject != "" {
			count++
			if withSubject < 0 {
				withSubject = i
			}
		}
	}
	if count == 1 {
		return candidates[withSubject]
	}
	return candidates[0]
}
