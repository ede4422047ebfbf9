package schedule

import "testing"

func roomRec(crn, building, room, days string, startMin, endMin int) Record {
	return Record{
		CRN:      crn,
		Title:    "Test Course",
		Building: building,
		Room:     room,
		Days:     days,
		StartMin: startMin,
		EndMin:   endMin,
	}
}

func TestDetectConflictsTouchingBoundary(t *testing.T) {
	records := []Record{
		roomRec("1", "1957 E", "B12", "M", 9*60, 10*60),
		roomRec("2", "1957 E", "B12", "M", 10*60, 11*60),
	}

	groups := DetectConflicts(records)
	if len(groups) != 0 {
		t.Errorf("back-to-back meetings in the same room must not conflict, got %d groups", len(groups))
	}
}

func TestDetectConflictsOverlap(t *testing.T) {
	records := []Record{
		roomRec("1", "1957 E", "B12", "M", 9*60, 10*60+30),
		roomRec("2", "1957 E", "B12", "M", 10*60, 11*60),
	}

	groups := DetectConflicts(records)
	if len(groups) != 1 {
		t.Fatalf("expected 1 conflict group, got %d", len(groups))
	}
	if len(groups[0].Records) != 2 {
		t.Errorf("expected 2 members in the group, got %d", len(groups[0].Records))
	}
	if groups[0].Location != "1957 E B12" {
		t.Errorf("expected location %q, got %q", "1957 E B12", groups[0].Location)
	}
}

func TestDetectConflictsTransitiveChain(t *testing.T) {
	// A overlaps B, B overlaps C, but A and C do not touch. All three must
	// land in one group.
	records := []Record{
		roomRec("A", "Rome", "205", "M", 9*60, 10*60),
		roomRec("B", "Rome", "205", "M", 9*60+30, 10*60+30),
		roomRec("C", "Rome", "205", "M", 10*60+15, 11*60),
	}

	groups := DetectConflicts(records)
	if len(groups) != 1 {
		t.Fatalf("expected a single transitive group, got %d groups", len(groups))
	}
	if len(groups[0].Records) != 3 {
		t.Errorf("expected all 3 chained records in one group, got %d", len(groups[0].Records))
	}
}

func TestDetectConflictsDifferentRooms(t *testing.T) {
	records := []Record{
		roomRec("1", "Rome", "205", "M", 9*60, 10*60),
		roomRec("2", "Rome", "206", "M", 9*60, 10*60),
	}

	if groups := DetectConflicts(records); len(groups) != 0 {
		t.Errorf("identical times in different rooms must not conflict, got %d groups", len(groups))
	}
}

func TestDetectConflictsDisjointDays(t *testing.T) {
	records := []Record{
		roomRec("1", "Rome", "205", "MW", 9*60, 10*60),
		roomRec("2", "Rome", "205", "TR", 9*60, 10*60),
	}

	if groups := DetectConflicts(records); len(groups) != 0 {
		t.Errorf("same room and time on disjoint days must not conflict, got %d groups", len(groups))
	}
}

func TestDetectConflictsNormalizesRoomKey(t *testing.T) {
	records := []Record{
		roomRec("1", "1957  E", "B12", "M", 9*60, 10*60),
		roomRec("2", "1957 e", "b12", "M", 9*60+15, 10*60+15),
	}

	groups := DetectConflicts(records)
	if len(groups) != 1 {
		t.Errorf("expected case and whitespace differences to map to the same room, got %d groups", len(groups))
	}
}

func TestDetectConflictsSkipsUnassignedRooms(t *testing.T) {
	records := []Record{
		roomRec("1", NotSpecified, NotSpecified, "M", 9*60, 10*60),
		roomRec("2", NotSpecified, NotSpecified, "M", 9*60, 10*60),
		roomRec("3", "Rome", "205", "M", 9*60, 10*60),
	}

	if groups := DetectConflicts(records); len(groups) != 0 {
		t.Errorf("records without a concrete room must be excluded, got %d groups", len(groups))
	}

	unassigned := Unassigned(records)
	if len(unassigned) != 2 {
		t.Fatalf("expected 2 unassigned records, got %d", len(unassigned))
	}
	for _, r := range unassigned {
		if r.CRN == "3" {
			t.Errorf("record with a concrete room reported as unassigned")
		}
	}
}

func TestDetectConflictsGroupOrderIsDeterministic(t *testing.T) {
	records := []Record{
		roomRec("10", "Zebra Hall", "1", "M", 9*60, 10*60),
		roomRec("11", "Zebra Hall", "1", "M", 9*60+30, 10*60+30),
		roomRec("20", "Acorn Hall", "1", "M", 13*60, 14*60),
		roomRec("21", "Acorn Hall", "1", "M", 13*60+30, 14*60+30),
	}

	groups := DetectConflicts(records)
	if len(groups) != 2 {
		t.Fatalf("expected 2 conflict groups, got %d", len(groups))
	}
	if groups[0].Location != "Acorn Hall 1" || groups[1].Location != "Zebra Hall 1" {
		t.Errorf("expected groups ordered by room key, got %q then %q", groups[0].Location, groups[1].Location)
	}
}
