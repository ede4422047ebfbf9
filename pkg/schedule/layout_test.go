package schedule

import "testing"

func dayRec(crn, days string, startMin, endMin int) Record {
	return Record{
		CRN:      crn,
		Title:    "Test Course",
		Days:     days,
		StartMin: startMin,
		EndMin:   endMin,
	}
}

func TestLayoutDayIdenticalTimesSortedByCRN(t *testing.T) {
	// Three meetings at the exact same time must land in columns 0, 1, 2 by
	// CRN order no matter how the input is shuffled.
	records := []Record{
		dayRec("Z", "M", 9*60, 10*60),
		dayRec("X", "M", 9*60, 10*60),
		dayRec("Y", "M", 9*60, 10*60),
	}

	blocks := LayoutDay(records, "M", DefaultViewStartMin)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	wantOrder := []string{"X", "Y", "Z"}
	for i, b := range blocks {
		if b.Record.CRN != wantOrder[i] {
			t.Errorf("block %d: expected CRN %s, got %s", i, wantOrder[i], b.Record.CRN)
		}
		if b.Column != i {
			t.Errorf("block %s: expected column %d, got %d", b.Record.CRN, i, b.Column)
		}
		if b.TotalColumns != 3 {
			t.Errorf("block %s: expected 3 total columns, got %d", b.Record.CRN, b.TotalColumns)
		}
	}
}

func TestLayoutDayClusterSharesWidth(t *testing.T) {
	// A-B overlap and B-C overlap, A-C do not. The whole chain is one
	// cluster, so all three share TotalColumns even though A and C could in
	// principle reuse a column.
	records := []Record{
		dayRec("A", "M", 9*60, 10*60),
		dayRec("B", "M", 9*60+30, 10*60+30),
		dayRec("C", "M", 10*60+15, 11*60),
	}

	blocks := LayoutDay(records, "M", DefaultViewStartMin)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	for _, b := range blocks {
		if b.TotalColumns != 3 {
			t.Errorf("block %s: expected cluster-wide width 3, got %d", b.Record.CRN, b.TotalColumns)
		}
	}
}

func TestLayoutDaySeparatesDisjointClusters(t *testing.T) {
	records := []Record{
		dayRec("1", "M", 9*60, 10*60),
		dayRec("2", "M", 9*60+30, 10*60+30),
		dayRec("3", "M", 13*60, 14*60),
	}

	blocks := LayoutDay(records, "M", DefaultViewStartMin)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	byCRN := make(map[string]LayoutBlock)
	for _, b := range blocks {
		byCRN[b.Record.CRN] = b
	}
	if byCRN["1"].TotalColumns != 2 || byCRN["2"].TotalColumns != 2 {
		t.Errorf("morning pair should share 2 columns, got %d and %d",
			byCRN["1"].TotalColumns, byCRN["2"].TotalColumns)
	}
	if byCRN["3"].TotalColumns != 1 || byCRN["3"].Column != 0 {
		t.Errorf("afternoon meeting should get the full width, got column %d of %d",
			byCRN["3"].Column, byCRN["3"].TotalColumns)
	}
}

func TestLayoutDayTouchingBlocksDoNotShareColumns(t *testing.T) {
	records := []Record{
		dayRec("1", "M", 9*60, 10*60),
		dayRec("2", "M", 10*60, 11*60),
	}

	blocks := LayoutDay(records, "M", DefaultViewStartMin)
	for _, b := range blocks {
		if b.TotalColumns != 1 {
			t.Errorf("back-to-back meetings must each get full width, block %s got %d columns",
				b.Record.CRN, b.TotalColumns)
		}
	}
}

func TestLayoutDayOffsets(t *testing.T) {
	records := []Record{dayRec("1", "M", 14*60+20, 15*60+35)}

	blocks := LayoutDay(records, "M", DefaultViewStartMin)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	b := blocks[0]
	if b.TopOffsetMin != 14*60+20-DefaultViewStartMin {
		t.Errorf("expected top offset %d, got %d", 14*60+20-DefaultViewStartMin, b.TopOffsetMin)
	}
	if b.DurationMin != 75 {
		t.Errorf("expected duration 75, got %d", b.DurationMin)
	}
	if b.Day != "M" {
		t.Errorf("expected day M, got %s", b.Day)
	}
}

func TestLayoutDayFiltersOtherDays(t *testing.T) {
	records := []Record{
		dayRec("1", "TR", 9*60, 10*60),
		dayRec("2", "MW", 9*60, 10*60),
	}

	blocks := LayoutDay(records, "M", DefaultViewStartMin)
	if len(blocks) != 1 || blocks[0].Record.CRN != "2" {
		t.Errorf("expected only the MW record on Monday, got %+v", blocks)
	}
}

func TestLayoutDayEmpty(t *testing.T) {
	if blocks := LayoutDay(nil, "M", DefaultViewStartMin); blocks != nil {
		t.Errorf("expected nil layout for empty input, got %+v", blocks)
	}
}
