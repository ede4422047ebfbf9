package scraper

import "testing"

func TestParseClockRange(t *testing.T) {
	start, end, err := ParseClockRange("02:20PM - 03:35PM")
	if err != nil {
		t.Fatalf("ParseClockRange failed: %v", err)
	}
	if start != 14*60+20 {
		t.Errorf("expected start 14:20 (%d min), got %d", 14*60+20, start)
	}
	if end != 15*60+35 {
		t.Errorf("expected end 15:35 (%d min), got %d", 15*60+35, end)
	}
}

func TestParseClockRangeNoonAndMidnight(t *testing.T) {
	start, end, err := ParseClockRange("12:00PM - 01:00PM")
	if err != nil {
		t.Fatalf("ParseClockRange failed: %v", err)
	}
	if start != 12*60 || end != 13*60 {
		t.Errorf("12PM must stay at noon: got start %d, end %d", start, end)
	}

	start, end, err = ParseClockRange("12:30AM - 01:30AM")
	if err != nil {
		t.Fatalf("ParseClockRange failed: %v", err)
	}
	if start != 30 || end != 90 {
		t.Errorf("12AM must wrap to midnight: got start %d, end %d", start, end)
	}
}

func TestParseClockRangeRejectsArranged(t *testing.T) {
	if _, _, err := ParseClockRange("ARR"); err == nil {
		t.Errorf("expected an error for arranged-time sections")
	}
	if _, _, err := ParseClockRange(""); err == nil {
		t.Errorf("expected an error for an empty time string")
	}
}

func TestParseClockRangeRejectsBackwardsRange(t *testing.T) {
	if _, _, err := ParseClockRange("03:00PM - 02:00PM"); err == nil {
		t.Errorf("expected an error when the range ends before it starts")
	}
}
