package allocation

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != TimeOfDay(9*60+30) {
		t.Errorf("09:30 = %d minutes, want %d", got, 9*60+30)
	}

	// Seconds from schedule exports are accepted and dropped.
	withSeconds, err := ParseTimeOfDay("21:15:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withSeconds != TimeOfDay(21*60+15) {
		t.Errorf("21:15:30 = %d minutes, want %d", withSeconds, 21*60+15)
	}

	for _, bad := range []string{"", "25:00", "9:3", "noon"} {
		if _, err := ParseTimeOfDay(bad); err == nil {
			t.Errorf("%q should not parse", bad)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	if s := TimeOfDay(9*60 + 5).String(); s != "09:05" {
		t.Errorf("String() = %q, want 09:05", s)
	}
	if s := TimeOfDay(0).String(); s != "00:00" {
		t.Errorf("String() = %q, want 00:00", s)
	}
}

func TestInHalfOpenRange(t *testing.T) {
	open := TimeOfDay(11 * 60)
	close := TimeOfDay(15 * 60)

	if !open.InHalfOpenRange(open, close) {
		t.Error("opening time is inclusive")
	}
	if close.InHalfOpenRange(open, close) {
		t.Error("closing time is exclusive")
	}
	if !TimeOfDay(14*60 + 59).InHalfOpenRange(open, close) {
		t.Error("one minute before closing is inside")
	}
}

func TestDayOf(t *testing.T) {
	loc := time.FixedZone("outlet", 8*3600)
	ts := time.Date(2026, time.March, 2, 19, 45, 12, 0, loc)
	day := DayOf(ts)
	if day.Hour() != 0 || day.Minute() != 0 || day.Second() != 0 {
		t.Errorf("DayOf did not truncate: %v", day)
	}
	if day.Location() != loc {
		t.Error("DayOf must preserve the location")
	}
	if day.Day() != 2 || day.Month() != time.March {
		t.Errorf("DayOf changed the calendar day: %v", day)
	}
}
