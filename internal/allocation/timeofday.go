package allocation

import (
    "fmt"
    "time"
)

// TimeOfDay is a clock time expressed as minutes from midnight in
// the outlet's local day. Schedule rows store clock times as
// "15:04" strings; this type is what the engine compares with.
type TimeOfDay int

// ParseTimeOfDay parses an "HH:MM" string (seconds, when present,
// are ignored) into a TimeOfDay. It rejects values outside a
// single day.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
    t, err := time.Parse("15:04", s)
    if err != nil {
        // Some schedule exports carry seconds; accept and drop them.
        t, err = time.Parse("15:04:05", s)
        if err != nil {
            return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
        }
    }
    return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

// TimeOfDayFrom extracts the clock-time component of t.
func TimeOfDayFrom(t time.Time) TimeOfDay {
    return TimeOfDay(t.Hour()*60 + t.Minute())
}

// String renders the time back into "HH:MM" form.
func (t TimeOfDay) String() string {
    return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// InHalfOpenRange reports whether t falls inside [opening, closing).
// A request exactly at closing time belongs to the next range, never
// the one just closed.
func (t TimeOfDay) InHalfOpenRange(opening, closing TimeOfDay) bool {
    return t >= opening && t < closing
}

// DayOf truncates t to midnight of its calendar day, preserving the
// location carried on t.
func DayOf(t time.Time) time.Time {
    return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
