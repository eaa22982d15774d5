package allocation

import (
    "context"
    "time"
)

// timeRange is one resolved schedule entry: a half-open clock-time
// range mapped to a section (meal type) name.
type timeRange struct {
    section string
    opening TimeOfDay
    closing TimeOfDay
}

// ResolveMealPeriod maps an outlet, calendar date and clock time to
// the meal-type section the request falls into. Overrides whose
// effective date range contains the date replace the base weekly
// schedule for that day: the merged list is overrides first, then
// base slots, and the first range containing the time wins.
// Matching is half-open, opening <= t < closing. A nil result (no
// error) means the outlet is closed at that time.
func (e *Engine) ResolveMealPeriod(ctx context.Context, outletID uint64, date time.Time, t TimeOfDay) (*string, error) {
    if outletID == 0 {
        return nil, invalidf("outlet id is required")
    }
    dayOfWeek := int(date.Weekday())

    overrides, err := e.store.ListTimeSlotOverrides(ctx, outletID, dayOfWeek, date)
    if err != nil {
        return nil, err
    }
    base, err := e.store.ListTimeSlots(ctx, outletID, dayOfWeek)
    if err != nil {
        return nil, err
    }

    merged := make([]timeRange, 0, len(overrides)+len(base))
    for _, o := range overrides {
        if r, ok := parseRange(o.SectionName, o.OpeningTime, o.ClosingTime); ok {
            merged = append(merged, r)
        }
    }
    for _, s := range base {
        if r, ok := parseRange(s.SectionName, s.OpeningTime, s.ClosingTime); ok {
            merged = append(merged, r)
        }
    }

    for _, r := range merged {
        if t.InHalfOpenRange(r.opening, r.closing) {
            section := r.section
            return &section, nil
        }
    }
    return nil, nil
}

// parseRange converts stored "15:04" strings into a timeRange.
// Malformed rows are skipped rather than failing the whole
// resolution; the schedule editor validates on write.
func parseRange(section, opening, closing string) (timeRange, bool) {
    open, err := ParseTimeOfDay(opening)
    if err != nil {
        return timeRange{}, false
    }
    close, err := ParseTimeOfDay(closing)
    if err != nil {
        return timeRange{}, false
    }
    return timeRange{section: section, opening: open, closing: close}, true
}
