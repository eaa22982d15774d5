package model

import "time"

// OutletTimeSlot is one opening range of an outlet on a given day
// of week, labelled with the section (meal type) it belongs to,
// e.g. Monday 11:00–15:00 "Lunch". Times are stored as "15:04"
// strings in outlet-local time. Rows live in `outlet_time_slots`.
//
// Fields:
//  ID          – primary key identifier.
//  OutletID    – outlet this slot belongs to.
//  DayOfWeek   – 0 (Sunday) through 6 (Saturday), matching time.Weekday.
//  SectionName – meal-type name the slot resolves to.
//  OpeningTime – inclusive "15:04" start of the range.
//  ClosingTime – exclusive "15:04" end of the range.
type OutletTimeSlot struct {
    ID          uint64 // outlet_time_slots.id
    OutletID    uint64 // outlet_time_slots.outlet_id
    DayOfWeek   int    // outlet_time_slots.day_of_week
    SectionName string // outlet_time_slots.section_name
    OpeningTime string // outlet_time_slots.opening_time
    ClosingTime string // outlet_time_slots.closing_time
}

// OutletTimeSlotOverride replaces base slots for the same day of
// week while the requested date falls inside its effective range.
// Rows live in `outlet_time_slot_overrides`.
//
// Fields mirror OutletTimeSlot with the addition of:
//  EffectiveFrom – first date (inclusive) the override applies.
//  EffectiveTo   – last date (inclusive) the override applies.
type OutletTimeSlotOverride struct {
    ID            uint64    // outlet_time_slot_overrides.id
    OutletID      uint64    // outlet_time_slot_overrides.outlet_id
    DayOfWeek     int       // outlet_time_slot_overrides.day_of_week
    SectionName   string    // outlet_time_slot_overrides.section_name
    OpeningTime   string    // outlet_time_slot_overrides.opening_time
    ClosingTime   string    // outlet_time_slot_overrides.closing_time
    EffectiveFrom time.Time // outlet_time_slot_overrides.effective_from
    EffectiveTo   time.Time // outlet_time_slot_overrides.effective_to
}
