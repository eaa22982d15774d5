package repository

import (
    "context"
    "time"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// TimeSlotRepo provides read access to the weekly opening schedule
// and its date-ranged overrides. Clock times are stored as "15:04"
// strings; the allocation engine parses them.
type TimeSlotRepo struct {
    db DBTX
}

// NewTimeSlotRepo returns a repo bound to the given database or
// transaction.
func NewTimeSlotRepo(db DBTX) *TimeSlotRepo { return &TimeSlotRepo{db: db} }

// ListForDay returns the base weekly slots of an outlet for one day
// of week, ordered by opening time.
func (r *TimeSlotRepo) ListForDay(ctx context.Context, outletID uint64, dayOfWeek int) ([]model.OutletTimeSlot, error) {
    const query = `SELECT id, outlet_id, day_of_week, section_name, opening_time, closing_time
                   FROM outlet_time_slots
                   WHERE outlet_id = ? AND day_of_week = ?
                   ORDER BY opening_time, id`
    rows, err := r.db.QueryContext(ctx, query, outletID, dayOfWeek)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var slots []model.OutletTimeSlot
    for rows.Next() {
        var s model.OutletTimeSlot
        if err := rows.Scan(&s.ID, &s.OutletID, &s.DayOfWeek,
            &s.SectionName, &s.OpeningTime, &s.ClosingTime); err != nil {
            return nil, err
        }
        slots = append(slots, s)
    }
    return slots, rows.Err()
}

// ListOverridesForDate returns the overrides for one day of week
// whose inclusive effective range contains date, ordered by opening
// time.
func (r *TimeSlotRepo) ListOverridesForDate(ctx context.Context, outletID uint64, dayOfWeek int, date time.Time) ([]model.OutletTimeSlotOverride, error) {
    const query = `SELECT id, outlet_id, day_of_week, section_name, opening_time, closing_time,
                          effective_from, effective_to
                   FROM outlet_time_slot_overrides
                   WHERE outlet_id = ? AND day_of_week = ?
                     AND effective_from <= ? AND effective_to >= ?
                   ORDER BY opening_time, id`
    d := date.Format(dbDateLayout)
    rows, err := r.db.QueryContext(ctx, query, outletID, dayOfWeek, d, d)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var overrides []model.OutletTimeSlotOverride
    for rows.Next() {
        var o model.OutletTimeSlotOverride
        if err := rows.Scan(&o.ID, &o.OutletID, &o.DayOfWeek,
            &o.SectionName, &o.OpeningTime, &o.ClosingTime,
            &o.EffectiveFrom, &o.EffectiveTo); err != nil {
            return nil, err
        }
        overrides = append(overrides, o)
    }
    return overrides, rows.Err()
}
