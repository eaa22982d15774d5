package allocation

import "github.com/iliyamo/restaurant-table-reservation/internal/model"

// StatusSet is a set of booking statuses keyed by status name.
type StatusSet map[string]bool

// ExcludedStatuses returns the standard set of statuses that do NOT
// occupy a table: cancelled, no-show and left. Everything else,
// postponed, seated and error rows included, still blocks the slot.
func ExcludedStatuses() StatusSet {
    return StatusSet{
        model.BookingStatusCancelled: true,
        model.BookingStatusNoShow:    true,
        model.BookingStatusLeft:      true,
    }
}

// Overlaps reports whether booking b occupies window w. A booking
// occupies the window when either of its own endpoints falls inside
// the inclusive window, or when it fully spans the window. This is
// the rule the legacy reservation system applied; keep it as-is
// rather than rewriting it into symmetric interval intersection.
func Overlaps(b model.OutletTableBooking, w Window) bool {
    if !b.StartTime.Before(w.Start) && !b.StartTime.After(w.End) {
        return true
    }
    if !b.EndTime.Before(w.Start) && !b.EndTime.After(w.End) {
        return true
    }
    return !b.StartTime.After(w.Start) && !b.EndTime.Before(w.End)
}

// IsOccupied reports whether any booking in bookings occupies
// window w on the table identified by outletTableID. Bookings whose
// status is in excluded are ignored, as is the booking with id
// ignoreBookingID (used when the booking being moved must not block
// its own destination). Pass 0 to ignore nothing.
func IsOccupied(bookings []model.OutletTableBooking, outletTableID uint64, w Window, excluded StatusSet, ignoreBookingID uint64) bool {
    for _, b := range bookings {
        if b.OutletTableID != outletTableID {
            continue
        }
        if ignoreBookingID != 0 && b.ID == ignoreBookingID {
            continue
        }
        if excluded[b.Status] {
            continue
        }
        if Overlaps(b, w) {
            return true
        }
    }
    return false
}
