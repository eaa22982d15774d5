package allocation

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// TableDayView is the refreshed booking list of one table for a
// calendar day, returned after a move so the calling UI can
// re-render both affected tables.
type TableDayView struct {
    OutletTableID uint64                     `json:"outlet_table_id"`
    Bookings      []model.OutletTableBooking `json:"bookings"`
}

// MoveResult is the outcome of a committed move: the rewritten
// booking, its invoice, and the same-day views of the origin and
// destination tables.
type MoveResult struct {
    Booking     model.OutletTableBooking `json:"booking"`
    Invoice     model.OutletInvoice      `json:"invoice"`
    Origin      TableDayView             `json:"origin"`
    Destination TableDayView             `json:"destination"`
}

// MoveBooking relocates an existing booking to another table and
// window. The destination conflict check and the row updates run
// inside one transaction, so a booking can never commit onto an
// occupied table. The booking being moved is excluded from its own
// conflict check; an occupied destination fails with INVALID_MOVE
// and leaves the booking untouched.
func (e *Engine) MoveBooking(ctx context.Context, bookingID, destTableID uint64, newStart, newEnd time.Time) (*MoveResult, error) {
    if bookingID == 0 || destTableID == 0 {
        return nil, invalidf("booking id and destination table id are required")
    }
    if !newEnd.After(newStart) {
        return nil, invalidf("new end time must be after new start time")
    }
    window := Window{Start: newStart, End: newEnd}

    var (
        booking model.OutletTableBooking
        invoice model.OutletInvoice
        origin  uint64
    )
    err := e.store.Atomically(ctx, func(s Store) error {
        b, err := s.GetBooking(ctx, bookingID)
        if err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return notFoundf("booking %d not found", bookingID)
            }
            return err
        }
        origin = b.OutletTableID

        dest, err := s.GetOutletTable(ctx, destTableID)
        if err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return notFoundf("outlet table %d not found", destTableID)
            }
            return err
        }
        if !dest.IsActive {
            return notFoundf("outlet table %d is inactive", destTableID)
        }

        inv, err := s.GetInvoice(ctx, b.OutletInvoiceID)
        if err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return notFoundf("invoice %d not found", b.OutletInvoiceID)
            }
            return err
        }

        existing, err := s.ListBookings(ctx, []uint64{destTableID}, window)
        if err != nil {
            return err
        }
        if IsOccupied(existing, destTableID, window, ExcludedStatuses(), b.ID) {
            return conflict(CodeInvalidMove, "destination table is occupied in the requested window")
        }

        if err := s.UpdateBookingPlacement(ctx, b.ID, destTableID, window); err != nil {
            return err
        }
        if err := s.UpdateInvoiceSchedule(ctx, inv.ID, DayOf(newStart), TimeOfDayFrom(newStart).String()); err != nil {
            return err
        }

        booking = *b
        booking.OutletTableID = destTableID
        booking.StartTime = newStart
        booking.EndTime = newEnd
        invoice = *inv
        invoice.BookingDate = DayOf(newStart)
        invoice.BookingTime = TimeOfDayFrom(newStart).String()
        return nil
    })
    if err != nil {
        return nil, err
    }

    day := DayOf(newStart)
    originView, err := e.store.ListBookingsForDay(ctx, origin, day)
    if err != nil {
        return nil, err
    }
    destView, err := e.store.ListBookingsForDay(ctx, destTableID, day)
    if err != nil {
        return nil, err
    }
    return &MoveResult{
        Booking:     booking,
        Invoice:     invoice,
        Origin:      TableDayView{OutletTableID: origin, Bookings: originView},
        Destination: TableDayView{OutletTableID: destTableID, Bookings: destView},
    }, nil
}
