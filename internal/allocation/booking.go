package allocation

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// ConfirmBooking creates the occupancy rows for a committed choice:
// one booking per table, all with the same window and invoice. The
// availability re-check and the inserts run inside one transaction,
// so two racing confirmations for overlapping windows on the same
// table cannot both succeed, and a multi-table combination is
// booked in full or not at all.
func (e *Engine) ConfirmBooking(ctx context.Context, invoiceID uint64, outletTableIDs []uint64, start, end time.Time) ([]model.OutletTableBooking, error) {
    if invoiceID == 0 {
        return nil, invalidf("invoice id is required")
    }
    if len(outletTableIDs) == 0 {
        return nil, invalidf("at least one outlet table is required")
    }
    if !end.After(start) {
        return nil, invalidf("end time must be after start time")
    }
    window := Window{Start: start, End: end}

    var created []model.OutletTableBooking
    err := e.store.Atomically(ctx, func(s Store) error {
        if _, err := s.GetInvoice(ctx, invoiceID); err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return notFoundf("invoice %d not found", invoiceID)
            }
            return err
        }
        existing, err := s.ListBookings(ctx, outletTableIDs, window)
        if err != nil {
            return err
        }
        excluded := ExcludedStatuses()
        for _, tableID := range outletTableIDs {
            if IsOccupied(existing, tableID, window, excluded, 0) {
                return conflict(CodeTimeslotsFull, "a selected table was booked while confirming")
            }
        }
        created = make([]model.OutletTableBooking, 0, len(outletTableIDs))
        for _, tableID := range outletTableIDs {
            b := model.OutletTableBooking{
                OutletTableID:   tableID,
                OutletInvoiceID: invoiceID,
                StartTime:       start,
                EndTime:         end,
                Status:          model.BookingStatusBooked,
            }
            if err := s.InsertBooking(ctx, &b); err != nil {
                return err
            }
            created = append(created, b)
        }
        return nil
    })
    if err != nil {
        return nil, err
    }
    return created, nil
}
