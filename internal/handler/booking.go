package handler

import (
    "log"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/restaurant-table-reservation/internal/queue"
    "github.com/iliyamo/restaurant-table-reservation/internal/service"
)

// ConfirmBooking handles POST /v1/bookings. It creates the
// occupancy rows for a committed availability choice: one booking
// per selected table, all inside one transaction together with a
// final availability re-check. A table booked in the meantime fails
// the whole request with 409; no partial multi-table booking is
// ever left behind.
func (h *AllocationHandler) ConfirmBooking(c echo.Context) error {
    var body struct {
        InvoiceID      uint64   `json:"invoice_id"`
        OutletTableIDs []uint64 `json:"outlet_table_ids"`
        Date           string   `json:"date"`
        StartTime      string   `json:"start_time"`
        EndTime        string   `json:"end_time"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    window, err := parseWindow(body.Date, body.StartTime, body.EndTime)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    bookings, err := h.Engine.ConfirmBooking(c.Request().Context(),
        body.InvoiceID, body.OutletTableIDs, window.Start, window.End)
    if err != nil {
        return respondEngineError(c, err)
    }
    return c.JSON(http.StatusCreated, echo.Map{"bookings": bookings})
}

// MoveBooking handles POST /v1/bookings/:id/move. It relocates a
// booking to another table and window after conflict-checking the
// destination inside the same transaction as the update. On success
// it returns the rewritten booking plus refreshed same-day views of
// the origin and destination tables, and publishes a booking.moved
// event; publish failures are logged and never fail the move.
func (h *AllocationHandler) MoveBooking(c echo.Context) error {
    bookingID, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }
    var body struct {
        DestinationTableID uint64 `json:"destination_table_id"`
        Date               string `json:"date"`
        StartTime          string `json:"start_time"`
        EndTime            string `json:"end_time"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    window, err := parseWindow(body.Date, body.StartTime, body.EndTime)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    result, err := h.Engine.MoveBooking(c.Request().Context(),
        bookingID, body.DestinationTableID, window.Start, window.End)
    if err != nil {
        return respondEngineError(c, err)
    }

    ev := queue.BookingMovedEvent{
        BookingID:   result.Booking.ID,
        InvoiceID:   result.Invoice.ID,
        OutletID:    result.Invoice.OutletID,
        FromTableID: result.Origin.OutletTableID,
        ToTableID:   result.Destination.OutletTableID,
        StartsAt:    result.Booking.StartTime.Format(time.RFC3339),
        EndsAt:      result.Booking.EndTime.Format(time.RFC3339),
        MovedAt:     time.Now().UTC().Format(time.RFC3339),
    }
    if err := service.PublishBookingMoved(c.Request().Context(), ev); err != nil {
        log.Printf("booking-move: event publish failed: %v", err)
    }
    return c.JSON(http.StatusOK, result)
}
