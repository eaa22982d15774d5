package model

import "time"

// Booking statuses as stored in outlet_table_bookings.status.
// CANCELLED, NOSHOW and LEFT are the only statuses that release a
// table's time slot; every other status (POSTPONED, SEATED and
// ERROR included) still occupies it.
const (
    BookingStatusBooked    = "BOOKED"
    BookingStatusConfirmed = "CONFIRMED"
    BookingStatusPostponed = "POSTPONED"
    BookingStatusCancelled = "CANCELLED"
    BookingStatusNoShow    = "NOSHOW"
    BookingStatusSeated    = "SEATED"
    BookingStatusLeft      = "LEFT"
    BookingStatusError     = "ERROR"
)

// OutletTableBooking is an occupancy record tying a reservation
// invoice to one outlet table for a time window. It is created when
// an invoice is confirmed for a table, overwritten in place when a
// reservation is moved, and logically retired when its status
// becomes CANCELLED, NOSHOW or LEFT.
//
// Fields:
//  ID              – primary key identifier.
//  OutletTableID   – table being occupied.
//  OutletInvoiceID – owning reservation invoice.
//  StartTime       – start of the occupied window (outlet-local).
//  EndTime         – end of the occupied window (outlet-local).
//  Status          – one of the BookingStatus constants above.
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type OutletTableBooking struct {
    ID              uint64    // outlet_table_bookings.id
    OutletTableID   uint64    // outlet_table_bookings.outlet_table_id
    OutletInvoiceID uint64    // outlet_table_bookings.outlet_invoice_id
    StartTime       time.Time // outlet_table_bookings.booking_start_time
    EndTime         time.Time // outlet_table_bookings.booking_end_time
    Status          string    // outlet_table_bookings.status
    CreatedAt       time.Time // outlet_table_bookings.created_at
    UpdatedAt       time.Time // outlet_table_bookings.updated_at
}
