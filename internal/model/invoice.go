package model

import "time"

// OutletInvoice is the reservation/order a table booking belongs
// to. The booking date and time here are denormalized copies of the
// booking window; moving a booking rewrites them so reporting stays
// consistent without joining bookings. Rows live in
// `outlet_invoices`.
//
// Fields:
//  ID           – primary key identifier.
//  OutletID     – outlet the reservation was made at.
//  CustomerName – free-form name captured at reservation time.
//  NoOfPerson   – party size on the invoice.
//  BookingDate  – denormalized calendar date of the booking.
//  BookingTime  – denormalized "15:04" start time of the booking.
//  MealType     – section name resolved at reservation time (nil if closed).
//  Status       – invoice lifecycle status, managed by the reservation flow.
type OutletInvoice struct {
    ID           uint64    // outlet_invoices.id
    OutletID     uint64    // outlet_invoices.outlet_id
    CustomerName string    // outlet_invoices.customer_name
    NoOfPerson   uint32    // outlet_invoices.no_of_person
    BookingDate  time.Time // outlet_invoices.booking_date
    BookingTime  string    // outlet_invoices.booking_time ("15:04")
    MealType     *string   // outlet_invoices.meal_type (nullable)
    Status       string    // outlet_invoices.status
    CreatedAt    time.Time // outlet_invoices.created_at
    UpdatedAt    time.Time // outlet_invoices.updated_at
}
