package allocation

import (
	"context"
	"testing"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

func moveGateway() *memGateway {
	g := newMemGateway()
	g.tables = []model.OutletTable{publicTable(1, 4), publicTable(2, 4)}
	g.bookings = []model.OutletTableBooking{
		booking(7, 1, model.BookingStatusBooked, window(18, 0, 20, 0)),
	}
	g.invoices[1] = model.OutletInvoice{
		ID: 1, OutletID: 1, CustomerName: "Diaz", NoOfPerson: 4,
		BookingDate: DayOf(at(18, 0)), BookingTime: "18:00",
		Status: model.BookingStatusBooked,
	}
	return g
}

func TestMoveBookingSuccess(t *testing.T) {
	g := moveGateway()
	e := New(g)

	res, err := e.MoveBooking(context.Background(), 7, 2, at(19, 0), at(21, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Booking.OutletTableID != 2 {
		t.Errorf("booking table = %d, want 2", res.Booking.OutletTableID)
	}
	if !res.Booking.StartTime.Equal(at(19, 0)) || !res.Booking.EndTime.Equal(at(21, 0)) {
		t.Errorf("booking window not rewritten: %v..%v", res.Booking.StartTime, res.Booking.EndTime)
	}
	if res.Invoice.BookingTime != "19:00" {
		t.Errorf("invoice time = %q, want 19:00", res.Invoice.BookingTime)
	}
	if !res.Invoice.BookingDate.Equal(DayOf(at(19, 0))) {
		t.Errorf("invoice date = %v, want %v", res.Invoice.BookingDate, DayOf(at(19, 0)))
	}

	// The stored row moved too.
	stored, err := g.GetBooking(context.Background(), 7)
	if err != nil {
		t.Fatalf("stored booking missing: %v", err)
	}
	if stored.OutletTableID != 2 {
		t.Errorf("stored booking table = %d, want 2", stored.OutletTableID)
	}

	if res.Origin.OutletTableID != 1 || len(res.Origin.Bookings) != 0 {
		t.Errorf("origin day view should be empty after the move, got %+v", res.Origin)
	}
	if res.Destination.OutletTableID != 2 || len(res.Destination.Bookings) != 1 {
		t.Errorf("destination day view should hold the moved booking, got %+v", res.Destination)
	}
}

func TestMoveBookingOccupiedDestination(t *testing.T) {
	g := moveGateway()
	g.bookings = append(g.bookings,
		booking(8, 2, model.BookingStatusBooked, window(19, 0, 21, 0)))
	e := New(g)

	_, err := e.MoveBooking(context.Background(), 7, 2, at(19, 0), at(21, 0))
	engineErr, ok := As(err)
	if !ok || engineErr.Kind != KindConflict || engineErr.Code != CodeInvalidMove {
		t.Fatalf("expected %s conflict, got %v", CodeInvalidMove, err)
	}

	// The booking must be untouched.
	stored, _ := g.GetBooking(context.Background(), 7)
	if stored.OutletTableID != 1 || !stored.StartTime.Equal(at(18, 0)) {
		t.Fatalf("failed move must leave the booking unchanged, got %+v", stored)
	}
}

func TestMoveBookingFreedDestinationDoesNotBlock(t *testing.T) {
	g := moveGateway()
	g.bookings = append(g.bookings,
		booking(8, 2, model.BookingStatusCancelled, window(19, 0, 21, 0)))
	e := New(g)

	if _, err := e.MoveBooking(context.Background(), 7, 2, at(19, 0), at(21, 0)); err != nil {
		t.Fatalf("cancelled booking on destination must not block the move: %v", err)
	}
}

func TestMoveBookingSelfExclusion(t *testing.T) {
	// Re-timing a booking on its own table: the only overlapping
	// booking is the one being moved, so the move succeeds.
	g := moveGateway()
	e := New(g)

	res, err := e.MoveBooking(context.Background(), 7, 1, at(18, 30), at(20, 30))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Booking.OutletTableID != 1 {
		t.Errorf("booking should stay on table 1, got %d", res.Booking.OutletTableID)
	}
}

func TestMoveBookingNotFound(t *testing.T) {
	e := New(moveGateway())
	_, err := e.MoveBooking(context.Background(), 99, 2, at(19, 0), at(21, 0))
	engineErr, ok := As(err)
	if !ok || engineErr.Kind != KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestMoveBookingInactiveDestination(t *testing.T) {
	g := moveGateway()
	g.tables[1].IsActive = false
	e := New(g)

	_, err := e.MoveBooking(context.Background(), 7, 2, at(19, 0), at(21, 0))
	engineErr, ok := As(err)
	if !ok || engineErr.Kind != KindNotFound {
		t.Fatalf("expected not-found error for inactive destination, got %v", err)
	}
}

func TestMoveBookingInvalidWindow(t *testing.T) {
	e := New(moveGateway())
	_, err := e.MoveBooking(context.Background(), 7, 2, at(21, 0), at(19, 0))
	engineErr, ok := As(err)
	if !ok || engineErr.Kind != KindInvalid {
		t.Fatalf("expected invalid-input error, got %v", err)
	}
}
