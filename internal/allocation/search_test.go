package allocation

import (
	"context"
	"reflect"
	"testing"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

func searchGateway() *memGateway {
	g := newMemGateway()
	g.tables = []model.OutletTable{
		publicTable(1, 2),
		publicTable(2, 4),
		publicTable(3, 6),
		publicTable(4, 8),
	}
	return g
}

func request(party uint32) AvailabilityRequest {
	return AvailabilityRequest{OutletID: 1, PartySize: party, Window: window(19, 0, 21, 0)}
}

func TestFindAvailabilityBestFit(t *testing.T) {
	e := New(searchGateway())
	res, err := e.FindAvailability(context.Background(), request(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Table == nil {
		t.Fatal("expected a single-table result")
	}
	if res.Table.OutletTableID != 3 || res.Table.Capacity != 6 {
		t.Errorf("best fit for party 5 should be table 3 (capacity 6), got table %d (capacity %d)",
			res.Table.OutletTableID, res.Table.Capacity)
	}
	if len(res.Possibilities) != 0 {
		t.Error("possibilities must be empty when a single table fits")
	}
}

func TestFindAvailabilityTieBreakLowerID(t *testing.T) {
	g := newMemGateway()
	g.tables = []model.OutletTable{publicTable(7, 4), publicTable(2, 4)}
	e := New(g)

	res, err := e.FindAvailability(context.Background(), request(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Table == nil || res.Table.OutletTableID != 2 {
		t.Fatalf("equal capacities must resolve to the lower id, got %+v", res.Table)
	}
}

func TestFindAvailabilitySkipsOccupiedTable(t *testing.T) {
	g := searchGateway()
	g.bookings = []model.OutletTableBooking{
		booking(1, 3, model.BookingStatusBooked, window(19, 0, 21, 0)),
	}
	e := New(g)

	res, err := e.FindAvailability(context.Background(), request(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Table == nil || res.Table.OutletTableID != 4 {
		t.Fatalf("occupied table 3 must be skipped in favor of table 4, got %+v", res.Table)
	}
}

func TestFindAvailabilityCancelledBookingDoesNotBlock(t *testing.T) {
	g := searchGateway()
	g.bookings = []model.OutletTableBooking{
		booking(1, 3, model.BookingStatusCancelled, window(19, 0, 21, 0)),
	}
	e := New(g)

	res, err := e.FindAvailability(context.Background(), request(5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Table == nil || res.Table.OutletTableID != 3 {
		t.Fatalf("cancelled booking must not block table 3, got %+v", res.Table)
	}
}

func groupGateway() *memGateway {
	g := searchGateway()
	section := uint64(10)
	member := func(tableID uint64, join uint32, capacity uint32) PossibilityMember {
		return PossibilityMember{OutletTableID: tableID, JoinIndex: join, Capacity: capacity, SectionID: &section}
	}
	g.possibilities = []Possibility{
		{ID: 501, GroupTableID: 20, Members: []PossibilityMember{member(3, 1, 6), member(4, 2, 8)}},  // cap 14
		{ID: 502, GroupTableID: 20, Members: []PossibilityMember{member(1, 1, 2), member(4, 2, 8)}},  // cap 10
		{ID: 503, GroupTableID: 20, Members: []PossibilityMember{member(2, 1, 4), member(4, 2, 8)}},  // cap 12
	}
	return g
}

func TestFindAvailabilityGroupFallbackOrdering(t *testing.T) {
	e := New(groupGateway())

	// Party 10 outgrows every single table (max 8), so the search
	// falls back to group possibilities.
	res, err := e.FindAvailability(context.Background(), request(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Table != nil {
		t.Fatal("no single table seats 10; result must carry possibilities only")
	}
	var ids []uint64
	for _, p := range res.Possibilities {
		ids = append(ids, p.PossibilityID)
	}
	// Ordered by aggregate capacity ascending: 10, 12, 14.
	want := []uint64{502, 503, 501}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("possibility order = %v, want %v", ids, want)
	}
}

func TestFindAvailabilityBookedMemberExcludesWholeCombination(t *testing.T) {
	g := groupGateway()
	// Table 1 is a member of possibility 502 only.
	g.bookings = []model.OutletTableBooking{
		booking(1, 1, model.BookingStatusBooked, window(19, 0, 21, 0)),
	}
	e := New(g)

	res, err := e.FindAvailability(context.Background(), request(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range res.Possibilities {
		if p.PossibilityID == 502 {
			t.Fatal("possibility with a booked member must be excluded wholesale")
		}
	}
	if len(res.Possibilities) != 2 {
		t.Fatalf("expected 2 remaining possibilities, got %d", len(res.Possibilities))
	}
}

func TestFindAvailabilityIdempotent(t *testing.T) {
	e := New(groupGateway())
	first, err := e.FindAvailability(context.Background(), request(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := e.FindAvailability(context.Background(), request(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatal("repeated search with unchanged bookings must return identical results")
	}
}

func TestFindAvailabilityNothingFits(t *testing.T) {
	g := searchGateway()
	e := New(g)

	_, err := e.FindAvailability(context.Background(), request(30))
	engineErr, ok := As(err)
	if !ok {
		t.Fatalf("expected engine error, got %v", err)
	}
	if engineErr.Kind != KindConflict || engineErr.Code != CodeTimeslotsFull {
		t.Fatalf("expected %s conflict, got kind=%d code=%q", CodeTimeslotsFull, engineErr.Kind, engineErr.Code)
	}
}

func TestFindAvailabilityTicketingRequiresPublicSection(t *testing.T) {
	g := newMemGateway()
	noSection := publicTable(1, 6)
	noSection.SectionID = nil
	privateSection := publicTable(2, 6)
	privateSection.SectionPrivate = true
	public := publicTable(3, 6)
	g.tables = []model.OutletTable{noSection, privateSection, public}
	e := New(g)

	req := request(4)
	req.Ticketing = true
	res, err := e.FindAvailability(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Table == nil || res.Table.OutletTableID != 3 {
		t.Fatalf("ticketing search must only offer tables in public sections, got %+v", res.Table)
	}
}

func TestFindAvailabilityValidation(t *testing.T) {
	e := New(searchGateway())

	cases := []struct {
		name string
		req  AvailabilityRequest
	}{
		{"missing outlet", AvailabilityRequest{PartySize: 2, Window: window(19, 0, 21, 0)}},
		{"zero party", AvailabilityRequest{OutletID: 1, Window: window(19, 0, 21, 0)}},
		{"inverted window", AvailabilityRequest{OutletID: 1, PartySize: 2, Window: window(21, 0, 19, 0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.FindAvailability(context.Background(), tc.req)
			engineErr, ok := As(err)
			if !ok || engineErr.Kind != KindInvalid {
				t.Fatalf("expected invalid-input error, got %v", err)
			}
		})
	}
}
