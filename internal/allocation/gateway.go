package allocation

import (
    "context"
    "time"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// Window is a booking time window in outlet-local time.
type Window struct {
    Start time.Time
    End   time.Time
}

// TableFilter narrows the outlet tables a search considers. A nil
// optional field means "no filter". Each search variant sets only
// the named fields it needs instead of passing one polymorphic
// query object around.
type TableFilter struct {
    OutletID       uint64
    SeatingTypeID  *uint64 // restrict to one seating type
    SectionID      *uint64 // restrict to one table section
    IncludePrivate bool    // private-room search only
}

// GroupFilter narrows the group possibilities a search considers.
type GroupFilter struct {
    OutletID      uint64
    SeatingTypeID *uint64
}

// PossibilityMember is one outlet table inside a group possibility,
// with the joined capacity and privacy data the engine needs to
// judge feasibility without further lookups.
type PossibilityMember struct {
    OutletTableID  uint64
    JoinIndex      uint32
    Capacity       uint32
    IsPrivate      bool
    SectionID      *uint64
    SectionPrivate bool
}

// Possibility is a group possibility with its members resolved, as
// returned by the persistence gateway. Members are ordered by join
// index.
type Possibility struct {
    ID           uint64
    GroupTableID uint64
    Members      []PossibilityMember
}

// Store is the read/write surface the engine needs from the
// persistence layer. Implementations must not cache booking state:
// every availability search re-reads it.
type Store interface {
    // ListOutletTables returns active outlet tables matching f,
    // with capacity and section privacy joined in.
    ListOutletTables(ctx context.Context, f TableFilter) ([]model.OutletTable, error)
    // GetOutletTable returns one outlet table or sql.ErrNoRows.
    GetOutletTable(ctx context.Context, id uint64) (*model.OutletTable, error)

    // ListBookings returns every booking on the given tables whose
    // stored window could interact with w, regardless of status.
    // The engine applies the status and overlap rules itself.
    ListBookings(ctx context.Context, outletTableIDs []uint64, w Window) ([]model.OutletTableBooking, error)
    // ListBookingsForDay returns all bookings on one table for the
    // calendar day containing day, ordered by start time.
    ListBookingsForDay(ctx context.Context, outletTableID uint64, day time.Time) ([]model.OutletTableBooking, error)
    // GetBooking returns one booking or sql.ErrNoRows.
    GetBooking(ctx context.Context, id uint64) (*model.OutletTableBooking, error)
    // InsertBooking creates a booking row and populates its ID.
    InsertBooking(ctx context.Context, b *model.OutletTableBooking) error
    // UpdateBookingPlacement rewrites a booking's table and window.
    UpdateBookingPlacement(ctx context.Context, id, outletTableID uint64, w Window) error

    // GetInvoice returns one invoice or sql.ErrNoRows.
    GetInvoice(ctx context.Context, id uint64) (*model.OutletInvoice, error)
    // UpdateInvoiceSchedule rewrites the invoice's denormalized
    // booking date and "15:04" time.
    UpdateInvoiceSchedule(ctx context.Context, id uint64, date time.Time, timeOfDay string) error

    // GetGroupTable returns one group table or sql.ErrNoRows.
    GetGroupTable(ctx context.Context, id uint64) (*model.GroupTable, error)
    // ListPossibilities returns possibilities with resolved members
    // for the outlet (and seating type when given).
    ListPossibilities(ctx context.Context, f GroupFilter) ([]Possibility, error)
    // ListPossibilityMemberSets maps possibility id to its member
    // outlet-table ids for one group table.
    ListPossibilityMemberSets(ctx context.Context, groupTableID uint64) (map[uint64][]uint64, error)
    // InsertPossibility appends a possibility with the given members
    // in order and returns the created row.
    InsertPossibility(ctx context.Context, groupTableID uint64, memberTableIDs []uint64) (*model.GroupPossibility, error)
    // DeleteGroupTableCascade removes a group table and all
    // dependent rows leaf-first: sequence rows, possibility member
    // links, possibilities, then the group table itself.
    DeleteGroupTableCascade(ctx context.Context, groupTableID uint64) error

    // ListTimeSlots returns the base weekly slots of an outlet for
    // one day of week.
    ListTimeSlots(ctx context.Context, outletID uint64, dayOfWeek int) ([]model.OutletTimeSlot, error)
    // ListTimeSlotOverrides returns the overrides for one day of
    // week whose effective range contains date.
    ListTimeSlotOverrides(ctx context.Context, outletID uint64, dayOfWeek int, date time.Time) ([]model.OutletTimeSlotOverride, error)
}

// Gateway is the full persistence contract: the Store surface plus
// a transactional scope. Atomically must give fn a Store whose
// reads and writes commit or roll back as one unit, so a conflict
// check and the mutation it guards can never interleave with a
// concurrent booking on the same table.
type Gateway interface {
    Store
    Atomically(ctx context.Context, fn func(Store) error) error
}

// Engine exposes the caller-facing operations over a Gateway. It
// holds no other state and performs no locking of its own.
type Engine struct {
    store Gateway
}

// New returns an Engine bound to the given gateway.
func New(store Gateway) *Engine {
    if store == nil {
        panic("nil gateway passed to allocation.New")
    }
    return &Engine{store: store}
}
