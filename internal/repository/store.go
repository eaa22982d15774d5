// Package repository implements the allocation engine's persistence
// gateway over MySQL. Repositories run raw SQL against a DBTX bound
// either to the pool or to a transaction; Store stitches them
// together into the allocation.Gateway contract.
package repository

import (
    "context"
    "database/sql"
    "time"

    "github.com/iliyamo/restaurant-table-reservation/internal/allocation"
    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// Store implements allocation.Gateway. A Store built by NewStore
// runs against the pool; Atomically derives a transaction-bound
// copy for the duration of fn.
type Store struct {
    db        *sql.DB
    tables    *OutletTableRepo
    bookings  *BookingRepo
    invoices  *InvoiceRepo
    groups    *GroupTableRepo
    timeslots *TimeSlotRepo
}

// NewStore returns a Store over the given connection pool.
func NewStore(db *sql.DB) *Store {
    return &Store{
        db:        db,
        tables:    NewOutletTableRepo(db),
        bookings:  NewBookingRepo(db),
        invoices:  NewInvoiceRepo(db),
        groups:    NewGroupTableRepo(db),
        timeslots: NewTimeSlotRepo(db),
    }
}

// bind returns a copy of the store whose repositories run on q.
func (s *Store) bind(q DBTX) *Store {
    return &Store{
        db:        s.db,
        tables:    NewOutletTableRepo(q),
        bookings:  NewBookingRepo(q),
        invoices:  NewInvoiceRepo(q),
        groups:    NewGroupTableRepo(q),
        timeslots: NewTimeSlotRepo(q),
    }
}

// Atomically runs fn against a transaction-bound view of the store.
// The transaction uses serializable isolation so an availability
// read and the write it guards cannot interleave with a concurrent
// booking on the same table. The transaction commits only when fn
// returns nil; any error rolls everything back.
func (s *Store) Atomically(ctx context.Context, fn func(allocation.Store) error) error {
    tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
    if err != nil {
        return err
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    if err := fn(s.bind(tx)); err != nil {
        return err
    }
    if err := tx.Commit(); err != nil {
        return err
    }
    committed = true
    return nil
}

func (s *Store) ListOutletTables(ctx context.Context, f allocation.TableFilter) ([]model.OutletTable, error) {
    return s.tables.List(ctx, f)
}

func (s *Store) GetOutletTable(ctx context.Context, id uint64) (*model.OutletTable, error) {
    return s.tables.GetByID(ctx, id)
}

func (s *Store) ListBookings(ctx context.Context, outletTableIDs []uint64, w allocation.Window) ([]model.OutletTableBooking, error) {
    return s.bookings.ListForTables(ctx, outletTableIDs, w)
}

func (s *Store) ListBookingsForDay(ctx context.Context, outletTableID uint64, day time.Time) ([]model.OutletTableBooking, error) {
    return s.bookings.ListForDay(ctx, outletTableID, day)
}

func (s *Store) GetBooking(ctx context.Context, id uint64) (*model.OutletTableBooking, error) {
    return s.bookings.GetByID(ctx, id)
}

func (s *Store) InsertBooking(ctx context.Context, b *model.OutletTableBooking) error {
    return s.bookings.Insert(ctx, b)
}

func (s *Store) UpdateBookingPlacement(ctx context.Context, id, outletTableID uint64, w allocation.Window) error {
    return s.bookings.UpdatePlacement(ctx, id, outletTableID, w)
}

func (s *Store) GetInvoice(ctx context.Context, id uint64) (*model.OutletInvoice, error) {
    return s.invoices.GetByID(ctx, id)
}

func (s *Store) UpdateInvoiceSchedule(ctx context.Context, id uint64, date time.Time, timeOfDay string) error {
    return s.invoices.UpdateSchedule(ctx, id, date, timeOfDay)
}

func (s *Store) GetGroupTable(ctx context.Context, id uint64) (*model.GroupTable, error) {
    return s.groups.GetByID(ctx, id)
}

func (s *Store) ListPossibilities(ctx context.Context, f allocation.GroupFilter) ([]allocation.Possibility, error) {
    return s.groups.ListPossibilities(ctx, f)
}

func (s *Store) ListPossibilityMemberSets(ctx context.Context, groupTableID uint64) (map[uint64][]uint64, error) {
    return s.groups.ListPossibilityMemberSets(ctx, groupTableID)
}

func (s *Store) InsertPossibility(ctx context.Context, groupTableID uint64, memberTableIDs []uint64) (*model.GroupPossibility, error) {
    return s.groups.InsertPossibility(ctx, groupTableID, memberTableIDs)
}

func (s *Store) DeleteGroupTableCascade(ctx context.Context, groupTableID uint64) error {
    return s.groups.DeleteCascade(ctx, groupTableID)
}

func (s *Store) ListTimeSlots(ctx context.Context, outletID uint64, dayOfWeek int) ([]model.OutletTimeSlot, error) {
    return s.timeslots.ListForDay(ctx, outletID, dayOfWeek)
}

func (s *Store) ListTimeSlotOverrides(ctx context.Context, outletID uint64, dayOfWeek int, date time.Time) ([]model.OutletTimeSlotOverride, error) {
    return s.timeslots.ListOverridesForDate(ctx, outletID, dayOfWeek, date)
}
