package allocation

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// memGateway is an in-memory Gateway for engine tests. Atomically
// runs the callback against the same state; transactional isolation
// is the real store's concern, the engine only needs the sequencing.
type memGateway struct {
	tables        []model.OutletTable
	bookings      []model.OutletTableBooking
	invoices      map[uint64]model.OutletInvoice
	groupTables   map[uint64]model.GroupTable
	possibilities []Possibility
	memberSets    map[uint64]map[uint64][]uint64 // group table -> possibility -> members
	slots         []model.OutletTimeSlot
	overrides     []model.OutletTimeSlotOverride
	nextBookingID uint64
	nextPossID    uint64
}

func newMemGateway() *memGateway {
	return &memGateway{
		invoices:      make(map[uint64]model.OutletInvoice),
		groupTables:   make(map[uint64]model.GroupTable),
		memberSets:    make(map[uint64]map[uint64][]uint64),
		nextBookingID: 100,
		nextPossID:    500,
	}
}

func (g *memGateway) ListOutletTables(_ context.Context, f TableFilter) ([]model.OutletTable, error) {
	var out []model.OutletTable
	for _, t := range g.tables {
		if t.OutletID != f.OutletID || !t.IsActive {
			continue
		}
		if !f.IncludePrivate && t.IsPrivate {
			continue
		}
		if f.SeatingTypeID != nil && t.SeatingTypeID != *f.SeatingTypeID {
			continue
		}
		if f.SectionID != nil && (t.SectionID == nil || *t.SectionID != *f.SectionID) {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (g *memGateway) GetOutletTable(_ context.Context, id uint64) (*model.OutletTable, error) {
	for i := range g.tables {
		if g.tables[i].ID == id {
			t := g.tables[i]
			return &t, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (g *memGateway) ListBookings(_ context.Context, outletTableIDs []uint64, _ Window) ([]model.OutletTableBooking, error) {
	ids := make(map[uint64]bool, len(outletTableIDs))
	for _, id := range outletTableIDs {
		ids[id] = true
	}
	var out []model.OutletTableBooking
	for _, b := range g.bookings {
		if ids[b.OutletTableID] {
			out = append(out, b)
		}
	}
	return out, nil
}

func (g *memGateway) ListBookingsForDay(_ context.Context, outletTableID uint64, day time.Time) ([]model.OutletTableBooking, error) {
	start := DayOf(day)
	end := start.Add(24 * time.Hour)
	var out []model.OutletTableBooking
	for _, b := range g.bookings {
		if b.OutletTableID == outletTableID && !b.StartTime.Before(start) && b.StartTime.Before(end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (g *memGateway) GetBooking(_ context.Context, id uint64) (*model.OutletTableBooking, error) {
	for i := range g.bookings {
		if g.bookings[i].ID == id {
			b := g.bookings[i]
			return &b, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (g *memGateway) InsertBooking(_ context.Context, b *model.OutletTableBooking) error {
	g.nextBookingID++
	b.ID = g.nextBookingID
	g.bookings = append(g.bookings, *b)
	return nil
}

func (g *memGateway) UpdateBookingPlacement(_ context.Context, id, outletTableID uint64, w Window) error {
	for i := range g.bookings {
		if g.bookings[i].ID == id {
			g.bookings[i].OutletTableID = outletTableID
			g.bookings[i].StartTime = w.Start
			g.bookings[i].EndTime = w.End
			return nil
		}
	}
	return sql.ErrNoRows
}

func (g *memGateway) GetInvoice(_ context.Context, id uint64) (*model.OutletInvoice, error) {
	inv, ok := g.invoices[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &inv, nil
}

func (g *memGateway) UpdateInvoiceSchedule(_ context.Context, id uint64, date time.Time, timeOfDay string) error {
	inv, ok := g.invoices[id]
	if !ok {
		return sql.ErrNoRows
	}
	inv.BookingDate = date
	inv.BookingTime = timeOfDay
	g.invoices[id] = inv
	return nil
}

func (g *memGateway) GetGroupTable(_ context.Context, id uint64) (*model.GroupTable, error) {
	gt, ok := g.groupTables[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &gt, nil
}

func (g *memGateway) ListPossibilities(_ context.Context, _ GroupFilter) ([]Possibility, error) {
	out := make([]Possibility, len(g.possibilities))
	copy(out, g.possibilities)
	return out, nil
}

func (g *memGateway) ListPossibilityMemberSets(_ context.Context, groupTableID uint64) (map[uint64][]uint64, error) {
	sets := make(map[uint64][]uint64)
	for id, members := range g.memberSets[groupTableID] {
		sets[id] = append([]uint64(nil), members...)
	}
	return sets, nil
}

func (g *memGateway) InsertPossibility(_ context.Context, groupTableID uint64, memberTableIDs []uint64) (*model.GroupPossibility, error) {
	g.nextPossID++
	if g.memberSets[groupTableID] == nil {
		g.memberSets[groupTableID] = make(map[uint64][]uint64)
	}
	g.memberSets[groupTableID][g.nextPossID] = append([]uint64(nil), memberTableIDs...)
	return &model.GroupPossibility{
		ID:               g.nextPossID,
		GroupTableID:     groupTableID,
		PossibilityIndex: uint32(len(g.memberSets[groupTableID])),
	}, nil
}

func (g *memGateway) DeleteGroupTableCascade(_ context.Context, groupTableID uint64) error {
	delete(g.groupTables, groupTableID)
	delete(g.memberSets, groupTableID)
	kept := g.possibilities[:0]
	for _, p := range g.possibilities {
		if p.GroupTableID != groupTableID {
			kept = append(kept, p)
		}
	}
	g.possibilities = kept
	return nil
}

func (g *memGateway) ListTimeSlots(_ context.Context, outletID uint64, dayOfWeek int) ([]model.OutletTimeSlot, error) {
	var out []model.OutletTimeSlot
	for _, s := range g.slots {
		if s.OutletID == outletID && s.DayOfWeek == dayOfWeek {
			out = append(out, s)
		}
	}
	return out, nil
}

func (g *memGateway) ListTimeSlotOverrides(_ context.Context, outletID uint64, dayOfWeek int, date time.Time) ([]model.OutletTimeSlotOverride, error) {
	var out []model.OutletTimeSlotOverride
	for _, o := range g.overrides {
		if o.OutletID != outletID || o.DayOfWeek != dayOfWeek {
			continue
		}
		if date.Before(o.EffectiveFrom) || date.After(o.EffectiveTo) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (g *memGateway) Atomically(_ context.Context, fn func(Store) error) error {
	return fn(g)
}

// at builds a local timestamp on a fixed test day.
func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 2, hour, min, 0, 0, time.UTC)
}

func window(startHour, startMin, endHour, endMin int) Window {
	return Window{Start: at(startHour, startMin), End: at(endHour, endMin)}
}

func booking(id, tableID uint64, status string, w Window) model.OutletTableBooking {
	return model.OutletTableBooking{
		ID:              id,
		OutletTableID:   tableID,
		OutletInvoiceID: 1,
		StartTime:       w.Start,
		EndTime:         w.End,
		Status:          status,
	}
}

func publicTable(id uint64, capacity uint32) model.OutletTable {
	section := uint64(10)
	return model.OutletTable{
		ID:            id,
		OutletID:      1,
		TableID:       id,
		SeatingTypeID: 1,
		SectionID:     &section,
		IsActive:      true,
		TableName:     "T" + string(rune('0'+id%10)),
		Capacity:      capacity,
	}
}
