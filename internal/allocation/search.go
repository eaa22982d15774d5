package allocation

import (
    "context"
    "sort"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// AvailabilityRequest describes one availability search. The window
// is outlet-local; the caller has already resolved the outlet's
// timezone. Optional fields narrow the search; Ticketing switches
// on the event-sales variant that refuses tables outside a public
// section.
type AvailabilityRequest struct {
    OutletID      uint64
    PartySize     uint32
    Window        Window
    SeatingTypeID *uint64
    SectionID     *uint64
    Ticketing     bool
}

// TableChoice is a single-table assignment: the best-fitting free
// table for the request.
type TableChoice struct {
    OutletTableID uint64 `json:"outlet_table_id"`
    TableName     string `json:"table_name"`
    Capacity      uint32 `json:"capacity"`
}

// PossibilityChoice is one feasible multi-table combination,
// members in join order.
type PossibilityChoice struct {
    PossibilityID  uint64   `json:"possibility_id"`
    GroupTableID   uint64   `json:"group_table_id"`
    Capacity       uint32   `json:"capacity"`
    OutletTableIDs []uint64 `json:"outlet_table_ids"`
}

// AvailabilityResult carries either a single table or an ordered
// list of feasible possibilities, never both, plus the meal period
// the request resolved to (nil when the outlet is closed at that
// time). The engine only reports; the caller creates the booking
// rows once a choice is committed.
type AvailabilityResult struct {
    MealPeriod    *string             `json:"meal_period"`
    Table         *TableChoice        `json:"table,omitempty"`
    Possibilities []PossibilityChoice `json:"possibilities,omitempty"`
}

// FindAvailability runs the two-stage search: single-table best fit
// first, group possibilities only when no single table can seat the
// party. It is read-only and re-reads booking state on every call,
// so repeating it with unchanged bookings returns an identical
// ordered result.
func (e *Engine) FindAvailability(ctx context.Context, req AvailabilityRequest) (*AvailabilityResult, error) {
    if req.OutletID == 0 {
        return nil, invalidf("outlet id is required")
    }
    if req.PartySize == 0 {
        return nil, invalidf("party size must be positive")
    }
    if !req.Window.End.After(req.Window.Start) {
        return nil, invalidf("window end must be after window start")
    }

    mealPeriod, err := e.ResolveMealPeriod(ctx, req.OutletID, DayOf(req.Window.Start), TimeOfDayFrom(req.Window.Start))
    if err != nil {
        return nil, err
    }

    tables, err := e.store.ListOutletTables(ctx, TableFilter{
        OutletID:       req.OutletID,
        SeatingTypeID:  req.SeatingTypeID,
        SectionID:      req.SectionID,
        IncludePrivate: false,
    })
    if err != nil {
        return nil, err
    }

    candidates := make([]model.OutletTable, 0, len(tables))
    ids := make([]uint64, 0, len(tables))
    for _, t := range tables {
        if !t.IsActive || t.IsPrivate {
            continue
        }
        if req.Ticketing && !inPublicSection(t.SectionID, t.SectionPrivate) {
            continue
        }
        candidates = append(candidates, t)
        ids = append(ids, t.ID)
    }

    var bookings []model.OutletTableBooking
    if len(ids) > 0 {
        bookings, err = e.store.ListBookings(ctx, ids, req.Window)
        if err != nil {
            return nil, err
        }
    }

    excluded := ExcludedStatuses()
    if best := pickBestTable(candidates, bookings, req, excluded); best != nil {
        return &AvailabilityResult{MealPeriod: mealPeriod, Table: best}, nil
    }

    possibilities, err := e.findPossibilities(ctx, req, excluded)
    if err != nil {
        return nil, err
    }
    if len(possibilities) == 0 {
        return nil, conflict(CodeTimeslotsFull, "no table or combination can seat the party in the requested window")
    }
    return &AvailabilityResult{MealPeriod: mealPeriod, Possibilities: possibilities}, nil
}

// pickBestTable returns the free table with the smallest sufficient
// capacity, ties broken by ascending outlet-table id, or nil when
// no single table fits.
func pickBestTable(tables []model.OutletTable, bookings []model.OutletTableBooking, req AvailabilityRequest, excluded StatusSet) *TableChoice {
    var best *model.OutletTable
    for i := range tables {
        t := &tables[i]
        if t.Capacity < req.PartySize {
            continue
        }
        if IsOccupied(bookings, t.ID, req.Window, excluded, 0) {
            continue
        }
        if best == nil || t.Capacity < best.Capacity || (t.Capacity == best.Capacity && t.ID < best.ID) {
            best = t
        }
    }
    if best == nil {
        return nil
    }
    return &TableChoice{OutletTableID: best.ID, TableName: best.TableName, Capacity: best.Capacity}
}

// findPossibilities evaluates every group possibility for the
// outlet. A possibility is feasible only when its aggregate
// capacity seats the party AND none of its member tables has an
// occupying booking in the window; one booked member excludes the
// whole combination. Feasible possibilities come back ordered by
// aggregate capacity ascending, then possibility id.
func (e *Engine) findPossibilities(ctx context.Context, req AvailabilityRequest, excluded StatusSet) ([]PossibilityChoice, error) {
    all, err := e.store.ListPossibilities(ctx, GroupFilter{OutletID: req.OutletID, SeatingTypeID: req.SeatingTypeID})
    if err != nil {
        return nil, err
    }
    if len(all) == 0 {
        return nil, nil
    }

    memberIDs := make([]uint64, 0, len(all)*2)
    seen := make(map[uint64]struct{})
    for _, p := range all {
        for _, m := range p.Members {
            if _, ok := seen[m.OutletTableID]; !ok {
                seen[m.OutletTableID] = struct{}{}
                memberIDs = append(memberIDs, m.OutletTableID)
            }
        }
    }
    bookings, err := e.store.ListBookings(ctx, memberIDs, req.Window)
    if err != nil {
        return nil, err
    }

    feasible := make([]PossibilityChoice, 0)
    for _, p := range all {
        if len(p.Members) == 0 {
            continue
        }
        var capacity uint32
        usable := true
        tableIDs := make([]uint64, 0, len(p.Members))
        for _, m := range p.Members {
            if m.IsPrivate {
                usable = false
                break
            }
            if req.Ticketing && !inPublicSection(m.SectionID, m.SectionPrivate) {
                usable = false
                break
            }
            if IsOccupied(bookings, m.OutletTableID, req.Window, excluded, 0) {
                usable = false
                break
            }
            capacity += m.Capacity
            tableIDs = append(tableIDs, m.OutletTableID)
        }
        if !usable || capacity < req.PartySize {
            continue
        }
        feasible = append(feasible, PossibilityChoice{
            PossibilityID:  p.ID,
            GroupTableID:   p.GroupTableID,
            Capacity:       capacity,
            OutletTableIDs: tableIDs,
        })
    }

    sort.Slice(feasible, func(i, j int) bool {
        if feasible[i].Capacity != feasible[j].Capacity {
            return feasible[i].Capacity < feasible[j].Capacity
        }
        return feasible[i].PossibilityID < feasible[j].PossibilityID
    })
    return feasible, nil
}

// inPublicSection reports whether a table sits in a non-private
// section. Ticketing availability refuses tables without a section
// as well as tables in private rooms.
func inPublicSection(sectionID *uint64, sectionPrivate bool) bool {
    return sectionID != nil && !sectionPrivate
}
