package model

// SeatingType is a categorical tag on outlet tables (e.g. indoor,
// outdoor, terrace). It participates in availability search only as
// a filter, never in capacity math. Rows live in `seating_types`.
type SeatingType struct {
    ID       uint64 // seating_types.id
    Name     string // seating_types.name
    IsActive bool   // seating_types.is_active
}

// SeatType is a finer-grained tag on outlet tables (e.g. booth,
// bar stool). Like SeatingType it is filter-only. Rows live in
// `seat_types`.
type SeatType struct {
    ID       uint64 // seat_types.id
    Name     string // seat_types.name
    IsActive bool   // seat_types.is_active
}

// OutletSeatingType associates a seating type with an outlet.
// Group tables are defined per association, so the allocation
// engine resolves group definitions through this link. Rows live
// in `outlet_seating_types`.
type OutletSeatingType struct {
    ID            uint64 // outlet_seating_types.id
    OutletID      uint64 // outlet_seating_types.outlet_id
    SeatingTypeID uint64 // outlet_seating_types.seating_type_id
}
