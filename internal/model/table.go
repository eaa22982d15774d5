package model

import "time"

// Table describes a physical table independent of where it is
// placed. Capacity lives here; placement, seating type and privacy
// live on OutletTable. This struct corresponds to a row in the
// `tables` table.
//
// Fields:
//  ID         – primary key identifier.
//  Name       – display name of the table (e.g. "T12").
//  NoOfPerson – number of guests the table seats.
//  IsActive   – whether the table may be offered at all.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Table struct {
    ID         uint64    // tables.id
    Name       string    // tables.name
    NoOfPerson uint32    // tables.no_of_person
    IsActive   bool      // tables.is_active
    CreatedAt  time.Time // tables.created_at
    UpdatedAt  time.Time // tables.updated_at
}

// OutletTable places a Table at a specific outlet under a seating
// type. Private tables are reserved for private-room and event
// bookings and are skipped by the normal availability search. The
// x/y position only drives floor-plan UIs.
//
// Capacity and TableName are denormalized from the joined Table row
// by the repository so the allocation engine never needs a second
// lookup.
//
// Fields:
//  ID             – primary key identifier.
//  OutletID       – outlet this placement belongs to.
//  TableID        – physical table being placed.
//  SeatingTypeID  – seating type of this placement (indoor, bar, ...).
//  SeatTypeID     – seat type of this placement (nil if untyped).
//  SectionID      – containing table section (nil when unsectioned).
//  IsPrivate      – excluded from public availability when true.
//  PosX, PosY     – floor-plan coordinates.
//  IsActive       – whether this placement is bookable.
//  TableName      – joined tables.name.
//  Capacity       – joined tables.no_of_person.
//  SectionPrivate – joined table_sections.is_private (false when no section).
type OutletTable struct {
    ID             uint64    // outlet_tables.id
    OutletID       uint64    // outlet_tables.outlet_id
    TableID        uint64    // outlet_tables.table_id
    SeatingTypeID  uint64    // outlet_tables.seating_type_id
    SeatTypeID     *uint64   // outlet_tables.seat_type_id (nullable)
    SectionID      *uint64   // outlet_tables.section_id (nullable)
    IsPrivate      bool      // outlet_tables.is_private
    PosX           float64   // outlet_tables.pos_x
    PosY           float64   // outlet_tables.pos_y
    IsActive       bool      // outlet_tables.is_active
    TableName      string    // joined from tables.name
    Capacity       uint32    // joined from tables.no_of_person
    SectionPrivate bool      // joined from table_sections.is_private
    CreatedAt      time.Time // outlet_tables.created_at
    UpdatedAt      time.Time // outlet_tables.updated_at
}
