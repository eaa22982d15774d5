package model

// GroupTable is the named parent definition of tables that may be
// joined together for one booking. It is scoped to an outlet
// seating type; its concrete sized combinations are the child
// GroupPossibility rows. Rows live in `group_tables`.
//
// Fields:
//  ID                  – primary key identifier.
//  OutletSeatingTypeID – outlet/seating-type this definition belongs to.
//  Name                – display name of the combination (e.g. "Window row").
type GroupTable struct {
    ID                  uint64 // group_tables.id
    OutletSeatingTypeID uint64 // group_tables.outlet_seating_type_id
    Name                string // group_tables.name
}

// GroupPossibility is one concrete bookable combination under a
// group table. Its effective capacity is the sum of the member
// tables' capacities; within one group table no two possibilities
// may reference the same set of outlet tables. Rows live in
// `group_possibilities`.
//
// Fields:
//  ID           – primary key identifier.
//  GroupTableID – parent group table.
//  PossibilityIndex – ordering index among siblings.
type GroupPossibility struct {
    ID               uint64 // group_possibilities.id
    GroupTableID     uint64 // group_possibilities.group_table_id
    PossibilityIndex uint32 // group_possibilities.possibility_index
}

// OutletGroupTable links one outlet table into a group possibility.
// JoinIndex establishes the join order of the member within the
// combination. Rows live in `outlet_group_tables`.
type OutletGroupTable struct {
    ID                 uint64 // outlet_group_tables.id
    GroupPossibilityID uint64 // outlet_group_tables.group_possibility_id
    OutletTableID      uint64 // outlet_group_tables.outlet_table_id
    JoinIndex          uint32 // outlet_group_tables.join_index
}
