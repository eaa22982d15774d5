package model

// TableSection is a named grouping of outlet tables, for example a
// dining hall, a terrace or a private room. Private sections carry
// capacity bounds for event booking; public ticketing availability
// never offers tables from a private section. Pricing metadata on
// sections is managed elsewhere and not loaded here.
//
// Fields:
//  ID        – primary key identifier.
//  OutletID  – outlet this section belongs to.
//  Name      – section name shown to staff.
//  IsPrivate – private room / event space flag.
//  MinPax    – minimum party size for private booking (nil if unbounded).
//  MaxPax    – maximum party size for private booking (nil if unbounded).
//  IsActive  – whether the section is in use.
type TableSection struct {
    ID        uint64  // table_sections.id
    OutletID  uint64  // table_sections.outlet_id
    Name      string  // table_sections.name
    IsPrivate bool    // table_sections.is_private
    MinPax    *uint32 // table_sections.min_pax (nullable)
    MaxPax    *uint32 // table_sections.max_pax (nullable)
    IsActive  bool    // table_sections.is_active
}
