package queue

// BookingMovedEvent is published after a booking has been relocated to a
// different table or time window. It carries enough information for
// downstream consumers to log, notify floor staff, or feed analytics
// without querying the primary database. EventID identifies one move so
// consumers can deduplicate broker redeliveries.
type BookingMovedEvent struct {
	EventID     string `json:"event_id"`
	BookingID   uint64 `json:"booking_id"`
	InvoiceID   uint64 `json:"invoice_id"`
	OutletID    uint64 `json:"outlet_id"`
	FromTableID uint64 `json:"from_table_id"`
	ToTableID   uint64 `json:"to_table_id"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at"`
	MovedAt     string `json:"moved_at"`
}
