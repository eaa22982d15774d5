package repository

import (
    "context"
    "time"

    "github.com/iliyamo/restaurant-table-reservation/internal/allocation"
    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// BookingRepo provides data access to outlet_table_bookings. All
// timestamps are stored in outlet-local DATETIME columns; the
// connection is opened with parseTime so they scan into time.Time.
type BookingRepo struct {
    db DBTX
}

// NewBookingRepo returns a repo bound to the given database or
// transaction.
func NewBookingRepo(db DBTX) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = `id, outlet_table_id, outlet_invoice_id,
       booking_start_time, booking_end_time, status, created_at, updated_at`

// ListForTables returns every booking on the given tables whose
// stored window could interact with w, regardless of status. The
// allocation engine applies the status and overlap rules; the query
// only keeps the row count small.
func (r *BookingRepo) ListForTables(ctx context.Context, outletTableIDs []uint64, w allocation.Window) ([]model.OutletTableBooking, error) {
    if len(outletTableIDs) == 0 {
        return nil, nil
    }
    query := `SELECT ` + bookingColumns + `
              FROM outlet_table_bookings
              WHERE outlet_table_id IN (` + placeholders(len(outletTableIDs)) + `)
                AND booking_end_time >= ? AND booking_start_time <= ?
              ORDER BY booking_start_time, id`
    args := uint64Args(outletTableIDs)
    args = append(args, w.Start.Format(dbTimeLayout), w.End.Format(dbTimeLayout))

    rows, err := r.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var bookings []model.OutletTableBooking
    for rows.Next() {
        var b model.OutletTableBooking
        if err := rows.Scan(&b.ID, &b.OutletTableID, &b.OutletInvoiceID,
            &b.StartTime, &b.EndTime, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
            return nil, err
        }
        bookings = append(bookings, b)
    }
    return bookings, rows.Err()
}

// ListForDay returns all bookings on one table starting within the
// calendar day containing day, ordered by start time. Used to
// refresh table views after a move.
func (r *BookingRepo) ListForDay(ctx context.Context, outletTableID uint64, day time.Time) ([]model.OutletTableBooking, error) {
    start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
    end := start.Add(24 * time.Hour)
    const query = `SELECT ` + bookingColumns + `
                   FROM outlet_table_bookings
                   WHERE outlet_table_id = ?
                     AND booking_start_time >= ? AND booking_start_time < ?
                   ORDER BY booking_start_time, id`
    rows, err := r.db.QueryContext(ctx, query,
        outletTableID, start.Format(dbTimeLayout), end.Format(dbTimeLayout))
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var bookings []model.OutletTableBooking
    for rows.Next() {
        var b model.OutletTableBooking
        if err := rows.Scan(&b.ID, &b.OutletTableID, &b.OutletInvoiceID,
            &b.StartTime, &b.EndTime, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
            return nil, err
        }
        bookings = append(bookings, b)
    }
    return bookings, rows.Err()
}

// GetByID returns one booking or sql.ErrNoRows.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.OutletTableBooking, error) {
    const query = `SELECT ` + bookingColumns + ` FROM outlet_table_bookings WHERE id = ?`
    var b model.OutletTableBooking
    err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.OutletTableID,
        &b.OutletInvoiceID, &b.StartTime, &b.EndTime, &b.Status, &b.CreatedAt, &b.UpdatedAt)
    if err != nil {
        return nil, err
    }
    return &b, nil
}

// Insert creates a booking row and populates the generated ID.
func (r *BookingRepo) Insert(ctx context.Context, b *model.OutletTableBooking) error {
    const query = `INSERT INTO outlet_table_bookings
                   (outlet_table_id, outlet_invoice_id, booking_start_time, booking_end_time, status)
                   VALUES (?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, query, b.OutletTableID, b.OutletInvoiceID,
        b.StartTime.Format(dbTimeLayout), b.EndTime.Format(dbTimeLayout), b.Status)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    b.ID = uint64(id)
    return nil
}

// UpdatePlacement rewrites a booking's table and window. The status
// is left untouched; moving a reservation does not change its
// lifecycle state.
func (r *BookingRepo) UpdatePlacement(ctx context.Context, id, outletTableID uint64, w allocation.Window) error {
    const query = `UPDATE outlet_table_bookings
                   SET outlet_table_id = ?, booking_start_time = ?, booking_end_time = ?
                   WHERE id = ?`
    _, err := r.db.ExecContext(ctx, query, outletTableID,
        w.Start.Format(dbTimeLayout), w.End.Format(dbTimeLayout), id)
    return err
}
