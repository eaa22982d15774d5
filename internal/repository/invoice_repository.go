package repository

import (
    "context"
    "database/sql"
    "time"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// InvoiceRepo provides access to outlet invoices. The allocation
// engine only reads invoices and rewrites their denormalized
// booking schedule when a reservation is moved; the full invoice
// lifecycle belongs to the reservation-creation flow.
type InvoiceRepo struct {
    db DBTX
}

// NewInvoiceRepo returns a repo bound to the given database or
// transaction.
func NewInvoiceRepo(db DBTX) *InvoiceRepo { return &InvoiceRepo{db: db} }

// GetByID returns one invoice or sql.ErrNoRows.
func (r *InvoiceRepo) GetByID(ctx context.Context, id uint64) (*model.OutletInvoice, error) {
    const query = `SELECT id, outlet_id, customer_name, no_of_person,
                          booking_date, booking_time, meal_type, status, created_at, updated_at
                   FROM outlet_invoices WHERE id = ?`
    var (
        inv      model.OutletInvoice
        mealType sql.NullString
    )
    err := r.db.QueryRowContext(ctx, query, id).Scan(
        &inv.ID, &inv.OutletID, &inv.CustomerName, &inv.NoOfPerson,
        &inv.BookingDate, &inv.BookingTime, &mealType, &inv.Status,
        &inv.CreatedAt, &inv.UpdatedAt,
    )
    if err != nil {
        return nil, err
    }
    if mealType.Valid {
        v := mealType.String
        inv.MealType = &v
    }
    return &inv, nil
}

// UpdateSchedule rewrites the invoice's denormalized booking date
// and "15:04" time so reporting stays aligned with the moved
// booking.
func (r *InvoiceRepo) UpdateSchedule(ctx context.Context, id uint64, date time.Time, timeOfDay string) error {
    const query = `UPDATE outlet_invoices SET booking_date = ?, booking_time = ? WHERE id = ?`
    _, err := r.db.ExecContext(ctx, query, date.Format(dbDateLayout), timeOfDay, id)
    return err
}
