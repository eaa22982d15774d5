package repository

import (
    "context"
    "database/sql"

    "github.com/iliyamo/restaurant-table-reservation/internal/allocation"
    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// OutletTableRepo provides read access to outlet table placements.
// Every query joins the physical table row so callers receive the
// capacity and name without a second lookup, and left-joins the
// containing section for its privacy flag.
type OutletTableRepo struct {
    db DBTX
}

// NewOutletTableRepo returns a repo bound to the given database or
// transaction.
func NewOutletTableRepo(db DBTX) *OutletTableRepo { return &OutletTableRepo{db: db} }

const outletTableColumns = `ot.id, ot.outlet_id, ot.table_id, ot.seating_type_id,
       ot.seat_type_id, ot.section_id, ot.is_private, ot.pos_x, ot.pos_y,
       ot.is_active, t.name, t.no_of_person,
       COALESCE(ts.is_private, FALSE), ot.created_at, ot.updated_at`

const outletTableJoins = ` FROM outlet_tables ot
 JOIN tables t ON t.id = ot.table_id
 LEFT JOIN table_sections ts ON ts.id = ot.section_id`

// List returns active outlet tables matching the filter. Only
// tables whose physical table row is itself active are returned;
// private placements are skipped unless the filter asks for them.
func (r *OutletTableRepo) List(ctx context.Context, f allocation.TableFilter) ([]model.OutletTable, error) {
    query := `SELECT ` + outletTableColumns + outletTableJoins +
        ` WHERE ot.outlet_id = ? AND ot.is_active = TRUE AND t.is_active = TRUE`
    args := []interface{}{f.OutletID}
    if f.SeatingTypeID != nil {
        query += ` AND ot.seating_type_id = ?`
        args = append(args, *f.SeatingTypeID)
    }
    if f.SectionID != nil {
        query += ` AND ot.section_id = ?`
        args = append(args, *f.SectionID)
    }
    if !f.IncludePrivate {
        query += ` AND ot.is_private = FALSE`
    }
    query += ` ORDER BY ot.id`

    rows, err := r.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var tables []model.OutletTable
    for rows.Next() {
        t, err := scanOutletTable(rows)
        if err != nil {
            return nil, err
        }
        tables = append(tables, t)
    }
    return tables, rows.Err()
}

// GetByID returns one outlet table or sql.ErrNoRows.
func (r *OutletTableRepo) GetByID(ctx context.Context, id uint64) (*model.OutletTable, error) {
    query := `SELECT ` + outletTableColumns + outletTableJoins + ` WHERE ot.id = ?`
    row := r.db.QueryRowContext(ctx, query, id)
    t, err := scanOutletTableRow(row)
    if err != nil {
        return nil, err
    }
    return &t, nil
}

type rowScanner interface {
    Scan(dest ...interface{}) error
}

func scanInto(s rowScanner) (model.OutletTable, error) {
    var (
        t          model.OutletTable
        seatTypeID sql.NullInt64
        sectionID  sql.NullInt64
    )
    err := s.Scan(
        &t.ID, &t.OutletID, &t.TableID, &t.SeatingTypeID,
        &seatTypeID, &sectionID, &t.IsPrivate, &t.PosX, &t.PosY,
        &t.IsActive, &t.TableName, &t.Capacity,
        &t.SectionPrivate, &t.CreatedAt, &t.UpdatedAt,
    )
    if err != nil {
        return model.OutletTable{}, err
    }
    if seatTypeID.Valid {
        v := uint64(seatTypeID.Int64)
        t.SeatTypeID = &v
    }
    if sectionID.Valid {
        v := uint64(sectionID.Int64)
        t.SectionID = &v
    }
    return t, nil
}

func scanOutletTable(rows *sql.Rows) (model.OutletTable, error) { return scanInto(rows) }

func scanOutletTableRow(row *sql.Row) (model.OutletTable, error) { return scanInto(row) }
