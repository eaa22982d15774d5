package repository

import (
    "context"
    "database/sql"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// SectionRepo provides read access to table sections for catalog
// browsing. Section management itself happens in the back-office
// CRUD screens, not here.
type SectionRepo struct {
    db DBTX
}

// NewSectionRepo returns a repo bound to the given database or
// transaction.
func NewSectionRepo(db DBTX) *SectionRepo { return &SectionRepo{db: db} }

// ListByOutlet returns the active sections of an outlet ordered by
// name.
func (r *SectionRepo) ListByOutlet(ctx context.Context, outletID uint64) ([]model.TableSection, error) {
    const query = `SELECT id, outlet_id, name, is_private, min_pax, max_pax, is_active
                   FROM table_sections
                   WHERE outlet_id = ? AND is_active = TRUE
                   ORDER BY name, id`
    rows, err := r.db.QueryContext(ctx, query, outletID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var sections []model.TableSection
    for rows.Next() {
        var (
            s      model.TableSection
            minPax sql.NullInt64
            maxPax sql.NullInt64
        )
        if err := rows.Scan(&s.ID, &s.OutletID, &s.Name, &s.IsPrivate,
            &minPax, &maxPax, &s.IsActive); err != nil {
            return nil, err
        }
        if minPax.Valid {
            v := uint32(minPax.Int64)
            s.MinPax = &v
        }
        if maxPax.Valid {
            v := uint32(maxPax.Int64)
            s.MaxPax = &v
        }
        sections = append(sections, s)
    }
    return sections, rows.Err()
}
