package repository

import (
    "context"
    "database/sql"

    "github.com/iliyamo/restaurant-table-reservation/internal/allocation"
    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// GroupTableRepo provides data access to group table definitions
// and their possibilities. Group tables hang off an outlet seating
// type; possibilities resolve through outlet_group_tables to the
// physical tables whose capacities the engine sums.
type GroupTableRepo struct {
    db DBTX
}

// NewGroupTableRepo returns a repo bound to the given database or
// transaction.
func NewGroupTableRepo(db DBTX) *GroupTableRepo { return &GroupTableRepo{db: db} }

// GetByID returns one group table or sql.ErrNoRows.
func (r *GroupTableRepo) GetByID(ctx context.Context, id uint64) (*model.GroupTable, error) {
    const query = `SELECT id, outlet_seating_type_id, name FROM group_tables WHERE id = ?`
    var gt model.GroupTable
    if err := r.db.QueryRowContext(ctx, query, id).Scan(&gt.ID, &gt.OutletSeatingTypeID, &gt.Name); err != nil {
        return nil, err
    }
    return &gt, nil
}

// ListPossibilities returns every possibility for the outlet (and
// seating type when given) with its members resolved: outlet table
// id, join order, joined capacity and privacy flags. Rows come back
// ordered by possibility then join index so members stay in join
// order after grouping.
func (r *GroupTableRepo) ListPossibilities(ctx context.Context, f allocation.GroupFilter) ([]allocation.Possibility, error) {
    query := `SELECT gp.id, gp.group_table_id,
                     ogt.outlet_table_id, ogt.join_index,
                     t.no_of_person, ot.is_private, ot.section_id,
                     COALESCE(ts.is_private, FALSE)
              FROM group_possibilities gp
              JOIN group_tables gt ON gt.id = gp.group_table_id
              JOIN outlet_seating_types ost ON ost.id = gt.outlet_seating_type_id
              JOIN outlet_group_tables ogt ON ogt.group_possibility_id = gp.id
              JOIN outlet_tables ot ON ot.id = ogt.outlet_table_id
              JOIN tables t ON t.id = ot.table_id
              LEFT JOIN table_sections ts ON ts.id = ot.section_id
              WHERE ost.outlet_id = ?`
    args := []interface{}{f.OutletID}
    if f.SeatingTypeID != nil {
        query += ` AND ost.seating_type_id = ?`
        args = append(args, *f.SeatingTypeID)
    }
    query += ` ORDER BY gp.id, ogt.join_index`

    rows, err := r.db.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var (
        out   []allocation.Possibility
        index = make(map[uint64]int)
    )
    for rows.Next() {
        var (
            possibilityID uint64
            groupTableID  uint64
            m             allocation.PossibilityMember
            sectionID     sql.NullInt64
        )
        if err := rows.Scan(&possibilityID, &groupTableID,
            &m.OutletTableID, &m.JoinIndex,
            &m.Capacity, &m.IsPrivate, &sectionID, &m.SectionPrivate); err != nil {
            return nil, err
        }
        if sectionID.Valid {
            v := uint64(sectionID.Int64)
            m.SectionID = &v
        }
        i, ok := index[possibilityID]
        if !ok {
            i = len(out)
            index[possibilityID] = i
            out = append(out, allocation.Possibility{ID: possibilityID, GroupTableID: groupTableID})
        }
        out[i].Members = append(out[i].Members, m)
    }
    return out, rows.Err()
}

// ListPossibilityMemberSets maps each possibility of a group table
// to its member outlet-table ids. Used for the duplicate-set check
// before inserting a new possibility.
func (r *GroupTableRepo) ListPossibilityMemberSets(ctx context.Context, groupTableID uint64) (map[uint64][]uint64, error) {
    const query = `SELECT gp.id, ogt.outlet_table_id
                   FROM group_possibilities gp
                   JOIN outlet_group_tables ogt ON ogt.group_possibility_id = gp.id
                   WHERE gp.group_table_id = ?
                   ORDER BY gp.id, ogt.join_index`
    rows, err := r.db.QueryContext(ctx, query, groupTableID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    sets := make(map[uint64][]uint64)
    for rows.Next() {
        var possibilityID, tableID uint64
        if err := rows.Scan(&possibilityID, &tableID); err != nil {
            return nil, err
        }
        sets[possibilityID] = append(sets[possibilityID], tableID)
    }
    return sets, rows.Err()
}

// InsertPossibility appends a possibility under a group table with
// the next free index and bulk-inserts its member links in join
// order. Call inside a transaction together with the duplicate-set
// check.
func (r *GroupTableRepo) InsertPossibility(ctx context.Context, groupTableID uint64, memberTableIDs []uint64) (*model.GroupPossibility, error) {
    var nextIndex uint32
    const idxQuery = `SELECT COALESCE(MAX(possibility_index), 0) + 1
                      FROM group_possibilities WHERE group_table_id = ?`
    if err := r.db.QueryRowContext(ctx, idxQuery, groupTableID).Scan(&nextIndex); err != nil {
        return nil, err
    }

    res, err := r.db.ExecContext(ctx,
        `INSERT INTO group_possibilities (group_table_id, possibility_index) VALUES (?, ?)`,
        groupTableID, nextIndex)
    if err != nil {
        return nil, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return nil, err
    }

    members := possibilityMemberRows(uint64(id), memberTableIDs)
    query := `INSERT INTO outlet_group_tables (group_possibility_id, outlet_table_id, join_index) VALUES `
    args := make([]interface{}, 0, len(members)*3)
    for i, m := range members {
        if i > 0 {
            query += ","
        }
        query += "(?, ?, ?)"
        args = append(args, m.GroupPossibilityID, m.OutletTableID, m.JoinIndex)
    }
    if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
        return nil, err
    }
    return &model.GroupPossibility{
        ID:               uint64(id),
        GroupTableID:     groupTableID,
        PossibilityIndex: nextIndex,
    }, nil
}

// possibilityMemberRows builds the member link rows for one
// possibility. Join index starts at 1 and follows the order the
// member tables were given in.
func possibilityMemberRows(possibilityID uint64, memberTableIDs []uint64) []model.OutletGroupTable {
    rows := make([]model.OutletGroupTable, len(memberTableIDs))
    for i, tableID := range memberTableIDs {
        rows[i] = model.OutletGroupTable{
            GroupPossibilityID: possibilityID,
            OutletTableID:      tableID,
            JoinIndex:          uint32(i + 1),
        }
    }
    return rows
}

// DeleteCascade removes a group table and everything under it.
// Deletion order is explicit and leaf-first to satisfy referential
// integrity without relying on database cascade rules: sequence
// rows, possibility member links, possibilities, then the group
// table itself. Call inside a transaction.
func (r *GroupTableRepo) DeleteCascade(ctx context.Context, groupTableID uint64) error {
    if _, err := r.db.ExecContext(ctx,
        `DELETE FROM group_sequence_tables WHERE group_table_id = ?`, groupTableID); err != nil {
        return err
    }
    if _, err := r.db.ExecContext(ctx,
        `DELETE ogt FROM outlet_group_tables ogt
         JOIN group_possibilities gp ON gp.id = ogt.group_possibility_id
         WHERE gp.group_table_id = ?`, groupTableID); err != nil {
        return err
    }
    if _, err := r.db.ExecContext(ctx,
        `DELETE FROM group_possibilities WHERE group_table_id = ?`, groupTableID); err != nil {
        return err
    }
    _, err := r.db.ExecContext(ctx, `DELETE FROM group_tables WHERE id = ?`, groupTableID)
    return err
}
