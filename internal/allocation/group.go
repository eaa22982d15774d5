package allocation

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// CreateGroupPossibility adds one concrete table combination under
// a group table. Members are given in join order. The duplicate
// check is order-independent: a possibility with the same member
// set, however ordered, already existing under the group table
// fails with POSSIBILITY_ALREADY_EXISTS. Check and insert run in
// one transaction.
func (e *Engine) CreateGroupPossibility(ctx context.Context, groupTableID uint64, memberTableIDs []uint64) (*model.GroupPossibility, error) {
    if groupTableID == 0 {
        return nil, invalidf("group table id is required")
    }
    if len(memberTableIDs) == 0 {
        return nil, invalidf("a possibility needs at least one member table")
    }
    seen := make(map[uint64]struct{}, len(memberTableIDs))
    for _, id := range memberTableIDs {
        if id == 0 {
            return nil, invalidf("member table ids must be positive")
        }
        if _, dup := seen[id]; dup {
            return nil, invalidf("member table %d listed twice", id)
        }
        seen[id] = struct{}{}
    }

    var created *model.GroupPossibility
    err := e.store.Atomically(ctx, func(s Store) error {
        if _, err := s.GetGroupTable(ctx, groupTableID); err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return notFoundf("group table %d not found", groupTableID)
            }
            return err
        }
        existing, err := s.ListPossibilityMemberSets(ctx, groupTableID)
        if err != nil {
            return err
        }
        for _, members := range existing {
            if sameIDSet(members, memberTableIDs) {
                return duplicate(CodePossibilityExists, "a possibility with this member set already exists")
            }
        }
        created, err = s.InsertPossibility(ctx, groupTableID, memberTableIDs)
        return err
    })
    if err != nil {
        return nil, err
    }
    return created, nil
}

// DeleteGroupTable removes a group table definition and everything
// under it. The cascade is explicit and leaf-first (sequence rows,
// possibility member links, possibilities, then the group table)
// and runs inside one transaction.
func (e *Engine) DeleteGroupTable(ctx context.Context, groupTableID uint64) error {
    if groupTableID == 0 {
        return invalidf("group table id is required")
    }
    return e.store.Atomically(ctx, func(s Store) error {
        if _, err := s.GetGroupTable(ctx, groupTableID); err != nil {
            if errors.Is(err, sql.ErrNoRows) {
                return notFoundf("group table %d not found", groupTableID)
            }
            return err
        }
        return s.DeleteGroupTableCascade(ctx, groupTableID)
    })
}

// sameIDSet reports whether a and b contain the same ids,
// regardless of order.
func sameIDSet(a, b []uint64) bool {
    if len(a) != len(b) {
        return false
    }
    set := make(map[uint64]struct{}, len(a))
    for _, id := range a {
        set[id] = struct{}{}
    }
    for _, id := range b {
        if _, ok := set[id]; !ok {
            return false
        }
    }
    return true
}
