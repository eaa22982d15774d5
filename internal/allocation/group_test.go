package allocation

import (
	"context"
	"testing"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

func groupDefGateway() *memGateway {
	g := newMemGateway()
	g.groupTables[20] = model.GroupTable{ID: 20, OutletSeatingTypeID: 1, Name: "Window row"}
	return g
}

func TestCreateGroupPossibility(t *testing.T) {
	g := groupDefGateway()
	e := New(g)

	created, err := e.CreateGroupPossibility(context.Background(), 20, []uint64{3, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.GroupTableID != 20 || created.PossibilityIndex != 1 {
		t.Fatalf("unexpected possibility %+v", created)
	}

	second, err := e.CreateGroupPossibility(context.Background(), 20, []uint64{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.PossibilityIndex != 2 {
		t.Fatalf("sibling index should increment, got %d", second.PossibilityIndex)
	}
}

func TestCreateGroupPossibilityDuplicateSet(t *testing.T) {
	g := groupDefGateway()
	e := New(g)

	if _, err := e.CreateGroupPossibility(context.Background(), 20, []uint64{3, 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Same members in reverse order: still a duplicate.
	_, err := e.CreateGroupPossibility(context.Background(), 20, []uint64{4, 3})
	engineErr, ok := As(err)
	if !ok || engineErr.Kind != KindDuplicate || engineErr.Code != CodePossibilityExists {
		t.Fatalf("expected %s, got %v", CodePossibilityExists, err)
	}

	// A different set under the same group table is fine.
	if _, err := e.CreateGroupPossibility(context.Background(), 20, []uint64{3, 4, 5}); err != nil {
		t.Fatalf("superset is a distinct possibility: %v", err)
	}
}

func TestCreateGroupPossibilityValidation(t *testing.T) {
	e := New(groupDefGateway())

	cases := []struct {
		name    string
		group   uint64
		members []uint64
	}{
		{"missing group id", 0, []uint64{1, 2}},
		{"no members", 20, nil},
		{"zero member id", 20, []uint64{1, 0}},
		{"member listed twice", 20, []uint64{1, 2, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.CreateGroupPossibility(context.Background(), tc.group, tc.members)
			engineErr, ok := As(err)
			if !ok || engineErr.Kind != KindInvalid {
				t.Fatalf("expected invalid-input error, got %v", err)
			}
		})
	}
}

func TestCreateGroupPossibilityUnknownGroup(t *testing.T) {
	e := New(groupDefGateway())
	_, err := e.CreateGroupPossibility(context.Background(), 99, []uint64{1, 2})
	engineErr, ok := As(err)
	if !ok || engineErr.Kind != KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestDeleteGroupTable(t *testing.T) {
	g := groupDefGateway()
	e := New(g)

	if _, err := e.CreateGroupPossibility(context.Background(), 20, []uint64{3, 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.DeleteGroupTable(context.Background(), 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := g.groupTables[20]; ok {
		t.Fatal("group table should be gone")
	}
	if len(g.memberSets[20]) != 0 {
		t.Fatal("possibilities under the group table should be gone")
	}

	// Deleting again reports not found.
	err := e.DeleteGroupTable(context.Background(), 20)
	engineErr, ok := As(err)
	if !ok || engineErr.Kind != KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
