package allocation

import (
	"context"
	"testing"
	"time"

	"github.com/iliyamo/restaurant-table-reservation/internal/model"
)

// 2026-03-02 is a Monday.
var monday = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

func scheduleGateway() *memGateway {
	g := newMemGateway()
	dow := int(monday.Weekday())
	g.slots = []model.OutletTimeSlot{
		{ID: 1, OutletID: 1, DayOfWeek: dow, SectionName: "Lunch", OpeningTime: "11:00", ClosingTime: "15:00"},
		{ID: 2, OutletID: 1, DayOfWeek: dow, SectionName: "Dinner", OpeningTime: "18:00", ClosingTime: "22:00"},
	}
	return g
}

func mustParseTime(t *testing.T, s string) TimeOfDay {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return tod
}

func TestResolveMealPeriodBaseSchedule(t *testing.T) {
	e := New(scheduleGateway())

	got, err := e.ResolveMealPeriod(context.Background(), 1, monday, mustParseTime(t, "12:30"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != "Lunch" {
		t.Fatalf("12:30 should resolve to Lunch, got %v", got)
	}
}

func TestResolveMealPeriodClosedGap(t *testing.T) {
	e := New(scheduleGateway())

	got, err := e.ResolveMealPeriod(context.Background(), 1, monday, mustParseTime(t, "16:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("16:00 falls between services, want nil, got %q", *got)
	}
}

func TestResolveMealPeriodClosingBoundary(t *testing.T) {
	// Ranges are half-open: exactly 15:00 is no longer Lunch.
	e := New(scheduleGateway())

	got, err := e.ResolveMealPeriod(context.Background(), 1, monday, mustParseTime(t, "15:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("15:00 is the exclusive closing time, want nil, got %q", *got)
	}

	got, err = e.ResolveMealPeriod(context.Background(), 1, monday, mustParseTime(t, "11:00"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != "Lunch" {
		t.Fatalf("11:00 is the inclusive opening time, want Lunch, got %v", got)
	}
}

func TestResolveMealPeriodOverridePrecedence(t *testing.T) {
	g := scheduleGateway()
	g.overrides = []model.OutletTimeSlotOverride{{
		ID: 10, OutletID: 1, DayOfWeek: int(monday.Weekday()),
		SectionName: "Brunch", OpeningTime: "10:00", ClosingTime: "14:00",
		EffectiveFrom: monday, EffectiveTo: monday.AddDate(0, 0, 6),
	}}
	e := New(g)

	// 13:30 falls inside both the Brunch override and the base Lunch
	// slot; the override wins.
	got, err := e.ResolveMealPeriod(context.Background(), 1, monday, mustParseTime(t, "13:30"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != "Brunch" {
		t.Fatalf("override must take precedence, want Brunch, got %v", got)
	}

	// 14:30 is past the override but still in base Lunch.
	got, err = e.ResolveMealPeriod(context.Background(), 1, monday, mustParseTime(t, "14:30"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != "Lunch" {
		t.Fatalf("base slot still applies outside the override range, got %v", got)
	}
}

func TestResolveMealPeriodOverrideOutsideEffectiveRange(t *testing.T) {
	g := scheduleGateway()
	g.overrides = []model.OutletTimeSlotOverride{{
		ID: 10, OutletID: 1, DayOfWeek: int(monday.Weekday()),
		SectionName: "Brunch", OpeningTime: "10:00", ClosingTime: "14:00",
		EffectiveFrom: monday.AddDate(0, 1, 0), EffectiveTo: monday.AddDate(0, 2, 0),
	}}
	e := New(g)

	got, err := e.ResolveMealPeriod(context.Background(), 1, monday, mustParseTime(t, "13:30"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || *got != "Lunch" {
		t.Fatalf("an override effective next month must not apply today, got %v", got)
	}
}

func TestResolveMealPeriodOtherDayOfWeek(t *testing.T) {
	e := New(scheduleGateway())

	tuesday := monday.AddDate(0, 0, 1)
	got, err := e.ResolveMealPeriod(context.Background(), 1, tuesday, mustParseTime(t, "12:30"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("Monday slots must not apply on Tuesday, got %q", *got)
	}
}

func TestResolveMealPeriodSkipsMalformedRows(t *testing.T) {
	g := scheduleGateway()
	g.slots = append(g.slots, model.OutletTimeSlot{
		ID: 3, OutletID: 1, DayOfWeek: int(monday.Weekday()),
		SectionName: "Broken", OpeningTime: "26:99", ClosingTime: "27:00",
	})
	e := New(g)

	got, err := e.ResolveMealPeriod(context.Background(), 1, monday, mustParseTime(t, "12:30"))
	if err != nil {
		t.Fatalf("malformed rows must be skipped, not fail resolution: %v", err)
	}
	if got == nil || *got != "Lunch" {
		t.Fatalf("want Lunch, got %v", got)
	}
}
