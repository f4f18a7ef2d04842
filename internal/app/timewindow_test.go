package app_test

import (
	"testing"
	"time"

	"hotelpulse/internal/app"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func wantWindow(t *testing.T, name string, got app.Window, startDay, endDay time.Time) {
	t.Helper()
	if !got.Start.Equal(startDay) {
		t.Errorf("%s start: got %v want %v", name, got.Start, startDay)
	}
	wantEnd := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, 999_000_000, endDay.Location())
	if !got.End.Equal(wantEnd) {
		t.Errorf("%s end: got %v want %v", name, got.End, wantEnd)
	}
}

func TestResolveWindows_MidJune(t *testing.T) {
	asOf := time.Date(2024, time.June, 15, 14, 30, 0, 0, time.UTC) // Saturday
	ws := app.ResolveWindows(asOf)

	wantWindow(t, "day", ws.Day, date(2024, time.June, 15), date(2024, time.June, 15))
	wantWindow(t, "week", ws.Week, date(2024, time.June, 10), date(2024, time.June, 16))
	wantWindow(t, "month", ws.Month, date(2024, time.June, 1), date(2024, time.June, 30))
	wantWindow(t, "quarter", ws.Quarter, date(2024, time.April, 1), date(2024, time.June, 30))
	wantWindow(t, "year", ws.Year, date(2024, time.January, 1), date(2024, time.December, 31))

	for name, w := range map[string]app.Window{
		"day": ws.Day, "week": ws.Week, "month": ws.Month, "quarter": ws.Quarter, "year": ws.Year,
	} {
		if !w.Contains(asOf) {
			t.Errorf("%s window does not contain asOf", name)
		}
	}
}

func TestResolveWindows_WeekEdges(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday.
	ws := app.ResolveWindows(time.Date(2024, time.June, 16, 8, 0, 0, 0, time.UTC))
	wantWindow(t, "week(sunday)", ws.Week, date(2024, time.June, 10), date(2024, time.June, 16))

	// Monday starts its own week.
	ws = app.ResolveWindows(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))
	wantWindow(t, "week(monday)", ws.Week, date(2024, time.June, 10), date(2024, time.June, 16))

	// A week can start in the previous year.
	ws = app.ResolveWindows(time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)) // Wednesday
	wantWindow(t, "week(new year)", ws.Week, date(2024, time.December, 30), date(2025, time.January, 5))
}

func TestResolveWindows_QuarterAlignment(t *testing.T) {
	cases := []struct {
		m          time.Month
		start, end time.Month
	}{
		{time.January, time.January, time.March},
		{time.March, time.January, time.March},
		{time.April, time.April, time.June},
		{time.September, time.July, time.September},
		{time.December, time.October, time.December},
	}
	for _, c := range cases {
		ws := app.ResolveWindows(time.Date(2024, c.m, 15, 0, 0, 0, 0, time.UTC))
		if ws.Quarter.Start.Month() != c.start {
			t.Errorf("month %v: quarter start %v, want %v", c.m, ws.Quarter.Start.Month(), c.start)
		}
		if ws.Quarter.End.Month() != c.end {
			t.Errorf("month %v: quarter end %v, want %v", c.m, ws.Quarter.End.Month(), c.end)
		}
	}
}

func TestWindow_ClosedBounds(t *testing.T) {
	ws := app.ResolveWindows(time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC))

	if !ws.Day.Contains(ws.Day.Start) || !ws.Day.Contains(ws.Day.End) {
		t.Fatalf("day window must include both bounds")
	}
	nextMidnight := date(2024, time.June, 16)
	if ws.Day.Contains(nextMidnight) {
		t.Fatalf("day window must not leak into the next day")
	}
	if ws.Day.Contains(ws.Day.Start.Add(-time.Millisecond)) {
		t.Fatalf("day window must not include the previous day")
	}
}

func TestResolveWindows_LeapFebruary(t *testing.T) {
	ws := app.ResolveWindows(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC))
	wantWindow(t, "month(leap feb)", ws.Month, date(2024, time.February, 1), date(2024, time.February, 29))
}
