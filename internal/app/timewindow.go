package app

import "time"

// Window is a closed interval [Start, End]. End is the last represented
// instant of the period (23:59:59.999 on its final day).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether t falls inside the closed interval.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Windows holds the five named reporting windows anchored to one as-of instant.
type Windows struct {
	Day     Window `json:"day"`
	Week    Window `json:"week"`
	Month   Window `json:"month"`
	Quarter Window `json:"quarter"`
	Year    Window `json:"year"`
}

const lastMilli = 999 * int(time.Millisecond)

// ResolveWindows computes day/week/month/quarter/year boundaries around asOf.
// Weeks start on Monday (ISO). All math stays in asOf's location; the engine
// assumes a single reporting timezone.
func ResolveWindows(asOf time.Time) Windows {
	y, m, d := asOf.Date()
	loc := asOf.Location()

	dayStart := time.Date(y, m, d, 0, 0, 0, 0, loc)

	// Monday of the current ISO week. Go's Weekday has Sunday = 0.
	offset := int(asOf.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset = 6 // Sunday belongs to the week that started the previous Monday
	}
	weekStart := dayStart.AddDate(0, 0, -offset)

	monthStart := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	quarterMonth := time.Month((int(m)-1)/3*3 + 1)
	quarterStart := time.Date(y, quarterMonth, 1, 0, 0, 0, 0, loc)
	yearStart := time.Date(y, time.January, 1, 0, 0, 0, 0, loc)

	return Windows{
		Day:     Window{Start: dayStart, End: endOfDay(dayStart)},
		Week:    Window{Start: weekStart, End: endOfDay(weekStart.AddDate(0, 0, 6))},
		Month:   Window{Start: monthStart, End: endOfDay(monthStart.AddDate(0, 1, -1))},
		Quarter: Window{Start: quarterStart, End: endOfDay(quarterStart.AddDate(0, 3, -1))},
		Year:    Window{Start: yearStart, End: endOfDay(yearStart.AddDate(1, 0, -1))},
	}
}

// endOfDay returns 23:59:59.999 on the day that starts at dayStart.
func endOfDay(dayStart time.Time) time.Time {
	y, m, d := dayStart.Date()
	return time.Date(y, m, d, 23, 59, 59, lastMilli, dayStart.Location())
}
