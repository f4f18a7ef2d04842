package app

import (
	"github.com/shopspring/decimal"

	"hotelpulse/internal/domain"
)

// WindowRevenue splits one window's revenue by season classification.
// Entries with no season count toward Total only, so HighSeason and
// LowSeason need not add up to Total.
type WindowRevenue struct {
	Total      decimal.Decimal `json:"total"`
	HighSeason decimal.Decimal `json:"high_season"`
	LowSeason  decimal.Decimal `json:"low_season"`
}

// RevenueSummary carries one WindowRevenue per named reporting window.
type RevenueSummary struct {
	Day     WindowRevenue `json:"day"`
	Week    WindowRevenue `json:"week"`
	Month   WindowRevenue `json:"month"`
	Quarter WindowRevenue `json:"quarter"`
	Year    WindowRevenue `json:"year"`
}

// SumRevenue totals revenue-type entries whose occurredAt lies in the
// closed window, optionally restricted to one season. An empty slice
// sums to zero.
func SumRevenue(entries []domain.FinancialEntry, w Window, season *domain.Season) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Type != domain.EntryRevenue || !w.Contains(e.OccurredAt) {
			continue
		}
		if season != nil && (e.Season == nil || *e.Season != *season) {
			continue
		}
		total = total.Add(e.NetAmount)
	}
	return total
}

// BuildRevenueSummary evaluates all five windows against one entry
// snapshot, splitting each by high and low season.
func BuildRevenueSummary(entries []domain.FinancialEntry, ws Windows) RevenueSummary {
	return RevenueSummary{
		Day:     windowRevenue(entries, ws.Day),
		Week:    windowRevenue(entries, ws.Week),
		Month:   windowRevenue(entries, ws.Month),
		Quarter: windowRevenue(entries, ws.Quarter),
		Year:    windowRevenue(entries, ws.Year),
	}
}

func windowRevenue(entries []domain.FinancialEntry, w Window) WindowRevenue {
	high, low := domain.SeasonHigh, domain.SeasonLow
	return WindowRevenue{
		Total:      SumRevenue(entries, w, nil),
		HighSeason: SumRevenue(entries, w, &high),
		LowSeason:  SumRevenue(entries, w, &low),
	}
}

// revenueFetchWindow is the widest span the summary needs in one read.
// The ISO week can start in the previous year (or end in the next one),
// so the span is not simply the year window.
func revenueFetchWindow(ws Windows) Window {
	w := ws.Year
	if ws.Week.Start.Before(w.Start) {
		w.Start = ws.Week.Start
	}
	if ws.Week.End.After(w.End) {
		w.End = ws.Week.End
	}
	return w
}
