package app

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"hotelpulse/internal/domain"
)

// MonthBucket is one calendar month of the trailing reservation series.
// Revenue sums TotalAmount of non-canceled reservations only.
type MonthBucket struct {
	Month    string          `json:"month"` // 2006-01
	Total    int             `json:"total"`
	Canceled int             `json:"canceled"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// ReservationTrend is the 12-month series plus a parallel
// cancellation-rate series (canceled/total, zero for empty months).
type ReservationTrend struct {
	Months            []MonthBucket `json:"months"`
	CancellationRates []float64     `json:"cancellation_rates"`
}

// SourceStat is the per-acquisition-source breakdown row.
type SourceStat struct {
	Source           string  `json:"source,omitempty"`
	Unclassified     bool    `json:"unclassified,omitempty"`
	Count            int     `json:"count"`
	Canceled         int     `json:"canceled"`
	CancellationRate float64 `json:"cancellation_rate"`
}

// IssueAlert is an open room issue reshaped for the dashboard.
type IssueAlert struct {
	RoomID     int64              `json:"room_id"`
	Status     domain.IssueStatus `json:"status"`
	Category   *string            `json:"category,omitempty"`
	ReportedAt time.Time          `json:"reported_at"`
}

// DashboardSnapshot is the composed result served to the presentation
// layer: the four reports plus channel statuses, alerts and the trend.
type DashboardSnapshot struct {
	HotelID   int64                      `json:"hotel_id"`
	AsOf      time.Time                  `json:"as_of"`
	Occupancy OccupancyReport            `json:"occupancy"`
	Revenue   RevenueSummary             `json:"revenue"`
	Profit    ProfitBreakdown            `json:"profit"`
	Pricing   PricingSuggestion          `json:"pricing"`
	Channels  []domain.ChannelSyncStatus `json:"channels"`
	Alerts    []IssueAlert               `json:"alerts"`
	Trend     ReservationTrend           `json:"trend"`
	Sources   []SourceStat               `json:"sources"`
}

const trendMonths = 12

const monthKeyLayout = "2006-01"

// trendStart is the first instant of the bucket range: the calendar
// month eleven months before asOf's month.
func trendStart(asOf time.Time) time.Time {
	y, m, _ := asOf.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, asOf.Location()).AddDate(0, -(trendMonths - 1), 0)
}

// BuildReservationTrend buckets reservations by check-in month over the
// twelve months ending at asOf's month. Reservations outside the range
// are ignored.
func BuildReservationTrend(reservations []domain.Reservation, asOf time.Time) ReservationTrend {
	start := trendStart(asOf)

	index := make(map[string]int, trendMonths)
	months := make([]MonthBucket, trendMonths)
	for i := 0; i < trendMonths; i++ {
		key := start.AddDate(0, i, 0).Format(monthKeyLayout)
		index[key] = i
		months[i] = MonthBucket{Month: key, Revenue: decimal.Zero}
	}

	for _, r := range reservations {
		i, ok := index[r.CheckIn.Format(monthKeyLayout)]
		if !ok {
			continue
		}
		months[i].Total++
		if r.Status == domain.ReservationCanceled {
			months[i].Canceled++
		} else {
			months[i].Revenue = months[i].Revenue.Add(r.TotalAmount)
		}
	}

	rates := make([]float64, trendMonths)
	for i, b := range months {
		rates[i] = safeRatio(b.Canceled, b.Total)
	}
	return ReservationTrend{Months: months, CancellationRates: rates}
}

// BuildSourceBreakdown counts reservations per acquisition source with
// a cancellation rate each, sorted descending by volume (source name as
// tie-break). Reservations without a source form the unclassified row.
func BuildSourceBreakdown(reservations []domain.Reservation) []SourceStat {
	type agg struct{ count, canceled int }
	bySource := map[string]*agg{}
	var unclassified agg
	haveUnclassified := false

	for _, r := range reservations {
		a := &unclassified
		if r.Source != nil {
			if bySource[*r.Source] == nil {
				bySource[*r.Source] = &agg{}
			}
			a = bySource[*r.Source]
		} else {
			haveUnclassified = true
		}
		a.count++
		if r.Status == domain.ReservationCanceled {
			a.canceled++
		}
	}

	out := make([]SourceStat, 0, len(bySource)+1)
	for src, a := range bySource {
		out = append(out, SourceStat{
			Source:           src,
			Count:            a.count,
			Canceled:         a.canceled,
			CancellationRate: safeRatio(a.canceled, a.count),
		})
	}
	if haveUnclassified {
		out = append(out, SourceStat{
			Unclassified:     true,
			Count:            unclassified.count,
			Canceled:         unclassified.canceled,
			CancellationRate: safeRatio(unclassified.canceled, unclassified.count),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Unclassified != out[j].Unclassified {
			return out[j].Unclassified
		}
		return out[i].Source < out[j].Source
	})
	return out
}

// BuildAlerts reshapes open issues into dashboard alerts, newest first.
func BuildAlerts(issues []domain.RoomIssue) []IssueAlert {
	out := make([]IssueAlert, 0, len(issues))
	for _, is := range issues {
		if !is.Status.Open() {
			continue
		}
		out = append(out, IssueAlert{
			RoomID:     is.RoomID,
			Status:     is.Status,
			Category:   is.Category,
			ReportedAt: is.ReportedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReportedAt.After(out[j].ReportedAt) })
	return out
}
