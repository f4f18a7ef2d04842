package app

import (
	"sort"

	"github.com/shopspring/decimal"

	"hotelpulse/internal/domain"
)

// CenterTotal is one profit-center row of the lifetime breakdown.
type CenterTotal struct {
	Center domain.ProfitCenter `json:"center"`
	Total  decimal.Decimal     `json:"total"`
}

// TagTotal is one sub-category row. Unclassified marks entries that
// carried no tag at all; Tag is empty in that case so a real category
// that happens to be named like a sentinel can never be confused with
// the unclassified bucket. Presentation picks the display label.
type TagTotal struct {
	Tag          string          `json:"tag,omitempty"`
	Unclassified bool            `json:"unclassified,omitempty"`
	Total        decimal.Decimal `json:"total"`
}

// ProfitBreakdown groups lifetime revenue entries by profit center, and
// inside the room and package centers by their sub-category tags.
type ProfitBreakdown struct {
	ByCenter  []CenterTotal `json:"by_center"`
	ByRoom    []TagTotal    `json:"by_room"`
	ByPackage []TagTotal    `json:"by_package"`
}

// BuildProfitBreakdown aggregates revenue-type entries with no window
// restriction. Rows come back sorted descending by total (name as the
// tie-break) so repeated runs over the same snapshot are identical.
func BuildProfitBreakdown(entries []domain.FinancialEntry) ProfitBreakdown {
	byCenter := map[domain.ProfitCenter]decimal.Decimal{}
	byRoom := map[string]decimal.Decimal{}
	byPackage := map[string]decimal.Decimal{}
	roomUnclassified, packageUnclassified := decimal.Zero, decimal.Zero
	haveRoomUnclassified, havePackageUnclassified := false, false

	for _, e := range entries {
		if e.Type != domain.EntryRevenue {
			continue
		}
		byCenter[e.ProfitCenter] = byCenter[e.ProfitCenter].Add(e.NetAmount)

		switch e.ProfitCenter {
		case domain.CenterRoom:
			if e.RoomCategory == nil {
				roomUnclassified = roomUnclassified.Add(e.NetAmount)
				haveRoomUnclassified = true
			} else {
				byRoom[*e.RoomCategory] = byRoom[*e.RoomCategory].Add(e.NetAmount)
			}
		case domain.CenterPackage:
			if e.PackageType == nil {
				packageUnclassified = packageUnclassified.Add(e.NetAmount)
				havePackageUnclassified = true
			} else {
				byPackage[*e.PackageType] = byPackage[*e.PackageType].Add(e.NetAmount)
			}
		}
	}

	out := ProfitBreakdown{
		ByRoom:    tagRows(byRoom, roomUnclassified, haveRoomUnclassified),
		ByPackage: tagRows(byPackage, packageUnclassified, havePackageUnclassified),
	}
	for c, t := range byCenter {
		out.ByCenter = append(out.ByCenter, CenterTotal{Center: c, Total: t})
	}
	sort.Slice(out.ByCenter, func(i, j int) bool {
		if !out.ByCenter[i].Total.Equal(out.ByCenter[j].Total) {
			return out.ByCenter[i].Total.GreaterThan(out.ByCenter[j].Total)
		}
		return out.ByCenter[i].Center < out.ByCenter[j].Center
	})
	return out
}

func tagRows(m map[string]decimal.Decimal, unclassified decimal.Decimal, haveUnclassified bool) []TagTotal {
	rows := make([]TagTotal, 0, len(m)+1)
	for tag, t := range m {
		rows = append(rows, TagTotal{Tag: tag, Total: t})
	}
	if haveUnclassified {
		rows = append(rows, TagTotal{Unclassified: true, Total: unclassified})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Total.Equal(rows[j].Total) {
			return rows[i].Total.GreaterThan(rows[j].Total)
		}
		if rows[i].Unclassified != rows[j].Unclassified {
			return rows[j].Unclassified // unclassified sorts last among equals
		}
		return rows[i].Tag < rows[j].Tag
	})
	return rows
}
