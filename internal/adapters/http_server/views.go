package httpserver

import (
	"github.com/shopspring/decimal"

	"hotelpulse/internal/app"
)

// Display labels for the unclassified buckets. These exist only at the
// presentation edge; the core keeps unclassified as an explicit flag so
// a real category with the same name cannot collide.
const (
	unclassifiedRoomLabel    = "other"
	unclassifiedPackageLabel = "standard"
)

type tagRow struct {
	Label        string          `json:"label"`
	Unclassified bool            `json:"unclassified,omitempty"`
	Total        decimal.Decimal `json:"total"`
}

type profitView struct {
	ByCenter  []app.CenterTotal `json:"by_center"`
	ByRoom    []tagRow          `json:"by_room"`
	ByPackage []tagRow          `json:"by_package"`
}

func renderProfit(pb app.ProfitBreakdown) profitView {
	return profitView{
		ByCenter:  pb.ByCenter,
		ByRoom:    renderTags(pb.ByRoom, unclassifiedRoomLabel),
		ByPackage: renderTags(pb.ByPackage, unclassifiedPackageLabel),
	}
}

func renderTags(rows []app.TagTotal, unclassifiedLabel string) []tagRow {
	out := make([]tagRow, 0, len(rows))
	for _, r := range rows {
		label := r.Tag
		if r.Unclassified {
			label = unclassifiedLabel
		}
		out = append(out, tagRow{Label: label, Unclassified: r.Unclassified, Total: r.Total})
	}
	return out
}
